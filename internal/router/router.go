package router

import (
	"net/http"
	"time"

	_ "guarderia-felina/docs"

	mem "guarderia-felina/internal/adapters/storage/memory"
	"guarderia-felina/internal/adapters/storage/sqlstore"
	"guarderia-felina/internal/domain/billing"
	"guarderia-felina/internal/domain/clients"
	"guarderia-felina/internal/domain/guarderias"
	"guarderia-felina/internal/middleware"
	"guarderia-felina/internal/platform/logger"
	"guarderia-felina/internal/platform/metrics"
	"guarderia-felina/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa SQL (Postgres o SQLite). Si no, in-memory.
	DB *sqlstore.DB

	Logger  logger.Logger    // nil => logger.Nop()
	Metrics *metrics.Metrics // nil => sin /metrics

	// Redis nil deja el rate limit apagado aunque RateLimit.Enabled sea true.
	Redis     *redis.Client
	RateLimit middleware.RateLimitConfig

	// Notifier extra para pagos (cola de eventos). Métricas se agregan solas.
	Notifier billing.Notifier

	// Location fija qué es "hoy" para agenda y estados.
	Location *time.Location
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog(log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		clientRepo    clients.Repository
		guarderiaRepo guarderias.Repository
		billingStore  billing.Store
	)

	if opts.DB != nil {
		clientRepo = sqlstore.NewClientsRepo(opts.DB)
		guarderiaRepo = sqlstore.NewGuarderiasRepo(opts.DB)
		billingStore = sqlstore.NewBillingStore(opts.DB)
	} else {
		db := mem.NewDB()
		clientRepo = mem.NewClientRepo(db)
		guarderiaRepo = mem.NewGuarderiaRepo(db)
		billingStore = mem.NewBillingStore(db)
	}

	var notifiers billing.Notifiers
	if opts.Metrics != nil {
		notifiers = append(notifiers, opts.Metrics)
	}
	if opts.Notifier != nil {
		notifiers = append(notifiers, opts.Notifier)
	}

	// Services por módulo
	clientsSvc := clients.NewService(clientRepo)
	guarderiasSvc := guarderias.NewService(guarderiaRepo, clientsSvc)
	billingSvc := billing.NewService(billingStore, billing.Options{
		Notifier: notifiers,
		Logger:   log,
		Location: opts.Location,
	})

	limit := middleware.RateLimit(opts.RateLimit, opts.Redis, log)

	// Rutas por módulo
	clients.RegisterRoutes(r, clientsSvc, limit)
	guarderias.RegisterRoutes(r, guarderiasSvc, limit)
	billing.RegisterRoutes(r, billingSvc, limit)

	return r
}
