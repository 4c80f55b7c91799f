package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guarderia-felina/internal/adapters/auth/jwtauth"
	"guarderia-felina/internal/adapters/queue/rabbitmq"
	"guarderia-felina/internal/adapters/storage/sqlstore"
	"guarderia-felina/internal/domain/billing"
	"guarderia-felina/internal/middleware"
	"guarderia-felina/internal/platform/config"
	"guarderia-felina/internal/platform/logger"
	"guarderia-felina/internal/platform/metrics"
	"guarderia-felina/internal/ports/auth"
	"guarderia-felina/internal/router"

	"github.com/joho/godotenv"
)

// @title Guardería Felina API
// @version 1.0
// @description Administración de clientes, gatos, guarderías, visitas y pagos.
// @BasePath /
func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	loc, err := cfg.Location()
	if err != nil {
		log.Warn("timezone not found, using local", map[string]any{"timezone": cfg.Timezone, "error": err})
	}

	db, err := openDB(cfg)
	if err != nil {
		log.Error("database open failed", map[string]any{"error": err})
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	// Sin JWT_SECRET queda el modo dev con X-Debug-User-ID.
	var verifier auth.AuthVerifier
	if cfg.JWTSecret != "" {
		verifier = jwtauth.NewVerifier(cfg.JWTSecret)
	} else if cfg.IsProduction() {
		log.Error("JWT_SECRET is required in production", nil)
		os.Exit(1)
	}

	rdb := config.NewRedisClient(cfg)
	if rdb != nil {
		defer rdb.Close()
	} else if cfg.RedisAddr != "" {
		log.Warn("redis unavailable, rate limit disabled", map[string]any{"addr": cfg.RedisAddr})
	}

	var notifier billing.Notifier
	if cfg.RabbitMQURL != "" {
		pub := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.PaymentsQueue, log)
		defer pub.Close()
		notifier = pub
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Logger:       log,
		Metrics:      metrics.New(),
		Redis:        rdb,
		RateLimit: middleware.RateLimitConfig{
			Enabled: cfg.RateLimitEnabled,
			Max:     cfg.RateLimitMax,
			Window:  cfg.RateLimitWindow,
			Prefix:  cfg.AppName + ":rl",
		},
		Notifier: notifier,
		Location: loc,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.AppEnv, "storage": storageName(cfg)})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", map[string]any{"error": err})
	}
	log.Info("server stopped", nil)
}

// openDB: DB_DSN (Postgres) primero, luego SQLITE_PATH. nil => in-memory.
func openDB(cfg config.Config) (*sqlstore.DB, error) {
	switch {
	case cfg.DBDSN != "":
		return sqlstore.OpenPostgres(cfg.DBDSN)
	case cfg.SQLitePath != "":
		return sqlstore.OpenSQLite(cfg.SQLitePath)
	}
	return nil, nil
}

func storageName(cfg config.Config) string {
	switch {
	case cfg.DBDSN != "":
		return "postgres"
	case cfg.SQLitePath != "":
		return "sqlite"
	}
	return "memory"
}
