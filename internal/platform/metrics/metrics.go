package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"guarderia-felina/internal/domain/billing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors de la app en un registry propio (no el global),
// así cada router de test arranca limpio.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec

	paymentsRecorded *prometheus.CounterVec
	paymentsRemoved  prometheus.Counter
	amountRecorded   prometheus.Counter
	bookingsDeleted  prometheus.Counter
	settled          prometheus.Counter
}

var _ billing.Notifier = (*Metrics)(nil)

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guarderia_http_requests_total",
			Help: "HTTP requests por método, ruta y status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "guarderia_http_request_duration_seconds",
			Help:    "Latencia de requests HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		paymentsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guarderia_payments_recorded_total",
			Help: "Abonos registrados por forma de pago.",
		}, []string{"method"}),
		paymentsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guarderia_payments_removed_total",
			Help: "Abonos eliminados.",
		}),
		amountRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guarderia_payments_amount_total",
			Help: "Suma de montos registrados (COP).",
		}),
		bookingsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guarderia_bookings_deleted_total",
			Help: "Guarderías eliminadas.",
		}),
		settled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guarderia_bookings_settled_total",
			Help: "Abonos que dejaron la guardería sin deuda.",
		}),
	}

	reg.MustRegister(
		m.requests,
		m.latency,
		m.paymentsRecorded,
		m.paymentsRemoved,
		m.amountRecorded,
		m.bookingsDeleted,
		m.settled,
	)
	return m
}

// Handler expone /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry permite a los tests leer los valores.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware cuenta requests por patrón de ruta (no por path con ids).
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.latency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) PaymentRecorded(ctx context.Context, p billing.Payment, s billing.Summary) error {
	m.paymentsRecorded.WithLabelValues(string(p.Method)).Inc()
	m.amountRecorded.Add(float64(p.Amount))
	if s.Settled {
		m.settled.Inc()
	}
	return nil
}

func (m *Metrics) PaymentRemoved(ctx context.Context, p billing.Payment, s billing.Summary) error {
	m.paymentsRemoved.Inc()
	return nil
}

func (m *Metrics) BookingDeleted(ctx context.Context, bookingID string) error {
	m.bookingsDeleted.Inc()
	return nil
}
