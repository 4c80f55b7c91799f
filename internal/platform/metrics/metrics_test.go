package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guarderia-felina/internal/domain/billing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Notifier(t *testing.T) {
	m := New()
	ctx := context.Background()

	_ = m.PaymentRecorded(ctx, billing.Payment{Amount: 30000, Method: billing.MethodCash}, billing.Summary{})
	_ = m.PaymentRecorded(ctx, billing.Payment{Amount: 50000, Method: billing.MethodTransfer}, billing.Summary{Settled: true})
	_ = m.PaymentRemoved(ctx, billing.Payment{}, billing.Summary{})
	_ = m.BookingDeleted(ctx, "g1")

	if got := testutil.ToFloat64(m.paymentsRecorded.WithLabelValues("cash")); got != 1 {
		t.Fatalf("cash payments: got %v", got)
	}
	if got := testutil.ToFloat64(m.amountRecorded); got != 80000 {
		t.Fatalf("amount: got %v", got)
	}
	if got := testutil.ToFloat64(m.settled); got != 1 {
		t.Fatalf("settled: got %v", got)
	}
	if got := testutil.ToFloat64(m.paymentsRemoved); got != 1 {
		t.Fatalf("removed: got %v", got)
	}
	if got := testutil.ToFloat64(m.bookingsDeleted); got != 1 {
		t.Fatalf("deleted: got %v", got)
	}
}

func TestMetrics_MiddlewareUsesRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/finanzas/{guarderiaID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Handle("/metrics", m.Handler())

	ts := httptest.NewServer(r)
	defer ts.Close()

	for _, id := range []string{"a", "b"} {
		resp, err := http.Get(ts.URL + "/finanzas/" + id)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		resp.Body.Close()
	}

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/finanzas/{guarderiaID}", "404")); got != 2 {
		t.Fatalf("expected 2 requests on pattern, got %v", got)
	}

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "guarderia_http_requests_total") {
		t.Fatalf("metrics output missing counter")
	}
}
