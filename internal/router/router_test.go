package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"guarderia-felina/internal/platform/metrics"
	"guarderia-felina/internal/ports/auth"
	"guarderia-felina/internal/router"
)

type roleVerifier map[string]auth.Claims

func (v roleVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	c, ok := v[token]
	if !ok {
		return auth.Claims{}, errors.New("unknown token")
	}
	return c, nil
}

const adminID = "admin-1"

type summaryBody struct {
	Total      int64  `json:"total"`
	AmountPaid int64  `json:"total_pagado"`
	Balance    int64  `json:"saldo"`
	Settled    bool   `json:"sin_deuda"`
	Status     string `json:"estado"`
	CatCount   int    `json:"cantidad_gatos"`
	PerVisit   int64  `json:"precio_por_visita"`
	Split      struct {
		Gasoline  int64 `json:"gasolina"`
		Caretaker int64 `json:"cuidador"`
		Owner     int64 `json:"negocio"`
	} `json:"reparto"`
	Payments []struct {
		ID string `json:"id"`
	} `json:"pagos"`
}

func TestHTTP_EndToEnd_BookingLifecycle(t *testing.T) {
	m := metrics.New()
	ts := httptest.NewServer(router.NewRouter(router.Options{Metrics: m, Location: time.UTC}))
	defer ts.Close()

	today := time.Now().UTC()

	// 1) Cliente con dos gatos (uno sin nombre se ignora)
	clientID := createClient(t, ts.URL, map[string]any{
		"name":  "Ana",
		"phone": "3001234567",
		"cats": []map[string]any{
			{"name": "Michi"},
			{"name": "Luna", "medical_condition": "Alergia"},
			{"name": " "},
		},
	})

	// 2) Guardería con una visita hoy y otra mañana
	bookingID := createGuarderia(t, ts.URL, clientID, []map[string]any{
		{"date": today.AddDate(0, 0, 1).Format("2006-01-02"), "time": "09:00"},
		{"date": today.Format("2006-01-02")},
	})

	// 3) Resumen inicial: 2 gatos => 60000 por visita
	{
		s := getSummary(t, ts.URL, bookingID)
		if s.CatCount != 2 || s.PerVisit != 60000 || s.Total != 120000 || s.Balance != 120000 || s.Settled {
			t.Fatalf("unexpected initial summary: %+v", s)
		}
		if s.Split.Gasoline != 12000 || s.Split.Caretaker != 48000 || s.Split.Owner != 60000 {
			t.Fatalf("unexpected split: %+v", s.Split)
		}
		if s.Status != "pending" {
			t.Fatalf("expected pending, got %s", s.Status)
		}
	}

	// 4) Agenda: la guardería está en "hoy"
	{
		st, body := doReq(t, ts.URL, "GET", "/agenda", adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 agenda, got %d body=%s", st, string(body))
		}
		var agenda struct {
			Today    []struct{ ID string } `json:"hoy"`
			Upcoming []struct{ ID string } `json:"pendientes"`
		}
		_ = json.Unmarshal(body, &agenda)
		if len(agenda.Today) != 1 || agenda.Today[0].ID != bookingID || len(agenda.Upcoming) != 0 {
			t.Fatalf("unexpected agenda: %s", string(body))
		}
	}

	// 5) Dos abonos (efectivo y transferencia por defecto)
	firstPayment := recordPayment(t, ts.URL, bookingID, map[string]any{"monto": 50000, "forma_pago": "efectivo"})
	recordPayment(t, ts.URL, bookingID, map[string]any{"monto": 70000})
	{
		s := getSummary(t, ts.URL, bookingID)
		if s.AmountPaid != 120000 || s.Balance != 0 || !s.Settled || len(s.Payments) != 2 {
			t.Fatalf("expected settled summary, got %+v", s)
		}
	}

	// 6) Monto inválido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/guarderias/"+bookingID+"/pagos", adminID, map[string]any{"monto": -5})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for negative amount, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/guarderias/"+bookingID+"/pagos", adminID, map[string]any{"forma_pago": "cash"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing amount, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/guarderias/"+bookingID+"/pagos", adminID, map[string]any{"monto": 4e18})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for amount above the limit, got %d", st)
		}
	}

	// 7) Borrar un abono reabre el saldo
	{
		st, body := doReq(t, ts.URL, "DELETE", "/pagos/"+firstPayment, adminID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete payment, got %d body=%s", st, string(body))
		}
		var resp struct {
			Summary summaryBody `json:"resumen"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Summary.Balance != 50000 || resp.Summary.Settled {
			t.Fatalf("unexpected summary after delete: %+v", resp.Summary)
		}
	}

	// 8) Editar el cliente a un gato cambia el precio al leer
	{
		st, body := doReq(t, ts.URL, "PUT", "/clients/"+clientID, adminID, map[string]any{
			"name": "Ana",
			"cats": []map[string]any{{"name": "Michi"}},
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update client, got %d body=%s", st, string(body))
		}
		s := getSummary(t, ts.URL, bookingID)
		if s.PerVisit != 40000 || s.Total != 80000 || s.Balance != 10000 {
			t.Fatalf("unexpected summary after cat edit: %+v", s)
		}
	}

	// 9) Borrar la guardería se lleva sus pagos
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/guarderias/"+bookingID, adminID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete guarderia, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/finanzas/"+bookingID, adminID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/guarderias/"+bookingID, adminID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 get guarderia after delete, got %d", st)
		}
	}

	// 10) Métricas expuestas con los abonos registrados
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 metrics, got %d", st)
		}
		if !strings.Contains(string(body), "guarderia_payments_recorded_total") {
			t.Fatalf("payments counter missing from /metrics")
		}
		if !strings.Contains(string(body), `route="/finanzas/{guarderiaID}"`) {
			t.Fatalf("route label missing from /metrics")
		}
	}
}

func TestHTTP_RequiresAuth(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	for _, path := range []string{"/clients", "/agenda", "/finanzas"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, st)
		}
	}

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected health ok, got %d %s", st, string(body))
	}
}

func TestHTTP_BearerRoles(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: roleVerifier{
		"admin-token": {UserID: "a1", Role: auth.RoleAdmin},
		"staff-token": {UserID: "s1", Role: "staff"},
	}}))
	defer ts.Close()

	get := func(header string) int {
		req, _ := http.NewRequest(http.MethodGet, ts.URL+"/clients", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		req.Header.Set("X-Debug-User-ID", "ignored")
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("do request: %v", err)
		}
		res.Body.Close()
		return res.StatusCode
	}

	if st := get("Bearer admin-token"); st != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", st)
	}
	if st := get("Bearer staff-token"); st != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", st)
	}
	if st := get("Bearer bogus"); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 for rejected token, got %d", st)
	}
	if st := get(""); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", st)
	}
}

func TestHTTP_Guarderia_Validation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// cliente inexistente => 404
	st, _ := doReq(t, ts.URL, "POST", "/guarderias", adminID, map[string]any{
		"client_id": "nope",
		"visits":    []map[string]any{{"date": "2025-03-10"}},
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown client, got %d", st)
	}

	clientID := createClient(t, ts.URL, map[string]any{"name": "Beto"})

	// sin visitas => 400
	st, _ = doReq(t, ts.URL, "POST", "/guarderias", adminID, map[string]any{"client_id": clientID})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without visits, got %d", st)
	}

	// pago inexistente => 404 con su propio mensaje
	st, body := doReq(t, ts.URL, "DELETE", "/pagos/nope", adminID, nil)
	if st != http.StatusNotFound || strings.TrimSpace(string(body)) != "pago not found" {
		t.Fatalf("expected 404 pago not found, got %d %q", st, string(body))
	}

	// pago sobre guardería inexistente => 404
	st, body = doReq(t, ts.URL, "POST", "/guarderias/nope/pagos", adminID, map[string]any{"monto": 1000})
	if st != http.StatusNotFound || strings.TrimSpace(string(body)) != "guarderia not found" {
		t.Fatalf("expected 404 guarderia not found, got %d %q", st, string(body))
	}
}

func TestHTTP_SwaggerDoc(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 doc.json, got %d", st)
	}
	if !strings.Contains(string(body), "/guarderias/{guarderiaID}/pagos") {
		t.Fatalf("doc.json missing payments path")
	}
}

func createClient(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/clients", adminID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create client, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID   string `json:"id"`
		Cats []any  `json:"cats"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create client: missing id body=%s", string(body))
	}
	return resp.ID
}

func createGuarderia(t *testing.T, baseURL, clientID string, visits []map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/guarderias", adminID, map[string]any{
		"client_id": clientID,
		"visits":    visits,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create guarderia, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create guarderia: missing id body=%s", string(body))
	}
	return resp.ID
}

func recordPayment(t *testing.T, baseURL, bookingID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/guarderias/"+bookingID+"/pagos", adminID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 record payment, got %d body=%s", st, string(body))
	}

	var resp struct {
		Payment struct {
			ID string `json:"id"`
		} `json:"pago"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Payment.ID == "" {
		t.Fatalf("record payment: missing id body=%s", string(body))
	}
	return resp.Payment.ID
}

func getSummary(t *testing.T, baseURL, bookingID string) summaryBody {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/finanzas/"+bookingID, adminID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 summary, got %d body=%s", st, string(body))
	}
	var s summaryBody
	if err := json.Unmarshal(body, &s); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	return s
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
