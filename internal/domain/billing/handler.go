package billing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"guarderia-felina/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta agenda, finanzas y pagos. Las rutas van planas sobre r
// porque /guarderias/{guarderiaID} también lo usa el módulo de guarderías.
// limit se aplica solo a las rutas que escriben (puede ser nil).
func RegisterRoutes(r chi.Router, svc *Service, limit func(http.Handler) http.Handler) {
	write := r
	if limit != nil {
		write = r.With(limit)
	}

	r.Get("/agenda", agendaHandler(svc))
	r.Get("/finanzas", financeReportHandler(svc))
	r.Get("/finanzas/{guarderiaID}", summaryHandler(svc))

	r.Get("/guarderias/{guarderiaID}/pagos", listPaymentsHandler(svc))
	write.Post("/guarderias/{guarderiaID}/pagos", recordPaymentHandler(svc))
	write.Delete("/pagos/{pagoID}", removePaymentHandler(svc))
	write.Delete("/guarderias/{guarderiaID}", deleteBookingHandler(svc))
}

type recordPaymentRequest struct {
	// Puntero para distinguir "no enviado" de 0.
	Amount *float64 `json:"monto"`
	Method string   `json:"forma_pago"` // cash|transfer|efectivo|transferencia, vacío => transfer
}

type paymentResponse struct {
	ID        string        `json:"id"`
	BookingID string        `json:"guarderia_id"`
	Amount    int64         `json:"monto"`
	Method    PaymentMethod `json:"forma_pago"`
	PaidAt    time.Time     `json:"fecha_pago"`
}

type visitResponse struct {
	ID   string `json:"id"`
	Date string `json:"fecha"` // YYYY-MM-DD
	Time string `json:"hora,omitempty"`
}

type bookingResponse struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"cliente_id"`
	ClientName string          `json:"cliente"`
	CatNames   []string        `json:"gatos"`
	Visits     []visitResponse `json:"visitas"`
}

type agendaResponse struct {
	Today     []bookingResponse `json:"hoy"`
	Upcoming  []bookingResponse `json:"pendientes"`
	Completed []bookingResponse `json:"terminadas"`
}

type summaryResponse struct {
	BookingID     string            `json:"guarderia_id"`
	ClientID      string            `json:"cliente_id"`
	ClientName    string            `json:"cliente"`
	CatNames      []string          `json:"gatos"`
	CatCount      int               `json:"cantidad_gatos"`
	Visits        []visitResponse   `json:"visitas"`
	VisitCount    int               `json:"cantidad_visitas"`
	PricePerVisit int64             `json:"precio_por_visita"`
	Total         int64             `json:"total"`
	AmountPaid    int64             `json:"total_pagado"`
	Balance       int64             `json:"saldo"`
	Settled       bool              `json:"sin_deuda"`
	Split         Split             `json:"reparto"`
	Status        FinancialStatus   `json:"estado"`
	Payments      []paymentResponse `json:"pagos"`
}

type financeReportResponse struct {
	Pending    []summaryResponse `json:"pendientes"`
	Terminated []summaryResponse `json:"terminadas"`
}

type paymentResultResponse struct {
	Payment paymentResponse `json:"pago"`
	Summary summaryResponse `json:"resumen"`
}

// @Summary Agenda de guarderías
// @Description Clasifica las guarderías en hoy, pendientes (próximas) y terminadas según la fecha actual del negocio. Cada guardería aparece en una sola lista.
// @Tags agenda
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} agendaResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 503 {string} string "store unavailable"
// @Router /agenda [get]
func agendaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		a, err := svc.Agenda(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, agendaResponse{
			Today:     toBookingResponses(a.Today),
			Upcoming:  toBookingResponses(a.Upcoming),
			Completed: toBookingResponses(a.Completed),
		})
	}
}

// @Summary Reporte de finanzas
// @Description Resumen de cobro de todas las guarderías, separado en pendientes y terminadas. Incluye total, abonos, saldo y reparto.
// @Tags finanzas
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} financeReportResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 503 {string} string "store unavailable"
// @Router /finanzas [get]
func financeReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		rep, err := svc.FinanceReport(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, financeReportResponse{
			Pending:    toSummaryResponses(rep.Pending),
			Terminated: toSummaryResponses(rep.Terminated),
		})
	}
}

// @Summary Resumen de una guardería
// @Tags finanzas
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param guarderiaID path string true "ID de la guardería"
// @Success 200 {object} summaryResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "guarderia not found"
// @Failure 503 {string} string "store unavailable"
// @Router /finanzas/{guarderiaID} [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		s, err := svc.Summary(r.Context(), chi.URLParam(r, "guarderiaID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toSummaryResponse(s))
	}
}

// @Summary Listar pagos de una guardería
// @Tags pagos
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param guarderiaID path string true "ID de la guardería"
// @Success 200 {array} paymentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "guarderia not found"
// @Router /guarderias/{guarderiaID}/pagos [get]
func listPaymentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		items, err := svc.Payments(r.Context(), chi.URLParam(r, "guarderiaID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPaymentResponses(items))
	}
}

// @Summary Registrar un abono
// @Description Registra un pago para la guardería. El monto debe ser un entero positivo. forma_pago acepta cash/transfer (o efectivo/transferencia); si se omite queda transfer. Devuelve el pago y el resumen recalculado.
// @Tags pagos
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param guarderiaID path string true "ID de la guardería"
// @Param payload body recordPaymentRequest true "Monto y forma de pago"
// @Success 201 {object} paymentResultResponse
// @Failure 400 {string} string "invalid json / monto inválido / forma de pago inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "guarderia not found"
// @Failure 503 {string} string "store unavailable"
// @Router /guarderias/{guarderiaID}/pagos [post]
func recordPaymentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		var req recordPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Amount == nil {
			writeError(w, ErrInvalidAmount)
			return
		}

		p, s, err := svc.RecordPayment(r.Context(), chi.URLParam(r, "guarderiaID"), *req.Amount, PaymentMethod(req.Method))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, paymentResultResponse{
			Payment: toPaymentResponse(p),
			Summary: toSummaryResponse(s),
		})
	}
}

// @Summary Eliminar un abono
// @Description Borra el pago y devuelve el resumen recalculado de su guardería.
// @Tags pagos
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param pagoID path string true "ID del pago"
// @Success 200 {object} paymentResultResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pago not found"
// @Failure 503 {string} string "store unavailable"
// @Router /pagos/{pagoID} [delete]
func removePaymentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		p, s, err := svc.RemovePayment(r.Context(), chi.URLParam(r, "pagoID"))
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "pago not found", http.StatusNotFound)
			return
		}
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, paymentResultResponse{
			Payment: toPaymentResponse(p),
			Summary: toSummaryResponse(s),
		})
	}
}

// @Summary Eliminar una guardería
// @Description Borra la guardería con sus visitas y pagos.
// @Tags guarderias
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param guarderiaID path string true "ID de la guardería"
// @Success 204 "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "guarderia not found"
// @Failure 503 {string} string "store unavailable"
// @Router /guarderias/{guarderiaID} [delete]
func deleteBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		if err := svc.DeleteBooking(r.Context(), chi.URLParam(r, "guarderiaID")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func authorized(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	if !claims.IsAdmin() {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidMethod):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "guarderia not found", http.StatusNotFound)
	case errors.Is(err, ErrStoreUnavailable):
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toVisitResponses(in []Visit) []visitResponse {
	out := make([]visitResponse, 0, len(in))
	for _, v := range in {
		out = append(out, visitResponse{
			ID:   v.ID,
			Date: v.Date.Format("2006-01-02"),
			Time: v.Time,
		})
	}
	return out
}

func toBookingResponses(in []Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(in))
	for _, b := range in {
		cats := b.Client.CatNames
		if cats == nil {
			cats = []string{}
		}
		out = append(out, bookingResponse{
			ID:         b.ID,
			ClientID:   b.ClientID,
			ClientName: b.Client.Name,
			CatNames:   cats,
			Visits:     toVisitResponses(b.Visits),
		})
	}
	return out
}

func toPaymentResponse(p Payment) paymentResponse {
	return paymentResponse{
		ID:        p.ID,
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Method:    p.Method,
		PaidAt:    p.PaidAt,
	}
}

func toPaymentResponses(in []Payment) []paymentResponse {
	out := make([]paymentResponse, 0, len(in))
	for _, p := range in {
		out = append(out, toPaymentResponse(p))
	}
	return out
}

func toSummaryResponse(s Summary) summaryResponse {
	cats := s.CatNames
	if cats == nil {
		cats = []string{}
	}
	return summaryResponse{
		BookingID:     s.BookingID,
		ClientID:      s.ClientID,
		ClientName:    s.ClientName,
		CatNames:      cats,
		CatCount:      s.CatCount,
		Visits:        toVisitResponses(s.Visits),
		VisitCount:    s.VisitCount,
		PricePerVisit: s.PricePerVisit,
		Total:         s.Total,
		AmountPaid:    s.AmountPaid,
		Balance:       s.Balance,
		Settled:       s.Settled,
		Split:         s.Split,
		Status:        s.Status,
		Payments:      toPaymentResponses(s.Payments),
	}
}

func toSummaryResponses(in []Summary) []summaryResponse {
	out := make([]summaryResponse, 0, len(in))
	for _, s := range in {
		out = append(out, toSummaryResponse(s))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
