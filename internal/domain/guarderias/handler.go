package guarderias

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"guarderia-felina/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta alta y consulta. DELETE /guarderias/{guarderiaID} y los
// pagos los registra billing sobre el mismo router.
func RegisterRoutes(r chi.Router, svc *Service, limit func(http.Handler) http.Handler) {
	write := r
	if limit != nil {
		write = r.With(limit)
	}

	write.Post("/guarderias", createGuarderiaHandler(svc))
	r.Get("/guarderias/{guarderiaID}", getGuarderiaHandler(svc))
}

type visitRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM opcional
}

type createGuarderiaRequest struct {
	ClientID string         `json:"client_id"`
	Visits   []visitRequest `json:"visits"`
}

type visitResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Time string `json:"time,omitempty"`
}

type guarderiaResponse struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"client_id"`
	Visits    []visitResponse `json:"visits"`
	CreatedAt time.Time       `json:"created_at"`
}

// @Summary Crear guardería
// @Description Crea una guardería para un cliente existente con al menos una visita. Las visitas quedan ordenadas por fecha.
// @Tags guarderias
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createGuarderiaRequest true "Cliente y visitas (date YYYY-MM-DD, time HH:MM opcional)"
// @Success 201 {object} guarderiaResponse
// @Failure 400 {string} string "invalid json / cliente y al menos una visita requeridos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "client not found"
// @Router /guarderias [post]
func createGuarderiaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		var req createGuarderiaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		visits := make([]VisitInput, 0, len(req.Visits))
		for _, v := range req.Visits {
			visits = append(visits, VisitInput{Date: v.Date, Time: v.Time})
		}

		g, err := svc.Create(r.Context(), CreateInput{ClientID: req.ClientID, Visits: visits})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toGuarderiaResponse(g))
	}
}

// @Summary Obtener guardería
// @Tags guarderias
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param guarderiaID path string true "ID de la guardería"
// @Success 200 {object} guarderiaResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "guarderia not found"
// @Router /guarderias/{guarderiaID} [get]
func getGuarderiaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		g, err := svc.GetByID(r.Context(), chi.URLParam(r, "guarderiaID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toGuarderiaResponse(g))
	}
}

func toGuarderiaResponse(g Guarderia) guarderiaResponse {
	visits := make([]visitResponse, 0, len(g.Visits))
	for _, v := range g.Visits {
		visits = append(visits, visitResponse{
			ID:   v.ID,
			Date: v.Date.Format(DateLayout),
			Time: v.Time,
		})
	}
	return guarderiaResponse{
		ID:        g.ID,
		ClientID:  g.ClientID,
		Visits:    visits,
		CreatedAt: g.CreatedAt,
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
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "selecciona un cliente y al menos una visita (YYYY-MM-DD)", http.StatusBadRequest)
	case errors.Is(err, ErrClientNotFound):
		http.Error(w, "client not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "guarderia not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
