package clients

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"guarderia-felina/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, limit func(http.Handler) http.Handler) {
	r.Route("/clients", func(cr chi.Router) {
		write := cr
		if limit != nil {
			write = cr.With(limit)
		}

		write.Post("/", createClientHandler(svc))
		cr.Get("/", listClientsHandler(svc))

		cr.Get("/{clientID}", getClientHandler(svc))
		write.Put("/{clientID}", updateClientHandler(svc))
		write.Delete("/{clientID}", deleteClientHandler(svc))
	})
}

type catRequest struct {
	Name             string `json:"name"`
	Age              string `json:"age"`
	MedicalCondition string `json:"medical_condition"` // vacío => "Ninguna"
}

type clientRequest struct {
	Name           string       `json:"name"`
	Phone          string       `json:"phone"`
	Address        string       `json:"address"`
	Email          string       `json:"email"`
	EmergencyName  string       `json:"emergency_name"`
	EmergencyPhone string       `json:"emergency_phone"`
	PhotoConsent   bool         `json:"photo_permission"`
	Cats           []catRequest `json:"cats"`
}

type catResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Age              string `json:"age"`
	MedicalCondition string `json:"medical_condition"`
}

type clientResponse struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Phone          string        `json:"phone"`
	Address        string        `json:"address"`
	Email          string        `json:"email"`
	EmergencyName  string        `json:"emergency_name"`
	EmergencyPhone string        `json:"emergency_phone"`
	PhotoConsent   bool          `json:"photo_permission"`
	Cats           []catResponse `json:"cats"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// @Summary Crear cliente
// @Description Crea un cliente con sus gatos. Los gatos sin nombre se ignoran y la condición médica vacía queda como "Ninguna".
// @Tags clients
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body clientRequest true "Datos del cliente y sus gatos"
// @Success 201 {object} clientResponse
// @Failure 400 {string} string "invalid json / name requerido"
// @Failure 401 {string} string "unauthorized"
// @Router /clients [post]
func createClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		var req clientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toClientResponse(c))
	}
}

// @Summary Listar clientes
// @Tags clients
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} clientResponse
// @Failure 401 {string} string "unauthorized"
// @Router /clients [get]
func listClientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]clientResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toClientResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener cliente
// @Tags clients
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param clientID path string true "ID del cliente"
// @Success 200 {object} clientResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "client not found"
// @Router /clients/{clientID} [get]
func getClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "clientID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toClientResponse(c))
	}
}

// @Summary Editar cliente
// @Description Reemplaza los datos del cliente y su lista completa de gatos.
// @Tags clients
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param clientID path string true "ID del cliente"
// @Param payload body clientRequest true "Datos completos del cliente"
// @Success 200 {object} clientResponse
// @Failure 400 {string} string "invalid json / name requerido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "client not found"
// @Router /clients/{clientID} [put]
func updateClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		var req clientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "clientID"), req.toInput())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toClientResponse(c))
	}
}

// @Summary Eliminar cliente
// @Description Borra el cliente y sus gatos.
// @Tags clients
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param clientID path string true "ID del cliente"
// @Success 204 "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "client not found"
// @Router /clients/{clientID} [delete]
func deleteClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "clientID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (req clientRequest) toInput() ClientInput {
	cats := make([]CatInput, 0, len(req.Cats))
	for _, c := range req.Cats {
		cats = append(cats, CatInput{
			Name:             c.Name,
			Age:              c.Age,
			MedicalCondition: c.MedicalCondition,
		})
	}
	return ClientInput{
		Name:                  req.Name,
		Phone:                 req.Phone,
		Address:               req.Address,
		Email:                 req.Email,
		EmergencyContactName:  req.EmergencyName,
		EmergencyContactPhone: req.EmergencyPhone,
		PhotoConsent:          req.PhotoConsent,
		Cats:                  cats,
	}
}

func toClientResponse(c Client) clientResponse {
	cats := make([]catResponse, 0, len(c.Cats))
	for _, cat := range c.Cats {
		cats = append(cats, catResponse{
			ID:               cat.ID,
			Name:             cat.Name,
			Age:              cat.Age,
			MedicalCondition: cat.MedicalCondition,
		})
	}
	return clientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Address:        c.Address,
		Email:          c.Email,
		EmergencyName:  c.EmergencyContactName,
		EmergencyPhone: c.EmergencyContactPhone,
		PhotoConsent:   c.PhotoConsent,
		Cats:           cats,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
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
		http.Error(w, "name is required", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "client not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
