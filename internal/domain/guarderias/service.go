package guarderias

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrClientNotFound = errors.New("client not found")
	ErrNotFound       = errors.New("guarderia not found")
)

type Service struct {
	repo    Repository
	clients ClientChecker
	now     func() time.Time
}

func NewService(repo Repository, clients ClientChecker) *Service {
	return &Service{
		repo:    repo,
		clients: clients,
		now:     time.Now,
	}
}

type VisitInput struct {
	Date string // YYYY-MM-DD
	Time string // HH:MM opcional
}

type CreateInput struct {
	ClientID string
	Visits   []VisitInput
}

// Create exige cliente existente y al menos una visita con fecha válida.
func (s *Service) Create(ctx context.Context, in CreateInput) (Guarderia, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" || len(in.Visits) == 0 {
		return Guarderia{}, ErrInvalidInput
	}

	g := Guarderia{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		CreatedAt: s.now(),
	}

	visits, err := parseVisits(g.ID, in.Visits)
	if err != nil {
		return Guarderia{}, err
	}
	g.Visits = visits

	ok, err := s.clients.Exists(ctx, clientID)
	if err != nil {
		return Guarderia{}, err
	}
	if !ok {
		return Guarderia{}, ErrClientNotFound
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return Guarderia{}, err
	}
	return g, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Guarderia, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Guarderia{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func parseVisits(guarderiaID string, in []VisitInput) ([]Visit, error) {
	out := make([]Visit, 0, len(in))
	for _, vi := range in {
		d, err := time.Parse(DateLayout, strings.TrimSpace(vi.Date))
		if err != nil {
			return nil, ErrInvalidInput
		}

		hhmm := strings.TrimSpace(vi.Time)
		if hhmm != "" {
			if _, err := time.Parse(TimeLayout, hhmm); err != nil {
				return nil, ErrInvalidInput
			}
		}

		out = append(out, Visit{
			ID:          uuid.NewString(),
			GuarderiaID: guarderiaID,
			Date:        d,
			Time:        hhmm,
		})
	}
	SortVisits(out)
	return out, nil
}

// SortVisits ordena por fecha y luego por hora.
func SortVisits(v []Visit) {
	sort.SliceStable(v, func(i, j int) bool {
		if v[i].Date.Equal(v[j].Date) {
			return v[i].Time < v[j].Time
		}
		return v[i].Date.Before(v[j].Date)
	})
}
