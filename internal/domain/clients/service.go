package clients

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("client not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CatInput struct {
	Name             string
	Age              string
	MedicalCondition string
}

type ClientInput struct {
	Name                  string
	Phone                 string
	Address               string
	Email                 string
	EmergencyContactName  string
	EmergencyContactPhone string
	PhotoConsent          bool
	Cats                  []CatInput
}

func (s *Service) Create(ctx context.Context, in ClientInput) (Client, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Client{}, ErrInvalidInput
	}

	now := s.now()
	c := Client{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	apply(&c, in)

	if err := s.repo.Create(ctx, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

// Update reemplaza todos los datos del cliente, incluida la lista de gatos.
func (s *Service) Update(ctx context.Context, id string, in ClientInput) (Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Client{}, ErrNotFound
	}
	if strings.TrimSpace(in.Name) == "" {
		return Client{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Client{}, err
	}

	c := Client{
		ID:        current.ID,
		CreatedAt: current.CreatedAt,
		UpdatedAt: s.now(),
	}
	apply(&c, in)

	if err := s.repo.Update(ctx, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Client{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve los clientes del más reciente al más antiguo.
func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func apply(c *Client, in ClientInput) {
	c.Name = strings.TrimSpace(in.Name)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Address = strings.TrimSpace(in.Address)
	c.Email = strings.TrimSpace(in.Email)
	c.EmergencyContactName = strings.TrimSpace(in.EmergencyContactName)
	c.EmergencyContactPhone = strings.TrimSpace(in.EmergencyContactPhone)
	c.PhotoConsent = in.PhotoConsent
	c.Cats = buildCats(c.ID, in.Cats)
}

// buildCats descarta filas sin nombre (el formulario siempre manda una vacía).
func buildCats(clientID string, in []CatInput) []Cat {
	out := make([]Cat, 0, len(in))
	for _, ci := range in {
		name := strings.TrimSpace(ci.Name)
		if name == "" {
			continue
		}
		cond := strings.TrimSpace(ci.MedicalCondition)
		if cond == "" {
			cond = DefaultMedicalCondition
		}
		out = append(out, Cat{
			ID:               uuid.NewString(),
			ClientID:         clientID,
			Name:             name,
			Age:              strings.TrimSpace(ci.Age),
			MedicalCondition: cond,
		})
	}
	return out
}
