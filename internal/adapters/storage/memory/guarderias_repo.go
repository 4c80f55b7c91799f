package memory

import (
	"context"
	"errors"

	"guarderia-felina/internal/domain/guarderias"
)

type guarderiaRepo struct {
	db *DB
}

func NewGuarderiaRepo(db *DB) guarderias.Repository {
	return &guarderiaRepo{db: db}
}

func (r *guarderiaRepo) Create(ctx context.Context, g guarderias.Guarderia) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if g.ID == "" {
		return errors.New("guarderia id required")
	}
	if _, exists := r.db.guarderias[g.ID]; exists {
		return errors.New("guarderia already exists")
	}
	if _, ok := r.db.clients[g.ClientID]; !ok {
		return guarderias.ErrClientNotFound
	}
	r.db.guarderias[g.ID] = copyGuarderia(g)
	return nil
}

func (r *guarderiaRepo) GetByID(ctx context.Context, id string) (guarderias.Guarderia, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	g, ok := r.db.guarderias[id]
	if !ok {
		return guarderias.Guarderia{}, guarderias.ErrNotFound
	}
	return copyGuarderia(g), nil
}

func copyGuarderia(g guarderias.Guarderia) guarderias.Guarderia {
	visits := make([]guarderias.Visit, len(g.Visits))
	copy(visits, g.Visits)
	g.Visits = visits
	return g
}
