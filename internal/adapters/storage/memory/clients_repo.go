package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"guarderia-felina/internal/domain/clients"
)

type clientRepo struct {
	db *DB
}

func NewClientRepo(db *DB) clients.Repository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, c clients.Client) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("client id required")
	}
	if _, exists := r.db.clients[c.ID]; exists {
		return errors.New("client already exists")
	}
	r.db.clients[c.ID] = copyClient(c)
	return nil
}

func (r *clientRepo) Update(ctx context.Context, c clients.Client) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("client id required")
	}
	if _, exists := r.db.clients[c.ID]; !exists {
		return clients.ErrNotFound
	}
	// Los gatos se reemplazan completos.
	r.db.clients[c.ID] = copyClient(c)
	return nil
}

func (r *clientRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.clients[id]
	if !ok {
		return clients.Client{}, clients.ErrNotFound
	}
	return copyClient(c), nil
}

func (r *clientRepo) List(ctx context.Context) ([]clients.Client, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]clients.Client, 0, len(r.db.clients))
	for _, c := range r.db.clients {
		out = append(out, copyClient(c))
	}

	// Más recientes primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete borra gatos, cliente y sus guarderías (con pagos).
func (r *clientRepo) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.clients[id]; !ok {
		return clients.ErrNotFound
	}
	for gid, g := range r.db.guarderias {
		if g.ClientID == id {
			r.db.deleteGuarderiaLocked(gid)
		}
	}
	delete(r.db.clients, id)
	return nil
}

func copyClient(c clients.Client) clients.Client {
	cats := make([]clients.Cat, len(c.Cats))
	copy(cats, c.Cats)
	c.Cats = cats
	return c
}
