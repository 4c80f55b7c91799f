package memory

import (
	"context"
	"errors"
	"sort"

	"guarderia-felina/internal/domain/billing"
)

type billingStore struct {
	db *DB
}

func NewBillingStore(db *DB) billing.Store {
	return &billingStore{db: db}
}

// ListBookings arma cada guardería con su cliente actual (gatos incluidos).
func (s *billingStore) ListBookings(ctx context.Context) ([]billing.Booking, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]billing.Booking, 0, len(s.db.guarderias))
	for _, g := range s.db.guarderias {
		c := s.db.clients[g.ClientID]

		visits := make([]billing.Visit, 0, len(g.Visits))
		for _, v := range g.Visits {
			visits = append(visits, billing.Visit{
				ID:        v.ID,
				BookingID: g.ID,
				Date:      v.Date,
				Time:      v.Time,
			})
		}

		out = append(out, billing.Booking{
			ID:       g.ID,
			ClientID: g.ClientID,
			Client: billing.Client{
				ID:       c.ID,
				Name:     c.Name,
				CatNames: c.CatNames(),
			},
			Visits: visits,
		})
	}

	// Orden estable por id (el motor reordena por primera visita)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *billingStore) ListPayments(ctx context.Context, bookingID string) ([]billing.Payment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]billing.Payment, 0)
	for _, p := range s.db.payments {
		if bookingID == "" || p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PaidAt.Equal(out[j].PaidAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].PaidAt.Before(out[j].PaidAt)
	})
	return out, nil
}

func (s *billingStore) AppendPayment(ctx context.Context, p billing.Payment) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if p.ID == "" {
		return errors.New("payment id required")
	}
	if _, ok := s.db.guarderias[p.BookingID]; !ok {
		return billing.ErrNotFound
	}
	if _, exists := s.db.payments[p.ID]; exists {
		return errors.New("payment already exists")
	}
	s.db.payments[p.ID] = p
	return nil
}

func (s *billingStore) DeletePayment(ctx context.Context, paymentID string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.payments[paymentID]; !ok {
		return billing.ErrNotFound
	}
	delete(s.db.payments, paymentID)
	return nil
}

func (s *billingStore) DeleteBooking(ctx context.Context, bookingID string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.guarderias[bookingID]; !ok {
		return billing.ErrNotFound
	}
	s.db.deleteGuarderiaLocked(bookingID)
	return nil
}
