package sqlstore

import (
	"context"
	"fmt"

	"guarderia-felina/internal/domain/billing"
)

type paymentRow struct {
	ID          string `db:"id"`
	GuarderiaID string `db:"guarderia_id"`
	Amount      int64  `db:"amount"`
	Method      string `db:"method"`
	PaidAt      int64  `db:"paid_at"`
}

// BillingStore arma el snapshot de facturación desde las tablas.
type BillingStore struct {
	db *DB
}

var _ billing.Store = (*BillingStore)(nil)

func NewBillingStore(db *DB) *BillingStore {
	return &BillingStore{db: db}
}

func (s *BillingStore) ListBookings(ctx context.Context) ([]billing.Booking, error) {
	var gs []guarderiaRow
	if err := s.db.SelectContext(ctx, &gs, `SELECT id, client_id, created_at FROM guarderias ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to query guarderias: %w", err)
	}

	var cs []clientRow
	if err := s.db.SelectContext(ctx, &cs, `SELECT `+clientColumns+` FROM clients`); err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	byClient := make(map[string]clientRow, len(cs))
	for _, c := range cs {
		byClient[c.ID] = c
	}

	cats, err := loadCats(ctx, s.db.DB, "")
	if err != nil {
		return nil, err
	}
	visits, err := loadVisits(ctx, s.db, "")
	if err != nil {
		return nil, err
	}

	out := make([]billing.Booking, 0, len(gs))
	for _, g := range gs {
		c := byClient[g.ClientID]

		names := make([]string, 0, len(cats[g.ClientID]))
		for _, cat := range cats[g.ClientID] {
			names = append(names, cat.Name)
		}

		b := billing.Booking{
			ID:       g.ID,
			ClientID: g.ClientID,
			Client:   billing.Client{ID: c.ID, Name: c.Name, CatNames: names},
			Visits:   make([]billing.Visit, 0, len(visits[g.ID])),
		}
		for _, v := range visits[g.ID] {
			d, err := parseDate(v.Date)
			if err != nil {
				return nil, err
			}
			b.Visits = append(b.Visits, billing.Visit{ID: v.ID, BookingID: g.ID, Date: d, Time: v.Time})
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *BillingStore) ListPayments(ctx context.Context, bookingID string) ([]billing.Payment, error) {
	query := `SELECT id, guarderia_id, amount, method, paid_at FROM payments`
	args := []any{}
	if bookingID != "" {
		query += ` WHERE guarderia_id = ?`
		args = append(args, bookingID)
	}
	query += ` ORDER BY paid_at, id`

	var rows []paymentRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}

	out := make([]billing.Payment, 0, len(rows))
	for _, row := range rows {
		out = append(out, billing.Payment{
			ID:        row.ID,
			BookingID: row.GuarderiaID,
			Amount:    row.Amount,
			Method:    billing.PaymentMethod(row.Method),
			PaidAt:    fromUnix(row.PaidAt),
		})
	}
	return out, nil
}

func (s *BillingStore) AppendPayment(ctx context.Context, p billing.Payment) error {
	var exists int
	if err := s.db.GetContext(ctx, &exists, s.db.Rebind(`SELECT COUNT(1) FROM guarderias WHERE id = ?`), p.BookingID); err != nil {
		return fmt.Errorf("failed to check guarderia: %w", err)
	}
	if exists == 0 {
		return billing.ErrNotFound
	}

	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO payments (id, guarderia_id, amount, method, paid_at) VALUES (?,?,?,?,?)
	`), p.ID, p.BookingID, p.Amount, string(p.Method), toUnix(p.PaidAt))
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (s *BillingStore) DeletePayment(ctx context.Context, paymentID string) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM payments WHERE id = ?`), paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return billing.ErrNotFound
	}
	return nil
}

// DeleteBooking borra pagos, visitas y la guardería en una transacción.
func (s *BillingStore) DeleteBooking(ctx context.Context, bookingID string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM payments WHERE guarderia_id = ?`,
		`DELETE FROM guarderias_visits WHERE guarderia_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, tx.Rebind(q), bookingID); err != nil {
			return fmt.Errorf("failed to delete guarderia data: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM guarderias WHERE id = ?`), bookingID)
	if err != nil {
		return fmt.Errorf("failed to delete guarderia: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return billing.ErrNotFound
	}
	return tx.Commit()
}
