package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"guarderia-felina/internal/domain/guarderias"
)

type guarderiaRow struct {
	ID        string `db:"id"`
	ClientID  string `db:"client_id"`
	CreatedAt int64  `db:"created_at"`
}

type visitRow struct {
	ID          string `db:"id"`
	GuarderiaID string `db:"guarderia_id"`
	Date        string `db:"visit_date"`
	Time        string `db:"visit_time"`
}

var _ guarderias.Repository = (*GuarderiasRepo)(nil)

type GuarderiasRepo struct {
	db *DB
}

func NewGuarderiasRepo(db *DB) *GuarderiasRepo {
	return &GuarderiasRepo{db: db}
}

// Create inserta guardería y visitas juntas: no queda una guardería sin visitas.
func (r *GuarderiasRepo) Create(ctx context.Context, g guarderias.Guarderia) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.GetContext(ctx, &exists, tx.Rebind(`SELECT COUNT(1) FROM clients WHERE id = ?`), g.ClientID); err != nil {
		return fmt.Errorf("failed to check client: %w", err)
	}
	if exists == 0 {
		return guarderias.ErrClientNotFound
	}

	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO guarderias (id, client_id, created_at) VALUES (?,?,?)
	`), g.ID, g.ClientID, toUnix(g.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert guarderia: %w", err)
	}

	for _, v := range g.Visits {
		_, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO guarderias_visits (id, guarderia_id, visit_date, visit_time) VALUES (?,?,?,?)
		`), v.ID, g.ID, v.Date.Format(guarderias.DateLayout), v.Time)
		if err != nil {
			return fmt.Errorf("failed to insert visit: %w", err)
		}
	}

	return tx.Commit()
}

func (r *GuarderiasRepo) GetByID(ctx context.Context, id string) (guarderias.Guarderia, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return guarderias.Guarderia{}, guarderias.ErrNotFound
	}

	var rows []guarderiaRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(`SELECT id, client_id, created_at FROM guarderias WHERE id = ?`), id); err != nil {
		return guarderias.Guarderia{}, fmt.Errorf("failed to query guarderia: %w", err)
	}
	if len(rows) == 0 {
		return guarderias.Guarderia{}, guarderias.ErrNotFound
	}

	visits, err := loadVisits(ctx, r.db, id)
	if err != nil {
		return guarderias.Guarderia{}, err
	}

	out := guarderias.Guarderia{
		ID:        rows[0].ID,
		ClientID:  rows[0].ClientID,
		CreatedAt: fromUnix(rows[0].CreatedAt),
	}
	for _, v := range visits[id] {
		d, err := parseDate(v.Date)
		if err != nil {
			return guarderias.Guarderia{}, err
		}
		out.Visits = append(out.Visits, guarderias.Visit{
			ID:          v.ID,
			GuarderiaID: v.GuarderiaID,
			Date:        d,
			Time:        v.Time,
		})
	}
	guarderias.SortVisits(out.Visits)
	return out, nil
}

// loadVisits agrupa visitas por guardería; guarderiaID vacío trae todas.
func loadVisits(ctx context.Context, db *DB, guarderiaID string) (map[string][]visitRow, error) {
	query := `SELECT id, guarderia_id, visit_date, visit_time FROM guarderias_visits`
	args := []any{}
	if guarderiaID != "" {
		query += ` WHERE guarderia_id = ?`
		args = append(args, guarderiaID)
	}
	query += ` ORDER BY visit_date, visit_time`

	var rows []visitRow
	if err := db.SelectContext(ctx, &rows, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}

	out := map[string][]visitRow{}
	for _, row := range rows {
		out[row.GuarderiaID] = append(out[row.GuarderiaID], row)
	}
	return out, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(guarderias.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid visit_date %q: %w", s, err)
	}
	return d, nil
}
