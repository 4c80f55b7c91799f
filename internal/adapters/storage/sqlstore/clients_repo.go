package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"guarderia-felina/internal/domain/clients"

	"github.com/jmoiron/sqlx"
)

type clientRow struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	Phone           string `db:"phone"`
	Address         string `db:"address"`
	Email           string `db:"email"`
	EmergencyName   string `db:"emergency_name"`
	EmergencyPhone  string `db:"emergency_phone"`
	PhotoPermission bool   `db:"photo_permission"`
	CreatedAt       int64  `db:"created_at"`
	UpdatedAt       int64  `db:"updated_at"`
}

type catRow struct {
	ID               string `db:"id"`
	ClientID         string `db:"client_id"`
	Position         int    `db:"position"`
	Name             string `db:"name"`
	Age              string `db:"age"`
	MedicalCondition string `db:"medical_condition"`
}

const clientColumns = `id, name, phone, address, email, emergency_name, emergency_phone, photo_permission, created_at, updated_at`

var _ clients.Repository = (*ClientsRepo)(nil)

type ClientsRepo struct {
	db *DB
}

func NewClientsRepo(db *DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO clients (`+clientColumns+`)
		VALUES (?,?,?,?,?,?,?,?,?,?)
	`),
		c.ID,
		c.Name,
		c.Phone,
		c.Address,
		c.Email,
		c.EmergencyContactName,
		c.EmergencyContactPhone,
		c.PhotoConsent,
		toUnix(c.CreatedAt),
		toUnix(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}

	if err := insertCats(ctx, tx, c.ID, c.Cats); err != nil {
		return err
	}
	return tx.Commit()
}

// Update reemplaza datos y gatos en una sola transacción.
func (r *ClientsRepo) Update(ctx context.Context, c clients.Client) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, tx.Rebind(`
		UPDATE clients
		SET
			name = ?,
			phone = ?,
			address = ?,
			email = ?,
			emergency_name = ?,
			emergency_phone = ?,
			photo_permission = ?,
			updated_at = ?
		WHERE id = ?
	`),
		c.Name,
		c.Phone,
		c.Address,
		c.Email,
		c.EmergencyContactName,
		c.EmergencyContactPhone,
		c.PhotoConsent,
		toUnix(c.UpdatedAt),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clients.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM cats WHERE client_id = ?`), c.ID); err != nil {
		return fmt.Errorf("failed to delete cats: %w", err)
	}
	if err := insertCats(ctx, tx, c.ID, c.Cats); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *ClientsRepo) GetByID(ctx context.Context, id string) (clients.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return clients.Client{}, clients.ErrNotFound
	}

	var rows []clientRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(`SELECT `+clientColumns+` FROM clients WHERE id = ?`), id); err != nil {
		return clients.Client{}, fmt.Errorf("failed to query client: %w", err)
	}
	if len(rows) == 0 {
		return clients.Client{}, clients.ErrNotFound
	}

	cats, err := r.catsByClient(ctx, id)
	if err != nil {
		return clients.Client{}, err
	}
	return toClient(rows[0], cats[id]), nil
}

// List devuelve los clientes del más reciente al más antiguo.
func (r *ClientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	var rows []clientRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC, id`); err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}

	cats, err := r.catsByClient(ctx, "")
	if err != nil {
		return nil, err
	}

	out := make([]clients.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, toClient(row, cats[row.ID]))
	}
	return out, nil
}

// Delete borra en orden pagos, visitas, guarderías, gatos y cliente.
func (r *ClientsRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmts := []string{
		`DELETE FROM payments WHERE guarderia_id IN (SELECT id FROM guarderias WHERE client_id = ?)`,
		`DELETE FROM guarderias_visits WHERE guarderia_id IN (SELECT id FROM guarderias WHERE client_id = ?)`,
		`DELETE FROM guarderias WHERE client_id = ?`,
		`DELETE FROM cats WHERE client_id = ?`,
	}
	for _, q := range stmts {
		if _, err := tx.ExecContext(ctx, tx.Rebind(q), id); err != nil {
			return fmt.Errorf("failed to delete client data: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM clients WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clients.ErrNotFound
	}
	return tx.Commit()
}

// catsByClient agrupa gatos por cliente; clientID vacío trae todos.
func (r *ClientsRepo) catsByClient(ctx context.Context, clientID string) (map[string][]clients.Cat, error) {
	return loadCats(ctx, r.db.DB, clientID)
}

func loadCats(ctx context.Context, db *sqlx.DB, clientID string) (map[string][]clients.Cat, error) {
	query := `SELECT id, client_id, position, name, age, medical_condition FROM cats`
	args := []any{}
	if clientID != "" {
		query += ` WHERE client_id = ?`
		args = append(args, clientID)
	}
	query += ` ORDER BY client_id, position`

	var rows []catRow
	if err := db.SelectContext(ctx, &rows, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query cats: %w", err)
	}

	out := map[string][]clients.Cat{}
	for _, row := range rows {
		out[row.ClientID] = append(out[row.ClientID], clients.Cat{
			ID:               row.ID,
			ClientID:         row.ClientID,
			Name:             row.Name,
			Age:              row.Age,
			MedicalCondition: row.MedicalCondition,
		})
	}
	return out, nil
}

func insertCats(ctx context.Context, tx *sqlx.Tx, clientID string, cats []clients.Cat) error {
	for i, cat := range cats {
		_, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO cats (id, client_id, position, name, age, medical_condition)
			VALUES (?,?,?,?,?,?)
		`), cat.ID, clientID, i, cat.Name, cat.Age, cat.MedicalCondition)
		if err != nil {
			return fmt.Errorf("failed to insert cat: %w", err)
		}
	}
	return nil
}

func toClient(row clientRow, cats []clients.Cat) clients.Client {
	if cats == nil {
		cats = []clients.Cat{}
	}
	return clients.Client{
		ID:                    row.ID,
		Name:                  row.Name,
		Phone:                 row.Phone,
		Address:               row.Address,
		Email:                 row.Email,
		EmergencyContactName:  row.EmergencyName,
		EmergencyContactPhone: row.EmergencyPhone,
		PhotoConsent:          row.PhotoPermission,
		Cats:                  cats,
		CreatedAt:             fromUnix(row.CreatedAt),
		UpdatedAt:             fromUnix(row.UpdatedAt),
	}
}
