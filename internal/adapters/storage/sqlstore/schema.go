package sqlstore

// schema es válido en Postgres y en SQLite. Fechas de visita como texto
// YYYY-MM-DD; instantes como unix nanos.
const schema = `
CREATE TABLE IF NOT EXISTS clients (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	phone            TEXT NOT NULL DEFAULT '',
	address          TEXT NOT NULL DEFAULT '',
	email            TEXT NOT NULL DEFAULT '',
	emergency_name   TEXT NOT NULL DEFAULT '',
	emergency_phone  TEXT NOT NULL DEFAULT '',
	photo_permission BOOLEAN NOT NULL DEFAULT FALSE,
	created_at       BIGINT NOT NULL,
	updated_at       BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS cats (
	id                TEXT PRIMARY KEY,
	client_id         TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
	position          INTEGER NOT NULL DEFAULT 0,
	name              TEXT NOT NULL,
	age               TEXT NOT NULL DEFAULT '',
	medical_condition TEXT NOT NULL DEFAULT 'Ninguna'
);

CREATE INDEX IF NOT EXISTS idx_cats_client ON cats(client_id);

CREATE TABLE IF NOT EXISTS guarderias (
	id         TEXT PRIMARY KEY,
	client_id  TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
	created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS guarderias_visits (
	id           TEXT PRIMARY KEY,
	guarderia_id TEXT NOT NULL REFERENCES guarderias(id) ON DELETE CASCADE,
	visit_date   TEXT NOT NULL,
	visit_time   TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_visits_guarderia ON guarderias_visits(guarderia_id);

CREATE TABLE IF NOT EXISTS payments (
	id           TEXT PRIMARY KEY,
	guarderia_id TEXT NOT NULL REFERENCES guarderias(id) ON DELETE CASCADE,
	amount       BIGINT NOT NULL CHECK (amount > 0),
	method       TEXT NOT NULL,
	paid_at      BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_payments_guarderia ON payments(guarderia_id);
`
