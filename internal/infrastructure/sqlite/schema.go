package sqlite

import "fmt"

// schema DDL idempotente, equivalente al de PostgreSQL. Se ejecuta en cada
// arranque; no hay sistema de migraciones.
const schema = `
CREATE TABLE IF NOT EXISTS clients (
    id         TEXT PRIMARY KEY,
    api_key    TEXT NOT NULL,
    read_token TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS branches (
    id        TEXT NOT NULL,
    client_id TEXT NOT NULL REFERENCES clients(id),
    name      TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (id, client_id)
);

CREATE TABLE IF NOT EXISTS products (
    id          TEXT NOT NULL,
    client_id   TEXT NOT NULL REFERENCES clients(id),
    sku         TEXT NOT NULL DEFAULT '',
    name        TEXT NOT NULL DEFAULT '',
    supplier_id TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (id, client_id)
);

CREATE TABLE IF NOT EXISTS stocks (
    product_id TEXT NOT NULL,
    branch_id  TEXT NOT NULL,
    client_id  TEXT NOT NULL REFERENCES clients(id),
    quantity   INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (product_id, branch_id, client_id)
);

CREATE TABLE IF NOT EXISTS sales (
    id         TEXT NOT NULL,
    client_id  TEXT NOT NULL REFERENCES clients(id),
    product_id TEXT NOT NULL DEFAULT '',
    date       TEXT NOT NULL,
    quantity   INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (id, client_id)
);
CREATE INDEX IF NOT EXISTS idx_sales_client_date ON sales(client_id, date);
`

// InitSchema crea las tablas si no existen.
func InitSchema(q Querier) error {
	if _, err := q.Exec(schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
