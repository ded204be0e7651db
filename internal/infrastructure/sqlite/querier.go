package sqlite

import "database/sql"

// Querier subconjunto de database/sql satisfecho tanto por *sqlx.DB como por
// *sqlx.Tx. Permite usar los mismos repositorios con la conexión o dentro de
// una transacción.
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
