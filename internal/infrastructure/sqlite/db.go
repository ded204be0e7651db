package sqlite

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx" // helper sobre database/sql
	_ "modernc.org/sqlite"    // driver sqlite en Go puro, sin cgo
)

// NewConnection abre (o crea) la base SQLite en la ruta dada. Es la variante
// embebida del almacenamiento: mismo contrato de repositorios que PostgreSQL,
// sin servidor externo. Activa foreign_keys y WAL para uso con escrituras
// concurrentes.
func NewConnection(path string) (*sqlx.DB, error) {
	dataSource := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// Para bases en memoria (tests) el DSN se usa tal cual; cache=shared es
	// necesario para que todas las conexiones vean la misma base.
	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		if !strings.Contains(path, "cache=shared") {
			return nil, fmt.Errorf("conexión en memoria %q debe incluir 'cache=shared'", path)
		}
		dataSource = path
	}

	db, err := sqlx.Open("sqlite", dataSource)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}
