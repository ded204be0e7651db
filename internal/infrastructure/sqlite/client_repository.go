package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventario-sync-api/internal/domain"
	"github.com/jhoicas/inventario-sync-api/internal/domain/entity"
	"github.com/jhoicas/inventario-sync-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre SQLite.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente. Un id existente retorna domain.ErrDuplicate.
func (r *ClientRepo) Create(client *entity.Client) error {
	_, err := r.q.Exec(
		`INSERT INTO clients (id, api_key, read_token, created_at) VALUES (?, ?, ?, ?)`,
		client.ID, client.APIKey, client.ReadToken, client.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Retorna (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	var c entity.Client
	var createdAt string
	err := r.q.QueryRow(
		`SELECT id, api_key, read_token, created_at FROM clients WHERE id = ?`, id,
	).Scan(&c.ID, &c.APIKey, &c.ReadToken, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	if t, perr := time.Parse("2006-01-02 15:04:05", createdAt); perr == nil {
		c.CreatedAt = t
	}
	return &c, nil
}

// isUniqueViolation verifica si un error es una violación de constraint único
// de SQLite (código 1555/2067, "UNIQUE constraint failed").
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
