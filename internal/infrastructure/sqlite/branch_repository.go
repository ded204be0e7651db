package sqlite

import (
	"fmt"

	"github.com/jhoicas/inventario-sync-api/internal/domain/entity"
	"github.com/jhoicas/inventario-sync-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre SQLite
// (usable con conexión o tx).
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador de persistencia para sucursales.
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Upsert inserta o reemplaza la sucursal por (id, client_id). Last-write-wins.
func (r *BranchRepo) Upsert(branch *entity.Branch) error {
	_, err := r.q.Exec(`
		INSERT INTO branches (id, client_id, name)
		VALUES (?, ?, ?)
		ON CONFLICT (id, client_id) DO UPDATE SET name = excluded.name`,
		branch.ID, branch.ClientID, branch.Name,
	)
	if err != nil {
		return fmt.Errorf("upsert branch: %w", err)
	}
	return nil
}

// ListByClient lista las sucursales del cliente.
func (r *BranchRepo) ListByClient(clientID string) ([]*entity.Branch, error) {
	rows, err := r.q.Query(
		`SELECT id, client_id, name FROM branches WHERE client_id = ?`, clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.ClientID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
