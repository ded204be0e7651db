package sqlite

import (
	"fmt"

	"github.com/jhoicas/inventario-sync-api/internal/domain/entity"
	"github.com/jhoicas/inventario-sync-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre SQLite
// (usable con conexión o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de persistencia para existencias.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Upsert inserta o reemplaza la existencia por (product_id, branch_id, client_id).
// Quantity reemplaza el valor anterior, no lo acumula.
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	_, err := r.q.Exec(`
		INSERT INTO stocks (product_id, branch_id, client_id, quantity)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (product_id, branch_id, client_id) DO UPDATE SET
			quantity = excluded.quantity`,
		stock.ProductID, stock.BranchID, stock.ClientID, stock.Quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByClient lista todas las existencias del cliente.
func (r *StockRepo) ListByClient(clientID string) ([]*entity.Stock, error) {
	rows, err := r.q.Query(
		`SELECT product_id, branch_id, client_id, quantity FROM stocks WHERE client_id = ?`, clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.BranchID, &s.ClientID, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
