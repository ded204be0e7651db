package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-sync-api/internal/domain/entity"
	"github.com/jhoicas/inventario-sync-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL
// (usable con pool o tx).
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
	query := `
		INSERT INTO stocks (product_id, branch_id, client_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, branch_id, client_id) DO UPDATE SET
			quantity = EXCLUDED.quantity`
	_, err := r.q.Exec(context.Background(), query,
		stock.ProductID, stock.BranchID, stock.ClientID, stock.Quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByClient lista todas las existencias del cliente.
func (r *StockRepo) ListByClient(clientID string) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, branch_id, client_id, quantity
		FROM stocks WHERE client_id = $1`
	rows, err := r.q.Query(context.Background(), query, clientID)
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
