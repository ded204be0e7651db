package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-sync-api/internal/domain/entity"
	"github.com/jhoicas/inventario-sync-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL
// (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Upsert inserta o reemplaza la venta por (id, client_id).
func (r *SaleRepo) Upsert(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, client_id, product_id, date, quantity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id, client_id) DO UPDATE SET
			product_id = EXCLUDED.product_id,
			date = EXCLUDED.date,
			quantity = EXCLUDED.quantity`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ClientID, sale.ProductID, sale.Date, sale.Quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert sale: %w", err)
	}
	return nil
}

// ListByClientSince lista ventas con date >= cutoff. La columna date es TEXT
// "YYYY-MM-DD", así que la comparación de texto equivale a la cronológica.
func (r *SaleRepo) ListByClientSince(clientID, cutoff string) ([]*entity.Sale, error) {
	query := `
		SELECT id, client_id, product_id, date, quantity
		FROM sales WHERE client_id = $1 AND date >= $2`
	rows, err := r.q.Query(context.Background(), query, clientID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ClientID, &s.ProductID, &s.Date, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
