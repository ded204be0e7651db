package sqlite

import (
	"fmt"

	"github.com/jhoicas/inventario-sync-api/internal/domain/entity"
	"github.com/jhoicas/inventario-sync-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre SQLite
// (usable con conexión o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Upsert inserta o reemplaza la venta por (id, client_id).
func (r *SaleRepo) Upsert(sale *entity.Sale) error {
	_, err := r.q.Exec(`
		INSERT INTO sales (id, client_id, product_id, date, quantity)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id, client_id) DO UPDATE SET
			product_id = excluded.product_id,
			date = excluded.date,
			quantity = excluded.quantity`,
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
	rows, err := r.q.Query(
		`SELECT id, client_id, product_id, date, quantity FROM sales WHERE client_id = ? AND date >= ?`,
		clientID, cutoff,
	)
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
