package sqlite

import (
	"fmt"

	"github.com/jhoicas/inventario-sync-api/internal/domain/entity"
	"github.com/jhoicas/inventario-sync-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite
// (usable con conexión o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Upsert inserta o reemplaza el producto por (id, client_id). Todos los campos
// no clave se reemplazan con el último envío.
func (r *ProductRepo) Upsert(product *entity.Product) error {
	_, err := r.q.Exec(`
		INSERT INTO products (id, client_id, sku, name, supplier_id)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id, client_id) DO UPDATE SET
			sku = excluded.sku,
			name = excluded.name,
			supplier_id = excluded.supplier_id`,
		product.ID, product.ClientID, product.SKU, product.Name, product.SupplierID,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// ListByClient lista los productos del cliente.
func (r *ProductRepo) ListByClient(clientID string) ([]*entity.Product, error) {
	rows, err := r.q.Query(
		`SELECT id, client_id, sku, name, supplier_id FROM products WHERE client_id = ?`, clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.ClientID, &p.SKU, &p.Name, &p.SupplierID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
