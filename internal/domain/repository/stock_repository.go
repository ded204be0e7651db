package repository

import "github.com/jhoicas/inventario-sync-api/internal/domain/entity"

// StockRepository puerto de persistencia para existencias por sucursal.
type StockRepository interface {
	// Upsert inserta o reemplaza por clave primaria (product_id, branch_id, client_id).
	// La cantidad es una foto absoluta: reemplaza, no acumula.
	Upsert(stock *entity.Stock) error
	// ListByClient lista todas las existencias del cliente.
	ListByClient(clientID string) ([]*entity.Stock, error)
}
