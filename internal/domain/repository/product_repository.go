package repository

import "github.com/jhoicas/inventario-sync-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	// Upsert inserta o reemplaza por clave primaria (id, client_id).
	Upsert(product *entity.Product) error
	// ListByClient lista los productos del cliente, sin orden garantizado.
	ListByClient(clientID string) ([]*entity.Product, error)
}
