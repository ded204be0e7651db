package repository

import "github.com/jhoicas/inventario-sync-api/internal/domain/entity"

// BranchRepository puerto de persistencia para sucursales.
type BranchRepository interface {
	// Upsert inserta o reemplaza por clave primaria (id, client_id).
	Upsert(branch *entity.Branch) error
	// ListByClient lista las sucursales del cliente, sin orden garantizado.
	ListByClient(clientID string) ([]*entity.Branch, error)
}
