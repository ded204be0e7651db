package repository

import "github.com/jhoicas/inventario-sync-api/internal/domain/entity"

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	// Upsert inserta o reemplaza por clave primaria (id, client_id).
	Upsert(sale *entity.Sale) error
	// ListByClientSince lista las ventas del cliente con date >= cutoff
	// (inclusive). cutoff en formato "YYYY-MM-DD"; la comparación es de texto,
	// correcta para fechas ISO.
	ListByClientSince(clientID, cutoff string) ([]*entity.Sale, error)
}
