package repository

import "github.com/jhoicas/inventario-sync-api/internal/domain/entity"

// ClientRepository puerto de persistencia para clientes (tenants).
// Create retorna domain.ErrDuplicate si el ID ya existe.
// GetByID retorna (nil, nil) si el cliente no existe.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
}
