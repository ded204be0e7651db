package usecase

import (
	"context"

	"github.com/jhoicas/inventario-sync-api/internal/domain/repository"
)

// TxRunner ejecuta un callback dentro de una transacción del backend de
// almacenamiento, con repositorios atados a la tx. Commit si fn retorna nil,
// Rollback en caso contrario: el lote completo se aplica o no se aplica nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		branches repository.BranchRepository,
		products repository.ProductRepository,
		stocks repository.StockRepository,
		sales repository.SaleRepository,
	) error) error
}
