package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-sync-api/internal/application/dto"
	"github.com/jhoicas/inventario-sync-api/internal/domain"
	"github.com/jhoicas/inventario-sync-api/internal/domain/entity"
	"github.com/jhoicas/inventario-sync-api/internal/domain/repository"
)

// IngestUseCase aplica lotes de ingesta por colección. Cada lote corre en una
// única transacción: o se aplican todos los registros o ninguno. El clientId
// autenticado se impone sobre cada registro; los valores de tenant enviados
// por el conector se ignoran. Un lote vacío es válido y confirma received: 0.
type IngestUseCase struct {
	tx TxRunner
}

// NewIngestUseCase construye el caso de uso.
func NewIngestUseCase(tx TxRunner) *IngestUseCase {
	return &IngestUseCase{tx: tx}
}

// IngestBranches upsert de sucursales en orden de llegada.
func (uc *IngestUseCase) IngestBranches(ctx context.Context, clientID string, records []dto.BranchRecord) (int, error) {
	err := uc.tx.Run(ctx, func(
		branches repository.BranchRepository,
		_ repository.ProductRepository,
		_ repository.StockRepository,
		_ repository.SaleRepository,
	) error {
		for _, r := range records {
			b := &entity.Branch{ID: r.ID, ClientID: clientID, Name: r.Name}
			if err := branches.Upsert(b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// IngestProducts upsert de productos en orden de llegada.
func (uc *IngestUseCase) IngestProducts(ctx context.Context, clientID string, records []dto.ProductRecord) (int, error) {
	err := uc.tx.Run(ctx, func(
		_ repository.BranchRepository,
		products repository.ProductRepository,
		_ repository.StockRepository,
		_ repository.SaleRepository,
	) error {
		for _, r := range records {
			p := &entity.Product{
				ID:         r.ID,
				ClientID:   clientID,
				SKU:        r.SKU,
				Name:       r.Name,
				SupplierID: r.SupplierID,
			}
			if err := products.Upsert(p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// IngestStocks upsert de existencias. Quantity es foto absoluta: bajo
// concurrencia sobre la misma clave gana la última escritura confirmada.
func (uc *IngestUseCase) IngestStocks(ctx context.Context, clientID string, records []dto.StockRecord) (int, error) {
	err := uc.tx.Run(ctx, func(
		_ repository.BranchRepository,
		_ repository.ProductRepository,
		stocks repository.StockRepository,
		_ repository.SaleRepository,
	) error {
		for _, r := range records {
			s := &entity.Stock{
				ProductID: r.ProductID,
				BranchID:  r.BranchID,
				ClientID:  clientID,
				Quantity:  r.Quantity,
			}
			if err := stocks.Upsert(s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// IngestSales upsert de ventas. Las fechas se validan antes de abrir la
// transacción: el filtro por fecha es comparación lexicográfica y solo es
// correcto con "YYYY-MM-DD", así que un formato distinto rechaza el lote
// completo sin escribir nada.
func (uc *IngestUseCase) IngestSales(ctx context.Context, clientID string, records []dto.SaleRecord) (int, error) {
	for _, r := range records {
		if !validSaleDate(r.Date) {
			return 0, domain.ErrInvalidInput
		}
	}
	err := uc.tx.Run(ctx, func(
		_ repository.BranchRepository,
		_ repository.ProductRepository,
		_ repository.StockRepository,
		sales repository.SaleRepository,
	) error {
		for _, r := range records {
			s := &entity.Sale{
				ID:        r.ID,
				ClientID:  clientID,
				ProductID: r.ProductID,
				Date:      r.Date,
				Quantity:  r.Quantity,
			}
			if err := sales.Upsert(s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// validSaleDate exige exactamente "YYYY-MM-DD" y un día calendario real.
func validSaleDate(s string) bool {
	if len(s) != len(entity.SaleDateLayout) {
		return false
	}
	_, err := time.Parse(entity.SaleDateLayout, s)
	return err == nil
}
