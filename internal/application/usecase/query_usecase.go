package usecase

import (
	"time"

	"github.com/jhoicas/inventario-sync-api/internal/application/dto"
	"github.com/jhoicas/inventario-sync-api/internal/domain"
	"github.com/jhoicas/inventario-sync-api/internal/domain/entity"
	"github.com/jhoicas/inventario-sync-api/internal/domain/repository"
)

// DefaultSalesDays ventana por defecto de GET /sales.
const DefaultSalesDays = 90

// QueryUseCase vistas de lectura por tenant: sucursales, productos con
// existencias por sucursal y ventas recientes.
type QueryUseCase struct {
	branches repository.BranchRepository
	products repository.ProductRepository
	stocks   repository.StockRepository
	sales    repository.SaleRepository
	now      func() time.Time
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	branches repository.BranchRepository,
	products repository.ProductRepository,
	stocks repository.StockRepository,
	sales repository.SaleRepository,
) *QueryUseCase {
	return &QueryUseCase{
		branches: branches,
		products: products,
		stocks:   stocks,
		sales:    sales,
		now:      time.Now,
	}
}

// ListBranches lista las sucursales del cliente.
func (uc *QueryUseCase) ListBranches(clientID string) ([]dto.BranchResponse, error) {
	list, err := uc.branches.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.BranchResponse{ID: b.ID, Name: b.Name})
	}
	return out, nil
}

// ListProductsWithStock lista los productos del cliente con el mapa
// sucursal → cantidad. El join productos × existencias se arma en memoria;
// un producto sin existencias lleva el mapa vacío, nunca nil.
func (uc *QueryUseCase) ListProductsWithStock(clientID string) ([]dto.ProductWithStockResponse, error) {
	products, err := uc.products.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	stocks, err := uc.stocks.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	byProduct := make(map[string]map[string]int, len(products))
	for _, s := range stocks {
		m := byProduct[s.ProductID]
		if m == nil {
			m = make(map[string]int)
			byProduct[s.ProductID] = m
		}
		m[s.BranchID] = s.Quantity
	}
	out := make([]dto.ProductWithStockResponse, 0, len(products))
	for _, p := range products {
		m := byProduct[p.ID]
		if m == nil {
			m = map[string]int{}
		}
		out = append(out, dto.ProductWithStockResponse{
			ID:            p.ID,
			SKU:           p.SKU,
			Name:          p.Name,
			SupplierID:    p.SupplierID,
			StockByBranch: m,
		})
	}
	return out, nil
}

// ListSales lista las ventas del cliente con date >= hoy − days (inclusive,
// truncado a día). days debe ser un entero positivo.
func (uc *QueryUseCase) ListSales(clientID string, days int) ([]dto.SaleResponse, error) {
	if days < 1 {
		return nil, domain.ErrInvalidInput
	}
	cutoff := cutoffDate(uc.now(), days)
	list, err := uc.sales.ListByClientSince(clientID, cutoff)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SaleResponse{
			ID:        s.ID,
			ProductID: s.ProductID,
			Date:      s.Date,
			Quantity:  s.Quantity,
		})
	}
	return out, nil
}

// cutoffDate calcula hoy − days como día calendario "YYYY-MM-DD".
func cutoffDate(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format(entity.SaleDateLayout)
}
