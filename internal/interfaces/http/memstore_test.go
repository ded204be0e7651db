package http_test

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-sync-api/internal/application/usecase"
	"github.com/jhoicas/inventario-sync-api/internal/domain"
	"github.com/jhoicas/inventario-sync-api/internal/domain/entity"
	"github.com/jhoicas/inventario-sync-api/internal/domain/repository"
	apphttp "github.com/jhoicas/inventario-sync-api/internal/interfaces/http"
	"github.com/jhoicas/inventario-sync-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacenamiento en memoria para tests: mismo contrato de upsert y aislamiento
// por tenant que los backends reales, con rollback por copia de mapas.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	clients  map[string]*entity.Client
	branches map[string]*entity.Branch // clave id|clientID
	products map[string]*entity.Product
	stocks   map[string]*entity.Stock // clave productID|branchID|clientID
	sales    map[string]*entity.Sale

	// failBranchID provoca un error de upsert sobre esa sucursal, para
	// simular una violación de constraint a mitad de lote.
	failBranchID string
	// clientErr simula un fallo de almacenamiento al resolver clientes.
	clientErr error
}

func newMemStore() *memStore {
	return &memStore{
		clients:  map[string]*entity.Client{},
		branches: map[string]*entity.Branch{},
		products: map[string]*entity.Product{},
		stocks:   map[string]*entity.Stock{},
		sales:    map[string]*entity.Sale{},
	}
}

func key2(a, b string) string    { return a + "|" + b }
func key3(a, b, c string) string { return a + "|" + b + "|" + c }

type memClientRepo struct{ s *memStore }

func (r *memClientRepo) Create(c *entity.Client) error {
	if _, ok := r.s.clients[c.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *c
	r.s.clients[c.ID] = &cp
	return nil
}

func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	if r.s.clientErr != nil {
		return nil, r.s.clientErr
	}
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

type memBranchRepo struct{ s *memStore }

func (r *memBranchRepo) Upsert(b *entity.Branch) error {
	if r.s.failBranchID != "" && b.ID == r.s.failBranchID {
		return domain.ErrInvalidInput
	}
	cp := *b
	r.s.branches[key2(b.ID, b.ClientID)] = &cp
	return nil
}

func (r *memBranchRepo) ListByClient(clientID string) ([]*entity.Branch, error) {
	var list []*entity.Branch
	for _, b := range r.s.branches {
		if b.ClientID == clientID {
			cp := *b
			list = append(list, &cp)
		}
	}
	return list, nil
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Upsert(p *entity.Product) error {
	cp := *p
	r.s.products[key2(p.ID, p.ClientID)] = &cp
	return nil
}

func (r *memProductRepo) ListByClient(clientID string) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.ClientID == clientID {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Upsert(st *entity.Stock) error {
	cp := *st
	r.s.stocks[key3(st.ProductID, st.BranchID, st.ClientID)] = &cp
	return nil
}

func (r *memStockRepo) ListByClient(clientID string) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for _, st := range r.s.stocks {
		if st.ClientID == clientID {
			cp := *st
			list = append(list, &cp)
		}
	}
	return list, nil
}

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Upsert(sa *entity.Sale) error {
	cp := *sa
	r.s.sales[key2(sa.ID, sa.ClientID)] = &cp
	return nil
}

func (r *memSaleRepo) ListByClientSince(clientID, cutoff string) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for _, sa := range r.s.sales {
		if sa.ClientID == clientID && sa.Date >= cutoff {
			cp := *sa
			list = append(list, &cp)
		}
	}
	return list, nil
}

// memTxRunner copia los mapas antes de ejecutar fn y los restaura si fn
// falla: todo o nada, igual que la transacción real.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	branches repository.BranchRepository,
	products repository.ProductRepository,
	stocks repository.StockRepository,
	sales repository.SaleRepository,
) error) error {
	branchesBak := copyMap(r.s.branches)
	productsBak := copyMap(r.s.products)
	stocksBak := copyMap(r.s.stocks)
	salesBak := copyMap(r.s.sales)

	err := fn(&memBranchRepo{r.s}, &memProductRepo{r.s}, &memStockRepo{r.s}, &memSaleRepo{r.s})
	if err != nil {
		r.s.branches = branchesBak
		r.s.products = productsBak
		r.s.stocks = stocksBak
		r.s.sales = salesBak
		return err
	}
	return nil
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción de la app de test: router completo sobre el store en memoria.
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp(store *memStore, policy usecase.DuplicatePolicy) *fiber.App {
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	clientRepo := &memClientRepo{store}
	clientUC := usecase.NewClientUseCase(clientRepo, policy)
	ingestUC := usecase.NewIngestUseCase(&memTxRunner{store})
	queryUC := usecase.NewQueryUseCase(
		&memBranchRepo{store}, &memProductRepo{store}, &memStockRepo{store}, &memSaleRepo{store},
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ClientUC: clientUC,
		IngestUC: ingestUC,
		QueryUC:  queryUC,
		Log:      log,
	})
	return app
}

// seedClient registra un cliente con credenciales conocidas.
func seedClient(store *memStore, id, apiKey, readToken string) {
	store.clients[id] = &entity.Client{ID: id, APIKey: apiKey, ReadToken: readToken}
}
