package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-sync-api/internal/application/usecase"
	"github.com/jhoicas/inventario-sync-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC *usecase.ClientUseCase
	IngestUC *usecase.IngestUseCase
	QueryUC  *usecase.QueryUseCase
	Log      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Admin (sin autenticación; brecha heredada, documentada)
	clientHandler := NewClientHandler(deps.ClientUC, deps.Log)
	app.Post("/admin/add-client", clientHandler.AddClient)

	// Ingesta (guard de escritura: APIKey)
	ingest := app.Group("/ingest", WriteAuthMiddleware(deps.ClientUC, deps.Log))
	ingestHandler := NewIngestHandler(deps.IngestUC, deps.Log)
	ingest.Post("/branches", ingestHandler.Branches)
	ingest.Post("/products", ingestHandler.Products)
	ingest.Post("/stocks", ingestHandler.Stocks)
	ingest.Post("/sales", ingestHandler.Sales)

	// Consultas (guard de lectura: ReadToken)
	readGuard := ReadAuthMiddleware(deps.ClientUC, deps.Log)
	queryHandler := NewQueryHandler(deps.QueryUC, deps.Log)
	app.Get("/branches", readGuard, queryHandler.Branches)
	app.Get("/products", readGuard, queryHandler.Products)
	app.Get("/sales", readGuard, queryHandler.Sales)
}
