package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/inventario-sync-api/internal/application/usecase"
	"github.com/jhoicas/inventario-sync-api/internal/domain/repository"
	"github.com/jhoicas/inventario-sync-api/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-sync-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/inventario-sync-api/internal/interfaces/http"
	"github.com/jhoicas/inventario-sync-api/pkg/config"
	"github.com/jhoicas/inventario-sync-api/pkg/logger"
)

// storage agrupa los repositorios y el runner transaccional del backend
// elegido. Las dos variantes (postgres y sqlite) exponen el mismo contrato;
// el resto de la aplicación no sabe cuál corre debajo.
type storage struct {
	clients  repository.ClientRepository
	branches repository.BranchRepository
	products repository.ProductRepository
	stocks   repository.StockRepository
	sales    repository.SaleRepository
	tx       usecase.TxRunner
	close    func()
}

// openStorage abre el backend según DB_DRIVER y crea el esquema si no existe.
func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.DB.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.InitSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &storage{
			clients:  postgres.NewClientRepository(pool),
			branches: postgres.NewBranchRepository(pool),
			products: postgres.NewProductRepository(pool),
			stocks:   postgres.NewStockRepository(pool),
			sales:    postgres.NewSaleRepository(pool),
			tx:       postgres.NewTxRunner(pool),
			close:    pool.Close,
		}, nil
	case "sqlite":
		db, err := sqlite.NewConnection(cfg.DB.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("conexión a SQLite: %w", err)
		}
		if err := sqlite.InitSchema(db); err != nil {
			db.Close()
			return nil, err
		}
		return &storage{
			clients:  sqlite.NewClientRepository(db),
			branches: sqlite.NewBranchRepository(db),
			products: sqlite.NewProductRepository(db),
			stocks:   sqlite.NewStockRepository(db),
			sales:    sqlite.NewSaleRepository(db),
			tx:       sqlite.NewTxRunner(db),
			close:    func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("driver de base de datos desconocido: %q", cfg.DB.Driver)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.close()

	clientUC := usecase.NewClientUseCase(store.clients, usecase.DuplicatePolicy(cfg.Admin.DuplicatePolicy))
	ingestUC := usecase.NewIngestUseCase(store.tx)
	queryUC := usecase.NewQueryUseCase(store.branches, store.products, store.stocks, store.sales)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC: clientUC,
		IngestUC: ingestUC,
		QueryUC:  queryUC,
		Log:      log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
