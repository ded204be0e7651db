package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-sync-api/internal/application/dto"
	"github.com/jhoicas/inventario-sync-api/internal/application/usecase"
	"github.com/jhoicas/inventario-sync-api/internal/domain"
	"github.com/jhoicas/inventario-sync-api/pkg/logger"
)

// IngestHandler maneja los POST de ingesta por colección (guard de escritura).
// Cada petición aplica su lote en una sola transacción: nunca se observa una
// aplicación parcial.
type IngestHandler struct {
	uc  *usecase.IngestUseCase
	log *logger.Logger
}

// NewIngestHandler construye el handler.
func NewIngestHandler(uc *usecase.IngestUseCase, log *logger.Logger) *IngestHandler {
	return &IngestHandler{uc: uc, log: log}
}

// Branches godoc
// @Summary      Ingesta de sucursales
// @Tags         ingest
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BranchIngestRequest  true  "lote de sucursales"
// @Success      200   {object}  dto.IngestResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /ingest/branches [post]
func (h *IngestHandler) Branches(c *fiber.Ctx) error {
	clientID := GetClientID(c)
	if clientID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: dto.MsgUnauthorized})
	}
	var in dto.BranchIngestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	received, err := h.uc.IngestBranches(c.Context(), clientID, in.Data)
	if err != nil {
		return h.ingestError(c, clientID, "branches", err)
	}
	return c.JSON(dto.IngestResponse{Status: "ok", Received: received})
}

// Products godoc
// @Summary      Ingesta de productos
// @Tags         ingest
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductIngestRequest  true  "lote de productos"
// @Success      200   {object}  dto.IngestResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /ingest/products [post]
func (h *IngestHandler) Products(c *fiber.Ctx) error {
	clientID := GetClientID(c)
	if clientID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: dto.MsgUnauthorized})
	}
	var in dto.ProductIngestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	received, err := h.uc.IngestProducts(c.Context(), clientID, in.Data)
	if err != nil {
		return h.ingestError(c, clientID, "products", err)
	}
	return c.JSON(dto.IngestResponse{Status: "ok", Received: received})
}

// Stocks godoc
// @Summary      Ingesta de existencias (foto absoluta por sucursal)
// @Tags         ingest
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockIngestRequest  true  "lote de existencias"
// @Success      200   {object}  dto.IngestResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /ingest/stocks [post]
func (h *IngestHandler) Stocks(c *fiber.Ctx) error {
	clientID := GetClientID(c)
	if clientID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: dto.MsgUnauthorized})
	}
	var in dto.StockIngestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	received, err := h.uc.IngestStocks(c.Context(), clientID, in.Data)
	if err != nil {
		return h.ingestError(c, clientID, "stocks", err)
	}
	return c.JSON(dto.IngestResponse{Status: "ok", Received: received})
}

// Sales godoc
// @Summary      Ingesta de ventas
// @Tags         ingest
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleIngestRequest  true  "lote de ventas, date en YYYY-MM-DD"
// @Success      200   {object}  dto.IngestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /ingest/sales [post]
func (h *IngestHandler) Sales(c *fiber.Ctx) error {
	clientID := GetClientID(c)
	if clientID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: dto.MsgUnauthorized})
	}
	var in dto.SaleIngestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	received, err := h.uc.IngestSales(c.Context(), clientID, in.Data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "date debe tener formato YYYY-MM-DD"})
		}
		return h.ingestError(c, clientID, "sales", err)
	}
	return c.JSON(dto.IngestResponse{Status: "ok", Received: received})
}

// ingestError registra el detalle del fallo de almacenamiento y responde un
// 500 opaco: el lote completo quedó revertido.
func (h *IngestHandler) ingestError(c *fiber.Ctx, clientID, collection string, err error) error {
	h.log.Error().Err(err).Str("client_id", clientID).Str("collection", collection).Msg("ingesta fallida")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.MsgInternal})
}
