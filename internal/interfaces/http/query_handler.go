package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-sync-api/internal/application/dto"
	"github.com/jhoicas/inventario-sync-api/internal/application/usecase"
	"github.com/jhoicas/inventario-sync-api/pkg/logger"
)

// QueryHandler maneja las consultas de lectura por tenant (guard de lectura).
type QueryHandler struct {
	uc  *usecase.QueryUseCase
	log *logger.Logger
}

// NewQueryHandler construye el handler.
func NewQueryHandler(uc *usecase.QueryUseCase, log *logger.Logger) *QueryHandler {
	return &QueryHandler{uc: uc, log: log}
}

// Branches godoc
// @Summary      Listar sucursales del cliente
// @Tags         query
// @Produce      json
// @Success      200  {array}   dto.BranchResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /branches [get]
func (h *QueryHandler) Branches(c *fiber.Ctx) error {
	clientID := GetClientID(c)
	if clientID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: dto.MsgUnauthorized})
	}
	out, err := h.uc.ListBranches(clientID)
	if err != nil {
		return h.queryError(c, clientID, "branches", err)
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Listar productos con existencias por sucursal
// @Tags         query
// @Produce      json
// @Success      200  {array}   dto.ProductWithStockResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /products [get]
func (h *QueryHandler) Products(c *fiber.Ctx) error {
	clientID := GetClientID(c)
	if clientID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: dto.MsgUnauthorized})
	}
	out, err := h.uc.ListProductsWithStock(clientID)
	if err != nil {
		return h.queryError(c, clientID, "products", err)
	}
	return c.JSON(out)
}

// Sales godoc
// @Summary      Listar ventas recientes del cliente
// @Tags         query
// @Produce      json
// @Param        days  query  int  false  "Ventana en días calendario"  default(90)
// @Success      200   {array}   dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /sales [get]
func (h *QueryHandler) Sales(c *fiber.Ctx) error {
	clientID := GetClientID(c)
	if clientID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: dto.MsgUnauthorized})
	}
	// days se rechaza explícito si no es un entero positivo, en lugar de
	// degradar en silencio al valor por defecto.
	days := usecase.DefaultSalesDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "days debe ser un entero positivo"})
		}
		days = n
	}
	out, err := h.uc.ListSales(clientID, days)
	if err != nil {
		return h.queryError(c, clientID, "sales", err)
	}
	return c.JSON(out)
}

// queryError registra el detalle del fallo de almacenamiento y responde un
// 500 opaco.
func (h *QueryHandler) queryError(c *fiber.Ctx, clientID, view string, err error) error {
	h.log.Error().Err(err).Str("client_id", clientID).Str("view", view).Msg("consulta fallida")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.MsgInternal})
}
