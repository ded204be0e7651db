package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-sync-api/internal/application/dto"
	"github.com/jhoicas/inventario-sync-api/internal/application/usecase"
	"github.com/jhoicas/inventario-sync-api/internal/domain"
	"github.com/jhoicas/inventario-sync-api/pkg/logger"
)

// ClientHandler alta de clientes (tenants). El endpoint no está autenticado:
// se asume expuesto solo en red interna, detrás del perímetro del operador.
type ClientHandler struct {
	uc  *usecase.ClientUseCase
	log *logger.Logger
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, log *logger.Logger) *ClientHandler {
	return &ClientHandler{uc: uc, log: log}
}

// AddClient godoc
// @Summary      Dar de alta un cliente (tenant)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "clientId requerido; credenciales vacías se generan"
// @Success      200   {object}  dto.CreateClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /admin/add-client [post]
func (h *ClientHandler) AddClient(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "clientId es requerido"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "clientId ya existe"})
		}
		h.log.Error().Err(err).Str("client_id", in.ClientID).Msg("alta de cliente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.MsgInternal})
	}
	return c.JSON(out)
}
