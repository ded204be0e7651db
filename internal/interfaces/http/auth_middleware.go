package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventario-sync-api/internal/application/dto"
	"github.com/jhoicas/inventario-sync-api/internal/application/usecase"
	"github.com/jhoicas/inventario-sync-api/internal/domain"
	"github.com/jhoicas/inventario-sync-api/pkg/logger"
)

// Headers de autenticación. El tenant se identifica con X-Client-ID y la
// credencial puede venir en X-API-Key o como Bearer en Authorization; ambas
// formas alimentan el mismo slot, con X-API-Key de mayor prioridad en los dos
// guards.
const (
	HeaderClientID = "X-Client-ID"
	HeaderAPIKey   = "X-API-Key"
)

// Local key para el ClientID resuelto en Fiber.
const LocalClientID = "client_id"

// WriteAuthMiddleware valida la credencial de escritura (APIKey) y deja el
// ClientID resuelto en c.Locals. Protege las rutas de ingesta.
func WriteAuthMiddleware(clients *usecase.ClientUseCase, log *logger.Logger) fiber.Handler {
	return authMiddleware(clients, log, usecase.CredentialWrite)
}

// ReadAuthMiddleware valida la credencial de lectura (ReadToken) y deja el
// ClientID resuelto en c.Locals. Protege las rutas de consulta.
func ReadAuthMiddleware(clients *usecase.ClientUseCase, log *logger.Logger) fiber.Handler {
	return authMiddleware(clients, log, usecase.CredentialRead)
}

func authMiddleware(clients *usecase.ClientUseCase, log *logger.Logger, kind usecase.CredentialKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID := c.Get(HeaderClientID)
		credential := extractCredential(c)
		if clientID == "" || credential == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: dto.MsgUnauthorized})
		}
		client, err := clients.Resolve(clientID, credential, kind)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: dto.MsgUnauthorized})
			}
			log.Error().Err(err).Str("client_id", clientID).Msg("resolver credencial")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: dto.MsgInternal})
		}
		c.Locals(LocalClientID, client.ID)
		return c.Next()
	}
}

// extractCredential toma la credencial de X-API-Key y, si no está, del header
// Authorization con esquema Bearer.
func extractCredential(c *fiber.Ctx) string {
	if key := c.Get(HeaderAPIKey); key != "" {
		return key
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// GetClientID devuelve el ClientID del contexto (después del middleware de auth).
func GetClientID(c *fiber.Ctx) string {
	v := c.Locals(LocalClientID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
