package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sanka-api/internal/application/assistant"
	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/domain"
)

// AssistantHandler maneja el chat de negocio (protegido).
type AssistantHandler struct {
	uc *assistant.UseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *assistant.UseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Ask godoc
// @Summary      Preguntar al asistente de negocio
// @Description  Responde con el contexto de los datos de los últimos 30 días.
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssistantRequest  true  "Pregunta"
// @Success      200   {object}  dto.AssistantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/assistant [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	var in dto.AssistantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Ask(c.UserContext(), companyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_ERROR", Message: err.Error()})
	}
	return c.JSON(out)
}
