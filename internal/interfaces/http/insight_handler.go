package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/application/insights"
	"github.com/jhoicas/sanka-api/internal/domain"
)

// InsightHandler maneja el pipeline de insights y el feed (protegido).
type InsightHandler struct {
	uc *insights.UseCase
}

// NewInsightHandler construye el handler.
func NewInsightHandler(uc *insights.UseCase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar insights con IA
// @Description  Corre el pipeline completo (ventas, clientes, inventario, finanzas) y persiste el batch. Si cualquier análisis falla, la corrida se aborta sin guardar nada.
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.GenerateInsightsResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/insights/generate [post]
func (h *InsightHandler) Generate(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	out, err := h.uc.Generate(c.UserContext(), companyID)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_ERROR", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar insights activos
// @Description  Feed de insights no descartados, más recientes primero.
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InsightListResponse
// @Router       /api/insights [get]
func (h *InsightHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar insight como leído
// @Tags         insights
// @Security     Bearer
// @Param        id  path  string  true  "ID del insight"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/insights/{id}/read [post]
func (h *InsightHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insight no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Dismiss godoc
// @Summary      Descartar insight
// @Tags         insights
// @Security     Bearer
// @Param        id  path  string  true  "ID del insight"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/insights/{id}/dismiss [post]
func (h *InsightHandler) Dismiss(c *fiber.Ctx) error {
	if err := h.uc.Dismiss(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insight no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
