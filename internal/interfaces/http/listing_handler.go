package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/application/usecase"
	"github.com/jhoicas/sanka-api/internal/domain"
)

// ListingHandler maneja las publicaciones en marketplaces (protegido).
type ListingHandler struct {
	uc *usecase.ListingUseCase
}

// NewListingHandler construye el handler.
func NewListingHandler(uc *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{uc: uc}
}

// GenerateCopy godoc
// @Summary      Generar copy de publicación con IA
// @Description  El modelo devuelve título y descripción optimizados; no persiste nada.
// @Tags         listings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateListingRequest  true  "Producto"
// @Success      200   {object}  dto.GeneratedListingCopy
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/listings/generate [post]
func (h *ListingHandler) GenerateCopy(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	var in dto.GenerateListingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.GenerateCopy(c.UserContext(), companyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_ERROR", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Publicar producto en marketplaces
// @Tags         listings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateListingsRequest  true  "Publicación"
// @Success      201   {object}  dto.ListingListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/listings [post]
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	var in dto.CreateListingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar publicaciones
// @Tags         listings
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ListingListResponse
// @Router       /api/listings [get]
func (h *ListingHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	limit, offset := pagination(c)
	out, err := h.uc.List(companyID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una publicación
// @Tags         listings
// @Security     Bearer
// @Param        id      path   string  true  "ID de la publicación"
// @Param        status  query  string  true  "Nuevo estado"  Enums(draft, active, paused, error)
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/listings/{id}/status [post]
func (h *ListingHandler) UpdateStatus(c *fiber.Ctx) error {
	if err := h.uc.UpdateStatus(c.Params("id"), c.Query("status")); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "publicación no encontrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
