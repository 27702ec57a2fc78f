package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	apppromo "github.com/jhoicas/Compras-api/internal/application/promo"
)

// PeriodHandler maneja las peticiones HTTP para periodos de descuento.
type PeriodHandler struct {
	periods *apppromo.PeriodUseCase
}

// NewPeriodHandler construye el handler.
func NewPeriodHandler(periods *apppromo.PeriodUseCase) *PeriodHandler {
	return &PeriodHandler{periods: periods}
}

// Create godoc
// @Summary      Crear periodo de descuento
// @Description  Intervalo cerrado a granularidad de día; dos periodos que se tocan en un extremo entran en conflicto y la creación responde 409.
// @Tags         periods
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePeriodRequest  true  "Datos del periodo"
// @Success      201   {object}  dto.PeriodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/discount-periods [post]
func (h *PeriodHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePeriodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.periods.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener periodo por ID (con estado calculado)
// @Tags         periods
// @Produce      json
// @Param        id   path  string  true  "ID del periodo"
// @Success      200  {object}  dto.PeriodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/discount-periods/{id} [get]
func (h *PeriodHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.periods.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "periodo no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar periodos de descuento
// @Tags         periods
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PeriodListResponse
// @Router       /api/discount-periods [get]
func (h *PeriodHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.periods.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
