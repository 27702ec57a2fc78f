package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	apppurchasing "github.com/jhoicas/Compras-api/internal/application/purchasing"
)

// ReceiptHandler maneja las peticiones HTTP para recepciones de mercancía.
type ReceiptHandler struct {
	receipts *apppurchasing.RecordReceiptUseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(receipts *apppurchasing.RecordReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts}
}

// Record godoc
// @Summary      Registrar una recepción contra un pedido
// @Description  Persiste la recepción y concilia el acumulado de TODAS las recepciones del pedido contra lo pedido; si procede, el estado del pedido avanza en la misma transacción. Un sobre-recibo se acepta con warning.
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del pedido"
// @Param        body  body  dto.RecordReceiptRequest  true  "Líneas recibidas"
// @Success      201   {object}  dto.RecordReceiptResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipts [post]
func (h *ReceiptHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lines es requerido"})
	}
	out, err := h.receipts.Record(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByOrder godoc
// @Summary      Listar recepciones de un pedido
// @Tags         receipts
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.ReceiptListResponse
// @Router       /api/orders/{id}/receipts [get]
func (h *ReceiptHandler) ListByOrder(c *fiber.Ctx) error {
	out, err := h.receipts.ListByOrder(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
