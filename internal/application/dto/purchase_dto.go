package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest línea de pedido en una petición.
type OrderLineRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	ColorID   string          `json:"color_id" validate:"required"`
	SizeID    string          `json:"size_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para crear un pedido de compra (estado draft).
type CreateOrderRequest struct {
	SupplierID       string             `json:"supplier_id" validate:"required"`
	OrderDate        time.Time          `json:"order_date"`
	ExpectedDelivery *time.Time         `json:"expected_delivery"` // estrictamente posterior a order_date
	Notes            string             `json:"notes"`
	Lines            []OrderLineRequest `json:"lines"`
}

// ReplaceOrderLinesRequest entrada para sustituir las líneas de un pedido draft.
type ReplaceOrderLinesRequest struct {
	Lines []OrderLineRequest `json:"lines" validate:"required,min=1"`
}

// TransitionOrderRequest entrada para solicitar un cambio de estado.
type TransitionOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderLineResponse línea de pedido en una respuesta.
type OrderLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	ColorID   string          `json:"color_id"`
	SizeID    string          `json:"size_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID               string              `json:"id"`
	SupplierID       string              `json:"supplier_id"`
	OrderDate        time.Time           `json:"order_date"`
	ExpectedDelivery *time.Time          `json:"expected_delivery,omitempty"`
	Status           string              `json:"status"`
	Lines            []OrderLineResponse `json:"lines"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	Notes            string              `json:"notes,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ReceiptLineRequest línea recibida en una recepción.
type ReceiptLineRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	ColorID   string          `json:"color_id" validate:"required"`
	SizeID    string          `json:"size_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"gte=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// RecordReceiptRequest entrada para registrar una recepción contra un pedido.
type RecordReceiptRequest struct {
	ReceiptDate time.Time            `json:"receipt_date"`
	Lines       []ReceiptLineRequest `json:"lines" validate:"required,min=1"`
}

// ReceiptLineResponse línea recibida en una respuesta.
type ReceiptLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	ColorID   string          `json:"color_id"`
	SizeID    string          `json:"size_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ReceiptResponse salida de una recepción.
type ReceiptResponse struct {
	ID            string                `json:"id"`
	SourceOrderID string                `json:"source_order_id"`
	ReceiptDate   time.Time             `json:"receipt_date"`
	Lines         []ReceiptLineResponse `json:"lines"`
	TotalValue    decimal.Decimal       `json:"total_value"`
	CreatedAt     time.Time             `json:"created_at"`
}

// ReceiptListResponse histórico de recepciones de un pedido.
type ReceiptListResponse struct {
	Items []ReceiptResponse `json:"items"`
}

// ReconciledLineResponse estado de conciliación de una línea del pedido.
type ReconciledLineResponse struct {
	ProductID string `json:"product_id"`
	ColorID   string `json:"color_id"`
	SizeID    string `json:"size_id"`
	Ordered   int    `json:"ordered"`
	Received  int    `json:"received"` // acumulado sobre todas las recepciones
	Pending   int    `json:"pending"`
	Fulfilled bool   `json:"fulfilled"`
	Over      bool   `json:"over"`
}

// RecordReceiptResponse resultado de registrar y conciliar una recepción.
// Warnings lleva las advertencias de sobre-recepción (no bloquean).
type RecordReceiptResponse struct {
	Receipt     ReceiptResponse          `json:"receipt"`
	Lines       []ReconciledLineResponse `json:"reconciliation"`
	OrderStatus string                   `json:"order_status"`
	Warnings    []string                 `json:"warnings,omitempty"`
}
