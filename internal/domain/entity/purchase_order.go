package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido de compra (enumeración cerrada).
// Las transiciones válidas las gobierna purchasing.Transition; ningún otro
// código debe asignar estados directamente.
type OrderStatus string

const (
	OrderStatusDraft             OrderStatus = "draft"
	OrderStatusSent              OrderStatus = "sent"
	OrderStatusConfirmed         OrderStatus = "confirmed"
	OrderStatusPartiallyReceived OrderStatus = "partially_received"
	OrderStatusCompleted         OrderStatus = "completed"
	OrderStatusCancelled         OrderStatus = "cancelled"
)

// Valid indica si el valor pertenece a la enumeración.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusSent, OrderStatusConfirmed,
		OrderStatusPartiallyReceived, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal indica si el estado no admite más transiciones.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Editable indica si el pedido aún admite edición de líneas (solo draft).
func (s OrderStatus) Editable() bool {
	return s == OrderStatusDraft
}

// Receivable indica si el pedido admite registrar recepciones.
func (s OrderStatus) Receivable() bool {
	return s == OrderStatusConfirmed || s == OrderStatusPartiallyReceived
}

// PurchaseOrder pedido de compra a un proveedor.
// Se crea en draft; sus líneas solo se editan en draft y el pedido es dueño de
// ellas (se eliminan en cascada mientras sea draft). TotalAmount es derivado.
type PurchaseOrder struct {
	ID               string
	SupplierID       string
	OrderDate        time.Time
	ExpectedDelivery *time.Time // opcional; estrictamente posterior a OrderDate
	Status           OrderStatus
	Lines            []OrderLineItem
	TotalAmount      decimal.Decimal
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderLineItem línea de un pedido: una VariantKey con cantidad pedida y precio.
type OrderLineItem struct {
	ID        string
	OrderID   string
	ProductID string
	ColorID   string
	SizeID    string
	Quantity  int             // entero > 0
	UnitPrice decimal.Decimal // >= 0
}

// Key devuelve la VariantKey de la línea.
func (l OrderLineItem) Key() VariantKey {
	return VariantKey{ProductID: l.ProductID, ColorID: l.ColorID, SizeID: l.SizeID}
}

// LineQuantity implementa purchasing.Line.
func (l OrderLineItem) LineQuantity() int { return l.Quantity }

// LineUnitPrice implementa purchasing.Line.
func (l OrderLineItem) LineUnitPrice() decimal.Decimal { return l.UnitPrice }

// LineTotal cantidad × precio unitario.
func (l OrderLineItem) LineTotal() decimal.Decimal {
	return decimal.NewFromInt(int64(l.Quantity)).Mul(l.UnitPrice)
}
