package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoodsReceipt recepción de mercancía contra exactamente un pedido de compra.
// Solo puede crearse si el pedido está confirmed o partially_received y es
// inmutable una vez creada: guarda sus propias copias de cantidad y precio
// para que el histórico no dependa de las líneas del pedido.
type GoodsReceipt struct {
	ID            string
	SourceOrderID string
	ReceiptDate   time.Time
	Lines         []GoodsReceiptLineItem
	TotalValue    decimal.Decimal // derivado: suma de cantidad × precio
	CreatedAt     time.Time
}

// GoodsReceiptLineItem línea de recepción; referencia una línea del pedido por VariantKey.
type GoodsReceiptLineItem struct {
	ID        string
	ReceiptID string
	ProductID string
	ColorID   string
	SizeID    string
	Quantity  int             // entero >= 0
	UnitPrice decimal.Decimal // >= 0
}

// Key devuelve la VariantKey de la línea.
func (l GoodsReceiptLineItem) Key() VariantKey {
	return VariantKey{ProductID: l.ProductID, ColorID: l.ColorID, SizeID: l.SizeID}
}

// LineQuantity implementa purchasing.Line.
func (l GoodsReceiptLineItem) LineQuantity() int { return l.Quantity }

// LineUnitPrice implementa purchasing.Line.
func (l GoodsReceiptLineItem) LineUnitPrice() decimal.Decimal { return l.UnitPrice }

// LineTotal cantidad × precio unitario.
func (l GoodsReceiptLineItem) LineTotal() decimal.Decimal {
	return decimal.NewFromInt(int64(l.Quantity)).Mul(l.UnitPrice)
}
