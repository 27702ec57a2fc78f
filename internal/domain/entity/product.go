package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product datos de referencia de un producto (inmutables para el motor de compras).
type Product struct {
	ID        string
	SKU       string // código único
	Name      string
	RefPrice  decimal.Decimal // precio unitario de referencia
	CreatedAt time.Time
	UpdatedAt time.Time
}
