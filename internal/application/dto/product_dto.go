package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU      string          `json:"sku" validate:"required,min=1,max=100"`
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	RefPrice decimal.Decimal `json:"ref_price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	RefPrice  decimal.Decimal `json:"ref_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateVariantRequest entrada para registrar una variante (color + talla) de un producto.
type CreateVariantRequest struct {
	ColorID   string `json:"color_id" validate:"required"`
	ColorName string `json:"color_name"`
	SizeID    string `json:"size_id" validate:"required"`
	SizeName  string `json:"size_name"`
}

// VariantResponse salida de una variante.
type VariantResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	ColorID   string    `json:"color_id"`
	ColorName string    `json:"color_name"`
	SizeID    string    `json:"size_id"`
	SizeName  string    `json:"size_name"`
	CreatedAt time.Time `json:"created_at"`
}

// VariantListResponse variantes de un producto.
type VariantListResponse struct {
	Items []VariantResponse `json:"items"`
}
