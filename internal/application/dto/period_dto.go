package dto

import "time"

// PeriodItemRequest descuento de un producto dentro de un periodo.
type PeriodItemRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	DiscountPercent int    `json:"discount_percent" validate:"required,min=1,max=99"`
}

// CreatePeriodRequest entrada para crear un periodo de descuento.
type CreatePeriodRequest struct {
	StartDate   time.Time           `json:"start_date" validate:"required"`
	EndDate     time.Time           `json:"end_date" validate:"required"`
	Description string              `json:"description"`
	Items       []PeriodItemRequest `json:"items" validate:"required,min=1"`
}

// PeriodItemResponse descuento de un producto en la respuesta.
type PeriodItemResponse struct {
	ID              string `json:"id"`
	ProductID       string `json:"product_id"`
	DiscountPercent int    `json:"discount_percent"`
}

// PeriodResponse salida de un periodo. Status se calcula en cada lectura a
// partir de la fecha actual; nunca se almacena.
type PeriodResponse struct {
	ID          string               `json:"id"`
	StartDate   time.Time            `json:"start_date"`
	EndDate     time.Time            `json:"end_date"`
	Description string               `json:"description"`
	Status      string               `json:"status"` // not_started, active, ended
	Items       []PeriodItemResponse `json:"items"`
	CreatedAt   time.Time            `json:"created_at"`
}

// PeriodListResponse lista paginada de periodos.
type PeriodListResponse struct {
	Items []PeriodResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
