package entity

import "time"

// DiscountPeriod ventana de fechas en la que aplica un descuento a productos.
// El estado (no iniciado / activo / finalizado) nunca se almacena: se deriva
// siempre de (StartDate, EndDate, hoy) con promo.StatusAt.
type DiscountPeriod struct {
	ID          string
	StartDate   time.Time // granularidad de día
	EndDate     time.Time // estrictamente posterior a StartDate
	Description string
	Items       []DiscountPeriodItem
	CreatedAt   time.Time
}

// DiscountPeriodItem descuento de un producto dentro del periodo.
type DiscountPeriodItem struct {
	ID              string
	PeriodID        string
	ProductID       string
	DiscountPercent int // 1-99 inclusive
}
