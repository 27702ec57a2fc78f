package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// DiscountPeriodRepository puerto de persistencia para DiscountPeriod.
type DiscountPeriodRepository interface {
	// Create persiste el periodo con sus productos. Devuelve
	// domain.ErrPeriodConflict si la constraint de exclusión del rango salta
	// (respaldo en BD de la comprobación consultiva de solapes).
	Create(period *entity.DiscountPeriod) error
	GetByID(id string) (*entity.DiscountPeriod, error)
	// ListAll todos los periodos (insumo del detector de solapes).
	ListAll() ([]*entity.DiscountPeriod, error)
	List(limit, offset int) ([]*entity.DiscountPeriod, error)
}
