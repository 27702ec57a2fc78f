package promo

import (
	"fmt"
	"time"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/interval"
)

// ConflictError el candidato se solapa con un periodo existente; lleva el
// periodo en conflicto para el mensaje al usuario.
type ConflictError struct {
	Conflicting *entity.DiscountPeriod
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("el periodo se solapa con el periodo %s (%s a %s)",
		e.Conflicting.ID,
		e.Conflicting.StartDate.Format("2006-01-02"),
		e.Conflicting.EndDate.Format("2006-01-02"))
}

// Unwrap permite errors.Is(err, domain.ErrPeriodConflict).
func (e *ConflictError) Unwrap() error { return domain.ErrPeriodConflict }

// FirstConflict devuelve el primer periodo existente que se solapa con el
// candidato [start, end], o nil si no hay conflicto. Un producto no puede
// tener dos descuentos simultáneos ni en el día frontera, así que los bordes
// que se tocan cuentan como solape.
//
// La comprobación es consultiva: no es atómica con la creación, así que dos
// envíos concurrentes pueden pasar ambos. La capa de persistencia la respalda
// con una constraint de exclusión sobre el rango de fechas.
func FirstConflict(start, end time.Time, existing []*entity.DiscountPeriod) *entity.DiscountPeriod {
	for _, p := range existing {
		if interval.Overlaps(start, end, p.StartDate, p.EndDate) {
			return p
		}
	}
	return nil
}

// CheckConflict versión en forma de error de FirstConflict.
func CheckConflict(start, end time.Time, existing []*entity.DiscountPeriod) error {
	if p := FirstConflict(start, end, existing); p != nil {
		return &ConflictError{Conflicting: p}
	}
	return nil
}

// ValidateItems valida los descuentos por producto de un periodo:
// al menos un producto, porcentaje entero 1-99 y producto no repetido.
func ValidateItems(items []entity.DiscountPeriodItem) error {
	if len(items) == 0 {
		return domain.ErrInvalidInput
	}
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.DiscountPercent < 1 || it.DiscountPercent > 99 {
			return domain.ErrInvalidPercent
		}
		if _, ok := seen[it.ProductID]; ok {
			return domain.ErrDuplicate
		}
		seen[it.ProductID] = struct{}{}
	}
	return nil
}
