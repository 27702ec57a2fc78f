// Package interval aritmética de intervalos de fechas a granularidad de día.
// La comparten la ventana de entrega de los pedidos y los periodos de
// descuento: la hora se normaliza a medianoche antes de comparar, de modo que
// un intervalo que termina "hoy" cubre todo el día de hoy.
package interval

import (
	"time"

	"github.com/jhoicas/Compras-api/internal/domain"
)

// Day normaliza t a la medianoche de su día (conserva la zona horaria).
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Validate exige fin estrictamente posterior al inicio (a día).
func Validate(start, end time.Time) error {
	if !Day(end).After(Day(start)) {
		return domain.ErrInvalidInterval
	}
	return nil
}

// Overlaps prueba de solape de intervalos cerrados [s1,e1] y [s2,e2]:
// s1 <= e2 && s2 <= e1. Los bordes que se tocan cuentan como solape.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	s1, e1 = Day(s1), Day(e1)
	s2, e2 = Day(s2), Day(e2)
	return !s1.After(e2) && !s2.After(e1)
}
