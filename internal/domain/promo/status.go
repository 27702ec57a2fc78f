package promo

import (
	"time"

	"github.com/jhoicas/Compras-api/internal/domain/interval"
)

// PeriodStatus estado vivo de un periodo, siempre derivado de la fecha actual.
type PeriodStatus string

const (
	StatusNotStarted PeriodStatus = "not_started"
	StatusActive     PeriodStatus = "active"
	StatusEnded      PeriodStatus = "ended"
)

// StatusAt deriva el estado del periodo [start, end] en el instante now.
// Comparación a día: now se normaliza a medianoche, de modo que el día de
// inicio y el día de fin cuentan como activos completos. Función pura; se
// reevalúa en cada lectura y ningún estado almacenado es de fiar.
func StatusAt(now, start, end time.Time) PeriodStatus {
	day := interval.Day(now)
	switch {
	case day.Before(interval.Day(start)):
		return StatusNotStarted
	case day.After(interval.Day(end)):
		return StatusEnded
	default:
		return StatusActive
	}
}
