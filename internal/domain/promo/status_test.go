package promo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Compras-api/internal/domain/promo"
)

// Caso 1: El estado se deriva de la fecha actual a granularidad de día:
// el día de inicio y el día de fin cuentan como activos completos.
func TestStatusAt(t *testing.T) {
	start := date(2026, 3, 10)
	end := date(2026, 3, 20)

	cases := []struct {
		name string
		now  time.Time
		want promo.PeriodStatus
	}{
		{"antes del inicio", date(2026, 3, 9), promo.StatusNotStarted},
		{"dia de inicio", date(2026, 3, 10), promo.StatusActive},
		{"en medio", date(2026, 3, 15), promo.StatusActive},
		{"dia de fin", date(2026, 3, 20), promo.StatusActive},
		{"dia siguiente al fin", date(2026, 3, 21), promo.StatusEnded},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, promo.StatusAt(c.now, start, end))
		})
	}
}

// Caso 2: La hora del día no influye: las 23:59 del día de fin siguen activas
// y las 00:01 del día anterior al inicio siguen sin empezar.
func TestStatusAt_HoraIrrelevante(t *testing.T) {
	start := date(2026, 3, 10)
	end := date(2026, 3, 20)

	lateEnd := time.Date(2026, 3, 20, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, promo.StatusActive, promo.StatusAt(lateEnd, start, end))

	earlyBefore := time.Date(2026, 3, 9, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, promo.StatusNotStarted, promo.StatusAt(earlyBefore, start, end))
}
