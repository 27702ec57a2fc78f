package interval_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/interval"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Caso 1: Day descarta la hora y conserva la zona.
func TestDay(t *testing.T) {
	loc := time.FixedZone("BOG", -5*3600)
	in := time.Date(2026, time.March, 10, 17, 45, 12, 0, loc)
	got := interval.Day(in)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, loc), got)
}

// Caso 2: Validate exige fin estrictamente posterior al inicio, a día.
func TestValidate(t *testing.T) {
	assert.NoError(t, interval.Validate(date(2026, 3, 1), date(2026, 3, 2)))

	// Mismo día (aunque las horas difieran): inválido.
	sameDay := interval.Validate(
		time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC),
	)
	assert.True(t, errors.Is(sameDay, domain.ErrInvalidInterval))

	// Fin antes del inicio: inválido.
	backwards := interval.Validate(date(2026, 3, 5), date(2026, 3, 1))
	assert.True(t, errors.Is(backwards, domain.ErrInvalidInterval))
}

// Caso 3: Overlaps trata los intervalos como cerrados: bordes que se tocan
// cuentan como solape.
func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"disjuntos", date(2026, 3, 1), date(2026, 3, 5), date(2026, 3, 7), date(2026, 3, 10), false},
		{"bordes que se tocan", date(2026, 3, 1), date(2026, 3, 5), date(2026, 3, 5), date(2026, 3, 10), true},
		{"solape interior", date(2026, 3, 1), date(2026, 3, 10), date(2026, 3, 4), date(2026, 3, 6), true},
		{"identicos", date(2026, 3, 1), date(2026, 3, 5), date(2026, 3, 1), date(2026, 3, 5), true},
		{"adyacentes sin tocar", date(2026, 3, 1), date(2026, 3, 5), date(2026, 3, 6), date(2026, 3, 10), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, interval.Overlaps(c.s1, c.e1, c.s2, c.e2))
			// La prueba es simétrica.
			assert.Equal(t, c.want, interval.Overlaps(c.s2, c.e2, c.s1, c.e1))
		})
	}
}
