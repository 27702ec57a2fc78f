package purchasing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/purchasing"
)

// guardias válidas para transiciones sin precondición especial.
var okGuards = purchasing.Guards{LineCount: 1, SupplierKnown: true}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la tabla de transiciones
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Todas las transiciones contempladas en la tabla pasan.
func TestTransition_TablaCompleta(t *testing.T) {
	cases := []struct {
		from, to entity.OrderStatus
	}{
		{entity.OrderStatusDraft, entity.OrderStatusSent},
		{entity.OrderStatusDraft, entity.OrderStatusCancelled},
		{entity.OrderStatusSent, entity.OrderStatusConfirmed},
		{entity.OrderStatusSent, entity.OrderStatusCancelled},
		{entity.OrderStatusConfirmed, entity.OrderStatusPartiallyReceived},
		{entity.OrderStatusConfirmed, entity.OrderStatusCompleted},
		{entity.OrderStatusPartiallyReceived, entity.OrderStatusCompleted},
	}
	for _, c := range cases {
		got, err := purchasing.Transition(c.from, c.to, okGuards)
		require.NoError(t, err, "%s → %s", c.from, c.to)
		assert.Equal(t, c.to, got)
	}
}

// Caso 2: Cualquier par fuera de la tabla se rechaza con ambos estados en el error.
func TestTransition_ParesInvalidos(t *testing.T) {
	cases := []struct {
		from, to entity.OrderStatus
	}{
		{entity.OrderStatusDraft, entity.OrderStatusConfirmed},
		{entity.OrderStatusDraft, entity.OrderStatusCompleted},
		{entity.OrderStatusSent, entity.OrderStatusDraft},
		{entity.OrderStatusSent, entity.OrderStatusCompleted},
		{entity.OrderStatusConfirmed, entity.OrderStatusCancelled},
		{entity.OrderStatusConfirmed, entity.OrderStatusDraft},
		{entity.OrderStatusPartiallyReceived, entity.OrderStatusCancelled},
		{entity.OrderStatusPartiallyReceived, entity.OrderStatusSent},
		{entity.OrderStatusCompleted, entity.OrderStatusDraft},
		{entity.OrderStatusCompleted, entity.OrderStatusCancelled},
		{entity.OrderStatusCancelled, entity.OrderStatusDraft},
		{entity.OrderStatusCancelled, entity.OrderStatusSent},
	}
	for _, c := range cases {
		got, err := purchasing.Transition(c.from, c.to, okGuards)
		require.Error(t, err, "%s → %s debería rechazarse", c.from, c.to)
		assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
		assert.Equal(t, c.from, got, "el estado no debe cambiar")

		var inv *purchasing.InvalidTransitionError
		require.True(t, errors.As(err, &inv))
		assert.Equal(t, c.from, inv.From)
		assert.Equal(t, c.to, inv.To)
	}
}

// Caso 3: Los estados terminales no tienen salidas.
func TestTransition_TerminalesSinSalida(t *testing.T) {
	assert.Empty(t, purchasing.AllowedFrom(entity.OrderStatusCompleted))
	assert.Empty(t, purchasing.AllowedFrom(entity.OrderStatusCancelled))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de precondiciones draft → sent
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: Un draft sin líneas no puede enviarse.
func TestTransition_EnvioSinLineas(t *testing.T) {
	_, err := purchasing.Transition(entity.OrderStatusDraft, entity.OrderStatusSent,
		purchasing.Guards{LineCount: 0, SupplierKnown: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
}

// Caso 5: Un draft con proveedor desconocido no puede enviarse.
func TestTransition_EnvioProveedorDesconocido(t *testing.T) {
	_, err := purchasing.Transition(entity.OrderStatusDraft, entity.OrderStatusSent,
		purchasing.Guards{LineCount: 2, SupplierKnown: false})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
}

// Caso 6: Un estado solicitado desconocido se rechaza sin tocar el actual.
func TestTransition_EstadoDesconocido(t *testing.T) {
	got, err := purchasing.Transition(entity.OrderStatusDraft, entity.OrderStatus("archived"), okGuards)
	require.Error(t, err)
	assert.Equal(t, entity.OrderStatusDraft, got)
}

// Caso 7: La función es pura: el mismo par da siempre el mismo resultado.
func TestTransition_Determinista(t *testing.T) {
	for i := 0; i < 3; i++ {
		got, err := purchasing.Transition(entity.OrderStatusSent, entity.OrderStatusConfirmed, okGuards)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusConfirmed, got)
	}
}
