package purchasing

import (
	"fmt"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// Conciliación pedido ↔ recepciones. Compara la cantidad recibida ACUMULADA
// (todas las recepciones registradas contra el pedido, no solo la última)
// contra la cantidad pedida por línea y recomienda la siguiente transición.
// No muta el pedido: el caller pasa la recomendación por Transition.

// ForeignLineItemError una línea de recepción referencia una VariantKey que
// no existe en el pedido origen. Fatal para esa conciliación.
type ForeignLineItemError struct {
	Key entity.VariantKey
}

func (e *ForeignLineItemError) Error() string {
	return fmt.Sprintf("la variante %s no existe en el pedido origen", e.Key)
}

// Unwrap permite errors.Is(err, domain.ErrForeignLineItem).
func (e *ForeignLineItemError) Unwrap() error { return domain.ErrForeignLineItem }

// LineReconciliation estado de una línea del pedido tras acumular recepciones.
type LineReconciliation struct {
	Key       entity.VariantKey
	Ordered   int
	Received  int // acumulado sobre todas las recepciones
	Fulfilled bool
	Over      bool // recibido acumulado > pedido
}

// Pending cantidad que falta por recibir (0 si la línea está cubierta).
func (l LineReconciliation) Pending() int {
	if l.Received >= l.Ordered {
		return 0
	}
	return l.Ordered - l.Received
}

// OverReceiptWarning advertencia no fatal: los proveedores a veces sobre-envían.
type OverReceiptWarning struct {
	Key      entity.VariantKey
	Ordered  int
	Received int
}

func (w OverReceiptWarning) String() string {
	return fmt.Sprintf("variante %s: recibido %d supera lo pedido %d", w.Key, w.Received, w.Ordered)
}

// ReconcileResult resultado de la conciliación.
// Recommended es nil cuando no se recomienda cambio de estado (ninguna línea
// tiene cantidad recibida).
type ReconcileResult struct {
	Lines       []LineReconciliation
	Recommended *entity.OrderStatus
	Warnings    []OverReceiptWarning
}

// Completed indica si todas las líneas del pedido quedaron cubiertas.
func (r *ReconcileResult) Completed() bool {
	return r.Recommended != nil && *r.Recommended == entity.OrderStatusCompleted
}

// Reconcile concilia las líneas pedidas contra el histórico COMPLETO de líneas
// recibidas del pedido (todas las recepciones, incluida la que se esté
// registrando). Un histórico parcial puede marcar completed un pedido que no
// lo está; obtener la lista completa es responsabilidad del caller.
//
// Reglas:
//   - línea cubierta: recibido acumulado >= pedido
//   - sobre-recepción: advertencia OverReceiptWarning, no error
//   - recomendación: completed si todas cubiertas; partially_received si al
//     menos una línea tiene recepción pero no todas están cubiertas; nil si
//     nada se ha recibido.
func Reconcile(ordered *LineItemSet[entity.OrderLineItem], history []entity.GoodsReceiptLineItem) (*ReconcileResult, error) {
	received := make(map[entity.VariantKey]int, ordered.Len())
	for _, rl := range history {
		key := rl.Key()
		if !ordered.Contains(key) {
			return nil, &ForeignLineItemError{Key: key}
		}
		if rl.Quantity < 0 {
			return nil, &InvalidQuantityError{Key: key, Quantity: rl.Quantity}
		}
		received[key] += rl.Quantity
	}

	result := &ReconcileResult{Lines: make([]LineReconciliation, 0, ordered.Len())}
	anyReceived := false
	allFulfilled := true
	for _, ol := range ordered.Items() {
		key := ol.Key()
		got := received[key]
		line := LineReconciliation{
			Key:       key,
			Ordered:   ol.Quantity,
			Received:  got,
			Fulfilled: got >= ol.Quantity,
			Over:      got > ol.Quantity,
		}
		if got > 0 {
			anyReceived = true
		}
		if !line.Fulfilled {
			allFulfilled = false
		}
		if line.Over {
			result.Warnings = append(result.Warnings, OverReceiptWarning{
				Key: key, Ordered: ol.Quantity, Received: got,
			})
		}
		result.Lines = append(result.Lines, line)
	}

	switch {
	case ordered.Len() > 0 && allFulfilled:
		st := entity.OrderStatusCompleted
		result.Recommended = &st
	case anyReceived:
		st := entity.OrderStatusPartiallyReceived
		result.Recommended = &st
	}
	return result, nil
}

// ValidateReceiptAgainstOrder verifica que las líneas de una recepción sean un
// subconjunto de las VariantKeys del pedido antes de persistirla.
func ValidateReceiptAgainstOrder(ordered *LineItemSet[entity.OrderLineItem], receipt *LineItemSet[entity.GoodsReceiptLineItem]) error {
	for _, rl := range receipt.Items() {
		if !ordered.Contains(rl.Key()) {
			return &ForeignLineItemError{Key: rl.Key()}
		}
	}
	return nil
}
