package purchasing

import (
	"fmt"

	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// Máquina de estados del pedido de compra:
//
//	draft → sent → confirmed → {partially_received | completed} → completed
//
// cancelled solo es alcanzable desde draft y sent; desde confirmed en adelante
// ya existen compromisos de inventario. La máquina es pura: no hace I/O, el
// caller persiste el resultado.

// InvalidTransitionError transición no contemplada en la tabla; lleva el
// estado actual y el solicitado para diagnóstico.
type InvalidTransitionError struct {
	From   entity.OrderStatus
	To     entity.OrderStatus
	Reason string // vacío si la transición simplemente no existe en la tabla
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("transición %s → %s no permitida: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("transición %s → %s no permitida", e.From, e.To)
}

// Unwrap permite errors.Is(err, domain.ErrInvalidTransition).
func (e *InvalidTransitionError) Unwrap() error { return domain.ErrInvalidTransition }

// Guards datos del pedido que condicionan transiciones con precondición.
type Guards struct {
	LineCount     int
	SupplierKnown bool
}

// Tabla de transiciones (from → to). Las precondiciones de draft → sent se
// evalúan aparte en Transition.
var transitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderStatusDraft:             {entity.OrderStatusSent, entity.OrderStatusCancelled},
	entity.OrderStatusSent:              {entity.OrderStatusConfirmed, entity.OrderStatusCancelled},
	entity.OrderStatusConfirmed:         {entity.OrderStatusPartiallyReceived, entity.OrderStatusCompleted},
	entity.OrderStatusPartiallyReceived: {entity.OrderStatusCompleted},
	// completed y cancelled son terminales: sin entradas.
}

// AllowedFrom devuelve los estados alcanzables desde current según la tabla,
// sin evaluar precondiciones.
func AllowedFrom(current entity.OrderStatus) []entity.OrderStatus {
	return transitions[current]
}

// Transition evalúa (estado actual, estado solicitado) contra la tabla y las
// precondiciones y devuelve el nuevo estado o un InvalidTransitionError.
// Nunca muta el pedido; dado el mismo par de estados el resultado es el mismo.
func Transition(current, requested entity.OrderStatus, g Guards) (entity.OrderStatus, error) {
	if !requested.Valid() {
		return current, &InvalidTransitionError{From: current, To: requested, Reason: "estado desconocido"}
	}
	allowed := false
	for _, to := range transitions[current] {
		if to == requested {
			allowed = true
			break
		}
	}
	if !allowed {
		return current, &InvalidTransitionError{From: current, To: requested}
	}

	// Precondiciones de envío: al menos una línea y proveedor conocido.
	if current == entity.OrderStatusDraft && requested == entity.OrderStatusSent {
		if g.LineCount == 0 {
			return current, &InvalidTransitionError{From: current, To: requested, Reason: "el pedido no tiene líneas"}
		}
		if !g.SupplierKnown {
			return current, &InvalidTransitionError{From: current, To: requested, Reason: "proveedor desconocido"}
		}
	}

	return requested, nil
}
