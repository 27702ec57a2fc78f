package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los paquetes del núcleo
// envuelven estos sentinelas con structs tipados que llevan el detalle
// (estado actual/solicitado, VariantKey ofensora) para mensajes por campo.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrDuplicateVariant   = errors.New("variante (producto, color, talla) repetida en las líneas")
	ErrForeignLineItem    = errors.New("línea de recepción no pertenece al pedido origen")
	ErrInvalidQuantity    = errors.New("cantidad inválida")
	ErrInvalidPrice       = errors.New("precio unitario inválido")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrInvalidInterval    = errors.New("la fecha fin debe ser posterior a la fecha inicio")
	ErrInvalidPercent     = errors.New("porcentaje de descuento fuera de rango (1-99)")
	ErrPeriodConflict     = errors.New("el periodo se solapa con uno existente")
	ErrOrderNotEditable   = errors.New("el pedido ya no admite edición de líneas")
	ErrOrderNotReceivable = errors.New("el pedido no admite recepciones en su estado actual")
)
