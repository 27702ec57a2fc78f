package purchasing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// Line cualquier línea (de pedido o de recepción) identificable por VariantKey.
type Line interface {
	Key() entity.VariantKey
	LineQuantity() int
	LineUnitPrice() decimal.Decimal
}

// DuplicateVariantError una VariantKey repetida dentro de un mismo conjunto de líneas.
type DuplicateVariantError struct {
	Key entity.VariantKey
}

func (e *DuplicateVariantError) Error() string {
	return fmt.Sprintf("variante %s repetida en las líneas", e.Key)
}

// Unwrap permite errors.Is(err, domain.ErrDuplicateVariant).
func (e *DuplicateVariantError) Unwrap() error { return domain.ErrDuplicateVariant }

// InvalidQuantityError cantidad negativa (o no positiva donde se exige > 0).
type InvalidQuantityError struct {
	Key      entity.VariantKey
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("cantidad %d inválida para la variante %s", e.Quantity, e.Key)
}

func (e *InvalidQuantityError) Unwrap() error { return domain.ErrInvalidQuantity }

// InvalidPriceError precio unitario negativo.
type InvalidPriceError struct {
	Key   entity.VariantKey
	Price decimal.Decimal
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("precio %s inválido para la variante %s", e.Price, e.Key)
}

func (e *InvalidPriceError) Unwrap() error { return domain.ErrInvalidPrice }

// LineItemSet colección de líneas en orden de llegada con unicidad por VariantKey.
// El orden importa para presentación, no para la corrección de los totales.
type LineItemSet[T Line] struct {
	items []T
	index map[entity.VariantKey]int
}

// NewLineItemSet construye un conjunto vacío.
func NewLineItemSet[T Line]() *LineItemSet[T] {
	return &LineItemSet[T]{index: make(map[entity.VariantKey]int)}
}

// Add inserta la línea al final. Si ya existe una línea con la misma
// VariantKey devuelve DuplicateVariantError y el conjunto queda intacto.
func (s *LineItemSet[T]) Add(item T) error {
	key := item.Key()
	if _, ok := s.index[key]; ok {
		return &DuplicateVariantError{Key: key}
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, item)
	return nil
}

// Get devuelve la línea con la clave dada, si existe.
func (s *LineItemSet[T]) Get(key entity.VariantKey) (T, bool) {
	if i, ok := s.index[key]; ok {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Contains indica si existe una línea con la clave dada.
func (s *LineItemSet[T]) Contains(key entity.VariantKey) bool {
	_, ok := s.index[key]
	return ok
}

// Items devuelve las líneas en orden de inserción.
func (s *LineItemSet[T]) Items() []T {
	return s.items
}

// Len número de líneas.
func (s *LineItemSet[T]) Len() int {
	return len(s.items)
}

// Total suma de cantidad × precio unitario de cada línea, en decimal
// (nunca coma flotante binaria, para evitar deriva de redondeo).
func (s *LineItemSet[T]) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(decimal.NewFromInt(int64(it.LineQuantity())).Mul(it.LineUnitPrice()))
	}
	return total
}

// BuildOrderLines valida y agrupa líneas de pedido: cantidad entera > 0,
// precio >= 0 y VariantKey única. Es el punto de rechazo "en construcción".
func BuildOrderLines(lines []entity.OrderLineItem) (*LineItemSet[entity.OrderLineItem], error) {
	set := NewLineItemSet[entity.OrderLineItem]()
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, &InvalidQuantityError{Key: l.Key(), Quantity: l.Quantity}
		}
		if l.UnitPrice.IsNegative() {
			return nil, &InvalidPriceError{Key: l.Key(), Price: l.UnitPrice}
		}
		if err := set.Add(l); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// BuildReceiptLines valida y agrupa líneas de recepción: cantidad entera >= 0,
// precio >= 0 y VariantKey única dentro de la recepción.
func BuildReceiptLines(lines []entity.GoodsReceiptLineItem) (*LineItemSet[entity.GoodsReceiptLineItem], error) {
	set := NewLineItemSet[entity.GoodsReceiptLineItem]()
	for _, l := range lines {
		if l.Quantity < 0 {
			return nil, &InvalidQuantityError{Key: l.Key(), Quantity: l.Quantity}
		}
		if l.UnitPrice.IsNegative() {
			return nil, &InvalidPriceError{Key: l.Key(), Price: l.UnitPrice}
		}
		if err := set.Add(l); err != nil {
			return nil, err
		}
	}
	return set, nil
}
