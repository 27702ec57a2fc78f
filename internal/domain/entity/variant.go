package entity

import (
	"fmt"
	"time"
)

// VariantKey identidad canónica de una combinación (producto, color, talla).
// Igualdad estructural: dos claves son iguales sii coinciden los tres componentes.
type VariantKey struct {
	ProductID string
	ColorID   string
	SizeID    string
}

// String representación para logs y mensajes de error.
func (k VariantKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.ProductID, k.ColorID, k.SizeID)
}

// ProductVariant un producto ligado a un color y una talla del catálogo.
// Los colores y tallas válidos son por producto; cambiar el producto de una
// línea obliga a reelegir color/talla y revalidar unicidad de la clave.
type ProductVariant struct {
	ID        string
	ProductID string
	ColorID   string
	ColorName string
	SizeID    string
	SizeName  string
	CreatedAt time.Time
}

// Key devuelve la VariantKey de la variante.
func (v *ProductVariant) Key() VariantKey {
	return VariantKey{ProductID: v.ProductID, ColorID: v.ColorID, SizeID: v.SizeID}
}
