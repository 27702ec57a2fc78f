package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// ProductRepository puerto de persistencia para Product y su catálogo de variantes (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)

	CreateVariant(variant *entity.ProductVariant) error
	ListVariants(productID string) ([]*entity.ProductVariant, error)
	// VariantExists indica si la combinación (producto, color, talla) está en el catálogo.
	VariantExists(key entity.VariantKey) (bool, error)
}
