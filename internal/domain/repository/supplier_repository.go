package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
}
