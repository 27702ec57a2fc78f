package entity

import "time"

// Supplier datos de referencia de un proveedor.
type Supplier struct {
	ID        string
	Name      string
	TaxID     string // NIT u otro identificador fiscal
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
