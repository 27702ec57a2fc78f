package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// PurchaseOrderRepository puerto de persistencia para PurchaseOrder y sus líneas.
// El pedido es dueño de sus líneas: ReplaceLines y Delete operan en cascada
// (y los usecases solo los invocan mientras el pedido está en draft).
type PurchaseOrderRepository interface {
	// Create persiste el pedido con sus líneas.
	Create(order *entity.PurchaseOrder) error
	// GetByID carga el pedido con sus líneas en orden de inserción; nil si no existe.
	GetByID(id string) (*entity.PurchaseOrder, error)
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
	// UpdateStatus persiste el resultado de una transición validada por la máquina.
	UpdateStatus(id string, status entity.OrderStatus, updatedAt time.Time) error
	// ReplaceLines sustituye todas las líneas y el total derivado (solo draft).
	ReplaceLines(orderID string, lines []entity.OrderLineItem, total decimal.Decimal, updatedAt time.Time) error
	// Delete elimina el pedido y sus líneas en cascada (solo draft).
	Delete(id string) error
}
