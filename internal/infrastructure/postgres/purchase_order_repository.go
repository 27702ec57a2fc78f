package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre
// PostgreSQL (usable con pool o tx). Las líneas se leen y escriben en orden
// de inserción usando la columna position.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste el pedido con sus líneas.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, supplier_id, order_date, expected_delivery, status, total_amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.SupplierID, order.OrderDate, order.ExpectedDelivery,
		string(order.Status), order.TotalAmount, order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return r.insertLines(order.ID, order.Lines)
}

// GetByID carga el pedido con sus líneas en orden de inserción; nil si no existe.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, order_date, expected_delivery, status, total_amount, notes, created_at, updated_at
		FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	var status string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.SupplierID, &o.OrderDate, &o.ExpectedDelivery, &status,
		&o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	o.Status = entity.OrderStatus(status)

	lines, err := r.linesByOrder(id)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

// List lista pedidos con paginación (sin líneas; GetByID las carga).
func (r *PurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, order_date, expected_delivery, status, total_amount, notes, created_at, updated_at
		FROM purchase_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		var status string
		if err := rows.Scan(&o.ID, &o.SupplierID, &o.OrderDate, &o.ExpectedDelivery, &status,
			&o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		o.Status = entity.OrderStatus(status)
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus persiste el resultado de una transición validada por la máquina.
func (r *PurchaseOrderRepo) UpdateStatus(id string, status entity.OrderStatus, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceLines sustituye todas las líneas y el total derivado (solo draft).
func (r *PurchaseOrderRepo) ReplaceLines(orderID string, lines []entity.OrderLineItem, total decimal.Decimal, updatedAt time.Time) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM purchase_order_lines WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order lines: %w", err)
	}
	if err := r.insertLines(orderID, lines); err != nil {
		return err
	}
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET total_amount = $2, updated_at = $3 WHERE id = $1`,
		orderID, total, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order total: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el pedido; las líneas caen en cascada por FK.
func (r *PurchaseOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

func (r *PurchaseOrderRepo) insertLines(orderID string, lines []entity.OrderLineItem) error {
	query := `
		INSERT INTO purchase_order_lines (id, order_id, product_id, color_id, size_id, position, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, l := range lines {
		_, err := r.q.Exec(context.Background(), query,
			l.ID, orderID, l.ProductID, l.ColorID, l.SizeID, i, l.Quantity, l.UnitPrice,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateVariant
			}
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

func (r *PurchaseOrderRepo) linesByOrder(orderID string) ([]entity.OrderLineItem, error) {
	query := `
		SELECT id, order_id, product_id, color_id, size_id, quantity, unit_price
		FROM purchase_order_lines WHERE order_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.OrderLineItem
	for rows.Next() {
		var l entity.OrderLineItem
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.ColorID, &l.SizeID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
