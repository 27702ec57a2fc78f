package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.GoodsReceiptRepository = (*GoodsReceiptRepo)(nil)

// GoodsReceiptRepo implementación del puerto GoodsReceiptRepository sobre
// PostgreSQL. Las recepciones son inmutables: solo Insert y lecturas.
type GoodsReceiptRepo struct {
	q Querier
}

// NewGoodsReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGoodsReceiptRepository(q Querier) *GoodsReceiptRepo {
	return &GoodsReceiptRepo{q: q}
}

// Create persiste la recepción con sus líneas.
func (r *GoodsReceiptRepo) Create(receipt *entity.GoodsReceipt) error {
	query := `
		INSERT INTO goods_receipts (id, order_id, receipt_date, total_value, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.SourceOrderID, receipt.ReceiptDate, receipt.TotalValue, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert goods receipt: %w", err)
	}
	lineQuery := `
		INSERT INTO goods_receipt_lines (id, receipt_id, product_id, color_id, size_id, position, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, l := range receipt.Lines {
		_, err := r.q.Exec(context.Background(), lineQuery,
			l.ID, receipt.ID, l.ProductID, l.ColorID, l.SizeID, i, l.Quantity, l.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert receipt line: %w", err)
		}
	}
	return nil
}

// ListByOrder recepciones de un pedido con sus líneas, de la más antigua a la más reciente.
func (r *GoodsReceiptRepo) ListByOrder(orderID string) ([]*entity.GoodsReceipt, error) {
	query := `
		SELECT id, order_id, receipt_date, total_value, created_at
		FROM goods_receipts WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.GoodsReceipt
	for rows.Next() {
		var gr entity.GoodsReceipt
		if err := rows.Scan(&gr.ID, &gr.SourceOrderID, &gr.ReceiptDate, &gr.TotalValue, &gr.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &gr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, gr := range list {
		lines, err := r.linesByReceipt(gr.ID)
		if err != nil {
			return nil, err
		}
		gr.Lines = lines
	}
	return list, nil
}

// ListLinesByOrder histórico COMPLETO de líneas recibidas del pedido, sobre
// todas sus recepciones. Insumo obligatorio de la conciliación acumulada.
func (r *GoodsReceiptRepo) ListLinesByOrder(orderID string) ([]entity.GoodsReceiptLineItem, error) {
	query := `
		SELECT l.id, l.receipt_id, l.product_id, l.color_id, l.size_id, l.quantity, l.unit_price
		FROM goods_receipt_lines l
		JOIN goods_receipts r ON r.id = l.receipt_id
		WHERE r.order_id = $1
		ORDER BY r.created_at, l.position`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list receipt lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.GoodsReceiptLineItem
	for rows.Next() {
		var l entity.GoodsReceiptLineItem
		if err := rows.Scan(&l.ID, &l.ReceiptID, &l.ProductID, &l.ColorID, &l.SizeID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan receipt line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *GoodsReceiptRepo) linesByReceipt(receiptID string) ([]entity.GoodsReceiptLineItem, error) {
	query := `
		SELECT id, receipt_id, product_id, color_id, size_id, quantity, unit_price
		FROM goods_receipt_lines WHERE receipt_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list receipt lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.GoodsReceiptLineItem
	for rows.Next() {
		var l entity.GoodsReceiptLineItem
		if err := rows.Scan(&l.ID, &l.ReceiptID, &l.ProductID, &l.ColorID, &l.SizeID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan receipt line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
