package repository

import "github.com/jhoicas/Compras-api/internal/domain/entity"

// GoodsReceiptRepository puerto de persistencia para GoodsReceipt.
// Las recepciones son inmutables: no hay Update ni Delete; las correcciones
// se registran como recepciones nuevas.
type GoodsReceiptRepository interface {
	// Create persiste la recepción con sus líneas.
	Create(receipt *entity.GoodsReceipt) error
	// ListByOrder recepciones de un pedido, de la más antigua a la más reciente.
	ListByOrder(orderID string) ([]*entity.GoodsReceipt, error)
	// ListLinesByOrder histórico COMPLETO de líneas recibidas del pedido,
	// insumo obligatorio de la conciliación acumulada.
	ListLinesByOrder(orderID string) ([]entity.GoodsReceiptLineItem, error)
}
