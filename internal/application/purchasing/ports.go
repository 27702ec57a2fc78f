package purchasing

import (
	"context"

	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que registrar la recepción, leer el
// histórico completo y aplicar la transición recomendada sea atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		receiptRepo repository.GoodsReceiptRepository,
	) error) error
}
