package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	domainpurch "github.com/jhoicas/Compras-api/internal/domain/purchasing"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/pkg/metrics"
)

// RecordReceiptUseCase registra una recepción de mercancía contra un pedido y
// la concilia contra el histórico acumulado de recepciones. La escritura de la
// recepción, la lectura del histórico completo y la transición recomendada
// ocurren dentro de una misma transacción: conciliar contra una lista parcial
// podría marcar completed un pedido que sigue parcial.
type RecordReceiptUseCase struct {
	txRunner    TxRunner
	orderRepo   repository.PurchaseOrderRepository
	receiptRepo repository.GoodsReceiptRepository
}

// NewRecordReceiptUseCase construye el caso de uso.
func NewRecordReceiptUseCase(
	txRunner TxRunner,
	orderRepo repository.PurchaseOrderRepository,
	receiptRepo repository.GoodsReceiptRepository,
) *RecordReceiptUseCase {
	return &RecordReceiptUseCase{txRunner: txRunner, orderRepo: orderRepo, receiptRepo: receiptRepo}
}

// Record valida y persiste la recepción y devuelve la conciliación resultante.
// Las advertencias de sobre-recepción no bloquean: se devuelven al caller.
func (uc *RecordReceiptUseCase) Record(ctx context.Context, orderID string, in dto.RecordReceiptRequest) (*dto.RecordReceiptResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	// Solo pedidos confirmados (o ya parcialmente recibidos) admiten recepciones.
	if !order.Status.Receivable() {
		return nil, domain.ErrOrderNotReceivable
	}

	orderedSet, err := domainpurch.BuildOrderLines(order.Lines)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	receiptDate := in.ReceiptDate
	if receiptDate.IsZero() {
		receiptDate = now
	}
	receiptID := uuid.New().String()
	lines := make([]entity.GoodsReceiptLineItem, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, entity.GoodsReceiptLineItem{
			ID:        uuid.New().String(),
			ReceiptID: receiptID,
			ProductID: l.ProductID,
			ColorID:   l.ColorID,
			SizeID:    l.SizeID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	receiptSet, err := domainpurch.BuildReceiptLines(lines)
	if err != nil {
		return nil, err
	}
	// Las líneas recibidas deben ser subconjunto de las VariantKeys del pedido.
	if err := domainpurch.ValidateReceiptAgainstOrder(orderedSet, receiptSet); err != nil {
		return nil, err
	}

	receipt := &entity.GoodsReceipt{
		ID:            receiptID,
		SourceOrderID: orderID,
		ReceiptDate:   receiptDate,
		Lines:         receiptSet.Items(),
		TotalValue:    receiptSet.Total(),
		CreatedAt:     now,
	}

	var result *domainpurch.ReconcileResult
	finalStatus := order.Status
	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		receiptRepo repository.GoodsReceiptRepository,
	) error {
		if err := receiptRepo.Create(receipt); err != nil {
			return err
		}
		// Histórico completo del pedido, incluida la recepción recién escrita.
		history, err := receiptRepo.ListLinesByOrder(orderID)
		if err != nil {
			return err
		}
		result, err = domainpurch.Reconcile(orderedSet, history)
		if err != nil {
			return err
		}
		if result.Recommended != nil && *result.Recommended != order.Status {
			next, err := domainpurch.Transition(order.Status, *result.Recommended, domainpurch.Guards{})
			if err != nil {
				return err
			}
			if err := orderRepo.UpdateStatus(orderID, next, now); err != nil {
				return err
			}
			metrics.OrderTransitions.WithLabelValues(string(next)).Inc()
			finalStatus = next
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ReceiptsRecorded.Inc()
	if len(result.Warnings) > 0 {
		metrics.OverReceiptWarnings.Add(float64(len(result.Warnings)))
	}
	return toRecordReceiptResponse(receipt, result, finalStatus), nil
}

// ListByOrder histórico de recepciones de un pedido.
func (uc *RecordReceiptUseCase) ListByOrder(orderID string) (*dto.ReceiptListResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	receipts, err := uc.receiptRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		items = append(items, *toReceiptResponse(r))
	}
	return &dto.ReceiptListResponse{Items: items}, nil
}

func toReceiptResponse(r *entity.GoodsReceipt) *dto.ReceiptResponse {
	lines := make([]dto.ReceiptLineResponse, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, dto.ReceiptLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			ColorID:   l.ColorID,
			SizeID:    l.SizeID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return &dto.ReceiptResponse{
		ID:            r.ID,
		SourceOrderID: r.SourceOrderID,
		ReceiptDate:   r.ReceiptDate,
		Lines:         lines,
		TotalValue:    r.TotalValue,
		CreatedAt:     r.CreatedAt,
	}
}

func toRecordReceiptResponse(receipt *entity.GoodsReceipt, result *domainpurch.ReconcileResult, status entity.OrderStatus) *dto.RecordReceiptResponse {
	lines := make([]dto.ReconciledLineResponse, 0, len(result.Lines))
	for _, l := range result.Lines {
		lines = append(lines, dto.ReconciledLineResponse{
			ProductID: l.Key.ProductID,
			ColorID:   l.Key.ColorID,
			SizeID:    l.Key.SizeID,
			Ordered:   l.Ordered,
			Received:  l.Received,
			Pending:   l.Pending(),
			Fulfilled: l.Fulfilled,
			Over:      l.Over,
		})
	}
	var warnings []string
	for _, w := range result.Warnings {
		warnings = append(warnings, w.String())
	}
	return &dto.RecordReceiptResponse{
		Receipt:     *toReceiptResponse(receipt),
		Lines:       lines,
		OrderStatus: string(status),
		Warnings:    warnings,
	}
}
