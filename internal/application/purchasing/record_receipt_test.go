package purchasing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apppurchasing "github.com/jhoicas/Compras-api/internal/application/purchasing"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.PurchaseOrder
}

func newFakeOrderRepo(orders ...*entity.PurchaseOrder) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: make(map[string]*entity.PurchaseOrder)}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *fakeOrderRepo) Create(order *entity.PurchaseOrder) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	return nil, nil
}

func (r *fakeOrderRepo) UpdateStatus(id string, status entity.OrderStatus, updatedAt time.Time) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	return nil
}

func (r *fakeOrderRepo) ReplaceLines(orderID string, lines []entity.OrderLineItem, total decimal.Decimal, updatedAt time.Time) error {
	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	o.Lines = lines
	o.TotalAmount = total
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

type fakeReceiptRepo struct {
	receipts []*entity.GoodsReceipt
}

func (r *fakeReceiptRepo) Create(receipt *entity.GoodsReceipt) error {
	r.receipts = append(r.receipts, receipt)
	return nil
}

func (r *fakeReceiptRepo) ListByOrder(orderID string) ([]*entity.GoodsReceipt, error) {
	var out []*entity.GoodsReceipt
	for _, gr := range r.receipts {
		if gr.SourceOrderID == orderID {
			out = append(out, gr)
		}
	}
	return out, nil
}

func (r *fakeReceiptRepo) ListLinesByOrder(orderID string) ([]entity.GoodsReceiptLineItem, error) {
	var lines []entity.GoodsReceiptLineItem
	for _, gr := range r.receipts {
		if gr.SourceOrderID == orderID {
			lines = append(lines, gr.Lines...)
		}
	}
	return lines, nil
}

// fakeTxRunner ejecuta fn directamente contra los mismos fakes: sin
// transacción real, pero con la misma forma que el runner de PostgreSQL.
type fakeTxRunner struct {
	orderRepo   repository.PurchaseOrderRepository
	receiptRepo repository.GoodsReceiptRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.PurchaseOrderRepository, repository.GoodsReceiptRepository) error) error {
	return fn(r.orderRepo, r.receiptRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testOrderID = "00000000-0000-0000-0000-0000000000aa"

// confirmedOrder pedido confirmado con dos líneas: 10 × p1/rojo/M y 5 × p2/azul/S.
func confirmedOrder() *entity.PurchaseOrder {
	now := time.Now()
	return &entity.PurchaseOrder{
		ID:         testOrderID,
		SupplierID: "sup-1",
		OrderDate:  now,
		Status:     entity.OrderStatusConfirmed,
		Lines: []entity.OrderLineItem{
			{ID: "l1", OrderID: testOrderID, ProductID: "p1", ColorID: "rojo", SizeID: "M", Quantity: 10, UnitPrice: decimal.RequireFromString("25.50")},
			{ID: "l2", OrderID: testOrderID, ProductID: "p2", ColorID: "azul", SizeID: "S", Quantity: 5, UnitPrice: decimal.RequireFromString("9.99")},
		},
		TotalAmount: decimal.RequireFromString("304.95"),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func buildUseCase(order *entity.PurchaseOrder) (*apppurchasing.RecordReceiptUseCase, *fakeOrderRepo, *fakeReceiptRepo) {
	orderRepo := newFakeOrderRepo(order)
	receiptRepo := &fakeReceiptRepo{}
	tx := &fakeTxRunner{orderRepo: orderRepo, receiptRepo: receiptRepo}
	return apppurchasing.NewRecordReceiptUseCase(tx, orderRepo, receiptRepo), orderRepo, receiptRepo
}

func receiptRequest(lines ...dto.ReceiptLineRequest) dto.RecordReceiptRequest {
	return dto.RecordReceiptRequest{Lines: lines}
}

func rline(productID, colorID, sizeID string, qty int) dto.ReceiptLineRequest {
	return dto.ReceiptLineRequest{
		ProductID: productID, ColorID: colorID, SizeID: sizeID,
		Quantity: qty, UnitPrice: decimal.NewFromInt(10),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Record
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Recepción parcial → el pedido pasa a partially_received.
func TestRecord_RecepcionParcial(t *testing.T) {
	uc, orderRepo, _ := buildUseCase(confirmedOrder())

	out, err := uc.Record(context.Background(), testOrderID, receiptRequest(
		rline("p1", "rojo", "M", 10),
		rline("p2", "azul", "S", 3),
	))
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusPartiallyReceived), out.OrderStatus)
	assert.Empty(t, out.Warnings)
	assert.Equal(t, entity.OrderStatusPartiallyReceived, orderRepo.orders[testOrderID].Status)
}

// Caso 2: Dos recepciones acumulan: la segunda completa el pedido.
func TestRecord_AcumuladoCompletaElPedido(t *testing.T) {
	uc, orderRepo, _ := buildUseCase(confirmedOrder())
	ctx := context.Background()

	_, err := uc.Record(ctx, testOrderID, receiptRequest(
		rline("p1", "rojo", "M", 10),
		rline("p2", "azul", "S", 3),
	))
	require.NoError(t, err)

	out, err := uc.Record(ctx, testOrderID, receiptRequest(
		rline("p2", "azul", "S", 2),
	))
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusCompleted), out.OrderStatus)
	assert.Equal(t, entity.OrderStatusCompleted, orderRepo.orders[testOrderID].Status)

	// Conciliación acumulada sobre AMBAS recepciones.
	for _, l := range out.Lines {
		assert.True(t, l.Fulfilled, "línea %s/%s/%s", l.ProductID, l.ColorID, l.SizeID)
		assert.Equal(t, 0, l.Pending)
	}
}

// Caso 3: Sobre-recepción: se acepta, devuelve warning y completa el pedido.
func TestRecord_SobreRecepcionConWarning(t *testing.T) {
	uc, _, _ := buildUseCase(confirmedOrder())

	out, err := uc.Record(context.Background(), testOrderID, receiptRequest(
		rline("p1", "rojo", "M", 13),
		rline("p2", "azul", "S", 5),
	))
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusCompleted), out.OrderStatus)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "13")
}

// Caso 4: Una línea cuya variante no existe en el pedido se rechaza y nada
// se persiste.
func TestRecord_LineaAjenaRechazada(t *testing.T) {
	uc, orderRepo, receiptRepo := buildUseCase(confirmedOrder())

	_, err := uc.Record(context.Background(), testOrderID, receiptRequest(
		rline("p9", "negro", "XL", 1),
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForeignLineItem))
	assert.Empty(t, receiptRepo.receipts)
	assert.Equal(t, entity.OrderStatusConfirmed, orderRepo.orders[testOrderID].Status)
}

// Caso 5: Solo pedidos confirmados (o parciales) admiten recepciones.
func TestRecord_PedidoNoRecibible(t *testing.T) {
	order := confirmedOrder()
	order.Status = entity.OrderStatusSent
	uc, _, _ := buildUseCase(order)

	_, err := uc.Record(context.Background(), testOrderID, receiptRequest(
		rline("p1", "rojo", "M", 1),
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOrderNotReceivable))
}

// Caso 6: Pedido inexistente.
func TestRecord_PedidoInexistente(t *testing.T) {
	uc, _, _ := buildUseCase(confirmedOrder())

	_, err := uc.Record(context.Background(), "no-existe", receiptRequest(
		rline("p1", "rojo", "M", 1),
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// Caso 7: Cantidad negativa en la recepción se rechaza en construcción.
func TestRecord_CantidadNegativa(t *testing.T) {
	uc, _, receiptRepo := buildUseCase(confirmedOrder())

	_, err := uc.Record(context.Background(), testOrderID, receiptRequest(
		rline("p1", "rojo", "M", -1),
	))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidQuantity))
	assert.Empty(t, receiptRepo.receipts)
}
