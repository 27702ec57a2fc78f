package purchasing_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apppurchasing "github.com/jhoicas/Compras-api/internal/application/purchasing"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (complementan los de record_receipt_test.go)
// ──────────────────────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	return nil, nil
}

type fakeProductRepo struct {
	variants map[entity.VariantKey]bool
}

func (r *fakeProductRepo) Create(*entity.Product) error                     { return nil }
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error)          { return nil, nil }
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error)         { return nil, nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error)         { return nil, nil }
func (r *fakeProductRepo) CreateVariant(*entity.ProductVariant) error       { return nil }
func (r *fakeProductRepo) ListVariants(string) ([]*entity.ProductVariant, error) {
	return nil, nil
}

func (r *fakeProductRepo) VariantExists(key entity.VariantKey) (bool, error) {
	return r.variants[key], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func buildOrderUseCase(orders ...*entity.PurchaseOrder) (*apppurchasing.OrderUseCase, *fakeOrderRepo) {
	orderRepo := newFakeOrderRepo(orders...)
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", Name: "Textiles SA"},
	}}
	productRepo := &fakeProductRepo{variants: map[entity.VariantKey]bool{
		{ProductID: "p1", ColorID: "rojo", SizeID: "M"}: true,
		{ProductID: "p2", ColorID: "azul", SizeID: "S"}: true,
	}}
	return apppurchasing.NewOrderUseCase(orderRepo, supplierRepo, productRepo), orderRepo
}

func lineRequest(productID, colorID, sizeID string, qty int, price string) dto.OrderLineRequest {
	return dto.OrderLineRequest{
		ProductID: productID, ColorID: colorID, SizeID: sizeID,
		Quantity: qty, UnitPrice: decimal.RequireFromString(price),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Un pedido nuevo nace en draft con el total derivado de las líneas.
func TestOrderCreate_NaceEnDraft(t *testing.T) {
	uc, _ := buildOrderUseCase()

	out, err := uc.Create(dto.CreateOrderRequest{
		SupplierID: "sup-1",
		Lines: []dto.OrderLineRequest{
			lineRequest("p1", "rojo", "M", 10, "25.50"),
			lineRequest("p2", "azul", "S", 3, "9.99"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusDraft), out.Status)
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("284.97")), "total = %s", out.TotalAmount)
	require.Len(t, out.Lines, 2)
	assert.True(t, out.Lines[0].LineTotal.Equal(decimal.RequireFromString("255.00")))
}

// Caso 2: Proveedor desconocido.
func TestOrderCreate_ProveedorDesconocido(t *testing.T) {
	uc, _ := buildOrderUseCase()

	_, err := uc.Create(dto.CreateOrderRequest{
		SupplierID: "sup-9",
		Lines:      []dto.OrderLineRequest{lineRequest("p1", "rojo", "M", 1, "10")},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// Caso 3: Variante fuera del catálogo.
func TestOrderCreate_VarianteFueraDeCatalogo(t *testing.T) {
	uc, _ := buildOrderUseCase()

	_, err := uc.Create(dto.CreateOrderRequest{
		SupplierID: "sup-1",
		Lines:      []dto.OrderLineRequest{lineRequest("p9", "negro", "XL", 1, "10")},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// Caso 4: Dos líneas con la misma variante en el mismo pedido.
func TestOrderCreate_VarianteDuplicada(t *testing.T) {
	uc, _ := buildOrderUseCase()

	_, err := uc.Create(dto.CreateOrderRequest{
		SupplierID: "sup-1",
		Lines: []dto.OrderLineRequest{
			lineRequest("p1", "rojo", "M", 10, "25.50"),
			lineRequest("p1", "rojo", "M", 5, "20.00"),
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateVariant))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Transition / ReplaceLines / Delete
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: Ciclo feliz draft → sent → confirmed.
func TestOrderTransition_CicloFeliz(t *testing.T) {
	uc, _ := buildOrderUseCase()
	out, err := uc.Create(dto.CreateOrderRequest{
		SupplierID: "sup-1",
		Lines:      []dto.OrderLineRequest{lineRequest("p1", "rojo", "M", 10, "25.50")},
	})
	require.NoError(t, err)

	out, err = uc.Transition(out.ID, entity.OrderStatusSent)
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusSent), out.Status)

	out, err = uc.Transition(out.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusConfirmed), out.Status)
}

// Caso 6: Un draft sin líneas no puede enviarse.
func TestOrderTransition_EnvioSinLineas(t *testing.T) {
	uc, _ := buildOrderUseCase()
	out, err := uc.Create(dto.CreateOrderRequest{SupplierID: "sup-1"})
	require.NoError(t, err)

	_, err = uc.Transition(out.ID, entity.OrderStatusSent)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
}

// Caso 7: Las líneas solo se editan en draft.
func TestOrderReplaceLines_SoloEnDraft(t *testing.T) {
	uc, _ := buildOrderUseCase()
	out, err := uc.Create(dto.CreateOrderRequest{
		SupplierID: "sup-1",
		Lines:      []dto.OrderLineRequest{lineRequest("p1", "rojo", "M", 10, "25.50")},
	})
	require.NoError(t, err)

	// En draft: la sustitución recalcula el total.
	replaced, err := uc.ReplaceLines(out.ID, dto.ReplaceOrderLinesRequest{
		Lines: []dto.OrderLineRequest{lineRequest("p2", "azul", "S", 2, "9.99")},
	})
	require.NoError(t, err)
	assert.True(t, replaced.TotalAmount.Equal(decimal.RequireFromString("19.98")))

	// Tras enviarse: inmutable.
	_, err = uc.Transition(out.ID, entity.OrderStatusSent)
	require.NoError(t, err)
	_, err = uc.ReplaceLines(out.ID, dto.ReplaceOrderLinesRequest{
		Lines: []dto.OrderLineRequest{lineRequest("p1", "rojo", "M", 1, "1")},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOrderNotEditable))
}

// Caso 8: Delete solo en draft.
func TestOrderDelete_SoloEnDraft(t *testing.T) {
	uc, orderRepo := buildOrderUseCase()
	out, err := uc.Create(dto.CreateOrderRequest{
		SupplierID: "sup-1",
		Lines:      []dto.OrderLineRequest{lineRequest("p1", "rojo", "M", 10, "25.50")},
	})
	require.NoError(t, err)

	_, err = uc.Transition(out.ID, entity.OrderStatusSent)
	require.NoError(t, err)
	err = uc.Delete(out.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOrderNotEditable))
	assert.Contains(t, orderRepo.orders, out.ID)
}
