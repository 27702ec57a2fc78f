package purchasing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/interval"
	domainpurch "github.com/jhoicas/Compras-api/internal/domain/purchasing"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/pkg/metrics"
)

// OrderUseCase ciclo de vida del pedido de compra: creación en draft, edición
// de líneas mientras siga en draft y transiciones de estado vía la máquina.
type OrderUseCase struct {
	orderRepo    repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, supplierRepo: supplierRepo, productRepo: productRepo}
}

// Create crea un pedido en draft. Valida proveedor, catálogo de variantes,
// unicidad de VariantKey, cantidades/precios y la ventana de entrega.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("proveedor %s: %w", in.SupplierID, domain.ErrNotFound)
	}

	now := time.Now()
	orderDate := in.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}
	if in.ExpectedDelivery != nil {
		if err := interval.Validate(orderDate, *in.ExpectedDelivery); err != nil {
			return nil, err
		}
	}

	orderID := uuid.New().String()
	lines, err := uc.buildLines(orderID, in.Lines)
	if err != nil {
		return nil, err
	}
	set, err := domainpurch.BuildOrderLines(lines)
	if err != nil {
		return nil, err
	}

	order := &entity.PurchaseOrder{
		ID:               orderID,
		SupplierID:       in.SupplierID,
		OrderDate:        orderDate,
		ExpectedDelivery: in.ExpectedDelivery,
		Status:           entity.OrderStatusDraft,
		Lines:            set.Items(),
		TotalAmount:      set.Total(),
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	metrics.OrdersCreated.Inc()
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido con sus líneas; nil si no existe.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista pedidos con paginación.
func (uc *OrderUseCase) List(limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ReplaceLines sustituye las líneas de un pedido draft. Un pedido ya enviado
// es inmutable a edición de líneas.
func (uc *OrderUseCase) ReplaceLines(orderID string, in dto.ReplaceOrderLinesRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if !order.Status.Editable() {
		return nil, domain.ErrOrderNotEditable
	}

	lines, err := uc.buildLines(orderID, in.Lines)
	if err != nil {
		return nil, err
	}
	set, err := domainpurch.BuildOrderLines(lines)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.orderRepo.ReplaceLines(orderID, set.Items(), set.Total(), now); err != nil {
		return nil, err
	}
	order.Lines = set.Items()
	order.TotalAmount = set.Total()
	order.UpdatedAt = now
	return toOrderResponse(order), nil
}

// Transition solicita un cambio de estado. La máquina valida el par
// (actual, solicitado) y las precondiciones; aquí solo se persiste el resultado.
func (uc *OrderUseCase) Transition(orderID string, requested entity.OrderStatus) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	supplier, err := uc.supplierRepo.GetByID(order.SupplierID)
	if err != nil {
		return nil, err
	}
	guards := domainpurch.Guards{
		LineCount:     len(order.Lines),
		SupplierKnown: supplier != nil,
	}
	next, err := domainpurch.Transition(order.Status, requested, guards)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.orderRepo.UpdateStatus(orderID, next, now); err != nil {
		return nil, err
	}
	metrics.OrderTransitions.WithLabelValues(string(next)).Inc()
	order.Status = next
	order.UpdatedAt = now
	return toOrderResponse(order), nil
}

// Delete elimina un pedido draft con sus líneas en cascada.
func (uc *OrderUseCase) Delete(orderID string) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if !order.Status.Editable() {
		return domain.ErrOrderNotEditable
	}
	return uc.orderRepo.Delete(orderID)
}

// buildLines convierte las líneas del request en entidades, verificando que
// cada combinación (producto, color, talla) exista en el catálogo.
func (uc *OrderUseCase) buildLines(orderID string, in []dto.OrderLineRequest) ([]entity.OrderLineItem, error) {
	lines := make([]entity.OrderLineItem, 0, len(in))
	for _, l := range in {
		key := entity.VariantKey{ProductID: l.ProductID, ColorID: l.ColorID, SizeID: l.SizeID}
		ok, err := uc.productRepo.VariantExists(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("variante %s: %w", key, domain.ErrNotFound)
		}
		lines = append(lines, entity.OrderLineItem{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ProductID: l.ProductID,
			ColorID:   l.ColorID,
			SizeID:    l.SizeID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return lines, nil
}

func toOrderResponse(o *entity.PurchaseOrder) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			ColorID:   l.ColorID,
			SizeID:    l.SizeID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal(),
		})
	}
	return &dto.OrderResponse{
		ID:               o.ID,
		SupplierID:       o.SupplierID,
		OrderDate:        o.OrderDate,
		ExpectedDelivery: o.ExpectedDelivery,
		Status:           string(o.Status),
		Lines:            lines,
		TotalAmount:      o.TotalAmount,
		Notes:            o.Notes,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
