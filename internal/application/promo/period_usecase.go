package promo

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/interval"
	domainpromo "github.com/jhoicas/Compras-api/internal/domain/promo"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
	"github.com/jhoicas/Compras-api/pkg/metrics"
)

// PeriodUseCase programación de periodos de descuento: validación del
// intervalo, detección de solapes antes de crear y estado vivo en cada lectura.
type PeriodUseCase struct {
	repo repository.DiscountPeriodRepository
	now  func() time.Time
}

// NewPeriodUseCase construye el caso de uso.
func NewPeriodUseCase(repo repository.DiscountPeriodRepository) *PeriodUseCase {
	return &PeriodUseCase{repo: repo, now: time.Now}
}

// Create valida el candidato, comprueba solapes contra los periodos existentes
// y persiste. La comprobación es consultiva (dos envíos concurrentes pueden
// pasar ambos); la constraint de exclusión en BD respalda el caso de carrera y
// el repositorio la mapea al mismo error de conflicto.
func (uc *PeriodUseCase) Create(in dto.CreatePeriodRequest) (*dto.PeriodResponse, error) {
	if err := interval.Validate(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	periodID := uuid.New().String()
	items := make([]entity.DiscountPeriodItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.DiscountPeriodItem{
			ID:              uuid.New().String(),
			PeriodID:        periodID,
			ProductID:       it.ProductID,
			DiscountPercent: it.DiscountPercent,
		})
	}
	if err := domainpromo.ValidateItems(items); err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	if err := domainpromo.CheckConflict(in.StartDate, in.EndDate, existing); err != nil {
		metrics.PeriodConflicts.Inc()
		return nil, err
	}

	period := &entity.DiscountPeriod{
		ID:          periodID,
		StartDate:   interval.Day(in.StartDate),
		EndDate:     interval.Day(in.EndDate),
		Description: in.Description,
		Items:       items,
		CreatedAt:   uc.now(),
	}
	if err := uc.repo.Create(period); err != nil {
		return nil, err
	}
	metrics.PeriodsCreated.Inc()
	return uc.toPeriodResponse(period), nil
}

// GetByID obtiene un periodo con su estado derivado; nil si no existe.
func (uc *PeriodUseCase) GetByID(id string) (*dto.PeriodResponse, error) {
	period, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, nil
	}
	return uc.toPeriodResponse(period), nil
}

// List lista periodos con paginación y estado derivado de la fecha actual.
func (uc *PeriodUseCase) List(limit, offset int) (*dto.PeriodListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PeriodResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *uc.toPeriodResponse(p))
	}
	return &dto.PeriodListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *PeriodUseCase) toPeriodResponse(p *entity.DiscountPeriod) *dto.PeriodResponse {
	items := make([]dto.PeriodItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PeriodItemResponse{
			ID:              it.ID,
			ProductID:       it.ProductID,
			DiscountPercent: it.DiscountPercent,
		})
	}
	return &dto.PeriodResponse{
		ID:          p.ID,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Description: p.Description,
		Status:      string(domainpromo.StatusAt(uc.now(), p.StartDate, p.EndDate)),
		Items:       items,
		CreatedAt:   p.CreatedAt,
	}
}
