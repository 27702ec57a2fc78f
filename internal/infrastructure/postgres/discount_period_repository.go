package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

var _ repository.DiscountPeriodRepository = (*DiscountPeriodRepo)(nil)

// DiscountPeriodRepo implementación del puerto DiscountPeriodRepository sobre PostgreSQL.
type DiscountPeriodRepo struct {
	q Querier
}

// NewDiscountPeriodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDiscountPeriodRepository(q Querier) *DiscountPeriodRepo {
	return &DiscountPeriodRepo{q: q}
}

// Create persiste el periodo con sus productos. La constraint de exclusión
// del rango (23P01) se mapea a ErrPeriodConflict: es el respaldo en BD de la
// comprobación consultiva de solapes frente a creaciones concurrentes.
func (r *DiscountPeriodRepo) Create(period *entity.DiscountPeriod) error {
	query := `
		INSERT INTO discount_periods (id, start_date, end_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		period.ID, period.StartDate, period.EndDate, period.Description, period.CreatedAt,
	)
	if err != nil {
		if isExclusionViolation(err) {
			return domain.ErrPeriodConflict
		}
		return fmt.Errorf("insert discount period: %w", err)
	}
	itemQuery := `
		INSERT INTO discount_period_items (id, period_id, product_id, discount_percent)
		VALUES ($1, $2, $3, $4)`
	for _, it := range period.Items {
		_, err := r.q.Exec(context.Background(), itemQuery,
			it.ID, period.ID, it.ProductID, it.DiscountPercent,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert period item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un periodo con sus productos; nil si no existe.
func (r *DiscountPeriodRepo) GetByID(id string) (*entity.DiscountPeriod, error) {
	query := `
		SELECT id, start_date, end_date, description, created_at
		FROM discount_periods WHERE id = $1`
	var p entity.DiscountPeriod
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.StartDate, &p.EndDate, &p.Description, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get discount period: %w", err)
	}
	items, err := r.itemsByPeriod(id)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return &p, nil
}

// ListAll todos los periodos con sus productos (insumo del detector de solapes).
func (r *DiscountPeriodRepo) ListAll() ([]*entity.DiscountPeriod, error) {
	return r.list(`
		SELECT id, start_date, end_date, description, created_at
		FROM discount_periods ORDER BY start_date`)
}

// List lista periodos con paginación.
func (r *DiscountPeriodRepo) List(limit, offset int) ([]*entity.DiscountPeriod, error) {
	return r.list(`
		SELECT id, start_date, end_date, description, created_at
		FROM discount_periods ORDER BY start_date DESC LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *DiscountPeriodRepo) list(query string, args ...any) ([]*entity.DiscountPeriod, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list discount periods: %w", err)
	}
	defer rows.Close()
	var list []*entity.DiscountPeriod
	for rows.Next() {
		var p entity.DiscountPeriod
		if err := rows.Scan(&p.ID, &p.StartDate, &p.EndDate, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan discount period: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		items, err := r.itemsByPeriod(p.ID)
		if err != nil {
			return nil, err
		}
		p.Items = items
	}
	return list, nil
}

func (r *DiscountPeriodRepo) itemsByPeriod(periodID string) ([]entity.DiscountPeriodItem, error) {
	query := `
		SELECT id, period_id, product_id, discount_percent
		FROM discount_period_items WHERE period_id = $1`
	rows, err := r.q.Query(context.Background(), query, periodID)
	if err != nil {
		return nil, fmt.Errorf("list period items: %w", err)
	}
	defer rows.Close()
	var items []entity.DiscountPeriodItem
	for rows.Next() {
		var it entity.DiscountPeriodItem
		if err := rows.Scan(&it.ID, &it.PeriodID, &it.ProductID, &it.DiscountPercent); err != nil {
			return nil, fmt.Errorf("scan period item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
