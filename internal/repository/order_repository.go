package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/domain"
)

// OrderFilters narrows service-order queries. Zero-value fields impose
// no constraint.
type OrderFilters struct {
	Status      domain.OrderStatus
	CityID      uuid.UUID
	FieldTechID uuid.UUID
	ClientID    uuid.UUID
	IssuedFrom  *time.Time
	IssuedTo    *time.Time
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.ServiceOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceOrder, error) {
	var order domain.ServiceOrder
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Client.Contacts").
		Preload("FieldTech").
		Preload("AppTech").
		Preload("City").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetByNumber(ctx context.Context, number string) (*domain.ServiceOrder, error) {
	var order domain.ServiceOrder
	err := r.db.WithContext(ctx).First(&order, "order_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *domain.ServiceOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ServiceOrder{}, "id = ?", id).Error
}

func applyOrderFilters(query *gorm.DB, f OrderFilters) *gorm.DB {
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.CityID != uuid.Nil {
		query = query.Where("city_id = ?", f.CityID)
	}
	if f.FieldTechID != uuid.Nil {
		query = query.Where("field_tech_id = ?", f.FieldTechID)
	}
	if f.ClientID != uuid.Nil {
		query = query.Where("client_id = ?", f.ClientID)
	}
	if f.IssuedFrom != nil {
		query = query.Where("issued_at >= ?", *f.IssuedFrom)
	}
	if f.IssuedTo != nil {
		query = query.Where("issued_at <= ?", *f.IssuedTo)
	}
	return query
}

// List returns a page of orders matching the filters, newest first,
// with the relations the list view renders.
func (r *OrderRepository) List(ctx context.Context, page, pageSize int, f OrderFilters) ([]domain.ServiceOrder, int64, error) {
	var orders []domain.ServiceOrder
	var total int64

	query := applyOrderFilters(r.db.WithContext(ctx).Model(&domain.ServiceOrder{}), f)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Client").
		Preload("FieldTech").
		Preload("City").
		Offset(offset).Limit(pageSize).
		Order("issued_at DESC").
		Find(&orders).Error

	return orders, total, err
}

// ListAll returns every order matching the filters with the relations
// the dashboard and map transforms need, preserving issue order.
func (r *OrderRepository) ListAll(ctx context.Context, f OrderFilters) ([]domain.ServiceOrder, error) {
	var orders []domain.ServiceOrder
	err := applyOrderFilters(r.db.WithContext(ctx).Model(&domain.ServiceOrder{}), f).
		Preload("Client").
		Preload("Client.Contacts").
		Preload("FieldTech").
		Preload("City").
		Order("issued_at ASC").
		Find(&orders).Error
	return orders, err
}

// CountByStatus returns order totals keyed by status.
func (r *OrderRepository) CountByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error) {
	var rows []struct {
		Status domain.OrderStatus
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.ServiceOrder{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[domain.OrderStatus]int64, len(rows))
	for _, row := range rows {
		totals[row.Status] = row.Total
	}
	return totals, nil
}

// ListDueBefore returns not-yet-installed orders whose due date falls
// on or before the deadline, soonest first.
func (r *OrderRepository) ListDueBefore(ctx context.Context, deadline time.Time) ([]domain.ServiceOrder, error) {
	var orders []domain.ServiceOrder
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("FieldTech").
		Preload("City").
		Where("status <> ?", domain.OrderStatusInstalled).
		Where("due_at <= ?", deadline).
		Order("due_at ASC").
		Find(&orders).Error
	return orders, err
}
