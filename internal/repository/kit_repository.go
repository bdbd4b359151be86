package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/domain"
)

type KitRepository struct {
	db *gorm.DB
}

func NewKitRepository(db *gorm.DB) *KitRepository {
	return &KitRepository{db: db}
}

func (r *KitRepository) Create(ctx context.Context, kit *domain.Kit) error {
	return r.db.WithContext(ctx).Create(kit).Error
}

func (r *KitRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Kit, error) {
	var kit domain.Kit
	err := r.db.WithContext(ctx).
		Preload("Components").
		Preload("Supplier").
		First(&kit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &kit, nil
}

func (r *KitRepository) GetBySerialNumber(ctx context.Context, serial string) (*domain.Kit, error) {
	var kit domain.Kit
	err := r.db.WithContext(ctx).First(&kit, "serial_number = ?", serial).Error
	if err != nil {
		return nil, err
	}
	return &kit, nil
}

func (r *KitRepository) Update(ctx context.Context, kit *domain.Kit) error {
	return r.db.WithContext(ctx).Save(kit).Error
}

func (r *KitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Kit{}, "id = ?", id).Error
}

func (r *KitRepository) List(ctx context.Context, page, pageSize int, status domain.KitStatus, supplierID uuid.UUID) ([]domain.Kit, int64, error) {
	var kits []domain.Kit
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Kit{})

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if supplierID != uuid.Nil {
		query = query.Where("supplier_id = ?", supplierID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Components").
		Preload("Supplier").
		Offset(offset).Limit(pageSize).
		Order("created_at DESC").
		Find(&kits).Error

	return kits, total, err
}

// ListByTechnician returns the kits currently allocated to a technician.
func (r *KitRepository) ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]domain.Kit, error) {
	var kits []domain.Kit
	err := r.db.WithContext(ctx).
		Preload("Components").
		Where("technician_id = ?", technicianID).
		Order("allocated_at DESC").
		Find(&kits).Error
	return kits, err
}
