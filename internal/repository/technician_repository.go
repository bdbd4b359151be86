package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/domain"
)

type TechnicianRepository struct {
	db *gorm.DB
}

func NewTechnicianRepository(db *gorm.DB) *TechnicianRepository {
	return &TechnicianRepository{db: db}
}

func (r *TechnicianRepository) Create(ctx context.Context, tech *domain.Technician) error {
	return r.db.WithContext(ctx).Create(tech).Error
}

func (r *TechnicianRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error) {
	var tech domain.Technician
	err := r.db.WithContext(ctx).
		Preload("Contacts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&tech, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tech, nil
}

func (r *TechnicianRepository) GetByName(ctx context.Context, name string) (*domain.Technician, error) {
	var tech domain.Technician
	err := r.db.WithContext(ctx).
		First(&tech, "LOWER(name) = ?", strings.ToLower(name)).Error
	if err != nil {
		return nil, err
	}
	return &tech, nil
}

func (r *TechnicianRepository) Update(ctx context.Context, tech *domain.Technician) error {
	return r.db.WithContext(ctx).Save(tech).Error
}

func (r *TechnicianRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Technician{}, "id = ?", id).Error
}

func (r *TechnicianRepository) List(ctx context.Context, page, pageSize int, search string, activeOnly bool) ([]domain.Technician, int64, error) {
	var techs []domain.Technician
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Technician{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Contacts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Offset(offset).Limit(pageSize).
		Order("name ASC").
		Find(&techs).Error

	return techs, total, err
}

func (r *TechnicianRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Technician{}).
		Where("active = ?", true).
		Count(&count).Error
	return count, err
}
