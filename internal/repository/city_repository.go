package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/domain"
)

type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

func (r *CityRepository) Create(ctx context.Context, city *domain.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *CityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	var city domain.City
	err := r.db.WithContext(ctx).First(&city, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &city, nil
}

// GetByNameAndUF looks a city up by its natural key, case-insensitive
// on the name.
func (r *CityRepository) GetByNameAndUF(ctx context.Context, name, uf string) (*domain.City, error) {
	var city domain.City
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ? AND uf = ?", strings.ToLower(name), strings.ToUpper(uf)).
		First(&city).Error
	if err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *CityRepository) Update(ctx context.Context, city *domain.City) error {
	return r.db.WithContext(ctx).Save(city).Error
}

func (r *CityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.City{}, "id = ?", id).Error
}

func (r *CityRepository) List(ctx context.Context, page, pageSize int, search, uf, region string) ([]domain.City, int64, error) {
	var cities []domain.City
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.City{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}
	if uf != "" {
		query = query.Where("uf = ?", strings.ToUpper(uf))
	}
	if region != "" {
		query = query.Where("LOWER(region) = ?", strings.ToLower(region))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("name ASC").Find(&cities).Error

	return cities, total, err
}

// ListAll returns every city, used by the map resolver.
func (r *CityRepository) ListAll(ctx context.Context) ([]domain.City, error) {
	var cities []domain.City
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cities).Error
	return cities, err
}
