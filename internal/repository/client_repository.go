package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/domain"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var client domain.Client
	err := r.db.WithContext(ctx).
		Preload("City").
		Preload("Contacts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Client{}, "id = ?", id).Error
}

func (r *ClientRepository) List(ctx context.Context, page, pageSize int, search string, cityID uuid.UUID) ([]domain.Client, int64, error) {
	var clients []domain.Client
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Client{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(address) LIKE ?", pattern, pattern)
	}
	if cityID != uuid.Nil {
		query = query.Where("city_id = ?", cityID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("City").
		Preload("Contacts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Offset(offset).Limit(pageSize).
		Order("full_name ASC").
		Find(&clients).Error

	return clients, total, err
}

// ListAll returns every client, used by the map and report builders.
func (r *ClientRepository) ListAll(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.WithContext(ctx).
		Preload("City").
		Preload("Contacts", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Find(&clients).Error
	return clients, err
}

func (r *ClientRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Client, error) {
	var client domain.Client
	err := r.db.WithContext(ctx).First(&client, "cpf = ?", cpf).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}
