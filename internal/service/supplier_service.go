package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/mapper"
	"github.com/campoflow/fieldops-api/internal/repository"
)

type SupplierService struct {
	supplierRepo *repository.SupplierRepository
	contactRepo  *repository.ContactRepository
	logger       *zap.Logger
}

func NewSupplierService(supplierRepo *repository.SupplierRepository, contactRepo *repository.ContactRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		contactRepo:  contactRepo,
		logger:       logger,
	}
}

func (s *SupplierService) Create(ctx context.Context, req *domain.CreateSupplierRequest) (*domain.SupplierDTO, error) {
	supplier := &domain.Supplier{
		Name: req.Name,
		Kind: req.Kind,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	for _, in := range req.Contacts {
		contact := &domain.Contact{
			OwnerType: domain.ContactOwnerSupplier,
			OwnerID:   supplier.ID,
			Kind:      in.Kind,
			Value:     in.Value,
			Principal: in.Principal,
		}
		if err := s.contactRepo.Create(ctx, contact); err != nil {
			return nil, fmt.Errorf("failed to create contact: %w", err)
		}
	}

	s.logger.Info("supplier created",
		zap.String("supplier_id", supplier.ID.String()),
		zap.String("name", supplier.Name),
	)

	return s.GetByID(ctx, supplier.ID)
}

func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SupplierDTO, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	dto := mapper.ToSupplierDTO(supplier)
	return &dto, nil
}

func (s *SupplierService) List(ctx context.Context, page, pageSize int, search string) ([]domain.SupplierDTO, int64, error) {
	suppliers, total, err := s.supplierRepo.List(ctx, page, pageSize, search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}

	dtos := make([]domain.SupplierDTO, len(suppliers))
	for i := range suppliers {
		dtos[i] = mapper.ToSupplierDTO(&suppliers[i])
	}
	return dtos, total, nil
}

func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req *domain.CreateSupplierRequest) (*domain.SupplierDTO, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	supplier.Name = req.Name
	supplier.Kind = req.Kind

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	return s.GetByID(ctx, supplier.ID)
}

func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.supplierRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to get supplier: %w", err)
	}
	if err := s.supplierRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	return nil
}
