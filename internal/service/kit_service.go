package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/mapper"
	"github.com/campoflow/fieldops-api/internal/repository"
)

type KitService struct {
	kitRepo *repository.KitRepository
	logger  *zap.Logger
}

func NewKitService(kitRepo *repository.KitRepository, logger *zap.Logger) *KitService {
	return &KitService{
		kitRepo: kitRepo,
		logger:  logger,
	}
}

func (s *KitService) Create(ctx context.Context, req *domain.CreateKitRequest) (*domain.KitDTO, error) {
	status := domain.KitStatusAvailable
	if req.Status != "" {
		status = domain.KitStatus(req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, req.Status)
		}
	}

	if _, err := s.kitRepo.GetBySerialNumber(ctx, req.SerialNumber); err == nil {
		return nil, fmt.Errorf("serial number %s: %w", req.SerialNumber, domain.ErrDuplicate)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check serial number: %w", err)
	}

	kit := &domain.Kit{
		SerialNumber: req.SerialNumber,
		Model:        req.Model,
		SupplierID:   req.SupplierID,
		Status:       status,
	}
	for _, in := range req.Components {
		if !in.Kind.IsValid() {
			return nil, fmt.Errorf("component kind %q: %w", in.Kind, domain.ErrInvalidStatus)
		}
		qty := in.Quantity
		if qty == 0 {
			qty = 1
		}
		kit.Components = append(kit.Components, domain.Component{
			Kind:         in.Kind,
			SerialNumber: in.SerialNumber,
			LengthMeters: in.LengthMeters,
			Quantity:     qty,
			Status:       in.Status,
		})
	}

	if err := s.kitRepo.Create(ctx, kit); err != nil {
		return nil, fmt.Errorf("failed to create kit: %w", err)
	}

	s.logger.Info("kit created",
		zap.String("kit_id", kit.ID.String()),
		zap.String("serial_number", kit.SerialNumber),
	)

	return s.GetByID(ctx, kit.ID)
}

func (s *KitService) GetByID(ctx context.Context, id uuid.UUID) (*domain.KitDTO, error) {
	kit, err := s.kitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get kit: %w", err)
	}

	dto := mapper.ToKitDTO(kit)
	return &dto, nil
}

func (s *KitService) List(ctx context.Context, page, pageSize int, status domain.KitStatus, supplierID uuid.UUID) ([]domain.KitDTO, int64, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, status)
	}

	kits, total, err := s.kitRepo.List(ctx, page, pageSize, status, supplierID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list kits: %w", err)
	}

	dtos := make([]domain.KitDTO, len(kits))
	for i := range kits {
		dtos[i] = mapper.ToKitDTO(&kits[i])
	}
	return dtos, total, nil
}

// Allocate hands an available kit to a technician, optionally tied to a
// service order. Only available kits can be allocated.
func (s *KitService) Allocate(ctx context.Context, id uuid.UUID, req *domain.AllocateKitRequest) (*domain.KitDTO, error) {
	kit, err := s.kitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get kit: %w", err)
	}

	if kit.Status != domain.KitStatusAvailable {
		return nil, fmt.Errorf("kit %s is %s: %w", kit.SerialNumber, kit.Status, domain.ErrKitUnavailable)
	}
	if req.TechnicianID == nil {
		return nil, fmt.Errorf("allocation requires a technician: %w", domain.ErrKitUnavailable)
	}

	now := time.Now().UTC()
	kit.Status = domain.KitStatusAllocated
	kit.TechnicianID = req.TechnicianID
	kit.ServiceOrderID = req.ServiceOrderID
	kit.AllocatedAt = &now

	if err := s.kitRepo.Update(ctx, kit); err != nil {
		return nil, fmt.Errorf("failed to allocate kit: %w", err)
	}

	s.logger.Info("kit allocated",
		zap.String("kit_id", kit.ID.String()),
		zap.String("technician_id", req.TechnicianID.String()),
	)

	return s.GetByID(ctx, kit.ID)
}

// MarkInstalled closes the allocation cycle for a kit in the field.
func (s *KitService) MarkInstalled(ctx context.Context, id uuid.UUID) (*domain.KitDTO, error) {
	kit, err := s.kitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get kit: %w", err)
	}

	if kit.Status != domain.KitStatusAllocated {
		return nil, fmt.Errorf("kit %s is %s: %w", kit.SerialNumber, kit.Status, domain.ErrKitUnavailable)
	}

	now := time.Now().UTC()
	kit.Status = domain.KitStatusInstalled
	kit.InstalledAt = &now

	if err := s.kitRepo.Update(ctx, kit); err != nil {
		return nil, fmt.Errorf("failed to mark kit installed: %w", err)
	}

	return s.GetByID(ctx, kit.ID)
}

// Release returns an allocated kit to the available pool.
func (s *KitService) Release(ctx context.Context, id uuid.UUID) (*domain.KitDTO, error) {
	kit, err := s.kitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get kit: %w", err)
	}

	if kit.Status != domain.KitStatusAllocated {
		return nil, fmt.Errorf("kit %s is %s: %w", kit.SerialNumber, kit.Status, domain.ErrKitUnavailable)
	}

	kit.Status = domain.KitStatusAvailable
	kit.TechnicianID = nil
	kit.ServiceOrderID = nil
	kit.AllocatedAt = nil

	if err := s.kitRepo.Update(ctx, kit); err != nil {
		return nil, fmt.Errorf("failed to release kit: %w", err)
	}

	return s.GetByID(ctx, kit.ID)
}

func (s *KitService) ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]domain.KitDTO, error) {
	kits, err := s.kitRepo.ListByTechnician(ctx, technicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to list technician kits: %w", err)
	}

	dtos := make([]domain.KitDTO, len(kits))
	for i := range kits {
		dtos[i] = mapper.ToKitDTO(&kits[i])
	}
	return dtos, nil
}

func (s *KitService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.kitRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to get kit: %w", err)
	}
	if err := s.kitRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete kit: %w", err)
	}
	return nil
}
