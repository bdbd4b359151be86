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

type TechnicianService struct {
	techRepo    *repository.TechnicianRepository
	contactRepo *repository.ContactRepository
	logger      *zap.Logger
}

func NewTechnicianService(techRepo *repository.TechnicianRepository, contactRepo *repository.ContactRepository, logger *zap.Logger) *TechnicianService {
	return &TechnicianService{
		techRepo:    techRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (s *TechnicianService) Create(ctx context.Context, req *domain.CreateTechnicianRequest) (*domain.TechnicianDTO, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	tech := &domain.Technician{
		Name:    req.Name,
		FieldID: req.FieldID,
		AppID:   req.AppID,
		Active:  active,
	}

	if err := s.techRepo.Create(ctx, tech); err != nil {
		return nil, fmt.Errorf("failed to create technician: %w", err)
	}

	for _, in := range req.Contacts {
		contact := &domain.Contact{
			OwnerType: domain.ContactOwnerTechnician,
			OwnerID:   tech.ID,
			Kind:      in.Kind,
			Value:     in.Value,
			Principal: in.Principal,
		}
		if err := s.contactRepo.Create(ctx, contact); err != nil {
			return nil, fmt.Errorf("failed to create contact: %w", err)
		}
	}

	s.logger.Info("technician created",
		zap.String("technician_id", tech.ID.String()),
		zap.String("name", tech.Name),
	)

	return s.GetByID(ctx, tech.ID)
}

func (s *TechnicianService) GetByID(ctx context.Context, id uuid.UUID) (*domain.TechnicianDTO, error) {
	tech, err := s.techRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get technician: %w", err)
	}

	dto := mapper.ToTechnicianDTO(tech)
	return &dto, nil
}

func (s *TechnicianService) List(ctx context.Context, page, pageSize int, search string, activeOnly bool) ([]domain.TechnicianDTO, int64, error) {
	techs, total, err := s.techRepo.List(ctx, page, pageSize, search, activeOnly)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list technicians: %w", err)
	}

	dtos := make([]domain.TechnicianDTO, len(techs))
	for i := range techs {
		dtos[i] = mapper.ToTechnicianDTO(&techs[i])
	}
	return dtos, total, nil
}

func (s *TechnicianService) Update(ctx context.Context, id uuid.UUID, req *domain.CreateTechnicianRequest) (*domain.TechnicianDTO, error) {
	tech, err := s.techRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get technician: %w", err)
	}

	tech.Name = req.Name
	tech.FieldID = req.FieldID
	tech.AppID = req.AppID
	if req.Active != nil {
		tech.Active = *req.Active
	}

	if err := s.techRepo.Update(ctx, tech); err != nil {
		return nil, fmt.Errorf("failed to update technician: %w", err)
	}

	return s.GetByID(ctx, tech.ID)
}

func (s *TechnicianService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.techRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to get technician: %w", err)
	}
	if err := s.techRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete technician: %w", err)
	}
	return nil
}
