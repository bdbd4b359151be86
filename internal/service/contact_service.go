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

type ContactService struct {
	contactRepo *repository.ContactRepository
	logger      *zap.Logger
}

func NewContactService(contactRepo *repository.ContactRepository, logger *zap.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// ListByOwner returns the owner's contacts in stored order.
func (s *ContactService) ListByOwner(ctx context.Context, ownerType domain.ContactOwnerType, ownerID uuid.UUID) ([]domain.ContactDTO, error) {
	if !ownerType.IsValid() {
		return nil, fmt.Errorf("owner type %q: %w", ownerType, domain.ErrInvalidStatus)
	}

	contacts, err := s.contactRepo.ListByOwner(ctx, ownerType, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return mapper.ToContactDTOs(contacts), nil
}

func (s *ContactService) Create(ctx context.Context, ownerType domain.ContactOwnerType, ownerID uuid.UUID, req *domain.ContactInput) (*domain.ContactDTO, error) {
	if !ownerType.IsValid() {
		return nil, fmt.Errorf("owner type %q: %w", ownerType, domain.ErrInvalidStatus)
	}
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("contact kind %q: %w", req.Kind, domain.ErrInvalidStatus)
	}

	contact := &domain.Contact{
		OwnerType: ownerType,
		OwnerID:   ownerID,
		Kind:      req.Kind,
		Value:     req.Value,
		Principal: req.Principal,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	s.logger.Info("contact created",
		zap.String("contact_id", contact.ID.String()),
		zap.String("owner_type", string(ownerType)),
		zap.String("owner_id", ownerID.String()),
	)

	dto := mapper.ToContactDTO(contact)
	return &dto, nil
}

func (s *ContactService) Update(ctx context.Context, id uuid.UUID, req *domain.ContactInput) (*domain.ContactDTO, error) {
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("contact kind %q: %w", req.Kind, domain.ErrInvalidStatus)
	}

	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	contact.Kind = req.Kind
	contact.Value = req.Value
	contact.Principal = req.Principal

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	dto := mapper.ToContactDTO(contact)
	return &dto, nil
}

// SetPrincipal marks the contact as its owner's principal channel,
// demoting any other.
func (s *ContactService) SetPrincipal(ctx context.Context, id uuid.UUID) error {
	if _, err := s.contactRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to get contact: %w", err)
	}
	if err := s.contactRepo.SetPrincipal(ctx, id); err != nil {
		return fmt.Errorf("failed to set principal contact: %w", err)
	}
	return nil
}

func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.contactRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to get contact: %w", err)
	}
	if err := s.contactRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
