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

type ClientService struct {
	clientRepo  *repository.ClientRepository
	contactRepo *repository.ContactRepository
	logger      *zap.Logger
}

func NewClientService(clientRepo *repository.ClientRepository, contactRepo *repository.ContactRepository, logger *zap.Logger) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (s *ClientService) Create(ctx context.Context, req *domain.CreateClientRequest) (*domain.ClientDTO, error) {
	if req.CPF != "" {
		if _, err := s.clientRepo.GetByCPF(ctx, req.CPF); err == nil {
			return nil, fmt.Errorf("cpf %s: %w", req.CPF, domain.ErrDuplicate)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check cpf: %w", err)
		}
	}

	client := &domain.Client{
		FullName:      req.FullName,
		CPF:           req.CPF,
		Address:       req.Address,
		AddressNumber: req.AddressNumber,
		Complement:    req.Complement,
		Neighborhood:  req.Neighborhood,
		CityID:        req.CityID,
		CEP:           req.CEP,
		Landmark:      req.Landmark,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := s.createContacts(ctx, domain.ContactOwnerClient, client.ID, req.Contacts); err != nil {
		return nil, err
	}

	s.logger.Info("client created",
		zap.String("client_id", client.ID.String()),
		zap.String("full_name", client.FullName),
	)

	return s.GetByID(ctx, client.ID)
}

func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ClientDTO, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	dto := mapper.ToClientDTO(client)
	return &dto, nil
}

func (s *ClientService) List(ctx context.Context, page, pageSize int, search string, cityID uuid.UUID) ([]domain.ClientDTO, int64, error) {
	clients, total, err := s.clientRepo.List(ctx, page, pageSize, search, cityID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	dtos := make([]domain.ClientDTO, len(clients))
	for i := range clients {
		dtos[i] = mapper.ToClientDTO(&clients[i])
	}
	return dtos, total, nil
}

func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateClientRequest) (*domain.ClientDTO, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	client.FullName = req.FullName
	client.CPF = req.CPF
	client.Address = req.Address
	client.AddressNumber = req.AddressNumber
	client.Complement = req.Complement
	client.Neighborhood = req.Neighborhood
	client.CityID = req.CityID
	client.CEP = req.CEP
	client.Landmark = req.Landmark
	client.Latitude = req.Latitude
	client.Longitude = req.Longitude

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return s.GetByID(ctx, client.ID)
}

func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.clientRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to get client: %w", err)
	}
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func (s *ClientService) createContacts(ctx context.Context, ownerType domain.ContactOwnerType, ownerID uuid.UUID, inputs []domain.ContactInput) error {
	for _, in := range inputs {
		contact := &domain.Contact{
			OwnerType: ownerType,
			OwnerID:   ownerID,
			Kind:      in.Kind,
			Value:     in.Value,
			Principal: in.Principal,
		}
		if err := s.contactRepo.Create(ctx, contact); err != nil {
			return fmt.Errorf("failed to create contact: %w", err)
		}
	}
	return nil
}
