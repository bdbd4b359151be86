package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/mapper"
	"github.com/campoflow/fieldops-api/internal/repository"
)

type CityService struct {
	cityRepo *repository.CityRepository
	logger   *zap.Logger
}

func NewCityService(cityRepo *repository.CityRepository, logger *zap.Logger) *CityService {
	return &CityService{
		cityRepo: cityRepo,
		logger:   logger,
	}
}

func (s *CityService) Create(ctx context.Context, req *domain.CreateCityRequest) (*domain.CityDTO, error) {
	uf := strings.ToUpper(req.UF)

	if _, err := s.cityRepo.GetByNameAndUF(ctx, req.Name, uf); err == nil {
		return nil, fmt.Errorf("city %s/%s: %w", req.Name, uf, domain.ErrDuplicate)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check city: %w", err)
	}

	city := &domain.City{
		Name:      req.Name,
		UF:        uf,
		Region:    req.Region,
		IBGECode:  req.IBGECode,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if err := s.cityRepo.Create(ctx, city); err != nil {
		return nil, fmt.Errorf("failed to create city: %w", err)
	}

	s.logger.Info("city created",
		zap.String("city_id", city.ID.String()),
		zap.String("name", city.Name),
		zap.String("uf", city.UF),
	)

	dto := mapper.ToCityDTO(city)
	return &dto, nil
}

func (s *CityService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CityDTO, error) {
	city, err := s.cityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get city: %w", err)
	}

	dto := mapper.ToCityDTO(city)
	return &dto, nil
}

func (s *CityService) List(ctx context.Context, page, pageSize int, search, uf, region string) ([]domain.CityDTO, int64, error) {
	cities, total, err := s.cityRepo.List(ctx, page, pageSize, search, strings.ToUpper(uf), region)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cities: %w", err)
	}

	dtos := make([]domain.CityDTO, len(cities))
	for i := range cities {
		dtos[i] = mapper.ToCityDTO(&cities[i])
	}
	return dtos, total, nil
}

func (s *CityService) Update(ctx context.Context, id uuid.UUID, req *domain.CreateCityRequest) (*domain.CityDTO, error) {
	city, err := s.cityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get city: %w", err)
	}

	city.Name = req.Name
	city.UF = strings.ToUpper(req.UF)
	city.Region = req.Region
	city.IBGECode = req.IBGECode
	city.Latitude = req.Latitude
	city.Longitude = req.Longitude

	if err := s.cityRepo.Update(ctx, city); err != nil {
		return nil, fmt.Errorf("failed to update city: %w", err)
	}

	dto := mapper.ToCityDTO(city)
	return &dto, nil
}

func (s *CityService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.cityRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to get city: %w", err)
	}
	if err := s.cityRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete city: %w", err)
	}
	return nil
}
