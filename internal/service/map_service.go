package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campoflow/fieldops-api/internal/analytics"
	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/mapper"
	"github.com/campoflow/fieldops-api/internal/repository"
)

// MapService resolves service orders into renderable map markers by
// joining each order with its client and city records.
type MapService struct {
	orderRepo  *repository.OrderRepository
	clientRepo *repository.ClientRepository
	cityRepo   *repository.CityRepository
	logger     *zap.Logger
}

func NewMapService(orderRepo *repository.OrderRepository, clientRepo *repository.ClientRepository, cityRepo *repository.CityRepository, logger *zap.Logger) *MapService {
	return &MapService{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		cityRepo:   cityRepo,
		logger:     logger,
	}
}

// Markers builds map markers for the orders matching the criteria.
// Orders without a resolvable position are skipped, not errored.
func (s *MapService) Markers(ctx context.Context, criteria analytics.OrderCriteria) ([]domain.MapMarkerDTO, error) {
	orders, err := s.orderRepo.ListAll(ctx, repository.OrderFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	orders = analytics.FilterOrders(orders, criteria)

	clients, err := s.clientRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	cities, err := s.cityRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cities: %w", err)
	}

	markers := analytics.BuildMarkers(orders, clients, cities)
	if skipped := len(orders) - len(markers); skipped > 0 {
		s.logger.Debug("orders without position skipped from map",
			zap.Int("skipped", skipped),
			zap.Int("rendered", len(markers)),
		)
	}

	dtos := make([]domain.MapMarkerDTO, len(markers))
	for i := range markers {
		dtos[i] = mapper.ToMapMarkerDTO(&markers[i])
	}
	return dtos, nil
}
