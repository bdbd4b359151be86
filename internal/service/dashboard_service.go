package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/campoflow/fieldops-api/internal/analytics"
	"github.com/campoflow/fieldops-api/internal/config"
	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/mapper"
	"github.com/campoflow/fieldops-api/internal/repository"
)

// DashboardService assembles the cards and chart buckets for the
// dashboard view. Orders are loaded once with their relations and all
// slicing happens in memory.
type DashboardService struct {
	orderRepo *repository.OrderRepository
	techRepo  *repository.TechnicianRepository
	cfg       *config.DashboardConfig
	logger    *zap.Logger
}

func NewDashboardService(orderRepo *repository.OrderRepository, techRepo *repository.TechnicianRepository, cfg *config.DashboardConfig, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		orderRepo: orderRepo,
		techRepo:  techRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// Overview computes the dashboard payload for the orders matching the
// given criteria. An empty criteria covers the whole dataset.
func (s *DashboardService) Overview(ctx context.Context, criteria analytics.OrderCriteria) (*domain.DashboardDTO, error) {
	orders, err := s.orderRepo.ListAll(ctx, repository.OrderFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	orders = analytics.FilterOrders(orders, criteria)

	activeTechs, err := s.techRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active technicians: %w", err)
	}

	dto := &domain.DashboardDTO{
		TotalOrders:       len(orders),
		CitiesServed:      analytics.CountDistinct(orders, analytics.ByCityName),
		ActiveTechnicians: int(activeTechs),
		DailyAverage:      analytics.Average(len(orders), s.cfg.AverageWindowDays),
		ByCity:            mapper.ToGroupCountDTOs(analytics.GroupBy(orders, analytics.ByCityName)),
		ByTechnician:      mapper.ToGroupCountDTOs(analytics.GroupBy(orders, analytics.ByTechnicianName)),
		ByDate:            mapper.ToGroupCountDTOs(analytics.GroupBy(orders, analytics.ByIssueDate)),
		ByNeighborhood:    mapper.ToGroupCountDTOs(analytics.GroupBy(orders, analytics.ByNeighborhood)),
	}
	return dto, nil
}

// Search runs the free-text and structured filters over the full order
// snapshot and returns the matching orders, newest first as loaded.
func (s *DashboardService) Search(ctx context.Context, criteria analytics.OrderCriteria) ([]domain.ServiceOrderDTO, error) {
	orders, err := s.orderRepo.ListAll(ctx, repository.OrderFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	orders = analytics.FilterOrders(orders, criteria)

	dtos := make([]domain.ServiceOrderDTO, len(orders))
	for i := range orders {
		dtos[i] = mapper.ToServiceOrderDTO(&orders[i])
	}
	return dtos, nil
}
