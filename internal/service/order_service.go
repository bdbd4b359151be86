package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/mapper"
	"github.com/campoflow/fieldops-api/internal/repository"
)

type OrderService struct {
	orderRepo *repository.OrderRepository
	logger    *zap.Logger
}

func NewOrderService(orderRepo *repository.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (s *OrderService) Create(ctx context.Context, req *domain.CreateServiceOrderRequest) (*domain.ServiceOrderDTO, error) {
	status := domain.OrderStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, req.Status)
	}

	if _, err := s.orderRepo.GetByNumber(ctx, req.Number); err == nil {
		return nil, fmt.Errorf("order number %s: %w", req.Number, domain.ErrDuplicate)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check order number: %w", err)
	}

	order := &domain.ServiceOrder{
		Number:       req.Number,
		Status:       status,
		IssuedAt:     req.IssuedAt,
		DueAt:        req.DueAt,
		InstalledAt:  req.InstalledAt,
		ClientID:     req.ClientID,
		FieldTechID:  req.FieldTechID,
		AppTechID:    req.AppTechID,
		CityID:       req.CityID,
		DoneOnStreet: req.DoneOnStreet,
		ClosedViaApp: req.ClosedViaApp,
		Notes:        req.Notes,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create service order: %w", err)
	}

	s.logger.Info("service order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.Number),
	)

	return s.GetByID(ctx, order.ID)
}

func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceOrderDTO, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service order: %w", err)
	}

	dto := mapper.ToServiceOrderDTO(order)
	return &dto, nil
}

func (s *OrderService) List(ctx context.Context, page, pageSize int, filters repository.OrderFilters) ([]domain.ServiceOrderDTO, int64, error) {
	orders, total, err := s.orderRepo.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list service orders: %w", err)
	}

	dtos := make([]domain.ServiceOrderDTO, len(orders))
	for i := range orders {
		dtos[i] = mapper.ToServiceOrderDTO(&orders[i])
	}
	return dtos, total, nil
}

func (s *OrderService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateServiceOrderRequest) (*domain.ServiceOrderDTO, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service order: %w", err)
	}

	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, *req.Status)
		}
		order.Status = status
		// closing an order stamps the installation date unless given
		if status == domain.OrderStatusInstalled && order.InstalledAt == nil && req.InstalledAt == nil {
			now := time.Now().UTC()
			order.InstalledAt = &now
		}
	}
	if req.DueAt != nil {
		order.DueAt = *req.DueAt
	}
	if req.InstalledAt != nil {
		order.InstalledAt = req.InstalledAt
	}
	if req.FieldTechID != nil {
		order.FieldTechID = *req.FieldTechID
	}
	if req.AppTechID != nil {
		order.AppTechID = req.AppTechID
	}
	if req.DoneOnStreet != nil {
		order.DoneOnStreet = *req.DoneOnStreet
	}
	if req.ClosedViaApp != nil {
		order.ClosedViaApp = *req.ClosedViaApp
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update service order: %w", err)
	}

	dto := mapper.ToServiceOrderDTO(order)
	return &dto, nil
}

func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to get service order: %w", err)
	}
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service order: %w", err)
	}
	return nil
}

// Metrics computes per-status totals and the completion rate, rounded
// to two decimals. With no orders the rate is 0.
func (s *OrderService) Metrics(ctx context.Context) (*domain.OrderMetricsDTO, error) {
	totals, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	var overall int64
	for _, n := range totals {
		overall += n
	}
	installed := totals[domain.OrderStatusInstalled]

	rate := 0.0
	if overall > 0 {
		rate = math.Round(float64(installed)/float64(overall)*100*100) / 100
	}

	return &domain.OrderMetricsDTO{
		TotalOverall:   overall,
		TotalInstalled: installed,
		CompletionRate: rate,
		TotalsByStatus: totals,
	}, nil
}

// DueSoon lists not-yet-installed orders due within the next N days,
// soonest first.
func (s *OrderService) DueSoon(ctx context.Context, days int) ([]domain.ServiceOrderDTO, error) {
	deadline := time.Now().UTC().AddDate(0, 0, days)
	orders, err := s.orderRepo.ListDueBefore(ctx, deadline)
	if err != nil {
		return nil, fmt.Errorf("failed to list due orders: %w", err)
	}

	dtos := make([]domain.ServiceOrderDTO, len(orders))
	for i := range orders {
		dtos[i] = mapper.ToServiceOrderDTO(&orders[i])
	}
	return dtos, nil
}
