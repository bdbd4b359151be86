package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/repository"
	"github.com/campoflow/fieldops-api/internal/service"
)

func TestOrderServiceCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(repository.NewOrderRepository(db), testLogger())
	ctx := context.Background()

	city := seedCity(t, db, "Feira de Santana", "BA", nil, nil)
	client := seedClient(t, db, "Maria Souza", city.ID)
	tech := seedTechnician(t, db, "Carlos Lima")

	req := &domain.CreateServiceOrderRequest{
		Number:      "OS-1001",
		Status:      "PENDENTE",
		IssuedAt:    time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		DueAt:       time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
		ClientID:    client.ID,
		FieldTechID: tech.ID,
		CityID:      city.ID,
	}

	dto, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "OS-1001", dto.Number)
	assert.Equal(t, domain.OrderStatusPending, dto.Status)
	assert.Equal(t, "Maria Souza", dto.ClientName)

	t.Run("duplicate number", func(t *testing.T) {
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("invalid status", func(t *testing.T) {
		bad := *req
		bad.Number = "OS-1002"
		bad.Status = "EM_ANDAMENTO"
		_, err := svc.Create(ctx, &bad)
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestOrderServiceUpdateStampsInstallation(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(repository.NewOrderRepository(db), testLogger())
	ctx := context.Background()

	city := seedCity(t, db, "Salvador", "BA", nil, nil)
	client := seedClient(t, db, "João Pereira", city.ID)
	tech := seedTechnician(t, db, "Ana Costa")
	order := seedOrder(t, db, "OS-2001", domain.OrderStatusPending, client.ID, tech.ID, city.ID,
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	status := string(domain.OrderStatusInstalled)
	dto, err := svc.Update(ctx, order.ID, &domain.UpdateServiceOrderRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusInstalled, dto.Status)
	assert.NotEmpty(t, dto.InstalledAt)
}

func TestOrderServiceMetrics(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(repository.NewOrderRepository(db), testLogger())
	ctx := context.Background()

	city := seedCity(t, db, "Ilhéus", "BA", nil, nil)
	client := seedClient(t, db, "Pedro Santos", city.ID)
	tech := seedTechnician(t, db, "Lucas Alves")
	issued := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	seedOrder(t, db, "OS-1", domain.OrderStatusInstalled, client.ID, tech.ID, city.ID, issued)
	seedOrder(t, db, "OS-2", domain.OrderStatusInstalled, client.ID, tech.ID, city.ID, issued)
	seedOrder(t, db, "OS-3", domain.OrderStatusPending, client.ID, tech.ID, city.ID, issued)

	metrics, err := svc.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), metrics.TotalOverall)
	assert.Equal(t, int64(2), metrics.TotalInstalled)
	assert.InDelta(t, 66.67, metrics.CompletionRate, 0.001)
	assert.Equal(t, int64(1), metrics.TotalsByStatus[domain.OrderStatusPending])
}

func TestOrderServiceMetricsEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(repository.NewOrderRepository(db), testLogger())

	metrics, err := svc.Metrics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, metrics.TotalOverall)
	assert.Zero(t, metrics.CompletionRate)
}

func TestOrderServiceDueSoon(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(repository.NewOrderRepository(db), testLogger())
	ctx := context.Background()

	city := seedCity(t, db, "Itabuna", "BA", nil, nil)
	client := seedClient(t, db, "Rita Nunes", city.ID)
	tech := seedTechnician(t, db, "Bruno Dias")

	// due in 3 days
	seedOrder(t, db, "OS-10", domain.OrderStatusPending, client.ID, tech.ID, city.ID,
		time.Now().UTC().AddDate(0, 0, -4))
	// due in ~26 days, outside the window
	seedOrder(t, db, "OS-11", domain.OrderStatusPending, client.ID, tech.ID, city.ID,
		time.Now().UTC().AddDate(0, 0, 19))

	due, err := svc.DueSoon(ctx, 7)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "OS-10", due[0].Number)
}
