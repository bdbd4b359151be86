package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campoflow/fieldops-api/internal/analytics"
	"github.com/campoflow/fieldops-api/internal/config"
	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/repository"
	"github.com/campoflow/fieldops-api/internal/service"
)

func TestDashboardOverview(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewDashboardService(
		repository.NewOrderRepository(db),
		repository.NewTechnicianRepository(db),
		&config.DashboardConfig{AverageWindowDays: 30},
		testLogger(),
	)
	ctx := context.Background()

	feira := seedCity(t, db, "Feira de Santana", "BA", nil, nil)
	salvador := seedCity(t, db, "Salvador", "BA", nil, nil)
	clientA := seedClient(t, db, "Maria Souza", feira.ID)
	clientB := seedClient(t, db, "João Pereira", salvador.ID)
	tech := seedTechnician(t, db, "Carlos Lima")
	issued := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	seedOrder(t, db, "OS-1", domain.OrderStatusInstalled, clientA.ID, tech.ID, feira.ID, issued)
	seedOrder(t, db, "OS-2", domain.OrderStatusPending, clientA.ID, tech.ID, feira.ID, issued)
	seedOrder(t, db, "OS-3", domain.OrderStatusPending, clientB.ID, tech.ID, salvador.ID, issued.AddDate(0, 0, 1))

	dto, err := svc.Overview(ctx, analytics.OrderCriteria{})
	require.NoError(t, err)

	assert.Equal(t, 3, dto.TotalOrders)
	assert.Equal(t, 2, dto.CitiesServed)
	assert.Equal(t, 1, dto.ActiveTechnicians)
	assert.InDelta(t, 0.1, dto.DailyAverage, 0.0001)

	require.Len(t, dto.ByCity, 2)
	assert.Equal(t, "Feira de Santana", dto.ByCity[0].Key)
	assert.Equal(t, 2, dto.ByCity[0].Total)
	require.Len(t, dto.ByDate, 2)
	assert.Equal(t, "2026-05-10", dto.ByDate[0].Key)
}

func TestDashboardOverviewFiltered(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewDashboardService(
		repository.NewOrderRepository(db),
		repository.NewTechnicianRepository(db),
		&config.DashboardConfig{AverageWindowDays: 30},
		testLogger(),
	)
	ctx := context.Background()

	feira := seedCity(t, db, "Feira de Santana", "BA", nil, nil)
	salvador := seedCity(t, db, "Salvador", "BA", nil, nil)
	client := seedClient(t, db, "Maria Souza", feira.ID)
	tech := seedTechnician(t, db, "Carlos Lima")
	issued := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	seedOrder(t, db, "OS-1", domain.OrderStatusInstalled, client.ID, tech.ID, feira.ID, issued)
	seedOrder(t, db, "OS-2", domain.OrderStatusPending, client.ID, tech.ID, salvador.ID, issued)

	dto, err := svc.Overview(ctx, analytics.OrderCriteria{CityID: feira.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, dto.TotalOrders)
	assert.Equal(t, 1, dto.CitiesServed)
}

func TestDashboardSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewDashboardService(
		repository.NewOrderRepository(db),
		repository.NewTechnicianRepository(db),
		&config.DashboardConfig{AverageWindowDays: 30},
		testLogger(),
	)
	ctx := context.Background()

	city := seedCity(t, db, "Ilhéus", "BA", nil, nil)
	client := seedClient(t, db, "Maria Souza", city.ID)
	other := seedClient(t, db, "Pedro Santos", city.ID)
	tech := seedTechnician(t, db, "Ana Costa")
	issued := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	seedOrder(t, db, "OS-100", domain.OrderStatusPending, client.ID, tech.ID, city.ID, issued)
	seedOrder(t, db, "OS-200", domain.OrderStatusPending, other.ID, tech.ID, city.ID, issued)

	results, err := svc.Search(ctx, analytics.OrderCriteria{Query: "maria"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "OS-100", results[0].Number)
}
