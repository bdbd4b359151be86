package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/repository"
)

func TestOrderRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	cityA := createTestCity(t, db, "Brasília", "DF")
	cityB := createTestCity(t, db, "Goiânia", "GO")
	client := createTestClient(t, db, "Maria Souza", cityA.ID)
	tech := createTestTechnician(t, db, "Carlos")

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	createTestOrder(t, db, "1001", domain.OrderStatusPending, client.ID, tech.ID, cityA.ID, base)
	createTestOrder(t, db, "1002", domain.OrderStatusInstalled, client.ID, tech.ID, cityA.ID, base.AddDate(0, 0, 1))
	createTestOrder(t, db, "1003", domain.OrderStatusPending, client.ID, tech.ID, cityB.ID, base.AddDate(0, 0, 2))

	t.Run("by status", func(t *testing.T) {
		orders, total, err := repo.List(ctx, 1, 10, repository.OrderFilters{Status: domain.OrderStatusPending})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, orders, 2)
	})

	t.Run("by city", func(t *testing.T) {
		orders, total, err := repo.List(ctx, 1, 10, repository.OrderFilters{CityID: cityB.ID})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, orders, 1)
		assert.Equal(t, "1003", orders[0].Number)
	})

	t.Run("by date range", func(t *testing.T) {
		from := base.AddDate(0, 0, 1)
		orders, total, err := repo.List(ctx, 1, 10, repository.OrderFilters{IssuedFrom: &from})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, orders, 2)
	})

	t.Run("status and city combined", func(t *testing.T) {
		_, total, err := repo.List(ctx, 1, 10, repository.OrderFilters{
			Status: domain.OrderStatusPending,
			CityID: cityA.ID,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})
}

func TestOrderRepository_ListAllPreloadsRelations(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	city := createTestCity(t, db, "Brasília", "DF")
	client := createTestClient(t, db, "Maria Souza", city.ID)
	tech := createTestTechnician(t, db, "Carlos")
	createTestOrder(t, db, "1001", domain.OrderStatusPending, client.ID, tech.ID, city.ID, time.Now().UTC())

	orders, err := repo.ListAll(ctx, repository.OrderFilters{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Maria Souza", orders[0].Client.FullName)
	assert.Equal(t, "Carlos", orders[0].FieldTech.Name)
	assert.Equal(t, "Brasília", orders[0].City.Name)
}

func TestOrderRepository_CountByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	city := createTestCity(t, db, "Brasília", "DF")
	client := createTestClient(t, db, "Maria Souza", city.ID)
	tech := createTestTechnician(t, db, "Carlos")

	base := time.Now().UTC()
	createTestOrder(t, db, "1001", domain.OrderStatusPending, client.ID, tech.ID, city.ID, base)
	createTestOrder(t, db, "1002", domain.OrderStatusPending, client.ID, tech.ID, city.ID, base)
	createTestOrder(t, db, "1003", domain.OrderStatusInstalled, client.ID, tech.ID, city.ID, base)

	totals, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, totals[domain.OrderStatusPending])
	assert.EqualValues(t, 1, totals[domain.OrderStatusInstalled])
	assert.EqualValues(t, 0, totals[domain.OrderStatusCancelled])
}

func TestOrderRepository_ListDueBefore(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	city := createTestCity(t, db, "Brasília", "DF")
	client := createTestClient(t, db, "Maria Souza", city.ID)
	tech := createTestTechnician(t, db, "Carlos")

	now := time.Now().UTC()
	// due in 5 days, pending: included
	dueSoon := createTestOrder(t, db, "1001", domain.OrderStatusPending, client.ID, tech.ID, city.ID, now.AddDate(0, 0, -2))
	// due in 5 days but already installed: excluded
	createTestOrder(t, db, "1002", domain.OrderStatusInstalled, client.ID, tech.ID, city.ID, now.AddDate(0, 0, -2))
	// due in 12 days: beyond the window
	createTestOrder(t, db, "1003", domain.OrderStatusPending, client.ID, tech.ID, city.ID, now.AddDate(0, 0, 5))

	orders, err := repo.ListDueBefore(ctx, now.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, dueSoon.Number, orders[0].Number)
}

func TestOrderRepository_UniqueNumber(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := repository.NewOrderRepository(db)

	city := createTestCity(t, db, "Brasília", "DF")
	client := createTestClient(t, db, "Maria Souza", city.ID)
	tech := createTestTechnician(t, db, "Carlos")

	createTestOrder(t, db, "1001", domain.OrderStatusPending, client.ID, tech.ID, city.ID, time.Now().UTC())

	dup := &domain.ServiceOrder{
		Number:      "1001",
		Status:      domain.OrderStatusPending,
		IssuedAt:    time.Now().UTC(),
		DueAt:       time.Now().UTC().AddDate(0, 0, 7),
		ClientID:    client.ID,
		FieldTechID: tech.ID,
		CityID:      city.ID,
	}
	err := repo.Create(ctx, dup)
	assert.Error(t, err)
}
