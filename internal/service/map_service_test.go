package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campoflow/fieldops-api/internal/analytics"
	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/repository"
	"github.com/campoflow/fieldops-api/internal/service"
)

func TestMapMarkers(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewMapService(
		repository.NewOrderRepository(db),
		repository.NewClientRepository(db),
		repository.NewCityRepository(db),
		testLogger(),
	)
	ctx := context.Background()

	located := seedCity(t, db, "Feira de Santana", "BA", floatPtr(-12.2664), floatPtr(-38.9663))
	unlocated := seedCity(t, db, "Sem Coordenadas", "BA", nil, nil)

	pinned := seedClient(t, db, "Maria Souza", located.ID)
	pinned.Latitude = floatPtr(-12.25)
	pinned.Longitude = floatPtr(-38.95)
	require.NoError(t, db.Omit("Contacts").Save(pinned).Error)

	fallback := seedClient(t, db, "João Pereira", located.ID)
	lost := seedClient(t, db, "Pedro Santos", unlocated.ID)

	tech := seedTechnician(t, db, "Carlos Lima")
	issued := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	seedOrder(t, db, "OS-1", domain.OrderStatusInstalled, pinned.ID, tech.ID, located.ID, issued)
	seedOrder(t, db, "OS-2", domain.OrderStatusPending, fallback.ID, tech.ID, located.ID, issued)
	seedOrder(t, db, "OS-3", domain.OrderStatusPending, lost.ID, tech.ID, unlocated.ID, issued)

	markers, err := svc.Markers(ctx, analytics.OrderCriteria{})
	require.NoError(t, err)
	require.Len(t, markers, 2, "order without any coordinates should be skipped")

	byTitle := make(map[string]domain.MapMarkerDTO, len(markers))
	for _, m := range markers {
		byTitle[m.Title] = m
	}

	own := byTitle["O.S. OS-1 - Maria Souza"]
	assert.Equal(t, -12.25, own.Latitude, "client coordinates win over city")
	assert.Equal(t, "#10b981", own.Color)

	city := byTitle["O.S. OS-2 - João Pereira"]
	assert.Equal(t, -12.2664, city.Latitude, "city coordinates used as fallback")
	assert.Equal(t, "#f59e0b", city.Color)
}

func TestMapMarkersFiltered(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewMapService(
		repository.NewOrderRepository(db),
		repository.NewClientRepository(db),
		repository.NewCityRepository(db),
		testLogger(),
	)
	ctx := context.Background()

	city := seedCity(t, db, "Salvador", "BA", floatPtr(-12.9714), floatPtr(-38.5014))
	client := seedClient(t, db, "Rita Nunes", city.ID)
	tech := seedTechnician(t, db, "Bruno Dias")
	issued := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	seedOrder(t, db, "OS-1", domain.OrderStatusInstalled, client.ID, tech.ID, city.ID, issued)
	seedOrder(t, db, "OS-2", domain.OrderStatusCancelled, client.ID, tech.ID, city.ID, issued)

	markers, err := svc.Markers(ctx, analytics.OrderCriteria{Status: domain.OrderStatusCancelled})
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, "#ef4444", markers[0].Color)
}
