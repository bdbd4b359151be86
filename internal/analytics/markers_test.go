package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campoflow/fieldops-api/internal/domain"
)

func ptr(f float64) *float64 { return &f }

func markerFixture() (domain.ServiceOrder, domain.Client, domain.City) {
	city := domain.City{Name: "Brasília", UF: "DF", Latitude: ptr(-15.78), Longitude: ptr(-47.92)}
	city.ID = uuid.New()

	client := domain.Client{FullName: "Maria Souza", CityID: city.ID}
	client.ID = uuid.New()

	order := domain.ServiceOrder{Number: "1001", Status: domain.OrderStatusPending, ClientID: client.ID, CityID: city.ID}
	order.ID = uuid.New()

	return order, client, city
}

func TestBuildMarkers_PrefersClientCoordinates(t *testing.T) {
	order, client, city := markerFixture()
	client.Latitude = ptr(-23.55)
	client.Longitude = ptr(-46.63)

	markers := BuildMarkers(
		[]domain.ServiceOrder{order},
		[]domain.Client{client},
		[]domain.City{city},
	)

	require.Len(t, markers, 1)
	assert.Equal(t, -23.55, markers[0].Latitude)
	assert.Equal(t, -46.63, markers[0].Longitude)
}

func TestBuildMarkers_FallsBackToCityCoordinates(t *testing.T) {
	order, client, city := markerFixture()

	markers := BuildMarkers(
		[]domain.ServiceOrder{order},
		[]domain.Client{client},
		[]domain.City{city},
	)

	require.Len(t, markers, 1)
	assert.Equal(t, -15.78, markers[0].Latitude)
	assert.Equal(t, -47.92, markers[0].Longitude)
}

func TestBuildMarkers_SkipsUnresolvableOrders(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(order *domain.ServiceOrder, client *domain.Client, city *domain.City)
		dropAll bool
	}{
		{
			name:   "missing client",
			mutate: func(o *domain.ServiceOrder, _ *domain.Client, _ *domain.City) { o.ClientID = uuid.New() },
		},
		{
			name:   "missing city",
			mutate: func(_ *domain.ServiceOrder, c *domain.Client, _ *domain.City) { c.CityID = uuid.New() },
		},
		{
			name: "no coordinates anywhere",
			mutate: func(_ *domain.ServiceOrder, _ *domain.Client, city *domain.City) {
				city.Latitude, city.Longitude = nil, nil
			},
		},
		{
			name: "half-present client pair does not count",
			mutate: func(_ *domain.ServiceOrder, c *domain.Client, city *domain.City) {
				c.Latitude = ptr(-23.55)
				city.Latitude, city.Longitude = nil, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, client, city := markerFixture()
			tt.mutate(&order, &client, &city)

			markers := BuildMarkers(
				[]domain.ServiceOrder{order},
				[]domain.Client{client},
				[]domain.City{city},
			)

			assert.Empty(t, markers)
		})
	}
}

func TestBuildMarkers_StatusColors(t *testing.T) {
	_, client, city := markerFixture()

	statuses := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusInstalled,
		domain.OrderStatusCancelled,
		domain.OrderStatus("UNKNOWN"),
	}
	var orders []domain.ServiceOrder
	for _, s := range statuses {
		o := domain.ServiceOrder{Number: "1001", Status: s, ClientID: client.ID, CityID: city.ID}
		o.ID = uuid.New()
		orders = append(orders, o)
	}

	markers := BuildMarkers(orders, []domain.Client{client}, []domain.City{city})

	require.Len(t, markers, 4)
	want := []string{"#f59e0b", "#10b981", "#ef4444", "#3b82f6"}
	for i, m := range markers {
		assert.Equal(t, want[i], m.Color)
	}
}

func TestBuildMarkers_ComposesTitleAndDescription(t *testing.T) {
	order, client, city := markerFixture()
	client.FullName = "João Lima"

	markers := BuildMarkers(
		[]domain.ServiceOrder{order},
		[]domain.Client{client},
		[]domain.City{city},
	)

	require.Len(t, markers, 1)
	assert.Equal(t, "O.S. 1001 - João Lima", markers[0].Title)
	assert.Equal(t, "PENDENTE | Brasília/DF", markers[0].Description)
}
