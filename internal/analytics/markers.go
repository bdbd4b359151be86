package analytics

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/campoflow/fieldops-api/internal/domain"
)

// Marker hex colors per order status. Unknown statuses fall back to
// ColorDefault so every emitted marker stays renderable.
const (
	ColorPending   = "#f59e0b"
	ColorInstalled = "#10b981"
	ColorCancelled = "#ef4444"
	ColorDefault   = "#3b82f6"
)

// Marker is a map-renderable point derived from an order joined with
// its client and city.
type Marker struct {
	OrderID     uuid.UUID
	Latitude    float64
	Longitude   float64
	Title       string
	Description string
	Color       string
	Order       *domain.ServiceOrder
	Client      *domain.Client
	City        *domain.City
}

// StatusColor maps an order status to its marker color.
func StatusColor(status domain.OrderStatus) string {
	switch status {
	case domain.OrderStatusPending:
		return ColorPending
	case domain.OrderStatusInstalled:
		return ColorInstalled
	case domain.OrderStatusCancelled:
		return ColorCancelled
	default:
		return ColorDefault
	}
}

// BuildMarkers joins each order to its client and the client's city and
// emits one marker per resolvable order. Orders whose client or city is
// missing, or for which no complete coordinate pair can be resolved,
// are silently skipped: data-integrity gaps shorten the marker list,
// they never fail it.
//
// Coordinates come from the client when both latitude and longitude are
// set, otherwise from the client's city. A half-present pair on either
// side counts as absent.
func BuildMarkers(orders []domain.ServiceOrder, clients []domain.Client, cities []domain.City) []Marker {
	clientsByID := make(map[uuid.UUID]*domain.Client, len(clients))
	for i := range clients {
		clientsByID[clients[i].ID] = &clients[i]
	}
	citiesByID := make(map[uuid.UUID]*domain.City, len(cities))
	for i := range cities {
		citiesByID[cities[i].ID] = &cities[i]
	}

	markers := make([]Marker, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		client, ok := clientsByID[order.ClientID]
		if !ok {
			continue
		}
		city, ok := citiesByID[client.CityID]
		if !ok {
			continue
		}
		lat, lng, ok := resolveCoordinates(client, city)
		if !ok {
			continue
		}
		markers = append(markers, Marker{
			OrderID:     order.ID,
			Latitude:    lat,
			Longitude:   lng,
			Title:       fmt.Sprintf("O.S. %s - %s", order.Number, client.FullName),
			Description: fmt.Sprintf("%s | %s/%s", order.Status, city.Name, city.UF),
			Color:       StatusColor(order.Status),
			Order:       order,
			Client:      client,
			City:        city,
		})
	}
	return markers
}

func resolveCoordinates(client *domain.Client, city *domain.City) (float64, float64, bool) {
	if client.Latitude != nil && client.Longitude != nil {
		return *client.Latitude, *client.Longitude, true
	}
	if city.Latitude != nil && city.Longitude != nil {
		return *city.Latitude, *city.Longitude, true
	}
	return 0, 0, false
}
