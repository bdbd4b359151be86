// Package analytics implements the pure, in-memory transforms behind the
// dashboard and map views: filtering service-order snapshots, grouping
// them into chart buckets, and resolving map markers from joined
// order/client/city data. Every function here is stateless and never
// mutates its input.
package analytics

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campoflow/fieldops-api/internal/domain"
)

// OrderCriteria is a set of optional constraints over service orders.
// A zero-value field imposes no constraint; all present constraints
// are combined with AND.
type OrderCriteria struct {
	// Query matches case-insensitively as a substring against the
	// client name, the order number, or the client address. A record
	// passes when any of the three matches.
	Query string

	Status       domain.OrderStatus
	CityID       uuid.UUID
	FieldTechID  uuid.UUID
	ClientID     uuid.UUID
	DoneOnStreet *bool
	ClosedViaApp *bool

	// IssuedFrom and IssuedTo bound the order's creation date
	// inclusively. Either bound may be absent.
	IssuedFrom *time.Time
	IssuedTo   *time.Time
}

// IsZero reports whether no constraint is present.
func (c OrderCriteria) IsZero() bool {
	return c.Query == "" && c.Status == "" &&
		c.CityID == uuid.Nil && c.FieldTechID == uuid.Nil && c.ClientID == uuid.Nil &&
		c.DoneOnStreet == nil && c.ClosedViaApp == nil &&
		c.IssuedFrom == nil && c.IssuedTo == nil
}

// FilterOrders returns a new slice containing the orders that satisfy
// every present criterion, preserving the relative order of the input.
// The input slice is never modified. Orders are expected to carry their
// Client preloaded; a missing client simply fails the free-text match.
func FilterOrders(orders []domain.ServiceOrder, c OrderCriteria) []domain.ServiceOrder {
	out := make([]domain.ServiceOrder, 0, len(orders))
	query := strings.ToLower(strings.TrimSpace(c.Query))
	for _, o := range orders {
		if query != "" && !matchesQuery(o, query) {
			continue
		}
		if c.Status != "" && o.Status != c.Status {
			continue
		}
		if c.CityID != uuid.Nil && o.CityID != c.CityID {
			continue
		}
		if c.FieldTechID != uuid.Nil && o.FieldTechID != c.FieldTechID {
			continue
		}
		if c.ClientID != uuid.Nil && o.ClientID != c.ClientID {
			continue
		}
		if c.DoneOnStreet != nil && o.DoneOnStreet != *c.DoneOnStreet {
			continue
		}
		if c.ClosedViaApp != nil && o.ClosedViaApp != *c.ClosedViaApp {
			continue
		}
		if c.IssuedFrom != nil && o.IssuedAt.Before(*c.IssuedFrom) {
			continue
		}
		if c.IssuedTo != nil && o.IssuedAt.After(*c.IssuedTo) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesQuery(o domain.ServiceOrder, query string) bool {
	if strings.Contains(strings.ToLower(o.Number), query) {
		return true
	}
	if o.Client == nil {
		return false
	}
	if strings.Contains(strings.ToLower(o.Client.FullName), query) {
		return true
	}
	return strings.Contains(strings.ToLower(o.Client.Address), query)
}
