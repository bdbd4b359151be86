package analytics

import (
	"math"

	"github.com/campoflow/fieldops-api/internal/domain"
)

// GroupCount is one chart bucket: a grouping key and how many orders
// carry it.
type GroupCount struct {
	Key   string
	Total int
}

// KeyFunc extracts the grouping key from an order. An empty key
// excludes the order from grouping.
type KeyFunc func(o *domain.ServiceOrder) string

// GroupBy counts orders per distinct key. Groups appear in
// first-occurrence order of their key in the input, and orders with an
// empty key are left out entirely, so the group totals always sum to
// the number of keyed orders.
func GroupBy(orders []domain.ServiceOrder, key KeyFunc) []GroupCount {
	totals := make(map[string]int, len(orders))
	keys := make([]string, 0, len(orders))
	for i := range orders {
		k := key(&orders[i])
		if k == "" {
			continue
		}
		if _, seen := totals[k]; !seen {
			keys = append(keys, k)
		}
		totals[k]++
	}
	groups := make([]GroupCount, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, GroupCount{Key: k, Total: totals[k]})
	}
	return groups
}

// CountDistinct reports how many distinct non-empty key values occur.
func CountDistinct(orders []domain.ServiceOrder, key KeyFunc) int {
	seen := make(map[string]struct{}, len(orders))
	for i := range orders {
		if k := key(&orders[i]); k != "" {
			seen[k] = struct{}{}
		}
	}
	return len(seen)
}

// Average divides total by divisor and rounds to one decimal place.
// A zero or negative divisor yields 0 rather than NaN or Inf.
func Average(total int, divisor int) float64 {
	if divisor <= 0 {
		return 0
	}
	return math.Round(float64(total)/float64(divisor)*10) / 10
}

// Common key extractors used by the dashboard charts.

// ByCityName groups by the order's preloaded city name.
func ByCityName(o *domain.ServiceOrder) string {
	if o.City == nil {
		return ""
	}
	return o.City.Name
}

// ByTechnicianName groups by the field technician's name.
func ByTechnicianName(o *domain.ServiceOrder) string {
	if o.FieldTech == nil {
		return ""
	}
	return o.FieldTech.Name
}

// ByNeighborhood groups by the client's neighborhood.
func ByNeighborhood(o *domain.ServiceOrder) string {
	if o.Client == nil {
		return ""
	}
	return o.Client.Neighborhood
}

// ByIssueDate groups by the creation date, formatted as yyyy-mm-dd.
func ByIssueDate(o *domain.ServiceOrder) string { return o.IssuedAt.Format("2006-01-02") }

// ByStatus groups by the order status.
func ByStatus(o *domain.ServiceOrder) string { return string(o.Status) }
