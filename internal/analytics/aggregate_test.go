package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campoflow/fieldops-api/internal/domain"
)

func orderInCity(cityName string) domain.ServiceOrder {
	o := domain.ServiceOrder{Number: "1000", Status: domain.OrderStatusPending}
	o.ID = uuid.New()
	o.City = &domain.City{Name: cityName}
	return o
}

func TestGroupBy_FirstOccurrenceOrder(t *testing.T) {
	orders := []domain.ServiceOrder{
		orderInCity("A"),
		orderInCity("A"),
		orderInCity("B"),
	}

	groups := GroupBy(orders, ByCityName)

	require.Len(t, groups, 2)
	assert.Equal(t, GroupCount{Key: "A", Total: 2}, groups[0])
	assert.Equal(t, GroupCount{Key: "B", Total: 1}, groups[1])
}

func TestGroupBy_ExcludesEmptyKeys(t *testing.T) {
	orders := []domain.ServiceOrder{
		orderInCity("A"),
		orderInCity(""),
		orderInCity("B"),
		orderInCity(""),
	}

	groups := GroupBy(orders, ByCityName)

	require.Len(t, groups, 2)
	for _, g := range groups {
		assert.NotEmpty(t, g.Key)
	}
}

func TestGroupBy_TotalsSumToKeyedInputSize(t *testing.T) {
	orders := []domain.ServiceOrder{
		orderInCity("A"), orderInCity("B"), orderInCity("A"),
		orderInCity(""), orderInCity("C"), orderInCity("B"),
		orderInCity("A"),
	}

	groups := GroupBy(orders, ByCityName)

	keyed := 0
	for _, o := range orders {
		if o.City.Name != "" {
			keyed++
		}
	}
	sum := 0
	seen := map[string]bool{}
	for _, g := range groups {
		sum += g.Total
		assert.False(t, seen[g.Key], "duplicate key %q", g.Key)
		seen[g.Key] = true
	}
	assert.Equal(t, keyed, sum)
}

func TestGroupBy_EmptyInput(t *testing.T) {
	assert.Empty(t, GroupBy(nil, ByCityName))
}

func TestGroupBy_ByIssueDate(t *testing.T) {
	day := func(d int) domain.ServiceOrder {
		o := orderInCity("A")
		o.IssuedAt = time.Date(2025, 3, d, 14, 30, 0, 0, time.UTC)
		return o
	}
	orders := []domain.ServiceOrder{day(2), day(1), day(2)}

	groups := GroupBy(orders, ByIssueDate)

	require.Len(t, groups, 2)
	assert.Equal(t, GroupCount{Key: "2025-03-02", Total: 2}, groups[0])
	assert.Equal(t, GroupCount{Key: "2025-03-01", Total: 1}, groups[1])
}

func TestCountDistinct(t *testing.T) {
	orders := []domain.ServiceOrder{
		orderInCity("A"), orderInCity("B"), orderInCity("A"), orderInCity(""),
	}

	assert.Equal(t, 2, CountDistinct(orders, ByCityName))
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		divisor int
		want    float64
	}{
		{"exact division", 60, 30, 2},
		{"rounds to one decimal", 100, 30, 3.3},
		{"rounds half up", 50, 4, 12.5},
		{"zero divisor yields zero", 42, 0, 0},
		{"negative divisor yields zero", 42, -7, 0},
		{"zero total", 0, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Average(tt.total, tt.divisor))
		})
	}
}
