package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campoflow/fieldops-api/internal/domain"
)

func makeOrder(number string, status domain.OrderStatus, clientName, address string, issued time.Time) domain.ServiceOrder {
	o := domain.ServiceOrder{
		Number:   number,
		Status:   status,
		IssuedAt: issued,
		DueAt:    issued.AddDate(0, 0, 7),
		ClientID: uuid.New(),
		CityID:   uuid.New(),
	}
	o.ID = uuid.New()
	o.Client = &domain.Client{FullName: clientName, Address: address}
	return o
}

func TestFilterOrders_NoCriteriaReturnsInputUnchanged(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	orders := []domain.ServiceOrder{
		makeOrder("1001", domain.OrderStatusPending, "Maria Souza", "Rua das Flores 10", base),
		makeOrder("1002", domain.OrderStatusInstalled, "João Lima", "Av Brasil 200", base.AddDate(0, 0, 1)),
	}

	got := FilterOrders(orders, OrderCriteria{})

	require.Len(t, got, 2)
	assert.Equal(t, orders[0].Number, got[0].Number)
	assert.Equal(t, orders[1].Number, got[1].Number)
}

func TestFilterOrders_FreeTextMatchesAnyField(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	orders := []domain.ServiceOrder{
		makeOrder("1001", domain.OrderStatusPending, "Maria Souza", "Rua das Flores 10", base),
		makeOrder("2045", domain.OrderStatusInstalled, "João Lima", "Av Brasil 200", base),
		makeOrder("3003", domain.OrderStatusPending, "Ana Pereira", "Travessa Souza 5", base),
	}

	tests := []struct {
		name        string
		query       string
		wantNumbers []string
	}{
		{"matches client name", "maria", []string{"1001"}},
		{"matches order number", "2045", []string{"2045"}},
		{"matches address", "brasil", []string{"2045"}},
		{"OR across fields", "souza", []string{"1001", "3003"}},
		{"no match", "inexistente", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterOrders(orders, OrderCriteria{Query: tt.query})
			var numbers []string
			for _, o := range got {
				numbers = append(numbers, o.Number)
			}
			assert.Equal(t, tt.wantNumbers, numbers)
		})
	}
}

func TestFilterOrders_CriteriaAreConjunctive(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	cityID := uuid.New()

	match := makeOrder("1001", domain.OrderStatusPending, "Maria Souza", "Rua A", base)
	match.CityID = cityID
	wrongStatus := makeOrder("1002", domain.OrderStatusInstalled, "Maria Souza", "Rua A", base)
	wrongStatus.CityID = cityID
	wrongCity := makeOrder("1003", domain.OrderStatusPending, "Maria Souza", "Rua A", base)

	got := FilterOrders([]domain.ServiceOrder{match, wrongStatus, wrongCity}, OrderCriteria{
		Status: domain.OrderStatusPending,
		CityID: cityID,
	})

	require.Len(t, got, 1)
	assert.Equal(t, "1001", got[0].Number)
}

func TestFilterOrders_DateRangeIsInclusive(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	orders := []domain.ServiceOrder{
		makeOrder("1001", domain.OrderStatusPending, "A", "", day(1)),
		makeOrder("1002", domain.OrderStatusPending, "B", "", day(5)),
		makeOrder("1003", domain.OrderStatusPending, "C", "", day(10)),
	}

	from, to := day(1), day(5)

	tests := []struct {
		name        string
		criteria    OrderCriteria
		wantNumbers []string
	}{
		{"both bounds", OrderCriteria{IssuedFrom: &from, IssuedTo: &to}, []string{"1001", "1002"}},
		{"lower bound only", OrderCriteria{IssuedFrom: &to}, []string{"1002", "1003"}},
		{"upper bound only", OrderCriteria{IssuedTo: &from}, []string{"1001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterOrders(orders, tt.criteria)
			var numbers []string
			for _, o := range got {
				numbers = append(numbers, o.Number)
			}
			assert.Equal(t, tt.wantNumbers, numbers)
		})
	}
}

func TestFilterOrders_Idempotent(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	orders := []domain.ServiceOrder{
		makeOrder("1001", domain.OrderStatusPending, "Maria Souza", "Rua A", base),
		makeOrder("1002", domain.OrderStatusInstalled, "João Lima", "Rua B", base),
		makeOrder("1003", domain.OrderStatusPending, "Ana Pereira", "Rua C", base),
	}
	criteria := OrderCriteria{Status: domain.OrderStatusPending}

	once := FilterOrders(orders, criteria)
	twice := FilterOrders(once, criteria)

	assert.Equal(t, once, twice)
}

func TestFilterOrders_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	orders := []domain.ServiceOrder{
		makeOrder("1001", domain.OrderStatusPending, "Maria", "Rua A", base),
		makeOrder("1002", domain.OrderStatusInstalled, "João", "Rua B", base),
	}
	numbersBefore := []string{orders[0].Number, orders[1].Number}

	_ = FilterOrders(orders, OrderCriteria{Status: domain.OrderStatusInstalled})

	assert.Equal(t, numbersBefore, []string{orders[0].Number, orders[1].Number})
	assert.Len(t, orders, 2)
}
