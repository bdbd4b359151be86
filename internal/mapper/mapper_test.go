package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/mapper"
)

func TestToServiceOrderDTO(t *testing.T) {
	issued := time.Date(2026, 5, 10, 14, 30, 0, 0, time.UTC)
	order := &domain.ServiceOrder{
		Number:    "OS-1001",
		Status:    domain.OrderStatusInstalled,
		IssuedAt:  issued,
		DueAt:     issued.AddDate(0, 0, 7),
		Client:    &domain.Client{FullName: "Maria Souza"},
		FieldTech: &domain.Technician{Name: "Carlos Lima"},
		City:      &domain.City{Name: "Feira de Santana"},
	}
	order.ID = uuid.New()

	dto := mapper.ToServiceOrderDTO(order)

	assert.Equal(t, "OS-1001", dto.Number)
	assert.Equal(t, "2026-05-10", dto.IssuedAt)
	assert.Equal(t, "2026-05-17", dto.DueAt)
	assert.Equal(t, "Maria Souza", dto.ClientName)
	assert.Equal(t, "Carlos Lima", dto.FieldTech)
	assert.Equal(t, "Feira de Santana", dto.CityName)
	assert.Empty(t, dto.InstalledAt)
	assert.Empty(t, dto.AppTech)
}

func TestToServiceOrderDTOWithoutRelations(t *testing.T) {
	order := &domain.ServiceOrder{
		Number:   "OS-2002",
		Status:   domain.OrderStatusPending,
		IssuedAt: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		DueAt:    time.Date(2026, 5, 17, 0, 0, 0, 0, time.UTC),
	}
	order.ID = uuid.New()

	dto := mapper.ToServiceOrderDTO(order)

	assert.Equal(t, "OS-2002", dto.Number)
	assert.Empty(t, dto.ClientName)
	assert.Empty(t, dto.FieldTech)
	assert.Empty(t, dto.CityName)
}

func TestToClientDTOWithoutCity(t *testing.T) {
	client := &domain.Client{
		FullName: "João Pereira",
		Address:  "Rua A, 10",
		CityID:   uuid.New(),
	}
	client.ID = uuid.New()

	dto := mapper.ToClientDTO(client)

	assert.Equal(t, "João Pereira", dto.FullName)
	assert.Empty(t, dto.CityName)
	assert.Empty(t, dto.Contacts)
}

func TestToClientDTOWithCity(t *testing.T) {
	client := &domain.Client{
		FullName: "Rita Nunes",
		CityID:   uuid.New(),
		City:     &domain.City{Name: "Salvador"},
		Contacts: []domain.Contact{
			{Kind: domain.ContactKindMobile, Value: "75 99999-0001", Principal: true},
			{Kind: domain.ContactKindEmail, Value: "rita@example.com"},
		},
	}
	client.ID = uuid.New()

	dto := mapper.ToClientDTO(client)

	assert.Equal(t, "Salvador", dto.CityName)
	assert.Len(t, dto.Contacts, 2)
	assert.Equal(t, "75 99999-0001", dto.Contacts[0].Value)
	assert.True(t, dto.Contacts[0].Principal)
}

func TestToKitDTOWithoutSupplier(t *testing.T) {
	kit := &domain.Kit{
		SerialNumber: "KIT-001",
		Status:       domain.KitStatusAvailable,
		SupplierID:   uuid.New(),
	}
	kit.ID = uuid.New()

	dto := mapper.ToKitDTO(kit)

	assert.Equal(t, "KIT-001", dto.SerialNumber)
	assert.Empty(t, dto.SupplierName)
	assert.Empty(t, dto.Components)
}
