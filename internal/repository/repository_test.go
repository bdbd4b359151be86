package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campoflow/fieldops-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&domain.City{},
		&domain.Client{},
		&domain.Technician{},
		&domain.ServiceOrder{},
		&domain.Contact{},
		&domain.Supplier{},
		&domain.Kit{},
		&domain.Component{},
		&domain.User{},
	)
	require.NoError(t, err)

	return db
}

func createTestCity(t *testing.T, db *gorm.DB, name, uf string) *domain.City {
	t.Helper()
	city := &domain.City{Name: name, UF: uf}
	require.NoError(t, db.Create(city).Error)
	return city
}

func createTestClient(t *testing.T, db *gorm.DB, name string, cityID uuid.UUID) *domain.Client {
	t.Helper()
	client := &domain.Client{
		FullName:     name,
		Address:      "Rua Principal",
		Neighborhood: "Centro",
		CityID:       cityID,
	}
	require.NoError(t, db.Omit("Contacts").Create(client).Error)
	return client
}

func createTestTechnician(t *testing.T, db *gorm.DB, name string) *domain.Technician {
	t.Helper()
	tech := &domain.Technician{Name: name, Active: true}
	require.NoError(t, db.Omit("Contacts").Create(tech).Error)
	return tech
}

func createTestOrder(t *testing.T, db *gorm.DB, number string, status domain.OrderStatus, clientID, techID, cityID uuid.UUID, issued time.Time) *domain.ServiceOrder {
	t.Helper()
	order := &domain.ServiceOrder{
		Number:      number,
		Status:      status,
		IssuedAt:    issued,
		DueAt:       issued.AddDate(0, 0, 7),
		ClientID:    clientID,
		FieldTechID: techID,
		CityID:      cityID,
	}
	require.NoError(t, db.Omit("Client", "FieldTech", "AppTech", "City", "Kits").Create(order).Error)
	return order
}
