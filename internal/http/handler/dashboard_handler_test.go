package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/config"
	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/http/handler"
	"github.com/campoflow/fieldops-api/internal/repository"
	"github.com/campoflow/fieldops-api/internal/service"
)

func newDashboardHandler(t *testing.T, db *gorm.DB) *handler.DashboardHandler {
	t.Helper()
	orderRepo := repository.NewOrderRepository(db)
	dashboardService := service.NewDashboardService(
		orderRepo,
		repository.NewTechnicianRepository(db),
		&config.DashboardConfig{AverageWindowDays: 30},
		testLogger(),
	)
	mapService := service.NewMapService(
		orderRepo,
		repository.NewClientRepository(db),
		repository.NewCityRepository(db),
		testLogger(),
	)
	return handler.NewDashboardHandler(dashboardService, mapService, testLogger())
}

func seedDashboardData(t *testing.T, db *gorm.DB) {
	t.Helper()
	city := seedCity(t, db, "Feira de Santana", "BA", floatPtr(-12.2664), floatPtr(-38.9663))
	client := seedClient(t, db, "Maria Souza", city.ID)
	tech := seedTechnician(t, db, "Carlos Lima")
	issued := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	seedOrder(t, db, "OS-1", domain.OrderStatusInstalled, client.ID, tech.ID, city.ID, issued)
	seedOrder(t, db, "OS-2", domain.OrderStatusPending, client.ID, tech.ID, city.ID, issued.AddDate(0, 0, 1))
}

func TestDashboardHandler_Overview(t *testing.T) {
	db := setupTestDB(t)
	h := newDashboardHandler(t, db)
	seedDashboardData(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()

	h.Overview(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var dto domain.DashboardDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.Equal(t, 2, dto.TotalOrders)
	assert.Equal(t, 1, dto.CitiesServed)
	assert.Equal(t, 1, dto.ActiveTechnicians)
	require.Len(t, dto.ByCity, 1)
	assert.Equal(t, "Feira de Santana", dto.ByCity[0].Key)
	assert.Equal(t, 2, dto.ByCity[0].Total)
}

func TestDashboardHandler_Search(t *testing.T) {
	db := setupTestDB(t)
	h := newDashboardHandler(t, db)
	seedDashboardData(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/busca?busca=maria", nil)
	w := httptest.NewRecorder()

	h.Search(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var results []domain.ServiceOrderDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Maria Souza", results[0].ClientName)
}

func TestDashboardHandler_SearchRejectsShortTerm(t *testing.T) {
	db := setupTestDB(t)
	h := newDashboardHandler(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/busca?busca=ab", nil)
	w := httptest.NewRecorder()

	h.Search(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardHandler_Map(t *testing.T) {
	db := setupTestDB(t)
	h := newDashboardHandler(t, db)
	seedDashboardData(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/mapa", nil)
	w := httptest.NewRecorder()

	h.Map(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var markers []domain.MapMarkerDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &markers))
	require.Len(t, markers, 2, "both orders resolve through the city coordinates")
	assert.Equal(t, -12.2664, markers[0].Latitude)
	assert.NotEmpty(t, markers[0].Color)
}

func TestDashboardHandler_MapSkipsUnresolvable(t *testing.T) {
	db := setupTestDB(t)
	h := newDashboardHandler(t, db)

	city := seedCity(t, db, "Sem Coordenadas", "BA", nil, nil)
	client := seedClient(t, db, "Pedro Santos", city.ID)
	tech := seedTechnician(t, db, "Bruno Dias")
	seedOrder(t, db, "OS-9", domain.OrderStatusPending, client.ID, tech.ID, city.ID,
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/mapa", nil)
	w := httptest.NewRecorder()

	h.Map(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var markers []domain.MapMarkerDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &markers))
	assert.Empty(t, markers)
}
