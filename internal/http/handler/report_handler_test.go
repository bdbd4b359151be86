package handler_test

import (
	"bytes"
	"encoding/csv"
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
	"github.com/campoflow/fieldops-api/internal/storage"
)

func newReportHandler(t *testing.T, db *gorm.DB) *handler.ReportHandler {
	t.Helper()
	orderRepo := repository.NewOrderRepository(db)
	clientRepo := repository.NewClientRepository(db)
	techRepo := repository.NewTechnicianRepository(db)
	cityRepo := repository.NewCityRepository(db)
	contactRepo := repository.NewContactRepository(db)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	reportService := service.NewReportService(orderRepo, store, &config.ReportsConfig{}, testLogger())
	importService := service.NewImportService(orderRepo, clientRepo, techRepo, cityRepo, contactRepo, testLogger())
	return handler.NewReportHandler(reportService, importService, testLogger())
}

func TestReportHandler_ExportCSV(t *testing.T) {
	db := setupTestDB(t)
	h := newReportHandler(t, db)

	city := seedCity(t, db, "Feira de Santana", "BA", nil, nil)
	client := seedClient(t, db, "Maria Souza", city.ID)
	require.NoError(t, db.Create(&domain.Contact{
		OwnerType: domain.ContactOwnerClient,
		OwnerID:   client.ID,
		Kind:      domain.ContactKindMobile,
		Value:     "75 99999-0001",
		Principal: true,
	}).Error)
	tech := seedTechnician(t, db, "Carlos Lima")
	seedOrder(t, db, "OS-1", domain.OrderStatusInstalled, client.ID, tech.ID, city.ID,
		time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/relatorios/ordens.csv", nil)
	w := httptest.NewRecorder()

	h.ExportCSV(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	records, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one order")
	assert.Equal(t, "OS-1", records[1][0])
	assert.Equal(t, "75 99999-0001", records[1][5], "principal contact in the contact column")
}

func TestReportHandler_ExportCSVFiltered(t *testing.T) {
	db := setupTestDB(t)
	h := newReportHandler(t, db)

	city := seedCity(t, db, "Salvador", "BA", nil, nil)
	client := seedClient(t, db, "Rita Nunes", city.ID)
	tech := seedTechnician(t, db, "Bruno Dias")
	issued := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	seedOrder(t, db, "OS-1", domain.OrderStatusInstalled, client.ID, tech.ID, city.ID, issued)
	seedOrder(t, db, "OS-2", domain.OrderStatusCancelled, client.ID, tech.ID, city.ID, issued)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/relatorios/ordens.csv?status=CANCELADA", nil)
	w := httptest.NewRecorder()

	h.ExportCSV(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	records, err := csv.NewReader(bytes.NewReader(w.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "OS-2", records[1][0])
}

func TestReportHandler_ImportRejectsMissingFile(t *testing.T) {
	db := setupTestDB(t)
	h := newReportHandler(t, db)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/relatorios/importar", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := httptest.NewRecorder()

	h.Import(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
