package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/campoflow/fieldops-api/internal/analytics"
	"github.com/campoflow/fieldops-api/internal/config"
	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/repository"
	"github.com/campoflow/fieldops-api/internal/service"
	"github.com/campoflow/fieldops-api/internal/storage"
)

func newReportService(t *testing.T, cfg *config.ReportsConfig) *service.ReportService {
	t.Helper()
	db := setupTestDB(t)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	svc := service.NewReportService(repository.NewOrderRepository(db), store, cfg, testLogger())

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
	issued := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	seedOrder(t, db, "OS-1", domain.OrderStatusInstalled, client.ID, tech.ID, city.ID, issued)

	return svc
}

func TestExportOrdersCSV(t *testing.T) {
	svc := newReportService(t, &config.ReportsConfig{ArchiveEnabled: false})

	file, err := svc.ExportOrdersCSV(context.Background(), analytics.OrderCriteria{})
	require.NoError(t, err)
	assert.Contains(t, file.Name, ".csv")

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one order")

	row := records[1]
	assert.Equal(t, "OS-1", row[0])
	assert.Equal(t, "INSTALADA", row[1])
	assert.Equal(t, "10/05/2026", row[2])
	assert.Equal(t, "Maria Souza", row[4])
	assert.Equal(t, "75 99999-0001", row[5], "principal contact in the contact column")
	assert.Equal(t, "Feira de Santana", row[8])
}

func TestExportOrdersCSVAnonymized(t *testing.T) {
	svc := newReportService(t, &config.ReportsConfig{Anonymize: true})

	file, err := svc.ExportOrdersCSV(context.Background(), analytics.OrderCriteria{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "Cliente 001", row[4])
	assert.Empty(t, row[5], "contacts stripped from anonymized exports")
	assert.Empty(t, row[6], "addresses stripped from anonymized exports")
	assert.Equal(t, "Cidade X", row[8])
	assert.Equal(t, "Técnico A", row[9])
}

func TestExportOrdersXLSX(t *testing.T) {
	svc := newReportService(t, &config.ReportsConfig{})

	file, err := svc.ExportOrdersXLSX(context.Background(), analytics.OrderCriteria{})
	require.NoError(t, err)
	assert.Contains(t, file.Name, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Ordens de Serviço")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Número OS", rows[0][0])
	assert.Equal(t, "OS-1", rows[1][0])
}
