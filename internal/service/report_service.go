package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/campoflow/fieldops-api/internal/analytics"
	"github.com/campoflow/fieldops-api/internal/anonymize"
	"github.com/campoflow/fieldops-api/internal/config"
	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/repository"
	"github.com/campoflow/fieldops-api/internal/storage"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var reportHeaders = []string{
	"Número OS", "Status", "Data Criação", "Data Vencimento",
	"Cliente", "Contato", "Endereço", "Bairro", "Cidade",
	"Técnico Campo", "Fez na Rua", "Baixou no App",
}

// ReportFile is a generated export ready to stream to the caller.
type ReportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ReportService generates CSV and XLSX exports of service orders and
// archives a copy of each one.
type ReportService struct {
	orderRepo *repository.OrderRepository
	store     storage.Storage
	cfg       *config.ReportsConfig
	logger    *zap.Logger
}

func NewReportService(orderRepo *repository.OrderRepository, store storage.Storage, cfg *config.ReportsConfig, logger *zap.Logger) *ReportService {
	return &ReportService{
		orderRepo: orderRepo,
		store:     store,
		cfg:       cfg,
		logger:    logger,
	}
}

// ExportOrdersCSV renders the matching orders as a CSV file.
func (s *ReportService) ExportOrdersCSV(ctx context.Context, criteria analytics.OrderCriteria) (*ReportFile, error) {
	rows, err := s.buildRows(ctx, criteria)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(reportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv rows: %w", err)
	}

	file := &ReportFile{
		Name:        fmt.Sprintf("ordens-%s.csv", time.Now().Format("20060102-150405")),
		ContentType: csvContentType,
		Data:        buf.Bytes(),
	}
	s.archive(ctx, file)
	return file, nil
}

// ExportOrdersXLSX renders the matching orders as a spreadsheet with a
// styled header row.
func (s *ReportService) ExportOrdersXLSX(ctx context.Context, criteria analytics.OrderCriteria) (*ReportFile, error) {
	rows, err := s.buildRows(ctx, criteria)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Ordens de Serviço"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, name := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(reportHeaders), 1)
	f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)

	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	file := &ReportFile{
		Name:        fmt.Sprintf("ordens-%s.xlsx", time.Now().Format("20060102-150405")),
		ContentType: xlsxContentType,
		Data:        buf.Bytes(),
	}
	s.archive(ctx, file)
	return file, nil
}

func (s *ReportService) buildRows(ctx context.Context, criteria analytics.OrderCriteria) ([][]string, error) {
	orders, err := s.orderRepo.ListAll(ctx, repository.OrderFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	orders = analytics.FilterOrders(orders, criteria)

	var session *anonymize.Session
	if s.cfg.Anonymize {
		session = anonymize.NewSession()
	}

	rows := make([][]string, 0, len(orders))
	for i := range orders {
		rows = append(rows, s.buildRow(&orders[i], session))
	}
	return rows, nil
}

func (s *ReportService) buildRow(o *domain.ServiceOrder, session *anonymize.Session) []string {
	clientName, address, neighborhood, contact := "", "", "", "Sem contato"
	if o.Client != nil {
		clientName = o.Client.FullName
		address = o.Client.Address
		neighborhood = o.Client.Neighborhood
		contact = principalContact(o.Client.Contacts)
	}
	cityName := ""
	if o.City != nil {
		cityName = o.City.Name
	}
	techName := ""
	if o.FieldTech != nil {
		techName = o.FieldTech.Name
	}

	if session != nil {
		clientName = session.Client(clientName)
		cityName = session.City(cityName)
		techName = session.Technician(techName)
		address = ""
		contact = ""
	}

	return []string{
		o.Number,
		string(o.Status),
		o.IssuedAt.Format("02/01/2006"),
		o.DueAt.Format("02/01/2006"),
		clientName,
		contact,
		address,
		neighborhood,
		cityName,
		techName,
		boolLabel(o.DoneOnStreet),
		boolLabel(o.ClosedViaApp),
	}
}

// principalContact picks the principal contact value, falling back to
// the first contact, then to a placeholder.
func principalContact(contacts []domain.Contact) string {
	for _, c := range contacts {
		if c.Principal {
			return c.Value
		}
	}
	if len(contacts) > 0 {
		return contacts[0].Value
	}
	return "Sem contato"
}

func boolLabel(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}

// archive stores a copy of the export. Archive failures are logged and
// never block the download.
func (s *ReportService) archive(ctx context.Context, file *ReportFile) {
	if !s.cfg.ArchiveEnabled || s.store == nil {
		return
	}

	path := fmt.Sprintf("%s/%s/%s", s.cfg.ArchivePrefix, time.Now().Format("2006/01"), file.Name)
	if _, err := s.store.Save(ctx, path, file.ContentType, bytes.NewReader(file.Data)); err != nil {
		s.logger.Warn("failed to archive report",
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("report archived",
		zap.String("path", path),
		zap.Int("size_bytes", len(file.Data)),
	)
}
