package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/repository"
)

// Legacy spreadsheet column order on the CONSOLIDADO sheet.
const (
	colStatus = iota
	colDate
	colNumber
	colFieldTech
	colDoneOnStreet
	colClosedViaApp
	colAppTech
	colClientName
	colMobile
	colAddress
	colNeighborhood
	colCity
	colUF
	colLandmark
	colCPF
	colCEP
)

const legacySheet = "CONSOLIDADO"

// ImportResult summarizes one spreadsheet import run.
type ImportResult struct {
	Imported int      `json:"importadas"`
	Skipped  int      `json:"ignoradas"`
	Errors   []string `json:"erros,omitempty"`
}

// ImportService loads service orders from the legacy control
// spreadsheet, creating cities, technicians and clients on the fly.
// Rows whose order number already exists are skipped, so re-importing
// the same file is harmless.
type ImportService struct {
	orderRepo   *repository.OrderRepository
	clientRepo  *repository.ClientRepository
	techRepo    *repository.TechnicianRepository
	cityRepo    *repository.CityRepository
	contactRepo *repository.ContactRepository
	logger      *zap.Logger
}

func NewImportService(
	orderRepo *repository.OrderRepository,
	clientRepo *repository.ClientRepository,
	techRepo *repository.TechnicianRepository,
	cityRepo *repository.CityRepository,
	contactRepo *repository.ContactRepository,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		techRepo:    techRepo,
		cityRepo:    cityRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// ImportSpreadsheet reads the CONSOLIDADO sheet and persists each row.
// Row-level problems are collected, not fatal: one bad row never aborts
// the rest of the file.
func (s *ImportService) ImportSpreadsheet(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(legacySheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", legacySheet, err)
	}

	result := &ImportResult{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if err := s.importRow(ctx, row); err != nil {
			if errors.Is(err, errRowSkipped) {
				result.Skipped++
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("linha %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	s.logger.Info("spreadsheet import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

var errRowSkipped = errors.New("row skipped")

func (s *ImportService) importRow(ctx context.Context, row []string) error {
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	number := cell(colNumber)
	if number == "" {
		return errRowSkipped
	}
	if _, err := s.orderRepo.GetByNumber(ctx, number); err == nil {
		return errRowSkipped
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check order number: %w", err)
	}

	issuedAt, err := parseLegacyDate(cell(colDate))
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", cell(colDate), err)
	}

	city, err := s.ensureCity(ctx, cell(colCity), cell(colUF))
	if err != nil {
		return err
	}
	tech, err := s.ensureTechnician(ctx, cell(colFieldTech))
	if err != nil {
		return err
	}
	var appTechID *uuid.UUID
	if name := cell(colAppTech); name != "" {
		appTech, err := s.ensureTechnician(ctx, name)
		if err != nil {
			return err
		}
		appTechID = &appTech.ID
	}

	client, err := s.ensureClient(ctx, city.ID, cell)
	if err != nil {
		return err
	}

	order := &domain.ServiceOrder{
		Number:       number,
		Status:       parseLegacyStatus(cell(colStatus)),
		IssuedAt:     issuedAt,
		DueAt:        issuedAt,
		ClientID:     client.ID,
		FieldTechID:  tech.ID,
		AppTechID:    appTechID,
		CityID:       city.ID,
		DoneOnStreet: parseLegacyBool(cell(colDoneOnStreet)),
		ClosedViaApp: parseLegacyBool(cell(colClosedViaApp)),
	}
	if order.Status == domain.OrderStatusInstalled {
		order.InstalledAt = &issuedAt
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (s *ImportService) ensureCity(ctx context.Context, name, uf string) (*domain.City, error) {
	if name == "" {
		return nil, fmt.Errorf("missing city")
	}
	uf = strings.ToUpper(uf)
	if uf == "" {
		uf = "BA"
	}

	city, err := s.cityRepo.GetByNameAndUF(ctx, name, uf)
	if err == nil {
		return city, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up city: %w", err)
	}

	city = &domain.City{Name: name, UF: uf}
	if err := s.cityRepo.Create(ctx, city); err != nil {
		return nil, fmt.Errorf("failed to create city: %w", err)
	}
	return city, nil
}

func (s *ImportService) ensureTechnician(ctx context.Context, name string) (*domain.Technician, error) {
	if name == "" {
		return nil, fmt.Errorf("missing technician")
	}

	tech, err := s.techRepo.GetByName(ctx, name)
	if err == nil {
		return tech, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up technician: %w", err)
	}

	tech = &domain.Technician{Name: name, Active: true}
	if err := s.techRepo.Create(ctx, tech); err != nil {
		return nil, fmt.Errorf("failed to create technician: %w", err)
	}
	return tech, nil
}

func (s *ImportService) ensureClient(ctx context.Context, cityID uuid.UUID, cell func(int) string) (*domain.Client, error) {
	name := cell(colClientName)
	if name == "" {
		return nil, fmt.Errorf("missing client name")
	}

	if cpf := cell(colCPF); cpf != "" {
		client, err := s.clientRepo.GetByCPF(ctx, cpf)
		if err == nil {
			return client, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up client: %w", err)
		}
	}

	client := &domain.Client{
		FullName:     name,
		CPF:          cell(colCPF),
		Address:      cell(colAddress),
		Neighborhood: cell(colNeighborhood),
		CityID:       cityID,
		CEP:          cell(colCEP),
		Landmark:     cell(colLandmark),
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if mobile := cell(colMobile); mobile != "" {
		contact := &domain.Contact{
			OwnerType: domain.ContactOwnerClient,
			OwnerID:   client.ID,
			Kind:      domain.ContactKindMobile,
			Value:     mobile,
			Principal: true,
		}
		if err := s.contactRepo.Create(ctx, contact); err != nil {
			return nil, fmt.Errorf("failed to create contact: %w", err)
		}
	}
	return client, nil
}

var legacyDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02/01/06",
}

func parseLegacyDate(value string) (time.Time, error) {
	for _, layout := range legacyDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}

func parseLegacyStatus(value string) domain.OrderStatus {
	v := strings.ToUpper(strings.TrimSpace(value))
	switch {
	case strings.HasPrefix(v, "INSTAL"):
		return domain.OrderStatusInstalled
	case strings.HasPrefix(v, "CANCEL"):
		return domain.OrderStatusCancelled
	default:
		return domain.OrderStatusPending
	}
}

func parseLegacyBool(value string) bool {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "SIM", "S", "X", "TRUE", "1":
		return true
	}
	return false
}
