package handler

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/campoflow/fieldops-api/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
	importService *service.ImportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, importService *service.ImportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		importService: importService,
		logger:        logger,
	}
}

// ExportCSV godoc
// @Summary Export orders as CSV
// @Description Download the orders matching the optional filters as a CSV file
// @Tags Relatorios
// @Produce text/csv
// @Param busca query string false "Free text over client name, order number or address"
// @Param status query string false "Filter by status" Enums(PENDENTE, INSTALADA, CANCELADA)
// @Param cidade_id query string false "Filter by city ID" format(uuid)
// @Param tecnico_id query string false "Filter by field technician ID" format(uuid)
// @Param data_inicio query string false "Issued-at lower bound (yyyy-mm-dd)"
// @Param data_fim query string false "Issued-at upper bound (yyyy-mm-dd)"
// @Success 200 {file} file
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /relatorios/ordens.csv [get]
func (h *ReportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.ExportOrdersCSV(r.Context(), parseCriteria(r))
	if err != nil {
		h.logger.Error("failed to export csv report", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}
	serveFile(w, file)
}

// ExportXLSX godoc
// @Summary Export orders as spreadsheet
// @Description Download the orders matching the optional filters as an XLSX file
// @Tags Relatorios
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param busca query string false "Free text over client name, order number or address"
// @Param status query string false "Filter by status" Enums(PENDENTE, INSTALADA, CANCELADA)
// @Param cidade_id query string false "Filter by city ID" format(uuid)
// @Param tecnico_id query string false "Filter by field technician ID" format(uuid)
// @Param data_inicio query string false "Issued-at lower bound (yyyy-mm-dd)"
// @Param data_fim query string false "Issued-at upper bound (yyyy-mm-dd)"
// @Success 200 {file} file
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /relatorios/ordens.xlsx [get]
func (h *ReportHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.ExportOrdersXLSX(r.Context(), parseCriteria(r))
	if err != nil {
		h.logger.Error("failed to export xlsx report", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}
	serveFile(w, file)
}

// Import godoc
// @Summary Import orders from the legacy spreadsheet
// @Description Upload the legacy control spreadsheet (CONSOLIDADO sheet). Existing order numbers are skipped.
// @Tags Relatorios
// @Accept multipart/form-data
// @Produce json
// @Param arquivo formData file true "XLSX file"
// @Success 200 {object} service.ImportResult
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /relatorios/importar [post]
func (h *ReportHandler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	upload, _, err := r.FormFile("arquivo")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing 'arquivo' file field")
		return
	}
	defer upload.Close()

	result, err := h.importService.ImportSpreadsheet(r.Context(), upload)
	if err != nil {
		h.logger.Error("failed to import spreadsheet", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to import spreadsheet")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func serveFile(w http.ResponseWriter, file *service.ReportFile) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}
