package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/campoflow/fieldops-api/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	mapService       *service.MapService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, mapService *service.MapService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		mapService:       mapService,
		logger:           logger,
	}
}

// Overview godoc
// @Summary Dashboard overview
// @Description Cards and chart buckets over the orders matching the optional filters
// @Tags Dashboard
// @Produce json
// @Param busca query string false "Free text over client name, order number or address"
// @Param status query string false "Filter by status" Enums(PENDENTE, INSTALADA, CANCELADA)
// @Param cidade_id query string false "Filter by city ID" format(uuid)
// @Param tecnico_id query string false "Filter by field technician ID" format(uuid)
// @Param data_inicio query string false "Issued-at lower bound (yyyy-mm-dd)"
// @Param data_fim query string false "Issued-at upper bound (yyyy-mm-dd)"
// @Success 200 {object} domain.DashboardDTO
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	dto, err := h.dashboardService.Overview(r.Context(), parseCriteria(r))
	if err != nil {
		h.logger.Error("failed to build dashboard", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// Search godoc
// @Summary Search service orders
// @Description Free-text and structured search across the full order snapshot
// @Tags Dashboard
// @Produce json
// @Param busca query string false "Free text over client name, order number or address"
// @Param status query string false "Filter by status" Enums(PENDENTE, INSTALADA, CANCELADA)
// @Param cidade_id query string false "Filter by city ID" format(uuid)
// @Param tecnico_id query string false "Filter by field technician ID" format(uuid)
// @Param data_inicio query string false "Issued-at lower bound (yyyy-mm-dd)"
// @Param data_fim query string false "Issued-at upper bound (yyyy-mm-dd)"
// @Success 200 {array} domain.ServiceOrderDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/busca [get]
func (h *DashboardHandler) Search(w http.ResponseWriter, r *http.Request) {
	criteria := parseCriteria(r)
	if criteria.Query != "" && len([]rune(criteria.Query)) < 3 {
		respondWithError(w, http.StatusBadRequest, "Search term must have at least 3 characters")
		return
	}

	results, err := h.dashboardService.Search(r.Context(), criteria)
	if err != nil {
		h.logger.Error("failed to search orders", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to search orders")
		return
	}
	respondJSON(w, http.StatusOK, results)
}

// Map godoc
// @Summary Map markers
// @Description Renderable markers for the orders matching the optional filters. Orders without resolvable coordinates are omitted.
// @Tags Dashboard
// @Produce json
// @Param busca query string false "Free text over client name, order number or address"
// @Param status query string false "Filter by status" Enums(PENDENTE, INSTALADA, CANCELADA)
// @Param cidade_id query string false "Filter by city ID" format(uuid)
// @Param tecnico_id query string false "Filter by field technician ID" format(uuid)
// @Success 200 {array} domain.MapMarkerDTO
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /mapa [get]
func (h *DashboardHandler) Map(w http.ResponseWriter, r *http.Request) {
	markers, err := h.mapService.Markers(r.Context(), parseCriteria(r))
	if err != nil {
		h.logger.Error("failed to build map markers", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to build map markers")
		return
	}
	respondJSON(w, http.StatusOK, markers)
}
