package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campoflow/fieldops-api/internal/config"
	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/repository"
	"github.com/campoflow/fieldops-api/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
	jobsCfg      *config.JobsConfig
	logger       *zap.Logger
}

func NewOrderHandler(orderService *service.OrderService, jobsCfg *config.JobsConfig, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		jobsCfg:      jobsCfg,
		logger:       logger,
	}
}

// List godoc
// @Summary List service orders
// @Description Get paginated list of service orders with optional filters
// @Tags Ordens
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param status query string false "Filter by status" Enums(PENDENTE, INSTALADA, CANCELADA)
// @Param cidade_id query string false "Filter by city ID" format(uuid)
// @Param tecnico_id query string false "Filter by field technician ID" format(uuid)
// @Param cliente_id query string false "Filter by client ID" format(uuid)
// @Param data_inicio query string false "Issued-at lower bound (yyyy-mm-dd)"
// @Param data_fim query string false "Issued-at upper bound (yyyy-mm-dd)"
// @Success 200 {object} domain.PaginatedResponse{items=[]domain.ServiceOrderDTO}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /ordens [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	q := r.URL.Query()

	filters := repository.OrderFilters{
		Status: domain.OrderStatus(q.Get("status")),
	}
	if id, err := uuid.Parse(q.Get("cidade_id")); err == nil {
		filters.CityID = id
	}
	if id, err := uuid.Parse(q.Get("tecnico_id")); err == nil {
		filters.FieldTechID = id
	}
	if id, err := uuid.Parse(q.Get("cliente_id")); err == nil {
		filters.ClientID = id
	}
	if t, err := time.Parse("2006-01-02", q.Get("data_inicio")); err == nil {
		filters.IssuedFrom = &t
	}
	if t, err := time.Parse("2006-01-02", q.Get("data_fim")); err == nil {
		end := t.Add(24*time.Hour - time.Nanosecond)
		filters.IssuedTo = &end
	}

	orders, total, err := h.orderService.List(r.Context(), page, pageSize, filters)
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list service orders")
		return
	}

	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Items:    orders,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Metrics godoc
// @Summary Service order metrics
// @Description Per-status totals and completion rate across all orders
// @Tags Ordens
// @Produce json
// @Success 200 {object} domain.OrderMetricsDTO
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /ordens/metricas [get]
func (h *OrderHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.orderService.Metrics(r.Context())
	if err != nil {
		h.logger.Error("failed to compute order metrics", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to compute metrics")
		return
	}
	respondJSON(w, http.StatusOK, metrics)
}

// DueSoon godoc
// @Summary Orders near their due date
// @Description Not-yet-installed orders due within the lookahead window, soonest first
// @Tags Ordens
// @Produce json
// @Param dias query int false "Lookahead window in days" default(7)
// @Success 200 {array} domain.ServiceOrderDTO
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /ordens/proximas-vencimento [get]
func (h *OrderHandler) DueSoon(w http.ResponseWriter, r *http.Request) {
	days := h.jobsCfg.DueSoonDays
	if v, err := strconv.Atoi(r.URL.Query().Get("dias")); err == nil && v > 0 {
		days = v
	}

	orders, err := h.orderService.DueSoon(r.Context(), days)
	if err != nil {
		h.logger.Error("failed to list due orders", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list due orders")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// GetByID godoc
// @Summary Get service order by ID
// @Tags Ordens
// @Produce json
// @Param id path string true "Order ID" format(uuid)
// @Success 200 {object} domain.ServiceOrderDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /ordens/{id} [get]
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	order, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Service order not found")
			return
		}
		h.logger.Error("failed to get order", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get service order")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// Create godoc
// @Summary Create service order
// @Tags Ordens
// @Accept json
// @Produce json
// @Param request body domain.CreateServiceOrderRequest true "Order data"
// @Success 201 {object} domain.ServiceOrderDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Duplicate order number"
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /ordens [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateServiceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	order, err := h.orderService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			respondWithError(w, http.StatusConflict, "An order with this number already exists")
		case errors.Is(err, domain.ErrInvalidStatus):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to create order", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to create service order")
		}
		return
	}

	w.Header().Set("Location", "/api/v1/ordens/"+order.ID.String())
	respondJSON(w, http.StatusCreated, order)
}

// Update godoc
// @Summary Update service order
// @Tags Ordens
// @Accept json
// @Produce json
// @Param id path string true "Order ID" format(uuid)
// @Param request body domain.UpdateServiceOrderRequest true "Fields to update"
// @Success 200 {object} domain.ServiceOrderDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /ordens/{id} [put]
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var req domain.UpdateServiceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Service order not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to update order", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to update service order")
		}
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// Delete godoc
// @Summary Delete service order
// @Tags Ordens
// @Param id path string true "Order ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /ordens/{id} [delete]
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	if err := h.orderService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Service order not found")
			return
		}
		h.logger.Error("failed to delete order", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete service order")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
