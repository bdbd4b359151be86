package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/service"
)

type KitHandler struct {
	kitService *service.KitService
	logger     *zap.Logger
}

func NewKitHandler(kitService *service.KitService, logger *zap.Logger) *KitHandler {
	return &KitHandler{
		kitService: kitService,
		logger:     logger,
	}
}

// List godoc
// @Summary List kits
// @Tags Kits
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param status query string false "Filter by status" Enums(DISPONIVEL, ALOCADO, INSTALADO)
// @Param fornecedor_id query string false "Filter by supplier ID" format(uuid)
// @Success 200 {object} domain.PaginatedResponse{items=[]domain.KitDTO}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /kits [get]
func (h *KitHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	supplierID := uuid.Nil
	if id, err := uuid.Parse(r.URL.Query().Get("fornecedor_id")); err == nil {
		supplierID = id
	}

	kits, total, err := h.kitService.List(r.Context(), page, pageSize,
		domain.KitStatus(r.URL.Query().Get("status")), supplierID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to list kits", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list kits")
		return
	}

	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Items:    kits,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetByID godoc
// @Summary Get kit by ID
// @Tags Kits
// @Produce json
// @Param id path string true "Kit ID" format(uuid)
// @Success 200 {object} domain.KitDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /kits/{id} [get]
func (h *KitHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid kit ID format")
		return
	}

	kit, err := h.kitService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Kit not found")
			return
		}
		h.logger.Error("failed to get kit", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get kit")
		return
	}
	respondJSON(w, http.StatusOK, kit)
}

// Create godoc
// @Summary Create kit
// @Tags Kits
// @Accept json
// @Produce json
// @Param request body domain.CreateKitRequest true "Kit data with components"
// @Success 201 {object} domain.KitDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Duplicate serial number"
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /kits [post]
func (h *KitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateKitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	kit, err := h.kitService.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			respondWithError(w, http.StatusConflict, "A kit with this serial number already exists")
		case errors.Is(err, domain.ErrInvalidStatus):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to create kit", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to create kit")
		}
		return
	}

	w.Header().Set("Location", "/api/v1/kits/"+kit.ID.String())
	respondJSON(w, http.StatusCreated, kit)
}

// Allocate godoc
// @Summary Allocate kit to a technician
// @Description Hand an available kit to a technician, optionally tied to a service order
// @Tags Kits
// @Accept json
// @Produce json
// @Param id path string true "Kit ID" format(uuid)
// @Param request body domain.AllocateKitRequest true "Allocation target"
// @Success 200 {object} domain.KitDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Kit not available"
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /kits/{id}/alocar [post]
func (h *KitHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid kit ID format")
		return
	}

	var req domain.AllocateKitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	kit, err := h.kitService.Allocate(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Kit not found")
		case errors.Is(err, domain.ErrKitUnavailable):
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("failed to allocate kit", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to allocate kit")
		}
		return
	}
	respondJSON(w, http.StatusOK, kit)
}

// MarkInstalled godoc
// @Summary Mark kit as installed
// @Tags Kits
// @Produce json
// @Param id path string true "Kit ID" format(uuid)
// @Success 200 {object} domain.KitDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Kit not allocated"
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /kits/{id}/instalar [post]
func (h *KitHandler) MarkInstalled(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid kit ID format")
		return
	}

	kit, err := h.kitService.MarkInstalled(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Kit not found")
		case errors.Is(err, domain.ErrKitUnavailable):
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("failed to mark kit installed", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to mark kit installed")
		}
		return
	}
	respondJSON(w, http.StatusOK, kit)
}

// Release godoc
// @Summary Return kit to the available pool
// @Tags Kits
// @Produce json
// @Param id path string true "Kit ID" format(uuid)
// @Success 200 {object} domain.KitDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Kit not allocated"
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /kits/{id}/devolver [post]
func (h *KitHandler) Release(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid kit ID format")
		return
	}

	kit, err := h.kitService.Release(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Kit not found")
		case errors.Is(err, domain.ErrKitUnavailable):
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("failed to release kit", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to release kit")
		}
		return
	}
	respondJSON(w, http.StatusOK, kit)
}

// Delete godoc
// @Summary Delete kit
// @Tags Kits
// @Param id path string true "Kit ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /kits/{id} [delete]
func (h *KitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid kit ID format")
		return
	}

	if err := h.kitService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Kit not found")
			return
		}
		h.logger.Error("failed to delete kit", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete kit")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
