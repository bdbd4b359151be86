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

type CityHandler struct {
	cityService *service.CityService
	logger      *zap.Logger
}

func NewCityHandler(cityService *service.CityService, logger *zap.Logger) *CityHandler {
	return &CityHandler{
		cityService: cityService,
		logger:      logger,
	}
}

// List godoc
// @Summary List cities
// @Tags Cidades
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param busca query string false "Search by name"
// @Param uf query string false "Filter by state code"
// @Param regiao query string false "Filter by region"
// @Success 200 {object} domain.PaginatedResponse{items=[]domain.CityDTO}
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /cidades [get]
func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	cities, total, err := h.cityService.List(r.Context(), page, pageSize,
		r.URL.Query().Get("busca"), r.URL.Query().Get("uf"), r.URL.Query().Get("regiao"))
	if err != nil {
		h.logger.Error("failed to list cities", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list cities")
		return
	}

	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Items:    cities,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetByID godoc
// @Summary Get city by ID
// @Tags Cidades
// @Produce json
// @Param id path string true "City ID" format(uuid)
// @Success 200 {object} domain.CityDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /cidades/{id} [get]
func (h *CityHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid city ID format")
		return
	}

	city, err := h.cityService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "City not found")
			return
		}
		h.logger.Error("failed to get city", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get city")
		return
	}
	respondJSON(w, http.StatusOK, city)
}

// Create godoc
// @Summary Create city
// @Description Create a city. Name plus state code must be unique.
// @Tags Cidades
// @Accept json
// @Produce json
// @Param request body domain.CreateCityRequest true "City data"
// @Success 201 {object} domain.CityDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "City already registered"
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /cidades [post]
func (h *CityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	city, err := h.cityService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			respondWithError(w, http.StatusConflict, "This city is already registered")
			return
		}
		h.logger.Error("failed to create city", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create city")
		return
	}

	w.Header().Set("Location", "/api/v1/cidades/"+city.ID.String())
	respondJSON(w, http.StatusCreated, city)
}

// Update godoc
// @Summary Update city
// @Tags Cidades
// @Accept json
// @Produce json
// @Param id path string true "City ID" format(uuid)
// @Param request body domain.CreateCityRequest true "City data"
// @Success 200 {object} domain.CityDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /cidades/{id} [put]
func (h *CityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid city ID format")
		return
	}

	var req domain.CreateCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	city, err := h.cityService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "City not found")
			return
		}
		h.logger.Error("failed to update city", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update city")
		return
	}
	respondJSON(w, http.StatusOK, city)
}

// Delete godoc
// @Summary Delete city
// @Tags Cidades
// @Param id path string true "City ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /cidades/{id} [delete]
func (h *CityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid city ID format")
		return
	}

	if err := h.cityService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "City not found")
			return
		}
		h.logger.Error("failed to delete city", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete city")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
