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

type TechnicianHandler struct {
	techService    *service.TechnicianService
	contactService *service.ContactService
	kitService     *service.KitService
	logger         *zap.Logger
}

func NewTechnicianHandler(techService *service.TechnicianService, contactService *service.ContactService, kitService *service.KitService, logger *zap.Logger) *TechnicianHandler {
	return &TechnicianHandler{
		techService:    techService,
		contactService: contactService,
		kitService:     kitService,
		logger:         logger,
	}
}

// List godoc
// @Summary List technicians
// @Tags Tecnicos
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param busca query string false "Search by name"
// @Param ativos query bool false "Only active technicians"
// @Success 200 {object} domain.PaginatedResponse{items=[]domain.TechnicianDTO}
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /tecnicos [get]
func (h *TechnicianHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	activeOnly := r.URL.Query().Get("ativos") == "true"

	techs, total, err := h.techService.List(r.Context(), page, pageSize, r.URL.Query().Get("busca"), activeOnly)
	if err != nil {
		h.logger.Error("failed to list technicians", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list technicians")
		return
	}

	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Items:    techs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetByID godoc
// @Summary Get technician by ID
// @Tags Tecnicos
// @Produce json
// @Param id path string true "Technician ID" format(uuid)
// @Success 200 {object} domain.TechnicianDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /tecnicos/{id} [get]
func (h *TechnicianHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid technician ID format")
		return
	}

	tech, err := h.techService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Technician not found")
			return
		}
		h.logger.Error("failed to get technician", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get technician")
		return
	}
	respondJSON(w, http.StatusOK, tech)
}

// Create godoc
// @Summary Create technician
// @Tags Tecnicos
// @Accept json
// @Produce json
// @Param request body domain.CreateTechnicianRequest true "Technician data"
// @Success 201 {object} domain.TechnicianDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /tecnicos [post]
func (h *TechnicianHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTechnicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	tech, err := h.techService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create technician", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create technician")
		return
	}

	w.Header().Set("Location", "/api/v1/tecnicos/"+tech.ID.String())
	respondJSON(w, http.StatusCreated, tech)
}

// Update godoc
// @Summary Update technician
// @Tags Tecnicos
// @Accept json
// @Produce json
// @Param id path string true "Technician ID" format(uuid)
// @Param request body domain.CreateTechnicianRequest true "Technician data"
// @Success 200 {object} domain.TechnicianDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /tecnicos/{id} [put]
func (h *TechnicianHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid technician ID format")
		return
	}

	var req domain.CreateTechnicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	tech, err := h.techService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Technician not found")
			return
		}
		h.logger.Error("failed to update technician", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update technician")
		return
	}
	respondJSON(w, http.StatusOK, tech)
}

// Delete godoc
// @Summary Delete technician
// @Tags Tecnicos
// @Param id path string true "Technician ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /tecnicos/{id} [delete]
func (h *TechnicianHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid technician ID format")
		return
	}

	if err := h.techService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Technician not found")
			return
		}
		h.logger.Error("failed to delete technician", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete technician")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListContacts godoc
// @Summary List technician contacts
// @Tags Tecnicos
// @Produce json
// @Param id path string true "Technician ID" format(uuid)
// @Success 200 {array} domain.ContactDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /tecnicos/{id}/contatos [get]
func (h *TechnicianHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid technician ID format")
		return
	}

	contacts, err := h.contactService.ListByOwner(r.Context(), domain.ContactOwnerTechnician, id)
	if err != nil {
		h.logger.Error("failed to list contacts", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list contacts")
		return
	}
	respondJSON(w, http.StatusOK, contacts)
}

// CreateContact godoc
// @Summary Create contact for technician
// @Tags Tecnicos
// @Accept json
// @Produce json
// @Param id path string true "Technician ID" format(uuid)
// @Param request body domain.ContactInput true "Contact data"
// @Success 201 {object} domain.ContactDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /tecnicos/{id}/contatos [post]
func (h *TechnicianHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid technician ID format")
		return
	}

	var req domain.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	contact, err := h.contactService.Create(r.Context(), domain.ContactOwnerTechnician, id, &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create contact", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create contact")
		return
	}
	respondJSON(w, http.StatusCreated, contact)
}

// ListKits godoc
// @Summary List kits allocated to a technician
// @Tags Tecnicos
// @Produce json
// @Param id path string true "Technician ID" format(uuid)
// @Success 200 {array} domain.KitDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /tecnicos/{id}/kits [get]
func (h *TechnicianHandler) ListKits(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid technician ID format")
		return
	}

	kits, err := h.kitService.ListByTechnician(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to list technician kits", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list kits")
		return
	}
	respondJSON(w, http.StatusOK, kits)
}
