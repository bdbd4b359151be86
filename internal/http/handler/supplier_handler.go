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

type SupplierHandler struct {
	supplierService *service.SupplierService
	contactService  *service.ContactService
	logger          *zap.Logger
}

func NewSupplierHandler(supplierService *service.SupplierService, contactService *service.ContactService, logger *zap.Logger) *SupplierHandler {
	return &SupplierHandler{
		supplierService: supplierService,
		contactService:  contactService,
		logger:          logger,
	}
}

// List godoc
// @Summary List suppliers
// @Tags Fornecedores
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param busca query string false "Search by name"
// @Success 200 {object} domain.PaginatedResponse{items=[]domain.SupplierDTO}
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /fornecedores [get]
func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	suppliers, total, err := h.supplierService.List(r.Context(), page, pageSize, r.URL.Query().Get("busca"))
	if err != nil {
		h.logger.Error("failed to list suppliers", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list suppliers")
		return
	}

	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Items:    suppliers,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetByID godoc
// @Summary Get supplier by ID
// @Tags Fornecedores
// @Produce json
// @Param id path string true "Supplier ID" format(uuid)
// @Success 200 {object} domain.SupplierDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /fornecedores/{id} [get]
func (h *SupplierHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	supplier, err := h.supplierService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Supplier not found")
			return
		}
		h.logger.Error("failed to get supplier", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get supplier")
		return
	}
	respondJSON(w, http.StatusOK, supplier)
}

// Create godoc
// @Summary Create supplier
// @Tags Fornecedores
// @Accept json
// @Produce json
// @Param request body domain.CreateSupplierRequest true "Supplier data"
// @Success 201 {object} domain.SupplierDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /fornecedores [post]
func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	supplier, err := h.supplierService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create supplier", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create supplier")
		return
	}

	w.Header().Set("Location", "/api/v1/fornecedores/"+supplier.ID.String())
	respondJSON(w, http.StatusCreated, supplier)
}

// Update godoc
// @Summary Update supplier
// @Tags Fornecedores
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID" format(uuid)
// @Param request body domain.CreateSupplierRequest true "Supplier data"
// @Success 200 {object} domain.SupplierDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /fornecedores/{id} [put]
func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	var req domain.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	supplier, err := h.supplierService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Supplier not found")
			return
		}
		h.logger.Error("failed to update supplier", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update supplier")
		return
	}
	respondJSON(w, http.StatusOK, supplier)
}

// Delete godoc
// @Summary Delete supplier
// @Tags Fornecedores
// @Param id path string true "Supplier ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /fornecedores/{id} [delete]
func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid supplier ID format")
		return
	}

	if err := h.supplierService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Supplier not found")
			return
		}
		h.logger.Error("failed to delete supplier", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete supplier")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateContact godoc
// @Summary Create contact for supplier
// @Tags Fornecedores
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID" format(uuid)
// @Param request body domain.ContactInput true "Contact data"
// @Success 201 {object} domain.ContactDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /fornecedores/{id}/contatos [post]
func (h *SupplierHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid supplier ID format")
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

	contact, err := h.contactService.Create(r.Context(), domain.ContactOwnerSupplier, id, &req)
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
