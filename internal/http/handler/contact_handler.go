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

// ContactHandler serves operations on individual contacts; creation and
// listing live on the owner routes (clients, technicians, suppliers).
type ContactHandler struct {
	contactService *service.ContactService
	logger         *zap.Logger
}

func NewContactHandler(contactService *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// Update godoc
// @Summary Update contact
// @Tags Contatos
// @Accept json
// @Produce json
// @Param id path string true "Contact ID" format(uuid)
// @Param request body domain.ContactInput true "Contact data"
// @Success 200 {object} domain.ContactDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contatos/{id} [put]
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contact ID format")
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

	contact, err := h.contactService.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Contact not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to update contact", zap.Error(err))
			respondWithError(w, http.StatusInternalServerError, "Failed to update contact")
		}
		return
	}
	respondJSON(w, http.StatusOK, contact)
}

// SetPrincipal godoc
// @Summary Mark contact as principal
// @Description Promote this contact to its owner's principal channel, demoting any other
// @Tags Contatos
// @Param id path string true "Contact ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contatos/{id}/principal [post]
func (h *ContactHandler) SetPrincipal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contact ID format")
		return
	}

	if err := h.contactService.SetPrincipal(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Contact not found")
			return
		}
		h.logger.Error("failed to set principal contact", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to set principal contact")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete contact
// @Description Remove a contact. If it was the principal one, the first remaining contact is promoted.
// @Tags Contatos
// @Param id path string true "Contact ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /contatos/{id} [delete]
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contact ID format")
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Contact not found")
			return
		}
		h.logger.Error("failed to delete contact", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete contact")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
