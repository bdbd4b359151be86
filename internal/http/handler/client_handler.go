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

type ClientHandler struct {
	clientService  *service.ClientService
	contactService *service.ContactService
	logger         *zap.Logger
}

func NewClientHandler(clientService *service.ClientService, contactService *service.ContactService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		clientService:  clientService,
		contactService: contactService,
		logger:         logger,
	}
}

// List godoc
// @Summary List clients
// @Description Get paginated list of clients with optional search and city filter
// @Tags Clientes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param busca query string false "Search by name or address"
// @Param cidade_id query string false "Filter by city ID" format(uuid)
// @Success 200 {object} domain.PaginatedResponse{items=[]domain.ClientDTO}
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /clientes [get]
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	cityID := uuid.Nil
	if id, err := uuid.Parse(r.URL.Query().Get("cidade_id")); err == nil {
		cityID = id
	}

	clients, total, err := h.clientService.List(r.Context(), page, pageSize, r.URL.Query().Get("busca"), cityID)
	if err != nil {
		h.logger.Error("failed to list clients", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list clients")
		return
	}

	respondJSON(w, http.StatusOK, domain.PaginatedResponse{
		Items:    clients,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetByID godoc
// @Summary Get client by ID
// @Tags Clientes
// @Produce json
// @Param id path string true "Client ID" format(uuid)
// @Success 200 {object} domain.ClientDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /clientes/{id} [get]
func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	client, err := h.clientService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Client not found")
			return
		}
		h.logger.Error("failed to get client", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get client")
		return
	}
	respondJSON(w, http.StatusOK, client)
}

// Create godoc
// @Summary Create client
// @Tags Clientes
// @Accept json
// @Produce json
// @Param request body domain.CreateClientRequest true "Client data"
// @Success 201 {object} domain.ClientDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Duplicate CPF"
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /clientes [post]
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	client, err := h.clientService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			respondWithError(w, http.StatusConflict, "A client with this CPF already exists")
			return
		}
		h.logger.Error("failed to create client", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create client")
		return
	}

	w.Header().Set("Location", "/api/v1/clientes/"+client.ID.String())
	respondJSON(w, http.StatusCreated, client)
}

// Update godoc
// @Summary Update client
// @Tags Clientes
// @Accept json
// @Produce json
// @Param id path string true "Client ID" format(uuid)
// @Param request body domain.UpdateClientRequest true "Client data"
// @Success 200 {object} domain.ClientDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /clientes/{id} [put]
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var req domain.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	client, err := h.clientService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Client not found")
			return
		}
		h.logger.Error("failed to update client", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update client")
		return
	}
	respondJSON(w, http.StatusOK, client)
}

// Delete godoc
// @Summary Delete client
// @Tags Clientes
// @Param id path string true "Client ID" format(uuid)
// @Success 204 "No Content"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /clientes/{id} [delete]
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	if err := h.clientService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Client not found")
			return
		}
		h.logger.Error("failed to delete client", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete client")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListContacts godoc
// @Summary List client contacts
// @Tags Clientes
// @Produce json
// @Param id path string true "Client ID" format(uuid)
// @Success 200 {array} domain.ContactDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /clientes/{id}/contatos [get]
func (h *ClientHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	contacts, err := h.contactService.ListByOwner(r.Context(), domain.ContactOwnerClient, id)
	if err != nil {
		h.logger.Error("failed to list contacts", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list contacts")
		return
	}
	respondJSON(w, http.StatusOK, contacts)
}

// CreateContact godoc
// @Summary Create contact for client
// @Description Create a contact on a client. The first contact automatically becomes the principal one.
// @Tags Clientes
// @Accept json
// @Produce json
// @Param id path string true "Client ID" format(uuid)
// @Param request body domain.ContactInput true "Contact data"
// @Success 201 {object} domain.ContactDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /clientes/{id}/contatos [post]
func (h *ClientHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid client ID format")
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

	contact, err := h.contactService.Create(r.Context(), domain.ContactOwnerClient, id, &req)
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
