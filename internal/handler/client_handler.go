package handler

import (
	"net/http"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/service"
)

// ClientHandler serves the admin client registry at /api/clients.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a ClientHandler with the given service.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

type clientRequest struct {
	ID           int64   `json:"id"`
	SerialNumber *string `json:"serial_number"`
	CompanyName  *string `json:"company_name"`
	SecurityType *string `json:"security_type"`
	ISINCode     *string `json:"isin_code"`
	Active       *bool   `json:"active"`
}

func (req clientRequest) patch() model.ClientPatch {
	return model.ClientPatch{
		SerialNumber: req.SerialNumber,
		CompanyName:  req.CompanyName,
		SecurityType: req.SecurityType,
		ISINCode:     req.ISINCode,
		Active:       req.Active,
	}
}

// List handles GET /api/clients (newest id first).
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.List(r.Context())
	if err != nil {
		serverError(w, r, "Failed to fetch clients", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(clients))
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	c := &model.Client{
		SerialNumber: deref(req.SerialNumber),
		CompanyName:  deref(req.CompanyName),
		SecurityType: deref(req.SecurityType),
		ISINCode:     deref(req.ISINCode),
		Active:       derefOr(req.Active, true),
	}
	if err := h.clientService.Create(r.Context(), c); err != nil {
		writeServiceError(w, r, "Failed to create client", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Update handles PUT /api/clients; the id is in the body.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if !decodeJSON(w, r, &req) || !bodyID(w, req.ID) {
		return
	}
	c, err := h.clientService.Update(r.Context(), req.ID, req.patch())
	if err != nil {
		writeServiceError(w, r, "Failed to update client", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /api/clients?id=.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}
	if err := h.clientService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "Failed to delete client", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
