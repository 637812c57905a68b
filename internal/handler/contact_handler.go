package handler

import (
	"net/http"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/service"
)

const maxMessageLength = 5000

// ContactHandler handles contact form submission and admin management.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contacts.
type submitRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Service    string `json:"service"`
	Message    string `json:"message"`
	Newsletter bool   `json:"newsletter"`
	Source     string `json:"source"`
}

// Submit handles POST /api/contacts (public, rate limited).
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len([]rune(req.Message)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message is too long")
		return
	}

	sub := &model.ContactSubmission{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Company:    req.Company,
		Service:    req.Service,
		Message:    req.Message,
		Newsletter: req.Newsletter,
		Source:     req.Source,
	}
	if err := h.contactService.Submit(r.Context(), sub); err != nil {
		writeServiceError(w, r, "Failed to submit contact form", err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

// List handles GET /api/contacts[?status=new|read|responded|all] (admin).
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.ContactListOptions{Status: r.URL.Query().Get("status")}
	subs, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, "Failed to fetch contact submissions", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(subs))
}

type contactUpdateRequest struct {
	ID      int64   `json:"id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Service *string `json:"service"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

// Update handles PUT /api/contacts (admin). Any status transition is accepted.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req contactUpdateRequest
	if !decodeJSON(w, r, &req) || !bodyID(w, req.ID) {
		return
	}
	sub, err := h.contactService.Update(r.Context(), req.ID, model.ContactSubmissionPatch{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Service: req.Service,
		Message: req.Message,
		Status:  req.Status,
	})
	if err != nil {
		writeServiceError(w, r, "Failed to update contact submission", err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// Delete handles DELETE /api/contacts?id= (admin).
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}
	if err := h.contactService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "Failed to delete contact submission", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
