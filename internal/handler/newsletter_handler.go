package handler

import (
	"errors"
	"net/http"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/service"
)

// NewsletterHandler handles newsletter subscriptions.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

type subscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

type subscribeResponse struct {
	Message    string                      `json:"message"`
	Subscriber *model.NewsletterSubscriber `json:"subscriber,omitempty"`
}

// Subscribe handles POST /api/newsletter. Subscribing an address twice is a
// success both times; the second answer says it was already on the list.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sub, err := h.newsletterService.Subscribe(r.Context(), req.Email, req.Source)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, subscribeResponse{
			Message:    "Successfully subscribed to newsletter",
			Subscriber: sub,
		})
	case errors.Is(err, service.ErrAlreadySubscribed):
		writeJSON(w, http.StatusOK, subscribeResponse{Message: "Email already subscribed"})
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		serverError(w, r, "Failed to subscribe to newsletter", err)
	}
}

// List handles GET /api/newsletter (admin).
func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.newsletterService.List(r.Context())
	if err != nil {
		serverError(w, r, "Failed to fetch subscribers", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(subs))
}
