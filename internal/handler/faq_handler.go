package handler

import (
	"net/http"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/service"
)

// FAQHandler serves /api/faqs. Listing is public; writes are admin-only.
type FAQHandler struct {
	faqService service.FAQService
}

func NewFAQHandler(faqService service.FAQService) *FAQHandler {
	return &FAQHandler{faqService: faqService}
}

type faqRequest struct {
	ID           int64   `json:"id"`
	Question     *string `json:"question"`
	Answer       *string `json:"answer"`
	Category     *string `json:"category"`
	DisplayOrder *int    `json:"display_order"`
	Active       *bool   `json:"active"`
}

// List handles GET /api/faqs[?active=true].
func (h *FAQHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.FAQListOptions{ActiveOnly: parseBool(r.URL.Query().Get("active"))}
	faqs, err := h.faqService.List(r.Context(), opts)
	if err != nil {
		serverError(w, r, "Failed to fetch FAQs", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(faqs))
}

func (h *FAQHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req faqRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	faq := &model.FAQ{
		Question:     deref(req.Question),
		Answer:       deref(req.Answer),
		Category:     derefOr(req.Category, "general"),
		DisplayOrder: deref(req.DisplayOrder),
		Active:       derefOr(req.Active, true),
	}
	if err := h.faqService.Create(r.Context(), faq); err != nil {
		writeServiceError(w, r, "Failed to create FAQ", err)
		return
	}
	writeJSON(w, http.StatusCreated, faq)
}

func (h *FAQHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req faqRequest
	if !decodeJSON(w, r, &req) || !bodyID(w, req.ID) {
		return
	}
	faq, err := h.faqService.Update(r.Context(), req.ID, model.FAQPatch{
		Question:     req.Question,
		Answer:       req.Answer,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
		Active:       req.Active,
	})
	if err != nil {
		writeServiceError(w, r, "Failed to update FAQ", err)
		return
	}
	writeJSON(w, http.StatusOK, faq)
}

func (h *FAQHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}
	if err := h.faqService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "Failed to delete FAQ", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
