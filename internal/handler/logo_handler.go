package handler

import (
	"net/http"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/service"
)

// LogoHandler serves client logos (/api/logos) and the logo upload endpoint (/api/upload).
type LogoHandler struct {
	logoService service.LogoService
}

func NewLogoHandler(logoService service.LogoService) *LogoHandler {
	return &LogoHandler{logoService: logoService}
}

// Upload handles POST /api/upload and returns {url, path}.
func (h *LogoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	f, file, ok := readUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	res, err := h.logoService.Upload(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, "Failed to upload file", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// List handles GET /api/logos[?active=true].
func (h *LogoHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.LogoListOptions{ActiveOnly: parseBool(r.URL.Query().Get("active"))}
	logos, err := h.logoService.List(r.Context(), opts)
	if err != nil {
		serverError(w, r, "Failed to fetch logos", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(logos))
}

type logoRequest struct {
	ID           int64   `json:"id"`
	Name         *string `json:"name"`
	URL          *string `json:"url"`
	Path         *string `json:"path"`
	AltText      *string `json:"alt_text"`
	DisplayOrder *int    `json:"display_order"`
	Active       *bool   `json:"active"`
}

func (h *LogoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req logoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	logo := &model.ClientLogo{
		Name:         deref(req.Name),
		URL:          deref(req.URL),
		Path:         deref(req.Path),
		AltText:      deref(req.AltText),
		DisplayOrder: deref(req.DisplayOrder),
		Active:       derefOr(req.Active, true),
	}
	if err := h.logoService.Create(r.Context(), logo); err != nil {
		writeServiceError(w, r, "Failed to create logo", err)
		return
	}
	writeJSON(w, http.StatusCreated, logo)
}

func (h *LogoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req logoRequest
	if !decodeJSON(w, r, &req) || !bodyID(w, req.ID) {
		return
	}
	logo, err := h.logoService.Update(r.Context(), req.ID, model.ClientLogoPatch{
		Name:         req.Name,
		URL:          req.URL,
		Path:         req.Path,
		AltText:      req.AltText,
		DisplayOrder: req.DisplayOrder,
		Active:       req.Active,
	})
	if err != nil {
		writeServiceError(w, r, "Failed to update logo", err)
		return
	}
	writeJSON(w, http.StatusOK, logo)
}

func (h *LogoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}
	if err := h.logoService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "Failed to delete logo", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
