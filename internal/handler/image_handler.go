package handler

import (
	"net/http"
	"strconv"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/service"
)

// ImageHandler serves blog images at /api/images.
type ImageHandler struct {
	imageService service.ImageService
}

func NewImageHandler(imageService service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// List handles GET /api/images.
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.imageService.List(r.Context())
	if err != nil {
		serverError(w, r, "Failed to fetch images", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(images))
}

// Upload handles POST /api/images (multipart: file, name, subtitle, display_order).
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	f, file, ok := readUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	order := 0
	if v := r.FormValue("display_order"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "display_order must be an integer")
			return
		}
		order = n
	}

	img, err := h.imageService.Upload(r.Context(), service.ImageUpload{
		File:         f,
		Name:         r.FormValue("name"),
		Subtitle:     r.FormValue("subtitle"),
		DisplayOrder: order,
	})
	if err != nil {
		writeServiceError(w, r, "Failed to upload image", err)
		return
	}
	writeJSON(w, http.StatusCreated, img)
}

type imageUpdateRequest struct {
	ID           int64   `json:"id"`
	Name         *string `json:"name"`
	Subtitle     *string `json:"subtitle"`
	DisplayOrder *int    `json:"display_order"`
	Active       *bool   `json:"active"`
}

// Update handles PUT /api/images (metadata only).
func (h *ImageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req imageUpdateRequest
	if !decodeJSON(w, r, &req) || !bodyID(w, req.ID) {
		return
	}
	img, err := h.imageService.Update(r.Context(), req.ID, model.ImageFilePatch{
		Name:         req.Name,
		Subtitle:     req.Subtitle,
		DisplayOrder: req.DisplayOrder,
		Active:       req.Active,
	})
	if err != nil {
		writeServiceError(w, r, "Failed to update image", err)
		return
	}
	writeJSON(w, http.StatusOK, img)
}

// Delete handles DELETE /api/images?id=; the stored object is removed too.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}
	if err := h.imageService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "Failed to delete image", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
