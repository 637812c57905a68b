package handler

import (
	"net/http"

	"github.com/rtaweb/backend/internal/model"
	"github.com/rtaweb/backend/internal/service"
)

// BlogHandler serves the public blog (/blog) and the admin API (/api/blog-posts).
type BlogHandler struct {
	blogService service.BlogPostService
}

func NewBlogHandler(blogService service.BlogPostService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func blogListOptions(r *http.Request) model.BlogListOptions {
	q := r.URL.Query()
	return model.BlogListOptions{Category: q.Get("category"), Tag: q.Get("tag")}
}

// ListPublished handles GET /blog[?category=&tag=].
func (h *BlogHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.ListPublished(r.Context(), blogListOptions(r))
	if err != nil {
		serverError(w, r, "Failed to fetch blog posts", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(posts))
}

// GetPublished handles GET /blog/{slug} and counts the view.
func (h *BlogHandler) GetPublished(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogService.ViewPublished(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, "Failed to fetch blog post", err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// List handles GET /api/blog-posts[?id=|?status=] (admin, drafts included).
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("id") {
		id, ok := queryID(w, r)
		if !ok {
			return
		}
		post, err := h.blogService.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, "Failed to fetch blog post", err)
			return
		}
		writeJSON(w, http.StatusOK, post)
		return
	}
	opts := blogListOptions(r)
	opts.PublishedOnly = r.URL.Query().Get("status") == model.BlogStatusPublished
	posts, err := h.blogService.List(r.Context(), opts)
	if err != nil {
		serverError(w, r, "Failed to fetch blog posts", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(posts))
}

type blogPostRequest struct {
	ID               int64     `json:"id"`
	Slug             *string   `json:"slug"`
	Title            *string   `json:"title"`
	Content          *string   `json:"content"`
	Excerpt          *string   `json:"excerpt"`
	Author           *string   `json:"author"`
	Status           *string   `json:"status"`
	Category         *string   `json:"category"`
	Tags             *[]string `json:"tags"`
	FeaturedImageURL *string   `json:"featured_image_url"`
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req blogPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	post := &model.BlogPost{
		Slug:             deref(req.Slug),
		Title:            deref(req.Title),
		Content:          deref(req.Content),
		Excerpt:          deref(req.Excerpt),
		Author:           deref(req.Author),
		Status:           deref(req.Status),
		Category:         deref(req.Category),
		Tags:             deref(req.Tags),
		FeaturedImageURL: deref(req.FeaturedImageURL),
	}
	if err := h.blogService.Create(r.Context(), post); err != nil {
		writeServiceError(w, r, "Failed to create blog post", err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req blogPostRequest
	if !decodeJSON(w, r, &req) || !bodyID(w, req.ID) {
		return
	}
	post, err := h.blogService.Update(r.Context(), req.ID, model.BlogPostPatch{
		Slug:             req.Slug,
		Title:            req.Title,
		Content:          req.Content,
		Excerpt:          req.Excerpt,
		Author:           req.Author,
		Status:           req.Status,
		Category:         req.Category,
		Tags:             req.Tags,
		FeaturedImageURL: req.FeaturedImageURL,
	})
	if err != nil {
		writeServiceError(w, r, "Failed to update blog post", err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}
	if err := h.blogService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, "Failed to delete blog post", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
