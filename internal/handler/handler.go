package handler

import (
	"net/http"
	"strings"

	"github.com/rtaweb/backend/internal/repository"
)

// Handler carries the cross-cutting endpoints (health, CORS).
type Handler struct {
	db             repository.DB
	allowedOrigins []string
}

// New creates a Handler. frontendURL may list several origins separated by commas.
func New(db repository.DB, frontendURL string) *Handler {
	var origins []string
	for _, o := range strings.Split(frontendURL, ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return &Handler{db: db, allowedOrigins: origins}
}

func (h *Handler) allowOrigin(origin string) string {
	if len(h.allowedOrigins) == 0 {
		return ""
	}
	for _, o := range h.allowedOrigins {
		if o == origin {
			return o
		}
	}
	return h.allowedOrigins[0]
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := h.allowOrigin(r.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
