package handler

import (
	"context"
	"net/http"
	"time"
)

// ping が返らないときにロードバランサを待たせない
const healthPingTimeout = 2 * time.Second

type healthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
}

// Health handles GET /api/health. It answers 503 while the database is unreachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:   "unhealthy",
			Message:  err.Error(),
			Database: "unreachable",
		})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Message:  "RTA website API",
		Database: "ok",
	})
}
