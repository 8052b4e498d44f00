package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// handleIndex answers the liveness probe
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Word learning server running"))
}

// handleHealth reports whether the store answers a ping
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.wordService.Ping(ctx); err != nil {
		h.logger.Warn("Store ping failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
