package handler

import (
	"encoding/json"
	"net/http"

	"wordlearning/internal/service"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies on POST and PUT
const maxBodyBytes = 1 << 20

// Handler manages all HTTP interactions
type Handler struct {
	router      *httprouter.Router
	wordService *service.WordService
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	router *httprouter.Router,
	wordService *service.WordService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		router:      router,
		wordService: wordService,
		logger:      logger,
	}
}

// RegisterHandlers registers all routes
func (h *Handler) RegisterHandlers() {
	h.router.GET("/", h.handleIndex)
	h.router.GET("/healthz", h.handleHealth)

	h.router.GET("/words", h.handleListWords)
	h.router.GET("/words/:id", h.handleGetWord)
	h.router.POST("/words", h.handleCreateWord)
	h.router.PUT("/words/:id", h.handleReplaceWord)
	h.router.DELETE("/words/:id", h.handleDeleteWord)

	h.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found", "")
	})
	h.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
	})
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is a plain confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, ErrorResponse{Error: message, Details: details})
}
