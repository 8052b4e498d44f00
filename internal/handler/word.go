package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"wordlearning/internal/domain"
	"wordlearning/internal/middleware"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// handleListWords returns every stored word
func (h *Handler) handleListWords(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	words, err := h.wordService.ListWords(r.Context())
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch words")
		return
	}

	writeJSON(w, http.StatusOK, words)
}

// handleGetWord returns a single word
func (h *Handler) handleGetWord(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := wordID(w, ps)
	if !ok {
		return
	}

	word, err := h.wordService.GetWord(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err, "Failed to fetch word")
		return
	}

	writeJSON(w, http.StatusOK, word)
}

// handleCreateWord stores a new word from the request body
func (h *Handler) handleCreateWord(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	payload, ok := decodeWord(w, r)
	if !ok {
		return
	}

	word, err := h.wordService.CreateWord(r.Context(), payload)
	if err != nil {
		h.respondError(w, r, err, "Failed to add word")
		return
	}

	h.logger.Info("Word saved",
		zap.String("id", word.ID),
		zap.String("word", word.Word),
	)

	writeJSON(w, http.StatusOK, word)
}

// handleReplaceWord overwrites a stored word with the request body
func (h *Handler) handleReplaceWord(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := wordID(w, ps)
	if !ok {
		return
	}

	payload, ok := decodeWord(w, r)
	if !ok {
		return
	}

	word, err := h.wordService.ReplaceWord(r.Context(), id, payload)
	if err != nil {
		h.respondError(w, r, err, "Failed to update word")
		return
	}

	writeJSON(w, http.StatusOK, word)
}

// handleDeleteWord removes a stored word
func (h *Handler) handleDeleteWord(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := wordID(w, ps)
	if !ok {
		return
	}

	if err := h.wordService.DeleteWord(r.Context(), id); err != nil {
		h.respondError(w, r, err, "Failed to delete word")
		return
	}

	h.logger.Info("Word deleted", zap.String("id", id))

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Word deleted successfully"})
}

// wordID rejects malformed identifiers with 404 before any store call
func wordID(w http.ResponseWriter, ps httprouter.Params) (string, bool) {
	id := ps.ByName("id")
	if !domain.IsValidWordID(id) {
		writeError(w, http.StatusNotFound, "Word not found", "")
		return "", false
	}
	return id, true
}

// decodeWord reads the JSON body; an empty body is an empty object
func decodeWord(w http.ResponseWriter, r *http.Request) (domain.Word, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var word domain.Word
	err := json.NewDecoder(r.Body).Decode(&word)
	if err == nil || errors.Is(err, io.EOF) {
		return word, true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", "")
		return domain.Word{}, false
	}

	writeError(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
	return domain.Word{}, false
}

// respondError maps service errors onto HTTP statuses
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	switch {
	case errors.Is(err, domain.ErrWordNotFound), errors.Is(err, domain.ErrInvalidWordID):
		writeError(w, http.StatusNotFound, "Word not found", "")
	case errors.Is(err, domain.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Word and meaning are required", "")
	default:
		h.logger.Error(failure,
			zap.Error(err),
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, failure, err.Error())
	}
}
