package service

import (
	"context"

	"wordlearning/internal/domain"
	"wordlearning/internal/repository"
)

// WordService handles word-related business logic
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// ListWords returns all stored words
func (s *WordService) ListWords(ctx context.Context) ([]domain.Word, error) {
	words, err := s.wordRepo.ListWords(ctx)
	if err != nil {
		return nil, err
	}
	if words == nil {
		words = []domain.Word{}
	}
	return words, nil
}

// GetWord returns a single word by id
func (s *WordService) GetWord(ctx context.Context, id string) (*domain.Word, error) {
	if !domain.IsValidWordID(id) {
		return nil, domain.ErrInvalidWordID
	}
	return s.wordRepo.GetWord(ctx, id)
}

// CreateWord validates and stores a new word.
// The id is always assigned by the store.
func (s *WordService) CreateWord(ctx context.Context, word domain.Word) (*domain.Word, error) {
	if !word.HasRequiredFields() {
		return nil, domain.ErrMissingFields
	}
	word.ID = ""
	return s.wordRepo.InsertWord(ctx, word)
}

// ReplaceWord overwrites an existing word, ignoring any id in the payload
func (s *WordService) ReplaceWord(ctx context.Context, id string, word domain.Word) (*domain.Word, error) {
	if !domain.IsValidWordID(id) {
		return nil, domain.ErrInvalidWordID
	}
	word.ID = ""
	return s.wordRepo.ReplaceWord(ctx, id, word)
}

// DeleteWord removes a word; a zero delete count is reported as not found
func (s *WordService) DeleteWord(ctx context.Context, id string) error {
	if !domain.IsValidWordID(id) {
		return domain.ErrInvalidWordID
	}

	deleted, err := s.wordRepo.DeleteWord(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrWordNotFound
	}
	return nil
}

// Ping reports whether the store is reachable
func (s *WordService) Ping(ctx context.Context) error {
	return s.wordRepo.Ping(ctx)
}
