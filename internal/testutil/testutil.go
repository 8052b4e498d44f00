package testutil

import (
	"wordlearning/internal/domain"

	"go.uber.org/zap"
)

// TestWordID is a syntactically valid identifier for fixtures
const TestWordID = "64b7f0c2a1b2c3d4e5f60718"

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(id, word, meaning string) *domain.Word {
	return &domain.Word{
		ID:      id,
		Word:    word,
		Meaning: meaning,
	}
}
