package repository

import (
	"context"

	"wordlearning/internal/domain"
)

// WordRepository defines word data operations
type WordRepository interface {
	ListWords(ctx context.Context) ([]domain.Word, error)
	GetWord(ctx context.Context, id string) (*domain.Word, error)
	InsertWord(ctx context.Context, word domain.Word) (*domain.Word, error)
	ReplaceWord(ctx context.Context, id string, word domain.Word) (*domain.Word, error)
	DeleteWord(ctx context.Context, id string) (int64, error)
	Ping(ctx context.Context) error
}
