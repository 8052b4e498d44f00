package testutil

import (
	"context"

	"wordlearning/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) ListWords(ctx context.Context) ([]domain.Word, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetWord(ctx context.Context, id string) (*domain.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) InsertWord(ctx context.Context, word domain.Word) (*domain.Word, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) ReplaceWord(ctx context.Context, id string, word domain.Word) (*domain.Word, error) {
	args := m.Called(ctx, id, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) DeleteWord(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
