package testutil

import (
	"context"
	"sync"

	"wordlearning/internal/domain"
)

// MemoryWordRepository is an in-memory WordRepository for handler tests
type MemoryWordRepository struct {
	mu    sync.Mutex
	order []string
	words map[string]domain.Word
}

// NewMemoryWordRepository creates an empty in-memory repository
func NewMemoryWordRepository() *MemoryWordRepository {
	return &MemoryWordRepository{words: make(map[string]domain.Word)}
}

func (m *MemoryWordRepository) ListWords(ctx context.Context) ([]domain.Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	words := make([]domain.Word, 0, len(m.order))
	for _, id := range m.order {
		words = append(words, m.words[id])
	}
	return words, nil
}

func (m *MemoryWordRepository) GetWord(ctx context.Context, id string) (*domain.Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.words[id]
	if !ok {
		return nil, domain.ErrWordNotFound
	}
	return &w, nil
}

func (m *MemoryWordRepository) InsertWord(ctx context.Context, word domain.Word) (*domain.Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	word.ID = domain.NewWordID()
	m.words[word.ID] = word
	m.order = append(m.order, word.ID)
	return &word, nil
}

func (m *MemoryWordRepository) ReplaceWord(ctx context.Context, id string, word domain.Word) (*domain.Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.words[id]; !ok {
		return nil, domain.ErrWordNotFound
	}
	word.ID = id
	m.words[id] = word
	return &word, nil
}

func (m *MemoryWordRepository) DeleteWord(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.words[id]; !ok {
		return 0, nil
	}
	delete(m.words, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (m *MemoryWordRepository) Ping(ctx context.Context) error {
	return nil
}

// Len returns the number of stored words
func (m *MemoryWordRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.words)
}
