package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"wordlearning/internal/domain"
)

// WordRepo implements repository.WordRepository on top of a JSONB table
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// ListWords returns every stored word in insertion order
func (r *WordRepo) ListWords(ctx context.Context) ([]domain.Word, error) {
	query := `
		SELECT id, doc
		FROM words
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// GetWord returns the word with the given id
func (r *WordRepo) GetWord(ctx context.Context, id string) (*domain.Word, error) {
	if !domain.IsValidWordID(id) {
		return nil, domain.ErrInvalidWordID
	}

	query := `
		SELECT id, doc
		FROM words
		WHERE id = $1
	`
	w, err := scanWord(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrWordNotFound
	}
	if err != nil {
		return nil, err
	}

	return w, nil
}

// InsertWord stores a new word under a freshly minted id
func (r *WordRepo) InsertWord(ctx context.Context, word domain.Word) (*domain.Word, error) {
	doc, err := json.Marshal(word.Fields())
	if err != nil {
		return nil, fmt.Errorf("encode word: %w", err)
	}

	id := domain.NewWordID()
	query := `
		INSERT INTO words (id, doc)
		VALUES ($1, $2)
	`
	if _, err := r.db.ExecContext(ctx, query, id, doc); err != nil {
		return nil, err
	}

	word.ID = id
	return &word, nil
}

// ReplaceWord overwrites every field of an existing word except its id
func (r *WordRepo) ReplaceWord(ctx context.Context, id string, word domain.Word) (*domain.Word, error) {
	if !domain.IsValidWordID(id) {
		return nil, domain.ErrInvalidWordID
	}

	doc, err := json.Marshal(word.Fields())
	if err != nil {
		return nil, fmt.Errorf("encode word: %w", err)
	}

	query := `
		UPDATE words
		SET doc = $2
		WHERE id = $1
		RETURNING id, doc
	`
	w, err := scanWord(r.db.QueryRowContext(ctx, query, id, doc))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrWordNotFound
	}
	if err != nil {
		return nil, err
	}

	return w, nil
}

// DeleteWord removes a word and reports how many rows went away
func (r *WordRepo) DeleteWord(ctx context.Context, id string) (int64, error) {
	if !domain.IsValidWordID(id) {
		return 0, domain.ErrInvalidWordID
	}

	query := `
		DELETE FROM words
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Ping checks the database connection
func (r *WordRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWord(row rowScanner) (*domain.Word, error) {
	var id string
	var doc []byte
	if err := row.Scan(&id, &doc); err != nil {
		return nil, err
	}

	var w domain.Word
	if err := json.Unmarshal(doc, &w); err != nil {
		return nil, fmt.Errorf("decode word %s: %w", id, err)
	}
	w.ID = id

	return &w, nil
}
