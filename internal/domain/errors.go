package domain

import "errors"

// Domain errors for words
var (
	ErrWordNotFound  = errors.New("word not found")
	ErrInvalidWordID = errors.New("invalid word id")
	ErrMissingFields = errors.New("word and meaning are required")
)
