package vigenere

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key length bound is below 1.
	ErrInvalidKeyLength = errors.New("key length must be at least 1")

	// ErrInvalidKey is returned when a key contains no A-Z letters.
	ErrInvalidKey = errors.New("key must contain at least one letter")
)
