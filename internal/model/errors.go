package model

import "errors"

// Common errors used across the application
var (
	// Record errors
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidCharacter is returned when a new character holds text the
	// roster line format cannot carry
	ErrInvalidCharacter = errors.New("invalid character")

	// Lookup errors
	ErrCharacterNotFound = errors.New("character not found")

	// Storage errors
	ErrStorageIO = errors.New("storage i/o error")
)
