package storage

import (
	"context"
	"fmt"

	"github.com/mcoot/charroster/internal/model"
)

// Storage defines the roster persistence operations.
// Every call reads or writes the backing store afresh; nothing is cached between calls.
type Storage interface {
	// ReadAll returns every character in store order
	ReadAll(ctx context.Context) ([]*model.Character, error)
	// FindByName returns the first character whose name matches case-insensitively,
	// or model.ErrCharacterNotFound
	FindByName(ctx context.Context, name string) (*model.Character, error)
	// FindByProfession returns characters whose profession matches exactly, in store order
	FindByProfession(ctx context.Context, profession string) ([]*model.Character, error)
	// WriteAll replaces the stored roster with characters
	WriteAll(ctx context.Context, characters []*model.Character) error
	// Append adds one character after the existing ones
	Append(ctx context.Context, character *model.Character) error
}

// LineError reports a record that failed to decode
type LineError struct {
	Line int // 1-based line number in the backing store
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
