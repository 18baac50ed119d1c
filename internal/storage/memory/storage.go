package memory

import (
	"context"
	"sync"

	"github.com/mcoot/charroster/internal/codec"
	"github.com/mcoot/charroster/internal/model"
	"github.com/mcoot/charroster/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// It keeps encoded lines rather than records, so every read decodes afresh
// and callers never share state with the store.
type Storage struct {
	mu    sync.RWMutex
	lines []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// NewWithLines creates a storage preloaded with raw roster lines (useful for testing)
func NewWithLines(lines []string) *Storage {
	s := New()
	s.lines = append(s.lines, lines...)
	return s
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Lines returns a copy of the stored lines
func (s *Storage) Lines() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, len(s.lines))
	copy(result, s.lines)
	return result
}

func (s *Storage) ReadAll(ctx context.Context) ([]*model.Character, error) {
	return storage.DecodeLines(s.Lines())
}

func (s *Storage) FindByName(ctx context.Context, name string) (*model.Character, error) {
	characters, err := s.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return storage.FirstByName(characters, name)
}

func (s *Storage) FindByProfession(ctx context.Context, profession string) ([]*model.Character, error) {
	characters, err := s.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return storage.FilterByProfession(characters, profession), nil
}

func (s *Storage) WriteAll(ctx context.Context, characters []*model.Character) error {
	lines := append([]string{codec.Header}, storage.EncodeLines(characters)...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = lines
	return nil
}

func (s *Storage) Append(ctx context.Context, character *model.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		s.lines = append(s.lines, codec.Header)
	}
	s.lines = append(s.lines, codec.Format(character))
	return nil
}
