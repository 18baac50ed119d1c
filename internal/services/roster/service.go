package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/charroster/internal/model"
	"github.com/mcoot/charroster/internal/storage"
)

// Service provides roster operations on top of a storage backend
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new roster Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// List returns every character in the roster
func (s *Service) List(ctx context.Context) ([]*model.Character, error) {
	return s.storage.ReadAll(ctx)
}

// Find returns the character with the given name (case-insensitive)
func (s *Service) Find(ctx context.Context, name string) (*model.Character, error) {
	return s.storage.FindByName(ctx, name)
}

// FindByProfession returns all characters of a profession
func (s *Service) FindByProfession(ctx context.Context, profession string) ([]*model.Character, error) {
	return s.storage.FindByProfession(ctx, profession)
}

// Add appends a new character to the roster.
// Uniqueness of names is not enforced.
func (s *Service) Add(ctx context.Context, character *model.Character) (*model.Character, error) {
	c := model.NewCharacter(character.Name, character.Profession, character.Level, character.HP, character.Equipment)
	if err := validate(c); err != nil {
		return nil, err
	}

	if err := s.storage.Append(ctx, c); err != nil {
		s.logger.Error("failed to add character",
			slog.String("name", c.Name),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("character added",
		slog.String("name", c.Name),
		slog.String("profession", c.Profession),
		slog.Int("level", c.Level),
	)

	return c, nil
}

// LevelUp increments the level of the named character and rewrites the roster
func (s *Service) LevelUp(ctx context.Context, name string) (*model.Character, error) {
	characters, err := s.storage.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	c, err := storage.FirstByName(characters, name)
	if err != nil {
		return nil, err
	}
	c.LevelUp()

	if err := s.storage.WriteAll(ctx, characters); err != nil {
		s.logger.Error("failed to save roster",
			slog.String("name", c.Name),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("character leveled up",
		slog.String("name", c.Name),
		slog.Int("level", c.Level),
	)

	return c, nil
}

const lineBreaks = "\r\n"

// validate rejects text that would write a line the codec cannot read back.
// Names may hold commas (they are quoted) but not quotes.
func validate(c *model.Character) error {
	if strings.ContainsAny(c.Name, `"`+lineBreaks) {
		return fmt.Errorf("%w: name must not contain quotes or line breaks", model.ErrInvalidCharacter)
	}
	if strings.ContainsAny(c.Profession, `,"`+lineBreaks) {
		return fmt.Errorf("%w: profession must not contain commas, quotes or line breaks", model.ErrInvalidCharacter)
	}
	for _, item := range c.Equipment {
		if strings.ContainsAny(item, `,|"`+lineBreaks) {
			return fmt.Errorf("%w: equipment item %q must not contain commas, pipes, quotes or line breaks",
				model.ErrInvalidCharacter, item)
		}
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	List(ctx context.Context) ([]*model.Character, error)
	Find(ctx context.Context, name string) (*model.Character, error)
	FindByProfession(ctx context.Context, profession string) ([]*model.Character, error)
	Add(ctx context.Context, character *model.Character) (*model.Character, error)
	LevelUp(ctx context.Context, name string) (*model.Character, error)
}

var _ ServiceInterface = (*Service)(nil)
