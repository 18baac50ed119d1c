// Package shell implements the interactive character management menu.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mcoot/charroster/internal/model"
	"github.com/mcoot/charroster/internal/services/roster"
)

// Shell runs a prompt/response menu loop over a roster service
type Shell struct {
	service roster.ServiceInterface
	in      *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
}

// New creates a Shell reading commands from in and writing to out
func New(service roster.ServiceInterface, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	return &Shell{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

type menuItem struct {
	key    string
	label  string
	action func(ctx context.Context) error
}

func (s *Shell) menu() []menuItem {
	return []menuItem{
		{"1", "Display Characters", s.displayCharacters},
		{"2", "Add Character", s.addCharacter},
		{"3", "Level Up Character", s.levelUpCharacter},
		{"4", "Find Character", s.findCharacter},
		{"5", "Find Characters By Profession", s.findByProfession},
	}
}

// Run loops until the user exits or input ends
func (s *Shell) Run(ctx context.Context) error {
	s.println("Welcome to Character Management")

	items := s.menu()
	for {
		s.println("Menu:")
		for _, item := range items {
			s.printf("%s. %s\n", item.key, item.label)
		}
		s.println("0. Exit")

		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return endOfInput(err)
		}

		if choice == "0" {
			return nil
		}

		action := lookup(items, choice)
		if action == nil {
			s.println("Invalid choice. Please try again.")
			continue
		}

		if err := action(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.logger.Warn("menu action failed",
				slog.String("choice", choice),
				slog.String("error", err.Error()),
			)
			s.printf("Error: %s\n", err)
		}
	}
}

func lookup(items []menuItem, key string) func(context.Context) error {
	for _, item := range items {
		if item.key == key {
			return item.action
		}
	}
	return nil
}

func (s *Shell) displayCharacters(ctx context.Context) error {
	characters, err := s.service.List(ctx)
	if err != nil {
		return err
	}
	s.printCharacters(characters, "No characters found.")
	return nil
}

func (s *Shell) addCharacter(ctx context.Context) error {
	name, err := s.prompt("Enter character name: ")
	if err != nil {
		return err
	}
	profession, err := s.prompt("Enter character profession: ")
	if err != nil {
		return err
	}
	level, err := s.promptInt("Enter character level: ")
	if err != nil {
		return err
	}
	hp, err := s.promptInt("Enter character HP: ")
	if err != nil {
		return err
	}

	var equipment []string
	for {
		item, err := s.prompt("Enter equipment item (leave blank to finish): ")
		if err != nil {
			return err
		}
		if item == "" {
			break
		}
		equipment = append(equipment, item)
	}

	added, err := s.service.Add(ctx, model.NewCharacter(name, profession, level, hp, equipment))
	if err != nil {
		return err
	}
	s.printf("Character added: %s\n", added)
	return nil
}

func (s *Shell) levelUpCharacter(ctx context.Context) error {
	name, err := s.prompt("Enter character name to level up: ")
	if err != nil {
		return err
	}

	c, err := s.service.LevelUp(ctx, name)
	if errors.Is(err, model.ErrCharacterNotFound) {
		s.println("Character not found")
		return nil
	}
	if err != nil {
		return err
	}
	s.printf("%s is now level %d.\n", c.Name, c.Level)
	return nil
}

func (s *Shell) findCharacter(ctx context.Context) error {
	name, err := s.prompt("Enter character name to find: ")
	if err != nil {
		return err
	}

	c, err := s.service.Find(ctx, name)
	if errors.Is(err, model.ErrCharacterNotFound) {
		s.println("Character not found")
		return nil
	}
	if err != nil {
		return err
	}
	s.println(c.String())
	return nil
}

func (s *Shell) findByProfession(ctx context.Context) error {
	profession, err := s.prompt("Enter profession to find: ")
	if err != nil {
		return err
	}

	characters, err := s.service.FindByProfession(ctx, profession)
	if err != nil {
		return err
	}
	s.printCharacters(characters, fmt.Sprintf("No characters with profession %s", profession))
	return nil
}

func (s *Shell) printCharacters(characters []*model.Character, empty string) {
	if len(characters) == 0 {
		s.println(empty)
		return
	}
	for _, c := range characters {
		s.println(c.String())
	}
}

// prompt writes label and returns the next trimmed input line, or io.EOF
func (s *Shell) prompt(label string) (string, error) {
	s.printf("%s", label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// promptInt re-prompts until the input is an integer
func (s *Shell) promptInt(label string) (int, error) {
	for {
		text, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err == nil {
			return n, nil
		}
		s.println("Please enter a whole number.")
	}
}

func (s *Shell) println(text string) {
	_, _ = fmt.Fprintln(s.out, text)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
