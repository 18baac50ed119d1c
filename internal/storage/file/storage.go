package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcoot/charroster/internal/codec"
	"github.com/mcoot/charroster/internal/model"
	"github.com/mcoot/charroster/internal/storage"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// Storage is a roster backed by a single delimited text file.
// Each operation opens, reads or writes, and closes the file within the call.
// A missing file reads as an empty roster and is created on first write.
type Storage struct {
	path string
}

// New creates a file storage for the roster at path
func New(path string) *Storage {
	return &Storage{path: path}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Path returns the roster file path
func (s *Storage) Path() string {
	return s.path
}

func (s *Storage) ReadAll(ctx context.Context) ([]*model.Character, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*model.Character{}, nil
		}
		return nil, s.ioError("read", err)
	}
	return storage.DecodeLines(strings.Split(string(data), "\n"))
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

// WriteAll replaces the file with a header line followed by one line per character
func (s *Storage) WriteAll(ctx context.Context, characters []*model.Character) error {
	var b strings.Builder
	b.WriteString(codec.Header)
	b.WriteByte('\n')
	for _, line := range storage.EncodeLines(characters) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(b.String()), filePerm); err != nil {
		return s.ioError("write", err)
	}
	return nil
}

// Append adds a line for character at the end of the file.
// A new or empty file gets the header first; a file whose last line lacks a
// newline gets one before the record so existing lines are untouched.
func (s *Storage) Append(ctx context.Context, character *model.Character) (err error) {
	if err := s.ensureDir(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, filePerm)
	if err != nil {
		return s.ioError("open", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = s.ioError("close", cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return s.ioError("stat", err)
	}

	var b strings.Builder
	if info.Size() == 0 {
		b.WriteString(codec.Header)
		b.WriteByte('\n')
	} else {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err != nil {
			return s.ioError("read", err)
		}
		if last[0] != '\n' {
			b.WriteByte('\n')
		}
	}
	b.WriteString(codec.Format(character))
	b.WriteByte('\n')

	if _, err := f.WriteString(b.String()); err != nil {
		return s.ioError("append", err)
	}
	return nil
}

func (s *Storage) ensureDir() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return s.ioError("create directory", err)
	}
	return nil
}

func (s *Storage) ioError(op string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", model.ErrStorageIO, op, s.path, err)
}
