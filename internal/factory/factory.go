package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/charroster/internal/services/roster"
	"github.com/mcoot/charroster/internal/storage"
	"github.com/mcoot/charroster/internal/storage/file"
	"github.com/mcoot/charroster/internal/storage/memory"
	redisstorage "github.com/mcoot/charroster/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// DefaultFilePath is the roster file used when none is configured
const DefaultFilePath = "data/input.csv"

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	Logger *slog.Logger

	// Services
	RosterService *roster.Service

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("file", "memory" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// FilePath is the roster file for the file backend
	// If empty, defaults to DefaultFilePath
	FilePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	var store storage.Storage
	var closers []io.Closer

	switch storageType {
	case StorageTypeFile:
		path := cfg.FilePath
		if path == "" {
			path = DefaultFilePath
		}
		store = file.New(path)
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, errors.New("invalid StorageType: must be 'file', 'memory' or 'redis'")
	}

	logger.Debug("storage configured", slog.String("type", storageType))

	app := NewWithStorage(store, logger)
	app.closers = closers
	return app, nil
}

// NewWithStorage creates an App around an existing storage (useful for testing)
func NewWithStorage(store storage.Storage, logger *slog.Logger) *App {
	return &App{
		Storage:       store,
		Logger:        logger,
		RosterService: roster.New(store, logger),
	}
}

// Close releases backend connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
