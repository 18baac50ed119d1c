package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/charroster/internal/codec"
	"github.com/mcoot/charroster/internal/model"
	"github.com/mcoot/charroster/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// The roster is a LIST of lines in the same text form as the roster file,
// without the header.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, ioError("ping", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) key() string {
	return rosterKey(s.cfg.Roster)
}

func (s *Storage) ReadAll(ctx context.Context) ([]*model.Character, error) {
	lines, err := s.client.LRange(ctx, s.key(), 0, -1).Result()
	if err != nil {
		return nil, ioError("read", err)
	}
	return storage.DecodeLines(lines)
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
	key := s.key()

	// Replace the list atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(characters) > 0 {
		pipe.RPush(ctx, key, toValues(storage.EncodeLines(characters))...)
		s.expire(ctx, pipe, key)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return ioError("write", err)
	}
	return nil
}

func (s *Storage) Append(ctx context.Context, character *model.Character) error {
	key := s.key()

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, codec.Format(character))
	s.expire(ctx, pipe, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return ioError("append", err)
	}
	return nil
}

func (s *Storage) expire(ctx context.Context, pipe redis.Pipeliner, key string) {
	if s.cfg.RosterTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.RosterTTL)
	}
}

func toValues(lines []string) []interface{} {
	values := make([]interface{}, len(lines))
	for i, line := range lines {
		values[i] = line
	}
	return values
}

func ioError(op string, err error) error {
	return fmt.Errorf("%w: redis %s: %w", model.ErrStorageIO, op, err)
}
