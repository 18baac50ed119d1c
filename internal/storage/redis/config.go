package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Roster names the list holding the characters, so several rosters can share a server
	Roster string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// RosterTTL expires the roster after its last write; zero keeps it forever
	RosterTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		Roster:       "default",
		PoolSize:     10,
		MinIdleConns: 2,
		RosterTTL:    0,
	}
}
