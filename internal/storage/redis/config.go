package redis

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Key is the list holding the encoded result lines
	Key string

	// Pool settings
	PoolSize     int
	MinIdleConns int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		Key:          resultsKey(),
		PoolSize:     10,
		MinIdleConns: 2,
	}
}

func (c Config) key() string {
	if c.Key == "" {
		return resultsKey()
	}
	return c.Key
}
