package corpus

import (
	"fmt"
	"os"
	"strconv"
)

// Config controls chunking and embedding batching at corpus build time.
// Chunk granularity is a configuration decision, not an algorithmic one.
type Config struct {
	// MaxChunkChars is the maximum chunk length in characters.
	MaxChunkChars int

	// OverlapChars is how many trailing characters of one chunk are
	// repeated at the start of the next.
	OverlapChars int

	// EmbedBatchSize is how many chunk texts are sent to the embedder
	// per call during a build.
	EmbedBatchSize int
}

// DefaultConfig returns the recommended chunking defaults.
func DefaultConfig() Config {
	return Config{
		MaxChunkChars:  1000,
		OverlapChars:   200,
		EmbedBatchSize: 64,
	}
}

// ConfigFromEnv returns DefaultConfig with RISKDRILL_CHUNK_SIZE and
// RISKDRILL_CHUNK_OVERLAP overrides applied.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("RISKDRILL_CHUNK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxChunkChars = n
		}
	}
	if v := os.Getenv("RISKDRILL_CHUNK_OVERLAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.OverlapChars = n
		}
	}
	return cfg
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.MaxChunkChars <= 0 {
		return fmt.Errorf("max chunk chars must be positive, got %d", c.MaxChunkChars)
	}
	if c.OverlapChars < 0 {
		return fmt.Errorf("overlap chars must be non-negative, got %d", c.OverlapChars)
	}
	if c.OverlapChars >= c.MaxChunkChars {
		return fmt.Errorf("overlap (%d) must be smaller than max chunk chars (%d)",
			c.OverlapChars, c.MaxChunkChars)
	}
	if c.EmbedBatchSize <= 0 {
		return fmt.Errorf("embed batch size must be positive, got %d", c.EmbedBatchSize)
	}
	return nil
}
