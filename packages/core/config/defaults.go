package config

import (
	"slices"

	"github.com/abdul-hamid-achik/pagespec/packages/equation"
	"github.com/abdul-hamid-achik/pagespec/packages/repeat"
)

// DefaultMaxRepeats is the baseline repeat limit when a record sets none.
const DefaultMaxRepeats = 30

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		MaxNgram:            repeat.DefaultMaxN,
		MaxRepeats:          DefaultMaxRepeats,
		SimilarityThreshold: equation.DefaultThreshold,
		Delimiters:          slices.Clone(equation.DefaultDelimiters),
		RenderCommand:       nil,
		RenderTimeout:       10000, // 10 seconds
		RenderCacheTTL:      0,     // keep for the whole batch
		RenderRate:          0,
		RenderConcurrency:   0,
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.MaxNgram == defaults.MaxNgram &&
		c.MaxRepeats == defaults.MaxRepeats &&
		c.SimilarityThreshold == defaults.SimilarityThreshold &&
		slices.Equal(c.Delimiters, defaults.Delimiters) &&
		len(c.RenderCommand) == 0 &&
		c.RenderTimeout == defaults.RenderTimeout &&
		c.RenderCacheTTL == defaults.RenderCacheTTL &&
		c.RenderRate == defaults.RenderRate &&
		c.RenderConcurrency == defaults.RenderConcurrency
}
