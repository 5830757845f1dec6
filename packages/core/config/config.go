package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/pagespec/packages/equation"
)

// Config represents the pagespec evaluation settings
type Config struct {
	MaxNgram            int                  `json:"maxNgram,omitempty" yaml:"maxNgram,omitempty"`                       // longest n-gram scanned by the baseline check
	MaxRepeats          int                  `json:"maxRepeats,omitempty" yaml:"maxRepeats,omitempty"`                   // default for baseline assertions
	SimilarityThreshold float64              `json:"similarityThreshold,omitempty" yaml:"similarityThreshold,omitempty"` // rendered equation match threshold
	Delimiters          []equation.Delimiter `json:"delimiters,omitempty" yaml:"delimiters,omitempty"`                   // math delimiters in priority order
	RenderCommand       []string             `json:"renderCommand,omitempty" yaml:"renderCommand,omitempty"`             // external typesetting command
	RenderTimeout       int                  `json:"renderTimeout,omitempty" yaml:"renderTimeout,omitempty"`             // milliseconds
	RenderCacheTTL      int                  `json:"renderCacheTTL,omitempty" yaml:"renderCacheTTL,omitempty"`           // milliseconds
	RenderRate          float64              `json:"renderRate,omitempty" yaml:"renderRate,omitempty"`                   // render starts per second, 0 for unlimited
	RenderConcurrency   int                  `json:"renderConcurrency,omitempty" yaml:"renderConcurrency,omitempty"`     // renders in flight, 0 for unlimited

	mu       sync.Mutex
	renderer equation.Renderer
}

// GetRenderTimeout returns the render timeout as a duration
func (c *Config) GetRenderTimeout() time.Duration {
	return time.Duration(c.RenderTimeout) * time.Millisecond
}

// GetRenderCacheTTL returns the render cache TTL as a duration
func (c *Config) GetRenderCacheTTL() time.Duration {
	return time.Duration(c.RenderCacheTTL) * time.Millisecond
}

// Renderer returns the configured equation renderer: the render command,
// throttled, behind a cache so cached expressions skip the throttle. It is
// built on first use and shared by every later caller, so all assertions
// built from one Config share the cache and the render limits. Render
// fields changed after the first call are ignored. It returns nil when no
// render command is configured.
func (c *Config) Renderer() equation.Renderer {
	if len(c.RenderCommand) == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.renderer == nil {
		render := equation.ExecRenderer(c.RenderCommand, c.GetRenderTimeout())
		render = equation.Throttle(render, c.RenderRate, c.RenderConcurrency)
		c.renderer = equation.NewCachedRenderer(render, c.GetRenderCacheTTL()).Render
	}
	return c.renderer
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".pagespec.config.json",
	"pagespec.config.json",
	".pagespec.yml",
	".pagespec.yaml",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search for config file in current directory
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data, err = ToJSON(data, FormatOf(path))
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := c.clone()

	if other.MaxNgram > 0 {
		result.MaxNgram = other.MaxNgram
	}
	if other.MaxRepeats > 0 {
		result.MaxRepeats = other.MaxRepeats
	}
	if other.SimilarityThreshold > 0 {
		result.SimilarityThreshold = other.SimilarityThreshold
	}
	if other.RenderTimeout > 0 {
		result.RenderTimeout = other.RenderTimeout
	}
	if other.RenderCacheTTL > 0 {
		result.RenderCacheTTL = other.RenderCacheTTL
	}
	if other.RenderRate > 0 {
		result.RenderRate = other.RenderRate
	}
	if other.RenderConcurrency > 0 {
		result.RenderConcurrency = other.RenderConcurrency
	}

	if len(other.Delimiters) > 0 {
		result.Delimiters = other.Delimiters
	}
	if len(other.RenderCommand) > 0 {
		result.RenderCommand = other.RenderCommand
	}

	return result
}

// clone copies the settings without the built renderer.
func (c *Config) clone() *Config {
	return &Config{
		MaxNgram:            c.MaxNgram,
		MaxRepeats:          c.MaxRepeats,
		SimilarityThreshold: c.SimilarityThreshold,
		Delimiters:          c.Delimiters,
		RenderCommand:       c.RenderCommand,
		RenderTimeout:       c.RenderTimeout,
		RenderCacheTTL:      c.RenderCacheTTL,
		RenderRate:          c.RenderRate,
		RenderConcurrency:   c.RenderConcurrency,
	}
}

// SaveConfig saves the configuration to a file, as YAML when the path has a
// YAML extension and as JSON otherwise
func (c *Config) SaveConfig(path string) error {
	var data []byte
	var err error
	if FormatOf(path) == FormatYAML {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
