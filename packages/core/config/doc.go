// Package config handles configuration loading and management for pagespec.
//
// It provides functionality for:
//   - Loading configuration from .pagespec.config.json or .pagespec.yml files
//   - Default configuration values
//   - Merging overrides onto a base configuration
package config
