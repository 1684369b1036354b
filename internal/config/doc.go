// Package config loads, validates, and normalizes bibsync configuration
// from TOML files with sensible defaults for every value.
package config
