// Package config loads optional YAML configuration for the CLI. Flags win
// over local files, local files win over the global one.
package config
