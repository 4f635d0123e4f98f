// Package config loads application settings from defaults, an optional
// config.yaml and PICKLE_-prefixed environment variables, and validates the
// result before any component is built from it.
package config
