// Package config loads, normalizes, and validates booklint configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from the conventional location or an
// explicit override. The Config type centralizes the glossary target path,
// the checker scan root and thresholds, and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
