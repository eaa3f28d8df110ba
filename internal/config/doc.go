// Package config loads, normalizes, and validates trunk configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the TRUNK_LOG_LEVEL environment
// fallback. The Config type centralizes the knobs the CLI needs: the default
// line count, the highlight style used for sieve matches, the truncation notice,
// and diagnostic logging.
//
// Always obtain settings through this package so the command layer receives
// canonical colour names, log formats, and clear validation errors.
package config
