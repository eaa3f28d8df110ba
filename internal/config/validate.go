package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var validColors = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTail(); err != nil {
		return err
	}
	if err := c.validateHighlight(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTail() error {
	if c.Tail.Lines < 0 {
		return errors.New("tail.lines must be zero or positive")
	}
	return nil
}

func (c *Config) validateHighlight() error {
	if !slices.Contains(validColors, c.Highlight.Color) {
		return fmt.Errorf("highlight.color: unsupported value %q (expected one of %s)", c.Highlight.Color, strings.Join(validColors, ", "))
	}
	switch c.Highlight.Mode {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("highlight.mode: unsupported value %q (expected auto, always, or never)", c.Highlight.Mode)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
