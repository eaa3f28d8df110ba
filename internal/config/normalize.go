package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeFollow()
	c.normalizeHighlight()
	c.normalizeLogging()
}

func (c *Config) normalizeFollow() {
	if strings.TrimSpace(c.Follow.TruncationNotice) == "" {
		c.Follow.TruncationNotice = defaultTruncationNotice
	}
}

func (c *Config) normalizeHighlight() {
	c.Highlight.Color = strings.ToLower(strings.TrimSpace(c.Highlight.Color))
	if c.Highlight.Color == "" {
		c.Highlight.Color = defaultHighlightColor
	}
	c.Highlight.Mode = strings.ToLower(strings.TrimSpace(c.Highlight.Mode))
	if c.Highlight.Mode == "" {
		c.Highlight.Mode = defaultHighlightMode
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv("TRUNK_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
