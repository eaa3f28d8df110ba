package config

const (
	defaultTailLines        = 5
	defaultTruncationNotice = "***FILE TRUNCATED: READING FROM NEW EOF***"
	defaultHighlightColor   = "red"
	defaultHighlightMode    = "auto"
	defaultLogFormat        = "console"
	defaultLogLevel         = "warn"
	defaultConfigPath       = "~/.config/trunk/config.toml"
	projectConfigName       = "trunk.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tail: Tail{
			Lines: defaultTailLines,
		},
		Follow: Follow{
			TruncationNotice: defaultTruncationNotice,
		},
		Highlight: Highlight{
			Color: defaultHighlightColor,
			Mode:  defaultHighlightMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
