// Package config provides configuration management for the leapbasic CLI.
//
// Values are layered, highest precedence first: explicitly set flags,
// LEAPBASIC_* environment variables, the leapbasic.yaml config file and
// built-in defaults.
package config

// Config holds all CLI configuration options.
type Config struct {
	Prompt      string `koanf:"prompt"`
	HistoryFile string `koanf:"history_file"`
	Color       string `koanf:"color"`
	LogLevel    string `koanf:"log_level"`
	Verbose     bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultPrompt   = "] "
	DefaultColor    = ColorAuto
	DefaultLogLevel = "warn"
)

// Color modes for diagnostics.
const (
	ColorAuto   = "auto"   // colour when stderr is a terminal
	ColorAlways = "always" // force ANSI colour
	ColorNever  = "never"  // plain text
)

// configFileNames are searched, in order, when no --config is given.
var configFileNames = []string{"leapbasic.yaml", "leapbasic.yml"}

// Defaults returns a Config populated with default values.
func Defaults() *Config {
	return &Config{
		Prompt:   DefaultPrompt,
		Color:    DefaultColor,
		LogLevel: DefaultLogLevel,
	}
}
