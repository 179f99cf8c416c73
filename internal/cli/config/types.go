// Package config provides configuration management for the oids CLI.
//
// Configuration is layered with koanf. Precedence, highest first:
//
//  1. Command-line flags that were explicitly set
//  2. OIDS_* environment variables
//  3. The config file (oids.yaml, oids.yml, or --config)
//  4. Built-in defaults
package config

// Config holds all CLI configuration options.
type Config struct {
	Verbose      int        `koanf:"verbose"`
	OutputFormat string     `koanf:"output"`
	Lint         LintConfig `koanf:"lint"`
}

// LintConfig holds options for the lint command.
type LintConfig struct {
	// ExitZero reports lint failures without a failing exit status.
	ExitZero bool `koanf:"exit_zero"`
}

// Default configuration values.
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=text without styling
	DefaultVerbosity = 0
	EnvPrefix        = "OIDS_"
)

// ConfigFileNames are the config files searched in the working directory.
var ConfigFileNames = []string{"oids.yaml", "oids.yml"}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Verbose:      DefaultVerbosity,
		OutputFormat: DefaultOutput,
	}
}
