package config

import (
	"fmt"
	"slices"
)

// OutputFormats lists the accepted values of the output option.
var OutputFormats = []string{"auto", "text", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (expected one of auto, text, json)", c.OutputFormat)
	}
	if c.Verbose < 0 {
		return fmt.Errorf("verbose must not be negative, got %d", c.Verbose)
	}
	return nil
}
