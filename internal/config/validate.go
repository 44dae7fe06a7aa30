package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Volume < 0 || c.Volume > 100 {
		errs = append(errs, errors.New("volume must be between 0 and 100"))
	}
	if c.ButtonPin < 0 {
		errs = append(errs, errors.New("button_pin must be non-negative"))
	}
	if c.LastIndex < 0 {
		errs = append(errs, errors.New("last_index must be non-negative"))
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		errs = append(errs, fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", c.LogLevel))
	}

	return errors.Join(errs...)
}
