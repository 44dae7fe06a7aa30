package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrNoStations         = errors.New("no stations found in playlist")
	ErrPlaylistFetch      = errors.New("playlist fetch failed")
	ErrPlaylistMalformed  = errors.New("playlist is not valid extended M3U")
	ErrInputDeviceMissing = errors.New("input device not found")
	ErrNoInputSource      = errors.New("no input source available")
	ErrConfigNotFound     = errors.New("config file not found")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrPlayerStart        = errors.New("failed to start player")
	ErrTimeout            = errors.New("request timeout")
)

// RadioError wraps an error with a user-friendly suggestion.
type RadioError struct {
	Err        error
	Suggestion string
}

func (e *RadioError) Error() string {
	return e.Err.Error()
}

func (e *RadioError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &RadioError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's already a RadioError with suggestion
	var radioErr *RadioError
	if errors.As(err, &radioErr) && radioErr.Suggestion != "" {
		return radioErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	// Playlist errors
	if errors.Is(err, ErrNoStations) || strings.Contains(errStr, "no stations") {
		return "Check playlist_path in your config, or clear it to use the default remote playlist"
	}

	if errors.Is(err, ErrPlaylistMalformed) || strings.Contains(errStr, "extm3u") {
		return "The local playlist must start with an #EXTM3U header"
	}

	if errors.Is(err, ErrPlaylistFetch) || errors.Is(err, ErrTimeout) ||
		strings.Contains(errStr, "timeout") || strings.Contains(errStr, "connection refused") {
		return "Check your network connection, or set playlist_path to a local M3U file"
	}

	// Input errors
	if errors.Is(err, ErrInputDeviceMissing) || strings.Contains(errStr, "input device") {
		return "Check ir_device_name in your config against the devices listed in /proc/bus/input/devices"
	}

	if errors.Is(err, ErrNoInputSource) {
		return "Run from a terminal for keyboard control, or pass --fifo to read events from a named pipe"
	}

	// Player errors
	if errors.Is(err, ErrPlayerStart) || strings.Contains(errStr, "cvlc") {
		return "Make sure VLC is installed (apt install vlc-bin vlc-plugin-base)"
	}

	// Config errors
	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) ||
		strings.Contains(errStr, "config") {
		return "Run 'radioclick config init' to create a default configuration"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
