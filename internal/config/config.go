// Package config owns the durable configuration record: loading it with
// default backfill, environment overrides, the key-preserving index save,
// and change notification via a file watcher.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// FindConfigFile returns the config file to use.
// Search order: ~/.radioclickrc, $XDG_CONFIG_HOME/radioclick/config.toml,
// ~/.config/radioclick/config.toml. When none exists yet, the XDG path is
// returned so the store creates the file there.
func FindConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}

	legacy := filepath.Join(home, ".radioclickrc")
	if _, err := os.Stat(legacy); err == nil {
		return legacy
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "radioclick", "config.toml")
}

// applyEnvOverrides applies environment variable overrides to the config.
// A .env file next to the process is honored first (useful during
// development on a non-Pi machine).
func applyEnvOverrides(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("RADIO_PLAYLIST_PATH"); v != "" {
		cfg.PlaylistPath = v
	}
	if v := os.Getenv("RADIO_IR_DEVICE_NAME"); v != "" {
		cfg.IRDeviceName = v
	}
	if v := os.Getenv("RADIO_BUTTON_PIN"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.ButtonPin = i
		}
	}
	if v := os.Getenv("RADIO_VOLUME"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Volume = i
		}
	}
	if v := os.Getenv("RADIO_TTS_VOICE"); v != "" {
		cfg.TTSVoice = v
	}
	if v := os.Getenv("RADIO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
