package config

// Config is the durable configuration record. It is a flat key-value
// record on disk; operators may add their own keys, which are preserved
// across rewrites.
type Config struct {
	// PlaylistPath is a local M3U path or remote URL. Empty selects the
	// built-in default remote playlist.
	PlaylistPath string `toml:"playlist_path"`
	// IRDeviceName is the kernel input-device name of the IR receiver.
	IRDeviceName string `toml:"ir_device_name"`
	// ButtonPin is the GPIO pin of the physical station button.
	ButtonPin int `toml:"button_pin"`
	// Volume is the startup mixer volume in percent (0-100).
	Volume int `toml:"volume"`
	// TTSVoice is the espeak voice used for station announcements.
	TTSVoice string `toml:"tts_voice"`
	// LastIndex is the last played station index, persisted on every
	// station change.
	LastIndex int `toml:"last_index"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}
