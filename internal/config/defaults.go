package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		PlaylistPath: "",
		IRDeviceName: "gpio_ir_recv",
		ButtonPin:    27,
		Volume:       80,
		TTSVoice:     "en+f1",
		LastIndex:    0,
		LogLevel:     "info",
	}
}

// defaultKeys returns the default record as a raw key-value map. The
// store merges these into an existing file key by key, so a key an
// operator removed comes back while keys they added stay untouched.
func defaultKeys() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"playlist_path":  d.PlaylistPath,
		"ir_device_name": d.IRDeviceName,
		"button_pin":     int64(d.ButtonPin),
		"volume":         int64(d.Volume),
		"tts_voice":      d.TTSVoice,
		"last_index":     int64(d.LastIndex),
		"log_level":      d.LogLevel,
	}
}
