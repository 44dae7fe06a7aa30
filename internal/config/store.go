package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Store is the persistence gateway for the config record. Reads and
// writes go through a raw key-value map so that keys this program does
// not know about survive every rewrite.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore creates a store for the config file at path.
func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Dir returns the directory holding the config file. Relative playlist
// paths are resolved against it.
func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}

// Load reads the config record, creating it with defaults when absent and
// backfilling any missing keys into an existing file. Environment
// overrides are applied to the returned value only, never written back.
// An unwritable storage medium is a fatal startup condition for the
// caller.
func (s *Store) Load() (*Config, error) {
	raw, err := s.ensure()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := remarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// SaveIndex persists the last played station index. Only last_index is
// mutated; every other key survives the rewrite.
func (s *Store) SaveIndex(index int) error {
	if err := s.Set("last_index", int64(index)); err != nil {
		return err
	}
	s.log.Debug().Int("last_index", index).Msg("saved station index")
	return nil
}

// Set updates a single key in the record. The record is re-read fresh so
// concurrent operator edits to other keys are not clobbered; only the
// given key is mutated before the whole record is written back.
func (s *Store) Set(key string, value interface{}) error {
	raw, err := s.readRaw()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	raw[key] = value

	if err := s.writeRaw(raw); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ensure creates the config file with defaults when missing, merges
// defaults for keys missing from an existing file, and returns the raw
// record.
func (s *Store) ensure() (map[string]interface{}, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		raw := defaultKeys()
		if err := s.writeRaw(raw); err != nil {
			return nil, fmt.Errorf("failed to create config file: %w", err)
		}
		s.log.Info().Str("path", s.path).Msg("created default config")
		return raw, nil
	}

	raw, err := s.readRaw()
	if err != nil {
		// An unparsable file is treated like the original's corrupt-file
		// path: keep nothing, rebuild from defaults.
		s.log.Warn().Str("path", s.path).Err(err).Msg("config unreadable, rewriting defaults")
		raw = map[string]interface{}{}
	}

	updated := false
	for k, v := range defaultKeys() {
		if _, ok := raw[k]; !ok {
			raw[k] = v
			updated = true
		}
	}
	if updated {
		if err := s.writeRaw(raw); err != nil {
			return nil, fmt.Errorf("failed to update config file: %w", err)
		}
	}

	return raw, nil
}

func (s *Store) readRaw() (map[string]interface{}, error) {
	raw := map[string]interface{}{}
	if _, err := toml.DecodeFile(s.path, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *Store) writeRaw(raw map[string]interface{}) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, _ = fmt.Fprintln(f, "# radioclick configuration")
	_, _ = fmt.Fprintln(f, "# https://github.com/theaetet/radioclick")
	_, _ = fmt.Fprintln(f, "")

	// The TOML encoder writes map keys in sorted order, which keeps
	// diffs readable after rewrites.
	encoder := toml.NewEncoder(f)
	encoder.Indent = ""
	return encoder.Encode(raw)
}

// remarshal converts a raw TOML map into a typed value.
func remarshal(raw map[string]interface{}, out *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(raw); err != nil {
		return err
	}
	_, err := toml.Decode(buf.String(), out)
	return err
}
