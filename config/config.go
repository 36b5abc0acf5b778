// Package config loads drumsynth settings: defaults, then an optional TOML
// file, then DRUMSYNTH_* environment variables. Command-line flags are applied
// last by the binary.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/fm-drums/constant"
	"github.com/lixenwraith/fm-drums/dsp"
	"github.com/lixenwraith/fm-drums/voice"
)

var ErrInvalidConfig = errors.New("invalid config")

// Backend names accepted by the audio output
const (
	BackendOto  = "oto"
	BackendBeep = "beep"
	BackendNull = "null"
)

// Config holds runtime settings
type Config struct {
	Backend      string  `toml:"backend"`
	BufferFrames int     `toml:"buffer_frames"`
	MasterVolume float64 `toml:"master_volume"`
	ParamFile    string  `toml:"param_file"`
	Debug        bool    `toml:"debug"`
	// DecayModes maps voice keys to "exp" or "iterative"
	DecayModes map[string]string `toml:"decay_modes"`
}

// Default returns built-in settings
func Default() *Config {
	return &Config{
		Backend:      BackendOto,
		BufferFrames: constant.AudioBufferFrames,
		MasterVolume: 0.8,
		ParamFile:    constant.DefaultParamFile,
		DecayModes:   map[string]string{},
	}
}

// Load reads path over the defaults; an empty or missing path yields defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if cfg.DecayModes == nil {
		cfg.DecayModes = map[string]string{}
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables; unparsable values are ignored
func (c *Config) ApplyEnv() {
	if backend := os.Getenv("DRUMSYNTH_BACKEND"); backend != "" {
		c.Backend = backend
	}

	if frames := os.Getenv("DRUMSYNTH_BUFFER_FRAMES"); frames != "" {
		if val, err := strconv.Atoi(frames); err == nil && val > 0 {
			c.BufferFrames = val
		}
	}

	// Volume as 0-100
	if volume := os.Getenv("DRUMSYNTH_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if file := os.Getenv("DRUMSYNTH_PARAM_FILE"); file != "" {
		c.ParamFile = file
	}

	if debug := os.Getenv("DRUMSYNTH_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			c.Debug = val
		}
	}

	// Decay modes as JSON, e.g. {"kick":"iterative"}
	if modes := os.Getenv("DRUMSYNTH_DECAY_MODES"); modes != "" {
		var m map[string]string
		if err := json.Unmarshal([]byte(modes), &m); err == nil {
			for k, v := range m {
				c.DecayModes[k] = v
			}
		}
	}
}

// Validate checks every field and returns all problems joined
func (c *Config) Validate() error {
	var errs []error

	switch c.Backend {
	case BackendOto, BackendBeep, BackendNull:
	default:
		errs = append(errs, fmt.Errorf("backend %q", c.Backend))
	}
	if c.BufferFrames <= 0 || c.BufferFrames > 8192 {
		errs = append(errs, fmt.Errorf("buffer_frames %d", c.BufferFrames))
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("master_volume %g", c.MasterVolume))
	}
	if c.ParamFile == "" {
		errs = append(errs, errors.New("param_file empty"))
	}
	for key, mode := range c.DecayModes {
		if _, ok := voice.KindFromKey(key); !ok {
			errs = append(errs, fmt.Errorf("decay_modes: unknown voice %q", key))
		}
		if _, err := dsp.ParseDecayMode(mode); err != nil {
			errs = append(errs, fmt.Errorf("decay_modes.%s: %v", key, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// ParsedDecayModes returns the decay mode overrides; call after Validate
func (c *Config) ParsedDecayModes() map[string]dsp.DecayMode {
	out := make(map[string]dsp.DecayMode, len(c.DecayModes))
	for key, mode := range c.DecayModes {
		if m, err := dsp.ParseDecayMode(mode); err == nil {
			out[key] = m
		}
	}
	return out
}
