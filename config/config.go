// Package config loads runtime settings from a TOML file, environment overrides and defaults
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/oddball-pong/constants"
	"github.com/lixenwraith/oddball-pong/core"
)

// Sentinel errors, wrapped with the offending field by Validate
var (
	ErrInvalidInterval   = errors.New("interval must be positive")
	ErrInvalidSetSize    = errors.New("stimulus set size out of range")
	ErrInvalidVolume     = errors.New("volume must be within [0, 1]")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidColorMode  = errors.New("unknown color mode")
	ErrInvalidBackground = errors.New("invalid background color")
)

// MaxSetSize bounds the stimulus set so squares stay distinguishable on a small canvas
const MaxSetSize = 64

// Color modes accepted by Display.ColorMode
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Duration is a time.Duration written as a Go duration string ("10ms") in TOML
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Timing struct {
	UpdateInterval Duration `toml:"update_interval"`
	DrawInterval   Duration `toml:"draw_interval"`
}

// Input tunes key-hold emulation; terminals send no key release
type Input struct {
	// RepeatDelay holds a first press until the terminal's auto-repeat starts
	RepeatDelay Duration `toml:"repeat_delay"`
	// KeyHold holds an auto-repeated key between repeat events
	KeyHold Duration `toml:"key_hold"`
}

type Stimulus struct {
	Enabled bool `toml:"enabled"`
	SetSize int  `toml:"set_size"`
}

type Audio struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

type Display struct {
	ColorMode  string `toml:"color_mode"`
	Background string `toml:"background"` // #rrggbb
}

// Config is the complete runtime configuration
type Config struct {
	Timing   Timing   `toml:"timing"`
	Input    Input    `toml:"input"`
	Stimulus Stimulus `toml:"stimulus"`
	Audio    Audio    `toml:"audio"`
	Display  Display  `toml:"display"`

	// TrialLog is the msgpack trial stream path; empty disables logging
	TrialLog string `toml:"trial_log"`
	Debug    bool   `toml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Timing: Timing{
			UpdateInterval: Duration{constants.UpdateInterval},
			DrawInterval:   Duration{constants.DrawInterval},
		},
		Input: Input{
			RepeatDelay: Duration{constants.KeyRepeatDelay},
			KeyHold:     Duration{constants.KeyHold},
		},
		Stimulus: Stimulus{
			Enabled: true,
			SetSize: constants.DefaultSetSize,
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: constants.DefaultMasterVolume,
			SampleRate:   constants.DefaultSampleRate,
		},
		Display: Display{
			ColorMode:  ColorAuto,
			Background: core.RGBGrey.Hex(),
		},
	}
}

// Load decodes path over the defaults, applies environment overrides and validates
// An empty path or a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("load config %s: %w", path, err)
		default:
			for _, key := range md.Undecoded() {
				log.Printf("config: unknown key %q in %s", key.String(), path)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides audio settings from ODDBALL_* variables; malformed values are ignored
func (c *Config) applyEnv() {
	if enabled := os.Getenv("ODDBALL_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("ODDBALL_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = max(0, min(float64(val)/100.0, 1))
		}
	}

	if sampleRate := os.Getenv("ODDBALL_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.Audio.SampleRate = val
		}
	}
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	if c.Timing.UpdateInterval.Duration <= 0 {
		return fmt.Errorf("timing.update_interval %v: %w", c.Timing.UpdateInterval, ErrInvalidInterval)
	}
	if c.Timing.DrawInterval.Duration <= 0 {
		return fmt.Errorf("timing.draw_interval %v: %w", c.Timing.DrawInterval, ErrInvalidInterval)
	}
	if c.Input.RepeatDelay.Duration <= 0 {
		return fmt.Errorf("input.repeat_delay %v: %w", c.Input.RepeatDelay, ErrInvalidInterval)
	}
	if c.Input.KeyHold.Duration <= 0 {
		return fmt.Errorf("input.key_hold %v: %w", c.Input.KeyHold, ErrInvalidInterval)
	}
	if c.Stimulus.SetSize < 1 || c.Stimulus.SetSize > MaxSetSize {
		return fmt.Errorf("stimulus.set_size %d: %w", c.Stimulus.SetSize, ErrInvalidSetSize)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio.master_volume %g: %w", c.Audio.MasterVolume, ErrInvalidVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate %d: %w", c.Audio.SampleRate, ErrInvalidSampleRate)
	}
	switch c.Display.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("display.color_mode %q: %w", c.Display.ColorMode, ErrInvalidColorMode)
	}
	if _, err := c.BackgroundRGB(); err != nil {
		return err
	}
	return nil
}

// BackgroundRGB parses the configured background color
func (c *Config) BackgroundRGB() (core.RGB, error) {
	rgb, err := core.ParseHex(c.Display.Background)
	if err != nil {
		return core.RGB{}, fmt.Errorf("display.background: %w: %w", ErrInvalidBackground, err)
	}
	return rgb, nil
}

// Save writes c as TOML, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}
