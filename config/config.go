// Package config loads the launcher settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/plus3/scrollpack/apps/quotes"
	"github.com/plus3/scrollpack/apps/weather"
	"github.com/plus3/scrollpack/input"
	"github.com/plus3/scrollpack/launcher"
	"github.com/plus3/scrollpack/tetris"
)

// App names accepted in the apps list.
const (
	AppWeather = "weather"
	AppTetris  = "tetris"
	AppQuotes  = "quotes"
)

type Launcher struct {
	Tick        time.Duration `yaml:"tick"`
	DoubleClick time.Duration `yaml:"double_click"`
}

type Config struct {
	Launcher Launcher       `yaml:"launcher"`
	Tetris   tetris.Timing  `yaml:"tetris"`
	Quotes   quotes.Config  `yaml:"quotes"`
	Weather  weather.Config `yaml:"weather"`
	Apps     []string       `yaml:"apps"`
}

func Default() Config {
	return Config{
		Launcher: Launcher{
			Tick:        launcher.DefaultInterval,
			DoubleClick: input.DefaultDoubleClick,
		},
		Tetris:  tetris.DefaultTiming(),
		Quotes:  quotes.DefaultConfig(),
		Weather: weather.DefaultConfig(),
		Apps:    []string{AppWeather, AppTetris, AppQuotes},
	}
}

// Load reads path on top of the defaults. An empty path returns the
// defaults. A missing file returns the defaults together with an error
// wrapping os.ErrNotExist, so callers may log it and carry on.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.decode(bytes.NewReader(data)); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads YAML from r on top of the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return c.Validate()
}

var ErrInvalid = errors.New("invalid value")

// Validate checks that every duration is positive and the app list is
// usable.
func (c *Config) Validate() error {
	durations := []struct {
		name  string
		value time.Duration
	}{
		{"launcher.tick", c.Launcher.Tick},
		{"launcher.double_click", c.Launcher.DoubleClick},
		{"tetris.gravity", c.Tetris.Gravity},
		{"tetris.gravity_floor", c.Tetris.GravityFloor},
		{"tetris.soft_drop", c.Tetris.SoftDrop},
		{"tetris.fill_step", c.Tetris.FillStep},
		{"tetris.clear_step", c.Tetris.ClearStep},
		{"quotes.scroll", c.Quotes.Scroll},
		{"weather.refresh", c.Weather.Refresh},
		{"weather.retry", c.Weather.Retry},
		{"weather.timeout", c.Weather.Timeout},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalid, d.name, d.value)
		}
	}
	if c.Tetris.GravityStep < 0 {
		return fmt.Errorf("%w: tetris.gravity_step must not be negative", ErrInvalid)
	}
	if c.Quotes.StartDelay < 0 {
		return fmt.Errorf("%w: quotes.start_delay must not be negative", ErrInvalid)
	}
	if c.Tetris.GravityFloor > c.Tetris.Gravity {
		return fmt.Errorf("%w: tetris.gravity_floor %s is above tetris.gravity %s", ErrInvalid, c.Tetris.GravityFloor, c.Tetris.Gravity)
	}
	if (c.Weather.Latitude == nil) != (c.Weather.Longitude == nil) {
		return fmt.Errorf("%w: weather.latitude and weather.longitude go together", ErrInvalid)
	}

	if len(c.Apps) == 0 {
		return fmt.Errorf("%w: apps is empty", ErrInvalid)
	}
	seen := map[string]bool{}
	for _, name := range c.Apps {
		switch name {
		case AppWeather, AppTetris, AppQuotes:
		default:
			return fmt.Errorf("%w: unknown app %q", ErrInvalid, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: app %q listed twice", ErrInvalid, name)
		}
		seen[name] = true
	}
	return nil
}
