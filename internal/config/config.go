// Package config resolves the start-up settings of a drill from defaults,
// KUKU_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/kuku/internal/drill"
	"github.com/abhisek/kuku/internal/problemgen"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "KUKU_"

var (
	ErrInvalidSegment = errors.New("invalid segment")
	ErrInvalidSpeed   = errors.New("invalid speed")
	ErrInvalidMode    = errors.New("invalid display mode")
	ErrInvalidOrder   = errors.New("invalid order")
)

// Config holds raw start-up values. Mode, Order and Speed are kept as
// strings until Settings validates them, so flags and env share one parser.
type Config struct {
	Segment int    `env:"SEGMENT"`
	Mode    string `env:"MODE"`
	Order   string `env:"ORDER"`
	Speed   string `env:"SPEED"`
	Mute    bool   `env:"MUTE"`

	LogFile string `env:"LOG_FILE"`
	Debug   bool   `env:"DEBUG"`
}

// Default returns the configuration a fresh drill opens with.
func Default() Config {
	s := drill.DefaultSettings()
	return Config{
		Segment: s.Segment,
		Mode:    string(s.Mode),
		Order:   string(s.Order),
		Speed:   "1",
		Mute:    !s.Sound,
	}
}

// FromEnv overlays KUKU_* environment variables on Default. Unset variables
// keep their default.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Settings validates the config and converts it to drill settings.
func (c Config) Settings() (drill.Settings, error) {
	if !problemgen.ValidSegment(c.Segment) {
		return drill.Settings{}, fmt.Errorf("%w: %d (must be %d-%d)",
			ErrInvalidSegment, c.Segment, problemgen.MinSegment, problemgen.MaxSegment)
	}
	mode, err := drill.ParseDisplayMode(c.Mode)
	if err != nil {
		return drill.Settings{}, fmt.Errorf("%w: %w", ErrInvalidMode, err)
	}
	order, err := problemgen.ParseOrder(c.Order)
	if err != nil {
		return drill.Settings{}, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	speed, err := drill.ParseSpeed(c.Speed)
	if err != nil {
		return drill.Settings{}, fmt.Errorf("%w: %w", ErrInvalidSpeed, err)
	}
	return drill.Settings{
		Segment: c.Segment,
		Mode:    mode,
		Order:   order,
		Speed:   speed,
		Sound:   !c.Mute,
	}, nil
}

// Validate reports the first invalid field, if any.
func (c Config) Validate() error {
	_, err := c.Settings()
	return err
}
