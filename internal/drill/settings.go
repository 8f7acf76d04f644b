package drill

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/kuku/internal/problemgen"
)

// DisplayMode selects between learner-driven and timer-driven flashing.
type DisplayMode string

const (
	ModeManual DisplayMode = "manual"
	ModeAuto   DisplayMode = "auto"
)

// Valid reports whether m is a known mode.
func (m DisplayMode) Valid() bool {
	return m == ModeManual || m == ModeAuto
}

// Label returns the Japanese name shown in the settings panel.
func (m DisplayMode) Label() string {
	if m == ModeAuto {
		return "自動フラッシュ"
	}
	return "練習枠（手動）"
}

// ParseDisplayMode parses "manual" or "auto".
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual", "practice":
		return ModeManual, nil
	case "auto", "flash":
		return ModeAuto, nil
	default:
		return "", fmt.Errorf("unknown display mode %q: must be manual or auto", s)
	}
}

// Speed is the auto-play step length in seconds.
type Speed float64

// Speeds lists the selectable speeds in display order.
var Speeds = []Speed{0.5, 1, 2, 3}

// DefaultSpeed is used for unknown speed values.
const DefaultSpeed Speed = 1

// Valid reports whether s is one of Speeds.
func (s Speed) Valid() bool {
	for _, v := range Speeds {
		if v == s {
			return true
		}
	}
	return false
}

// Interval returns the delay between two auto-play steps. Unknown speeds
// fall back to one second.
func (s Speed) Interval() time.Duration {
	if !s.Valid() {
		s = DefaultSpeed
	}
	return time.Duration(float64(s) * float64(time.Second))
}

// Next returns the speed after s, wrapping around.
func (s Speed) Next() Speed {
	for i, v := range Speeds {
		if v == s {
			return Speeds[(i+1)%len(Speeds)]
		}
	}
	return DefaultSpeed
}

// Label renders the speed as shown in the settings panel, e.g. "0.5秒".
func (s Speed) Label() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64) + "秒"
}

// ParseSpeed parses a speed in seconds ("0.5", "1", "2s").
func ParseSpeed(str string) (Speed, error) {
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(str), "s"), 64)
	if err != nil {
		return 0, fmt.Errorf("parse speed %q: %w", str, err)
	}
	s := Speed(f)
	if !s.Valid() {
		return 0, fmt.Errorf("unsupported speed %q: must be one of 0.5, 1, 2, 3", str)
	}
	return s, nil
}

// Settings is the learner-facing configuration of a drill.
type Settings struct {
	Segment int
	Mode    DisplayMode
	Order   problemgen.Order
	Speed   Speed
	Sound   bool
}

// DefaultSettings matches the state a fresh drill opens in.
func DefaultSettings() Settings {
	return Settings{
		Segment: 1,
		Mode:    ModeManual,
		Order:   problemgen.OrderAscending,
		Speed:   DefaultSpeed,
		Sound:   true,
	}
}

// normalize replaces invalid fields with their defaults.
func (s Settings) normalize() Settings {
	def := DefaultSettings()
	if !problemgen.ValidSegment(s.Segment) {
		s.Segment = def.Segment
	}
	if !s.Mode.Valid() {
		s.Mode = def.Mode
	}
	if !s.Order.Valid() {
		s.Order = def.Order
	}
	if !s.Speed.Valid() {
		s.Speed = def.Speed
	}
	return s
}
