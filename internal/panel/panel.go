// Package panel models the parameter panel: which settings exist, how they
// are shown and how a keystroke or wheel notch changes them.
package panel

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/iburimskiy/thorn/internal/config"
)

// Kind tells the front end how to present and edit a row.
type Kind int

const (
	KindHeading Kind = iota
	KindNumber
	KindText
)

// Row is one line of the panel.
type Row struct {
	Label string
	Kind  Kind
	// Reseed marks settings whose change starts a new randomized
	// generation right away. Other changes wait for Generate.
	Reseed bool

	value func(c *config.Config) string
	nudge func(c *config.Config, steps int)
	text  func(c *config.Config) *string
}

// Value formats the row's current setting.
func (r Row) Value(c *config.Config) string {
	if r.value == nil {
		return ""
	}
	return r.value(c)
}

// Nudge moves a numeric setting by steps increments and reports whether
// the value changed.
func (r Row) Nudge(c *config.Config, steps int) bool {
	if r.nudge == nil || steps == 0 {
		return false
	}
	before := r.Value(c)
	r.nudge(c, steps)
	return r.Value(c) != before
}

// Type appends printable runes to a text setting.
func (r Row) Type(c *config.Config, runes []rune) bool {
	if r.text == nil || len(runes) == 0 {
		return false
	}
	s := r.text(c)
	before := *s
	for _, ch := range runes {
		if ch >= ' ' && ch != utf8.RuneError && ch < utf8.RuneSelf {
			*s += string(ch)
		}
	}
	return *s != before
}

// Backspace removes the last symbol of a text setting.
func (r Row) Backspace(c *config.Config) bool {
	if r.text == nil {
		return false
	}
	s := r.text(c)
	if len(*s) == 0 {
		return false
	}
	*s = (*s)[:len(*s)-1]
	return true
}

func heading(label string) Row {
	return Row{Label: label, Kind: KindHeading}
}

func intRow(label string, field func(*config.Config) *int, step, lo, hi int, reseed bool) Row {
	return Row{
		Label:  label,
		Kind:   KindNumber,
		Reseed: reseed,
		value:  func(c *config.Config) string { return strconv.Itoa(*field(c)) },
		nudge: func(c *config.Config, steps int) {
			v := field(c)
			*v = clampInt(*v+steps*step, lo, hi)
		},
	}
}

func floatRow(label string, field func(*config.Config) *float64, step, lo, hi float64, prec int) Row {
	scale := math.Pow(10, float64(prec))
	return Row{
		Label: label,
		Kind:  KindNumber,
		value: func(c *config.Config) string { return strconv.FormatFloat(*field(c), 'f', prec, 64) },
		nudge: func(c *config.Config, steps int) {
			v := field(c)
			next := math.Round((*v+float64(steps)*step)*scale) / scale
			*v = math.Max(lo, math.Min(hi, next))
		},
	}
}

func channelRow(label string, field func(*config.Config) *uint8) Row {
	return Row{
		Label: label,
		Kind:  KindNumber,
		value: func(c *config.Config) string { return strconv.Itoa(int(*field(c))) },
		nudge: func(c *config.Config, steps int) {
			v := field(c)
			*v = uint8(clampInt(int(*v)+steps, 0, 255))
		},
	}
}

func textRow(label string, field func(*config.Config) *string) Row {
	return Row{
		Label: label,
		Kind:  KindText,
		value: func(c *config.Config) string { return *field(c) },
		text:  field,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var unbounded = math.Inf(1)

// Rows returns the panel layout in display order.
func Rows() []Row {
	return []Row{
		heading("Image Settings"),
		intRow("Width", func(c *config.Config) *int { return &c.Width }, 10, 100, 8000, true),
		intRow("Height", func(c *config.Config) *int { return &c.Height }, 10, 100, 8000, true),

		heading("Generation Settings"),
		intRow("Iterations", func(c *config.Config) *int { return &c.Iterations }, 1, 1, config.MaxIterations, true),
		floatRow("Length", func(c *config.Config) *float64 { return &c.Length }, 10, -unbounded, unbounded, 0),
		floatRow("Step", func(c *config.Config) *float64 { return &c.Step }, 10, -unbounded, unbounded, 0),
		textRow("rule0a", func(c *config.Config) *string { return &c.Rule0A }),
		textRow("rule0b", func(c *config.Config) *string { return &c.Rule0B }),
		textRow("rule1a", func(c *config.Config) *string { return &c.Rule1A }),
		textRow("rule1b", func(c *config.Config) *string { return &c.Rule1B }),

		heading("Color Settings"),
		channelRow("Background R", func(c *config.Config) *uint8 { return &c.Background[0] }),
		channelRow("Background G", func(c *config.Config) *uint8 { return &c.Background[1] }),
		channelRow("Background B", func(c *config.Config) *uint8 { return &c.Background[2] }),
		channelRow("Flower R", func(c *config.Config) *uint8 { return &c.Flower[0] }),
		channelRow("Flower G", func(c *config.Config) *uint8 { return &c.Flower[1] }),
		channelRow("Flower B", func(c *config.Config) *uint8 { return &c.Flower[2] }),
		floatRow("Red_Drift", func(c *config.Config) *float64 { return &c.RedDrift }, 1, 0, 255, 0),
		floatRow("Green_Drift", func(c *config.Config) *float64 { return &c.GreenDrift }, 1, 0, 255, 0),
		floatRow("Blue_Drift", func(c *config.Config) *float64 { return &c.BlueDrift }, 1, 0, 255, 0),
		floatRow("Factor1", func(c *config.Config) *float64 { return &c.Factor1 }, 0.01, 0, 1, 2),
		floatRow("Factor2", func(c *config.Config) *float64 { return &c.Factor2 }, 0.01, 0, 1, 2),
		floatRow("Opacity", func(c *config.Config) *float64 { return &c.Opacity }, 1, 0, 255, 0),
		floatRow("Opacity_Drift", func(c *config.Config) *float64 { return &c.OpacityDrift }, 1, 0, unbounded, 0),
	}
}
