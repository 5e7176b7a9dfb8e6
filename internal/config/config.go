package config

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/thorn/internal/lsystem"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	LogTailSize = 8

	// Panel layout
	PanelX        = 12
	PanelY        = 28
	PanelWidth    = 300
	PanelRowH     = 18
	ButtonWidth   = 92
	ButtonHeight  = 26
	ButtonSpacing = 8

	// Generation guard rails
	DefaultMaxSentence = 1 << 20
	MaxIterations      = 10
)

var ErrInvalid = errors.New("invalid configuration")

// RGB is an 8-bit color with no alpha.
type RGB [3]uint8

// Config is the user-editable parameter set. The pipeline reads a copy of
// it per generation and never mutates it.
type Config struct {
	// Image Settings
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Density float64 `json:"density"`

	// Generation Settings
	Iterations int     `json:"iterations"`
	Length     float64 `json:"length"`
	Step       float64 `json:"step"`
	Factor1    float64 `json:"factor1"`
	Factor2    float64 `json:"factor2"`
	Rule0A     string  `json:"rule0a"`
	Rule0B     string  `json:"rule0b"`
	Rule1A     string  `json:"rule1a"`
	Rule1B     string  `json:"rule1b"`

	// Color Settings
	Background   RGB     `json:"background"`
	Flower       RGB     `json:"flower"`
	RedDrift     float64 `json:"red_drift"`
	GreenDrift   float64 `json:"green_drift"`
	BlueDrift    float64 `json:"blue_drift"`
	Opacity      float64 `json:"opacity"`
	OpacityDrift float64 `json:"opacity_drift"`

	// MaxSentence caps the length of any generated sentence; 0 disables it.
	MaxSentence int  `json:"max_sentence"`
	Audio       bool `json:"audio"`
}

// Default returns the stock thorn settings.
func Default() Config {
	return Config{
		Width:        WindowWidth,
		Height:       WindowHeight,
		Density:      2,
		Iterations:   3,
		Length:       400,
		Step:         180,
		Factor1:      0.85,
		Factor2:      0.8,
		Rule0A:       "F",
		Rule0B:       "Go[-F-]S[+G+F][+F-]S[+G+F]",
		Rule1A:       "G",
		Rule1B:       "G[+F-]G[-F++]S",
		Background:   RGB{10, 20, 14},
		Flower:       RGB{57, 181, 224},
		RedDrift:     50,
		GreenDrift:   70,
		BlueDrift:    50,
		Opacity:      170,
		OpacityDrift: 50,
		MaxSentence:  DefaultMaxSentence,
		Audio:        true,
	}
}

// Rules returns the two rule pairs in panel order.
func (c Config) Rules() []lsystem.Rule {
	return []lsystem.Rule{
		{Trigger: c.Rule0A, Replacement: c.Rule0B},
		{Trigger: c.Rule1A, Replacement: c.Rule1B},
	}
}

// Validate rejects settings the pipeline cannot start from. Numeric
// extremes are accepted; they only make the picture odd.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Density <= 0 {
		errs = append(errs, fmt.Errorf("density %v must be positive", c.Density))
	}
	if c.Iterations < 0 {
		errs = append(errs, fmt.Errorf("iterations %d must not be negative", c.Iterations))
	}
	if c.MaxSentence < 0 {
		errs = append(errs, fmt.Errorf("max sentence %d must not be negative", c.MaxSentence))
	}
	if _, err := lsystem.NewRuleTable(c.Rules()...); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
