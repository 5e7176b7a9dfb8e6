package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadEnv applies THORN_* environment overrides on top of c. Unparsable
// values are ignored.
func LoadEnv(c Config) Config {
	return applyEnv(c, os.Getenv)
}

func applyEnv(c Config, getenv func(string) string) Config {
	ints := map[string]*int{
		"THORN_WIDTH":        &c.Width,
		"THORN_HEIGHT":       &c.Height,
		"THORN_ITERATIONS":   &c.Iterations,
		"THORN_MAX_SENTENCE": &c.MaxSentence,
	}
	for key, dst := range ints {
		if v := getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	floats := map[string]*float64{
		"THORN_DENSITY":       &c.Density,
		"THORN_LENGTH":        &c.Length,
		"THORN_STEP":          &c.Step,
		"THORN_FACTOR1":       &c.Factor1,
		"THORN_FACTOR2":       &c.Factor2,
		"THORN_OPACITY":       &c.Opacity,
		"THORN_OPACITY_DRIFT": &c.OpacityDrift,
	}
	for key, dst := range floats {
		if v := getenv(key); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			}
		}
	}

	// Rules as "F=FF+-"
	for key, dst := range map[string][2]*string{
		"THORN_RULE0": {&c.Rule0A, &c.Rule0B},
		"THORN_RULE1": {&c.Rule1A, &c.Rule1B},
	} {
		if v := getenv(key); v != "" {
			if a, b, ok := strings.Cut(v, "="); ok {
				*dst[0], *dst[1] = a, b
			}
		}
	}

	if v := getenv("THORN_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio = b
		}
	}
	return c
}

// LoadFile reads a JSON preset. Fields missing from the file keep the
// values of base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read preset: %w", err)
	}
	c := base
	if err := json.Unmarshal(data, &c); err != nil {
		return base, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	return c, nil
}

// SaveFile writes c as an indented JSON preset.
func SaveFile(path string, c Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preset: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write preset: %w", err)
	}
	return nil
}
