package life

import (
	"fmt"
	"strconv"
	"time"

	"lifegrid/pkg/core"
)

// SeedMode selects how Reset fills the grid for a non-zero seed.
type SeedMode string

const (
	SeedRandomMode SeedMode = "random"
	SeedNoiseMode  SeedMode = "noise"
)

// ParseSeedMode validates a seed mode name.
func ParseSeedMode(name string) (SeedMode, error) {
	switch SeedMode(name) {
	case SeedRandomMode, SeedNoiseMode:
		return SeedMode(name), nil
	}
	return SeedRandomMode, fmt.Errorf("unknown seed mode %q", name)
}

// Config holds the parameters of a Life simulation.
type Config struct {
	Size     int
	Interval time.Duration
	Policy   EdgePolicy
	Overflow core.Overflow

	SeedMode   SeedMode
	Density    float64
	NoiseScale float64
}

// DefaultConfig returns the standard 35×35 bounded grid stepping every 200ms.
func DefaultConfig() Config {
	return Config{
		Size:       35,
		Interval:   200 * time.Millisecond,
		Policy:     Bounded,
		Overflow:   core.OverflowDiscard,
		SeedMode:   SeedRandomMode,
		Density:    0.3,
		NoiseScale: 6,
	}
}

// FromMap populates a Config from a string map. Invalid values keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Interval = parsed
		}
	}
	if v, ok := cfg["policy"]; ok {
		if parsed, err := ParsePolicy(v); err == nil {
			c.Policy = parsed
		}
	}
	if v, ok := cfg["overflow"]; ok {
		if parsed, err := core.ParseOverflow(v); err == nil {
			c.Overflow = parsed
		}
	}
	if v, ok := cfg["seed_mode"]; ok {
		if parsed, err := ParseSeedMode(v); err == nil {
			c.SeedMode = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.NoiseScale = parsed
		}
	}
	return c
}
