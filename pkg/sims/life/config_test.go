package life

import (
	"testing"
	"time"

	"lifegrid/pkg/core"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"n":           "50",
		"interval":    "125ms",
		"policy":      "torus",
		"overflow":    "carry",
		"seed_mode":   "noise",
		"density":     "0.45",
		"noise_scale": "3.5",
	})
	if c.Size != 50 || c.Interval != 125*time.Millisecond || c.Policy != Toroidal ||
		c.Overflow != core.OverflowCarry || c.SeedMode != SeedNoiseMode ||
		c.Density != 0.45 || c.NoiseScale != 3.5 {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestFromMapKeepsDefaultsOnBadValues(t *testing.T) {
	c := FromMap(map[string]string{
		"n":         "-3",
		"interval":  "soon",
		"policy":    "mobius",
		"overflow":  "catchup",
		"seed_mode": "glider-gun",
		"density":   "1.5",
	})
	if c != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}
