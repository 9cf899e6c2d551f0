package life

import "testing"

func TestSeedRandomDeterministic(t *testing.T) {
	a := SeedRandom(30, 99, 0.3)
	b := SeedRandom(30, 99, 0.3)
	if !a.Equal(b) {
		t.Fatal("same seed produced different soups")
	}
	if a.Equal(SeedRandom(30, 100, 0.3)) {
		t.Fatal("different seeds should produce different soups")
	}
	if pop := SeedRandom(30, 99, 0).Population(); pop != 0 {
		t.Fatalf("density 0 produced %d live cells", pop)
	}
	if pop := SeedRandom(30, 99, 1).Population(); pop != 900 {
		t.Fatalf("density 1 produced %d live cells, expected 900", pop)
	}
}

func TestSeedNoiseDeterministic(t *testing.T) {
	a := SeedNoise(30, 5, 0.5, 6)
	if !a.Equal(SeedNoise(30, 5, 0.5, 6)) {
		t.Fatal("same seed produced different noise soups")
	}
	sparse := SeedNoise(30, 5, 0.1, 6).Population()
	dense := SeedNoise(30, 5, 0.9, 6).Population()
	if sparse >= dense {
		t.Fatalf("expected higher density to revive more cells, got %d >= %d", sparse, dense)
	}
}

func TestResetNoiseMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SeedMode = SeedNoiseMode
	cfg.Density = 0.5
	l := New(cfg)
	l.Reset(11)
	if !l.Snapshot().Equal(SeedNoise(cfg.Size, 11, cfg.Density, cfg.NoiseScale)) {
		t.Fatal("noise reset does not match SeedNoise")
	}
}
