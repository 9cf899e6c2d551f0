package life

import (
	"github.com/aquilax/go-perlin"

	"lifegrid/pkg/core"
)

const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
)

// SeedRandom fills an n×n grid where each cell lives with probability density.
func SeedRandom(n int, seed int64, density float64) core.Grid {
	rng := core.NewRNG(seed)
	return core.GridFrom(n, func(int, int) bool {
		return rng.Chance(density)
	})
}

// SeedNoise fills an n×n grid from 2D Perlin noise sampled every 1/scale
// units, producing clustered blobs instead of uniform static. Roughly
// density of the cells come out alive.
func SeedNoise(n int, seed int64, density, scale float64) core.Grid {
	if scale <= 0 {
		scale = 1
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	// Noise2D is centred on zero; shift the cut so density 0.5 splits there.
	cut := (density - 0.5) * 0.8
	return core.GridFrom(n, func(x, y int) bool {
		return p.Noise2D(float64(x)/scale, float64(y)/scale) < cut
	})
}
