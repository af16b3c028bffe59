package oklab_test

import (
	"testing"

	"github.com/lumora/colorjourney/oklab"
)

// BenchmarkRGBToLab measures the forward pipeline (the hot conversion:
// matrix, three cube roots, matrix).
func BenchmarkRGBToLab(b *testing.B) {
	c := oklab.RGB{R: 0.3, G: 0.5, B: 0.8}
	var sink oklab.Lab
	for i := 0; i < b.N; i++ {
		sink = oklab.RGBToLab(c)
	}
	_ = sink
}

// BenchmarkLabToRGB measures the inverse pipeline (cubes instead of roots).
func BenchmarkLabToRGB(b *testing.B) {
	lab := oklab.RGBToLab(oklab.RGB{R: 0.3, G: 0.5, B: 0.8})
	var sink oklab.RGB
	for i := 0; i < b.N; i++ {
		sink = oklab.LabToRGB(lab)
	}
	_ = sink
}

// BenchmarkDeltaE measures the perceptual distance primitive.
func BenchmarkDeltaE(b *testing.B) {
	x := oklab.RGBToLab(oklab.RGB{R: 1})
	y := oklab.RGBToLab(oklab.RGB{B: 1})
	var sink float32
	for i := 0; i < b.N; i++ {
		sink = oklab.DeltaE(x, y)
	}
	_ = sink
}

// BenchmarkRGBToLabCached measures the memoized path on a warm cache.
func BenchmarkRGBToLabCached(b *testing.B) {
	cache := oklab.NewConvCache(256)
	c := oklab.RGB{R: 0.3, G: 0.5, B: 0.8}
	oklab.RGBToLabCached(c, cache) // warm the slot

	b.ResetTimer()
	var sink oklab.Lab
	for i := 0; i < b.N; i++ {
		sink = oklab.RGBToLabCached(c, cache)
	}
	_ = sink
}
