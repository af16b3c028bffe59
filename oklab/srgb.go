package oklab

import (
	"math"
	"sync"
)

// sRGB8 → linear lookup table. Process-wide, read-only state with a
// single-writer-then-many-readers lifecycle: the first caller populates it
// under sync.Once, every later access is a plain read.
var (
	srgbOnce  sync.Once
	srgbTable [256]float32
)

func initSRGBTable() {
	for i := range srgbTable {
		srgbTable[i] = float32(srgbToLinear(float64(i) / 255.0))
	}
}

// srgbToLinear applies the IEC 61966-2-1 transfer function to one channel.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// SRGB8ToLinear converts one 8-bit sRGB channel value to its linear-light
// equivalent in [0, 1], using the shared lookup table.
//
// Safe for unsynchronized concurrent use.
func SRGB8ToLinear(v uint8) float32 {
	srgbOnce.Do(initSRGBTable)
	return srgbTable[v]
}

// RGBFromSRGB8 builds a linear RGB color from 8-bit sRGB components, the
// form colors usually arrive in from design tools and hex strings.
func RGBFromSRGB8(r, g, b uint8) RGB {
	srgbOnce.Do(initSRGBTable)
	return RGB{
		R: srgbTable[r],
		G: srgbTable[g],
		B: srgbTable[b],
	}
}
