package oklab

import "math"

// ConvCache is an optional, caller-owned memoization table for RGB→Lab
// conversions: a fixed-size open-addressed hash table with linear probing
// and a bounded probe window.
//
// The converter itself stays cache-agnostic — a cache is only consulted
// when passed explicitly to RGBToLabCached. Lifetime and thread-affinity
// are entirely the caller's concern: a ConvCache is NOT safe for concurrent
// mutation; give each goroutine its own, or none at all.
type ConvCache struct {
	keys []RGB
	vals []Lab
	used []bool
}

// convCacheProbes bounds the linear probe window. Past it, the entry at the
// home slot is evicted rather than searching the whole table.
const convCacheProbes = 8

// NewConvCache allocates a cache with the given number of slots.
// Sizes below convCacheProbes are rounded up so probing stays in bounds.
func NewConvCache(size int) *ConvCache {
	if size < convCacheProbes {
		size = convCacheProbes
	}
	return &ConvCache{
		keys: make([]RGB, size),
		vals: make([]Lab, size),
		used: make([]bool, size),
	}
}

// Len returns the number of slots in the table.
func (c *ConvCache) Len() int { return len(c.keys) }

// slot hashes a color to its home slot via a SplitMix64-style mix of the
// raw channel bits.
func (c *ConvCache) slot(k RGB) int {
	x := uint64(math.Float32bits(k.R))
	x = x<<21 ^ uint64(math.Float32bits(k.G))
	x = x<<21 ^ uint64(math.Float32bits(k.B))
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int(x % uint64(len(c.keys)))
}

// RGBToLabCached converts c to OKLab, consulting and filling cache when it
// is non-nil. The result is bit-identical to RGBToLab(c) in all cases.
func RGBToLabCached(c RGB, cache *ConvCache) Lab {
	if cache == nil {
		return RGBToLab(c)
	}

	home := cache.slot(c)
	n := len(cache.keys)
	for p := 0; p < convCacheProbes; p++ {
		i := (home + p) % n
		if !cache.used[i] {
			// First free slot in the window: miss, insert here.
			lab := RGBToLab(c)
			cache.keys[i] = c
			cache.vals[i] = lab
			cache.used[i] = true
			return lab
		}
		if cache.keys[i] == c {
			return cache.vals[i]
		}
	}

	// Window full of other keys: evict the home slot.
	lab := RGBToLab(c)
	cache.keys[home] = c
	cache.vals[home] = lab
	return lab
}
