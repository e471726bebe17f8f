// Package noise provides deterministic coherent-noise primitives used to
// seed terrain heightfields: gradient noise, fractal sums, cell (Worley)
// distance and random fault accumulation.
package noise

import (
	"math"
	"math/rand"
)

// Table is a shuffled permutation table. It is passed explicitly into the
// noise functions so tests can supply a fixed seed for determinism.
type Table struct {
	perm [512]int
}

// NewTable creates a permutation table shuffled with the given seed.
func NewTable(seed int64) *Table {
	t := &Table{}
	r := rand.New(rand.NewSource(seed))

	var p [256]int
	for i := range p {
		p[i] = i
	}

	// Fisher-Yates shuffle.
	for i := 255; i > 0; i-- {
		j := r.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	// Double the table so index arithmetic never wraps mid-lookup.
	for i := 0; i < 512; i++ {
		t.perm[i] = p[i&255]
	}
	return t
}

// fade is Perlin's quintic interpolant 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// grad2 maps a hash to one of eight gradient directions and dots it with (x, y).
func grad2(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Gradient2D returns 2D gradient (Perlin) noise in roughly [-1, 1].
// Any finite input is valid; negative coordinates are handled by flooring
// and masking into the table's 0-255 domain.
func (t *Table) Gradient2D(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	xf := x - fx
	yf := y - fy

	u := fade(xf)
	v := fade(yf)

	aa := t.perm[t.perm[xi]+yi]
	ab := t.perm[t.perm[xi]+yi+1]
	ba := t.perm[t.perm[xi+1]+yi]
	bb := t.perm[t.perm[xi+1]+yi+1]

	x1 := lerp(grad2(aa, xf, yf), grad2(ba, xf-1, yf), u)
	x2 := lerp(grad2(ab, xf, yf-1), grad2(bb, xf-1, yf-1), u)

	return lerp(x1, x2, v)
}

// FractalSum accumulates octaves of base noise, each octave scaled in
// frequency by lacunarity and in amplitude by gain. The result is divided
// by the accumulated amplitude so the range stays roughly constant
// regardless of octave count.
func FractalSum(x, y float64, octaves int, lacunarity, gain float64, base func(x, y float64) float64) float64 {
	var total, maxAmp float64
	amp := 1.0
	freq := 1.0

	for i := 0; i < octaves; i++ {
		total += base(x*freq, y*freq) * amp
		maxAmp += amp
		freq *= lacunarity
		amp *= gain
	}

	if maxAmp == 0 {
		return 0
	}
	return total / maxAmp
}
