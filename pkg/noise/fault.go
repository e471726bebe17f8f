package noise

import (
	"math"
	"math/rand"
)

// fault is a single half-plane test: a line through (ox, oy) with normal
// (nx, ny). Points on the positive side gain sign, the rest lose it.
type fault struct {
	nx, ny float64
	ox, oy float64
	sign   float64
}

// FaultSet accumulates signed half-plane tests. It is generated once per
// terrain build (with whatever random state the caller supplies) and then
// evaluated per sample, so every sample of one generation sees the same
// faults.
type FaultSet struct {
	faults []fault
}

// NewFaultSet generates iterations random faults with origins inside
// [-extent/2, extent/2] on both axes.
func NewFaultSet(r *rand.Rand, iterations int, extent float64) *FaultSet {
	fs := &FaultSet{faults: make([]fault, 0, iterations)}
	for i := 0; i < iterations; i++ {
		angle := r.Float64() * 2 * math.Pi
		f := fault{
			nx:   math.Cos(angle),
			ny:   math.Sin(angle),
			ox:   (r.Float64() - 0.5) * extent,
			oy:   (r.Float64() - 0.5) * extent,
			sign: 1,
		}
		if r.Intn(2) == 0 {
			f.sign = -1
		}
		fs.faults = append(fs.faults, f)
	}
	return fs
}

// Sample returns the accumulated fault displacement at (x, y), normalized
// into [-1, 1] by the fault count.
func (fs *FaultSet) Sample(x, y float64) float64 {
	if len(fs.faults) == 0 {
		return 0
	}
	var total float64
	for _, f := range fs.faults {
		if (x-f.ox)*f.nx+(y-f.oy)*f.ny >= 0 {
			total += f.sign
		} else {
			total -= f.sign
		}
	}
	return total / float64(len(fs.faults))
}
