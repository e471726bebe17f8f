package noise

import "math"

// hashPoint generates a deterministic pseudo-random point in the unit square
// for a feature index. The trigonometric hash is not true randomness, which
// is fine for decorative noise.
func hashPoint(i int) (x, y float64) {
	n := float64(i + 1)
	sx := math.Sin(n*127.1) * 43758.5453
	sy := math.Sin(n*311.7) * 43758.5453
	return sx - math.Floor(sx), sy - math.Floor(sy)
}

// CellDistance2D returns the distance from (u, v) (normalized [0,1]
// coordinates) to the nearest of pointCount feature points, measured in a
// grid scaled by cellScale. The feature points are deterministic per index,
// so the same (cellScale, pointCount) pair always yields the same pattern.
func CellDistance2D(u, v float64, cellScale float64, pointCount int) float64 {
	if pointCount <= 0 {
		return 0
	}

	px := u * cellScale
	py := v * cellScale

	minDist := math.MaxFloat64
	for i := 0; i < pointCount; i++ {
		fx, fy := hashPoint(i)
		dx := px - fx*cellScale
		dy := py - fy*cellScale
		d := math.Sqrt(dx*dx + dy*dy)
		if d < minDist {
			minDist = d
		}
	}
	return minDist
}
