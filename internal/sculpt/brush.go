// Package sculpt applies brush deformations to a terrain heightfield.
package sculpt

import (
	"fmt"
	gomath "math"

	"github.com/tomiconicgit/TerrainCreator/internal/terrain"
	"github.com/tomiconicgit/TerrainCreator/pkg/math"
)

// Mode selects what a brush application does to the heights.
type Mode string

const (
	// ModeRaise pushes heights up with cosine falloff.
	ModeRaise Mode = "raise"
	// ModeLower pushes heights down with cosine falloff.
	ModeLower Mode = "lower"
	// ModeSmooth moves heights toward the in-radius mean.
	ModeSmooth Mode = "smooth"
)

// smoothRate is how far one smooth application moves each height toward the
// in-radius mean. Tuned: responsive without flattening in a single stroke.
const smoothRate = 0.1

// Brush applies raise/lower/smooth deformations to a heightfield within a
// circular radius. It only ever scans the bounding box of cells the radius
// can reach, never the whole grid.
type Brush struct {
	field *terrain.HeightField
}

// NewBrush creates a brush over the given field. The field is required.
func NewBrush(field *terrain.HeightField) (*Brush, error) {
	if field == nil {
		return nil, fmt.Errorf("sculpt: brush requires a heightfield")
	}
	return &Brush{field: field}, nil
}

// Apply deforms the field around a local-space hit point. radiusTiles is the
// brush radius in tile units; step is the per-application magnitude for
// raise/lower. Vertices at or beyond the world radius are untouched (strict
// circular cutoff). The caller batches the derived-state refresh.
func (b *Brush) Apply(hit math.Vec2, mode Mode, radiusTiles, step float32) error {
	g := b.field.Grid()
	worldRadius := radiusTiles * g.TileSize
	if worldRadius <= 0 {
		return nil
	}

	centerCol, centerRow := g.NearestVertex(hit.X, hit.Y)
	reach := int(gomath.Ceil(float64(worldRadius / g.VertexSpacing())))

	minCol := maxInt(centerCol-reach, 0)
	maxCol := minInt(centerCol+reach, g.WidthSegments())
	minRow := maxInt(centerRow-reach, 0)
	maxRow := minInt(centerRow+reach, g.HeightSegments())

	switch mode {
	case ModeRaise:
		b.displace(hit, worldRadius, step, minCol, maxCol, minRow, maxRow)
	case ModeLower:
		b.displace(hit, worldRadius, -step, minCol, maxCol, minRow, maxRow)
	case ModeSmooth:
		b.smooth(hit, worldRadius, minCol, maxCol, minRow, maxRow)
	default:
		return fmt.Errorf("sculpt: unknown brush mode %q", mode)
	}
	return nil
}

// displace raises or lowers each in-radius vertex by step scaled with a
// cosine falloff: full effect at the center, zero at the radius.
func (b *Brush) displace(hit math.Vec2, worldRadius, step float32, minCol, maxCol, minRow, maxRow int) {
	g := b.field.Grid()

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			p := g.VertexLocal(col, row)
			dist := p.Sub(hit).Length()
			if dist >= worldRadius {
				continue
			}
			falloff := float32(gomath.Cos(float64(dist / worldRadius * gomath.Pi / 2)))
			b.field.MutateVertex(g.VertexIndex(col, row), falloff*step)
		}
	}
}

// smooth moves each in-radius vertex a fraction of the way toward the mean
// of the in-radius heights. One pass per application; repeated strokes
// converge further.
func (b *Brush) smooth(hit math.Vec2, worldRadius float32, minCol, maxCol, minRow, maxRow int) {
	g := b.field.Grid()

	var sum float32
	var indices []int
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			p := g.VertexLocal(col, row)
			if p.Sub(hit).Length() >= worldRadius {
				continue
			}
			idx := g.VertexIndex(col, row)
			sum += b.field.HeightAt(idx)
			indices = append(indices, idx)
		}
	}
	if len(indices) == 0 {
		return
	}

	mean := sum / float32(len(indices))
	for _, idx := range indices {
		b.field.MutateVertex(idx, (mean-b.field.HeightAt(idx))*smoothRate)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
