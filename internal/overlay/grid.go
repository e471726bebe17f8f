// Package overlay generates the tile grid visualization that hugs the
// sculpted terrain surface.
package overlay

import (
	"fmt"

	"github.com/tomiconicgit/TerrainCreator/internal/terrain"
	"github.com/tomiconicgit/TerrainCreator/pkg/math"
)

// LineVertex is one point of a grid line, position plus color.
type LineVertex struct {
	X, Y, Z float32
	R, G, B float32
}

// gridColor is the neutral gray used for tile lines.
var gridColor = [3]float32{0.5, 0.5, 0.5}

// lift keeps grid lines from z-fighting with the terrain surface.
const lift = 0.15

// Grid builds line segments along tile boundaries, sampling the heightfield
// along each edge so lines follow sculpted geometry instead of floating at
// a fixed height. It caches the field version it was last built against and
// must be rebuilt, not patched, after every mutation batch.
type Grid struct {
	field *terrain.HeightField
	// samplesPerEdge is how many line segments approximate one tile edge.
	// More segments hug steep sculpts closer.
	samplesPerEdge int

	vertices     []LineVertex
	builtVersion uint64
	built        bool
}

// NewGrid creates an overlay over the field. samplesPerEdge below 1 clamps
// to 1 (straight lines between tile corners).
func NewGrid(field *terrain.HeightField, samplesPerEdge int) (*Grid, error) {
	if field == nil {
		return nil, fmt.Errorf("overlay: heightfield required")
	}
	if samplesPerEdge < 1 {
		samplesPerEdge = 1
	}
	g := &Grid{field: field, samplesPerEdge: samplesPerEdge}
	g.Rebuild()
	return g, nil
}

// Stale reports whether the field has mutated since the last Rebuild.
func (g *Grid) Stale() bool {
	return !g.built || g.builtVersion != g.field.Version()
}

// Vertices returns the current line vertex pairs (each consecutive pair is
// one segment).
func (g *Grid) Vertices() []LineVertex {
	return g.vertices
}

// Rebuild regenerates every line vertex from the current heights.
func (g *Grid) Rebuild() {
	grid := g.field.Grid()
	g.vertices = g.vertices[:0]

	// Lines parallel to Z, one per tile boundary along X.
	for i := 0; i <= grid.TilesX; i++ {
		x := -grid.Width()/2 + float32(i)*grid.TileSize
		from := math.Vec2{X: x, Y: -grid.Height() / 2}
		to := math.Vec2{X: x, Y: grid.Height() / 2}
		g.appendEdge(from, to, grid.TilesY*g.samplesPerEdge)
	}

	// Lines parallel to X.
	for j := 0; j <= grid.TilesY; j++ {
		z := -grid.Height()/2 + float32(j)*grid.TileSize
		from := math.Vec2{X: -grid.Width() / 2, Y: z}
		to := math.Vec2{X: grid.Width() / 2, Y: z}
		g.appendEdge(from, to, grid.TilesX*g.samplesPerEdge)
	}

	g.builtVersion = g.field.Version()
	g.built = true
}

// appendEdge emits segments between interpolated samples along one full
// grid line.
func (g *Grid) appendEdge(from, to math.Vec2, steps int) {
	prev := g.sampleAt(from)
	for s := 1; s <= steps; s++ {
		cur := g.sampleAt(from.Lerp(to, float32(s)/float32(steps)))
		g.vertices = append(g.vertices, prev, cur)
		prev = cur
	}
}

func (g *Grid) sampleAt(p math.Vec2) LineVertex {
	return LineVertex{
		X: p.X,
		Y: g.field.SampleHeight(p.X, p.Y) + lift,
		Z: p.Y,
		R: gridColor[0],
		G: gridColor[1],
		B: gridColor[2],
	}
}
