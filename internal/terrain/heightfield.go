package terrain

import (
	"fmt"
	gomath "math"

	"github.com/tomiconicgit/TerrainCreator/pkg/math"
)

// HeightField is the deformable grid of elevation samples. Heights are
// stored flat, row-major, indexed row*(widthSegments+1)+col. Every stored
// height stays within [MinHeight, MaxHeight] after any mutation.
//
// The field is created whole when terrain is (re)generated and replaced
// wholesale when the grid configuration changes; it is never resized in
// place. Consumers read through SampleHeight/SampleNormal rather than
// holding references into the raw array.
type HeightField struct {
	grid      Grid
	minHeight float32
	maxHeight float32

	heights []float32
	normals []math.Vec3
	dirty   bool
	version uint64
}

// NewHeightField creates a flat heightfield for the given grid. The grid
// dimensions are validated up front so sampling is guaranteed non-degenerate
// for the field's lifetime.
func NewHeightField(grid Grid, minHeight, maxHeight float32) (*HeightField, error) {
	if grid.TilesX <= 0 || grid.TilesY <= 0 {
		return nil, fmt.Errorf("terrain: invalid tile counts %dx%d", grid.TilesX, grid.TilesY)
	}
	if grid.TileSize <= 0 {
		return nil, fmt.Errorf("terrain: invalid tile size %v", grid.TileSize)
	}
	if grid.Subdivisions <= 0 {
		return nil, fmt.Errorf("terrain: invalid subdivisions %d", grid.Subdivisions)
	}
	if minHeight >= maxHeight {
		return nil, fmt.Errorf("terrain: invalid height band [%v, %v]", minHeight, maxHeight)
	}

	hf := &HeightField{
		grid:      grid,
		minHeight: minHeight,
		maxHeight: maxHeight,
		heights:   make([]float32, grid.VertexCount()),
		normals:   make([]math.Vec3, grid.VertexCount()),
	}
	for i := range hf.normals {
		hf.normals[i] = math.Vec3{Y: 1}
	}
	return hf, nil
}

// Grid returns the tile addressing for this field.
func (hf *HeightField) Grid() Grid {
	return hf.grid
}

// Bounds returns the configured height clamp band.
func (hf *HeightField) Bounds() (min, max float32) {
	return hf.minHeight, hf.maxHeight
}

// Version increments on every committed mutation batch. Dependents compare
// it to decide whether their derived state is stale.
func (hf *HeightField) Version() uint64 {
	return hf.version
}

// HeightAt returns the stored height at a flat vertex index, clamped into
// range.
func (hf *HeightField) HeightAt(index int) float32 {
	return hf.heights[clampInt(index, 0, len(hf.heights)-1)]
}

// SetHeight overwrites the stored height at a vertex index, clamped to the
// height band.
func (hf *HeightField) SetHeight(index int, h float32) {
	index = clampInt(index, 0, len(hf.heights)-1)
	hf.heights[index] = clampf(h, hf.minHeight, hf.maxHeight)
	hf.dirty = true
}

// MutateVertex adds deltaY to the stored height at a vertex index, then
// clamps to the height band.
func (hf *HeightField) MutateVertex(index int, deltaY float32) {
	index = clampInt(index, 0, len(hf.heights)-1)
	hf.heights[index] = clampf(hf.heights[index]+deltaY, hf.minHeight, hf.maxHeight)
	hf.dirty = true
}

// SampleHeight bilinearly samples the field at a local (x, z) position.
// Inputs slightly outside the world extents clamp to the edge rather than
// failing; the result is continuous across the whole field.
func (hf *HeightField) SampleHeight(localX, localZ float32) float32 {
	g := hf.grid

	gx := (localX + g.Width()/2) / g.VertexSpacing()
	gz := (localZ + g.Height()/2) / g.VertexSpacing()

	col := clampInt(int(gomath.Floor(float64(gx))), 0, g.WidthSegments()-1)
	row := clampInt(int(gomath.Floor(float64(gz))), 0, g.HeightSegments()-1)

	fx := clampf(gx-float32(col), 0, 1)
	fz := clampf(gz-float32(row), 0, 1)

	h00 := hf.heights[row*g.VertexCols()+col]
	h10 := hf.heights[row*g.VertexCols()+col+1]
	h01 := hf.heights[(row+1)*g.VertexCols()+col]
	h11 := hf.heights[(row+1)*g.VertexCols()+col+1]

	south := h00*(1-fx) + h10*fx
	north := h01*(1-fx) + h11*fx
	return south*(1-fz) + north*fz
}

// SampleNormal estimates the surface normal at a local (x, z) position via
// central differences. The epsilon scales with tile size and is floored so
// tiny tiles don't degenerate it. A flat field yields straight up.
func (hf *HeightField) SampleNormal(localX, localZ float32) math.Vec3 {
	eps := hf.grid.TileSize * 0.5
	if eps < 0.001 {
		eps = 0.001
	}

	hL := hf.SampleHeight(localX-eps, localZ)
	hR := hf.SampleHeight(localX+eps, localZ)
	hD := hf.SampleHeight(localX, localZ-eps)
	hU := hf.SampleHeight(localX, localZ+eps)

	tangentX := math.Vec3{X: 2 * eps, Y: hR - hL}
	tangentZ := math.Vec3{Y: hU - hD, Z: 2 * eps}

	n := tangentZ.Cross(tangentX).Normalize()
	if n.Length() == 0 {
		return math.Vec3{Y: 1}
	}
	return n
}

// NormalAt returns the batch-computed normal for a vertex index. Valid after
// RecomputeNormals; stale while the field is dirty.
func (hf *HeightField) NormalAt(index int) math.Vec3 {
	return hf.normals[clampInt(index, 0, len(hf.normals)-1)]
}

// Dirty reports whether mutations have happened since the last
// RecomputeNormals.
func (hf *HeightField) Dirty() bool {
	return hf.dirty
}

// RecomputeNormals rebuilds the per-vertex normal array from the current
// heights and bumps the version. Call once per mutation batch, not per
// vertex.
func (hf *HeightField) RecomputeNormals() {
	g := hf.grid
	cols := g.VertexCols()
	rows := g.VertexRows()
	spacing := g.VertexSpacing()

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := row*cols + col

			// Central differences, clamped at the grid edge.
			left := hf.heights[row*cols+clampInt(col-1, 0, cols-1)]
			right := hf.heights[row*cols+clampInt(col+1, 0, cols-1)]
			down := hf.heights[clampInt(row-1, 0, rows-1)*cols+col]
			up := hf.heights[clampInt(row+1, 0, rows-1)*cols+col]

			tangentX := math.Vec3{X: 2 * spacing, Y: right - left}
			tangentZ := math.Vec3{Y: up - down, Z: 2 * spacing}

			n := tangentZ.Cross(tangentX).Normalize()
			if n.Length() == 0 {
				n = math.Vec3{Y: 1}
			}
			hf.normals[idx] = n
		}
	}

	hf.dirty = false
	hf.version++
}
