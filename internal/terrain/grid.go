// Package terrain owns the deformable heightfield grid and the tile
// addressing that the rest of the sandbox is keyed on.
package terrain

import (
	gomath "math"

	"github.com/tomiconicgit/TerrainCreator/pkg/math"
)

// Grid maps between local (x, z) coordinates, logical tile indices and fine
// vertex indices. One logical tile spans Subdivisions fine samples per edge,
// so the fine grid has TilesX*Subdivisions segments along X.
//
// All lookups clamp out-of-range input into the valid range instead of
// failing; interactive brush input routinely lands slightly outside the
// grid near its edges.
type Grid struct {
	TilesX       int
	TilesY       int
	TileSize     float32
	Subdivisions int
}

// Width returns the world extent along X.
func (g Grid) Width() float32 {
	return float32(g.TilesX) * g.TileSize
}

// Height returns the world extent along Z.
func (g Grid) Height() float32 {
	return float32(g.TilesY) * g.TileSize
}

// WidthSegments returns the fine segment count along X.
func (g Grid) WidthSegments() int {
	return g.TilesX * g.Subdivisions
}

// HeightSegments returns the fine segment count along Z.
func (g Grid) HeightSegments() int {
	return g.TilesY * g.Subdivisions
}

// VertexCols returns the fine vertex count along X (segments + 1).
func (g Grid) VertexCols() int {
	return g.WidthSegments() + 1
}

// VertexRows returns the fine vertex count along Z (segments + 1).
func (g Grid) VertexRows() int {
	return g.HeightSegments() + 1
}

// VertexCount returns the total fine vertex count.
func (g Grid) VertexCount() int {
	return g.VertexCols() * g.VertexRows()
}

// VertexIndex returns the flat index of the fine vertex at (col, row).
// Both inputs are clamped into range first.
func (g Grid) VertexIndex(col, row int) int {
	col = clampInt(col, 0, g.WidthSegments())
	row = clampInt(row, 0, g.HeightSegments())
	return row*g.VertexCols() + col
}

// WorldToTile converts a local (x, z) position to a logical tile index.
//
// Floor semantics: a point exactly on a tile boundary belongs to the tile
// with the higher index along that boundary. The result is always clamped
// into [0, TilesX-1] x [0, TilesY-1].
func (g Grid) WorldToTile(localX, localZ float32) (i, j int) {
	// Dividing by tile size directly is the same normalization as
	// (x+W/2)/W * TilesX without the double rounding.
	i = int(gomath.Floor(float64((localX + g.Width()/2) / g.TileSize)))
	j = int(gomath.Floor(float64((localZ + g.Height()/2) / g.TileSize)))
	return g.ClampTile(i, j)
}

// ClampTile clamps a tile index pair into the valid range.
func (g Grid) ClampTile(i, j int) (int, int) {
	return clampInt(i, 0, g.TilesX-1), clampInt(j, 0, g.TilesY-1)
}

// TileCenterLocal returns the local (x, z) position of a tile's center.
func (g Grid) TileCenterLocal(i, j int) math.Vec2 {
	i, j = g.ClampTile(i, j)
	return math.Vec2{
		X: -g.Width()/2 + (float32(i)+0.5)*g.TileSize,
		Y: -g.Height()/2 + (float32(j)+0.5)*g.TileSize,
	}
}

// TileCornerVertexIndices returns the fine vertex indices at a tile's four
// corners, ordered (i,j), (i+1,j), (i,j+1), (i+1,j+1). Tile corners coincide
// with fine vertices at multiples of Subdivisions.
func (g Grid) TileCornerVertexIndices(i, j int) [4]int {
	i, j = g.ClampTile(i, j)
	col := i * g.Subdivisions
	row := j * g.Subdivisions
	return [4]int{
		g.VertexIndex(col, row),
		g.VertexIndex(col+g.Subdivisions, row),
		g.VertexIndex(col, row+g.Subdivisions),
		g.VertexIndex(col+g.Subdivisions, row+g.Subdivisions),
	}
}

// VertexSpacing returns the world distance between adjacent fine vertices.
func (g Grid) VertexSpacing() float32 {
	return g.TileSize / float32(g.Subdivisions)
}

// NearestVertex returns the fine vertex (col, row) closest to a local
// position, clamped into range.
func (g Grid) NearestVertex(localX, localZ float32) (col, row int) {
	spacing := g.VertexSpacing()
	col = int(gomath.Round(float64((localX + g.Width()/2) / spacing)))
	row = int(gomath.Round(float64((localZ + g.Height()/2) / spacing)))
	return clampInt(col, 0, g.WidthSegments()), clampInt(row, 0, g.HeightSegments())
}

// VertexLocal returns the local (x, z) position of the fine vertex at
// (col, row).
func (g Grid) VertexLocal(col, row int) math.Vec2 {
	spacing := g.VertexSpacing()
	return math.Vec2{
		X: -g.Width()/2 + float32(col)*spacing,
		Y: -g.Height()/2 + float32(row)*spacing,
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
