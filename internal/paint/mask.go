// Package paint stores per-vertex material weights for terrain surface
// blending.
package paint

import (
	"fmt"
	gomath "math"

	"github.com/tomiconicgit/TerrainCreator/internal/terrain"
)

// ChannelCount is the number of paintable material channels.
const ChannelCount = 4

// Mask holds one weight in [0, 1] per fine vertex per material channel.
// Weights at a vertex are not forced to sum to 1; consumers normalize
// defensively. The mask is allocated to match a grid's vertex count exactly
// and is replaced, not reinterpolated, when the grid changes: paint is
// discarded on resize.
//
// Sculpting never touches the mask; paint persists across height mutations.
type Mask struct {
	grid    terrain.Grid
	weights [ChannelCount][]float32
}

// NewMask allocates a mask sized for the grid, fully painted with
// channel 0.
func NewMask(grid terrain.Grid) (*Mask, error) {
	if grid.VertexCount() <= 0 {
		return nil, fmt.Errorf("paint: mask requires a non-empty grid")
	}
	m := &Mask{grid: grid}
	for c := range m.weights {
		m.weights[c] = make([]float32, grid.VertexCount())
	}
	for i := range m.weights[0] {
		m.weights[0][i] = 1
	}
	return m, nil
}

// Grid returns the grid this mask is sized for.
func (m *Mask) Grid() terrain.Grid {
	return m.grid
}

// WeightsAt returns the channel weights at a vertex index, clamped into
// range.
func (m *Mask) WeightsAt(index int) [ChannelCount]float32 {
	if index < 0 {
		index = 0
	}
	if index >= len(m.weights[0]) {
		index = len(m.weights[0]) - 1
	}
	var w [ChannelCount]float32
	for c := range m.weights {
		w[c] = m.weights[c][index]
	}
	return w
}

// Dominant returns the channel with the highest weight at a vertex.
func (m *Mask) Dominant(index int) int {
	w := m.WeightsAt(index)
	best := 0
	for c := 1; c < ChannelCount; c++ {
		if w[c] > w[best] {
			best = c
		}
	}
	return best
}

// PaintTileRegion hard-paints every tile within brushRadiusInTiles of the
// center tile: the material channel is set to 1 and all others to 0 across
// each covered tile's full fine-vertex block, corners included. Edges are
// hard per tile block; there is no inter-tile blending.
func (m *Mask) PaintTileRegion(centerI, centerJ, materialID int, brushRadiusInTiles float32) {
	if materialID < 0 || materialID >= ChannelCount {
		return
	}
	centerI, centerJ = m.grid.ClampTile(centerI, centerJ)

	for j := 0; j < m.grid.TilesY; j++ {
		for i := 0; i < m.grid.TilesX; i++ {
			di := float64(i - centerI)
			dj := float64(j - centerJ)
			if gomath.Hypot(di, dj) > float64(brushRadiusInTiles) {
				continue
			}
			m.paintTileBlock(i, j, materialID)
		}
	}
}

// paintTileBlock hard-sets one tile's (subdivisions+1)^2 vertex block to the
// material channel.
func (m *Mask) paintTileBlock(i, j, materialID int) {
	sub := m.grid.Subdivisions
	baseCol := i * sub
	baseRow := j * sub

	for row := baseRow; row <= baseRow+sub; row++ {
		for col := baseCol; col <= baseCol+sub; col++ {
			idx := m.grid.VertexIndex(col, row)
			for c := range m.weights {
				if c == materialID {
					m.weights[c][idx] = 1
				} else {
					m.weights[c][idx] = 0
				}
			}
		}
	}
}

// PaintDisc soft-paints a world-space disc: each fine vertex within the
// radius lerps toward full weight on the material channel with falloff
// 1 - (distance/radius)^2, producing soft edges. Existing weights blend
// rather than being hard-set.
func (m *Mask) PaintDisc(localX, localZ float32, materialID int, radiusTiles float32) {
	if materialID < 0 || materialID >= ChannelCount {
		return
	}
	g := m.grid
	worldRadius := radiusTiles * g.TileSize
	if worldRadius <= 0 {
		return
	}

	centerCol, centerRow := g.NearestVertex(localX, localZ)
	reach := int(gomath.Ceil(float64(worldRadius / g.VertexSpacing())))

	minCol := maxInt(centerCol-reach, 0)
	maxCol := minInt(centerCol+reach, g.WidthSegments())
	minRow := maxInt(centerRow-reach, 0)
	maxRow := minInt(centerRow+reach, g.HeightSegments())

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			p := g.VertexLocal(col, row)
			dx := p.X - localX
			dz := p.Y - localZ
			distSq := dx*dx + dz*dz
			if distSq >= worldRadius*worldRadius {
				continue
			}
			falloff := 1 - distSq/(worldRadius*worldRadius)

			idx := g.VertexIndex(col, row)
			for c := range m.weights {
				target := float32(0)
				if c == materialID {
					target = 1
				}
				w := m.weights[c][idx]
				m.weights[c][idx] = w + (target-w)*falloff
			}
		}
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
