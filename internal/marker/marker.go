// Package marker pins an avatar marker to the sculpted terrain surface.
package marker

import (
	"fmt"

	"github.com/tomiconicgit/TerrainCreator/internal/terrain"
	"github.com/tomiconicgit/TerrainCreator/pkg/math"
)

// State is the renderable pose the external presentation layer consumes.
type State struct {
	Position math.Vec3
	Rotation math.Quat
}

// Placement positions a marker on the terrain. PlaceOnTile snaps to a tile
// center; Refresh re-runs placement with the stored indices and must be
// called after every terrain mutation so the marker never floats above or
// sinks into stale geometry.
type Placement interface {
	PlaceOnTile(i, j int)
	Refresh()
	State() State
	Tile() (i, j int)
}

// FlatMarker snaps to the tile center at sampled height plus a hover
// offset, always upright.
type FlatMarker struct {
	field     *terrain.HeightField
	transform math.Transform
	hover     float32

	tileI, tileJ int
	state        State
}

// NewFlatMarker creates an upright marker. The heightfield is required.
func NewFlatMarker(field *terrain.HeightField, transform math.Transform, hover float32) (*FlatMarker, error) {
	if field == nil {
		return nil, fmt.Errorf("marker: heightfield required")
	}
	m := &FlatMarker{
		field:     field,
		transform: transform,
		hover:     hover,
		state:     State{Rotation: math.QuatIdentity()},
	}
	m.PlaceOnTile(field.Grid().TilesX/2, field.Grid().TilesY/2)
	return m, nil
}

// PlaceOnTile snaps the marker to a tile center. Out-of-range indices clamp.
func (m *FlatMarker) PlaceOnTile(i, j int) {
	g := m.field.Grid()
	m.tileI, m.tileJ = g.ClampTile(i, j)

	c := g.TileCenterLocal(m.tileI, m.tileJ)
	h := m.field.SampleHeight(c.X, c.Y)

	m.state.Position = m.transform.Apply(math.Vec3{X: c.X, Y: h + m.hover, Z: c.Y})
	m.state.Rotation = math.QuatIdentity()
}

// Refresh re-places the marker on its current tile.
func (m *FlatMarker) Refresh() {
	m.PlaceOnTile(m.tileI, m.tileJ)
}

// State returns the current pose.
func (m *FlatMarker) State() State {
	return m.state
}

// Tile returns the marker's current tile indices.
func (m *FlatMarker) Tile() (int, int) {
	return m.tileI, m.tileJ
}

// OrientedMarker aligns its up-axis to the sampled surface normal and
// offsets along that normal by half its extent, so its base face sits flush
// against a sloped surface.
type OrientedMarker struct {
	field     *terrain.HeightField
	transform math.Transform
	hover     float32
	extent    float32

	tileI, tileJ int
	state        State
}

// NewOrientedMarker creates a surface-aligned marker with the given extent
// (full edge length). The heightfield is required.
func NewOrientedMarker(field *terrain.HeightField, transform math.Transform, hover, extent float32) (*OrientedMarker, error) {
	if field == nil {
		return nil, fmt.Errorf("marker: heightfield required")
	}
	m := &OrientedMarker{
		field:     field,
		transform: transform,
		hover:     hover,
		extent:    extent,
		state:     State{Rotation: math.QuatIdentity()},
	}
	m.PlaceOnTile(field.Grid().TilesX/2, field.Grid().TilesY/2)
	return m, nil
}

// PlaceOnTile snaps the marker to a tile center, rotated onto the local
// surface normal. Out-of-range indices clamp.
func (m *OrientedMarker) PlaceOnTile(i, j int) {
	g := m.field.Grid()
	m.tileI, m.tileJ = g.ClampTile(i, j)

	c := g.TileCenterLocal(m.tileI, m.tileJ)
	h := m.field.SampleHeight(c.X, c.Y)
	n := m.field.SampleNormal(c.X, c.Y)

	base := math.Vec3{X: c.X, Y: h + m.hover, Z: c.Y}
	offset := n.Scale(m.extent / 2)

	m.state.Position = m.transform.Apply(base.Add(offset))
	m.state.Rotation = math.QuatBetween(math.Vec3{Y: 1}, n)
}

// Refresh re-places the marker on its current tile.
func (m *OrientedMarker) Refresh() {
	m.PlaceOnTile(m.tileI, m.tileJ)
}

// State returns the current pose.
func (m *OrientedMarker) State() State {
	return m.state
}

// Tile returns the marker's current tile indices.
func (m *OrientedMarker) Tile() (int, int) {
	return m.tileI, m.tileJ
}
