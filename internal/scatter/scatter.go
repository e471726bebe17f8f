// Package scatter places decorative props on random unoccupied tiles.
package scatter

import (
	"fmt"
	"math/rand"

	"github.com/tomiconicgit/TerrainCreator/internal/terrain"
	"github.com/tomiconicgit/TerrainCreator/pkg/math"
)

// Prop is one placed instance. The base sits flush on the sampled terrain
// height at its tile's center.
type Prop struct {
	TileI, TileJ int
	Position     math.Vec3
}

// Scatterer places props on distinct random tiles of a heightfield.
type Scatterer struct {
	field     *terrain.HeightField
	transform math.Transform
	rng       *rand.Rand

	used  map[[2]int]bool
	props []Prop
}

// NewScatterer creates a scatterer. The heightfield and random source are
// required.
func NewScatterer(field *terrain.HeightField, transform math.Transform, rng *rand.Rand) (*Scatterer, error) {
	if field == nil {
		return nil, fmt.Errorf("scatter: heightfield required")
	}
	if rng == nil {
		return nil, fmt.Errorf("scatter: random source required")
	}
	return &Scatterer{
		field:     field,
		transform: transform,
		rng:       rng,
		used:      make(map[[2]int]bool),
	}, nil
}

// ScatterRandom places count props on distinct random tiles, skipping tiles
// already occupied by earlier calls. count clamps to the remaining free
// tile capacity; the call terminates even when asked for every tile.
func (s *Scatterer) ScatterRandom(count int) []Prop {
	g := s.field.Grid()
	capacity := g.TilesX*g.TilesY - len(s.used)
	if count > capacity {
		count = capacity
	}

	placed := make([]Prop, 0, count)
	for len(placed) < count {
		i := s.rng.Intn(g.TilesX)
		j := s.rng.Intn(g.TilesY)
		if s.used[[2]int{i, j}] {
			continue
		}
		s.used[[2]int{i, j}] = true

		c := g.TileCenterLocal(i, j)
		h := s.field.SampleHeight(c.X, c.Y)

		p := Prop{
			TileI:    i,
			TileJ:    j,
			Position: s.transform.Apply(math.Vec3{X: c.X, Y: h, Z: c.Y}),
		}
		placed = append(placed, p)
		s.props = append(s.props, p)
	}
	return placed
}

// Refresh re-samples every placed prop's elevation so props stay glued to
// the surface after sculpting.
func (s *Scatterer) Refresh() {
	g := s.field.Grid()
	for idx := range s.props {
		p := &s.props[idx]
		c := g.TileCenterLocal(p.TileI, p.TileJ)
		h := s.field.SampleHeight(c.X, c.Y)
		p.Position = s.transform.Apply(math.Vec3{X: c.X, Y: h, Z: c.Y})
	}
}

// Props returns all placed props.
func (s *Scatterer) Props() []Prop {
	return s.props
}

// Occupied reports whether a tile already holds a prop.
func (s *Scatterer) Occupied(i, j int) bool {
	return s.used[[2]int{i, j}]
}

// Clear removes all props and frees their tiles.
func (s *Scatterer) Clear() {
	s.used = make(map[[2]int]bool)
	s.props = s.props[:0]
}
