package terrain

import "testing"

func testGrid() Grid {
	return Grid{TilesX: 30, TilesY: 30, TileSize: 32, Subdivisions: 4}
}

func TestGridDimensions(t *testing.T) {
	g := testGrid()

	if got := g.Width(); got != 960 {
		t.Errorf("Width() = %v, want 960", got)
	}
	if got := g.WidthSegments(); got != 120 {
		t.Errorf("WidthSegments() = %v, want 120", got)
	}
	if got := g.VertexCols(); got != 121 {
		t.Errorf("VertexCols() = %v, want 121", got)
	}
	if got := g.VertexCount(); got != 121*121 {
		t.Errorf("VertexCount() = %v, want %v", got, 121*121)
	}
}

func TestWorldToTileClamps(t *testing.T) {
	g := testGrid()

	cases := []struct {
		name   string
		x, z   float32
		wantI  int
		wantJ  int
	}{
		{"origin is center tile", 0, 0, 15, 15},
		{"min corner", -480, -480, 0, 0},
		{"max corner clamps", 480, 480, 29, 29},
		{"far negative clamps", -1e6, -1e6, 0, 0},
		{"far positive clamps", 1e6, 1e6, 29, 29},
		{"tile boundary goes to higher index", -480 + 32, -480, 1, 0},
	}

	for _, tc := range cases {
		i, j := g.WorldToTile(tc.x, tc.z)
		if i != tc.wantI || j != tc.wantJ {
			t.Errorf("%s: WorldToTile(%v, %v) = (%d, %d), want (%d, %d)",
				tc.name, tc.x, tc.z, i, j, tc.wantI, tc.wantJ)
		}
		if i < 0 || i >= g.TilesX || j < 0 || j >= g.TilesY {
			t.Errorf("%s: tile index (%d, %d) out of range", tc.name, i, j)
		}
	}
}

func TestTileCenterLocal(t *testing.T) {
	g := testGrid()

	c := g.TileCenterLocal(0, 0)
	if c.X != -480+16 || c.Y != -480+16 {
		t.Errorf("TileCenterLocal(0,0) = %+v, want (-464, -464)", c)
	}

	// Center round-trips through WorldToTile.
	for _, tile := range [][2]int{{0, 0}, {15, 15}, {29, 29}, {3, 27}} {
		c := g.TileCenterLocal(tile[0], tile[1])
		i, j := g.WorldToTile(c.X, c.Y)
		if i != tile[0] || j != tile[1] {
			t.Errorf("center of (%d, %d) maps back to (%d, %d)", tile[0], tile[1], i, j)
		}
	}
}

func TestTileCornerVertexIndices(t *testing.T) {
	g := testGrid()

	corners := g.TileCornerVertexIndices(0, 0)
	want := [4]int{0, 4, 4 * 121, 4*121 + 4}
	if corners != want {
		t.Errorf("TileCornerVertexIndices(0,0) = %v, want %v", corners, want)
	}

	// Out-of-range tile clamps to the last tile rather than reading past the
	// grid.
	corners = g.TileCornerVertexIndices(500, 500)
	if corners != g.TileCornerVertexIndices(29, 29) {
		t.Errorf("out-of-range tile did not clamp: %v", corners)
	}
}

func TestNearestVertexRoundTrip(t *testing.T) {
	g := testGrid()

	for _, v := range [][2]int{{0, 0}, {60, 60}, {120, 120}, {7, 113}} {
		p := g.VertexLocal(v[0], v[1])
		col, row := g.NearestVertex(p.X, p.Y)
		if col != v[0] || row != v[1] {
			t.Errorf("NearestVertex of vertex (%d, %d) = (%d, %d)", v[0], v[1], col, row)
		}
	}
}
