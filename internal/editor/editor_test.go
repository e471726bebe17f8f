package editor

import (
	"bytes"
	"image/png"
	gomath "math"
	"testing"

	"github.com/tomiconicgit/TerrainCreator/internal/config"
	"github.com/tomiconicgit/TerrainCreator/internal/sculpt"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Terrain.Template = "flat"
	return cfg
}

func TestNewSession(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}

	grid := s.Field().Grid()
	if grid.TilesX != 30 || grid.TilesY != 30 {
		t.Errorf("expected 30x30 tiles, got %dx%d", grid.TilesX, grid.TilesY)
	}
	if grid.VertexCount() != 121*121 {
		t.Errorf("expected 14641 vertices, got %d", grid.VertexCount())
	}
	if h := s.SampleHeight(0, 0); h != 0 {
		t.Errorf("expected flat terrain, got height %f at origin", h)
	}
}

func TestNewSessionBadTemplate(t *testing.T) {
	cfg := testConfig()
	cfg.Terrain.Template = "volcano"
	if _, err := NewSession(cfg, nil); err == nil {
		t.Error("expected error for unknown template, got nil")
	}
}

func TestNewSessionBadGrid(t *testing.T) {
	cfg := testConfig()
	cfg.Terrain.TilesX = 0
	if _, err := NewSession(cfg, nil); err == nil {
		t.Error("expected error for zero tiles, got nil")
	}
}

func TestApplyBrushRaisesCenter(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}

	center := s.TileCenterLocal(15, 15)
	before := s.SampleHeight(center.X, center.Y)

	if err := s.ApplyBrush(center, sculpt.ModeRaise, 2, 0.2); err != nil {
		t.Fatalf("brush failed: %v", err)
	}

	got := s.SampleHeight(center.X, center.Y) - before
	if gomath.Abs(float64(got-0.2)) > 1e-4 {
		t.Errorf("expected +0.2 at brush center, got %f", got)
	}
	if s.Strokes() != 1 {
		t.Errorf("expected 1 stroke, got %d", s.Strokes())
	}
}

func TestRefreshAfterBrush(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}

	s.PlaceMarker(15, 15)
	center := s.TileCenterLocal(15, 15)

	for i := 0; i < 10; i++ {
		if err := s.ApplyBrush(center, sculpt.ModeRaise, 2, 1.0); err != nil {
			t.Fatalf("brush failed: %v", err)
		}
	}

	// Normals recomputed, overlay fresh
	if s.Field().Dirty() {
		t.Error("expected normals recomputed after brush")
	}
	if s.Overlay().Stale() {
		t.Error("expected overlay rebuilt after brush")
	}

	// Marker glued to the new surface
	want := s.SampleHeight(center.X, center.Y) + markerHover
	if got := s.Marker().State().Position.Y; gomath.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("expected marker at %f, got %f", want, got)
	}
}

func TestPointerDragCommits(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}

	center := s.TileCenterLocal(10, 10)
	p := s.Pointer()

	if err := p.Down(center); err != nil {
		t.Fatalf("pointer down failed: %v", err)
	}
	if err := p.Move(center); err != nil {
		t.Fatalf("pointer move failed: %v", err)
	}
	p.Up()

	if s.Strokes() != 2 {
		t.Errorf("expected 2 committed strokes, got %d", s.Strokes())
	}
	if s.Overlay().Stale() {
		t.Error("expected overlay fresh after committed drag")
	}
	if s.SampleHeight(center.X, center.Y) <= 0 {
		t.Error("expected terrain raised under drag")
	}
}

func TestSetBrush(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}

	s.SetBrush(sculpt.ModeLower, 3, 0.5)
	center := s.TileCenterLocal(5, 5)

	if err := s.Pointer().Down(center); err != nil {
		t.Fatalf("pointer down failed: %v", err)
	}
	s.Pointer().Up()

	if s.SampleHeight(center.X, center.Y) >= 0 {
		t.Error("expected terrain lowered after switching to lower mode")
	}
}

func TestPaintTile(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}

	s.PaintTile(15, 15, 2, 0)

	corners := s.Field().Grid().TileCornerVertexIndices(15, 15)
	w := s.Mask().WeightsAt(corners[0])
	if w[2] != 1 {
		t.Errorf("expected channel 2 weight 1 on painted tile, got %f", w[2])
	}

	mesh := s.BuildMesh()
	if mesh.Vertices[corners[0]].Weights[2] != 1 {
		t.Error("expected painted weight baked into mesh vertex")
	}
}

func TestScatterAndRebuild(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}

	props := s.Scatter(12)
	if len(props) != 12 {
		t.Fatalf("expected 12 props, got %d", len(props))
	}
	if len(s.Props()) != 12 {
		t.Errorf("expected 12 props in session, got %d", len(s.Props()))
	}

	// Rebuild discards everything
	cfg := testConfig()
	cfg.Terrain.TilesX = 10
	cfg.Terrain.TilesY = 10
	if err := s.Rebuild(cfg); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}

	if len(s.Props()) != 0 {
		t.Errorf("expected no props after rebuild, got %d", len(s.Props()))
	}
	if got := s.Field().Grid().TilesX; got != 10 {
		t.Errorf("expected 10 tiles after rebuild, got %d", got)
	}
	if s.Strokes() != 0 {
		t.Errorf("expected stroke count reset, got %d", s.Strokes())
	}
}

func TestRebuildWithTemplate(t *testing.T) {
	cfg := testConfig()
	cfg.Terrain.Template = "hills"
	cfg.Terrain.Amplitude = 100
	cfg.Terrain.Seed = 7

	s, err := NewSession(cfg, nil)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}

	// Hills must produce relief somewhere, inside the band
	minB, maxB := s.Field().Bounds()
	varied := false
	for i := 0; i < s.Field().Grid().VertexCount(); i++ {
		h := s.Field().HeightAt(i)
		if h < minB || h > maxB {
			t.Fatalf("height %f outside band [%f, %f]", h, minB, maxB)
		}
		if h != 0 {
			varied = true
		}
	}
	if !varied {
		t.Error("expected hills template to displace heights")
	}
}

func TestWorldToTileDelegates(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}

	center := s.TileCenterLocal(7, 23)
	i, j := s.WorldToTile(center.X, center.Y)
	if i != 7 || j != 23 {
		t.Errorf("expected tile (7, 23), got (%d, %d)", i, j)
	}
}

func TestSampleNormalFlat(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}

	n := s.SampleNormal(0, 0)
	if n.Y < 0.999 {
		t.Errorf("expected flat normal +Y, got %v", n)
	}
}

func TestWritePreview(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}

	var buf bytes.Buffer
	if err := s.WritePreview(&buf); err != nil {
		t.Fatalf("preview failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("preview is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != s.Field().Grid().VertexCols() {
		t.Errorf("expected preview width %d, got %d", s.Field().Grid().VertexCols(), img.Bounds().Dx())
	}
}

func TestPaintDisc(t *testing.T) {
	s, err := NewSession(testConfig(), nil)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}

	center := s.TileCenterLocal(15, 15)
	s.PaintDisc(center.X, center.Y, 3, 2)

	col, row := s.Field().Grid().NearestVertex(center.X, center.Y)
	idx := s.Field().Grid().VertexIndex(col, row)
	w := s.Mask().WeightsAt(idx)
	if w[3] < 0.99 {
		t.Errorf("expected full weight at disc center, got %f", w[3])
	}
}
