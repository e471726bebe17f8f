package terrain

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/tomiconicgit/TerrainCreator/pkg/noise"
)

func testField(t *testing.T) *HeightField {
	t.Helper()
	hf, err := NewHeightField(testGrid(), -200, 300)
	if err != nil {
		t.Fatalf("NewHeightField: %v", err)
	}
	return hf
}

func TestNewHeightFieldValidation(t *testing.T) {
	cases := []struct {
		name     string
		grid     Grid
		min, max float32
	}{
		{"zero tiles", Grid{TilesX: 0, TilesY: 10, TileSize: 32, Subdivisions: 4}, -1, 1},
		{"zero tile size", Grid{TilesX: 10, TilesY: 10, TileSize: 0, Subdivisions: 4}, -1, 1},
		{"zero subdivisions", Grid{TilesX: 10, TilesY: 10, TileSize: 32, Subdivisions: 0}, -1, 1},
		{"inverted band", Grid{TilesX: 10, TilesY: 10, TileSize: 32, Subdivisions: 4}, 5, -5},
	}

	for _, tc := range cases {
		if _, err := NewHeightField(tc.grid, tc.min, tc.max); err == nil {
			t.Errorf("%s: expected construction error", tc.name)
		}
	}
}

func TestSampleHeightExactAtVertices(t *testing.T) {
	hf := testField(t)
	g := hf.Grid()

	// Fill with a recognizable pattern.
	for row := 0; row < g.VertexRows(); row++ {
		for col := 0; col < g.VertexCols(); col++ {
			hf.SetHeight(row*g.VertexCols()+col, float32(col%7)-float32(row%5))
		}
	}

	for _, v := range [][2]int{{0, 0}, {1, 0}, {60, 60}, {120, 120}, {13, 111}} {
		p := g.VertexLocal(v[0], v[1])
		want := hf.HeightAt(g.VertexIndex(v[0], v[1]))
		got := hf.SampleHeight(p.X, p.Y)
		if gomath.Abs(float64(got-want)) > 1e-4 {
			t.Errorf("SampleHeight at vertex (%d, %d) = %v, want %v", v[0], v[1], got, want)
		}
	}
}

func TestSampleHeightMidpoint(t *testing.T) {
	hf := testField(t)
	g := hf.Grid()

	hf.SetHeight(g.VertexIndex(0, 0), 0)
	hf.SetHeight(g.VertexIndex(1, 0), 10)
	hf.SetHeight(g.VertexIndex(0, 1), 20)
	hf.SetHeight(g.VertexIndex(1, 1), 30)

	a := g.VertexLocal(0, 0)
	// Midpoint of the first cell blends all four corners equally.
	got := hf.SampleHeight(a.X+g.VertexSpacing()/2, a.Y+g.VertexSpacing()/2)
	if gomath.Abs(float64(got-15)) > 1e-4 {
		t.Errorf("midpoint sample = %v, want 15", got)
	}
}

func TestSampleHeightOutsideExtentsClamps(t *testing.T) {
	hf := testField(t)

	hf.SetHeight(0, 42)
	// Should not panic and should return the corner height.
	got := hf.SampleHeight(-1e7, -1e7)
	if gomath.Abs(float64(got-42)) > 1e-4 {
		t.Errorf("far outside sample = %v, want 42", got)
	}
}

func TestMutateVertexClampsToBand(t *testing.T) {
	hf := testField(t)

	hf.MutateVertex(5, 1e6)
	if got := hf.HeightAt(5); got != 300 {
		t.Errorf("height after huge raise = %v, want 300", got)
	}

	hf.MutateVertex(5, -1e7)
	if got := hf.HeightAt(5); got != -200 {
		t.Errorf("height after huge lower = %v, want -200", got)
	}

	// Out-of-range index clamps instead of panicking.
	hf.MutateVertex(-1, 1)
	hf.MutateVertex(1 << 30, 1)
}

func TestSampleNormalFlatField(t *testing.T) {
	hf := testField(t)

	n := hf.SampleNormal(0, 0)
	if gomath.Abs(float64(n.Y-1)) > 1e-4 || gomath.Abs(float64(n.X)) > 1e-4 || gomath.Abs(float64(n.Z)) > 1e-4 {
		t.Errorf("flat field normal = %+v, want (0, 1, 0)", n)
	}
}

func TestSampleNormalSlopeDirection(t *testing.T) {
	hf := testField(t)
	g := hf.Grid()

	// Ramp rising along +X: normal must lean toward -X and keep +Y.
	for row := 0; row < g.VertexRows(); row++ {
		for col := 0; col < g.VertexCols(); col++ {
			hf.SetHeight(row*g.VertexCols()+col, float32(col)*2)
		}
	}

	n := hf.SampleNormal(0, 0)
	if n.X >= 0 {
		t.Errorf("ramp normal X = %v, want negative", n.X)
	}
	if n.Y <= 0 {
		t.Errorf("ramp normal Y = %v, want positive", n.Y)
	}
}

func TestRecomputeNormalsBumpsVersion(t *testing.T) {
	hf := testField(t)

	v0 := hf.Version()
	hf.MutateVertex(0, 5)
	if !hf.Dirty() {
		t.Fatal("field not dirty after mutation")
	}
	hf.RecomputeNormals()
	if hf.Dirty() {
		t.Error("field still dirty after recompute")
	}
	if hf.Version() != v0+1 {
		t.Errorf("version = %d, want %d", hf.Version(), v0+1)
	}
}

func TestApplyTemplatesStayInBand(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	tbl := noise.NewTable(11)

	for _, tpl := range []Template{TemplateFlat, TemplateHills, TemplateRidges, TemplateFaults} {
		hf := testField(t)
		if err := ApplyTemplate(hf, tpl, tbl, r, 250); err != nil {
			t.Fatalf("ApplyTemplate(%s): %v", tpl, err)
		}
		min, max := hf.Bounds()
		for i := 0; i < hf.Grid().VertexCount(); i++ {
			h := hf.HeightAt(i)
			if h < min || h > max {
				t.Fatalf("template %s: height[%d] = %v outside [%v, %v]", tpl, i, h, min, max)
			}
		}
	}
}

func TestApplyTemplateUnknown(t *testing.T) {
	hf := testField(t)
	if err := ApplyTemplate(hf, Template("volcano"), noise.NewTable(1), rand.New(rand.NewSource(1)), 10); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestJitterStaysInBand(t *testing.T) {
	hf := testField(t)
	Jitter(hf, rand.New(rand.NewSource(5)), 1000)

	min, max := hf.Bounds()
	for i := 0; i < hf.Grid().VertexCount(); i++ {
		h := hf.HeightAt(i)
		if h < min || h > max {
			t.Fatalf("jittered height[%d] = %v outside band", i, h)
		}
	}
}

func TestBuildMesh(t *testing.T) {
	hf := testField(t)
	hf.RecomputeNormals()

	mesh := BuildMesh(hf, nil)

	g := hf.Grid()
	if len(mesh.Vertices) != g.VertexCount() {
		t.Errorf("vertex count = %d, want %d", len(mesh.Vertices), g.VertexCount())
	}
	wantIndices := g.WidthSegments() * g.HeightSegments() * 6
	if len(mesh.Indices) != wantIndices {
		t.Errorf("index count = %d, want %d", len(mesh.Indices), wantIndices)
	}
	if mesh.Bounds.Min[0] != -480 || mesh.Bounds.Max[0] != 480 {
		t.Errorf("bounds X = [%v, %v], want [-480, 480]", mesh.Bounds.Min[0], mesh.Bounds.Max[0])
	}

	// Default weights put everything on channel 0.
	if mesh.Vertices[0].Weights != [4]float32{1, 0, 0, 0} {
		t.Errorf("default weights = %v", mesh.Vertices[0].Weights)
	}
}
