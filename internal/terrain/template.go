package terrain

import (
	"fmt"
	"math/rand"

	"github.com/tomiconicgit/TerrainCreator/pkg/noise"
)

// Template names a terrain seeding operator.
type Template string

const (
	// TemplateFlat zeroes every height.
	TemplateFlat Template = "flat"
	// TemplateHills seeds rolling hills from fractal gradient noise.
	TemplateHills Template = "hills"
	// TemplateRidges seeds ridge lines from cell-distance noise.
	TemplateRidges Template = "ridges"
	// TemplateFaults seeds plateaus from accumulated random faults.
	TemplateFaults Template = "faults"
)

// hillsFrequency controls how many noise features span the field.
const hillsFrequency = 3.0

// faultIterations is the fault count for TemplateFaults. More iterations
// smooth the plateau steps toward rounded terrain.
const faultIterations = 64

// ApplyTemplate overwrites every height in the field with the template's
// output scaled by amplitude, clamped to the height band. The permutation
// table seeds the coherent-noise templates; r seeds the fault template.
// The caller is responsible for the batch recompute afterwards.
func ApplyTemplate(hf *HeightField, tpl Template, tbl *noise.Table, r *rand.Rand, amplitude float32) error {
	g := hf.Grid()

	var sample func(u, v float64) float64
	switch tpl {
	case TemplateFlat:
		sample = func(u, v float64) float64 { return 0 }
	case TemplateHills:
		sample = func(u, v float64) float64 {
			return noise.FractalSum(u*hillsFrequency, v*hillsFrequency, 5, 2.0, 0.5, tbl.Gradient2D)
		}
	case TemplateRidges:
		sample = func(u, v float64) float64 {
			// Invert so feature points become peaks, with distance scaled
			// into roughly [-1, 1].
			d := noise.CellDistance2D(u, v, 6, 24)
			return 1 - clamp64(d/3, 0, 2)
		}
	case TemplateFaults:
		fs := noise.NewFaultSet(r, faultIterations, 1.0)
		sample = func(u, v float64) float64 {
			return fs.Sample(u-0.5, v-0.5)
		}
	default:
		return fmt.Errorf("terrain: unknown template %q", tpl)
	}

	cols := g.VertexCols()
	rows := g.VertexRows()
	for row := 0; row < rows; row++ {
		v := float64(row) / float64(g.HeightSegments())
		for col := 0; col < cols; col++ {
			u := float64(col) / float64(g.WidthSegments())
			hf.SetHeight(row*cols+col, float32(sample(u, v))*amplitude)
		}
	}
	return nil
}

// Jitter adds uniform random noise in [-amount, amount] to every vertex.
// Heights clamp to the band as usual.
func Jitter(hf *HeightField, r *rand.Rand, amount float32) {
	for i := 0; i < hf.Grid().VertexCount(); i++ {
		hf.MutateVertex(i, (r.Float32()*2-1)*amount)
	}
}

func clamp64(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
