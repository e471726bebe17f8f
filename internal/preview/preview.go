// Package preview renders a heightfield and its paint mask to a
// shaded-relief image. It is the headless stand-in for the external GPU
// renderer: one pixel per fine vertex, hillshading from the batch normals,
// material tint from the dominant paint channel.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/tomiconicgit/TerrainCreator/internal/paint"
	"github.com/tomiconicgit/TerrainCreator/internal/terrain"
	"github.com/tomiconicgit/TerrainCreator/pkg/math"
)

// lightDir is the fixed hillshading light, normalized at init.
var lightDir = math.Vec3{X: -0.5, Y: 1, Z: -0.3}.Normalize()

// Render rasterizes the field into an RGBA image, one pixel per fine
// vertex. The palette may be nil, in which case a neutral gray base is
// shaded. Call RecomputeNormals on the field before rendering.
func Render(hf *terrain.HeightField, mask *paint.Mask, palette *paint.Palette) *image.RGBA {
	g := hf.Grid()
	img := image.NewRGBA(image.Rect(0, 0, g.VertexCols(), g.VertexRows()))

	minH, maxH := hf.Bounds()
	span := maxH - minH

	for row := 0; row < g.VertexRows(); row++ {
		for col := 0; col < g.VertexCols(); col++ {
			idx := row*g.VertexCols() + col

			tint := [3]float32{0.5, 0.5, 0.5}
			if mask != nil && palette != nil {
				if mat, err := palette.Material(mask.Dominant(idx)); err == nil {
					tint = mat.Tint
				}
			}

			// Lambert shading from the batch normal, with a small ambient
			// floor so valleys stay readable.
			shade := hf.NormalAt(idx).Dot(lightDir)
			if shade < 0 {
				shade = 0
			}
			shade = 0.25 + 0.75*shade

			// Blend a little altitude into the brightness so the band's
			// extremes read even on flat-lit slopes.
			alt := (hf.HeightAt(idx) - minH) / span
			bright := shade * (0.6 + 0.4*alt)

			img.Set(col, row, color.RGBA{
				R: channelByte(tint[0] * bright),
				G: channelByte(tint[1] * bright),
				B: channelByte(tint[2] * bright),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG renders the field and encodes it as PNG.
func WritePNG(w io.Writer, hf *terrain.HeightField, mask *paint.Mask, palette *paint.Palette) error {
	if err := png.Encode(w, Render(hf, mask, palette)); err != nil {
		return fmt.Errorf("preview: encoding png: %w", err)
	}
	return nil
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
