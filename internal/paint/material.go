package paint

import (
	"fmt"
	"image"

	"github.com/tomiconicgit/TerrainCreator/internal/assets"
)

// Material describes one paintable surface material. Tint is used by the
// headless preview; Source is fetched through the asset manager for the
// real renderer's texture.
type Material struct {
	Name   string
	Source string
	Tint   [3]float32
}

// DefaultMaterials is the stock palette, one per mask channel.
var DefaultMaterials = [ChannelCount]Material{
	{Name: "grass", Tint: [3]float32{0.35, 0.55, 0.25}},
	{Name: "rock", Tint: [3]float32{0.45, 0.42, 0.40}},
	{Name: "sand", Tint: [3]float32{0.76, 0.70, 0.50}},
	{Name: "snow", Tint: [3]float32{0.92, 0.92, 0.95}},
}

// Palette binds mask channels to materials and their bitmaps.
type Palette struct {
	materials [ChannelCount]Material
	assets    *assets.Manager
}

// NewPalette creates a palette over an asset manager. The manager may be nil
// for headless use; Bitmap then always serves the placeholder.
func NewPalette(materials [ChannelCount]Material, mgr *assets.Manager) *Palette {
	return &Palette{materials: materials, assets: mgr}
}

// Material returns the material bound to a channel.
func (p *Palette) Material(channel int) (Material, error) {
	if channel < 0 || channel >= ChannelCount {
		return Material{}, fmt.Errorf("paint: material channel %d out of range", channel)
	}
	return p.materials[channel], nil
}

// FetchBitmaps starts an async load for every material with a source.
// Painting proceeds against placeholders until loads resolve.
func (p *Palette) FetchBitmaps() {
	if p.assets == nil {
		return
	}
	for _, m := range p.materials {
		if m.Source != "" {
			p.assets.LoadAsync(m.Name, m.Source)
		}
	}
}

// Bitmap returns the material's bitmap if loaded, or the placeholder.
func (p *Palette) Bitmap(channel int) image.Image {
	if channel < 0 || channel >= ChannelCount || p.assets == nil {
		return assets.Placeholder
	}
	return p.assets.Get(p.materials[channel].Name)
}
