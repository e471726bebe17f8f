// Package editor owns a full terrain editing session: the height field, the
// paint mask, the selection marker, scattered props, and the grid overlay.
// Every mutating entry point leaves normals, overlay, marker, and props
// consistent with the heights before returning.
package editor

import (
	"fmt"
	"io"
	"math/rand"

	"go.uber.org/zap"

	"github.com/tomiconicgit/TerrainCreator/internal/assets"
	"github.com/tomiconicgit/TerrainCreator/internal/config"
	"github.com/tomiconicgit/TerrainCreator/internal/logger"
	"github.com/tomiconicgit/TerrainCreator/internal/marker"
	"github.com/tomiconicgit/TerrainCreator/internal/overlay"
	"github.com/tomiconicgit/TerrainCreator/internal/paint"
	"github.com/tomiconicgit/TerrainCreator/internal/preview"
	"github.com/tomiconicgit/TerrainCreator/internal/scatter"
	"github.com/tomiconicgit/TerrainCreator/internal/sculpt"
	"github.com/tomiconicgit/TerrainCreator/internal/terrain"
	"github.com/tomiconicgit/TerrainCreator/pkg/math"
	"github.com/tomiconicgit/TerrainCreator/pkg/noise"
)

// markerHover lifts the selection marker off the surface to avoid z-fighting.
const markerHover = 0.5

// Session is the terrain editing facade. It is not safe for concurrent use.
type Session struct {
	log *zap.Logger
	cfg *config.Config

	field     *terrain.HeightField
	mask      *paint.Mask
	palette   *paint.Palette
	brush     *sculpt.Brush
	pointer   *sculpt.Pointer
	marker    marker.Placement
	scatterer *scatter.Scatterer
	overlay   *overlay.Grid

	rng     *rand.Rand
	strokes int
}

// NewSession builds a session from config. The asset manager may be nil;
// material bitmaps then fall back to the placeholder.
func NewSession(cfg *config.Config, mgr *assets.Manager) (*Session, error) {
	s := &Session{
		log: logger.Named("editor"),
	}

	materials := paint.DefaultMaterials
	for i, src := range cfg.Materials.Sources {
		if i >= paint.ChannelCount {
			break
		}
		materials[i].Source = src
	}
	s.palette = paint.NewPalette(materials, mgr)

	if err := s.Rebuild(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Rebuild discards all terrain state and reallocates it from config.
// Grid parameters are never resized in place; paint weights and scattered
// props from the previous terrain are lost.
func (s *Session) Rebuild(cfg *config.Config) error {
	tc := cfg.Terrain

	grid := terrain.Grid{
		TilesX:       tc.TilesX,
		TilesY:       tc.TilesY,
		TileSize:     tc.TileSize,
		Subdivisions: tc.Subdivisions,
	}

	field, err := terrain.NewHeightField(grid, tc.MinHeight, tc.MaxHeight)
	if err != nil {
		return fmt.Errorf("building height field: %w", err)
	}

	rng := rand.New(rand.NewSource(tc.Seed))
	if tc.Template != "" && terrain.Template(tc.Template) != terrain.TemplateFlat {
		tbl := noise.NewTable(tc.Seed)
		if err := terrain.ApplyTemplate(field, terrain.Template(tc.Template), tbl, rng, tc.Amplitude); err != nil {
			return fmt.Errorf("applying template: %w", err)
		}
	}
	field.RecomputeNormals()

	mask, err := paint.NewMask(grid)
	if err != nil {
		return fmt.Errorf("building paint mask: %w", err)
	}

	brush, err := sculpt.NewBrush(field)
	if err != nil {
		return fmt.Errorf("building brush: %w", err)
	}

	mk, err := marker.NewFlatMarker(field, math.IdentityTransform(), markerHover)
	if err != nil {
		return fmt.Errorf("building marker: %w", err)
	}

	sc, err := scatter.NewScatterer(field, math.IdentityTransform(), rng)
	if err != nil {
		return fmt.Errorf("building scatterer: %w", err)
	}

	ov, err := overlay.NewGrid(field, tc.Subdivisions)
	if err != nil {
		return fmt.Errorf("building grid overlay: %w", err)
	}

	s.cfg = cfg
	s.field = field
	s.mask = mask
	s.brush = brush
	s.pointer = sculpt.NewPointer(brush, s, sculpt.ModeRaise, cfg.Brush.RadiusTiles, cfg.Brush.Step)
	s.marker = mk
	s.scatterer = sc
	s.overlay = ov
	s.rng = rng
	s.strokes = 0

	s.log.Info("terrain rebuilt",
		zap.Int("tiles_x", tc.TilesX),
		zap.Int("tiles_y", tc.TilesY),
		zap.Float32("tile_size", tc.TileSize),
		zap.Int("subdivisions", tc.Subdivisions),
		zap.String("template", tc.Template),
	)
	return nil
}

// Field returns the height field.
func (s *Session) Field() *terrain.HeightField { return s.field }

// Mask returns the paint mask.
func (s *Session) Mask() *paint.Mask { return s.mask }

// Palette returns the material palette.
func (s *Session) Palette() *paint.Palette { return s.palette }

// Marker returns the selection marker.
func (s *Session) Marker() marker.Placement { return s.marker }

// Overlay returns the tile grid overlay.
func (s *Session) Overlay() *overlay.Grid { return s.overlay }

// Pointer returns the sculpt pointer state machine.
func (s *Session) Pointer() *sculpt.Pointer { return s.pointer }

// Props returns the scattered props.
func (s *Session) Props() []scatter.Prop { return s.scatterer.Props() }

// Strokes returns the number of committed brush strokes this session.
func (s *Session) Strokes() int { return s.strokes }

// SampleHeight returns the bilinear terrain height at a local position.
func (s *Session) SampleHeight(localX, localZ float32) float32 {
	return s.field.SampleHeight(localX, localZ)
}

// SampleNormal returns the surface normal at a local position.
func (s *Session) SampleNormal(localX, localZ float32) math.Vec3 {
	return s.field.SampleNormal(localX, localZ)
}

// WorldToTile maps a local position to clamped tile indices.
func (s *Session) WorldToTile(localX, localZ float32) (int, int) {
	return s.field.Grid().WorldToTile(localX, localZ)
}

// TileCenterLocal returns the local-space center of a tile.
func (s *Session) TileCenterLocal(i, j int) math.Vec2 {
	return s.field.Grid().TileCenterLocal(i, j)
}

// SetBrush changes the pointer's sculpt settings for subsequent strokes.
func (s *Session) SetBrush(mode sculpt.Mode, radiusTiles, step float32) {
	s.pointer.Mode = mode
	s.pointer.RadiusTiles = radiusTiles
	s.pointer.Step = step
}

// ApplyBrush applies one brush pass at a local hit point and refreshes
// dependents. Scripted sessions use this directly; interactive drags go
// through Pointer.
func (s *Session) ApplyBrush(hit math.Vec2, mode sculpt.Mode, radiusTiles, step float32) error {
	if err := s.brush.Apply(hit, mode, radiusTiles, step); err != nil {
		return err
	}
	s.strokes++
	s.RefreshDependents()
	return nil
}

// CommitStroke finishes one pointer brush application. The pointer calls
// this after every Down/Move displacement.
func (s *Session) CommitStroke() {
	s.strokes++
	s.RefreshDependents()
}

// PaintTile hard-paints the tile block around (i, j) with a material channel.
func (s *Session) PaintTile(i, j, materialID int, brushRadiusInTiles float32) {
	s.mask.PaintTileRegion(i, j, materialID, brushRadiusInTiles)
	s.RefreshDependents()
}

// PaintDisc soft-paints a falloff disc at a local position.
func (s *Session) PaintDisc(localX, localZ float32, materialID int, radiusTiles float32) {
	s.mask.PaintDisc(localX, localZ, materialID, radiusTiles)
	s.RefreshDependents()
}

// PlaceMarker moves the selection marker onto a tile.
func (s *Session) PlaceMarker(i, j int) {
	s.marker.PlaceOnTile(i, j)
}

// Scatter places count props on unique random tiles and returns them.
func (s *Session) Scatter(count int) []scatter.Prop {
	placed := s.scatterer.ScatterRandom(count)
	s.log.Debug("props scattered", zap.Int("requested", count), zap.Int("placed", len(placed)))
	return placed
}

// RefreshDependents brings every derived structure back in sync with the
// heights: normals first, then overlay, marker, and props. Safe to call
// when nothing changed.
func (s *Session) RefreshDependents() {
	if s.field.Dirty() {
		s.field.RecomputeNormals()
	}
	if s.overlay.Stale() {
		s.overlay.Rebuild()
	}
	s.marker.Refresh()
	s.scatterer.Refresh()
}

// BuildMesh produces the render mesh with paint weights baked per vertex.
func (s *Session) BuildMesh() *terrain.Mesh {
	return terrain.BuildMesh(s.field, func(vertex int) [4]float32 {
		return s.mask.WeightsAt(vertex)
	})
}

// WritePreview renders the top-down snapshot PNG to w.
func (s *Session) WritePreview(w io.Writer) error {
	return preview.WritePNG(w, s.field, s.mask, s.palette)
}
