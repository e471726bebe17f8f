// Package config handles sandbox configuration loading and management.
package config

// Config holds all sandbox settings.
type Config struct {
	Terrain   TerrainConfig   `yaml:"terrain"`
	Brush     BrushConfig     `yaml:"brush"`
	Materials MaterialsConfig `yaml:"materials"`
	Preview   PreviewConfig   `yaml:"preview"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// TerrainConfig holds the grid parameters read at terrain-build time.
// Changing any of these requires a full rebuild, never an in-place resize.
type TerrainConfig struct {
	TilesX       int     `yaml:"tiles_x"`
	TilesY       int     `yaml:"tiles_y"`
	TileSize     float32 `yaml:"tile_size"`
	Subdivisions int     `yaml:"subdivisions"`
	MinHeight    float32 `yaml:"min_height"`
	MaxHeight    float32 `yaml:"max_height"`
	Template     string  `yaml:"template"`
	Amplitude    float32 `yaml:"amplitude"`
	Seed         int64   `yaml:"seed"`
}

// BrushConfig holds the default sculpt brush settings.
type BrushConfig struct {
	RadiusTiles float32 `yaml:"radius_tiles"`
	Step        float32 `yaml:"step"`
}

// MaterialsConfig holds paint material bitmap sources, one per channel.
// Empty sources paint with flat tints only.
type MaterialsConfig struct {
	CacheDir string   `yaml:"cache_dir"`
	Sources  []string `yaml:"sources"`
}

// PreviewConfig holds snapshot export settings.
type PreviewConfig struct {
	OutputPath string `yaml:"output_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			TilesX:       30,
			TilesY:       30,
			TileSize:     32,
			Subdivisions: 4,
			MinHeight:    -200,
			MaxHeight:    300,
			Template:     "hills",
			Amplitude:    80,
			Seed:         0,
		},
		Brush: BrushConfig{
			RadiusTiles: 2,
			Step:        0.2,
		},
		Materials: MaterialsConfig{
			CacheDir: "",
			Sources:  nil,
		},
		Preview: PreviewConfig{
			OutputPath: "terrain.png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
