package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagTiles     = flag.Int("tiles", 0, "Terrain size in tiles per side")
	flagTileSize  = flag.Float64("tile-size", 0, "Tile edge length in world units")
	flagSubdiv    = flag.Int("subdivisions", 0, "Render segments per tile edge")
	flagTemplate  = flag.String("template", "", "Terrain template (flat, hills, ridges, faults)")
	flagSeed      = flag.Int64("seed", 0, "Template generation seed")
	flagPreview   = flag.String("preview", "", "Preview PNG output path")
	flagScript    = flag.String("script", "", "Path to a stroke script to run")
	flagAmplitude = flag.Float64("amplitude", 0, "Template height amplitude")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// ScriptPath returns the stroke script path if provided via --script flag.
func ScriptPath() string {
	return *flagScript
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTiles > 0 {
		cfg.Terrain.TilesX = *flagTiles
		cfg.Terrain.TilesY = *flagTiles
	}
	if *flagTileSize > 0 {
		cfg.Terrain.TileSize = float32(*flagTileSize)
	}
	if *flagSubdiv > 0 {
		cfg.Terrain.Subdivisions = *flagSubdiv
	}
	if *flagTemplate != "" {
		cfg.Terrain.Template = *flagTemplate
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagAmplitude > 0 {
		cfg.Terrain.Amplitude = float32(*flagAmplitude)
	}
	if *flagPreview != "" {
		cfg.Preview.OutputPath = *flagPreview
	}
}
