// Package main is the headless terrain sandbox: it builds a terrain from
// config, optionally runs a stroke script, and writes a preview PNG.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tomiconicgit/TerrainCreator/internal/assets"
	"github.com/tomiconicgit/TerrainCreator/internal/config"
	"github.com/tomiconicgit/TerrainCreator/internal/editor"
	"github.com/tomiconicgit/TerrainCreator/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== TerrainCreator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Material bitmaps are optional; without a cache dir the palette
	// serves placeholder tints only.
	var mgr *assets.Manager
	if cfg.Materials.CacheDir != "" {
		mgr, err = assets.NewManager(cfg.Materials.CacheDir)
		if err != nil {
			logger.Error("failed to create asset manager", zap.Error(err))
			os.Exit(1)
		}
	}

	session, err := editor.NewSession(cfg, mgr)
	if err != nil {
		logger.Error("failed to build terrain session", zap.Error(err))
		os.Exit(1)
	}

	if mgr != nil {
		session.Palette().FetchBitmaps()
	}

	if script := config.ScriptPath(); script != "" {
		f, err := os.Open(script)
		if err != nil {
			logger.Error("failed to open stroke script", zap.Error(err))
			os.Exit(1)
		}
		err = runScript(session, f)
		f.Close()
		if err != nil {
			logger.Error("stroke script failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("stroke script finished",
			zap.String("path", script),
			zap.Int("strokes", session.Strokes()),
			zap.Int("props", len(session.Props())),
		)
	}

	out, err := os.Create(cfg.Preview.OutputPath)
	if err != nil {
		logger.Error("failed to create preview file", zap.Error(err))
		os.Exit(1)
	}
	err = session.WritePreview(out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Error("failed to write preview", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("preview written", zap.String("path", cfg.Preview.OutputPath))
}
