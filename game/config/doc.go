// Package config loads sliding puzzle presets from a directory.
//
// A preset is a JSON (.json) or YAML (.yaml, .yml) file holding an
// engine.GameConfig. The file name without extension is the preset ID used
// on the command line and in session creation.
//
// Presets shipped in configs/:
//   - classic: 4x4, 200 shuffle moves (the default)
//   - easy: 3x3, short shuffle
//   - large: 5x5
//   - endless: 4x4 that keeps accepting moves after a solve
//
// Usage:
//
//	manager, err := config.NewManager("configs", config.WithLogger(log))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	preset, err := manager.LoadConfig("large")
//	presets, err := manager.ListConfigs()
//
// When no classic preset exists the first valid preset becomes the default,
// and an empty directory falls back to engine.DefaultGameConfig.
// Loaded presets are validated with engine.ValidateGameConfig and cached
// until RefreshCache is called.
package config
