// Package config manages Pentomino puzzle presets.
//
// A preset is a JSON file in the configs directory describing how a session
// starts: its display name and description, how the twelve pieces are ordered
// in the pool and the texts shown to the player. The board itself is always
// 6x10 and cannot be configured.
//
// Piece order is chosen in one of three ways:
//   - piece_order: an explicit permutation of the ids 1..12
//   - seed: a deterministic shuffle of the catalog
//   - neither: a fresh random shuffle for every session
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	preset, err := manager.LoadConfig("daily")
//	presets, err := manager.ListConfigs()
//	fallback := manager.GetDefault()
//
// Loaded presets are validated with engine.ValidateGameConfig and cached.
package config
