// Package engine provides the core game logic for the Pentomino puzzle.
//
// The engine package implements the game mechanics including:
//   - Piece geometry and rotate/flip transforms
//   - The catalog of the twelve free pentominoes
//   - A fixed 6x10 occupancy board with placement and collision checks
//   - A move history supporting exact, single-step undo
//   - Session orchestration of selection, transforms, placement and undo
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. Shape is the boolean cell matrix of a piece,
// Board is the occupancy grid and History is the undo stack. GameState is
// a read-only snapshot handed to renderers.
//
// Usage:
//
//	eng := engine.NewEngineWithDefaults()
//
//	eng.SelectPiece(2)
//	eng.RotateSelected()
//	if !eng.PlaceSelected(engine.Position{Row: 2, Col: 5}) {
//		// rejected, the piece stays selected
//	}
//	eng.Undo()
//	state := eng.GetState()
//
// Placement:
//
// A drop coordinate is treated as the visual center of the piece. The
// top-left corner is recentered and clamped into the board before the
// placement is validated; see CenteredTopLeft.
//
// Concurrency:
//
// The engine is synchronous and not safe for concurrent use. Hosts serialize
// every call on one logical sequence.
package engine
