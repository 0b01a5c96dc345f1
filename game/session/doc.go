// Package session keeps the live Pentomino boards of a server in memory.
//
// Each session owns one engine.GameEngine built from a preset, so two players
// never share a board, a piece pool or an undo stack. Nothing is written to
// disk: a restart starts every player over.
//
// IDs are four hex characters from crypto/rand, short enough to type into
// an MCP tool call. Lookups ignore case, and a colliding ID is drawn again.
//
//	manager := session.NewManager()
//	sess, err := manager.Create("", preset)
//	if err != nil {
//		return err
//	}
//	sess.Engine.PlacePiece(10, engine.Position{Row: 1, Col: 1})
//
// The game service marks a session as accessed on every call. Idle sessions
// are dropped by CleanupExpiredSessions, which reports the removed IDs so the
// service can cancel their state broadcasts.
package session
