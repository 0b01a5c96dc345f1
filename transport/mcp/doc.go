// Package mcp exposes the pentomino game to AI agents over the Model Context Protocol.
//
// The Client does not talk to the engine directly. Every tool call is proxied
// to the REST API, so an agent sees exactly what a browser or curl would see.
//
// MCP Tools:
//   - create_session, list_sessions, get_session
//   - game_state: board as text, remaining pool, selected piece
//   - select_piece, rotate_piece, flip_piece
//   - place_piece: drop a piece centered on (row, col)
//   - undo, reset_game
//   - action_history: paginated action log
//   - list_configs: available puzzle presets
//   - game_instructions: rules and the piece catalog
//   - describe_cell: whether a cell is covered and by which piece
//
// Transport Modes:
//   - Stdio: server.ServeStdio(client.GetMCPServer())
//   - HTTP: POST JSON-RPC messages to /mcp, handled with HandleMessage
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	if err := server.ServeStdio(client.GetMCPServer()); err != nil {
//		log.Fatal(err)
//	}
package mcp
