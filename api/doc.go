// Package api provides the HTTP REST API for the Pentomino game.
//
// Endpoints:
//
// Session Management:
//   - POST   /api/sessions              - Create a session {"config_id": "classic"}
//   - GET    /api/sessions              - List sessions (?sort=created|accessed&order=asc|desc&limit=N)
//   - GET    /api/sessions/unified      - Progress overview (?sessionIds=a,b or ?configName=x)
//   - GET    /api/sessions/{id}         - Get a session
//   - DELETE /api/sessions/{id}         - Delete a session
//
// Game Operations:
//   - GET  /api/sessions/{id}/state    - Current game state
//   - POST /api/sessions/{id}/select   - {"piece_id": 3}
//   - POST /api/sessions/{id}/rotate   - Rotate the selected piece clockwise
//   - POST /api/sessions/{id}/flip     - {"axis": "horizontal|vertical"}
//   - POST /api/sessions/{id}/place    - {"row": 2, "col": 5, "piece_id": 3}; piece_id is optional
//   - POST /api/sessions/{id}/undo     - Undo the last placement
//   - POST /api/sessions/{id}/reset    - Start over
//   - GET  /api/sessions/{id}/history  - Action log (?page=1&limit=20&order=desc)
//
// Catalog and Configuration:
//   - GET  /api/pieces                 - The twelve pentominoes and their orientation counts
//   - GET  /api/configs                - List presets
//   - POST /api/configs                - Save a preset
//   - GET  /api/configs/{name}         - Get a preset
//
// Other:
//   - GET /health, /api/health         - Liveness
//   - GET /ws?session={id}             - WebSocket state updates
//
// Action endpoints always answer 200 with a service.ActionResult. A rejected
// action (nothing selected, overlap, piece already placed) has success=false
// and leaves the session unchanged. Errors are returned as JSON:
//
//	{"error": "session abcd: session not found"}
//
// with 400 for bad input, 404 for unknown sessions or presets and 500 otherwise.
package api
