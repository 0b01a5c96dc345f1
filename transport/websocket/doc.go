// Package websocket pushes Pentomino session state to browsers and other
// live clients.
//
// A central Hub owns every connection. Clients attach to one session with
// the ?session=<id> query parameter and receive one JSON message per frame:
//
//	{"session_id": "a1b2", "event": "connected", "game_state": {...}}
//	{"session_id": "a1b2", "event": "state_update", "game_state": {...}}
//	{"session_id": "a1b2", "event": "reset", "data": {"type": "reset", ...}}
//
// The hub implements service.Notifier, so every change notification of a
// session engine ends up as a state_update for that session's clients. The
// service adds "reset" and "complete" events through BroadcastEvent.
// Messages from clients are read and discarded.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	defer hub.Stop()
//
//	svc := service.NewGameServiceWithNotifier(sessions, configs, hub)
//
// Concurrency:
//
// Only the Run loop reads or writes the client registry. Broadcasts are
// queued on a buffered channel and never block the caller.
package websocket
