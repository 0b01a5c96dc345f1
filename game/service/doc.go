// Package service provides the business logic layer for the Pentomino game.
//
// The service package implements:
//   - Multi-session game management
//   - Preset (configuration) loading and listing
//   - Translation of input events into engine calls and action results
//   - Change notification fan-out to transports
//   - Paginated action history
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages preset loading and validation.
// Notifier receives a state snapshot after every change of a session, plus
// "reset" and "complete" events.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine. The engine is not safe for concurrent use, so every call
// into a session's engine is serialized by the service.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameService.SelectPiece(ctx, info.ID, 2)
//	result, err := gameService.Place(ctx, info.ID, service.PlaceRequest{Row: 2, Col: 5})
package service
