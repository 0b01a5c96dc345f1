package service

import (
	"time"

	"github.com/wricardo/mcp-training/pentomino/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// PlaceRequest asks for a piece to be dropped with its center at Row/Col.
// A zero PieceID places the selected piece.
type PlaceRequest struct {
	PieceID int `json:"piece_id,omitempty"`
	Row     int `json:"row"`
	Col     int `json:"col"`
}

// ActionResult contains the result of a single input event
type ActionResult struct {
	Success   bool              `json:"success"`
	Action    string            `json:"action"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
	Placement *PlacementInfo    `json:"placement,omitempty"`
}

// PlacementInfo details where a place action landed, or would have landed
type PlacementInfo struct {
	PieceID   int               `json:"piece_id"`
	PieceName string            `json:"piece_name"`
	Drop      engine.Position   `json:"drop"`
	TopLeft   engine.Position   `json:"top_left"`
	Cells     []engine.Position `json:"cells"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string           `json:"type"` // "select", "rotate", "flip", "place", "blocked", "undo", "nothing_to_undo", "complete", "reset"
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	PieceID   int              `json:"piece_id,omitempty"`
	Position  *engine.Position `json:"position,omitempty"`
}

// HistoryOptions configures action history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated action history
type HistoryResponse struct {
	Actions      []engine.ActionEntry `json:"actions"`
	TotalActions int                  `json:"total_actions"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
	TotalPages   int                  `json:"total_pages"`
	HasNext      bool                 `json:"has_next"`
	HasPrevious  bool                 `json:"has_previous"`
}

// ConfigInfo provides information about a preset
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Seeded      bool   `json:"seeded"`
	FixedOrder  bool   `json:"fixed_order"`
}
