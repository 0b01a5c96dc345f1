package service

import (
	"context"
	"errors"
	"time"

	"github.com/wricardo/mcp-training/pentomino/game/engine"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExists = errors.New("session already exists")
	ErrConfigNotFound       = errors.New("configuration not found")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrUnknownPiece         = errors.New("unknown piece")
	ErrInvalidAxis          = errors.New("invalid flip axis")
)

// Flip axes accepted by GameService.Flip
const (
	AxisHorizontal = "horizontal"
	AxisVertical   = "vertical"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error
	// CleanupExpiredSessions removes sessions idle for longer than maxIdle
	// and returns how many were removed
	CleanupExpiredSessions(ctx context.Context, maxIdle time.Duration) int

	// Game Operations
	SelectPiece(ctx context.Context, sessionID string, pieceID int) (*ActionResult, error)
	Rotate(ctx context.Context, sessionID string) (*ActionResult, error)
	Flip(ctx context.Context, sessionID, axis string) (*ActionResult, error)
	Place(ctx context.Context, sessionID string, req PlaceRequest) (*ActionResult, error)
	Undo(ctx context.Context, sessionID string) (*ActionResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetActionHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	// CleanupExpiredSessions removes sessions idle for longer than maxAge and
	// returns their IDs
	CleanupExpiredSessions(maxAge time.Duration) []string
}

// ConfigManager handles preset loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// Notifier is told about every state change of a session, and about
// session-level events such as a reset or a solved board
type Notifier interface {
	BroadcastToSession(sessionID string, state *engine.GameState)
	BroadcastEvent(sessionID string, event string, data interface{})
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
