package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/pentomino/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	notifier Notifier

	// cancel functions of the engine subscriptions, by session ID
	unsubscribe map[string]func()
	mu          sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return NewGameServiceWithNotifier(sessions, configs, nil)
}

// NewGameServiceWithNotifier creates a game service that forwards every state
// change of every session it creates to notifier
func NewGameServiceWithNotifier(sessions SessionManager, configs ConfigManager, notifier Notifier) GameService {
	return &gameServiceImpl{
		sessions:    sessions,
		configs:     configs,
		notifier:    notifier,
		unsubscribe: make(map[string]func()),
	}
}

// getConfigID returns the config_id for a given preset name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "classic"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found, available configs: %v: %w", configName, configIDs, err)
				}
				return nil, fmt.Errorf("config '%s' not found, use /api/configs to list available configurations: %w", configName, err)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if s.notifier != nil {
		id := session.ID
		s.unsubscribe[id] = session.Engine.Subscribe(func(state *engine.GameState) {
			s.notifier.BroadcastToSession(id, state)
		})
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}
	if cancel, ok := s.unsubscribe[sess.ID]; ok {
		cancel()
		delete(s.unsubscribe, sess.ID)
	}

	return s.sessions.Delete(sessionID)
}

// CleanupExpiredSessions drops idle sessions together with their engine
// subscriptions
func (s *gameServiceImpl) CleanupExpiredSessions(ctx context.Context, maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.sessions.CleanupExpiredSessions(maxIdle)
	for _, id := range removed {
		if cancel, ok := s.unsubscribe[id]; ok {
			cancel()
			delete(s.unsubscribe, id)
		}
	}
	return len(removed)
}

// SelectPiece makes an available piece the one the next transforms apply to
func (s *gameServiceImpl) SelectPiece(ctx context.Context, sessionID string, pieceID int) (*ActionResult, error) {
	if _, ok := engine.CatalogShape(pieceID); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPiece, pieceID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	success := sess.Engine.SelectPiece(pieceID)
	result := newActionResult(engine.ActionSelect, success, sess.Engine.GetState())
	if success {
		result.Events = append(result.Events, GameEvent{
			Type:      "select",
			Message:   fmt.Sprintf("Selected %s", engine.PieceName(pieceID)),
			Timestamp: time.Now(),
			PieceID:   pieceID,
		})
	}
	return result, nil
}

// Rotate turns the selected piece a quarter turn clockwise
func (s *gameServiceImpl) Rotate(ctx context.Context, sessionID string) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	success := sess.Engine.RotateSelected()
	state := sess.Engine.GetState()
	result := newActionResult(engine.ActionRotate, success, state)
	if success {
		id := state.SelectedPiece.ID
		result.Events = append(result.Events, GameEvent{
			Type:      "rotate",
			Message:   fmt.Sprintf("%s rotated to state %d", state.SelectedPiece.Name, state.Rotations[id]),
			Timestamp: time.Now(),
			PieceID:   id,
		})
	}
	return result, nil
}

// Flip mirrors the selected piece across the given axis
func (s *gameServiceImpl) Flip(ctx context.Context, sessionID, axis string) (*ActionResult, error) {
	axis = strings.ToLower(strings.TrimSpace(axis))
	var action string
	switch axis {
	case AxisHorizontal, "h":
		action = engine.ActionFlipHorizontal
	case AxisVertical, "v":
		action = engine.ActionFlipVertical
	default:
		return nil, fmt.Errorf("%w: %q (use %q or %q)", ErrInvalidAxis, axis, AxisHorizontal, AxisVertical)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	var success bool
	if action == engine.ActionFlipHorizontal {
		success = sess.Engine.FlipSelectedHorizontal()
	} else {
		success = sess.Engine.FlipSelectedVertical()
	}

	state := sess.Engine.GetState()
	result := newActionResult(action, success, state)
	if success {
		result.Events = append(result.Events, GameEvent{
			Type:      "flip",
			Message:   fmt.Sprintf("%s flipped %s", state.SelectedPiece.Name, strings.TrimPrefix(action, "flip_")),
			Timestamp: time.Now(),
			PieceID:   state.SelectedPiece.ID,
		})
	}
	return result, nil
}

// Place drops a piece centered on the requested cell
func (s *gameServiceImpl) Place(ctx context.Context, sessionID string, req PlaceRequest) (*ActionResult, error) {
	if req.PieceID != 0 {
		if _, ok := engine.CatalogShape(req.PieceID); !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownPiece, req.PieceID)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	drop := engine.Position{Row: req.Row, Col: req.Col}
	piece := placementCandidate(sess.Engine, req.PieceID)

	var success bool
	if req.PieceID == 0 {
		success = sess.Engine.PlaceSelected(drop)
	} else {
		success = sess.Engine.PlacePiece(req.PieceID, drop)
	}

	state := sess.Engine.GetState()
	result := newActionResult(engine.ActionPlace, success, state)
	if piece == nil {
		return result, nil
	}

	topLeft := engine.CenteredTopLeft(piece.Shape, drop)
	result.Placement = &PlacementInfo{
		PieceID:   piece.ID,
		PieceName: piece.Name,
		Drop:      drop,
		TopLeft:   topLeft,
		Cells:     engine.ShapeCellsAt(piece.Shape, topLeft),
	}

	if !success {
		result.Events = append(result.Events, GameEvent{
			Type:      "blocked",
			Message:   fmt.Sprintf("%s does not fit at (%d,%d)", piece.Name, topLeft.Row, topLeft.Col),
			Timestamp: time.Now(),
			PieceID:   piece.ID,
			Position:  &topLeft,
		})
		return result, nil
	}

	result.Events = append(result.Events, GameEvent{
		Type:      "place",
		Message:   fmt.Sprintf("Placed %s at (%d,%d)", piece.Name, topLeft.Row, topLeft.Col),
		Timestamp: time.Now(),
		PieceID:   piece.ID,
		Position:  &topLeft,
	})
	if state.Complete {
		complete := GameEvent{
			Type:      "complete",
			Message:   "Board filled with all twelve pentominoes!",
			Timestamp: time.Now(),
		}
		result.Events = append(result.Events, complete)
		s.broadcastEvent(sess.ID, complete)
	}
	return result, nil
}

// Undo reverses the most recent placement
func (s *gameServiceImpl) Undo(ctx context.Context, sessionID string) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	last := sess.Engine.GetLastMove()
	success := sess.Engine.Undo()
	result := newActionResult(engine.ActionUndo, success, sess.Engine.GetState())

	if !success {
		result.Events = append(result.Events, GameEvent{
			Type:      "nothing_to_undo",
			Message:   "No placement to undo",
			Timestamp: time.Now(),
		})
		return result, nil
	}

	pos := last.Position
	result.Events = append(result.Events, GameEvent{
		Type:      "undo",
		Message:   fmt.Sprintf("Removed %s from (%d,%d)", last.Piece.Name, pos.Row, pos.Col),
		Timestamp: time.Now(),
		PieceID:   last.Piece.ID,
		Position:  &pos,
	})
	return result, nil
}

// Reset resets a game session to its initial state
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	state := sess.Engine.Reset()
	s.broadcastEvent(sess.ID, GameEvent{
		Type:      "reset",
		Message:   state.Message,
		Timestamp: time.Now(),
	})
	return state, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	return sess.Engine.GetState(), nil
}

// GetActionHistory returns the paginated action log
func (s *gameServiceImpl) GetActionHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}

	history := sess.Engine.GetActionHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var actions []engine.ActionEntry
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			actions = append(actions, history[i])
		}
	} else if start < total {
		actions = history[start:end]
	}

	if actions == nil {
		actions = []engine.ActionEntry{}
	}

	return &HistoryResponse{
		Actions:      actions,
		TotalActions: total,
		Page:         opts.Page,
		PageSize:     opts.Limit,
		TotalPages:   totalPages,
		HasNext:      opts.Page < totalPages,
		HasPrevious:  opts.Page > 1,
	}, nil
}

// ListConfigs returns available presets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific preset
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a preset to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// getSession looks a session up and marks it as accessed. Callers hold s.mu
// for writing, since marking writes the session's LastAccessedAt.
func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess, nil
}

func (s *gameServiceImpl) broadcastEvent(sessionID string, event GameEvent) {
	if s.notifier != nil {
		s.notifier.BroadcastEvent(sessionID, event.Type, event)
	}
}

func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     s.getConfigID(sess.Config.Name),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState(),
		GameConfig:     sess.Config,
	}
}

func newActionResult(action string, success bool, state *engine.GameState) *ActionResult {
	return &ActionResult{
		Success:   success,
		Action:    action,
		GameState: state,
		Message:   state.Message,
		Events:    []GameEvent{},
	}
}

// placementCandidate returns the piece a place request would use, or nil if
// there is none
func placementCandidate(eng *engine.GameEngine, pieceID int) *engine.Piece {
	if pieceID == 0 {
		return eng.SelectedPiece()
	}
	for _, piece := range eng.AvailablePieces() {
		if piece.ID == pieceID {
			return &piece
		}
	}
	return nil
}
