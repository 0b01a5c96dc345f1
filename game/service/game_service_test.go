package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/wricardo/mcp-training/pentomino/game/engine"
	"github.com/wricardo/mcp-training/pentomino/game/service"
)

const (
	pieceI = 2
	pieceX = 10
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id string, config *engine.GameConfig) (*service.Session, error) {
	// Generate ID if empty (mimics real session manager behavior)
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, service.ErrSessionAlreadyExists
	}

	eng, err := engine.NewEngine(config)
	if err != nil {
		return nil, err
	}

	session := &service.Session{
		ID:             id,
		Engine:         eng,
		Config:         config,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, service.ErrSessionNotFound
	}
	return session, nil
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) CleanupExpiredSessions(maxAge time.Duration) []string {
	cutoff := time.Now().Add(-maxAge)
	var removed []string
	for id, session := range m.sessions {
		if session.LastAccessedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed = append(removed, id)
		}
	}
	return removed
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if session, exists := m.sessions[id]; exists {
		session.LastAccessedAt = time.Now()
		return nil
	}
	return service.ErrSessionNotFound
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.GameConfig
	saved   map[string]*engine.GameConfig
}

func NewMockConfigManager() *MockConfigManager {
	defaultConfig := &engine.GameConfig{
		Name:        "test",
		Description: "Test configuration",
		PieceOrder:  []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		Messages: engine.Messages{
			Welcome: "Welcome to test!",
			Placed:  "Placed!",
			Blocked: "Blocked!",
		},
	}

	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{
			"test":    defaultConfig,
			"default": defaultConfig,
		},
		saved: make(map[string]*engine.GameConfig),
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	config, exists := m.configs[name]
	if !exists {
		return nil, service.ErrConfigNotFound
	}
	return config, nil
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	result := make([]*service.ConfigInfo, 0, len(m.configs))
	for name, config := range m.configs {
		result = append(result, &service.ConfigInfo{
			Filename:    name + ".json",
			ConfigID:    name,
			Name:        config.Name,
			Description: config.Description,
			FixedOrder:  len(config.PieceOrder) > 0,
		})
	}
	return result, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	return m.configs["default"]
}

func (m *MockConfigManager) SaveConfig(name string, config *engine.GameConfig) error {
	if err := engine.ValidateGameConfig(config); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidConfig, err)
	}
	m.saved[name] = config
	return nil
}

// recordingNotifier captures broadcasts
type recordingNotifier struct {
	calls  []string
	last   *engine.GameState
	events []string
}

func (n *recordingNotifier) BroadcastEvent(sessionID string, event string, data interface{}) {
	n.events = append(n.events, event)
}

func (n *recordingNotifier) BroadcastToSession(sessionID string, state *engine.GameState) {
	n.calls = append(n.calls, sessionID)
	n.last = state
}

func newTestService(t *testing.T) (service.GameService, string) {
	t.Helper()
	svc := service.NewGameService(NewMockSessionManager(), NewMockConfigManager())
	info, err := svc.CreateSession(context.Background(), "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return svc, info.ID
}

// Test cases
func TestGameService_CreateSession(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	tests := []struct {
		name       string
		configName string
		wantErr    bool
	}{
		{
			name:       "create with default config",
			configName: "",
			wantErr:    false,
		},
		{
			name:       "create with specific config",
			configName: "test",
			wantErr:    false,
		},
		{
			name:       "create with invalid config",
			configName: "nonexistent",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.CreateSession(ctx, tt.configName)
			if (err != nil) != tt.wantErr {
				t.Errorf("CreateSession() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, service.ErrConfigNotFound) {
					t.Errorf("CreateSession() error = %v, want ErrConfigNotFound", err)
				}
				return
			}
			if session == nil {
				t.Fatal("CreateSession() returned nil session")
			}
			if got := len(session.GameState.AvailablePieces); got != engine.PieceCount {
				t.Errorf("new session has %d pieces, want %d", got, engine.PieceCount)
			}
			if session.GameState.Message != "Welcome to test!" {
				t.Errorf("Message = %q, want welcome text", session.GameState.Message)
			}
		})
	}
}

func TestGameService_SelectPiece(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	tests := []struct {
		name        string
		sessionID   string
		pieceID     int
		wantErr     error
		wantSuccess bool
	}{
		{name: "available piece", sessionID: id, pieceID: pieceI, wantSuccess: true},
		{name: "unknown piece", sessionID: id, pieceID: 42, wantErr: service.ErrUnknownPiece},
		{name: "invalid session", sessionID: "nope", pieceID: pieceI, wantErr: service.ErrSessionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.SelectPiece(ctx, tt.sessionID, tt.pieceID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("SelectPiece() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SelectPiece() unexpected error: %v", err)
			}
			if result.Success != tt.wantSuccess {
				t.Errorf("Success = %v, want %v", result.Success, tt.wantSuccess)
			}
			if result.GameState.SelectedPiece == nil || result.GameState.SelectedPiece.ID != tt.pieceID {
				t.Errorf("SelectedPiece = %+v, want id %d", result.GameState.SelectedPiece, tt.pieceID)
			}
			if len(result.Events) != 1 || result.Events[0].Type != "select" {
				t.Errorf("Events = %+v, want one select event", result.Events)
			}
		})
	}
}

func TestGameService_SelectPlacedPieceIsRejected(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	if _, err := svc.Place(ctx, id, service.PlaceRequest{PieceID: pieceX, Row: 1, Col: 1}); err != nil {
		t.Fatalf("Place() error: %v", err)
	}

	result, err := svc.SelectPiece(ctx, id, pieceX)
	if err != nil {
		t.Fatalf("SelectPiece() error: %v", err)
	}
	if result.Success {
		t.Error("selecting a placed piece should fail")
	}
	if len(result.Events) != 0 {
		t.Errorf("Events = %+v, want none", result.Events)
	}
}

func TestGameService_RotateAndFlip(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	// Nothing selected: no-op
	result, err := svc.Rotate(ctx, id)
	if err != nil {
		t.Fatalf("Rotate() error: %v", err)
	}
	if result.Success {
		t.Error("Rotate() without selection should not succeed")
	}

	if _, err := svc.SelectPiece(ctx, id, pieceI); err != nil {
		t.Fatalf("SelectPiece() error: %v", err)
	}

	result, err = svc.Rotate(ctx, id)
	if err != nil {
		t.Fatalf("Rotate() error: %v", err)
	}
	if !result.Success {
		t.Fatal("Rotate() should succeed with a selection")
	}
	shape := result.GameState.SelectedPiece.Shape
	if shape.Rows() != 5 || shape.Cols() != 1 {
		t.Errorf("rotated I is %dx%d, want 5x1", shape.Rows(), shape.Cols())
	}
	if result.GameState.Rotations[pieceI] != 1 {
		t.Errorf("rotation state = %d, want 1", result.GameState.Rotations[pieceI])
	}

	tests := []struct {
		axis       string
		wantAction string
		wantErr    bool
	}{
		{axis: "horizontal", wantAction: engine.ActionFlipHorizontal},
		{axis: "V", wantAction: engine.ActionFlipVertical},
		{axis: "diagonal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("flip "+tt.axis, func(t *testing.T) {
			result, err := svc.Flip(ctx, id, tt.axis)
			if tt.wantErr {
				if !errors.Is(err, service.ErrInvalidAxis) {
					t.Errorf("Flip() error = %v, want ErrInvalidAxis", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Flip() error: %v", err)
			}
			if !result.Success || result.Action != tt.wantAction {
				t.Errorf("Flip() = success %v action %q, want true %q", result.Success, result.Action, tt.wantAction)
			}
		})
	}
}

func TestGameService_Place(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	// No selection and no piece id: rejected without placement info
	result, err := svc.Place(ctx, id, service.PlaceRequest{Row: 2, Col: 5})
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if result.Success || result.Placement != nil {
		t.Errorf("Place() without piece = %+v, want failure without placement", result)
	}

	if _, err := svc.SelectPiece(ctx, id, pieceI); err != nil {
		t.Fatalf("SelectPiece() error: %v", err)
	}
	result, err = svc.Place(ctx, id, service.PlaceRequest{Row: 2, Col: 5})
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if !result.Success {
		t.Fatalf("Place() failed: %s", result.Message)
	}
	want := engine.Position{Row: 2, Col: 3}
	if result.Placement == nil || result.Placement.TopLeft != want {
		t.Fatalf("Placement = %+v, want top-left %+v", result.Placement, want)
	}
	if len(result.Placement.Cells) != engine.PieceCells {
		t.Errorf("Placement cells = %d, want %d", len(result.Placement.Cells), engine.PieceCells)
	}
	if result.GameState.EmptyCells != engine.Rows*engine.Cols-engine.PieceCells {
		t.Errorf("EmptyCells = %d", result.GameState.EmptyCells)
	}
	if result.Events[0].Type != "place" {
		t.Errorf("first event = %q, want place", result.Events[0].Type)
	}

	// Overlapping placement of X on the I
	result, err = svc.Place(ctx, id, service.PlaceRequest{PieceID: pieceX, Row: 2, Col: 4})
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if result.Success {
		t.Error("overlapping placement should fail")
	}
	if len(result.Events) != 1 || result.Events[0].Type != "blocked" {
		t.Errorf("Events = %+v, want one blocked event", result.Events)
	}
	if result.Message != "Blocked! [Piece: X at (1,3)]" {
		t.Errorf("Message = %q", result.Message)
	}

	if _, err := svc.Place(ctx, id, service.PlaceRequest{PieceID: 99}); !errors.Is(err, service.ErrUnknownPiece) {
		t.Errorf("Place() unknown piece error = %v, want ErrUnknownPiece", err)
	}
}

func TestGameService_Undo(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	result, err := svc.Undo(ctx, id)
	if err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if result.Success || result.Events[0].Type != "nothing_to_undo" {
		t.Errorf("Undo() on empty history = %+v", result)
	}

	if _, err := svc.Place(ctx, id, service.PlaceRequest{PieceID: pieceX, Row: 1, Col: 1}); err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	result, err = svc.Undo(ctx, id)
	if err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if !result.Success {
		t.Fatal("Undo() after a placement should succeed")
	}
	ev := result.Events[0]
	if ev.Type != "undo" || ev.PieceID != pieceX || ev.Position == nil || *ev.Position != (engine.Position{Row: 0, Col: 0}) {
		t.Errorf("undo event = %+v", ev)
	}
	pieces := result.GameState.AvailablePieces
	if pieces[len(pieces)-1].ID != pieceX {
		t.Errorf("undone piece should be last in the pool, got %d", pieces[len(pieces)-1].ID)
	}
}

func TestGameService_GetActionHistory(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	// 5 actions: select, rotate, place, undo, undo (rejected)
	svc.SelectPiece(ctx, id, pieceI)
	svc.Rotate(ctx, id)
	svc.Place(ctx, id, service.PlaceRequest{Row: 2, Col: 2})
	svc.Undo(ctx, id)
	svc.Undo(ctx, id)

	tests := []struct {
		name        string
		opts        service.HistoryOptions
		wantCount   int
		wantFirst   string
		wantPages   int
		wantHasNext bool
	}{
		{
			name:      "defaults are newest first",
			opts:      service.HistoryOptions{},
			wantCount: 5, wantFirst: engine.ActionUndo, wantPages: 1,
		},
		{
			name:      "ascending first page",
			opts:      service.HistoryOptions{Page: 1, Limit: 2, Order: "asc"},
			wantCount: 2, wantFirst: engine.ActionSelect, wantPages: 3, wantHasNext: true,
		},
		{
			name:      "descending last page",
			opts:      service.HistoryOptions{Page: 3, Limit: 2, Order: "desc"},
			wantCount: 1, wantFirst: engine.ActionSelect, wantPages: 3,
		},
		{
			name:      "page past the end",
			opts:      service.HistoryOptions{Page: 9, Limit: 2, Order: "asc"},
			wantCount: 0, wantPages: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.GetActionHistory(ctx, id, tt.opts)
			if err != nil {
				t.Fatalf("GetActionHistory() error: %v", err)
			}
			if resp.TotalActions != 5 {
				t.Errorf("TotalActions = %d, want 5", resp.TotalActions)
			}
			if len(resp.Actions) != tt.wantCount {
				t.Fatalf("len(Actions) = %d, want %d", len(resp.Actions), tt.wantCount)
			}
			if tt.wantCount > 0 && resp.Actions[0].Action != tt.wantFirst {
				t.Errorf("first action = %q, want %q", resp.Actions[0].Action, tt.wantFirst)
			}
			if resp.TotalPages != tt.wantPages || resp.HasNext != tt.wantHasNext {
				t.Errorf("pages = %d hasNext = %v, want %d %v", resp.TotalPages, resp.HasNext, tt.wantPages, tt.wantHasNext)
			}
		})
	}

	if _, err := svc.GetActionHistory(ctx, "nope", service.HistoryOptions{}); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("GetActionHistory() error = %v, want ErrSessionNotFound", err)
	}
}

func TestGameService_ListSessions(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	configs := NewMockConfigManager()
	svc := service.NewGameService(sessions, configs)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateSession(ctx, "test"); err != nil {
			t.Fatalf("Failed to create session %d: %v", i, err)
		}
	}

	list, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(list) != 3 {
		t.Errorf("ListSessions() returned %d sessions, want 3", len(list))
	}
}

func TestGameService_DeleteSession(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	if err := svc.DeleteSession(ctx, id); err != nil {
		t.Fatalf("DeleteSession() error: %v", err)
	}
	if _, err := svc.GetSession(ctx, id); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("GetSession() after delete error = %v, want ErrSessionNotFound", err)
	}
	if err := svc.DeleteSession(ctx, id); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("second DeleteSession() error = %v, want ErrSessionNotFound", err)
	}
}

func TestGameService_Reset(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	svc.SelectPiece(ctx, id, pieceI)
	svc.Rotate(ctx, id)
	svc.Place(ctx, id, service.PlaceRequest{Row: 2, Col: 2})

	state, err := svc.Reset(ctx, id)
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if state.EmptyCells != engine.Rows*engine.Cols {
		t.Errorf("EmptyCells after reset = %d", state.EmptyCells)
	}
	if len(state.AvailablePieces) != engine.PieceCount {
		t.Errorf("pieces after reset = %d", len(state.AvailablePieces))
	}
	if len(state.Rotations) != 0 {
		t.Errorf("rotations after reset = %v, want empty", state.Rotations)
	}
	if state.AvailablePieces[0].ID != 1 {
		t.Errorf("first piece after reset = %d, want preset order", state.AvailablePieces[0].ID)
	}
}

func TestGameService_Notifier(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := service.NewGameServiceWithNotifier(NewMockSessionManager(), NewMockConfigManager(), notifier)

	info, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("CreateSession() error: %v", err)
	}

	svc.SelectPiece(ctx, info.ID, pieceI)
	svc.Rotate(ctx, info.ID)
	svc.Undo(ctx, info.ID) // nothing to undo, no notification

	if len(notifier.calls) != 2 {
		t.Fatalf("notifications = %d, want 2", len(notifier.calls))
	}
	if notifier.calls[0] != info.ID {
		t.Errorf("notified session %q, want %q", notifier.calls[0], info.ID)
	}
	if notifier.last.Rotations[pieceI] != 1 {
		t.Errorf("last notified rotation = %d, want 1", notifier.last.Rotations[pieceI])
	}

	if len(notifier.events) != 0 {
		t.Errorf("events = %v, want none before a reset", notifier.events)
	}
	if _, err := svc.Reset(ctx, info.ID); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	if len(notifier.events) != 1 || notifier.events[0] != "reset" {
		t.Errorf("events = %v, want [reset]", notifier.events)
	}

	if err := svc.DeleteSession(ctx, info.ID); err != nil {
		t.Fatalf("DeleteSession() error: %v", err)
	}
}

func TestGameService_CleanupExpiredSessions(t *testing.T) {
	ctx := context.Background()
	sessions := NewMockSessionManager()
	notifier := &recordingNotifier{}
	svc := service.NewGameServiceWithNotifier(sessions, NewMockConfigManager(), notifier)

	info, err := svc.CreateSession(ctx, "test")
	if err != nil {
		t.Fatalf("CreateSession() error: %v", err)
	}
	if removed := svc.CleanupExpiredSessions(ctx, time.Hour); removed != 0 {
		t.Errorf("removed = %d, want 0 for a fresh session", removed)
	}

	sess := sessions.sessions[info.ID]
	sess.LastAccessedAt = time.Now().Add(-2 * time.Hour)
	if removed := svc.CleanupExpiredSessions(ctx, time.Hour); removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}

	sess.Engine.SelectPiece(pieceI)
	if len(notifier.calls) != 0 {
		t.Errorf("expired session still notifies: %v", notifier.calls)
	}
}

func TestGameService_SaveConfig(t *testing.T) {
	ctx := context.Background()
	configs := NewMockConfigManager()
	svc := service.NewGameService(NewMockSessionManager(), configs)

	seed := int64(7)
	good := &engine.GameConfig{Name: "seeded", Description: "Seeded shuffle", Seed: &seed}
	if err := svc.SaveConfig(ctx, "seeded", good); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}
	if configs.saved["seeded"] != good {
		t.Error("config was not handed to the config manager")
	}

	bad := &engine.GameConfig{Name: "bad", Description: "dup", PieceOrder: []int{1, 1}}
	if err := svc.SaveConfig(ctx, "bad", bad); !errors.Is(err, service.ErrInvalidConfig) {
		t.Errorf("SaveConfig() error = %v, want ErrInvalidConfig", err)
	}
}
