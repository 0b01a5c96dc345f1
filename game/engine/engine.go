package engine

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	Reset() *GameState
	IsComplete() bool
	CheckParity() bool

	// Input events
	SelectPiece(id int) bool
	RotateSelected() bool
	FlipSelectedHorizontal() bool
	FlipSelectedVertical() bool
	PlaceSelected(drop Position) bool
	PlacePiece(id int, drop Position) bool
	Undo() bool
	CanUndo() bool

	// Queries
	IsOccupied(row, col int) bool
	AvailablePieces() []Piece
	SelectedPiece() *Piece
	RotationState(id int) int
	GetMoves() []Move
	GetLastMove() *Move

	// Configuration
	GetConfig() *GameConfig

	// Action log
	GetActionHistory() []ActionEntry
	GetLastAction() *ActionEntry

	// Change notification
	Subscribe(fn func(*GameState)) (cancel func())
}

// GameEngine implements the Engine interface. It is the game session:
// it owns the board, the move history and the pool of available pieces.
type GameEngine struct {
	config    *GameConfig
	messages  Messages
	playOrder []Piece

	board     *Board
	history   History
	available []Piece
	selected  *Piece
	rotations map[int]int
	message   string

	actions      []ActionEntry
	totalActions int

	subscribers map[int]func(*GameState)
	nextSubID   int
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	order, err := initialPieces(config)
	if err != nil {
		return nil, err
	}

	e := &GameEngine{
		config:    config,
		messages:  mergeMessages(config.Messages),
		playOrder: order,
	}
	e.init()
	return e, nil
}

// NewEngineWithDefaults creates a new game engine with a random piece order
// and the default messages
func NewEngineWithDefaults() *GameEngine {
	config := DefaultGameConfig()
	e := &GameEngine{
		config:    config,
		messages:  mergeMessages(config.Messages),
		playOrder: ShuffledCatalog(nil),
	}
	e.init()
	return e
}

// init puts the session into its starting position without touching the
// cumulative action log
func (e *GameEngine) init() {
	e.board = NewBoard()
	e.history = History{}
	e.available = make([]Piece, len(e.playOrder))
	for i, piece := range e.playOrder {
		e.available[i] = piece.Clone()
	}
	e.selected = nil
	e.rotations = make(map[int]int)
	e.message = e.messages.Welcome
}

func initialPieces(config *GameConfig) ([]Piece, error) {
	switch {
	case len(config.PieceOrder) > 0:
		return OrderedCatalog(config.PieceOrder)
	case config.Seed != nil:
		seed := uint64(*config.Seed)
		return ShuffledCatalog(rand.New(rand.NewPCG(seed, seed))), nil
	default:
		return ShuffledCatalog(nil), nil
	}
}

// GetState returns a snapshot of the current session
func (e *GameEngine) GetState() *GameState {
	available := e.AvailablePieces()
	rotations := make(map[int]int, len(e.rotations))
	for id, r := range e.rotations {
		rotations[id] = r
	}

	configName := ""
	if e.config != nil {
		configName = e.config.Name
	}

	return &GameState{
		Board:           e.board.Grid(),
		AvailablePieces: available,
		SelectedPiece:   e.SelectedPiece(),
		Moves:           e.history.Moves(),
		CanUndo:         e.CanUndo(),
		EmptyCells:      e.board.EmptyCount(),
		Parity:          e.CheckParity(),
		Complete:        e.IsComplete(),
		Message:         e.message,
		ConfigName:      configName,
		Rotations:       rotations,
		LastAction:      e.GetLastAction(),
		TotalActions:    e.totalActions,
	}
}

// Reset clears the board and returns every piece to the pool in the
// original play order. The action log is kept.
func (e *GameEngine) Reset() *GameState {
	e.init()
	e.record(ActionReset, 0, nil, nil, true)
	state := e.GetState()
	e.notify(state)
	return state
}

// IsComplete reports whether every piece has been placed
func (e *GameEngine) IsComplete() bool {
	return len(e.available) == 0 && e.board.IsFull()
}

// CheckParity reports whether the number of empty cells is a multiple of
// five. Passing does not mean the remaining area can be tiled.
func (e *GameEngine) CheckParity() bool {
	return CheckParity(e.board)
}

// SelectPiece selects a piece from the available pool. Unknown or placed
// ids are ignored.
func (e *GameEngine) SelectPiece(id int) bool {
	idx := e.indexOf(id)
	if idx < 0 {
		e.record(ActionSelect, id, nil, nil, false)
		return false
	}

	piece := e.available[idx].Clone()
	e.selected = &piece
	e.message = e.messages.Selected + fmt.Sprintf(" [Piece: %s]", piece.Name)
	e.record(ActionSelect, id, nil, nil, true)
	e.notify(e.GetState())
	return true
}

// RotateSelected rotates the selected piece a quarter turn clockwise.
// The new shape is always derived from the catalog shape rotated
// (count mod 4) times, never from the current shape.
func (e *GameEngine) RotateSelected() bool {
	return e.transformSelected(ActionRotate, func(p Piece) Shape {
		r := (e.rotations[p.ID] + 1) % RotationStates
		e.rotations[p.ID] = r
		original, ok := CatalogShape(p.ID)
		if !ok {
			original = p.Shape
		}
		return RotateTimes(original, r)
	})
}

// FlipSelectedHorizontal mirrors the current shape of the selected piece
// left-right
func (e *GameEngine) FlipSelectedHorizontal() bool {
	return e.transformSelected(ActionFlipHorizontal, func(p Piece) Shape {
		return FlipHorizontal(p.Shape)
	})
}

// FlipSelectedVertical mirrors the current shape of the selected piece
// top-bottom
func (e *GameEngine) FlipSelectedVertical() bool {
	return e.transformSelected(ActionFlipVertical, func(p Piece) Shape {
		return FlipVertical(p.Shape)
	})
}

func (e *GameEngine) transformSelected(action string, transform func(Piece) Shape) bool {
	if e.selected == nil {
		e.record(action, 0, nil, nil, false)
		return false
	}

	e.selected.Shape = transform(*e.selected)

	// Keep the pool entry in sync so the displayed and placed shapes match
	if idx := e.indexOf(e.selected.ID); idx >= 0 {
		e.available[idx] = e.selected.Clone()
	}

	e.message = e.messages.Transformed + fmt.Sprintf(" [Piece: %s]", e.selected.Name)
	e.record(action, e.selected.ID, nil, nil, true)
	e.notify(e.GetState())
	return true
}

// PlaceSelected places the selected piece centered on drop. On failure
// nothing changes and the piece stays selected.
func (e *GameEngine) PlaceSelected(drop Position) bool {
	if e.selected == nil {
		e.record(ActionPlace, 0, &drop, nil, false)
		return false
	}
	return e.place(e.selected.Clone(), drop)
}

// PlacePiece places an available piece, with its current shape, centered
// on drop
func (e *GameEngine) PlacePiece(id int, drop Position) bool {
	idx := e.indexOf(id)
	if idx < 0 {
		e.record(ActionPlace, id, &drop, nil, false)
		return false
	}
	return e.place(e.available[idx].Clone(), drop)
}

func (e *GameEngine) place(piece Piece, drop Position) bool {
	topLeft := CenteredTopLeft(piece.Shape, drop)

	if !e.board.Place(piece.Shape, topLeft) {
		e.message = e.messages.Blocked + fmt.Sprintf(" [Piece: %s at (%d,%d)]", piece.Name, topLeft.Row, topLeft.Col)
		e.record(ActionPlace, piece.ID, &drop, &topLeft, false)
		return false
	}

	e.history.Push(Move{Piece: piece, Position: topLeft})
	if idx := e.indexOf(piece.ID); idx >= 0 {
		e.available = append(e.available[:idx], e.available[idx+1:]...)
	}
	e.selected = nil

	if e.IsComplete() {
		e.message = e.messages.Complete
	} else {
		e.message = e.messages.Placed + fmt.Sprintf(" [Piece: %s at (%d,%d)]", piece.Name, topLeft.Row, topLeft.Col)
	}
	e.record(ActionPlace, piece.ID, &drop, &topLeft, true)
	e.notify(e.GetState())
	return true
}

// Undo reverses the most recent placement and returns the piece, with the
// shape it was placed with, to the end of the pool. Rotation counters are
// left as they were.
func (e *GameEngine) Undo() bool {
	move, ok := e.history.Pop()
	if !ok {
		e.message = e.messages.NothingToUndo
		e.record(ActionUndo, 0, nil, nil, false)
		return false
	}

	e.board.Clear(move.Piece.Shape, move.Position)
	e.available = append(e.available, move.Piece.Clone())
	e.selected = nil

	e.message = e.messages.Undone + fmt.Sprintf(" [Piece: %s]", move.Piece.Name)
	pos := move.Position
	e.record(ActionUndo, move.Piece.ID, nil, &pos, true)
	e.notify(e.GetState())
	return true
}

// CanUndo reports whether there is a placement to undo
func (e *GameEngine) CanUndo() bool {
	return e.history.Len() > 0
}

// IsOccupied reports whether a board cell is filled
func (e *GameEngine) IsOccupied(row, col int) bool {
	return e.board.IsOccupied(row, col)
}

// AvailablePieces returns copies of the pieces still in the pool, in order
func (e *GameEngine) AvailablePieces() []Piece {
	pieces := make([]Piece, len(e.available))
	for i, piece := range e.available {
		pieces[i] = piece.Clone()
	}
	return pieces
}

// SelectedPiece returns a copy of the selected piece, or nil
func (e *GameEngine) SelectedPiece() *Piece {
	if e.selected == nil {
		return nil
	}
	piece := e.selected.Clone()
	return &piece
}

// RotationState returns the rotation counter (0..3) of a piece
func (e *GameEngine) RotationState(id int) int {
	return e.rotations[id]
}

// GetMoves returns the undo stack, oldest first
func (e *GameEngine) GetMoves() []Move {
	return e.history.Moves()
}

// GetLastMove returns the most recent placement, or nil
func (e *GameEngine) GetLastMove() *Move {
	return e.history.Last()
}

// GetConfig returns the preset the session was created from
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// GetActionHistory returns the complete action log
func (e *GameEngine) GetActionHistory() []ActionEntry {
	return append([]ActionEntry{}, e.actions...)
}

// GetLastAction returns the last recorded action, or nil if none
func (e *GameEngine) GetLastAction() *ActionEntry {
	if len(e.actions) == 0 {
		return nil
	}
	entry := e.actions[len(e.actions)-1]
	return &entry
}

// Subscribe registers fn to receive a snapshot after every successful
// state change. Calling the returned function removes the subscription.
func (e *GameEngine) Subscribe(fn func(*GameState)) (cancel func()) {
	if e.subscribers == nil {
		e.subscribers = make(map[int]func(*GameState))
	}
	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = fn
	return func() {
		delete(e.subscribers, id)
	}
}

func (e *GameEngine) notify(state *GameState) {
	for _, fn := range e.subscribers {
		fn(state)
	}
}

// record appends an entry to the action log
func (e *GameEngine) record(action string, pieceID int, drop, topLeft *Position, success bool) {
	entry := ActionEntry{
		Action:     action,
		PieceID:    pieceID,
		Success:    success,
		Timestamp:  time.Now().Unix(),
		MoveNumber: e.totalActions + 1,
	}
	if drop != nil {
		d := *drop
		entry.Drop = &d
	}
	if topLeft != nil {
		t := *topLeft
		entry.TopLeft = &t
	}
	e.actions = append(e.actions, entry)
	e.totalActions++
}

func (e *GameEngine) indexOf(id int) int {
	for i, piece := range e.available {
		if piece.ID == id {
			return i
		}
	}
	return -1
}
