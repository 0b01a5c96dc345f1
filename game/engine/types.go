package engine

const (
	// Board dimensions are fixed constants of the game.
	Rows = 6
	Cols = 10

	// PieceCells is the number of cells of every pentomino.
	PieceCells = 5
	// PieceCount is the size of the catalog.
	PieceCount = 12

	// Number of rotation states before a piece is back to its original shape.
	RotationStates = 4
)

// Action names recorded in the action log
const (
	ActionSelect         = "select"
	ActionRotate         = "rotate"
	ActionFlipHorizontal = "flip_horizontal"
	ActionFlipVertical   = "flip_vertical"
	ActionPlace          = "place"
	ActionUndo           = "undo"
	ActionReset          = "reset"
)

// Position is a board coordinate
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Piece is a pentomino with a stable identity. The shape may change as
// transforms are applied, the id never does.
type Piece struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Shape Shape  `json:"shape"`
}

// Clone returns a copy of the piece that shares no cells with p
func (p Piece) Clone() Piece {
	return Piece{ID: p.ID, Name: p.Name, Shape: p.Shape.Clone()}
}

// Move is a recorded successful placement
type Move struct {
	Piece    Piece    `json:"piece"`
	Position Position `json:"position"` // top-left of the shape's bounding box
}

// ActionEntry represents a single input event in the session's action log
type ActionEntry struct {
	Action     string    `json:"action"`
	PieceID    int       `json:"piece_id,omitempty"`
	Drop       *Position `json:"drop,omitempty"`
	TopLeft    *Position `json:"top_left,omitempty"`
	Success    bool      `json:"success"`
	Timestamp  int64     `json:"timestamp"`
	MoveNumber int       `json:"move_number"`
}

// Messages holds the texts shown to the player after each action
type Messages struct {
	Welcome       string `json:"welcome,omitempty"`
	Selected      string `json:"selected,omitempty"`
	Transformed   string `json:"transformed,omitempty"`
	Placed        string `json:"placed,omitempty"`
	Blocked       string `json:"blocked,omitempty"`
	Undone        string `json:"undone,omitempty"`
	NothingToUndo string `json:"nothing_to_undo,omitempty"`
	Complete      string `json:"complete,omitempty"`
}

// GameConfig is a puzzle preset loaded from JSON
type GameConfig struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Seed        *int64   `json:"seed,omitempty"`
	PieceOrder  []int    `json:"piece_order,omitempty"`
	Messages    Messages `json:"messages,omitempty"`
}

// GameState is a snapshot of a session, safe to hand to renderers
type GameState struct {
	Board           [][]bool     `json:"board"`
	AvailablePieces []Piece      `json:"available_pieces"`
	SelectedPiece   *Piece       `json:"selected_piece,omitempty"`
	Moves           []Move       `json:"moves"`
	CanUndo         bool         `json:"can_undo"`
	EmptyCells      int          `json:"empty_cells"`
	Parity          bool         `json:"parity"`
	Complete        bool         `json:"complete"`
	Message         string       `json:"message"`
	ConfigName      string       `json:"config_name"`
	Rotations       map[int]int  `json:"rotations"`
	LastAction      *ActionEntry `json:"last_action,omitempty"`
	TotalActions    int          `json:"total_actions"`
}
