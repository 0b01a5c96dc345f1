package engine

// History is the LIFO stack of successful placements
type History struct {
	moves []Move
}

// Push records a placement
func (h *History) Push(move Move) {
	h.moves = append(h.moves, move)
}

// Pop removes and returns the most recent move. ok is false when the
// history is empty.
func (h *History) Pop() (move Move, ok bool) {
	if len(h.moves) == 0 {
		return Move{}, false
	}
	last := len(h.moves) - 1
	move = h.moves[last]
	h.moves = h.moves[:last]
	return move, true
}

// Last returns the most recent move, or nil if there are none
func (h *History) Last() *Move {
	if len(h.moves) == 0 {
		return nil
	}
	move := h.moves[len(h.moves)-1]
	return &move
}

// Len returns the number of recorded moves
func (h *History) Len() int {
	return len(h.moves)
}

// Moves returns a copy of the stack, oldest first
func (h *History) Moves() []Move {
	moves := make([]Move, len(h.moves))
	for i, move := range h.moves {
		moves[i] = Move{Piece: move.Piece.Clone(), Position: move.Position}
	}
	return moves
}
