package engine

import (
	"fmt"
	"math/rand/v2"
)

// catalogEntry is a canonical pentomino definition
type catalogEntry struct {
	name  string
	shape Shape
}

// canonicalPieces lists the twelve free pentominoes; index+1 is the piece id
var canonicalPieces = []catalogEntry{
	{"F", MustParseShape(".##", "##.", ".#.")},
	{"I", MustParseShape("#####")},
	{"L", MustParseShape("#...", "####")},
	{"N", MustParseShape("##..", ".###")},
	{"P", MustParseShape("##", "##", "#.")},
	{"T", MustParseShape("###", ".#.", ".#.")},
	{"U", MustParseShape("#.#", "###")},
	{"V", MustParseShape("#..", "#..", "###")},
	{"W", MustParseShape("#..", "##.", ".##")},
	{"X", MustParseShape(".#.", "###", ".#.")},
	{"Y", MustParseShape(".#", "##", ".#", ".#")},
	{"Z", MustParseShape("##.", ".#.", ".##")},
}

// Catalog returns fresh copies of the twelve pieces in id order
func Catalog() []Piece {
	pieces := make([]Piece, len(canonicalPieces))
	for i, entry := range canonicalPieces {
		pieces[i] = Piece{ID: i + 1, Name: entry.name, Shape: entry.shape.Clone()}
	}
	return pieces
}

// CatalogShape returns the original shape of the piece with the given id
func CatalogShape(id int) (Shape, bool) {
	if id < 1 || id > len(canonicalPieces) {
		return nil, false
	}
	return canonicalPieces[id-1].shape.Clone(), true
}

// PieceName returns the conventional letter of a piece id, or "?" when unknown
func PieceName(id int) string {
	if id < 1 || id > len(canonicalPieces) {
		return "?"
	}
	return canonicalPieces[id-1].name
}

// ShuffledCatalog returns the catalog in a random play order
func ShuffledCatalog(r *rand.Rand) []Piece {
	pieces := Catalog()
	shuffle := rand.Shuffle
	if r != nil {
		shuffle = r.Shuffle
	}
	shuffle(len(pieces), func(i, j int) {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	})
	return pieces
}

// OrderedCatalog returns the catalog in the given order of piece ids.
// The order must be a permutation of 1..12.
func OrderedCatalog(order []int) ([]Piece, error) {
	if err := validatePieceOrder(order); err != nil {
		return nil, err
	}
	catalog := Catalog()
	pieces := make([]Piece, 0, len(order))
	for _, id := range order {
		pieces = append(pieces, catalog[id-1])
	}
	return pieces, nil
}

func validatePieceOrder(order []int) error {
	if len(order) != PieceCount {
		return fmt.Errorf("piece order must list %d pieces, got %d", PieceCount, len(order))
	}
	seen := make(map[int]bool, len(order))
	for _, id := range order {
		if id < 1 || id > PieceCount {
			return fmt.Errorf("piece id %d out of range 1..%d", id, PieceCount)
		}
		if seen[id] {
			return fmt.Errorf("piece id %d listed more than once", id)
		}
		seen[id] = true
	}
	return nil
}
