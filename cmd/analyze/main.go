// Command analyze prints quick, human-readable facts about the piece catalog
// and the puzzle presets in the project's configs directory. For every piece it
// lists the distinct orientations and how many ways each fits on an empty
// board. For every preset it shows the play order a new session starts with.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wricardo/mcp-training/pentomino/game/engine"
)

// PieceSummary describes one catalog piece
type PieceSummary struct {
	ID           int
	Name         string
	Orientations int
	// Placements counts every (orientation, top-left) pair that fits an empty board
	Placements int
}

func main() {
	dir := "configs"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	fmt.Println("=== Piece catalog ===")
	summaries := analyzeCatalog()
	printCatalog(os.Stdout, summaries)

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		fmt.Printf("Error listing presets: %v\n", err)
		os.Exit(1)
	}
	sort.Strings(files)

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeConfig(os.Stdout, file)
	}
}

// analyzeCatalog summarizes every catalog piece in id order
func analyzeCatalog() []PieceSummary {
	catalog := engine.Catalog()
	summaries := make([]PieceSummary, 0, len(catalog))
	for _, piece := range catalog {
		orientations := engine.Orientations(piece.Shape)
		placements := 0
		for _, shape := range orientations {
			placements += emptyBoardFits(shape)
		}
		summaries = append(summaries, PieceSummary{
			ID:           piece.ID,
			Name:         piece.Name,
			Orientations: len(orientations),
			Placements:   placements,
		})
	}
	return summaries
}

// emptyBoardFits counts the top-left positions where shape fits an empty board
func emptyBoardFits(shape engine.Shape) int {
	board := engine.NewBoard()
	fits := 0
	for row := 0; row < engine.Rows; row++ {
		for col := 0; col < engine.Cols; col++ {
			if board.CanPlace(shape, engine.Position{Row: row, Col: col}) {
				fits++
			}
		}
	}
	return fits
}

func printCatalog(w io.Writer, summaries []PieceSummary) {
	totalOrientations, totalPlacements := 0, 0
	for _, s := range summaries {
		fmt.Fprintf(w, "%2d %s  orientations: %d  placements: %d\n", s.ID, s.Name, s.Orientations, s.Placements)
		totalOrientations += s.Orientations
		totalPlacements += s.Placements
	}
	fmt.Fprintf(w, "Total orientations: %d\n", totalOrientations)
	fmt.Fprintf(w, "Total placements on an empty board: %d\n", totalPlacements)
}

func analyzeConfig(w io.Writer, path string) {
	config, err := engine.LoadGameConfig(path)
	if err != nil {
		fmt.Fprintf(w, "Error loading preset: %v\n", err)
		return
	}

	fmt.Fprintf(w, "Name: %s\n", config.Name)
	fmt.Fprintf(w, "Description: %s\n", config.Description)

	switch {
	case len(config.PieceOrder) > 0:
		fmt.Fprintf(w, "Order: fixed\n")
	case config.Seed != nil:
		fmt.Fprintf(w, "Order: seeded (%d)\n", *config.Seed)
	default:
		fmt.Fprintf(w, "Order: shuffled per session\n")
		return
	}

	eng, err := engine.NewEngine(config)
	if err != nil {
		fmt.Fprintf(w, "Error creating engine: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Play order: %s\n", playOrder(eng.AvailablePieces()))
}

func playOrder(pieces []engine.Piece) string {
	names := make([]string, len(pieces))
	for i, p := range pieces {
		names[i] = p.Name
	}
	return strings.Join(names, " ")
}
