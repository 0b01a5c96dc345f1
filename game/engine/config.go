package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultMessages returns the texts used when a preset leaves them empty
func DefaultMessages() Messages {
	return Messages{
		Welcome:       "Welcome! Fill the 6x10 board with all twelve pentominoes.",
		Selected:      "Piece selected",
		Transformed:   "Piece transformed",
		Placed:        "Piece placed",
		Blocked:       "Can't place piece there!",
		Undone:        "Placement undone",
		NothingToUndo: "Nothing to undo",
		Complete:      "Board complete! All twelve pieces placed!",
	}
}

// DefaultGameConfig returns the built-in preset: random order, default messages
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:        "classic",
		Description: "Classic 6x10 pentomino board with a shuffled piece order",
		Messages:    DefaultMessages(),
	}
}

// mergeMessages fills empty texts from the defaults
func mergeMessages(m Messages) Messages {
	d := DefaultMessages()
	pick := func(value, fallback string) string {
		if value == "" {
			return fallback
		}
		return value
	}
	return Messages{
		Welcome:       pick(m.Welcome, d.Welcome),
		Selected:      pick(m.Selected, d.Selected),
		Transformed:   pick(m.Transformed, d.Transformed),
		Placed:        pick(m.Placed, d.Placed),
		Blocked:       pick(m.Blocked, d.Blocked),
		Undone:        pick(m.Undone, d.Undone),
		NothingToUndo: pick(m.NothingToUndo, d.NothingToUndo),
		Complete:      pick(m.Complete, d.Complete),
	}
}

// ValidateGameConfig validates a preset for correctness
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is required")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if len(config.PieceOrder) > 0 {
		if err := validatePieceOrder(config.PieceOrder); err != nil {
			return fmt.Errorf("config validation: piece_order: %v", err)
		}
		if config.Seed != nil {
			return fmt.Errorf("config validation: seed and piece_order are mutually exclusive")
		}
	}

	return nil
}

// LoadGameConfig loads a preset from a JSON file. The path is used as given.
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
