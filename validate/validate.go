// Command validate provides a small CLI that validates puzzle preset JSON
// files in the ../configs directory. It checks:
//   - JSON structure, rejecting unknown fields
//   - Required fields (name, description)
//   - piece_order is a permutation of the twelve piece ids
//   - seed and piece_order are not both set
//   - Message texts are not blank when present
//   - The file name is usable as a config id
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/mcp-training/pentomino/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...interface{}) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single preset file
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var config engine.GameConfig
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&config); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	configID := strings.TrimSuffix(result.File, ".json")
	if configID == "" || strings.ContainsAny(configID, " \t") {
		result.fail("File name %q is not a usable config id", result.File)
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		result.fail("%s", strings.TrimPrefix(err.Error(), "config validation: "))
	}

	for key, text := range messageTexts(config.Messages) {
		if text != "" && strings.TrimSpace(text) == "" {
			result.fail("Message %s is blank", key)
		}
	}

	if !result.Valid {
		return result
	}

	// Informational data
	result.info("Name: %s", config.Name)
	result.info("Config id: %s", configID)
	switch {
	case len(config.PieceOrder) > 0:
		result.info("Order: fixed (%s)", orderNames(config.PieceOrder))
	case config.Seed != nil:
		result.info("Order: seeded (%d)", *config.Seed)
	default:
		result.info("Order: shuffled per session")
	}
	custom := 0
	for _, text := range messageTexts(config.Messages) {
		if text != "" {
			custom++
		}
	}
	result.info("Custom messages: %d", custom)

	return result
}

func messageTexts(m engine.Messages) map[string]string {
	return map[string]string{
		"welcome":         m.Welcome,
		"selected":        m.Selected,
		"transformed":     m.Transformed,
		"placed":          m.Placed,
		"blocked":         m.Blocked,
		"undone":          m.Undone,
		"nothing_to_undo": m.NothingToUndo,
		"complete":        m.Complete,
	}
}

func orderNames(order []int) string {
	names := make([]string, len(order))
	for i, id := range order {
		names[i] = engine.PieceName(id)
	}
	return strings.Join(names, " ")
}

// main scans ../configs (or the directory given as first argument) for *.json
// files and validates each one, printing a concise report and exiting with
// non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
