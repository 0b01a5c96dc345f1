package engine

import (
	"strings"
	"testing"
)

func TestParseShape(t *testing.T) {
	shape, err := ParseShape([]string{".#", "##"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := Shape{{false, true}, {true, true}}
	if !shape.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, shape)
	}
	if shape.Rows() != 2 || shape.Cols() != 2 {
		t.Errorf("Expected 2x2, got %dx%d", shape.Rows(), shape.Cols())
	}
}

func TestParseShape_Errors(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		contains string
	}{
		{"empty", nil, "at least one row"},
		{"ragged", []string{"##", "#"}, "must have 2 characters"},
		{"bad char", []string{"#x"}, "invalid character 'x'"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseShape(test.rows)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), test.contains) {
				t.Errorf("Expected error containing %q, got: %v", test.contains, err)
			}
		})
	}
}

func TestMustParseShape_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustParseShape to panic on malformed input")
		}
	}()
	MustParseShape("#?")
}

func TestShape_CellsAndString(t *testing.T) {
	shape := MustParseShape("#.#", "###")

	if shape.CellCount() != 5 {
		t.Errorf("Expected 5 cells, got %d", shape.CellCount())
	}

	cells := shape.Cells()
	expected := []Position{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if len(cells) != len(expected) {
		t.Fatalf("Expected %d cells, got %d", len(expected), len(cells))
	}
	for i := range expected {
		if cells[i] != expected[i] {
			t.Errorf("Cell %d: expected %v, got %v", i, expected[i], cells[i])
		}
	}

	if shape.String() != "#.#\n###" {
		t.Errorf("Unexpected rendering: %q", shape.String())
	}
}

func TestShape_CloneIsIndependent(t *testing.T) {
	shape := MustParseShape("##", "#.")
	clone := shape.Clone()
	clone[1][1] = true

	if shape[1][1] {
		t.Error("Modifying the clone changed the original")
	}
	if shape.Equal(clone) {
		t.Error("Expected shapes to differ after modifying the clone")
	}
}

func TestShape_EqualDimensions(t *testing.T) {
	if MustParseShape("#####").Equal(MustParseShape("#", "#", "#", "#", "#")) {
		t.Error("Shapes with different dimensions must not be equal")
	}
}
