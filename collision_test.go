package ldtk

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestIntGridBoxes_MergesRuns(t *testing.T) {
	// Source rows top-to-bottom: (1 1) / (0 1).
	mask, err := NewCellMask([]int{1, 1, 0, 1}, 2, 2)
	if err != nil {
		t.Fatalf("NewCellMask: %v", err)
	}

	boxes := IntGridBoxes(mask, 32)
	if len(boxes) != 2 {
		t.Fatalf("box count = %d, want 2", len(boxes))
	}

	// Target row 0 is the source bottom row: one cell at x=1.
	want0 := cp.BB{L: 32, B: 0, R: 64, T: 32}
	if boxes[0] != want0 {
		t.Errorf("boxes[0] = %+v, want %+v", boxes[0], want0)
	}
	// Target row 1 is one run spanning both cells.
	want1 := cp.BB{L: 0, B: 32, R: 64, T: 64}
	if boxes[1] != want1 {
		t.Errorf("boxes[1] = %+v, want %+v", boxes[1], want1)
	}
}

func TestIntGridBoxes_SplitsOnGaps(t *testing.T) {
	// One row: 1 0 1 1.
	mask, err := NewCellMask([]int{1, 0, 1, 1}, 4, 1)
	if err != nil {
		t.Fatalf("NewCellMask: %v", err)
	}

	boxes := IntGridBoxes(mask, 16)
	if len(boxes) != 2 {
		t.Fatalf("box count = %d, want 2", len(boxes))
	}
	if boxes[0] != (cp.BB{L: 0, B: 0, R: 16, T: 16}) {
		t.Errorf("boxes[0] = %+v", boxes[0])
	}
	if boxes[1] != (cp.BB{L: 32, B: 0, R: 64, T: 16}) {
		t.Errorf("boxes[1] = %+v", boxes[1])
	}
}

func TestIntGridBoxes_EmptyMask(t *testing.T) {
	mask, err := NewCellMask(nil, 0, 0)
	if err != nil {
		t.Fatalf("NewCellMask: %v", err)
	}
	if boxes := IntGridBoxes(mask, 32); len(boxes) != 0 {
		t.Errorf("empty mask should yield no boxes, got %d", len(boxes))
	}
}

func TestAddIntGridShapes(t *testing.T) {
	mask, err := NewCellMask([]int{1, 1, 0, 1}, 2, 2)
	if err != nil {
		t.Fatalf("NewCellMask: %v", err)
	}

	space := cp.NewSpace()
	shapes := AddIntGridShapes(space, mask, 32)
	if len(shapes) != 2 {
		t.Fatalf("shape count = %d, want 2", len(shapes))
	}
	for _, s := range shapes {
		if s.Body() != space.StaticBody {
			t.Error("shapes should attach to the static body")
		}
	}
}
