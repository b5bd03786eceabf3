package values

import (
	"testing"

	"github.com/MysticalUnicat/fern/internal/box"
)

func TestDeepMatchScalars(t *testing.T) {
	if !DeepMatch(box.PackNumber(3), box.PackNumber(3)) {
		t.Fatalf("3 should match 3")
	}
	if DeepMatch(box.PackNumber(3), box.PackNumber(4)) {
		t.Fatalf("3 should not match 4")
	}
}

func TestDeepMatchArrays(t *testing.T) {
	a := PackNewArray(MakeArrayShape([]uint32{3}, mkNumCells(1, 2, 3), box.PackNumber(0)))
	b := PackNewArray(MakeArrayShape([]uint32{3}, mkNumCells(1, 2, 3), box.PackNumber(0)))
	c := PackNewArray(MakeArrayShape([]uint32{3}, mkNumCells(1, 2, 4), box.PackNumber(0)))

	if !DeepMatch(a, b) {
		t.Fatalf("structurally identical arrays should match")
	}
	if DeepMatch(a, c) {
		t.Fatalf("arrays differing in a cell should not match")
	}
}

func TestDeepMatchArrayVsScalarMismatch(t *testing.T) {
	a := PackNewArray(MakeSingleton(box.PackNumber(1), box.PackNumber(0)))
	if DeepMatch(a, box.PackNumber(1)) {
		t.Fatalf("an array must never match a bare scalar")
	}
}

func TestToFillDerivation(t *testing.T) {
	if got := ToFill(box.PackNumber(5)); box.UnpackNumber(got) != 0 {
		t.Fatalf("ToFill(number) = %v, want 0", got)
	}
	if got := ToFill(box.PackCharacter('x')); box.UnpackCharacter(got) != ' ' {
		t.Fatalf("ToFill(character) should be space")
	}
	if got := ToFill(box.PackSymbol(3)); !box.IsSymbol(got) || box.UnpackSymbol(got) != box.NilSymbol {
		t.Fatalf("ToFill(symbol) should be nil")
	}
}

func TestToFillArrayRecurses(t *testing.T) {
	a := PackNewArray(MakeArrayShape([]uint32{2}, mkNumCells(1, 2), box.PackNumber(9)))
	filled := ToFill(a)
	fa := AsArray(filled)
	if Rank(fa) != 1 || AxisLength(fa, 0) != 2 {
		t.Fatalf("ToFill(array) should preserve shape")
	}
	for i := int64(0); i < 2; i++ {
		if got := box.UnpackNumber(GetCell(fa, i)); got != 0 {
			t.Fatalf("ToFill(array) cell %d = %v, want 0", i, got)
		}
	}
}
