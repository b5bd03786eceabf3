package eval

import (
	"math"
	"testing"

	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/values"
)

func TestFillMonadAndDyad(t *testing.T) {
	arr := mkNatArray(1, 2, 3)
	if got := Fill(arr, box.Box(0), true); got != box.PackNumber(0) {
		t.Fatalf("Fill monad should return the array's fill (0)")
	}
	refilled := Fill(arr, box.PackCharacter('x'), false)
	ra := values.AsArray(refilled)
	if got := box.UnpackCharacter(ra.Fill); got != ' ' {
		t.Fatalf("Fill dyad should derive fill from w's ToFill, got %q", got)
	}
}

func TestLog(t *testing.T) {
	if got := box.UnpackNumber(Log(box.PackNumber(1), box.Box(0), true)); got != 0 {
		t.Fatalf("ln(1) = %v, want 0", got)
	}
	got := box.UnpackNumber(Log(box.PackNumber(8), box.PackNumber(2), false))
	if math.Abs(got-3) > 1e-9 {
		t.Fatalf("log2(8) = %v, want 3", got)
	}
}

func TestGroupLenAndGroupOrd(t *testing.T) {
	groups := mkNatArray(0, 1, 0, 2, 1)
	lenBox := GroupLen(groups, box.Box(0), true)
	lenArr := values.AsArray(lenBox)
	if values.NumCells(lenArr) != 3 {
		t.Fatalf("GroupLen should produce 3 groups, got %d", values.NumCells(lenArr))
	}
	wantCounts := []int64{2, 2, 1}
	for i, want := range wantCounts {
		if got := values.GetNatural(lenArr, int64(i)); got != want {
			t.Fatalf("GroupLen[%d] = %d, want %d", i, got, want)
		}
	}

	ordBox := GroupOrd(groups, lenBox)
	ordArr := values.AsArray(ordBox)
	if values.NumCells(ordArr) != 5 {
		t.Fatalf("GroupOrd should have 5 entries, got %d", values.NumCells(ordArr))
	}
	// group 0 -> indices {0,2}, group 1 -> {1,4}, group 2 -> {3}
	want := []int64{0, 2, 1, 4, 3}
	for i, w := range want {
		if got := values.GetNatural(ordArr, int64(i)); got != w {
			t.Fatalf("GroupOrd[%d] = %d, want %d", i, got, w)
		}
	}
}
