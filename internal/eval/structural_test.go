package eval

import (
	"testing"

	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/data"
	"github.com/MysticalUnicat/fern/internal/values"
)

func mkNatArray(vals ...float64) box.Box {
	cells, _ := data.Init(data.FormatNatural32, uint32(len(vals)))
	for i, v := range vals {
		cells.SetCell(uint32(i), box.PackNumber(v))
	}
	return values.PackNewArray(values.MakeArrayShape([]uint32{uint32(len(vals))}, cells, box.PackNumber(0)))
}

func TestTacks(t *testing.T) {
	if got := LeftTack(box.PackNumber(1), box.PackNumber(2), true); got != box.PackNumber(1) {
		t.Fatalf("monad ⊣ should return x")
	}
	if got := LeftTack(box.PackNumber(1), box.PackNumber(2), false); got != box.PackNumber(2) {
		t.Fatalf("dyad ⊣ should return w")
	}
	if got := RightTack(box.PackNumber(9)); got != box.PackNumber(9) {
		t.Fatalf("⊢ should return x")
	}
}

func TestEnclose(t *testing.T) {
	b := Enclose(box.PackNumber(5))
	if !box.IsArray(b) {
		t.Fatalf("enclose should produce an array")
	}
	a := values.AsArray(b)
	if values.Rank(a) != 1 || values.AxisLength(a, 0) != 1 {
		t.Fatalf("enclose should be rank-1 length-1")
	}
	if got := box.UnpackNumber(values.GetCell(a, 0)); got != 5 {
		t.Fatalf("enclose cell = %v, want 5", got)
	}
}

func TestShapeOfArrayAndScalar(t *testing.T) {
	arr := mkNatArray(1, 2, 3)
	shapeBox := Shape(arr)
	shapeArr := values.AsArray(shapeBox)
	if values.Rank(shapeArr) != 1 || values.AxisLength(shapeArr, 0) != 1 {
		t.Fatalf("shape of rank-1 array should itself be rank-1 length-1")
	}
	if got := values.GetNatural(shapeArr, 0); got != 3 {
		t.Fatalf("shape[0] = %d, want 3", got)
	}

	empty := Shape(box.PackNumber(5))
	if values.NumCells(values.AsArray(empty)) != 0 {
		t.Fatalf("shape of non-array should be empty")
	}
}

func TestReshapeMonadFlatten(t *testing.T) {
	arr := mkNatArray(1, 2, 3, 4)
	flat := Reshape(arr, box.Box(0), true)
	fa := values.AsArray(flat)
	if values.Rank(fa) != 1 || values.AxisLength(fa, 0) != 4 {
		t.Fatalf("monad reshape should be rank-1 of the same cell count")
	}
}

func TestReshapeDyad(t *testing.T) {
	arr := mkNatArray(1, 2, 3, 4, 5, 6)
	shape := mkNatArray(2, 3)
	reshaped := Reshape(arr, shape, false)
	ra := values.AsArray(reshaped)
	if values.Rank(ra) != 2 || values.AxisLength(ra, 0) != 2 || values.AxisLength(ra, 1) != 3 {
		t.Fatalf("dyad reshape did not apply w's shape")
	}
}

func TestRange(t *testing.T) {
	r := Range(box.PackNumber(4))
	ra := values.AsArray(r)
	if values.NumCells(ra) != 4 {
		t.Fatalf("range(4) should have 4 cells")
	}
	for i := int64(0); i < 4; i++ {
		if got := values.GetNatural(ra, i); got != i {
			t.Fatalf("range(4)[%d] = %d, want %d", i, got, i)
		}
	}
}

func TestPick(t *testing.T) {
	arr := mkNatArray(10, 20, 30)
	if got := box.UnpackNumber(Pick(arr, box.PackNumber(1))); got != 20 {
		t.Fatalf("pick index 1 = %v, want 20", got)
	}
}

func TestAssertPassesOnOne(t *testing.T) {
	if got := Assert(box.PackNumber(1), box.Nothing(), true); got != box.PackNumber(1) {
		t.Fatalf("assert(1) should return 1")
	}
}

func TestAssertThrowsOnNonOne(t *testing.T) {
	defer func() {
		r := recover()
		thrown, ok := r.(*Thrown)
		if !ok {
			t.Fatalf("expected *Thrown, got %v", r)
		}
		if thrown.Value != box.PackCharacter('e') {
			t.Fatalf("thrown value mismatch")
		}
	}()
	Assert(box.PackNumber(0), box.PackCharacter('e'), false)
}
