package data

import (
	"math"
	"testing"

	"github.com/MysticalUnicat/fern/internal/box"
)

func TestNatural8RoundTrip(t *testing.T) {
	d, _ := Init(FormatNatural8, 4)
	vals := []float64{0, 1, 255, 42}
	for i, v := range vals {
		d.SetCell(uint32(i), box.PackNumber(v))
	}
	for i, v := range vals {
		got := box.UnpackNumber(d.GetCell(uint32(i)))
		if got != v {
			t.Fatalf("cell %d: got %v, want %v", i, got, v)
		}
	}
}

func TestNatural1BitPacking(t *testing.T) {
	d, _ := Init(FormatNatural1, 10)
	bits := []float64{1, 0, 1, 1, 0, 0, 1, 0, 1, 1}
	for i, b := range bits {
		d.SetCell(uint32(i), box.PackNumber(b))
	}
	for i, b := range bits {
		got := box.UnpackNumber(d.GetCell(uint32(i)))
		if got != b {
			t.Fatalf("bit %d: got %v, want %v", i, got, b)
		}
	}
}

func TestCharacterAndSymbolCells(t *testing.T) {
	dc, _ := Init(FormatCharacter, 2)
	dc.SetCell(0, box.PackCharacter('A'))
	dc.SetCell(1, box.PackCharacter('∑'))
	if got := box.UnpackCharacter(dc.GetCell(0)); got != 'A' {
		t.Fatalf("char 0 = %q", got)
	}
	if got := box.UnpackCharacter(dc.GetCell(1)); got != '∑' {
		t.Fatalf("char 1 = %q", got)
	}

	ds, _ := Init(FormatSymbol, 1)
	ds.SetCell(0, box.PackSymbol(17))
	if got := box.UnpackSymbol(ds.GetCell(0)); got != 17 {
		t.Fatalf("symbol cell = %d, want 17", got)
	}
}

func TestBoxCellRoundTrip(t *testing.T) {
	d, _ := Init(FormatBox, 3)
	vals := []box.Box{box.PackNumber(3.5), box.Nil(), box.PackCharacter('x')}
	for i, v := range vals {
		d.SetCell(uint32(i), v)
	}
	for i, v := range vals {
		if got := d.GetCell(uint32(i)); got != v {
			t.Fatalf("box cell %d mismatch", i)
		}
	}
}

func TestInlineVsHeapThreshold(t *testing.T) {
	small, _ := Init(FormatNatural8, 2) // 2 bytes, inline
	if !small.isInline() {
		t.Fatalf("2-byte natural-8 data should be inline")
	}
	large, _ := Init(FormatBox, 4) // 32 bytes, heap
	if large.isInline() {
		t.Fatalf("32-byte box data should be heap-backed")
	}
}

func TestCloneFreeRefcount(t *testing.T) {
	d, _ := Init(FormatBox, 8) // heap-backed
	clone := d.Clone()
	if d.heap != clone.heap {
		t.Fatalf("clone should share the same heap payload")
	}
	if d.heap.refs != 2 {
		t.Fatalf("refcount after clone = %d, want 2", d.heap.refs)
	}
	clone.Free()
	if d.heap.refs != 1 {
		t.Fatalf("refcount after one free = %d, want 1", d.heap.refs)
	}
	d.Free()
	if d.heap.refs != 0 {
		t.Fatalf("refcount after second free = %d, want 0", d.heap.refs)
	}
}

func TestForceNatural(t *testing.T) {
	if got := ForceNatural(box.PackNumber(4)); got != 4 {
		t.Fatalf("ForceNatural(4) = %d", got)
	}
	if got := ForceNatural(box.PackNumber(-1)); got != -1 {
		t.Fatalf("ForceNatural(-1) = %d, want -1 (not coercible)", got)
	}
	if got := ForceNatural(box.PackNumber(3.5)); got != -1 {
		t.Fatalf("ForceNatural(3.5) = %d, want -1", got)
	}
	if got := ForceNatural(box.PackNumber(math.NaN())); got != -1 {
		t.Fatalf("ForceNatural(NaN) = %d, want -1", got)
	}
	if got := ForceNatural(box.PackCharacter('a')); got != -1 {
		t.Fatalf("ForceNatural(character) = %d, want -1", got)
	}
}

func TestMakeShapePicksNarrowestFormat(t *testing.T) {
	small := MakeShape([]uint32{2, 3, 4})
	if small.Format() != FormatNatural8 {
		t.Fatalf("shape [2,3,4] format = %v, want natural8", small.Format())
	}
	if small.Size() != 3 {
		t.Fatalf("shape size = %d, want 3", small.Size())
	}
	for i, want := range []int64{2, 3, 4} {
		if got := small.GetNatural(uint32(i)); got != want {
			t.Fatalf("shape[%d] = %d, want %d", i, got, want)
		}
	}

	wide := MakeShape([]uint32{300})
	if wide.Format() != FormatNatural16 {
		t.Fatalf("shape [300] format = %v, want natural16", wide.Format())
	}
}

func TestMustForceNaturalPanicsOnBad(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustForceNatural(box.PackNumber(-5))
}
