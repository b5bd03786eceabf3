package eval

import (
	"testing"

	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/values"
)

func concreteFn(fn values.ConcreteFn) box.Box {
	return values.PackNewFunction(values.NewConcrete(fn))
}

var plusFn = concreteFn(func(kind values.Evokation, x, w box.Box) box.Box {
	if kind == values.Monad {
		return x
	}
	return box.PackNumber(box.UnpackNumber(x) + box.UnpackNumber(w))
})

func TestConstant(t *testing.T) {
	if got := Constant(plusFn); got != plusFn {
		t.Fatalf("˙ should return the captured operand verbatim")
	}
}

func TestSwapMonadCommute(t *testing.T) {
	got := Swap(plusFn, values.Monad, box.PackNumber(3), box.Nothing())
	if box.UnpackNumber(got) != 6 {
		t.Fatalf("swap monad commute 3+3 = %v, want 6", box.UnpackNumber(got))
	}
}

func TestSwapDyadTransposes(t *testing.T) {
	minusFn := concreteFn(func(kind values.Evokation, x, w box.Box) box.Box {
		return box.PackNumber(box.UnpackNumber(x) - box.UnpackNumber(w))
	})
	// x=10 w=3: swap calls F(w=3, x=10) => 3 - 10 = -7
	got := Swap(minusFn, values.Dyad, box.PackNumber(10), box.PackNumber(3))
	if box.UnpackNumber(got) != -7 {
		t.Fatalf("swap dyad = %v, want -7", box.UnpackNumber(got))
	}
}

func TestEachMonad(t *testing.T) {
	doubleFn := concreteFn(func(kind values.Evokation, x, w box.Box) box.Box {
		return box.PackNumber(box.UnpackNumber(x) * 2)
	})
	arr := mkNatArray(1, 2, 3)
	got := Each(doubleFn, values.Monad, arr, box.Nothing())
	ga := values.AsArray(got)
	for i, want := range []float64{2, 4, 6} {
		if v := box.UnpackNumber(values.GetCell(ga, int64(i))); v != want {
			t.Fatalf("each[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestTable(t *testing.T) {
	w := mkNatArray(1, 2)
	x := mkNatArray(10, 20, 30)
	got := Table(plusFn, x, w)
	ga := values.AsArray(got)
	if values.Rank(ga) != 2 || values.AxisLength(ga, 0) != 2 || values.AxisLength(ga, 1) != 3 {
		t.Fatalf("table shape wrong: rank=%d", values.Rank(ga))
	}
	// cell (0,0) = w[0] + x[0] = 1+10 = 11
	if got := box.UnpackNumber(values.GetCell(ga, 0)); got != 11 {
		t.Fatalf("table[0,0] = %v, want 11", got)
	}
	// cell (1,2) = w[1] + x[2] = 2+30 = 32
	if got := box.UnpackNumber(values.GetCell(ga, 5)); got != 32 {
		t.Fatalf("table[1,2] = %v, want 32", got)
	}
}

func TestScanMonad(t *testing.T) {
	arr := mkNatArray(1, 2, 3, 4)
	got := Scan(plusFn, values.Monad, arr, box.Nothing())
	ga := values.AsArray(got)
	for i, want := range []float64{1, 3, 6, 10} {
		if v := box.UnpackNumber(values.GetCell(ga, int64(i))); v != want {
			t.Fatalf("scan[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestAtop(t *testing.T) {
	negFn := concreteFn(func(kind values.Evokation, x, w box.Box) box.Box {
		return box.PackNumber(-box.UnpackNumber(x))
	})
	got := Atop(negFn, plusFn, values.Dyad, box.PackNumber(3), box.PackNumber(4))
	if box.UnpackNumber(got) != -7 {
		t.Fatalf("atop(neg, plus)(3,4) = %v, want -7", box.UnpackNumber(got))
	}
}

func TestValences(t *testing.T) {
	f := concreteFn(func(kind values.Evokation, x, w box.Box) box.Box { return box.PackNumber(1) })
	g := concreteFn(func(kind values.Evokation, x, w box.Box) box.Box { return box.PackNumber(2) })
	if got := Valences(f, g, values.Monad, box.Box(0), box.Nothing()); box.UnpackNumber(got) != 1 {
		t.Fatalf("monad valence should use F")
	}
	if got := Valences(f, g, values.Dyad, box.Box(0), box.Box(0)); box.UnpackNumber(got) != 2 {
		t.Fatalf("dyad valence should use G")
	}
}

func TestCatchRecoversThrow(t *testing.T) {
	throwingFn := concreteFn(func(kind values.Evokation, x, w box.Box) box.Box {
		Throw(box.PackCharacter('e'))
		return box.Box(0)
	})
	got := Catch(throwingFn, plusFn, values.Dyad, box.PackNumber(1), box.PackNumber(2))
	if box.UnpackNumber(got) != 3 {
		t.Fatalf("catch should fall back to G(1,2) = 3, got %v", box.UnpackNumber(got))
	}
}

func TestCatchPropagatesOtherPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected non-Thrown panic to propagate")
		}
	}()
	panicking := concreteFn(func(kind values.Evokation, x, w box.Box) box.Box {
		panic("boom")
	})
	Catch(panicking, plusFn, values.Monad, box.PackNumber(1), box.Nothing())
}
