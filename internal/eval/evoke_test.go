package eval

import (
	"testing"

	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/values"
)

func TestEvokeConstantCoercesToItself(t *testing.T) {
	c := box.PackNumber(42)
	if got := Evoke(nil, c, values.Monad, box.PackNumber(1), box.Nothing()); got != c {
		t.Fatalf("non-function callee should coerce to itself")
	}
}

func TestEvokeConcreteFunction(t *testing.T) {
	got := Evoke(nil, plusFn, values.Dyad, box.PackNumber(2), box.PackNumber(3))
	if box.UnpackNumber(got) != 5 {
		t.Fatalf("concrete dyad = %v, want 5", box.UnpackNumber(got))
	}
}

func TestEvokeTrain2(t *testing.T) {
	negFn := concreteFn(func(kind values.Evokation, x, w box.Box) box.Box {
		return box.PackNumber(-box.UnpackNumber(x))
	})
	doubleFn := concreteFn(func(kind values.Evokation, x, w box.Box) box.Box {
		return box.PackNumber(box.UnpackNumber(x) * 2)
	})
	train := values.PackNewFunction(values.NewTrain2(negFn, doubleFn))
	got := Evoke(nil, train, values.Monad, box.PackNumber(3), box.Nothing())
	if box.UnpackNumber(got) != -6 {
		t.Fatalf("(neg∘double)(3) = %v, want -6", box.UnpackNumber(got))
	}
}

func TestEvokeTrain3(t *testing.T) {
	// (F,G,H)(x) = G(H(x), F(x))
	fFn := concreteFn(func(kind values.Evokation, x, w box.Box) box.Box { return box.PackNumber(100) })
	gFn := concreteFn(func(kind values.Evokation, x, w box.Box) box.Box {
		return box.PackNumber(box.UnpackNumber(x) + box.UnpackNumber(w))
	})
	hFn := concreteFn(func(kind values.Evokation, x, w box.Box) box.Box { return box.PackNumber(1) })
	train := values.PackNewFunction(values.NewTrain3(fFn, gFn, hFn))
	got := Evoke(nil, train, values.Monad, box.PackNumber(5), box.Nothing())
	if box.UnpackNumber(got) != 101 {
		t.Fatalf("train3 = %v, want 101", box.UnpackNumber(got))
	}
}

func TestEvokeAppliedConcreteM1(t *testing.T) {
	mod := values.NewConcreteModifier1(func(kind values.Evokation, f, x, w box.Box) box.Box {
		return Evoke(nil, f, kind, x, w)
	})
	modBox := values.PackNewModifier1(mod)
	applied := values.PackNewFunction(values.NewAppliedM1(plusFn, modBox, mod))
	got := Evoke(nil, applied, values.Dyad, box.PackNumber(4), box.PackNumber(6))
	if box.UnpackNumber(got) != 10 {
		t.Fatalf("applied concrete m1 = %v, want 10", box.UnpackNumber(got))
	}
}

func TestEvokeAppliedConcreteM2(t *testing.T) {
	mod := values.NewConcreteModifier2(func(kind values.Evokation, f, g, x, w box.Box) box.Box {
		return Evoke(nil, f, kind, Evoke(nil, g, kind, x, w), w)
	})
	modBox := values.PackNewModifier2(mod)
	negFn := concreteFn(func(kind values.Evokation, x, w box.Box) box.Box {
		return box.PackNumber(-box.UnpackNumber(x))
	})
	applied := values.PackNewFunction(values.NewAppliedM2(negFn, modBox, plusFn, mod))
	got := Evoke(nil, applied, values.Dyad, box.PackNumber(3), box.PackNumber(4))
	if box.UnpackNumber(got) != -7 {
		t.Fatalf("applied concrete m2 = %v, want -7", box.UnpackNumber(got))
	}
}
