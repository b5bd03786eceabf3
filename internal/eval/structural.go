package eval

import (
	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/data"
	"github.com/MysticalUnicat/fern/internal/values"
)

// LeftTack implements ⊣: monad identity, dyad returns w.
func LeftTack(x, w box.Box, isMonad bool) box.Box {
	if isMonad {
		return x
	}
	return w
}

// RightTack implements ⊢: monad and dyad both return x.
func RightTack(x box.Box) box.Box { return x }

// Enclose implements monad < : wraps x as a rank-1 length-1 array
// whose fill is derived from x.
func Enclose(x box.Box) box.Box {
	return values.PackNewArray(values.MakeSingleton(x, values.ToFill(x)))
}

// Shape implements monad ≢: the array's shape as a 1-rank natural
// array, or the empty array for a non-array argument.
func Shape(x box.Box) box.Box {
	if !box.IsArray(x) {
		return values.PackNewArray(values.EmptyArray())
	}
	a := values.AsArray(x)
	rank := values.Rank(a)
	dims := make([]uint32, rank)
	for k := uint32(0); k < rank; k++ {
		dims[k] = uint32(values.AxisLength(a, k))
	}
	cells, _ := data.Init(data.FormatNatural32, rank)
	for k, d := range dims {
		cells.SetCell(uint32(k), box.PackNumber(float64(d)))
	}
	return values.PackNewArray(values.MakeArrayShape([]uint32{rank}, cells, box.PackNumber(0)))
}

// Reshape implements monad ⥊ (flatten to rank 1) and dyad ⥊ (reshape
// to the shape given by w, a 1d array of naturals).
func Reshape(x, w box.Box, isMonad bool) box.Box {
	xa := values.AsArray(x)
	if isMonad {
		n := values.NumCells(xa)
		return values.PackNewArray(values.MakeArrayShape([]uint32{uint32(n)}, xa.Cells, xa.Fill))
	}
	wa := values.AsArray(w)
	rank := values.NumCells(wa)
	dims := make([]uint32, rank)
	for k := int64(0); k < rank; k++ {
		dims[k] = uint32(values.GetNatural(wa, k))
	}
	return values.PackNewArray(values.MakeArrayShape(dims, xa.Cells, xa.Fill))
}

// Range implements monad ↕: an array of naturals 0..x-1.
func Range(x box.Box) box.Box {
	n := data.MustForceNatural(x)
	cells, _ := data.Init(data.FormatNatural32, uint32(n))
	for i := int64(0); i < n; i++ {
		cells.SetCell(uint32(i), box.PackNumber(float64(i)))
	}
	return values.PackNewArray(values.MakeArrayShape([]uint32{uint32(n)}, cells, box.PackNumber(0)))
}

// Pick implements dyad ⊑: index cells by natural w.
func Pick(x, w box.Box) box.Box {
	xa := values.AsArray(x)
	i := data.MustForceNatural(w)
	return values.GetCell(xa, i)
}

// Assert implements monad/dyad ! : requires x = 1, throws w (or x on
// the monad path) otherwise.
func Assert(x, w box.Box, isMonad bool) box.Box {
	if isMonad {
		w = x
	}
	if !box.IsNumber(x) || box.UnpackNumber(x) != 1 {
		Throw(w)
	}
	return x
}
