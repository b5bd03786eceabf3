// Modifier implementations: ˙ ˜ ¨ ⌜ ` ∘ ○ ⊸ ⟜ ⊘ ◶ ⎊.
package eval

import (
	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/data"
	"github.com/MysticalUnicat/fern/internal/values"
)

// Constant implements ˙: the modified function always returns the
// captured operand F itself, ignoring its call arguments.
func Constant(f box.Box) box.Box {
	return f
}

// Swap implements ˜: monadically calls F with both operand slots set
// to x (commute); dyadically calls F with x and w transposed.
func Swap(f box.Box, kind values.Evokation, x, w box.Box) box.Box {
	if kind == values.Monad {
		return Evoke(currentVM, f, values.Dyad, x, x)
	}
	return Evoke(currentVM, f, values.Dyad, w, x)
}

// Each implements ¨: applies F cell-wise, preserving shape. Dyadic
// each requires x and w to have the same cell count.
func Each(f box.Box, kind values.Evokation, x, w box.Box) box.Box {
	xa := values.AsArray(x)
	n := values.NumCells(xa)
	cells, _ := data.Init(data.FormatBox, uint32(n))

	if kind == values.Monad {
		for i := int64(0); i < n; i++ {
			cells.SetCell(uint32(i), Evoke(currentVM, f, values.Monad, values.GetCell(xa, i), box.Nothing()))
		}
	} else {
		wa := values.AsArray(w)
		box.AssertFatal(values.NumCells(wa) == n, "¨: arguments must have the same cell count")
		for i := int64(0); i < n; i++ {
			cells.SetCell(uint32(i), Evoke(currentVM, f, values.Dyad, values.GetCell(xa, i), values.GetCell(wa, i)))
		}
	}
	return values.PackNewArray(values.MakeArray(xa.Shape.Clone(), cells, values.ToFill(xa.Fill)))
}

// Table implements ⌜: the dyadic outer product, shape = shape(w) ++
// shape(x); cell (i,j) = w[i] F x[j].
func Table(f box.Box, x, w box.Box) box.Box {
	xa, wa := values.AsArray(x), values.AsArray(w)
	nx, nw := values.NumCells(xa), values.NumCells(wa)

	cells, _ := data.Init(data.FormatBox, uint32(nx*nw))
	for i := int64(0); i < nw; i++ {
		for j := int64(0); j < nx; j++ {
			v := Evoke(currentVM, f, values.Dyad, values.GetCell(xa, j), values.GetCell(wa, i))
			cells.SetCell(uint32(i*nx+j), v)
		}
	}

	wRank, xRank := values.Rank(wa), values.Rank(xa)
	dims := make([]uint32, wRank+xRank)
	for k := uint32(0); k < wRank; k++ {
		dims[k] = uint32(values.AxisLength(wa, k))
	}
	for k := uint32(0); k < xRank; k++ {
		dims[wRank+k] = uint32(values.AxisLength(xa, k))
	}
	return values.PackNewArray(values.MakeArrayShape(dims, cells, box.PackNumber(0)))
}

// Scan implements ` : an inclusive prefix scan along x's leading axis.
// Monadic scan seeds from x's own first cell; dyadic scan seeds from
// w, which must be shaped like one cell.
func Scan(f box.Box, kind values.Evokation, x, w box.Box) box.Box {
	xa := values.AsArray(x)
	n := values.NumCells(xa)
	cells, _ := data.Init(data.FormatBox, uint32(n))
	if n == 0 {
		return values.PackNewArray(values.MakeArray(xa.Shape.Clone(), cells, xa.Fill))
	}

	var acc box.Box
	start := int64(0)
	if kind == values.Dyad {
		acc = w
	} else {
		acc = values.GetCell(xa, 0)
		cells.SetCell(0, acc)
		start = 1
	}
	for i := start; i < n; i++ {
		acc = Evoke(currentVM, f, values.Dyad, values.GetCell(xa, i), acc)
		cells.SetCell(uint32(i), acc)
	}
	return values.PackNewArray(values.MakeArray(xa.Shape.Clone(), cells, xa.Fill))
}

// Atop implements ∘: F∘G calls G with the caller's arguments, then
// applies F monadically to the result.
func Atop(f, g box.Box, kind values.Evokation, x, w box.Box) box.Box {
	inner := Evoke(currentVM, g, kind, x, w)
	return Evoke(currentVM, f, values.Monad, inner, box.Nothing())
}

// Over implements ○: F○G applies G monadically to each side, then
// calls F with the transformed operands (F(Gx, Gw)).
func Over(f, g box.Box, kind values.Evokation, x, w box.Box) box.Box {
	gx := Evoke(currentVM, g, values.Monad, x, box.Nothing())
	gw := box.Nothing()
	if kind == values.Dyad {
		gw = Evoke(currentVM, g, values.Monad, w, box.Nothing())
	}
	return Evoke(currentVM, f, kind, gx, gw)
}

// Before implements ⊸: dyadically, (F𝕨) G 𝕩; monadically, (F𝕩) G 𝕩.
func Before(f, g box.Box, kind values.Evokation, x, w box.Box) box.Box {
	left := x
	if kind == values.Dyad {
		left = w
	}
	transformed := Evoke(currentVM, f, values.Monad, left, box.Nothing())
	return Evoke(currentVM, g, values.Dyad, x, transformed)
}

// After implements ⟜: dyadically, 𝕨 F (G𝕩); monadically, 𝕩 F (G𝕩).
func After(f, g box.Box, kind values.Evokation, x, w box.Box) box.Box {
	transformed := Evoke(currentVM, g, values.Monad, x, box.Nothing())
	left := w
	if kind == values.Monad {
		left = x
	}
	return Evoke(currentVM, f, values.Dyad, transformed, left)
}

// Valences implements ⊘: F handles monadic calls, G handles dyadic
// calls.
func Valences(f, g box.Box, kind values.Evokation, x, w box.Box) box.Box {
	if kind == values.Monad {
		return Evoke(currentVM, f, kind, x, w)
	}
	return Evoke(currentVM, g, kind, x, w)
}

// Choose implements ◶: evokes F to get an index, then dispatches to
// the function at that index in array operand G.
func Choose(f, g box.Box, kind values.Evokation, x, w box.Box) box.Box {
	idxBox := Evoke(currentVM, f, kind, x, w)
	idx := data.MustForceNatural(idxBox)
	ga := values.AsArray(g)
	chosen := values.GetCell(ga, idx)
	return Evoke(currentVM, chosen, kind, x, w)
}

// Catch implements ⎊: runs F; if F throws, runs G with the same
// arguments and the thrown value discarded (G receives the original
// call arguments, not the thrown message).
func Catch(f, g box.Box, kind values.Evokation, x, w box.Box) (result box.Box) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Thrown); ok {
				result = Evoke(currentVM, g, kind, x, w)
				return
			}
			panic(r)
		}
	}()
	return Evoke(currentVM, f, kind, x, w)
}
