package eval

import (
	"math"

	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/data"
	"github.com/MysticalUnicat/fern/internal/values"
)

// This file implements the named (non-glyph) primitives: Fill, Log,
// GroupLen, GroupOrd.

// Fill implements 'array Fill' (returns x's fill) and
// 'array Fill any' (returns x with fill derived from w).
func Fill(x, w box.Box, isMonad bool) box.Box {
	xa := values.AsArray(x)
	if isMonad {
		return xa.Fill
	}
	return values.PackNewArray(values.MakeArray(xa.Shape.Clone(), xa.Cells.Clone(), values.ToFill(w)))
}

// Log implements '𝕩 Log' (natural log) and '𝕩 Log 𝕨' (log base w).
func Log(x, w box.Box, isMonad bool) box.Box {
	if isMonad {
		box.AssertFatal(box.IsNumber(x), "Log: argument must be a number")
		return box.PackNumber(math.Log(box.UnpackNumber(x)))
	}
	box.AssertFatal(box.IsNumber(x) && box.IsNumber(w), "Log: arguments must be numbers")
	return box.PackNumber(math.Log(box.UnpackNumber(x)) / math.Log(box.UnpackNumber(w)))
}

// GroupLen implements '𝕩 GroupLen 𝕨?': a histogram of the natural
// values in x, with an optional minimum result length (𝕨, one more
// than the minimum highest index).
func GroupLen(x, w box.Box, isMonad bool) box.Box {
	if isMonad {
		w = box.PackNumber(0)
	}
	xa := values.AsArray(x)
	n := values.NumCells(xa)

	shape := data.MustForceNatural(w) - 1
	for i := int64(0); i < n; i++ {
		nat := values.GetNatural(xa, i)
		if nat > shape {
			shape = nat
		}
	}
	shape++

	cells, _ := data.Init(data.FormatNatural32, uint32(shape))
	for i := int64(0); i < n; i++ {
		nat := values.GetNatural(xa, i)
		if nat >= 0 {
			cur := cells.GetNatural(uint32(nat))
			cells.SetCell(uint32(nat), box.PackNumber(float64(cur+1)))
		}
	}
	return values.PackNewArray(values.MakeArrayShape([]uint32{uint32(shape)}, cells, box.PackNumber(0)))
}

// GroupOrd implements '𝕩 GroupOrd 𝕨', 𝕨 assumed to be a GroupLen
// result: the join order ⊔ uses, grouping indices of x by their
// natural value into contiguous runs sized by w.
func GroupOrd(x, w box.Box) box.Box {
	xa := values.AsArray(x)
	wa := values.AsArray(w)
	wn := values.NumCells(wa)

	counts := make([]int64, wn)
	shape := int64(0)
	for i := int64(0); i < wn; i++ {
		counts[i] = shape
		shape += values.GetNatural(wa, i)
	}

	cells, _ := data.Init(data.FormatNatural32, uint32(shape))
	xn := values.NumCells(xa)
	for i := int64(0); i < xn; i++ {
		nat := values.GetNatural(xa, i)
		if nat >= 0 {
			count := counts[nat]
			counts[nat]++
			cells.SetCell(uint32(count), box.PackNumber(float64(i)))
		}
	}
	return values.PackNewArray(values.MakeArrayShape([]uint32{uint32(shape)}, cells, xa.Fill))
}
