package values

import (
	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/data"
)

// Array is the triple (shape, cells, fill). shape is a Data of natural
// numbers giving axis lengths; cells may be logically shorter than the
// product of shape, in which case missing cells read as fill.
type Array struct {
	Shape data.Data
	Cells data.Data
	Fill  box.Box
}

// emptyArray is the canonical sentinel: shape [0], no cells, fill 0.
var emptyArray = func() *Array {
	return &Array{Shape: data.MakeShape([]uint32{0}), Cells: emptyBoxData(), Fill: box.PackNumber(0)}
}

func emptyBoxData() data.Data {
	d, _ := data.Init(data.FormatBox, 0)
	return d
}

// EmptyArray returns a fresh canonical empty array.
func EmptyArray() *Array { return emptyArray() }

// MakeArray constructs an Array directly from a shape/cells/fill
// triple (Go's value-copy-of-Data already clones the descriptor;
// callers that hold their own Data should Clone explicitly if they
// intend to keep using it afterward).
func MakeArray(shape, cells data.Data, fill box.Box) *Array {
	return &Array{Shape: shape, Cells: cells, Fill: fill}
}

// MakeArrayShape builds an array from raw dimension values, auto
// narrowed to the smallest natural format that can hold them.
func MakeArrayShape(dims []uint32, cells data.Data, fill box.Box) *Array {
	return &Array{Shape: data.MakeShape(dims), Cells: cells, Fill: fill}
}

// MakeArrayFromCells derives the shape as the 1-rank cell count.
func MakeArrayFromCells(cells data.Data, fill box.Box) *Array {
	return MakeArrayShape([]uint32{cells.Size()}, cells, fill)
}

// MakeSingleton produces a rank-1 length-1 array with a user-chosen
// fill.
func MakeSingleton(cell box.Box, fill box.Box) *Array {
	cells, _ := data.Init(data.FormatBox, 1)
	cells.SetCell(0, cell)
	return MakeArrayShape([]uint32{1}, cells, fill)
}

// Rank is the array's number of axes (shape.size).
func Rank(a *Array) uint32 { return a.Shape.Size() }

// AxisLength returns the length of axis k.
func AxisLength(a *Array, k uint32) int64 { return a.Shape.GetNatural(k) }

// NumCells is the product of every axis length — the logical bound,
// which may exceed a.Cells.Size() (the remainder reads as Fill).
func NumCells(a *Array) int64 {
	n := int64(1)
	for k := uint32(0); k < Rank(a); k++ {
		n *= AxisLength(a, k)
	}
	return n
}

// GetCell returns the cell at logical index i, or Fill when i falls
// past the physically stored cells (fill extension).
func GetCell(a *Array, i int64) box.Box {
	if i < 0 || i >= int64(a.Cells.Size()) {
		return a.Fill
	}
	return a.Cells.GetCell(uint32(i))
}

// GetNatural reads cell i as an integer-valued number.
func GetNatural(a *Array, i int64) int64 {
	if i < 0 || i >= int64(a.Cells.Size()) {
		return data.MustForceNatural(a.Fill)
	}
	return a.Cells.GetNatural(uint32(i))
}
