package values

import "github.com/MysticalUnicat/fern/internal/box"

// DeepMatch is structural equality ("Match", ≡ dyad and the Matcher
// target predicate): numbers/characters/symbols compare as primitive
// values; arrays compare shape-then-cells recursively; every other
// heap kind (function, modifier, namespace, stream) compares by
// identity, since this core never compiles a structural equality rule
// for callable/scoping objects.
func DeepMatch(a, b box.Box) bool {
	if box.IsArray(a) && box.IsArray(b) {
		return arraysMatch(AsArray(a), AsArray(b))
	}
	if box.IsArray(a) != box.IsArray(b) {
		return false
	}
	return box.BitEqual(a, b)
}

func arraysMatch(x, y *Array) bool {
	if Rank(x) != Rank(y) {
		return false
	}
	for k := uint32(0); k < Rank(x); k++ {
		if AxisLength(x, k) != AxisLength(y, k) {
			return false
		}
	}
	n := NumCells(x)
	for i := int64(0); i < n; i++ {
		if !DeepMatch(GetCell(x, i), GetCell(y, i)) {
			return false
		}
	}
	return true
}

// AsArray unpacks b's Array heap pointer. Fatal if b is not an array.
func AsArray(b box.Box) *Array {
	return (*Array)(box.UnpackArray(b))
}

// ToFill derives the fill value a box's own value implies for its own
// shape: a character-typed value derives a space, a number-typed value
// derives 0, an array recursively derives an array of the same shape
// whose cells and fill are themselves derived, and every other kind
// (symbol, function, modifier, namespace, stream) derives nil.
func ToFill(x box.Box) box.Box {
	switch {
	case box.IsCharacter(x):
		return box.PackCharacter(' ')
	case box.IsNumber(x):
		return box.PackNumber(0)
	case box.IsArray(x):
		xa := AsArray(x)
		n := NumCells(xa)
		cells, _ := newBoxData(uint32(n))
		for i := int64(0); i < n; i++ {
			cells.SetCell(uint32(i), ToFill(GetCell(xa, i)))
		}
		return PackNewArray(MakeArray(xa.Shape.Clone(), cells, ToFill(xa.Fill)))
	default:
		return box.Nil()
	}
}
