package eval

import (
	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/values"
)

// typeRank orders kinds for cross-kind comparison: array/function/
// modifier/namespace/stream < number < character < symbol.
func typeRank(b box.Box) int {
	switch box.Tag(b) {
	case box.KindNumber:
		return 1
	case box.KindCharacter:
		return 2
	case box.KindSymbol:
		return 3
	default: // array, function, modifier1, modifier2, namespace, stream
		return 0
	}
}

// lessEq is the dyad ≤ comparator: same-kind numeric/character
// compare by value, cross-kind compares by typeRank.
func lessEq(x, w box.Box) bool {
	if box.IsNumber(x) && box.IsNumber(w) {
		return box.UnpackNumber(x) <= box.UnpackNumber(w)
	}
	if box.IsCharacter(x) && box.IsCharacter(w) {
		return box.UnpackCharacter(x) <= box.UnpackCharacter(w)
	}
	return typeRank(x) <= typeRank(w)
}

func boolBox(b bool) box.Box {
	if b {
		return box.PackNumber(1)
	}
	return box.PackNumber(0)
}

// LessEqual implements dyad ≤.
func LessEqual(x, w box.Box) box.Box { return boolBox(lessEq(x, w)) }

// GreaterThan implements dyad >.
func GreaterThan(x, w box.Box) box.Box { return boolBox(!lessEq(x, w)) }

// GreaterEqual implements dyad ≥.
func GreaterEqual(x, w box.Box) box.Box { return boolBox(lessEq(w, x)) }

// LessThanDyad implements dyad <.
func LessThanDyad(x, w box.Box) box.Box { return boolBox(!lessEq(w, x)) }

// Equal implements dyad = (number=number, character=character,
// symbol=symbol) and monad = (array rank).
func Equal(x, w box.Box, isMonad bool) box.Box {
	if isMonad {
		if box.IsArray(x) {
			return box.PackNumber(float64(values.Rank(values.AsArray(x))))
		}
		box.Fatal("=: argument must be an array")
	}
	if box.IsNumber(x) && box.IsNumber(w) {
		return boolBox(box.UnpackNumber(x) == box.UnpackNumber(w))
	}
	if box.IsCharacter(x) && box.IsCharacter(w) {
		return boolBox(box.UnpackCharacter(x) == box.UnpackCharacter(w))
	}
	if box.IsSymbol(x) && box.IsSymbol(w) {
		return boolBox(box.UnpackSymbol(x) == box.UnpackSymbol(w))
	}
	box.Fatal("=: arguments must be number = number, character = character, or symbol = symbol")
	panic("unreachable")
}

// NotEqual implements monad/dyad ≠: leading-axis length of an array,
// 1 for any non-array.
func NotEqual(x box.Box) box.Box {
	if box.IsArray(x) {
		a := values.AsArray(x)
		if values.Rank(a) == 0 {
			return box.PackNumber(1)
		}
		return box.PackNumber(float64(values.AxisLength(a, 0)))
	}
	return box.PackNumber(1)
}
