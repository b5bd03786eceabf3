package eval

import (
	"math"

	"github.com/MysticalUnicat/fern/internal/box"
)

// Dyad arithmetic tries number-number first, falls back to the
// character interaction the glyph documents, and fatals otherwise.

func fatalArith(glyph, msg string) box.Box {
	box.Fatal(glyph + ": " + msg)
	panic("unreachable")
}

// Plus implements monad/dyad +.
func Plus(x, w box.Box, isMonad bool) box.Box {
	if isMonad {
		return x
	}
	if box.IsNumber(x) && box.IsNumber(w) {
		return box.PackNumber(box.UnpackNumber(x) + box.UnpackNumber(w))
	}
	if box.IsCharacter(x) && box.IsNumber(w) {
		return box.PackCharacter(box.UnpackCharacter(x) + rune(box.UnpackNumber(w)))
	}
	if box.IsCharacter(w) && box.IsNumber(x) {
		return box.PackCharacter(box.UnpackCharacter(w) + rune(box.UnpackNumber(x)))
	}
	return fatalArith("+", "arguments must be number + number, or character + number")
}

// Minus implements monad/dyad −.
func Minus(x, w box.Box, isMonad bool) box.Box {
	if isMonad {
		if !box.IsNumber(x) {
			return fatalArith("-", "argument must be a number")
		}
		return box.PackNumber(-box.UnpackNumber(x))
	}
	if box.IsNumber(x) && box.IsNumber(w) {
		return box.PackNumber(box.UnpackNumber(x) - box.UnpackNumber(w))
	}
	if box.IsCharacter(x) && box.IsCharacter(w) {
		return box.PackNumber(float64(box.UnpackCharacter(x) - box.UnpackCharacter(w)))
	}
	if box.IsCharacter(x) && box.IsNumber(w) {
		return box.PackCharacter(box.UnpackCharacter(x) - rune(box.UnpackNumber(w)))
	}
	return fatalArith("-", "arguments must be number - number, character - character, or character - number")
}

// Times implements monad (sign) / dyad (multiply) ×.
func Times(x, w box.Box, isMonad bool) box.Box {
	if isMonad {
		if !box.IsNumber(x) {
			return fatalArith("×", "argument must be a number")
		}
		f := box.UnpackNumber(x)
		if f == 0 {
			return box.PackNumber(0)
		}
		return box.PackNumber(math.Copysign(1, f))
	}
	if !box.IsNumber(x) || !box.IsNumber(w) {
		return fatalArith("×", "arguments must be number × number")
	}
	return box.PackNumber(box.UnpackNumber(x) * box.UnpackNumber(w))
}

// Divide implements monad (reciprocal) / dyad (quotient) ÷.
func Divide(x, w box.Box, isMonad bool) box.Box {
	if isMonad {
		if !box.IsNumber(x) {
			return fatalArith("÷", "argument must be a number")
		}
		return box.PackNumber(1 / box.UnpackNumber(x))
	}
	if !box.IsNumber(x) || !box.IsNumber(w) {
		return fatalArith("÷", "arguments must be number ÷ number")
	}
	return box.PackNumber(box.UnpackNumber(x) / box.UnpackNumber(w))
}

// Floor implements monad (floor) / dyad (min) ⌊.
func Floor(x, w box.Box, isMonad bool) box.Box {
	if isMonad {
		if !box.IsNumber(x) {
			return fatalArith("⌊", "argument must be a number")
		}
		return box.PackNumber(math.Floor(box.UnpackNumber(x)))
	}
	if !box.IsNumber(x) || !box.IsNumber(w) {
		return fatalArith("⌊", "arguments must be number ⌊ number")
	}
	return box.PackNumber(math.Min(box.UnpackNumber(x), box.UnpackNumber(w)))
}

// Ceiling implements monad (ceiling) / dyad (max) ⌈.
func Ceiling(x, w box.Box, isMonad bool) box.Box {
	if isMonad {
		if !box.IsNumber(x) {
			return fatalArith("⌈", "argument must be a number")
		}
		return box.PackNumber(math.Ceil(box.UnpackNumber(x)))
	}
	if !box.IsNumber(x) || !box.IsNumber(w) {
		return fatalArith("⌈", "arguments must be number ⌈ number")
	}
	return box.PackNumber(math.Max(box.UnpackNumber(x), box.UnpackNumber(w)))
}

// Abs implements monad (absolute value) / dyad (modulus) | .
func Abs(x, w box.Box, isMonad bool) box.Box {
	if isMonad {
		if !box.IsNumber(x) {
			return fatalArith("|", "argument must be a number")
		}
		return box.PackNumber(math.Abs(box.UnpackNumber(x)))
	}
	if !box.IsNumber(x) || !box.IsNumber(w) {
		return fatalArith("|", "arguments must be number | number")
	}
	xv, wv := box.UnpackNumber(x), box.UnpackNumber(w)
	if wv == 0 {
		return box.PackNumber(xv)
	}
	// BQN residue: x mod w, floored (result takes the sign of w), not
	// Go's math.Mod (which takes the sign of x like C's fmod).
	return box.PackNumber(xv - wv*math.Floor(xv/wv))
}

// Power implements monad (e^x) / dyad (w^x) *.
func Power(x, w box.Box, isMonad bool) box.Box {
	if isMonad {
		if !box.IsNumber(x) {
			return fatalArith("*", "argument must be a number")
		}
		return box.PackNumber(math.Exp(box.UnpackNumber(x)))
	}
	if !box.IsNumber(x) || !box.IsNumber(w) {
		return fatalArith("*", "arguments must be number * number")
	}
	return box.PackNumber(math.Pow(box.UnpackNumber(w), box.UnpackNumber(x)))
}
