// Package builtins names every primitive function and modifier
// internal/eval implements as a lookup table keyed by its glyph or
// name. There is no fern source-language front end in this
// repository, so this table is how a hand-assembled Program
// (internal/vmassemble, cmd/fern) references "+", "⎊", and friends
// without each caller re-wrapping the same eval function in a fresh
// Box.
package builtins

import (
	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/eval"
	"github.com/MysticalUnicat/fern/internal/values"
)

func fn(f func(x, w box.Box, isMonad bool) box.Box) box.Box {
	return values.PackNewFunction(values.NewConcrete(func(kind values.Evokation, x, w box.Box) box.Box {
		return f(x, w, kind == values.Monad)
	}))
}

func fnX(f func(x box.Box) box.Box) box.Box {
	return values.PackNewFunction(values.NewConcrete(func(kind values.Evokation, x, w box.Box) box.Box {
		return f(x)
	}))
}

func fnXW(f func(x, w box.Box) box.Box) box.Box {
	return values.PackNewFunction(values.NewConcrete(func(kind values.Evokation, x, w box.Box) box.Box {
		return f(x, w)
	}))
}

func m1(f func(f, x, w box.Box, isMonad bool) box.Box) box.Box {
	return values.PackNewModifier1(values.NewConcreteModifier1(func(kind values.Evokation, fOperand, x, w box.Box) box.Box {
		return f(fOperand, x, w, kind == values.Monad)
	}))
}

func m1Kind(f func(fOperand box.Box, kind values.Evokation, x, w box.Box) box.Box) box.Box {
	return values.PackNewModifier1(values.NewConcreteModifier1(func(kind values.Evokation, fOperand, x, w box.Box) box.Box {
		return f(fOperand, kind, x, w)
	}))
}

func m2Kind(f func(fOperand, gOperand box.Box, kind values.Evokation, x, w box.Box) box.Box) box.Box {
	return values.PackNewModifier2(values.NewConcreteModifier2(func(kind values.Evokation, fOperand, gOperand, x, w box.Box) box.Box {
		return f(fOperand, gOperand, kind, x, w)
	}))
}

// Functions maps every plain-function primitive to its Box, by the
// glyph (or, for supplemented non-glyph primitives, the name) it is
// defined under.
var Functions = map[string]box.Box{
	"+": fn(eval.Plus),
	"-": fn(eval.Minus),
	"×": fn(eval.Times),
	"÷": fn(eval.Divide),
	"⌊": fn(eval.Floor),
	"⌈": fn(eval.Ceiling),
	"|": fn(eval.Abs),
	"*": fn(eval.Power),
	"⊣": fn(eval.LeftTack),
	"⊢": fnX(eval.RightTack),
	"<": fn(func(x, w box.Box, isMonad bool) box.Box {
		if isMonad {
			return eval.Enclose(x)
		}
		return eval.LessThanDyad(x, w)
	}),
	"≤": fnXW(eval.LessEqual),
	"≥": fnXW(eval.GreaterEqual),
	">": fnXW(eval.GreaterThan),
	"=": fn(eval.Equal),
	"≠": fnX(eval.NotEqual),
	"≢": fnX(eval.Shape),
	"⥊": fn(eval.Reshape),
	"↕": fnX(eval.Range),
	"⊑": fnXW(eval.Pick),
	"!": fn(eval.Assert),
	"Fill":     fn(eval.Fill),
	"Log":      fn(eval.Log),
	"GroupLen": fn(eval.GroupLen),
	"GroupOrd": fnXW(eval.GroupOrd),
}

// Modifier1s maps every one-operand modifier primitive to its Box.
var Modifier1s = map[string]box.Box{
	"˙": values.PackNewModifier1(values.NewConcreteModifier1(func(kind values.Evokation, f, x, w box.Box) box.Box {
		return eval.Constant(f)
	})),
	"˜": m1Kind(eval.Swap),
	"¨": m1Kind(eval.Each),
	"⌜": values.PackNewModifier1(values.NewConcreteModifier1(func(kind values.Evokation, f, x, w box.Box) box.Box {
		return eval.Table(f, x, w)
	})),
	"`": m1Kind(eval.Scan),
}

// Modifier2s maps every two-operand modifier primitive to its Box.
var Modifier2s = map[string]box.Box{
	"∘": m2Kind(eval.Atop),
	"○": m2Kind(eval.Over),
	"⊸": m2Kind(eval.Before),
	"⟜": m2Kind(eval.After),
	"⊘": m2Kind(eval.Valences),
	"◶": m2Kind(eval.Choose),
	"⎊": m2Kind(eval.Catch),
}
