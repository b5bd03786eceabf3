// Package eval implements function-application machinery (evoke) and
// the primitive evaluators: arithmetic, comparison, structural, and
// the modifier set.
package eval

import (
	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/values"
)

// BlockInvoker runs a compiled function/modifier body through the VM.
// eval depends on this interface rather than internal/vm directly so
// the dependency points the natural way: vm imports eval, not the
// reverse.
type BlockInvoker interface {
	InvokeFunctionBlock(bodyIndex uint32, env values.BlockEnv, x, w box.Box) box.Box
	InvokeModifier1Block(bodyIndex uint32, env values.BlockEnv, f, x, w box.Box) box.Box
	InvokeModifier2Block(bodyIndex uint32, env values.BlockEnv, f, g, x, w box.Box) box.Box
}

// Evoke applies callee to x (and w, for a dyad call) according to its
// kind: a concrete builtin, a compiled block, an applied modifier, or
// a train. kind=Monad callers must pass w = box.Nothing().
func Evoke(vm BlockInvoker, callee box.Box, kind values.Evokation, x, w box.Box) box.Box {
	if !box.IsFunctionLike(callee) {
		return callee // not a function: constant coerces to itself
	}

	if box.IsFunction(callee) {
		f := values.AsFunction(callee)
		switch f.Kind {
		case values.FunctionConcrete:
			return f.Concrete(kind, x, w)

		case values.FunctionBlock:
			return vm.InvokeFunctionBlock(f.BodyIndex, f.Env, x, w)

		case values.FunctionAppliedConcM1:
			return f.ConcM1(kind, f.AppliedF, x, w)

		case values.FunctionAppliedM1:
			m := values.AsModifier1(f.AppliedM)
			return evokeModifier1(vm, m, f.AppliedM, f.AppliedF, kind, x, w)

		case values.FunctionAppliedConcM2:
			return f.ConcM2(kind, f.AppliedF, f.AppliedG, x, w)

		case values.FunctionAppliedM2:
			m := values.AsModifier2(f.AppliedM)
			return evokeModifier2(vm, m, f.AppliedM, f.AppliedF, f.AppliedG, kind, x, w)

		case values.FunctionTrain2:
			inner := Evoke(vm, f.TrainH, kind, x, w)
			return Evoke(vm, f.TrainG, values.Monad, inner, box.Nothing())

		case values.FunctionTrain3:
			right := Evoke(vm, f.TrainH, kind, x, w)
			left := Evoke(vm, f.TrainF, kind, x, w)
			return Evoke(vm, f.TrainG, values.Dyad, right, left)
		}
	}

	// A Modifier box reached evoke directly (e.g. via APPLY_M1 seeing a
	// bare modifier1/modifier2 constant): apply it against x standing in
	// for its absent function operand is never valid; this is reachable
	// only through a malformed program.
	box.Fatal("eval: attempt to evoke a non-function value")
	panic("unreachable")
}

func evokeModifier1(vm BlockInvoker, m *values.Modifier1, mBox, fBox box.Box, kind values.Evokation, x, w box.Box) box.Box {
	switch m.Kind {
	case values.Modifier1Block:
		return vm.InvokeModifier1Block(m.BodyIndex, m.Env, fBox, x, w)
	case values.Modifier1Partial:
		// A Modifier2 curried down to an M1 by binding its G operand.
		m2 := values.AsModifier2(m.PartialM)
		return evokeModifier2(vm, m2, m.PartialM, fBox, m.PartialG, kind, x, w)
	default:
		box.Fatal("eval: modifier1 concrete variant routed through block path")
		panic("unreachable")
	}
}

func evokeModifier2(vm BlockInvoker, m *values.Modifier2, mBox, fBox, gBox box.Box, kind values.Evokation, x, w box.Box) box.Box {
	switch m.Kind {
	case values.Modifier2Block:
		return vm.InvokeModifier2Block(m.BodyIndex, m.Env, fBox, gBox, x, w)
	case values.Modifier2Concrete:
		// Reached through a Modifier1Partial built from a concrete M2.
		return m.Concrete(kind, fBox, gBox, x, w)
	default:
		box.Fatal("eval: modifier2 concrete variant routed through block path")
		panic("unreachable")
	}
}

// Monad calls Evoke with kind=Monad and w=nothing.
func Monad(vm BlockInvoker, callee, x box.Box) box.Box {
	return Evoke(vm, callee, values.Monad, x, box.Nothing())
}

// Dyad calls Evoke with kind=Dyad.
func Dyad(vm BlockInvoker, callee, x, w box.Box) box.Box {
	return Evoke(vm, callee, values.Dyad, x, w)
}
