package values

import "github.com/MysticalUnicat/fern/internal/box"

// FunctionKind tags which variant of the Function tagged union a
// given instance holds.
type FunctionKind uint8

const (
	FunctionConcrete FunctionKind = iota
	FunctionBlock
	FunctionAppliedM1      // applied_m1: F + block M1
	FunctionAppliedConcM1  // applied_c_m1: F + concrete M1 (hoisted fast path)
	FunctionAppliedM2      // applied_m2: F + block M2 + G
	FunctionAppliedConcM2  // applied_c_m2: F + concrete M2 + G
	FunctionTrain2         // (G, H)
	FunctionTrain3         // (F, G, H)
)

// ConcreteFn is a builtin function's entry point: called with
// (kind, x, w), per evoke's "concrete builtin" row.
type ConcreteFn func(kind Evokation, x, w box.Box) box.Box

// BlockEnv is a captured lexical frame a compiled block closes over.
// It is opaque here to avoid a dependency on internal/vm; the VM
// package implements it and is the only consumer that type-asserts it
// back.
type BlockEnv interface{}

// Function is a tagged union over every callable shape: a concrete
// builtin, a compiled block, a modifier applied to an operand, or a
// 2/3-train composition.
type Function struct {
	Kind FunctionKind

	// FunctionConcrete
	Concrete ConcreteFn

	// FunctionBlock
	BodyIndex uint32
	Env       BlockEnv

	// FunctionAppliedM1 / FunctionAppliedConcM1
	AppliedF box.Box
	AppliedM box.Box // block variant: the Modifier1/Modifier2 Box itself
	ConcM1   ConcreteModifier1Fn

	// FunctionAppliedM2 / FunctionAppliedConcM2
	AppliedG box.Box
	ConcM2   ConcreteModifier2Fn

	// FunctionTrain2
	TrainG box.Box
	TrainH box.Box

	// FunctionTrain3
	TrainF box.Box
}

// NewConcrete wraps a builtin entry point as a Function.
func NewConcrete(fn ConcreteFn) *Function {
	return &Function{Kind: FunctionConcrete, Concrete: fn}
}

// NewBlock wraps a compiled body as a Function closing over env.
func NewBlock(bodyIndex uint32, env BlockEnv) *Function {
	return &Function{Kind: FunctionBlock, BodyIndex: bodyIndex, Env: env}
}

// NewTrain2 builds the 2-train (G, H), per opcode 20.
func NewTrain2(g, h box.Box) *Function {
	return &Function{Kind: FunctionTrain2, TrainG: g, TrainH: h}
}

// NewTrain3 builds the 3-train (F, G, H), per opcode 21.
func NewTrain3(f, g, h box.Box) *Function {
	return &Function{Kind: FunctionTrain3, TrainF: f, TrainG: g, TrainH: h}
}

// NewAppliedM1 applies modifier-1 box m to function box f, hoisting
// the concrete fast path when m is itself concrete, per opcode 26.
func NewAppliedM1(f, m box.Box, mod *Modifier1) *Function {
	if mod.Kind == Modifier1Concrete {
		return &Function{Kind: FunctionAppliedConcM1, AppliedF: f, ConcM1: mod.Concrete}
	}
	return &Function{Kind: FunctionAppliedM1, AppliedF: f, AppliedM: m}
}

// NewAppliedM2 applies modifier-2 box m to function boxes f and g,
// hoisting the concrete fast path when m is itself concrete, per
// opcode 27.
func NewAppliedM2(f, m, g box.Box, mod *Modifier2) *Function {
	if mod.Kind == Modifier2Concrete {
		return &Function{Kind: FunctionAppliedConcM2, AppliedF: f, AppliedG: g, ConcM2: mod.Concrete}
	}
	return &Function{Kind: FunctionAppliedM2, AppliedF: f, AppliedM: m, AppliedG: g}
}
