package values

import "github.com/MysticalUnicat/fern/internal/box"

// Modifier1Kind tags a one-argument modifier variant.
type Modifier1Kind uint8

const (
	Modifier1Concrete Modifier1Kind = iota
	Modifier1Block
	Modifier1Partial // M2 + G, partially applied down to an M1 (e.g. valences' first arg)
)

// ConcreteModifier1Fn is a builtin modifier-1 entry point: called with
// (kind, F, x, w), per evoke's "applied m1 (concrete)" row.
type ConcreteModifier1Fn func(kind Evokation, f, x, w box.Box) box.Box

// Modifier1 is the tagged union for one-argument modifiers.
type Modifier1 struct {
	Kind Modifier1Kind

	Concrete ConcreteModifier1Fn // Modifier1Concrete

	BodyIndex uint32   // Modifier1Block
	Env       BlockEnv // Modifier1Block

	PartialM box.Box // Modifier1Partial: the source Modifier2 box
	PartialG box.Box // Modifier1Partial: the bound second operand
}

// NewConcreteModifier1 wraps a builtin modifier-1 entry point.
func NewConcreteModifier1(fn ConcreteModifier1Fn) *Modifier1 {
	return &Modifier1{Kind: Modifier1Concrete, Concrete: fn}
}

// NewBlockModifier1 wraps a compiled modifier-1 body.
func NewBlockModifier1(bodyIndex uint32, env BlockEnv) *Modifier1 {
	return &Modifier1{Kind: Modifier1Block, BodyIndex: bodyIndex, Env: env}
}

// NewPartialModifier1 curries a two-argument modifier down to one by
// binding its second operand, producing an M1 a later APPLY_M1 can
// still apply to a function.
func NewPartialModifier1(m, g box.Box) *Modifier1 {
	return &Modifier1{Kind: Modifier1Partial, PartialM: m, PartialG: g}
}

// Modifier2Kind tags a two-argument modifier variant.
type Modifier2Kind uint8

const (
	Modifier2Concrete Modifier2Kind = iota
	Modifier2Block
)

// ConcreteModifier2Fn is a builtin modifier-2 entry point: called with
// (kind, F, G, x, w), per evoke's "applied m2 (concrete)" row.
type ConcreteModifier2Fn func(kind Evokation, f, g, x, w box.Box) box.Box

// Modifier2 is the tagged union for two-argument modifiers.
type Modifier2 struct {
	Kind Modifier2Kind

	Concrete ConcreteModifier2Fn // Modifier2Concrete

	BodyIndex uint32   // Modifier2Block
	Env       BlockEnv // Modifier2Block
}

// NewConcreteModifier2 wraps a builtin modifier-2 entry point.
func NewConcreteModifier2(fn ConcreteModifier2Fn) *Modifier2 {
	return &Modifier2{Kind: Modifier2Concrete, Concrete: fn}
}

// NewBlockModifier2 wraps a compiled modifier-2 body.
func NewBlockModifier2(bodyIndex uint32, env BlockEnv) *Modifier2 {
	return &Modifier2{Kind: Modifier2Block, BodyIndex: bodyIndex, Env: env}
}
