package vm

import (
	"fmt"

	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/eval"
	"github.com/MysticalUnicat/fern/internal/values"
)

// VM drives one Program. It implements eval.BlockInvoker so the L4
// primitive/modifier layer can call back into compiled blocks without
// importing this package.
//
// The "bodyIndex" eval.BlockInvoker's methods receive is interpreted
// here as a Blocks[] index, not a Bodies[] index directly: a block may
// list several candidate bodies (multi-clause definitions), tried in
// order until one doesn't abort early via HDR_TEST/SET_MATCH — see
// invoke. This is an intentional, documented reading of the opaque
// uint32 values.Function/Modifier1/Modifier2 carry (see DESIGN.md).
type VM struct {
	program *Program
}

// NewVM constructs a VM for program and installs it as the active
// interpreter (see internal/eval.SetVM) so concrete modifiers can
// evoke block operands.
func NewVM(program *Program) *VM {
	vmi := &VM{program: program}
	eval.SetVM(vmi)
	return vmi
}

func (vmi *VM) InvokeFunctionBlock(blockIndex uint32, env values.BlockEnv, x, w box.Box) box.Box {
	return vmi.invoke(blockIndex, env, x, w)
}

func (vmi *VM) InvokeModifier1Block(blockIndex uint32, env values.BlockEnv, f, x, w box.Box) box.Box {
	return vmi.invoke(blockIndex, env, f, x, w)
}

func (vmi *VM) InvokeModifier2Block(blockIndex uint32, env values.BlockEnv, f, g, x, w box.Box) box.Box {
	return vmi.invoke(blockIndex, env, f, g, x, w)
}

// invoke runs blockIndex's candidate bodies in turn (closing each over
// parentEnv, which is nil for a top-level program entry), binding
// binds into the leading positional slots of each fresh Environment.
// The first body that reaches RET/RET_NS without an early
// HDR_TEST/SET_MATCH abort wins.
func (vmi *VM) invoke(blockIndex uint32, blockEnv values.BlockEnv, binds ...box.Box) box.Box {
	parent, _ := blockEnv.(*Environment)
	block := &vmi.program.Blocks[blockIndex]
	for _, bodyIndex := range block.BodyIndices {
		body := &vmi.program.Bodies[bodyIndex]
		env := newEnvironment(parent, vmi.program, body)
		bindPositional(env, binds...)
		result, matched := runBody(vmi, vmi.program, env, bodyIndex)
		if matched {
			return result
		}
	}
	box.Fatal("vm: no clause matched its arguments")
	panic("unreachable")
}

// MakeBlockValue materializes blockIndex as a callable Box closing
// over env. No opcode pushes a compiled block as a value directly —
// every opcode either runs a body already in flight or builds a value
// from operands already on the stack — so this is the seam through
// which compiled closures can be placed into a Program's constant
// pool. Nothing in this repository calls it.
func (vmi *VM) MakeBlockValue(kind BlockKind, blockIndex uint32, env *Environment) box.Box {
	switch kind {
	case BlockFunction:
		return values.PackNewFunction(values.NewBlock(blockIndex, env))
	case BlockModifier1:
		return values.PackNewModifier1(values.NewBlockModifier1(blockIndex, env))
	case BlockModifier2:
		return values.PackNewModifier2(values.NewBlockModifier2(blockIndex, env))
	default:
		box.Fatal("vm: unknown block kind")
		panic("unreachable")
	}
}

// Run executes program from entryBlock as a monadic call with both
// operands absent (a program's top-level entry point), recovering any
// escaping fatal assertion or uncaught throw into an error rather than
// letting it reach the process boundary — cmd/fern decides from there
// whether to exit non-zero.
func Run(program *Program, entryBlock uint32) (result box.Box, err error) {
	vmi := NewVM(program)
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *eval.Thrown:
				err = fmt.Errorf("fern: uncaught throw: %s", describeThrown(e))
			case *box.FatalError:
				err = fmt.Errorf("fern: fatal: %s", e.Message)
			default:
				panic(r)
			}
		}
	}()
	result = vmi.invoke(entryBlock, nil, box.Nothing(), box.Nothing())
	return result, nil
}

func describeThrown(t *eval.Thrown) string {
	if box.IsArray(t.Value) {
		a := values.AsArray(t.Value)
		n := values.NumCells(a)
		runes := make([]rune, 0, n)
		allChars := true
		for i := int64(0); i < n; i++ {
			c := values.GetCell(a, i)
			if !box.IsCharacter(c) {
				allChars = false
				break
			}
			runes = append(runes, box.UnpackCharacter(c))
		}
		if allChars {
			return string(runes)
		}
	}
	return "non-textual value"
}
