package vmassemble

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/builtins"
	"github.com/MysticalUnicat/fern/internal/data"
	"github.com/MysticalUnicat/fern/internal/symbol"
	"github.com/MysticalUnicat/fern/internal/values"
	"github.com/MysticalUnicat/fern/internal/vm"
)

// valueFile is the wire shape of one constant: a thin JSON encoding of
// the bytecode/constants/blocks/bodies/names tables a Program holds.
// Primitive/modifier1/modifier2 constants are resolved against
// internal/builtins by name rather than encoded structurally, since a
// Function/Modifier Box has no data representation of its own to
// round-trip.
type valueFile struct {
	Kind      string      `json:"kind"`
	Number    float64     `json:"number,omitempty"`
	Character string      `json:"character,omitempty"`
	Symbol    string      `json:"symbol,omitempty"`
	Shape     []uint32    `json:"shape,omitempty"`
	Cells     []valueFile `json:"cells,omitempty"`
	Fill      *valueFile  `json:"fill,omitempty"`
}

type instrFile struct {
	Op   string   `json:"op"`
	Args []uint32 `json:"args,omitempty"`
	Name string   `json:"name,omitempty"` // used by NS_FIELD/NS_ALIAS instead of a raw Names-table index
}

type bodyFile struct {
	NumVars uint32      `json:"numVars"`
	Names   []string    `json:"names"` // this body's own named (tail) variable slots, in order
	Code    []instrFile `json:"code"`
}

type blockFile struct {
	Kind      string   `json:"kind"` // "function" | "modifier1" | "modifier2"
	Immediate bool     `json:"immediate"`
	Bodies    []uint32 `json:"bodies"`
}

type programFile struct {
	Constants []valueFile `json:"constants"`
	Bodies    []bodyFile  `json:"bodies"`
	Blocks    []blockFile `json:"blocks"`
}

// Decode reads a JSON-encoded Program.
func Decode(r io.Reader) (*vm.Program, error) {
	var pf programFile
	if err := json.NewDecoder(r).Decode(&pf); err != nil {
		return nil, fmt.Errorf("vmassemble: decode: %w", err)
	}

	b := NewBuilder()

	for _, c := range pf.Constants {
		v, err := decodeValue(c)
		if err != nil {
			return nil, err
		}
		b.Constant(v)
	}

	for _, bf := range pf.Bodies {
		names := make([]uint32, len(bf.Names))
		for i, n := range bf.Names {
			names[i] = symbol.Default.Intern(n)
		}
		bb := b.Body(bf.NumVars, names...)
		for _, instr := range bf.Code {
			if err := emitInstr(b, bb, instr); err != nil {
				return nil, err
			}
		}
		bb.Finish()
	}

	for _, bf := range pf.Blocks {
		kind, err := decodeBlockKind(bf.Kind)
		if err != nil {
			return nil, err
		}
		b.Block(kind, bf.Immediate, bf.Bodies...)
	}

	return b.Build(), nil
}

func decodeBlockKind(s string) (vm.BlockKind, error) {
	switch s {
	case "function":
		return vm.BlockFunction, nil
	case "modifier1":
		return vm.BlockModifier1, nil
	case "modifier2":
		return vm.BlockModifier2, nil
	default:
		return 0, fmt.Errorf("vmassemble: unknown block kind %q", s)
	}
}

func decodeValue(v valueFile) (box.Box, error) {
	switch v.Kind {
	case "number":
		return box.PackNumber(v.Number), nil
	case "character":
		r := []rune(v.Character)
		if len(r) != 1 {
			return box.Box(0), fmt.Errorf("vmassemble: character constant must be exactly one rune, got %q", v.Character)
		}
		return box.PackCharacter(r[0]), nil
	case "symbol":
		return box.PackSymbol(symbol.Default.Intern(v.Symbol)), nil
	case "nothing":
		return box.Nothing(), nil
	case "primitive":
		fv, ok := builtins.Functions[v.Symbol]
		if !ok {
			return box.Box(0), fmt.Errorf("vmassemble: unknown primitive function %q", v.Symbol)
		}
		return fv, nil
	case "modifier1":
		mv, ok := builtins.Modifier1s[v.Symbol]
		if !ok {
			return box.Box(0), fmt.Errorf("vmassemble: unknown primitive modifier1 %q", v.Symbol)
		}
		return mv, nil
	case "modifier2":
		mv, ok := builtins.Modifier2s[v.Symbol]
		if !ok {
			return box.Box(0), fmt.Errorf("vmassemble: unknown primitive modifier2 %q", v.Symbol)
		}
		return mv, nil
	case "array":
		cells, _ := data.Init(data.FormatBox, uint32(len(v.Cells)))
		for i, c := range v.Cells {
			cv, err := decodeValue(c)
			if err != nil {
				return box.Box(0), err
			}
			cells.SetCell(uint32(i), cv)
		}
		fill := box.PackNumber(0)
		if v.Fill != nil {
			fv, err := decodeValue(*v.Fill)
			if err != nil {
				return box.Box(0), err
			}
			fill = fv
		}
		if len(v.Shape) > 0 {
			return values.PackNewArray(values.MakeArrayShape(v.Shape, cells, fill)), nil
		}
		return values.PackNewArray(values.MakeArrayFromCells(cells, fill)), nil
	default:
		return box.Box(0), fmt.Errorf("vmassemble: unknown constant kind %q", v.Kind)
	}
}

func emitInstr(b *Builder, bb *BodyBuilder, instr instrFile) error {
	arg := func(i int) uint32 {
		if i < len(instr.Args) {
			return instr.Args[i]
		}
		return 0
	}
	switch instr.Op {
	case "PUSH_CONST":
		bb.PushConst(arg(0))
	case "DROP":
		bb.Drop()
	case "RET":
		bb.Ret()
	case "RET_NS":
		bb.RetNS()
	case "ARR":
		bb.Arr(arg(0))
	case "TARG_ARR":
		bb.TargArr(arg(0))
	case "CALL1":
		bb.Call1()
	case "CALL2":
		bb.Call2()
	case "CALL1_?":
		bb.Call1Q()
	case "CALL2_?":
		bb.Call2Q()
	case "TRAIN2":
		bb.Train2()
	case "TRAIN3":
		bb.Train3()
	case "REQUIRE_LEFT":
		bb.RequireLeft()
	case "TRAIN3_?":
		bb.Train3Q()
	case "APPLY_M1":
		bb.ApplyM1()
	case "APPLY_M2":
		bb.ApplyM2()
	case "VAR_GET":
		bb.VarGet(arg(0), arg(1))
	case "VAR_ADDR":
		bb.VarAddr(arg(0), arg(1))
	case "VAR_GET_CLEAR":
		bb.VarGetClear(arg(0), arg(1))
	case "HDR_TEST":
		bb.HdrTest()
	case "HDR_MATCHER":
		bb.HdrMatcher()
	case "HDR_HOLE":
		bb.HdrHole()
	case "SET_MATCH":
		bb.SetMatch()
	case "SET_DEFINE":
		bb.SetDefine()
	case "SET_UPDATE":
		bb.SetUpdate()
	case "SET_MOD_DYAD":
		bb.SetModDyad()
	case "SET_MOD_MONAD":
		bb.SetModMonad()
	case "NS_FIELD":
		bb.NSField(internName(b, instr.Name))
	case "NS_ALIAS":
		bb.NSAlias(internName(b, instr.Name))
	default:
		return fmt.Errorf("vmassemble: unknown opcode %q", instr.Op)
	}
	return nil
}

// internName appends name's symbol id as a fresh Names-table entry and
// returns its index, for NS_FIELD/NS_ALIAS's name-indexed immediate
// (distinct from a body's declared named variable slots).
func internName(b *Builder, name string) uint32 {
	start, _ := b.Names(symbol.Default.Intern(name))
	return start
}
