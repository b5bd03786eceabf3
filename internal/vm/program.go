// Package vm implements the bytecode virtual machine: the compiled
// Program representation, the Environment/Target machinery behind
// variable and pattern-match opcodes, and the straight-line
// interpreter loop itself.
package vm

import "github.com/MysticalUnicat/fern/internal/box"

// Opcode is one bytecode instruction tag (the compiler emits only
// these values; the numeric gaps between them are reserved).
type Opcode byte

const (
	OpPushConst   Opcode = 0
	OpDrop        Opcode = 6
	OpRet         Opcode = 7
	OpRetNS       Opcode = 8
	OpArr         Opcode = 11
	OpTargArr     Opcode = 12
	OpCall1       Opcode = 16
	OpCall2       Opcode = 17
	OpCall1Q      Opcode = 18
	OpCall2Q      Opcode = 19
	OpTrain2      Opcode = 20
	OpTrain3      Opcode = 21
	OpRequireLeft Opcode = 22
	OpTrain3Q     Opcode = 23
	OpApplyM1     Opcode = 26
	OpApplyM2     Opcode = 27
	OpVarGet      Opcode = 32
	OpVarAddr     Opcode = 33
	OpVarGetClear Opcode = 34
	OpHdrTest     Opcode = 42
	OpHdrMatcher  Opcode = 43
	OpHdrHole     Opcode = 44
	OpSetMatch    Opcode = 47
	OpSetDefine   Opcode = 48
	OpSetUpdate   Opcode = 49
	OpSetModDyad  Opcode = 50
	OpSetModMonad Opcode = 51
	OpNSField     Opcode = 64
	OpNSAlias     Opcode = 66
)

// BlockKind tags which calling convention a Block's body (or bodies)
// expects.
type BlockKind uint8

const (
	BlockFunction BlockKind = iota
	BlockModifier1
	BlockModifier2
)

// Block is one entry of the compiled program's blocks[] table: a
// function/modifier-1/modifier-2 whose body (or ordered list of
// candidate bodies, for multi-clause definitions tried in turn until
// one doesn't stop early via HDR_TEST/SET_MATCH) lives in Bodies.
//
// Immediate marks a block the compiler has already reduced to a
// compile-time value (per §6's "immediate-flag distinguishes
// 'compile-time value' from 'deferred block'"); this implementation
// does not special-case it further than keeping the flag for
// disassembly — both immediate and deferred blocks become Functions
// that close over the environment active when they are materialized,
// since the retrieved opcode map exposes no separate "make closure"
// instruction to observe the original compiler's own distinction.
type Block struct {
	Kind        BlockKind
	Immediate   bool
	BodyIndices []uint32
}

// Body is one entry of the compiled program's bodies[] table: where
// its bytecode starts, how many variable slots its Environment needs,
// and which of those slots (the tail) carry names.
type Body struct {
	Start      uint32
	NumVars    uint32
	NamesStart uint32
	NamesCount uint32
}

// Program is the compiled unit the VM executes: a flat bytecode
// stream, a constant pool, and the blocks/bodies/names side tables.
type Program struct {
	Bytecode  []byte
	Constants []box.Box
	Blocks    []Block
	Bodies    []Body
	Names     []uint32 // interned symbol ids, sliced per-body by Body.NamesStart/NamesCount
}

// namedVars returns the symbol ids for body b's named (tail) slots.
func (p *Program) namedVars(b *Body) []uint32 {
	return p.Names[b.NamesStart : b.NamesStart+b.NamesCount]
}

// readUint decodes one LEB128-style unsigned natural starting at
// bc[*pc], advancing *pc past it: base 128, continuation bit set
// whenever a byte's value is >= 128.
func readUint(bc []byte, pc *uint32) uint32 {
	var result uint32
	var shift uint
	for {
		box.AssertFatal(int(*pc) < len(bc), "vm: bytecode truncated mid-immediate")
		b := bc[*pc]
		*pc++
		result |= uint32(b&0x7f) << shift
		if b < 128 {
			return result
		}
		shift += 7
	}
}
