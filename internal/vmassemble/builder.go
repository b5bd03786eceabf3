// Package vmassemble builds internal/vm.Program values by hand. There
// is no fern source-language front end in this repository, so this is
// the seam tests and cmd/fern's "run" subcommand use to turn a JSON
// wire description of bytecode into the Program the VM actually
// executes.
package vmassemble

import (
	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/vm"
)

// Builder accumulates one Program's bytecode, constants, and side
// tables. Bytecode from every body is appended to a single flat
// buffer, matching Body.Start being an absolute offset into it.
type Builder struct {
	bytecode  []byte
	constants []box.Box
	blocks    []vm.Block
	bodies    []vm.Body
	names     []uint32
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Constant interns a constant value, returning its pool index for
// PushConst.
func (b *Builder) Constant(v box.Box) uint32 {
	b.constants = append(b.constants, v)
	return uint32(len(b.constants) - 1)
}

// Names appends a run of symbol ids to the program's Names table,
// returning where it starts (for Body.NamesStart).
func (b *Builder) Names(symbols ...uint32) (start, count uint32) {
	start = uint32(len(b.names))
	b.names = append(b.names, symbols...)
	return start, uint32(len(symbols))
}

// Block registers a function/modifier block with its candidate bodies
// (tried in order; see vm.VM.invoke), returning its index.
func (b *Builder) Block(kind vm.BlockKind, immediate bool, bodyIndices ...uint32) uint32 {
	b.blocks = append(b.blocks, vm.Block{Kind: kind, Immediate: immediate, BodyIndices: bodyIndices})
	return uint32(len(b.blocks) - 1)
}

// Body starts a new BodyBuilder. numVars is the frame's total slot
// count; namedSymbols labels its trailing numVars-len(namedSymbols)..
// numVars-1 slots (NamesStart/NamesCount are derived via Names).
func (b *Builder) Body(numVars uint32, namedSymbols ...uint32) *BodyBuilder {
	namesStart, namesCount := b.Names(namedSymbols...)
	return &BodyBuilder{
		parent:     b,
		numVars:    numVars,
		namesStart: namesStart,
		namesCount: namesCount,
		start:      uint32(len(b.bytecode)),
	}
}

// Build finalizes the Program.
func (b *Builder) Build() *vm.Program {
	return &vm.Program{
		Bytecode:  b.bytecode,
		Constants: b.constants,
		Blocks:    b.blocks,
		Bodies:    b.bodies,
		Names:     b.names,
	}
}

// BodyBuilder emits one body's bytecode. Finish registers it against
// the owning Builder and returns its Bodies[] index.
type BodyBuilder struct {
	parent     *Builder
	numVars    uint32
	namesStart uint32
	namesCount uint32
	start      uint32
}

func (bb *BodyBuilder) emit(op vm.Opcode, args ...uint32) *BodyBuilder {
	bb.parent.bytecode = append(bb.parent.bytecode, byte(op))
	for _, a := range args {
		bb.parent.bytecode = appendUint(bb.parent.bytecode, a)
	}
	return bb
}

func (bb *BodyBuilder) PushConst(idx uint32) *BodyBuilder      { return bb.emit(vm.OpPushConst, idx) }
func (bb *BodyBuilder) Drop() *BodyBuilder                     { return bb.emit(vm.OpDrop) }
func (bb *BodyBuilder) Ret() *BodyBuilder                      { return bb.emit(vm.OpRet) }
func (bb *BodyBuilder) RetNS() *BodyBuilder                    { return bb.emit(vm.OpRetNS) }
func (bb *BodyBuilder) Arr(n uint32) *BodyBuilder              { return bb.emit(vm.OpArr, n) }
func (bb *BodyBuilder) TargArr(n uint32) *BodyBuilder          { return bb.emit(vm.OpTargArr, n) }
func (bb *BodyBuilder) Call1() *BodyBuilder                    { return bb.emit(vm.OpCall1) }
func (bb *BodyBuilder) Call2() *BodyBuilder                    { return bb.emit(vm.OpCall2) }
func (bb *BodyBuilder) Call1Q() *BodyBuilder                   { return bb.emit(vm.OpCall1Q) }
func (bb *BodyBuilder) Call2Q() *BodyBuilder                   { return bb.emit(vm.OpCall2Q) }
func (bb *BodyBuilder) Train2() *BodyBuilder                   { return bb.emit(vm.OpTrain2) }
func (bb *BodyBuilder) Train3() *BodyBuilder                   { return bb.emit(vm.OpTrain3) }
func (bb *BodyBuilder) RequireLeft() *BodyBuilder              { return bb.emit(vm.OpRequireLeft) }
func (bb *BodyBuilder) Train3Q() *BodyBuilder                  { return bb.emit(vm.OpTrain3Q) }
func (bb *BodyBuilder) ApplyM1() *BodyBuilder                  { return bb.emit(vm.OpApplyM1) }
func (bb *BodyBuilder) ApplyM2() *BodyBuilder                  { return bb.emit(vm.OpApplyM2) }
func (bb *BodyBuilder) VarGet(depth, i uint32) *BodyBuilder    { return bb.emit(vm.OpVarGet, depth, i) }
func (bb *BodyBuilder) VarAddr(depth, i uint32) *BodyBuilder   { return bb.emit(vm.OpVarAddr, depth, i) }
func (bb *BodyBuilder) VarGetClear(depth, i uint32) *BodyBuilder {
	return bb.emit(vm.OpVarGetClear, depth, i)
}
func (bb *BodyBuilder) HdrTest() *BodyBuilder     { return bb.emit(vm.OpHdrTest) }
func (bb *BodyBuilder) HdrMatcher() *BodyBuilder  { return bb.emit(vm.OpHdrMatcher) }
func (bb *BodyBuilder) HdrHole() *BodyBuilder     { return bb.emit(vm.OpHdrHole) }
func (bb *BodyBuilder) SetMatch() *BodyBuilder    { return bb.emit(vm.OpSetMatch) }
func (bb *BodyBuilder) SetDefine() *BodyBuilder   { return bb.emit(vm.OpSetDefine) }
func (bb *BodyBuilder) SetUpdate() *BodyBuilder   { return bb.emit(vm.OpSetUpdate) }
func (bb *BodyBuilder) SetModDyad() *BodyBuilder  { return bb.emit(vm.OpSetModDyad) }
func (bb *BodyBuilder) SetModMonad() *BodyBuilder { return bb.emit(vm.OpSetModMonad) }
func (bb *BodyBuilder) NSField(nameIdx uint32) *BodyBuilder { return bb.emit(vm.OpNSField, nameIdx) }
func (bb *BodyBuilder) NSAlias(nameIdx uint32) *BodyBuilder { return bb.emit(vm.OpNSAlias, nameIdx) }

// Finish registers the body (whose bytecode is everything emitted
// since Body() was called) and returns its Bodies[] index.
func (bb *BodyBuilder) Finish() uint32 {
	bb.parent.bodies = append(bb.parent.bodies, vm.Body{
		Start:      bb.start,
		NumVars:    bb.numVars,
		NamesStart: bb.namesStart,
		NamesCount: bb.namesCount,
	})
	return uint32(len(bb.parent.bodies) - 1)
}

// appendUint encodes v as LEB128 (matching vm's readUint: base 128,
// continuation bit set on any byte >= 128).
func appendUint(buf []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			buf = append(buf, b|0x80)
		} else {
			buf = append(buf, b)
			return buf
		}
	}
}
