package vm

import "fmt"

var opcodeNames = map[Opcode]string{
	OpPushConst:   "PUSH_CONST",
	OpDrop:        "DROP",
	OpRet:         "RET",
	OpRetNS:       "RET_NS",
	OpArr:         "ARR",
	OpTargArr:     "TARG_ARR",
	OpCall1:       "CALL1",
	OpCall2:       "CALL2",
	OpCall1Q:      "CALL1_?",
	OpCall2Q:      "CALL2_?",
	OpTrain2:      "TRAIN2",
	OpTrain3:      "TRAIN3",
	OpRequireLeft: "REQUIRE_LEFT",
	OpTrain3Q:     "TRAIN3_?",
	OpApplyM1:     "APPLY_M1",
	OpApplyM2:     "APPLY_M2",
	OpVarGet:      "VAR_GET",
	OpVarAddr:     "VAR_ADDR",
	OpVarGetClear: "VAR_GET_CLEAR",
	OpHdrTest:     "HDR_TEST",
	OpHdrMatcher:  "HDR_MATCHER",
	OpHdrHole:     "HDR_HOLE",
	OpSetMatch:    "SET_MATCH",
	OpSetDefine:   "SET_DEFINE",
	OpSetUpdate:   "SET_UPDATE",
	OpSetModDyad:  "SET_MOD_DYAD",
	OpSetModMonad: "SET_MOD_MONAD",
	OpNSField:     "NS_FIELD",
	OpNSAlias:     "NS_ALIAS",
}

// operandCount is how many LEB128 immediates follow each opcode (0 for
// opcodes with no immediate).
var operandCount = map[Opcode]int{
	OpPushConst:   1,
	OpArr:         1,
	OpTargArr:     1,
	OpVarGet:      2,
	OpVarAddr:     2,
	OpVarGetClear: 2,
	OpNSField:     1,
	OpNSAlias:     1,
}

// Disassemble renders every body in p as one opcode-per-line text
// block, for the "fern disasm" subcommand.
func (p *Program) Disassemble() []string {
	var lines []string
	for bi := range p.Bodies {
		body := &p.Bodies[bi]
		lines = append(lines, fmt.Sprintf("body %d: start=%d numVars=%d names=%v", bi, body.Start, body.NumVars, p.namedVars(body)))
		pc := body.Start
		for pc < uint32(len(p.Bytecode)) {
			start := pc
			op := Opcode(p.Bytecode[pc])
			pc++
			name, known := opcodeNames[op]
			if !known {
				name = fmt.Sprintf("UNKNOWN(%d)", op)
			}
			n := operandCount[op]
			args := make([]uint32, n)
			for i := 0; i < n; i++ {
				args[i] = readUint(p.Bytecode, &pc)
			}
			lines = append(lines, fmt.Sprintf("  %04d %-14s %v", start, name, args))
			if op == OpRet || op == OpRetNS {
				break
			}
		}
	}
	return lines
}
