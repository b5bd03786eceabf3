package vm

import (
	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/data"
	"github.com/MysticalUnicat/fern/internal/eval"
	"github.com/MysticalUnicat/fern/internal/values"
)

// stack is the VM's operand stack. Elements are either box.Box (plain
// values) or a Target (see target.go) — see that file's doc comment
// for why this is []interface{} rather than a stream of box.Box the
// way the C source's single flat value stack is.
type stack []interface{}

func (s *stack) push(v interface{}) { *s = append(*s, v) }

func (s *stack) pop() interface{} {
	box.AssertFatal(len(*s) > 0, "vm: stack underflow")
	n := len(*s) - 1
	v := (*s)[n]
	*s = (*s)[:n]
	return v
}

// popN returns the last n items in push order (oldest first), like
// Stack_pop's returned sub-array.
func (s *stack) popN(n int) []interface{} {
	box.AssertFatal(len(*s) >= n, "vm: stack underflow")
	at := len(*s) - n
	items := append([]interface{}(nil), (*s)[at:]...)
	*s = (*s)[:at]
	return items
}

func (s *stack) peek() interface{} {
	box.AssertFatal(len(*s) > 0, "vm: stack underflow")
	return (*s)[len(*s)-1]
}

func asBox(v interface{}) box.Box {
	b, ok := v.(box.Box)
	box.AssertFatal(ok, "vm: expected a value, found a target")
	return b
}

func asTarget(v interface{}) Target {
	t, ok := v.(Target)
	box.AssertFatal(ok, "vm: expected a target, found a value")
	return t
}

// runBody executes one compiled body against env until it RETs (then
// matched=true) or a header/match opcode aborts it early (matched =
// false — used by multi-clause Block definitions to try their next
// candidate body).
func runBody(vmi *VM, program *Program, env *Environment, bodyIndex uint32) (box.Box, bool) {
	body := &program.Bodies[bodyIndex]
	bc := program.Bytecode
	pc := body.Start
	var s stack

	for {
		op := Opcode(bc[pc])
		pc++

		switch op {
		case OpPushConst:
			n := readUint(bc, &pc)
			s.push(program.Constants[n])

		case OpDrop:
			s.pop()

		case OpRet:
			return asBox(s.pop()), true

		case OpRetNS:
			return values.PackNewNamespace(buildNamespace(env)), true

		case OpArr:
			n := readUint(bc, &pc)
			items := s.popN(int(n))
			cells, _ := data.Init(data.FormatBox, n)
			for i, it := range items {
				cells.SetCell(uint32(i), asBox(it))
			}
			s.push(values.PackNewArray(values.MakeArrayFromCells(cells, box.PackNumber(0))))

		case OpTargArr:
			n := readUint(bc, &pc)
			items := s.popN(int(n))
			targets := make(arrayTarget, len(items))
			for i, it := range items {
				targets[i] = asTarget(it)
			}
			s.push(Target(targets))

		case OpCall1:
			fx := s.popN(2)
			s.push(eval.Evoke(vmi, asBox(fx[0]), values.Monad, asBox(fx[1]), box.Nothing()))

		case OpCall2:
			wfx := s.popN(3)
			s.push(eval.Evoke(vmi, asBox(wfx[1]), values.Dyad, asBox(wfx[2]), asBox(wfx[0])))

		case OpCall1Q:
			fx := s.popN(2)
			x := asBox(fx[1])
			if box.IsNothing(x) {
				s.push(x)
			} else {
				s.push(eval.Evoke(vmi, asBox(fx[0]), values.Monad, x, box.Nothing()))
			}

		case OpCall2Q:
			wfx := s.popN(3)
			w, f, x := asBox(wfx[0]), asBox(wfx[1]), asBox(wfx[2])
			switch {
			case box.IsNothing(x):
				s.push(x)
			case box.IsNothing(w):
				s.push(eval.Evoke(vmi, f, values.Monad, x, box.Nothing()))
			default:
				s.push(eval.Evoke(vmi, f, values.Dyad, x, w))
			}

		case OpTrain2:
			gh := s.popN(2)
			s.push(values.PackNewFunction(values.NewTrain2(asBox(gh[0]), asBox(gh[1]))))

		case OpTrain3:
			fgh := s.popN(3)
			s.push(values.PackNewFunction(values.NewTrain3(asBox(fgh[0]), asBox(fgh[1]), asBox(fgh[2]))))

		case OpRequireLeft:
			if box.IsNothing(asBox(s.peek())) {
				throwMessage("Left argument required")
			}

		case OpTrain3Q:
			fgh := s.popN(3)
			f, g, h := asBox(fgh[0]), asBox(fgh[1]), asBox(fgh[2])
			if box.IsNothing(f) {
				s.push(values.PackNewFunction(values.NewTrain2(g, h)))
			} else {
				s.push(values.PackNewFunction(values.NewTrain3(f, g, h)))
			}

		case OpApplyM1:
			fm := s.popN(2)
			f, m := asBox(fm[0]), asBox(fm[1])
			mod := values.AsModifier1(m)
			s.push(values.PackNewFunction(values.NewAppliedM1(f, m, mod)))

		case OpApplyM2:
			fmg := s.popN(3)
			f, m, g := asBox(fmg[0]), asBox(fmg[1]), asBox(fmg[2])
			mod := values.AsModifier2(m)
			s.push(values.PackNewFunction(values.NewAppliedM2(f, m, g, mod)))

		case OpVarGet:
			d, i := readUint(bc, &pc), readUint(bc, &pc)
			v := &env.walk(d).Vars[i]
			s.push(v.Get())

		case OpVarAddr:
			d, i := readUint(bc, &pc), readUint(bc, &pc)
			v := &env.walk(d).Vars[i]
			s.push(Target(v))

		case OpVarGetClear:
			d, i := readUint(bc, &pc), readUint(bc, &pc)
			v := &env.walk(d).Vars[i]
			s.push(v.GetClear())

		case OpHdrTest:
			predicate := asBox(s.pop())
			box.AssertFatal(box.IsNumber(predicate), "Predicate value must be 0 or 1")
			switch box.UnpackNumber(predicate) {
			case 0:
				return box.PackNumber(0), false
			case 1:
				// continue
			default:
				box.Fatal("Predicate value must be 0 or 1")
			}

		case OpHdrMatcher:
			v := asBox(s.pop())
			s.push(Target(&matcherTarget{value: v}))

		case OpHdrHole:
			s.push(Target(holeTarget{}))

		case OpSetMatch:
			tv := s.popN(2)
			t, v := asTarget(tv[0]), asBox(tv[1])
			if !t.SetMatch(v) {
				return box.PackNumber(0), false
			}

		case OpSetDefine:
			tv := s.popN(2)
			t, v := asTarget(tv[0]), asBox(tv[1])
			s.push(t.SetDefine(v))

		case OpSetUpdate:
			tv := s.popN(2)
			t, v := asTarget(tv[0]), asBox(tv[1])
			s.push(t.SetUpdate(v))

		case OpSetModDyad:
			rfw := s.popN(3)
			t, f, w := asTarget(rfw[0]), asBox(rfw[1]), asBox(rfw[2])
			result := eval.Evoke(vmi, f, values.Dyad, t.Get(), w)
			s.push(t.SetUpdate(result))

		case OpSetModMonad:
			rf := s.popN(2)
			t, f := asTarget(rf[0]), asBox(rf[1])
			result := eval.Evoke(vmi, f, values.Monad, t.Get(), box.Nothing())
			s.push(t.SetUpdate(result))

		case OpNSField:
			name := readUint(bc, &pc)
			ns := values.AsNamespace(asBox(s.pop()))
			symbol := program.Names[name]
			v, ok := ns.Lookup(symbol)
			if !ok {
				throwMessage("Runtime: Variable referenced before definition")
			}
			s.push(v)

		case OpNSAlias:
			name := readUint(bc, &pc)
			receiver := s.pop()
			s.push(Target(resolveAliasDelegate(receiver, program, name)))

		default:
			box.Fatal("vm: impossible opcode")
		}
	}
}

// buildNamespace snapshots env's named variable slots (those actually
// assigned) into a fresh values.Namespace, in declaration order, per
// RET_NS. Unlike the C source's lazy Env-wrapping NS, this reads
// current values eagerly — a deliberate simplification recorded in
// DESIGN.md: unset/cleared fields are simply omitted, so a later field
// read against them still fails exactly like an uninitialized
// variable read would.
func buildNamespace(env *Environment) *values.Namespace {
	ns := values.NewNamespace(nil)
	for i := env.FirstNamedVar; i < uint32(len(env.Vars)); i++ {
		v := &env.Vars[i]
		if v.state == varSet {
			ns.Define(v.name, v.value)
		}
	}
	return ns
}
