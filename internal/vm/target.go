package vm

import (
	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/data"
	"github.com/MysticalUnicat/fern/internal/values"
)

// Target is the common contract every pattern-match/assignment target
// implements. *Var already satisfies it directly; the remaining
// variants (Hole, Matcher, Array-of-targets, Alias, Namespace-field)
// are below.
//
// The operand stack (see interp.go) is typed []interface{}, so a
// Target travels on it as itself rather than needing to be smuggled
// through a Box kind — see DESIGN.md.
type Target interface {
	Get() box.Box
	SetDefine(x box.Box) box.Box
	SetUpdate(x box.Box) box.Box
	SetMatch(x box.Box) bool
}

// named is implemented by targets that carry a symbol identity (Var,
// alias), used when an array-target is matched against a namespace
// value and fields must be resolved by name rather than position.
type named interface {
	Name() (uint32, bool)
}

// holeTarget is HDR_HOLE: discards whatever is assigned, matches
// anything.
type holeTarget struct{}

func (holeTarget) Get() box.Box          { box.Fatal("vm: hole target has no value"); panic("unreachable") }
func (holeTarget) SetDefine(x box.Box) box.Box { return x }
func (holeTarget) SetUpdate(x box.Box) box.Box { return x }
func (holeTarget) SetMatch(box.Box) bool       { return true }

// matcherTarget is HDR_MATCHER: a literal pattern value compared by
// deep equality; only SetMatch is meaningful.
type matcherTarget struct {
	value box.Box
}

func (m *matcherTarget) Get() box.Box { return m.value }
func (m *matcherTarget) SetDefine(x box.Box) box.Box {
	box.Fatal("vm: matcher target is not assignable")
	panic("unreachable")
}
func (m *matcherTarget) SetUpdate(x box.Box) box.Box { return m.SetDefine(x) }
func (m *matcherTarget) SetMatch(x box.Box) bool     { return values.DeepMatch(m.value, x) }

// arrayTarget is TARG_ARR: an ordered list of sub-targets matched
// element-wise against either a same-length array (positional) or a
// namespace whose named fields project onto the sub-targets' own
// names. SetDefine and SetUpdate share one recursive apply for both
// branches; SetMatch walks the same two branches itself, reporting a
// mismatch as false instead of throwing.
type arrayTarget []Target

func (a arrayTarget) Get() box.Box {
	cells, _ := data.Init(data.FormatBox, uint32(len(a)))
	for i, t := range a {
		cells.SetCell(uint32(i), t.Get())
	}
	return values.PackNewArray(values.MakeArrayFromCells(cells, box.PackNumber(0)))
}

// apply resolves x into per-element values (from an array's cells or
// a namespace's named fields) and threads each through set, returning
// an array of the per-element results.
func (a arrayTarget) apply(x box.Box, set func(Target, box.Box) box.Box) box.Box {
	cells, _ := data.Init(data.FormatBox, uint32(len(a)))
	switch {
	case box.IsArray(x):
		xa := values.AsArray(x)
		if values.Rank(xa) != 1 || values.AxisLength(xa, 0) != int64(len(a)) {
			throwMessage("←: Target and value shapes don't match")
		}
		for i, t := range a {
			cells.SetCell(uint32(i), set(t, values.GetCell(xa, int64(i))))
		}
	case box.IsNamespace(x):
		ns := values.AsNamespace(x)
		for i, t := range a {
			n, ok := t.(named)
			box.AssertFatal(ok, "←: cannot extract non-name from namespace")
			sym, hasName := n.Name()
			box.AssertFatal(hasName, "←: cannot extract non-name from namespace")
			cells.SetCell(uint32(i), set(t, ns.Get(sym)))
		}
	default:
		box.Fatal("←: multiple targets but atomic value")
	}
	return values.PackNewArray(values.MakeArrayFromCells(cells, box.PackNumber(0)))
}

func (a arrayTarget) SetDefine(x box.Box) box.Box {
	return a.apply(x, func(t Target, c box.Box) box.Box { return t.SetDefine(c) })
}

func (a arrayTarget) SetUpdate(x box.Box) box.Box {
	return a.apply(x, func(t Target, c box.Box) box.Box { return t.SetUpdate(c) })
}

func (a arrayTarget) SetMatch(x box.Box) bool {
	switch {
	case box.IsArray(x):
		xa := values.AsArray(x)
		if values.Rank(xa) != 1 || values.AxisLength(xa, 0) != int64(len(a)) {
			return false
		}
		for i, t := range a {
			if !t.SetMatch(values.GetCell(xa, int64(i))) {
				return false
			}
		}
		return true
	case box.IsNamespace(x):
		ns := values.AsNamespace(x)
		for i, t := range a {
			n, ok := t.(named)
			if !ok {
				return false
			}
			sym, hasName := n.Name()
			if !hasName {
				return false
			}
			v, ok := ns.Lookup(sym)
			if !ok || !t.SetMatch(v) {
				return false
			}
			_ = i
		}
		return true
	default:
		return false
	}
}

// namespaceFieldTarget adapts one named field of a real values.Namespace
// to the Target protocol, used by NS_ALIAS when its receiver is a
// genuine namespace value rather than a Var.
type namespaceFieldTarget struct {
	ns     *values.Namespace
	symbol uint32
}

func (t *namespaceFieldTarget) Name() (uint32, bool) { return t.symbol, true }
func (t *namespaceFieldTarget) Get() box.Box         { return t.ns.Get(t.symbol) }
func (t *namespaceFieldTarget) SetDefine(x box.Box) box.Box {
	t.ns.Define(t.symbol, x)
	return x
}
func (t *namespaceFieldTarget) SetUpdate(x box.Box) box.Box {
	t.ns.Redefine(t.symbol, x)
	return x
}
func (t *namespaceFieldTarget) SetMatch(x box.Box) bool {
	if _, ok := t.ns.Lookup(t.symbol); ok {
		t.ns.Redefine(t.symbol, x)
	} else {
		t.ns.Define(t.symbol, x)
	}
	return true
}

// aliasTarget is NS_ALIAS: wraps a delegate target for direct
// get/set, while separately remembering its own symbol identity so an
// outer array-target can later project a namespace field onto it by
// name — resolving by name against that outer namespace, not through
// the delegate.
type aliasTarget struct {
	delegate Target
	name     uint32
}

func (a *aliasTarget) Name() (uint32, bool)           { return a.name, true }
func (a *aliasTarget) Get() box.Box                   { return a.delegate.Get() }
func (a *aliasTarget) SetDefine(x box.Box) box.Box    { return a.delegate.SetDefine(x) }
func (a *aliasTarget) SetUpdate(x box.Box) box.Box    { return a.delegate.SetUpdate(x) }
func (a *aliasTarget) SetMatch(x box.Box) bool        { return a.delegate.SetMatch(x) }

// resolveAliasDelegate builds the Target an NS_ALIAS opcode delegates
// to. A receiver that is already a Target (typically a *Var from
// VAR_ADDR) delegates directly. A receiver that is a genuine namespace
// value instead delegates to the named field within it.
func resolveAliasDelegate(receiver interface{}, program *Program, nameIndex uint32) Target {
	symbol := program.Names[nameIndex]
	if t, ok := receiver.(Target); ok {
		return &aliasTarget{delegate: t, name: symbol}
	}
	b, ok := receiver.(box.Box)
	box.AssertFatal(ok && box.IsNamespace(b), "NS_ALIAS: receiver must be a target or a namespace")
	ns := values.AsNamespace(b)
	return &aliasTarget{delegate: &namespaceFieldTarget{ns: ns, symbol: symbol}, name: symbol}
}
