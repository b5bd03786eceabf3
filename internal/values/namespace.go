package values

import "github.com/MysticalUnicat/fern/internal/box"

// Namespace is a mutable, ordered symbol->Box store with an optional
// parent link for lexical scope chaining.
//
// Field order is insertion order, not symbol order: enumeration needs
// to reflect the order fields were defined in. A small sorted index is
// kept alongside the insertion-ordered pairs, the same two-structure
// shape internal/symbol uses, so lookups stay O(log n) without
// disturbing enumeration order.
type Namespace struct {
	Parent *Namespace

	symbols []uint32
	values  []box.Box
	sorted  []int // indices into symbols/values, sorted by symbol
}

// NewNamespace creates an empty namespace with the given parent (nil
// for a root frame).
func NewNamespace(parent *Namespace) *Namespace {
	return &Namespace{Parent: parent}
}

func (ns *Namespace) find(symbol uint32) (int, bool) {
	lo, hi := 0, len(ns.sorted)
	for lo < hi {
		mid := (lo + hi) / 2
		if ns.symbols[ns.sorted[mid]] < symbol {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(ns.sorted) && ns.symbols[ns.sorted[lo]] == symbol {
		return ns.sorted[lo], true
	}
	return lo, false
}

// Get walks the parent chain looking up symbol, fatal if not found
// anywhere in the chain.
func (ns *Namespace) Get(symbol uint32) box.Box {
	for n := ns; n != nil; n = n.Parent {
		if i, ok := n.find(symbol); ok {
			return n.values[i]
		}
	}
	box.Fatal("namespace: symbol not set")
	panic("unreachable")
}

// Lookup is the non-fatal counterpart of Get, used by callers that
// need to distinguish "absent" from a value.
func (ns *Namespace) Lookup(symbol uint32) (box.Box, bool) {
	for n := ns; n != nil; n = n.Parent {
		if i, ok := n.find(symbol); ok {
			return n.values[i], true
		}
	}
	return box.Box(0), false
}

// Define inserts symbol with value in this frame only. Fatal if symbol
// is already present in this frame (shadowing a parent is fine; a
// flat double-define in the same frame is not).
func (ns *Namespace) Define(symbol uint32, value box.Box) {
	insertAt, found := ns.find(symbol)
	box.AssertFatal(!found, "namespace: cannot define already defined value")

	idx := len(ns.symbols)
	ns.symbols = append(ns.symbols, symbol)
	ns.values = append(ns.values, value)

	ns.sorted = append(ns.sorted, 0)
	copy(ns.sorted[insertAt+1:], ns.sorted[insertAt:])
	ns.sorted[insertAt] = idx
}

// Redefine overwrites an existing binding in this frame. Fatal if
// symbol is absent from this frame.
func (ns *Namespace) Redefine(symbol uint32, value box.Box) {
	i, found := ns.find(symbol)
	box.AssertFatal(found, "namespace: cannot redefine what does not exist")
	ns.values[i] = value
}

// Len reports how many bindings this frame (not counting parents)
// holds.
func (ns *Namespace) Len() int { return len(ns.symbols) }

// Each calls fn for every binding in this frame in insertion order.
func (ns *Namespace) Each(fn func(symbol uint32, value box.Box)) {
	for i, sym := range ns.symbols {
		fn(sym, ns.values[i])
	}
}
