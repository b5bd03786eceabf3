// Package symbol implements the process-global, append-only symbol
// interner: symbol indices are stable for the process lifetime, lookup
// is a binary search over a sorted index vector, and insertion keeps
// that vector sorted.
package symbol

import "sort"

// Reserved indices, seeded before any user symbol is interned.
const (
	Nil     uint32 = 0
	Nothing uint32 = 1
)

// Interner is a process-global symbol table. The zero value is not
// usable; use Default or New.
type Interner struct {
	strings []string // index -> string, append-only
	sorted  []uint32 // indices into strings, kept sorted by string value
}

// New creates an Interner pre-seeded with the two reserved symbols.
func New() *Interner {
	in := &Interner{}
	in.mustAdd("nil")
	in.mustAdd("nothing")
	return in
}

func (in *Interner) mustAdd(s string) uint32 {
	idx := in.add(s)
	return idx
}

// Intern returns the stable index for s, interning it if this is the
// first occurrence. intern(s1) = intern(s2) iff s1 = s2 byte-for-byte
// (testable property 7).
func (in *Interner) Intern(s string) uint32 {
	if i, ok := in.find(s); ok {
		return i
	}
	return in.add(s)
}

// String returns the string a previously-interned index denotes. Fatal
// if idx was never interned by this Interner.
func (in *Interner) String(idx uint32) string {
	if int(idx) >= len(in.strings) {
		panic("symbol: index out of range")
	}
	return in.strings[idx]
}

// Len reports how many symbols have been interned so far.
func (in *Interner) Len() int { return len(in.strings) }

func (in *Interner) find(s string) (uint32, bool) {
	i := sort.Search(len(in.sorted), func(i int) bool {
		return in.strings[in.sorted[i]] >= s
	})
	if i < len(in.sorted) && in.strings[in.sorted[i]] == s {
		return in.sorted[i], true
	}
	return 0, false
}

func (in *Interner) add(s string) uint32 {
	idx := uint32(len(in.strings))
	in.strings = append(in.strings, s)

	pos := sort.Search(len(in.sorted), func(i int) bool {
		return in.strings[in.sorted[i]] >= s
	})
	in.sorted = append(in.sorted, 0)
	copy(in.sorted[pos+1:], in.sorted[pos:])
	in.sorted[pos] = idx
	return idx
}

// Default is the process-wide interner the runtime core uses unless a
// caller constructs its own (tests commonly want an isolated Interner
// instead, since interning is otherwise observably global).
var Default = New()
