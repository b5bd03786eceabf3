// Package values implements the heap objects a Box's pointer payload
// can denote: Array, Function, Modifier1, Modifier2, Namespace, and
// the reserved Stream tag. It also implements structural (Deep-match)
// equality across these.
package values

// Evokation selects the calling convention evoke uses against a
// callee.
type Evokation int

const (
	Monad Evokation = iota
	Dyad
	Write
	Inverse
)
