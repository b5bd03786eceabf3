package values

import (
	"unsafe"

	"github.com/MysticalUnicat/fern/internal/box"
	"github.com/MysticalUnicat/fern/internal/data"
)

// This file centralizes the unsafe.Pointer plumbing between box.Box's
// pointer-kind payloads and the concrete Go heap objects in this
// package, so every constructor above can work purely in terms of
// *Array / *Function / *Modifier1 / *Modifier2 / *Namespace / *Stream.

func newBoxData(n uint32) (data.Data, []byte) {
	return data.Init(data.FormatBox, n)
}

// PackNewArray boxes a freshly constructed Array.
func PackNewArray(a *Array) box.Box {
	return box.PackArray(unsafe.Pointer(a), a)
}

// PackNewFunction boxes a freshly constructed Function.
func PackNewFunction(f *Function) box.Box {
	return box.PackFunction(unsafe.Pointer(f), f)
}

// PackNewModifier1 boxes a freshly constructed Modifier1.
func PackNewModifier1(m *Modifier1) box.Box {
	return box.PackModifier1(unsafe.Pointer(m), m)
}

// PackNewModifier2 boxes a freshly constructed Modifier2.
func PackNewModifier2(m *Modifier2) box.Box {
	return box.PackModifier2(unsafe.Pointer(m), m)
}

// PackNewNamespace boxes a freshly constructed Namespace.
func PackNewNamespace(ns *Namespace) box.Box {
	return box.PackNamespace(unsafe.Pointer(ns), ns)
}

// PackNewStream boxes a freshly constructed Stream.
func PackNewStream(s *Stream) box.Box {
	return box.PackStream(unsafe.Pointer(s), s)
}

// AsFunction unpacks b's Function heap pointer. Fatal if b is not a function.
func AsFunction(b box.Box) *Function { return (*Function)(box.UnpackFunction(b)) }

// AsModifier1 unpacks b's Modifier1 heap pointer. Fatal if b is not a modifier-1.
func AsModifier1(b box.Box) *Modifier1 { return (*Modifier1)(box.UnpackModifier1(b)) }

// AsModifier2 unpacks b's Modifier2 heap pointer. Fatal if b is not a modifier-2.
func AsModifier2(b box.Box) *Modifier2 { return (*Modifier2)(box.UnpackModifier2(b)) }

// AsNamespace unpacks b's Namespace heap pointer. Fatal if b is not a namespace.
func AsNamespace(b box.Box) *Namespace { return (*Namespace)(box.UnpackNamespace(b)) }

// AsStream unpacks b's Stream heap pointer. Fatal if b is not a stream.
func AsStream(b box.Box) *Stream { return (*Stream)(box.UnpackStream(b)) }
