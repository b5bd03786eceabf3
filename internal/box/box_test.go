package box

import (
	"math"
	"testing"
)

func TestNumberRoundTrip(t *testing.T) {
	tests := []float64{0, math.Copysign(0, -1), 1, -1, 3.5, math.Inf(1), math.Inf(-1), math.MaxFloat64}
	for _, f := range tests {
		b := PackNumber(f)
		if !IsNumber(b) {
			t.Fatalf("PackNumber(%v): IsNumber = false", f)
		}
		if got := UnpackNumber(b); got != f {
			t.Fatalf("PackNumber(%v): round trip got %v", f, got)
		}
	}
}

func TestNaNIsNumber(t *testing.T) {
	b := PackNumber(math.NaN())
	if !IsNumber(b) {
		t.Fatalf("NaN should decode as a number")
	}
	if BitEqual(b, b) {
		t.Fatalf("NaN must never equal itself")
	}
}

func TestTaggedKinds(t *testing.T) {
	tests := []struct {
		name string
		b    Box
		kind Kind
	}{
		{"character", PackCharacter('A'), KindCharacter},
		{"symbol", PackSymbol(42), KindSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsNumber(tt.b) {
				t.Fatalf("%s: should not be a number", tt.name)
			}
			if got := Tag(tt.b); got != tt.kind {
				t.Fatalf("Tag = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestCharacterRoundTrip(t *testing.T) {
	b := PackCharacter('∑')
	if !IsCharacter(b) {
		t.Fatalf("expected character")
	}
	if got := UnpackCharacter(b); got != '∑' {
		t.Fatalf("UnpackCharacter = %q, want %q", got, '∑')
	}
}

func TestSymbolRoundTrip(t *testing.T) {
	b := PackSymbol(7)
	if !IsSymbol(b) {
		t.Fatalf("expected symbol")
	}
	if got := UnpackSymbol(b); got != 7 {
		t.Fatalf("UnpackSymbol = %d, want 7", got)
	}
}

func TestNilAndNothing(t *testing.T) {
	if UnpackSymbol(Nil()) != NilSymbol {
		t.Fatalf("Nil() should be symbol index 0")
	}
	if !IsNothing(Nothing()) {
		t.Fatalf("Nothing() should report IsNothing")
	}
	if IsNothing(Nil()) {
		t.Fatalf("Nil() must not be Nothing()")
	}
}

func TestUnpackWrongKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on wrong-kind unpack")
		}
	}()
	UnpackCharacter(PackSymbol(1))
}

func TestBitEqual(t *testing.T) {
	if !BitEqual(PackNumber(0), PackNumber(math.Copysign(0, -1))) {
		t.Fatalf("+0 and -0 must be bit-equal")
	}
	if !BitEqual(PackSymbol(3), PackSymbol(3)) {
		t.Fatalf("identical symbols must be bit-equal")
	}
	if BitEqual(PackSymbol(3), PackCharacter(3)) {
		t.Fatalf("symbol and character with same payload must not be equal")
	}
}
