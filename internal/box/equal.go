package box

// BitEqual reports whether two Boxes represent equal primitive values:
// numbers compare by IEEE equality with ±0 identified and NaN never
// equal to anything (including itself); all other kinds compare by raw
// bit pattern, which is sufficient for symbols and characters (index /
// codepoint identity) and for heap-kind Boxes pointing at the exact
// same object. Structural equality across distinct array/function/etc.
// instances is Deep-match, implemented in internal/values.
func BitEqual(a, b Box) bool {
	if IsNumber(a) || IsNumber(b) {
		if !IsNumber(a) || !IsNumber(b) {
			return false
		}
		af, bf := UnpackNumber(a), UnpackNumber(b)
		if af != af || bf != bf { // either is NaN
			return false
		}
		return af == bf
	}
	return a == b
}
