package posit16x1

// Compare returns -1, 0, or +1 as a < b, a == b, or a > b, comparing the
// raw payloads as signed 16-bit integers. This matches the reference
// implementation's operator< family: because Nar's payload (0x8000) is
// the most negative int16, NaR sorts below every other value rather than
// being unordered. Prefer PartialCompare when that is undesirable.
func Compare(a, b Posit16x1) int {
	sa, sb := int16(a), int16(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

// Equals reports whether a and b hold the same payload.
func Equals(a, b Posit16x1) bool {
	return a == b
}

// PartialCompare is Compare's NaR-aware alternative: it returns ok=false
// whenever either operand is NaR, since NaR is the projective reals'
// single unordered value and should not silently sort as "very negative"
// the way Compare's signed-integer convention makes it.
func PartialCompare(a, b Posit16x1) (cmp int, ok bool) {
	if a.IsNaR() || b.IsNaR() {
		return 0, false
	}
	return Compare(a, b), true
}
