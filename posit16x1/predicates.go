package posit16x1

// IsNaR reports whether p is the Not-a-Real sentinel.
func (p Posit16x1) IsNaR() bool { return p == Nar }

// IsZero reports whether p is the unique zero encoding.
func (p Posit16x1) IsZero() bool { return p == Zero }

// IsOne reports whether p encodes the real value 1.
func (p Posit16x1) IsOne() bool { return p == One }

// IsMinusOne reports whether p encodes the real value -1.
func (p Posit16x1) IsMinusOne() bool { return p == MinusOne }

// IsNegative reports whether p's sign bit is set. NaR is considered
// negative by this test since its sign bit is 1; callers checking sign
// for real values should guard with IsNaR first.
func (p Posit16x1) IsNegative() bool { return p&SignMask != 0 }

// IsPositive is the negation of IsNegative.
func (p Posit16x1) IsPositive() bool { return !p.IsNegative() }

// IsPowerOfTwo reports whether the low payload bit of p is clear. It is
// a raw-bit test only: the other fraction bits are not inspected, so some
// values that are not powers of two (for example 3, payload 0x5800) also
// report true.
func (p Posit16x1) IsPowerOfTwo() bool { return p&1 == 0 }

// SignValue returns -1 for negative values and +1 otherwise (including
// zero and NaR). It reads the sign bit (0x8000), not bit 0x8 — the
// latter is a defect in the reference source this type is modeled on
// (see the original posit<16,1> sign_value, which tests the wrong bit).
func (p Posit16x1) SignValue() int {
	if p.IsNegative() {
		return -1
	}
	return 1
}
