package posit16x1

// decodeRegime parses the run-length regime of a positive-magnitude,
// non-zero, non-NaR payload. It returns the regime value m (k-1 for a
// run of k ones, -k for a run of k zeros) and the remaining word, whose top bits (remaining>>14) hold the exponent and
// whose lower bits (once ORed with the hidden bit 0x4000) hold the
// fraction. This is the initial decode used for the left-hand operand
// of every arithmetic operation and every conversion-to-native path.
func decodeRegime(bits uint16) (m int8, remaining uint16) {
	remaining = bits << 2
	if bits&0x4000 != 0 { // positive regime: run of 1s
		for remaining>>15 != 0 {
			m++
			remaining <<= 1
		}
	} else { // negative regime: run of 0s
		m = -1
		for remaining>>15 == 0 {
			m--
			remaining <<= 1
		}
		remaining &= 0x7FFF
	}
	return m, remaining
}

// extractAddend decodes the right-hand operand of Add/Sub, folding its
// regime run-length into the accumulator m carried over from the
// left-hand decode. The sign convention is the mirror image of
// decodeRegime: see spec's regime-accumulator sign table.
func extractAddend(bits uint16, m int8) (int8, uint16) {
	remaining := bits << 2
	if bits&0x4000 != 0 {
		for remaining>>15 != 0 {
			m--
			remaining <<= 1
		}
	} else {
		m++
		for remaining>>15 == 0 {
			m++
			remaining <<= 1
		}
		remaining &= 0x7FFF
	}
	return m, remaining
}

// extractMultiplicand decodes the right-hand operand of Mul.
func extractMultiplicand(bits uint16, m int8) (int8, uint16) {
	remaining := bits << 2
	if bits&0x4000 != 0 {
		for remaining>>15 != 0 {
			m++
			remaining <<= 1
		}
	} else {
		m--
		for remaining>>15 == 0 {
			m--
			remaining <<= 1
		}
		remaining &= 0x7FFF
	}
	return m, remaining
}

// extractDividend decodes the right-hand operand (divisor) of Div.
func extractDividend(bits uint16, m int8) (int8, uint16) {
	remaining := bits << 2
	if bits&0x4000 != 0 {
		for remaining>>15 != 0 {
			m--
			remaining <<= 1
		}
	} else {
		m++
		for remaining>>15 == 0 {
			m++
			remaining <<= 1
		}
		remaining &= 0x7FFF
	}
	return m, remaining
}
