package posit16x1

import "fmt"

// NotARealError is returned by the narrowing-to-integer conversions when
// the source is NaR and the active Config is CastThrow. Under
// CastPropagate (the default) no error is returned and NaR degrades to
// the conventional "infinity cast" result instead.
type NotARealError struct {
	// Op names the conversion that encountered NaR, e.g. "ToInt64".
	Op string
}

func (e NotARealError) Error() string {
	return fmt.Sprintf("posit16x1: %s: value is NaR", e.Op)
}

// ParseError reports a failure to parse a textual posit literal. Input is
// the original text; Inner, when non-nil, is the underlying cause (for
// example a strconv error from the hex or decimal path). A ParseError
// leaves the caller's destination variable unmodified.
type ParseError struct {
	Input string
	Inner error
}

func (e ParseError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("posit16x1: parse %q: %v", e.Input, e.Inner)
	}
	return fmt.Sprintf("posit16x1: parse %q: invalid posit literal", e.Input)
}

func (e ParseError) Unwrap() error {
	return e.Inner
}
