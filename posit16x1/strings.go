package posit16x1

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// narLiteral is the textual form NaR renders as and parses from,
// regardless of IOFormat.
const narLiteral = "nar"

// String implements fmt.Stringer using the basic (decimal) Config.
func (p Posit16x1) String() string {
	return p.Format(BasicConfig())
}

// Format renders p according to cfg.IOFormat: FormatHex produces the
// canonical "16.1xHHHHp" payload form (nbits.es x hex-payload p), and
// FormatDecimal produces ordinary decimal notation.
func (p Posit16x1) Format(cfg Config) string {
	if p.IsNaR() {
		return narLiteral
	}

	if cfg.IOFormat == FormatHex {
		return fmt.Sprintf("%d.%dx%04Xp", nbits, es, uint16(p))
	}

	if p.IsZero() {
		return "0"
	}
	return strconv.FormatFloat(p.ToFloat64(), 'g', -1, 64)
}

// FormatLocale renders p as decimal text under the given BCP-47 locale
// tag, using the same locale-aware number formatting as the currency
// package's amount formatter.
func (p Posit16x1) FormatLocale(cfg Config, tag language.Tag) string {
	if p.IsNaR() {
		return narLiteral
	}

	printer := message.NewPrinter(tag)
	return printer.Sprintf("%v", number.Decimal(p.ToFloat64()))
}

// Parse converts text into a Posit16x1. It accepts the NaR literal
// ("nar", case-insensitive), the canonical hex payload form, and plain
// decimal notation. On failure it returns a ParseError and leaves no
// partial state behind.
func Parse(s string) (Posit16x1, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, narLiteral) {
		return Nar, nil
	}
	if strings.Contains(trimmed, "x") {
		return ParseHex(trimmed)
	}
	switch strings.ToLower(trimmed) {
	case "+inf", "inf", "infinity", "+infinity":
		return MaxPos, nil
	case "-inf", "-infinity":
		return MaxPos.TwosComplement(), nil
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, ParseError{Input: s, Inner: err}
	}
	return FromFloat64(f), nil
}

// ParseHex parses the canonical "16.1xHHHHp" hex payload form, and the
// NaR literal that Format produces for NaR under FormatHex.
func ParseHex(s string) (Posit16x1, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, narLiteral) {
		return Nar, nil
	}
	xIdx := strings.IndexByte(trimmed, 'x')
	if xIdx < 0 || !strings.HasSuffix(trimmed, "p") {
		return 0, ParseError{Input: s, Inner: fmt.Errorf("missing x...p hex payload delimiters")}
	}

	header := trimmed[:xIdx]
	payload := trimmed[xIdx+1 : len(trimmed)-1]

	parts := strings.SplitN(header, ".", 2)
	if len(parts) != 2 {
		return 0, ParseError{Input: s, Inner: fmt.Errorf("missing nbits.es header")}
	}
	gotBits, err := strconv.Atoi(parts[0])
	if err != nil || gotBits != nbits {
		return 0, ParseError{Input: s, Inner: fmt.Errorf("unsupported nbits %q", parts[0])}
	}
	gotEs, err := strconv.Atoi(parts[1])
	if err != nil || gotEs != es {
		return 0, ParseError{Input: s, Inner: fmt.Errorf("unsupported es %q", parts[1])}
	}

	bits, err := strconv.ParseUint(payload, 16, 16)
	if err != nil {
		return 0, ParseError{Input: s, Inner: err}
	}
	return Posit16x1(bits), nil
}
