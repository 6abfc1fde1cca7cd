package posit16x1

import (
	"math"

	"github.com/trippwill/go-posit16/imath"
)

// packMagnitude converts a nonnegative 32-bit magnitude into the 16-bit
// posit payload that represents it, rounding to nearest, ties to even.
// It does not apply a sign; callers negate the result afterward.
func packMagnitude(v uint32) uint16 {
	switch {
	case v == 0:
		return 0
	case v == 0x8000:
		// 0x8000 is the Nar payload. It is its own two's-complement
		// negation, so the sign step that follows (if any) leaves it
		// unchanged and a magnitude of 32768 converts to Nar.
		return 0x8000
	case v > 0x0800_0000: // v > 134_217_728
		return 0x7FFF
	case v > 0x02FF_FFFF: // 50_331_647 < v <= 134_217_728
		return 0x7FFE
	case v < 2:
		return uint16(v << 14)
	}

	mask := uint32(0x0200_0000)
	scale := int8(25)
	fractionBits := v
	for fractionBits&mask == 0 {
		scale--
		fractionBits <<= 1
	}
	k := scale >> 1
	exp := uint16(scale&0x01) << (12 - k)
	fractionBits ^= mask
	raw := uint16(0x7FFF^(0x3FFF>>uint(k))) | exp | uint16(fractionBits>>uint(k+13))

	npMask := uint32(0x1000) << uint(k) // bit N+1
	if npMask&fractionBits != 0 {
		if ((npMask-1)&fractionBits)|((npMask<<1)&fractionBits) != 0 {
			raw++
		}
	}
	return raw
}

// FromInt64 converts a signed 64-bit integer to the nearest Posit16x1,
// rounding to nearest, ties to even. Magnitudes above the 32-bit range
// saturate like any other magnitude above maxpos. The magnitude 32768
// is the exception: ±32768 converts to Nar (see packMagnitude).
func FromInt64(x int64) Posit16x1 {
	if x == 0 {
		return Zero
	}
	sign := x < 0
	v := uint32(min(uint64(imath.Abs(x)), 0xFFFF_FFFF))
	raw := packMagnitude(v)
	if sign {
		raw = -raw
	}
	return Posit16x1(raw)
}

// FromUint64 converts an unsigned 64-bit integer to the nearest
// Posit16x1, rounding to nearest, ties to even. As with FromInt64, 32768
// converts to Nar.
func FromUint64(x uint64) Posit16x1 {
	if x == 0 {
		return Zero
	}
	return Posit16x1(packMagnitude(uint32(min(x, 0xFFFF_FFFF))))
}

// FromInt32, FromInt16, and FromInt8 are narrow-width conveniences over FromInt64.
func FromInt32(x int32) Posit16x1 { return FromInt64(int64(x)) }
func FromInt16(x int16) Posit16x1 { return FromInt64(int64(x)) }
func FromInt8(x int8) Posit16x1   { return FromInt64(int64(x)) }

// FromUint32, FromUint16, and FromUint8 are narrow-width conveniences over FromUint64.
func FromUint32(x uint32) Posit16x1 { return FromUint64(uint64(x)) }
func FromUint16(x uint16) Posit16x1 { return FromUint64(uint64(x)) }
func FromUint8(x uint8) Posit16x1   { return FromUint64(uint64(x)) }

// ToInt64 converts p to the nearest signed 64-bit integer, truncating
// toward zero. If p is NaR, the result depends on cfg.CastMode: under
// CastThrow a NotARealError is returned; under CastPropagate (the
// default) math.MaxInt64, the saturated int64 cast of positive
// infinity, is returned, matching the reference implementation's
// "no-exception" mode.
func (p Posit16x1) ToInt64(cfg Config) (int64, error) {
	if p.IsZero() {
		return 0, nil
	}
	if p.IsNaR() {
		if cfg.CastMode == CastThrow {
			return 0, NotARealError{Op: "ToInt64"}
		}
		return math.MaxInt64, nil
	}
	return int64(p.ToFloat64()), nil
}

// ToUint64 converts p to the nearest unsigned 64-bit integer, truncating
// toward zero. See ToInt64 for NaR handling; under CastPropagate NaR
// converts to math.MaxUint64.
func (p Posit16x1) ToUint64(cfg Config) (uint64, error) {
	if p.IsZero() {
		return 0, nil
	}
	if p.IsNaR() {
		if cfg.CastMode == CastThrow {
			return 0, NotARealError{Op: "ToUint64"}
		}
		return math.MaxUint64, nil
	}
	f := p.ToFloat64()
	if f < 0 {
		f = -f
	}
	return uint64(f), nil
}

// ToInt32 converts p to the nearest signed 32-bit integer, saturating at
// the int32 bounds rather than wrapping when the magnitude overflows.
func (p Posit16x1) ToInt32(cfg Config) (int32, error) {
	v, err := p.ToInt64(cfg)
	if err != nil {
		return 0, err
	}
	return int32(imath.Clamp(v, math.MinInt32, math.MaxInt32)), nil
}

// ToInt16 converts p to the nearest signed 16-bit integer, saturating at
// the int16 bounds.
func (p Posit16x1) ToInt16(cfg Config) (int16, error) {
	v, err := p.ToInt64(cfg)
	if err != nil {
		return 0, err
	}
	return int16(imath.Clamp(v, math.MinInt16, math.MaxInt16)), nil
}

// ToInt8 converts p to the nearest signed 8-bit integer, saturating at
// the int8 bounds.
func (p Posit16x1) ToInt8(cfg Config) (int8, error) {
	v, err := p.ToInt64(cfg)
	if err != nil {
		return 0, err
	}
	return int8(imath.Clamp(v, math.MinInt8, math.MaxInt8)), nil
}

// ToUint32 converts p to the nearest unsigned 32-bit integer, saturating
// at math.MaxUint32.
func (p Posit16x1) ToUint32(cfg Config) (uint32, error) {
	v, err := p.ToUint64(cfg)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		v = math.MaxUint32
	}
	return uint32(v), nil
}

// ToUint16 converts p to the nearest unsigned 16-bit integer, saturating
// at math.MaxUint16.
func (p Posit16x1) ToUint16(cfg Config) (uint16, error) {
	v, err := p.ToUint64(cfg)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint16 {
		v = math.MaxUint16
	}
	return uint16(v), nil
}

// ToUint8 converts p to the nearest unsigned 8-bit integer, saturating at
// math.MaxUint8.
func (p Posit16x1) ToUint8(cfg Config) (uint8, error) {
	v, err := p.ToUint64(cfg)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint8 {
		v = math.MaxUint8
	}
	return uint8(v), nil
}
