package posit16x1

import "testing"

func BenchmarkAdd(b *testing.B) {
	x, y := FromInt64(17), FromInt64(-42)
	for b.Loop() {
		_ = Add(x, y)
	}
}

func BenchmarkMul(b *testing.B) {
	x, y := FromInt64(17), FromInt64(-42)
	for b.Loop() {
		_ = Mul(x, y)
	}
}

func BenchmarkDiv(b *testing.B) {
	x, y := FromInt64(17), FromInt64(42)
	for b.Loop() {
		_ = Div(x, y)
	}
}

func BenchmarkFromFloat64(b *testing.B) {
	for b.Loop() {
		_ = FromFloat64(3.14159)
	}
}

func BenchmarkToFloat64(b *testing.B) {
	p := FromFloat64(3.14159)
	for b.Loop() {
		_ = p.ToFloat64()
	}
}

func BenchmarkFormat(b *testing.B) {
	p := FromFloat64(3.14159)
	cfg := BasicConfig()
	for b.Loop() {
		_ = p.Format(cfg)
	}
}
