package imath

import "testing"

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 {
		t.Errorf("Abs(-5) = %d; want 5", Abs(-5))
	}
	if Abs(5) != 5 {
		t.Errorf("Abs(5) = %d; want 5", Abs(5))
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d; want 5", Clamp(5, 0, 10))
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %d; want 0", Clamp(-5, 0, 10))
	}
	if Clamp(50, 0, 10) != 10 {
		t.Errorf("Clamp(50, 0, 10) = %d; want 10", Clamp(50, 0, 10))
	}
}

func TestSign(t *testing.T) {
	if Sign(5) != 1 {
		t.Errorf("Sign(5) = %d; want 1", Sign(5))
	}
	if Sign(-5) != -1 {
		t.Errorf("Sign(-5) = %d; want -1", Sign(-5))
	}
	if Sign(0) != 0 {
		t.Errorf("Sign(0) = %d; want 0", Sign(0))
	}
}

func TestLeadingBit(t *testing.T) {
	tests := []struct {
		in   uint32
		want int
	}{
		{0, -1},
		{1, 0},
		{2, 1},
		{0x0200_0000, 25},
		{0xFFFF_FFFF, 31},
	}
	for _, tt := range tests {
		if got := LeadingBit(tt.in); got != tt.want {
			t.Errorf("LeadingBit(0x%X) = %d; want %d", tt.in, got, tt.want)
		}
	}
}
