package numfmt

import (
	"errors"
	"math"
	"testing"
)

func TestAppendPlain(t *testing.T) {
	tests := []struct {
		n    int32
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-42, "-42"},
		{12345, "12345"},
		{math.MaxInt32, "2147483647"},
		{math.MinInt32, "-2147483648"},
	}

	for _, tt := range tests {
		if got := string(AppendPlain(nil, tt.n)); got != tt.want {
			t.Errorf("AppendPlain(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestAppendEngUnsigned(t *testing.T) {
	tests := []struct {
		name string
		v    uint32
		exp  int
		want string
	}{
		{"zero", 0, 0, "0.000 "},
		{"zero ignores exponent", 0, 9, "0.000 "},
		{"one", 1, 0, "1.000 "},
		{"three digits", 999, 0, "999.0 "},
		{"kilo", 12345, 0, "12.35K"},
		{"round up carries", 99995, 0, "100.0K"},
		{"round down", 1234449, 0, "1.234M"},
		{"milli", 5, -3, "5.000m"},
		{"micro", 47, -6, "47.00u"},
		{"base exponent", 1500, -3, "1.500 "},
		{"largest prefix", 1, 24, "1.000Y"},
		{"smallest prefix", 1, -24, "1.000y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AppendEngUnsigned(nil, tt.v, tt.exp)
			if err != nil {
				t.Fatalf("AppendEngUnsigned(%d, %d) error = %v", tt.v, tt.exp, err)
			}
			if string(got) != tt.want {
				t.Errorf("AppendEngUnsigned(%d, %d) = %q, want %q", tt.v, tt.exp, got, tt.want)
			}
		})
	}
}

func TestAppendEng(t *testing.T) {
	tests := []struct {
		n    int32
		exp  int
		want string
	}{
		{0, 0, "+0.000 "},
		{12345, 0, "+12.35K"},
		{-5, -3, "-5.000m"},
		{math.MinInt32, 0, "-2.147G"},
		{math.MaxInt32, 0, "+2.147G"},
	}

	for _, tt := range tests {
		got, err := AppendEng(nil, tt.n, tt.exp)
		if err != nil {
			t.Fatalf("AppendEng(%d, %d) error = %v", tt.n, tt.exp, err)
		}
		if string(got) != tt.want {
			t.Errorf("AppendEng(%d, %d) = %q, want %q", tt.n, tt.exp, got, tt.want)
		}
		if len(got) != EngWidth {
			t.Errorf("len(AppendEng(%d, %d)) = %d, want %d", tt.n, tt.exp, len(got), EngWidth)
		}
	}
}

func TestAppendEngRange(t *testing.T) {
	tests := []struct {
		n   int32
		exp int
	}{
		{1, 27},
		{1000, 24},
		{1, -25},
	}

	for _, tt := range tests {
		dst := []byte("x")
		got, err := AppendEng(dst, tt.n, tt.exp)
		if !errors.Is(err, ErrRange) {
			t.Errorf("AppendEng(%d, %d) error = %v, want ErrRange", tt.n, tt.exp, err)
		}
		if string(got) != "x" {
			t.Errorf("AppendEng(%d, %d) modified dst to %q on error", tt.n, tt.exp, got)
		}
	}
}

func TestAppendEngKeepsPrefix(t *testing.T) {
	got, err := AppendEng([]byte("V="), 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "V=+1.000 " {
		t.Errorf("AppendEng() = %q, want %q", got, "V=+1.000 ")
	}
}
