package format

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"whole", 42, "42"},
		{"whole large", 12345, "12345"},
		{"below one", 0.5, "0.50"},
		{"below one small", 0.0731, "0.07"},
		{"rounds to whole at millesimal", 2.0004, "2"},
		{"rounds up to whole", 0.9996, "1"},
		{"one decimal", 12.34, "12.3"},
		{"one decimal cut not rounded", 22.7928, "22.7"},
		{"just below hundred", 99.96, "99.9"},
		{"hundred and above", 100.525, "100"},
		{"negative whole", -3, "-3"},
		{"negative fraction", -0.25, "-0.25"},
		{"negative takes below-one branch", -12.5, "-12.50"},
		{"negative zero", -0.0001, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Amount(tt.in); got != tt.want {
				t.Errorf("Amount(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAmountWholeHasNoDecimals(t *testing.T) {
	for _, x := range []float64{0, 1, 7, 99, 100, 1023, 1.0001, 49.9999, -8, -1.0002} {
		got := Amount(x)
		if strings.Contains(got, ".") {
			t.Errorf("Amount(%v) = %q, want no decimal digits", x, got)
		}
	}
}

func TestAmountReformatIsStable(t *testing.T) {
	for _, x := range []float64{0.123, 0.5, 1.17578, 22.7928, 99.5, 100.525, 1234.9, 3} {
		first := Amount(x)
		parsed, err := strconv.ParseFloat(first, 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q): %v", first, err)
		}
		if second := Amount(parsed); second != first {
			t.Errorf("Amount(Amount(%v)) = %q, want %q", x, second, first)
		}
	}
}

func TestAmountNonFinite(t *testing.T) {
	if got := Amount(math.Inf(1)); got != "+Inf" {
		t.Errorf("Amount(+Inf) = %q, want %q", got, "+Inf")
	}
}

func TestTwoAmounts(t *testing.T) {
	tests := []struct {
		name   string
		a1, a2 uint64
		sep    string
		want   string
	}{
		{"bytes", 3, 687, "/", "3/687"},
		{"kilo", 0, 102938, "'", "0'100K"},
		{"mega asymmetric precision", 1232899, 23899999, "⁚", "1.1⁚22.7M"},
		{"giga first argument larger", 23899999999, 123289, "lol", "22.2lol0G"},
		{"just below kilo threshold", 10239, 1, "/", "10239/1"},
		{"exactly kilo threshold", 10240, 0, "/", "10/0K"},
		{"both zero", 0, 0, ":", "0:0"},
		{"tera", 10 << 40, 5 << 40, "/", "10/5T"},
		{"peta", 20 << 50, 1 << 50, "/", "20/1P"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TwoAmounts(tt.a1, tt.a2, tt.sep); got != tt.want {
				t.Errorf("TwoAmounts(%d, %d, %q) = %q, want %q", tt.a1, tt.a2, tt.sep, got, tt.want)
			}
		})
	}
}

func TestTwoAmountsShape(t *testing.T) {
	values := []uint64{0, 1, 999, 10240, 123456, 9999999, 10 << 20, 1 << 33, 1 << 45, 1 << 55, math.MaxUint64}
	suffixes := []string{"P", "T", "G", "M", "K"}

	for _, a := range values {
		for _, b := range values {
			got := TwoAmounts(a, b, "|")
			if n := strings.Count(got, "|"); n != 1 {
				t.Fatalf("TwoAmounts(%d, %d) = %q, separator count %d", a, b, got, n)
			}
			tail := got[len(got)-1:]
			if _, err := strconv.Atoi(tail); err == nil {
				continue
			}
			found := false
			for _, s := range suffixes {
				if tail == s {
					found = true
				}
			}
			if !found {
				t.Errorf("TwoAmounts(%d, %d) = %q, unexpected suffix %q", a, b, got, tail)
			}
		}
	}
}

func TestScaleSymmetric(t *testing.T) {
	if TwoAmounts(1232899, 23899999, "/") != "1.1/22.7M" || TwoAmounts(23899999, 1232899, "/") != "22.7/1.1M" {
		t.Error("TwoAmounts scale depends on argument order")
	}
}
