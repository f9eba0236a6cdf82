// Package format renders magnitudes for the status line.
//
// Two magnitudes shown together (used/total, rx/tx, read/write) always share one
// unit so the printed numbers stay directly comparable.
package format

import (
	"math"
	"strconv"
	"strings"
)

// unit is an inclusive lower bound at which a suffix takes over.
type unit struct {
	threshold uint64
	suffix    string
}

// units are sorted ascending. Each threshold is ten of its unit so a scaled
// value never drops below 10 before the next unit is chosen.
var units = []unit{
	{10 << 10, "K"},
	{10 << 20, "M"},
	{10 << 30, "G"},
	{10 << 40, "T"},
	{10 << 50, "P"},
}

// Amount formats x with precision that adapts to its magnitude:
// whole numbers (at millesimal resolution) get no decimals, values below 1 get
// two, below 100 one, anything larger none. Digits past the chosen precision
// are cut, not rounded. Negative values go through the same rules unchanged.
func Amount(x float64) string {
	s := strconv.FormatFloat(x, 'f', 3, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		// NaN and infinities
		return s
	}

	p := Precision(x)
	if p == 0 {
		s = s[:dot]
		if s == "-0" {
			return "0"
		}
		return s
	}
	return s[:dot+1+p]
}

// Precision returns the number of decimals Amount uses for x.
func Precision(x float64) int {
	rounded := math.Round(x*1000) / 1000
	switch {
	case rounded == math.Trunc(rounded):
		return 0
	case x < 1:
		return 2
	case x < 100:
		return 1
	default:
		return 0
	}
}

// TwoAmounts scales a1 and a2 by one divisor picked from the larger of the two
// and joins them with sep, appending the unit suffix once at the end.
// Below 10 KiB the values are printed as bytes with no suffix.
func TwoAmounts(a1, a2 uint64, sep string) string {
	divisor, suffix := Scale(max(a1, a2))
	return Amount(float64(a1)/divisor) + sep + Amount(float64(a2)/divisor) + suffix
}

// Scale returns the divisor and suffix TwoAmounts uses when bearer is the
// larger of the two magnitudes.
func Scale(bearer uint64) (float64, string) {
	divisor, suffix := 1.0, ""
	for _, u := range units {
		if bearer < u.threshold {
			break
		}
		divisor, suffix = float64(u.threshold/10), u.suffix
	}
	return divisor, suffix
}
