// Package bucket maps a continuous sample onto glyphs from a table of floors.
package bucket

import (
	"fmt"
	"sort"
	"strings"
)

// Step pairs a floor with the glyph shown once a value reaches it.
type Step struct {
	Floor float64
	Glyph string
}

// Table is a set of steps sorted ascending by floor.
type Table struct {
	steps []Step
}

// NewTable sorts steps by floor and rejects duplicate floors.
func NewTable(steps ...Step) (Table, error) {
	sorted := make([]Step, len(steps))
	copy(sorted, steps)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Floor < sorted[j].Floor
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Floor == sorted[i-1].Floor {
			return Table{}, fmt.Errorf("duplicate floor %v", sorted[i].Floor)
		}
	}

	return Table{steps: sorted}, nil
}

// MustTable is NewTable for tables fixed at compile time.
func MustTable(steps ...Step) Table {
	t, err := NewTable(steps...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of steps.
func (t Table) Len() int {
	return len(t.steps)
}

// Cumulative renders one glyph per floor that value reaches, in ascending
// order, with blank standing in for floors it does not reach. The result
// always has one position per step.
func (t Table) Cumulative(value float64, blank string) string {
	var b strings.Builder
	for _, s := range t.steps {
		if value >= s.Floor {
			b.WriteString(s.Glyph)
		} else {
			b.WriteString(blank)
		}
	}
	return b.String()
}

// Highest returns the glyph of the highest floor value reaches, or fallback
// when value is below every floor.
func (t Table) Highest(value float64, fallback string) string {
	for i := len(t.steps) - 1; i >= 0; i-- {
		if value >= t.steps[i].Floor {
			return t.steps[i].Glyph
		}
	}
	return fallback
}

// Bands builds a table splitting [low, high] into len(glyphs) equal bands.
// The first glyph's floor is low itself.
func Bands(low, high float64, glyphs ...string) (Table, error) {
	if len(glyphs) == 0 {
		return Table{}, fmt.Errorf("no glyphs")
	}
	if high <= low {
		return Table{}, fmt.Errorf("empty range [%v, %v]", low, high)
	}

	width := (high - low) / float64(len(glyphs))
	steps := make([]Step, len(glyphs))
	for i, g := range glyphs {
		steps[i] = Step{Floor: low + width*float64(i), Glyph: g}
	}
	return NewTable(steps...)
}
