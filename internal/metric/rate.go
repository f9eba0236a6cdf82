package metric

import (
	"context"
	"strconv"
	"strings"
)

// swapCounters stores current under key as space-separated decimals and
// returns the counters stored by the previous invocation. previous is nil
// when nothing usable was stored: first run, or a value with a different
// number of fields.
func (p *Pass) swapCounters(ctx context.Context, key string, current ...uint64) ([]uint64, error) {
	fields := make([]string, len(current))
	for i, v := range current {
		fields[i] = strconv.FormatUint(v, 10)
	}

	raw, found, err := p.Store.Persist(ctx, key, strings.Join(fields, " "))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return parseCounters(raw, len(current)), nil
}

// parseCounters parses want space-separated decimals, or returns nil.
func parseCounters(raw string, want int) []uint64 {
	fields := strings.Fields(raw)
	if len(fields) != want {
		return nil
	}

	values := make([]uint64, want)
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil
		}
		values[i] = v
	}
	return values
}

