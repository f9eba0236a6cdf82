package metric

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rashpile/limon/internal/bucket"
	"github.com/rashpile/limon/internal/format"
	"github.com/rashpile/limon/internal/source"
)

// CPU shows per-core usage since the previous invocation, each prefixed with
// a glyph for the core's clock within its scaling range. The bar carries the
// mean usage of the cores that had a previous sample.
func CPU() Dynamic {
	return Dynamic{
		Call: func(ctx context.Context, p *Pass, _ []string) (Result, error) {
			cores, err := p.Reader.CPUTimes(ctx)
			if err != nil {
				return Result{}, err
			}

			parts := make([]string, 0, len(cores))
			var total float64
			var known int
			for _, core := range cores {
				pct, ok, err := p.coreUsage(ctx, core)
				if err != nil {
					return Result{}, err
				}

				text := Unknown
				if ok {
					text = fmt.Sprintf("%.0f%%", pct)
					total += pct
					known++
				}
				parts = append(parts, p.freqGlyph(ctx, core.CPU)+text)
			}

			r := Result{Icon: IconCPU, Text: strings.Join(parts, " ")}
			if known > 0 {
				r = r.WithBar(total / float64(known))
			}
			return r, nil
		},
	}
}

// coreUsage returns the busy percentage of core since its stored sample.
// ok is false when there is no stored sample or the total did not grow.
func (p *Pass) coreUsage(ctx context.Context, core source.CPUTimes) (float64, bool, error) {
	prev, err := p.swapCounters(ctx, fmt.Sprintf("cpu%d", core.CPU), core.Total, core.Idle)
	if err != nil {
		return 0, false, err
	}
	if prev == nil || core.Total <= prev[0] || core.Idle < prev[1] {
		return 0, false, nil
	}

	dTotal := core.Total - prev[0]
	dIdle := min(core.Idle-prev[1], dTotal)
	return float64(dTotal-dIdle) / float64(dTotal) * 100, true, nil
}

// freqGlyph picks the low, mid or high glyph from the core's current clock.
// Cores without cpufreq get no glyph.
func (p *Pass) freqGlyph(ctx context.Context, cpu int) string {
	f, err := p.Reader.CPUFreq(ctx, cpu)
	if err != nil {
		return ""
	}
	if f.Max <= f.Min {
		return p.Tables.Freq[len(p.Tables.Freq)-1]
	}

	bands, err := bucket.Bands(float64(f.Min), float64(f.Max), p.Tables.Freq[:]...)
	if err != nil {
		return ""
	}
	return bands.Highest(float64(f.Cur), p.Tables.Freq[0])
}

// NetworkSpeed shows bytes received:sent since the previous invocation.
// Args: iface.
//
// Without a previous sample, or after the counters went backwards, the text
// is Unknown.
func NetworkSpeed() Static {
	return Static{
		Icon: IconSpeed,
		Call: func(ctx context.Context, p *Pass, args []string) (string, error) {
			iface, err := arg(args, 0, "")
			if err != nil {
				return "", err
			}
			c, err := p.Traffic(ctx, iface)
			if err != nil {
				return "", err
			}

			prev, err := p.swapCounters(ctx, "network-speed-"+iface, c.In, c.Out)
			if err != nil {
				return "", err
			}
			if prev == nil || c.In < prev[0] || c.Out < prev[1] {
				return Unknown, nil
			}
			return format.TwoAmounts(c.In-prev[0], c.Out-prev[1], ":"), nil
		},
	}
}

// DiskIO shows bytes read:written since the previous invocation.
// Args: device.
//
// A first sample shows as zero; counters that went backwards show Unknown.
func DiskIO() Static {
	return Static{
		Icon: IconDiskIO,
		Call: func(ctx context.Context, p *Pass, args []string) (string, error) {
			dev, err := arg(args, 0, "")
			if err != nil {
				return "", err
			}
			c, err := p.Reader.DiskIO(ctx, dev)
			if err != nil {
				return "", err
			}

			prev, err := p.swapCounters(ctx, "disk-"+filepath.Base(dev), c.In, c.Out)
			if err != nil {
				return "", err
			}
			if prev == nil {
				prev = []uint64{c.In, c.Out}
			}
			if c.In < prev[0] || c.Out < prev[1] {
				return Unknown, nil
			}
			return format.TwoAmounts(c.In-prev[0], c.Out-prev[1], ":"), nil
		},
	}
}
