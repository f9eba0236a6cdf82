package metric

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rashpile/limon/internal/executor"
	"github.com/rashpile/limon/internal/format"
)

// Battery shows the charge of a power supply with an icon for its level, or
// a plug while charging. Args: [name].
func Battery() Dynamic {
	return Dynamic{
		Call: func(ctx context.Context, p *Pass, args []string) (Result, error) {
			name, err := arg(args, 0, "BAT0")
			if err != nil {
				return Result{}, err
			}
			b, err := p.Reader.Battery(ctx, name)
			if err != nil {
				return Result{}, err
			}

			icon := p.Tables.Battery.Highest(b.Capacity, p.Tables.BatteryLow)
			if b.Charging() {
				icon = IconPlug
			}
			r := Result{Icon: icon, Text: format.Amount(b.Capacity) + "%"}
			return r.WithBar(b.Capacity), nil
		},
	}
}

// Wireless shows a signal strength bar and the level in dBm. Args: iface.
func Wireless() Static {
	return Static{
		Icon: IconWireless,
		Call: func(ctx context.Context, p *Pass, args []string) (string, error) {
			iface, err := arg(args, 0, "")
			if err != nil {
				return "", err
			}
			level, err := p.Reader.WirelessLevel(ctx, iface)
			if err != nil {
				return "", err
			}
			bar := p.Tables.Signal.Cumulative(level, p.Tables.SignalBlank)
			return fmt.Sprintf("%s %sdBm", bar, format.Amount(level)), nil
		},
	}
}

// ShellCommand shows the first non-empty line printed by a shell command.
// Args: command words, joined with spaces.
func ShellCommand() Static {
	return Static{
		Icon: IconCommand,
		Call: func(ctx context.Context, p *Pass, args []string) (string, error) {
			if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
				return "", fmt.Errorf("%w: command is required", ErrBadArgs)
			}
			if p.Executor == nil {
				return "", fmt.Errorf("no executor configured")
			}

			if p.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, p.Timeout)
				defer cancel()
			}

			var buf bytes.Buffer
			var out io.Writer = &buf
			var tw *executor.TruncatingWriter
			if p.MaxOutput > 0 {
				tw = executor.NewTruncatingWriter(&buf, p.MaxOutput)
				out = tw
			}
			if err := p.Executor.Execute(ctx, executor.Config{
				Command: args[0],
				Args:    args[1:],
				Output:  out,
				Workdir: p.Workdir,
			}); err != nil {
				return "", err
			}

			lines := strings.Split(buf.String(), "\n")
			for i, line := range lines {
				if line = strings.TrimSpace(line); line != "" {
					// the last captured line is the one the limit cut
					if tw != nil && tw.Truncated() && i == len(lines)-1 {
						line += Ellipsis
					}
					return line, nil
				}
			}
			return "", nil
		},
	}
}
