package metric

import (
	"context"
	"fmt"

	"github.com/rashpile/limon/internal/format"
	"github.com/rashpile/limon/internal/source"
)

// LoadAvg shows the 1 and 5 minute load averages.
func LoadAvg() Static {
	return Static{
		Icon: IconLoad,
		Call: func(ctx context.Context, p *Pass, _ []string) (string, error) {
			la, err := p.Reader.LoadAvg(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%.2f %.2f", la.One, la.Five), nil
		},
	}
}

// usage renders used/total of a capacity reading.
func usage(read func(ctx context.Context, p *Pass, args []string) (source.Usage, error)) func(context.Context, *Pass, []string) (string, error) {
	return func(ctx context.Context, p *Pass, args []string) (string, error) {
		u, err := read(ctx, p, args)
		if err != nil {
			return "", err
		}
		return format.TwoAmounts(u.Used, u.Total, "/"), nil
	}
}

// Memory shows used/total RAM.
func Memory() Static {
	return Static{
		Icon: IconMemory,
		Call: usage(func(ctx context.Context, p *Pass, _ []string) (source.Usage, error) {
			return p.Reader.Memory(ctx)
		}),
	}
}

// Swap shows used/total swap.
func Swap() Static {
	return Static{
		Icon: IconSwap,
		Call: usage(func(ctx context.Context, p *Pass, _ []string) (source.Usage, error) {
			return p.Reader.Swap(ctx)
		}),
	}
}

// Zram shows compressed/original size of a zram device. Args: [device].
func Zram() Static {
	return Static{
		Icon: IconZram,
		Call: usage(func(ctx context.Context, p *Pass, args []string) (source.Usage, error) {
			dev, err := arg(args, 0, "zram0")
			if err != nil {
				return source.Usage{}, err
			}
			return p.Reader.Zram(ctx, dev)
		}),
	}
}

// VRAM shows used/total video memory of a DRM card. Args: [card].
func VRAM() Static {
	return Static{
		Icon: IconVRAM,
		Call: usage(func(ctx context.Context, p *Pass, args []string) (source.Usage, error) {
			card, err := arg(args, 0, "card0")
			if err != nil {
				return source.Usage{}, err
			}
			return p.Reader.VRAM(ctx, card)
		}),
	}
}

// Filesystem shows free/total space of a mount point. Args: [mount].
func Filesystem() Static {
	return Static{
		Icon: IconFilesystem,
		Call: func(ctx context.Context, p *Pass, args []string) (string, error) {
			mount, err := arg(args, 0, "/")
			if err != nil {
				return "", err
			}
			u, err := p.Reader.Filesystem(ctx, mount)
			if err != nil {
				return "", err
			}
			return format.TwoAmounts(u.Free, u.Total, "/"), nil
		},
	}
}

// Traffic shows received:sent byte totals of an interface. Args: iface.
func Traffic() Static {
	return Static{
		Icon: IconTraffic,
		Call: func(ctx context.Context, p *Pass, args []string) (string, error) {
			iface, err := arg(args, 0, "")
			if err != nil {
				return "", err
			}
			c, err := p.Traffic(ctx, iface)
			if err != nil {
				return "", err
			}
			return format.TwoAmounts(c.In, c.Out, ":"), nil
		},
	}
}

// temperature renders degrees Celsius.
func temperature(celsius float64) string {
	return format.Amount(celsius) + "°"
}

// Temperature shows the first hwmon sensor whose key starts with one of the
// given chip names. Args: chip...
func Temperature(chips ...string) Static {
	return Static{
		Icon: IconTemperature,
		Call: func(ctx context.Context, p *Pass, args []string) (string, error) {
			want := chips
			if len(args) > 0 {
				want = args
			}
			if len(want) == 0 || want[0] == "" {
				return "", fmt.Errorf("%w: sensor chip is required", ErrBadArgs)
			}
			t, err := p.Reader.Temperature(ctx, want...)
			if err != nil {
				return "", err
			}
			return temperature(t), nil
		},
	}
}

// DriveTemperature shows a disk's drivetemp sensor. Args: [device].
func DriveTemperature() Static {
	return Static{
		Icon: IconDriveTemp,
		Call: func(ctx context.Context, p *Pass, args []string) (string, error) {
			dev, err := arg(args, 0, "/dev/sda")
			if err != nil {
				return "", err
			}
			t, err := p.Reader.DriveTemperature(ctx, dev)
			if err != nil {
				return "", err
			}
			return temperature(t), nil
		},
	}
}
