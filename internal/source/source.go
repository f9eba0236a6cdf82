// Package source reads raw hardware and OS counters.
//
// Every reader is a plain synchronous call that either returns a value or an
// error wrapping ErrUnavailable. Nothing here keeps state between calls.
package source

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable reports that a reader could not produce a value: the file is
// missing, the device is absent or the contents did not parse.
var ErrUnavailable = errors.New("source unavailable")

// unavailable wraps err so callers can test for ErrUnavailable.
func unavailable(what string, err error) error {
	return fmt.Errorf("%s: %w: %w", what, ErrUnavailable, err)
}

// LoadAvg holds system load averages.
type LoadAvg struct {
	One  float64
	Five float64
}

// CPUTimes holds monotonic time counters of one core, in centiseconds.
type CPUTimes struct {
	CPU   int
	Total uint64
	Idle  uint64
}

// Freq holds a core's scaling limits and current clock, in kHz.
type Freq struct {
	Min uint64
	Max uint64
	Cur uint64
}

// Usage holds capacity figures in bytes.
type Usage struct {
	Used  uint64
	Free  uint64
	Total uint64
}

// Counters holds a pair of monotonic byte counters: received/sent for
// interfaces, read/written for block devices.
type Counters struct {
	In  uint64
	Out uint64
}

// Battery holds charge level and charger state.
type Battery struct {
	Capacity float64
	Status   string
}

// Charging reports whether the battery is being charged.
func (b Battery) Charging() bool {
	return b.Status == "Charging"
}

// Reader is the set of raw readers metrics are computed from.
type Reader interface {
	LoadAvg(ctx context.Context) (LoadAvg, error)
	CPUTimes(ctx context.Context) ([]CPUTimes, error)
	CPUFreq(ctx context.Context, cpu int) (Freq, error)
	Memory(ctx context.Context) (Usage, error)
	Swap(ctx context.Context) (Usage, error)
	// Zram reports compressed memory use as Used and the uncompressed size
	// of the stored data as Total.
	Zram(ctx context.Context, device string) (Usage, error)
	VRAM(ctx context.Context, card string) (Usage, error)
	Traffic(ctx context.Context, iface string) (Counters, error)
	DiskIO(ctx context.Context, device string) (Counters, error)
	Filesystem(ctx context.Context, mount string) (Usage, error)
	// Temperature returns degrees Celsius of the first sensor whose key
	// starts with one of chips.
	Temperature(ctx context.Context, chips ...string) (float64, error)
	DriveTemperature(ctx context.Context, device string) (float64, error)
	Battery(ctx context.Context, name string) (Battery, error)
	// WirelessLevel returns the signal level of iface in dBm.
	WirelessLevel(ctx context.Context, iface string) (float64, error)
}
