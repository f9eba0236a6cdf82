package metric

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rashpile/limon/internal/executor"
	"github.com/rashpile/limon/internal/source"
	"github.com/rashpile/limon/internal/state"
)

var errFake = fmt.Errorf("fake: %w", source.ErrUnavailable)

// fakeReader serves canned readings. Missing map entries are unavailable.
type fakeReader struct {
	load     source.LoadAvg
	cores    []source.CPUTimes
	freqs    map[int]source.Freq
	memory   source.Usage
	swap     source.Usage
	usages   map[string]source.Usage
	traffic  map[string]source.Counters
	disks    map[string]source.Counters
	temps    map[string]float64
	batts    map[string]source.Battery
	wireless map[string]float64

	trafficReads int
	fail         bool
}

func (f *fakeReader) LoadAvg(context.Context) (source.LoadAvg, error) {
	if f.fail {
		return source.LoadAvg{}, errFake
	}
	return f.load, nil
}

func (f *fakeReader) CPUTimes(context.Context) ([]source.CPUTimes, error) {
	if f.fail || f.cores == nil {
		return nil, errFake
	}
	return f.cores, nil
}

func (f *fakeReader) CPUFreq(_ context.Context, cpu int) (source.Freq, error) {
	fr, ok := f.freqs[cpu]
	if !ok {
		return source.Freq{}, errFake
	}
	return fr, nil
}

func (f *fakeReader) Memory(context.Context) (source.Usage, error) {
	if f.fail {
		return source.Usage{}, errFake
	}
	return f.memory, nil
}

func (f *fakeReader) Swap(context.Context) (source.Usage, error) {
	if f.fail {
		return source.Usage{}, errFake
	}
	return f.swap, nil
}

func (f *fakeReader) usage(key string) (source.Usage, error) {
	u, ok := f.usages[key]
	if !ok {
		return source.Usage{}, errFake
	}
	return u, nil
}

func (f *fakeReader) Zram(_ context.Context, dev string) (source.Usage, error) {
	return f.usage("zram:" + dev)
}

func (f *fakeReader) VRAM(_ context.Context, card string) (source.Usage, error) {
	return f.usage("vram:" + card)
}

func (f *fakeReader) Filesystem(_ context.Context, mount string) (source.Usage, error) {
	return f.usage("fs:" + mount)
}

func (f *fakeReader) Traffic(_ context.Context, iface string) (source.Counters, error) {
	f.trafficReads++
	c, ok := f.traffic[iface]
	if !ok {
		return source.Counters{}, errFake
	}
	return c, nil
}

func (f *fakeReader) DiskIO(_ context.Context, dev string) (source.Counters, error) {
	c, ok := f.disks[dev]
	if !ok {
		return source.Counters{}, errFake
	}
	return c, nil
}

func (f *fakeReader) Temperature(_ context.Context, chips ...string) (float64, error) {
	for _, chip := range chips {
		if t, ok := f.temps[chip]; ok {
			return t, nil
		}
	}
	return 0, errFake
}

func (f *fakeReader) DriveTemperature(_ context.Context, dev string) (float64, error) {
	t, ok := f.temps[dev]
	if !ok {
		return 0, errFake
	}
	return t, nil
}

func (f *fakeReader) Battery(_ context.Context, name string) (source.Battery, error) {
	b, ok := f.batts[name]
	if !ok {
		return source.Battery{}, errFake
	}
	return b, nil
}

func (f *fakeReader) WirelessLevel(_ context.Context, iface string) (float64, error) {
	l, ok := f.wireless[iface]
	if !ok {
		return 0, errFake
	}
	return l, nil
}

// failingStore rejects every write.
type failingStore struct{}

func (failingStore) Persist(context.Context, string, string) (string, bool, error) {
	return "", false, errors.New("disk full")
}

func (failingStore) Close() error { return nil }

var _ state.Store = failingStore{}

// fakeExecutor writes a canned output.
type fakeExecutor struct {
	output string
	err    error
	got    executor.Config
}

func (e *fakeExecutor) Execute(_ context.Context, cfg executor.Config) error {
	e.got = cfg
	if e.err != nil {
		return e.err
	}
	_, err := io.WriteString(cfg.Output, e.output)
	return err
}

// newPass returns a pass over r with an in-memory store.
func newPass(r source.Reader) (*Pass, *state.MemStore) {
	store := state.NewMemStore()
	return &Pass{
		Reader: r,
		Store:  store,
		Tables: DefaultTables(),
	}, store
}
