package source

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/common"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/sensors"
)

// System reads counters from the local machine: gopsutil for what it covers,
// sysfs and procfs directly for the rest.
type System struct {
	procPath string
	sysPath  string
}

// NewSystem returns a System reading from the given proc and sys mounts
// (normally /proc and /sys).
func NewSystem(procPath, sysPath string) *System {
	return &System{
		procPath: procPath,
		sysPath:  sysPath,
	}
}

// withRoots points gopsutil at the configured proc and sys mounts.
func (s *System) withRoots(ctx context.Context) context.Context {
	return context.WithValue(ctx, common.EnvKey, common.EnvMap{
		common.HostProcEnvKey: s.procPath,
		common.HostSysEnvKey:  s.sysPath,
	})
}

// LoadAvg reads the 1, 5 and 15 minute load averages.
func (s *System) LoadAvg(ctx context.Context) (LoadAvg, error) {
	avg, err := load.AvgWithContext(s.withRoots(ctx))
	if err != nil {
		return LoadAvg{}, unavailable("get load average", err)
	}
	return LoadAvg{One: avg.Load1, Five: avg.Load5}, nil
}

// CPUTimes reads per-core time counters.
func (s *System) CPUTimes(ctx context.Context) ([]CPUTimes, error) {
	stats, err := cpu.TimesWithContext(s.withRoots(ctx), true)
	if err != nil {
		return nil, unavailable("get cpu times", err)
	}
	if len(stats) == 0 {
		return nil, unavailable("get cpu times", fmt.Errorf("no cores reported"))
	}

	times := make([]CPUTimes, 0, len(stats))
	for _, st := range stats {
		id, err := strconv.Atoi(strings.TrimPrefix(st.CPU, "cpu"))
		if err != nil {
			return nil, unavailable("parse cpu id", err)
		}

		// Guest time is already accounted in user time.
		idle := st.Idle + st.Iowait
		total := st.User + st.Nice + st.System + idle + st.Irq + st.Softirq + st.Steal
		times = append(times, CPUTimes{
			CPU:   id,
			Total: centiseconds(total),
			Idle:  centiseconds(idle),
		})
	}
	return times, nil
}

// centiseconds converts gopsutil's float seconds back to kernel ticks.
func centiseconds(seconds float64) uint64 {
	return uint64(math.Round(seconds * 100))
}

// Memory reads RAM usage.
func (s *System) Memory(ctx context.Context) (Usage, error) {
	vm, err := mem.VirtualMemoryWithContext(s.withRoots(ctx))
	if err != nil {
		return Usage{}, unavailable("get memory", err)
	}
	return Usage{Used: vm.Used, Free: vm.Available, Total: vm.Total}, nil
}

// Swap reads swap usage, zram-backed swap included.
func (s *System) Swap(ctx context.Context) (Usage, error) {
	sw, err := mem.SwapMemoryWithContext(s.withRoots(ctx))
	if err != nil {
		return Usage{}, unavailable("get swap", err)
	}
	return Usage{Used: sw.Used, Free: sw.Free, Total: sw.Total}, nil
}

// Traffic reads the byte counters of iface.
func (s *System) Traffic(ctx context.Context, iface string) (Counters, error) {
	stats, err := net.IOCountersWithContext(s.withRoots(ctx), true)
	if err != nil {
		return Counters{}, unavailable("get network counters", err)
	}
	for _, st := range stats {
		if st.Name == iface {
			return Counters{In: st.BytesRecv, Out: st.BytesSent}, nil
		}
	}
	return Counters{}, unavailable("get network counters", fmt.Errorf("no interface %q", iface))
}

// DiskIO reads the byte counters of a block device, given as "sda" or
// "/dev/sda".
func (s *System) DiskIO(ctx context.Context, device string) (Counters, error) {
	name := filepath.Base(device)
	stats, err := disk.IOCountersWithContext(s.withRoots(ctx), name)
	if err != nil {
		return Counters{}, unavailable("get disk counters", err)
	}
	st, ok := stats[name]
	if !ok {
		return Counters{}, unavailable("get disk counters", fmt.Errorf("no device %q", name))
	}
	return Counters{In: st.ReadBytes, Out: st.WriteBytes}, nil
}

// Filesystem reads space figures of the filesystem mounted at mount.
func (s *System) Filesystem(ctx context.Context, mount string) (Usage, error) {
	u, err := disk.UsageWithContext(s.withRoots(ctx), mount)
	if err != nil {
		return Usage{}, unavailable("get filesystem usage", err)
	}
	return Usage{Used: u.Used, Free: u.Free, Total: u.Total}, nil
}

// Temperature returns the reading of the first sensor matching chips.
func (s *System) Temperature(ctx context.Context, chips ...string) (float64, error) {
	temps, err := sensors.TemperaturesWithContext(s.withRoots(ctx))
	// Partial results come back with warnings for sensors that failed.
	if err != nil && len(temps) == 0 {
		return 0, unavailable("get temperatures", err)
	}

	for _, chip := range chips {
		for _, t := range temps {
			if strings.HasPrefix(t.SensorKey, chip) {
				return t.Temperature, nil
			}
		}
	}
	return 0, unavailable("get temperatures", fmt.Errorf("no sensor matching %v", chips))
}
