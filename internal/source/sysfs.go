package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CPUFreq reads the scaling limits and current clock of one core from
// {sysPath}/devices/system/cpu/cpuN/cpufreq.
func (s *System) CPUFreq(_ context.Context, cpu int) (Freq, error) {
	dir := filepath.Join(s.sysPath, "devices", "system", "cpu", fmt.Sprintf("cpu%d", cpu), "cpufreq")

	var f Freq
	for _, field := range []struct {
		name string
		dst  *uint64
	}{
		{"scaling_min_freq", &f.Min},
		{"scaling_max_freq", &f.Max},
		{"scaling_cur_freq", &f.Cur},
	} {
		v, err := readUint(filepath.Join(dir, field.name))
		if err != nil {
			return Freq{}, unavailable("read cpu frequency", err)
		}
		*field.dst = v
	}
	return f, nil
}

// Zram reads {sysPath}/block/<device>/mm_stat.
//
// Format:  orig_data_size compr_data_size mem_used_total mem_limit ...
func (s *System) Zram(_ context.Context, device string) (Usage, error) {
	path := filepath.Join(s.sysPath, "block", filepath.Base(device), "mm_stat")
	fields, err := readFields(path)
	if err != nil {
		return Usage{}, unavailable("read zram", err)
	}
	if len(fields) < 3 {
		return Usage{}, unavailable("read zram", fmt.Errorf("unexpected mm_stat format: %q", fields))
	}

	orig, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Usage{}, unavailable("parse zram orig_data_size", err)
	}
	used, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return Usage{}, unavailable("parse zram mem_used_total", err)
	}

	free := uint64(0)
	if orig > used {
		free = orig - used
	}
	return Usage{Used: used, Free: free, Total: orig}, nil
}

// VRAM reads amdgpu's mem_info_vram_{used,total} of a DRM card.
func (s *System) VRAM(_ context.Context, card string) (Usage, error) {
	dir := filepath.Join(s.sysPath, "class", "drm", card, "device")

	used, err := readUint(filepath.Join(dir, "mem_info_vram_used"))
	if err != nil {
		return Usage{}, unavailable("read vram", err)
	}
	total, err := readUint(filepath.Join(dir, "mem_info_vram_total"))
	if err != nil {
		return Usage{}, unavailable("read vram", err)
	}
	if used > total {
		return Usage{}, unavailable("read vram", fmt.Errorf("used %d exceeds total %d", used, total))
	}
	return Usage{Used: used, Free: total - used, Total: total}, nil
}

// DriveTemperature reads the drivetemp hwmon sensor of a disk, given as
// "/dev/sda" or "sda".
func (s *System) DriveTemperature(_ context.Context, device string) (float64, error) {
	pattern := filepath.Join(s.sysPath, "block", filepath.Base(device), "device", "hwmon", "hwmon*", "temp1_input")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return 0, unavailable("glob drive sensor", err)
	}
	if len(matches) == 0 {
		return 0, unavailable("read drive temperature", fmt.Errorf("no sensor for %s", device))
	}

	millideg, err := readUint(matches[0])
	if err != nil {
		return 0, unavailable("read drive temperature", err)
	}
	return float64(millideg) / 1000.0, nil
}

// Battery reads {sysPath}/class/power_supply/<name>/{capacity,status}.
func (s *System) Battery(_ context.Context, name string) (Battery, error) {
	dir := filepath.Join(s.sysPath, "class", "power_supply", name)

	capacity, err := readUint(filepath.Join(dir, "capacity"))
	if err != nil {
		return Battery{}, unavailable("read battery", err)
	}

	// Status is informational; a missing file just means unknown.
	status, _ := readString(filepath.Join(dir, "status"))

	return Battery{Capacity: float64(capacity), Status: status}, nil
}

// WirelessLevel reads the signal level of iface from {procPath}/net/wireless.
//
// Format (after two header lines):
//
//	wlan0: 0000   54.  -56.  -256        0      0      0      0      0        0
func (s *System) WirelessLevel(_ context.Context, iface string) (float64, error) {
	path := filepath.Join(s.procPath, "net", "wireless")
	f, err := os.Open(path)
	if err != nil {
		return 0, unavailable("open wireless", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || strings.TrimSuffix(fields[0], ":") != iface {
			continue
		}
		level, err := strconv.ParseFloat(strings.TrimSuffix(fields[3], "."), 64)
		if err != nil {
			return 0, unavailable("parse wireless level", err)
		}
		return level, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, unavailable("scan wireless", err)
	}
	return 0, unavailable("read wireless", fmt.Errorf("no interface %q in %s", iface, path))
}

// readString returns the trimmed contents of a single-value file.
func readString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// readUint parses a single-value file as an unsigned integer.
func readUint(path string) (uint64, error) {
	s, err := readString(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}

// readFields splits a single-line file on whitespace.
func readFields(path string) ([]string, error) {
	s, err := readString(path)
	if err != nil {
		return nil, err
	}
	return strings.Fields(s), nil
}
