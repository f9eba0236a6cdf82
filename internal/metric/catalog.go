package metric

// Builtin returns the catalog of every metric limon knows, by the name used
// in configuration and on the command line.
func Builtin() *Catalog {
	c := NewCatalog()
	c.Register("loadavg", LoadAvg())
	c.Register("cpu", CPU())
	c.Register("mem", Memory())
	c.Register("swap", Swap())
	c.Register("zram", Zram())
	c.Register("vram", VRAM())
	c.Register("radeon_vram", VRAM())
	c.Register("traffic", Traffic())
	c.Register("network_speed", NetworkSpeed())
	c.Register("disk_io", DiskIO())
	c.Register("filesystem", Filesystem())
	c.Register("temperature", Temperature())
	c.Register("radeon_temperature", Temperature("amdgpu", "radeon"))
	c.Register("amd_k10_temperature", Temperature("k10temp"))
	c.Register("ata_hddtemp", DriveTemperature())
	c.Register("battery", Battery())
	c.Register("wireless", Wireless())
	c.Register("command", ShellCommand())
	return c
}
