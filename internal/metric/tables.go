package metric

import "github.com/rashpile/limon/internal/bucket"

// Font Awesome 4 code points used as icons.
const (
	IconLoad        = "\uf0e4" // dashboard
	IconCPU         = "\uf2db" // microchip
	IconMemory      = "\uf1b2" // cube
	IconSwap        = "\uf0ec" // exchange
	IconZram        = "\uf1c6" // file-archive-o
	IconVRAM        = "\uf108" // desktop
	IconTraffic     = "\uf0e8" // sitemap
	IconSpeed       = "\uf0e7" // bolt
	IconDiskIO      = "\uf0a0" // hdd-o
	IconFilesystem  = "\uf07c" // folder-open
	IconTemperature = "\uf2c9" // thermometer-half
	IconDriveTemp   = "\uf2c7" // thermometer-full
	IconWireless    = "\uf1eb" // wifi
	IconCommand     = "\uf120" // terminal
	IconPlug        = "\uf1e6" // plug
	IconBattery0    = "\uf244" // battery-empty
	IconBattery1    = "\uf243" // battery-quarter
	IconBattery2    = "\uf242" // battery-half
	IconBattery3    = "\uf241" // battery-three-quarters
	IconBattery4    = "\uf240" // battery-full

	// IconNone replaces the icon of a Dynamic metric that failed.
	IconNone = " "
)

// Tables holds the threshold tables metrics pick glyphs from.
type Tables struct {
	// Battery maps charge percentage to a battery icon. Below the lowest
	// floor BatteryLow is used.
	Battery    bucket.Table
	BatteryLow string

	// Signal draws a wireless strength bar from a level in dBm, with
	// SignalBlank in the positions not reached.
	Signal      bucket.Table
	SignalBlank string

	// Freq holds the low, mid and high clock glyphs prepended to each core.
	Freq [3]string
}

// DefaultTables returns the tables used by the built-in catalog.
func DefaultTables() Tables {
	return Tables{
		Battery: bucket.MustTable(
			bucket.Step{Floor: 20, Glyph: IconBattery1},
			bucket.Step{Floor: 40, Glyph: IconBattery2},
			bucket.Step{Floor: 60, Glyph: IconBattery3},
			bucket.Step{Floor: 80, Glyph: IconBattery4},
		),
		BatteryLow: IconBattery0,
		Signal: bucket.MustTable(
			bucket.Step{Floor: -90, Glyph: "▁"},
			bucket.Step{Floor: -80, Glyph: "▂"},
			bucket.Step{Floor: -70, Glyph: "▄"},
			bucket.Step{Floor: -67, Glyph: "▆"},
			bucket.Step{Floor: -60, Glyph: "█"},
		),
		SignalBlank: " ",
		Freq:        [3]string{"▁", "▄", "█"},
	}
}
