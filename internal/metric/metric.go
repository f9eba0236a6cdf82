// Package metric turns raw readings into the icon and text of one status line.
//
// Every metric is one of two variants. A Static metric always shows the same
// icon and only computes its text. A Dynamic metric computes its icon too,
// and may attach a bar value for renderers that draw one.
package metric

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rashpile/limon/internal/executor"
	"github.com/rashpile/limon/internal/source"
	"github.com/rashpile/limon/internal/state"
)

// ErrBadArgs reports a missing or empty metric argument.
var ErrBadArgs = errors.New("bad metric arguments")

// Unknown is shown in place of a rate that cannot be computed: no previous
// sample exists or the counter went backwards.
const Unknown = "?"

// Ellipsis marks command output cut at the output limit.
const Ellipsis = "…"

// Result is the outcome of a Dynamic metric.
type Result struct {
	Icon   string
	Text   string
	Bar    int
	HasBar bool
}

// WithBar attaches a bar value clamped to 0..100.
func (r Result) WithBar(pct float64) Result {
	r.HasBar = true
	r.Bar = int(min(max(pct, 0), 100))
	return r
}

// Command is either a Static or a Dynamic metric.
type Command interface {
	variant()
}

// Static is a metric with a fixed icon.
type Static struct {
	Icon string
	Call func(ctx context.Context, p *Pass, args []string) (string, error)
}

// Dynamic is a metric whose icon depends on the reading.
type Dynamic struct {
	Call func(ctx context.Context, p *Pass, args []string) (Result, error)
}

func (Static) variant()  {}
func (Dynamic) variant() {}

// Executor runs shell commands. Injected to allow testing.
type Executor interface {
	Execute(ctx context.Context, cfg executor.Config) error
}

// Pass carries what metrics need during one sampling pass.
// A Pass is used by one goroutine and discarded when the pass ends.
type Pass struct {
	Reader    source.Reader
	Store     state.Store
	Tables    Tables
	Executor  Executor
	Timeout   time.Duration
	MaxOutput int
	Workdir   string

	traffic *trafficCache
}

// trafficCache holds the first interface counters read in a pass.
type trafficCache struct {
	iface    string
	counters source.Counters
}

// Traffic returns the counters of iface, reading them at most once per pass
// for the first interface asked for. Other interfaces are read every time
// and do not displace the cached one.
func (p *Pass) Traffic(ctx context.Context, iface string) (source.Counters, error) {
	if p.traffic != nil && p.traffic.iface == iface {
		return p.traffic.counters, nil
	}

	c, err := p.Reader.Traffic(ctx, iface)
	if err != nil {
		return source.Counters{}, err
	}

	if p.traffic == nil {
		p.traffic = &trafficCache{iface: iface, counters: c}
	}
	return c, nil
}

// Catalog maps metric names to commands.
type Catalog struct {
	commands map[string]Command
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		commands: make(map[string]Command),
	}
}

// Register adds a command. Overwrites if name exists.
func (c *Catalog) Register(name string, cmd Command) {
	c.commands[name] = cmd
}

// Get retrieves a command by name.
func (c *Catalog) Get(name string) (Command, bool) {
	cmd, ok := c.commands[name]
	return cmd, ok
}

// Names returns all registered names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// arg returns args[i], or def when it is absent or empty. An empty def makes
// the argument required.
func arg(args []string, i int, def string) (string, error) {
	if i < len(args) && args[i] != "" {
		return args[i], nil
	}
	if def == "" {
		return "", fmt.Errorf("%w: argument %d is required", ErrBadArgs, i+1)
	}
	return def, nil
}
