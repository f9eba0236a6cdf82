// limon prints one status line per system metric for a status bar.
//
// Each invocation is a single synchronous pass: metrics are sampled in the
// configured order, rate metrics compare against the counters the previous
// invocation left in the runtime directory, and the result is printed as
// plain text, Pango markup or coloured terminal text.
//
//	limon --format plain cpu mem traffic:wlan0 network_speed:wlan0
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/rashpile/limon/internal/config"
	"github.com/rashpile/limon/internal/executor"
	"github.com/rashpile/limon/internal/logging"
	"github.com/rashpile/limon/internal/metric"
	"github.com/rashpile/limon/internal/pipeline"
	"github.com/rashpile/limon/internal/render"
	"github.com/rashpile/limon/internal/source"
	"github.com/rashpile/limon/internal/state"
	"github.com/rashpile/limon/internal/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// options holds command-line flags.
type options struct {
	configPath   string
	format       string
	runtimeDir   string
	stateBackend string
	logLevel     string
	logJSON      bool
	list         bool
	showVersion  bool
	items        []string
}

func parseFlags(args []string, stdout io.Writer) (*options, error) {
	var opts options

	flagSet := pflag.NewFlagSet("limon", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.configPath, "config", "c", defaultConfigPath(), "path to configuration file (optional)")
	flagSet.StringVarP(&opts.format, "format", "f", "", "output format: plain, pango or term")
	flagSet.StringVar(&opts.runtimeDir, "runtime-dir", "", "directory for rate state (default: $XDG_RUNTIME_DIR or temp dir)")
	flagSet.StringVar(&opts.stateBackend, "state-backend", "", "rate state backend: file or sqlite")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flagSet.BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")
	flagSet.BoolVar(&opts.list, "list", false, "list available metrics and exit")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flagSet.SetOutput(stdout)
	flagSet.Usage = func() {
		fmt.Fprintf(stdout, "Usage: limon [flags] [metric[:arg,...]...]\n\nFlags:\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	opts.items = flagSet.Args()
	return &opts, nil
}

// defaultConfigPath returns $XDG_CONFIG_HOME/limon/config.yaml.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "limon.yaml"
	}
	return filepath.Join(dir, "limon", "config.yaml")
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, stdout)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.showVersion {
		version.Fprint(stdout, "limon")
		return nil
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logging.Init(level, opts.logJSON)

	catalog := metric.Builtin()
	if opts.list {
		for _, name := range catalog.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	slog.Debug("configuration loaded",
		"format", cfg.Format,
		"runtime_dir", cfg.RuntimeDir,
		"state_backend", cfg.State.Backend,
		"items", len(cfg.Items),
	)

	store, err := state.Open(cfg.State.Backend, cfg.RuntimeDir, cfg.StatePath())
	if err != nil {
		return err
	}
	defer store.Close()

	pass := &metric.Pass{
		Reader:    source.NewSystem(cfg.Paths.Proc, cfg.Paths.Sys),
		Store:     store,
		Tables:    metric.DefaultTables(),
		Executor:  executor.NewShellExecutor(),
		Timeout:   cfg.Defaults.Timeout,
		MaxOutput: cfg.Defaults.MaxOutput,
		Workdir:   cfg.Defaults.Workdir,
	}

	items := pipeline.Run(context.Background(), pass, catalog, cfg.Items)
	return render.Write(stdout, cfg.Format, items, render.OptionsFrom(cfg))
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.LoadOptional(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.format != "" {
		cfg.Format = opts.format
	}
	if opts.runtimeDir != "" {
		cfg.RuntimeDir = opts.runtimeDir
	}
	if opts.stateBackend != "" {
		cfg.State.Backend = state.Backend(opts.stateBackend)
	}

	if len(opts.items) > 0 {
		items := make([]config.ItemConfig, 0, len(opts.items))
		for _, s := range opts.items {
			item, err := config.ParseItem(s)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		cfg.Items = items
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
