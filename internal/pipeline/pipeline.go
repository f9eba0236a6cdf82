// Package pipeline runs the configured metrics in order and collects one
// output item per metric.
package pipeline

import (
	"context"
	"fmt"

	"github.com/rashpile/limon/internal/config"
	"github.com/rashpile/limon/internal/logging"
	"github.com/rashpile/limon/internal/metric"
)

// Placeholder replaces the text of a metric that could not be computed.
const Placeholder = "#ERROR#"

// Item is one rendered line: icon, text and an optional bar value.
type Item struct {
	Icon      string
	Text      string
	Bar       int
	HasBar    bool
	PreSpaces int
}

// Exec runs one command. A failure never propagates: it becomes the
// placeholder text, with a blank icon for dynamic metrics.
func Exec(ctx context.Context, p *metric.Pass, cmd metric.Command, spec config.ItemConfig) Item {
	log := logging.Component("pipeline")

	switch c := cmd.(type) {
	case metric.Static:
		icon := c.Icon
		if spec.Icon != "" {
			icon = spec.Icon
		}
		item := Item{Icon: icon, PreSpaces: spec.PreSpaces}

		text, err := c.Call(ctx, p, spec.Args)
		if err != nil {
			log.Warn("metric unavailable", "metric", spec.Metric, "args", spec.Args, "error", err)
			item.Text = Placeholder
			return item
		}
		item.Text = text
		return item

	case metric.Dynamic:
		r, err := c.Call(ctx, p, spec.Args)
		if err != nil {
			log.Warn("metric unavailable", "metric", spec.Metric, "args", spec.Args, "error", err)
			return Item{Icon: metric.IconNone, Text: Placeholder, PreSpaces: spec.PreSpaces}
		}
		return Item{
			Icon:      r.Icon,
			Text:      r.Text,
			Bar:       r.Bar,
			HasBar:    r.HasBar,
			PreSpaces: spec.PreSpaces,
		}

	default:
		log.Error("unsupported metric variant", "metric", spec.Metric, "type", fmt.Sprintf("%T", cmd))
		return Item{Icon: metric.IconNone, Text: Placeholder, PreSpaces: spec.PreSpaces}
	}
}

// Run executes specs in order against catalog and returns one item per spec.
// Unknown metric names yield placeholder items.
func Run(ctx context.Context, p *metric.Pass, catalog *metric.Catalog, specs []config.ItemConfig) []Item {
	log := logging.Component("pipeline")

	items := make([]Item, 0, len(specs))
	for _, spec := range specs {
		cmd, ok := catalog.Get(spec.Metric)
		if !ok {
			log.Warn("unknown metric", "metric", spec.Metric)
			items = append(items, Item{Icon: metric.IconNone, Text: Placeholder, PreSpaces: spec.PreSpaces})
			continue
		}
		items = append(items, Exec(ctx, p, cmd, spec))
	}

	log.Debug("pass complete", "items", len(items))
	return items
}

// FirstBar returns the bar value of the first item carrying one.
func FirstBar(items []Item) (int, bool) {
	for _, item := range items {
		if item.HasBar {
			return item.Bar, true
		}
	}
	return 0, false
}
