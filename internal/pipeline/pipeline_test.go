package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/rashpile/limon/internal/config"
	"github.com/rashpile/limon/internal/metric"
	"github.com/rashpile/limon/internal/state"
)

func testCatalog(order *[]string) *metric.Catalog {
	c := metric.NewCatalog()
	c.Register("ok", metric.Static{
		Icon: "A",
		Call: func(_ context.Context, _ *metric.Pass, args []string) (string, error) {
			*order = append(*order, "ok")
			if len(args) > 0 {
				return args[0], nil
			}
			return "fine", nil
		},
	})
	c.Register("broken", metric.Static{
		Icon: "B",
		Call: func(context.Context, *metric.Pass, []string) (string, error) {
			*order = append(*order, "broken")
			return "", errors.New("no such device")
		},
	})
	c.Register("gauge", metric.Dynamic{
		Call: func(context.Context, *metric.Pass, []string) (metric.Result, error) {
			*order = append(*order, "gauge")
			return metric.Result{Icon: "G", Text: "42%"}.WithBar(42), nil
		},
	})
	c.Register("flaky", metric.Dynamic{
		Call: func(context.Context, *metric.Pass, []string) (metric.Result, error) {
			*order = append(*order, "flaky")
			return metric.Result{}, errors.New("sensor gone")
		},
	})
	return c
}

func TestRun(t *testing.T) {
	var order []string
	catalog := testCatalog(&order)
	p := &metric.Pass{Store: state.NewMemStore(), Tables: metric.DefaultTables()}

	specs := []config.ItemConfig{
		{Metric: "broken"},
		{Metric: "ok", Args: []string{"hello"}, Icon: "X", PreSpaces: 2},
		{Metric: "flaky"},
		{Metric: "missing"},
		{Metric: "gauge", PreSpaces: 1},
		{Metric: "ok"},
	}

	items := Run(context.Background(), p, catalog, specs)

	want := []Item{
		{Icon: "B", Text: Placeholder},
		{Icon: "X", Text: "hello", PreSpaces: 2},
		{Icon: metric.IconNone, Text: Placeholder},
		{Icon: metric.IconNone, Text: Placeholder},
		{Icon: "G", Text: "42%", Bar: 42, HasBar: true, PreSpaces: 1},
		{Icon: "A", Text: "fine"},
	}
	if len(items) != len(want) {
		t.Fatalf("Run() returned %d items, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("items[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}

	wantOrder := []string{"broken", "ok", "flaky", "gauge", "ok"}
	if len(order) != len(wantOrder) {
		t.Fatalf("call order = %v, want %v", order, wantOrder)
	}
	for i := range wantOrder {
		if order[i] != wantOrder[i] {
			t.Errorf("call order = %v, want %v", order, wantOrder)
			break
		}
	}
}

func TestFirstBar(t *testing.T) {
	items := []Item{
		{Text: "a"},
		{Text: "b", Bar: 30, HasBar: true},
		{Text: "c", Bar: 90, HasBar: true},
	}
	if bar, ok := FirstBar(items); !ok || bar != 30 {
		t.Errorf("FirstBar() = (%d, %v), want (30, true)", bar, ok)
	}
	if _, ok := FirstBar(items[:1]); ok {
		t.Error("FirstBar() without bars ok = true, want false")
	}
}
