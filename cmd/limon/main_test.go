package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rashpile/limon/internal/metric"
)

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--version"}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "limon dev") {
		t.Errorf("output = %q, want version banner", out.String())
	}
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--list"}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, name := range []string{"cpu", "network_speed", "battery"} {
		if !strings.Contains(out.String(), name+"\n") {
			t.Errorf("output missing %q:\n%s", name, out.String())
		}
	}
}

func TestRunPlain(t *testing.T) {
	dir := t.TempDir()
	sys := filepath.Join(dir, "sys")
	batDir := filepath.Join(sys, "class", "power_supply", "BAT0")
	if err := os.MkdirAll(batDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(batDir, "capacity"), []byte("64\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(dir, "limon.yaml")
	cfg := "paths:\n  sys: " + sys + "\n  proc: " + filepath.Join(dir, "proc") + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := run([]string{
		"--config", cfgPath,
		"--format", "plain",
		"--runtime-dir", dir,
		"battery",
		"command:echo hi",
		"bogus",
		"wireless:wlan0",
	}, &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	want := metric.IconBattery3 + "\t64%\n" +
		metric.IconCommand + "\thi\n" +
		" \t#ERROR#\n" +
		metric.IconWireless + "\t#ERROR#\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunRejectsBadFormat(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--format", "html", "cpu"}, &out)
	if err == nil {
		t.Error("run() error = nil, want format error")
	}
}

func TestRunHelp(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--help"}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Usage: limon") {
		t.Errorf("output = %q, want usage", out.String())
	}
}
