package executor

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestTruncatingWriter(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTruncatingWriter(&buf, 5)

	n, err := tw.Write([]byte("abc"))
	if err != nil || n != 3 {
		t.Fatalf("Write() = %d, %v, want 3, nil", n, err)
	}
	if tw.Truncated() {
		t.Error("Truncated() = true after short write")
	}

	n, err = tw.Write([]byte("defgh"))
	if err != nil || n != 5 {
		t.Fatalf("Write() = %d, %v, want 5, nil", n, err)
	}
	n, _ = tw.Write([]byte("ijk"))
	if n != 3 {
		t.Errorf("Write() after limit = %d, want 3", n)
	}

	if got := buf.String(); got != "abcde" {
		t.Errorf("output = %q, want %q", got, "abcde")
	}
	if !tw.Truncated() {
		t.Error("Truncated() = false, want true")
	}
}

func TestTruncatingWriterRuneBoundary(t *testing.T) {
	tests := []struct {
		name   string
		writes []string
		max    int
		want   string
	}{
		{"cut inside rune", []string{"abc°C"}, 4, "abc"},
		{"cut after rune", []string{"abc°C"}, 5, "abc°"},
		{"rune across writes", []string{"ab", "°C"}, 3, "ab"},
		{"leading multibyte", []string{"°"}, 1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tw := NewTruncatingWriter(&buf, tt.max)
			for _, w := range tt.writes {
				tw.Write([]byte(w))
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
			if !utf8.ValidString(buf.String()) {
				t.Errorf("output %q is not valid UTF-8", buf.String())
			}
			if !tw.Truncated() {
				t.Error("Truncated() = false, want true")
			}
		})
	}
}

func TestShellExecutor(t *testing.T) {
	var buf bytes.Buffer
	err := NewShellExecutor().Execute(context.Background(), Config{
		Command: "echo",
		Args:    []string{"hello", "world"},
		Output:  &buf,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "hello world" {
		t.Errorf("output = %q, want %q", got, "hello world")
	}
}

func TestShellExecutorWorkdir(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	err := NewShellExecutor().Execute(context.Background(), Config{
		Command: "pwd",
		Output:  &buf,
		Workdir: dir,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); !strings.HasSuffix(got, dir) {
		t.Errorf("pwd = %q, want %q", got, dir)
	}
}

func TestShellExecutorFailure(t *testing.T) {
	var buf bytes.Buffer
	err := NewShellExecutor().Execute(context.Background(), Config{
		Command: "exit 3",
		Output:  &buf,
	})
	if err == nil {
		t.Fatal("Execute() error = nil, want failure")
	}
}

func TestShellExecutorTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	err := NewShellExecutor().Execute(ctx, Config{
		Command: "sleep 5",
		Output:  &buf,
	})
	if err == nil || !strings.Contains(err.Error(), "timed out") {
		t.Errorf("Execute() error = %v, want timeout", err)
	}
}
