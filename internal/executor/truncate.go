package executor

import (
	"io"
	"unicode/utf8"
)

// TruncatingWriter passes through at most maxBytes and silently drops the
// rest, so a chatty command cannot flood the status line. The cut never
// splits a UTF-8 sequence.
type TruncatingWriter struct {
	w         io.Writer
	maxBytes  int
	written   int
	truncated bool
}

// NewTruncatingWriter creates a writer that limits output size.
func NewTruncatingWriter(w io.Writer, maxBytes int) *TruncatingWriter {
	return &TruncatingWriter{
		w:        w,
		maxBytes: maxBytes,
	}
}

// Write forwards p up to the limit and always reports len(p) written, so
// the command never sees a short write.
func (tw *TruncatingWriter) Write(p []byte) (int, error) {
	remaining := tw.maxBytes - tw.written
	if remaining <= 0 {
		tw.truncated = tw.truncated || len(p) > 0
		return len(p), nil
	}

	chunk := p
	if len(chunk) > remaining {
		cut := remaining
		for cut > 0 && !utf8.RuneStart(chunk[cut]) {
			cut--
		}
		chunk = chunk[:cut]
		tw.truncated = true
		// nothing more fits once a rune has been dropped
		tw.maxBytes = tw.written + cut
	}

	n, err := tw.w.Write(chunk)
	tw.written += n
	return len(p), err
}

// Truncated returns true if output was dropped.
func (tw *TruncatingWriter) Truncated() bool {
	return tw.truncated
}
