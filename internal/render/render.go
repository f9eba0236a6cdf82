// Package render lays out pipeline items as plain text, Pango markup or
// coloured terminal text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rashpile/limon/internal/config"
	"github.com/rashpile/limon/internal/pipeline"
)

// Options holds the font settings used by Pango output.
type Options struct {
	IconFont     string
	TextFont     string
	IconFontSize int
	TextFontSize int
}

// OptionsFrom extracts render options from configuration.
func OptionsFrom(cfg *config.Config) Options {
	return Options{
		IconFont:     cfg.IconFont,
		TextFont:     cfg.TextFont,
		IconFontSize: cfg.IconFontSize,
		TextFontSize: cfg.TextFontSize,
	}
}

// icon right-aligns an icon in a column of preSpaces+1 cells.
func icon(glyph string, preSpaces int) string {
	return fmt.Sprintf("%*s", preSpaces+1, glyph)
}

// Plain renders one "icon<TAB>text" line per item.
func Plain(items []pipeline.Item) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s\t%s\n", icon(item.Icon, item.PreSpaces), item.Text)
	}
	return b.String()
}

// markupEscaper escapes the characters Pango markup reserves.
var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// attrEscaper also escapes quotes, for values inside a quoted attribute.
var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "'", "&apos;", `"`, "&quot;")

// Pango renders items as Pango markup wrapped in <txt>, followed by a <bar>
// element carrying the first item bar value, if any.
func Pango(items []pipeline.Item, opts Options) string {
	iconFont := attrEscaper.Replace(opts.IconFont)
	textFont := attrEscaper.Replace(opts.TextFont)
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf(
			"<span font='%s %d'>%s</span>\t<span font='%s %d'>%s</span>",
			iconFont, opts.IconFontSize,
			markupEscaper.Replace(icon(item.Icon, item.PreSpaces)),
			textFont, opts.TextFontSize,
			markupEscaper.Replace(item.Text),
		)
	}

	var b strings.Builder
	b.WriteString("<txt>")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("</txt>")
	if bar, ok := pipeline.FirstBar(items); ok {
		fmt.Fprintf(&b, "<bar>%d</bar>", bar)
	}
	return b.String()
}

// Term renders plain lines with styled icons and placeholders for a
// terminal with the given colour profile.
func Term(items []pipeline.Item, w io.Writer, profile termenv.Profile) string {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)

	iconStyle := r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errorStyle := r.NewStyle().Foreground(lipgloss.Color("1"))
	barStyle := r.NewStyle().Foreground(lipgloss.Color("2"))

	var b strings.Builder
	for _, item := range items {
		text := item.Text
		if text == pipeline.Placeholder {
			text = errorStyle.Render(text)
		}
		if item.HasBar {
			text += " " + barStyle.Render(meter(item.Bar, 10))
		}
		fmt.Fprintf(&b, "%s\t%s\n", iconStyle.Render(icon(item.Icon, item.PreSpaces)), text)
	}
	return b.String()
}

// meter draws pct as a width-cell gauge.
func meter(pct, width int) string {
	filled := min(max(pct, 0), 100) * width / 100
	return strings.Repeat("■", filled) + strings.Repeat("·", width-filled)
}

// Write renders items in the configured format to w.
func Write(w io.Writer, format string, items []pipeline.Item, opts Options) error {
	var out string
	switch format {
	case config.FormatPlain:
		out = Plain(items)
	case config.FormatPango:
		out = Pango(items, opts)
	case config.FormatTerm:
		out = Term(items, w, termenv.NewOutput(w).EnvColorProfile())
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	_, err := io.WriteString(w, out)
	return err
}
