// Package wrap line-wraps commit message sections.
package wrap

import (
	"strings"

	reflowwrap "github.com/muesli/reflow/wrap"
	"github.com/muesli/reflow/wordwrap"
)

// Options mirrors the knobs commit message sections are wrapped with.
type Options struct {
	// Width is the target line width. Non-positive disables wrapping.
	Width int
	// Trim removes trailing spaces and tabs from every produced line.
	Trim bool
	// Cut allows breaking words longer than Width. When false long words
	// overflow the line instead.
	Cut bool
	// Newline separates output lines. Defaults to "\n".
	Newline string
	// Indent prefixes every output line.
	Indent string
}

// String wraps text according to opts. Lines only break on whitespace, so
// hyphenated words and URLs stay whole. Explicit line breaks in the input,
// including blank lines, are kept.
func String(text string, opts Options) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	out := text
	if opts.Width > 0 {
		ww := wordwrap.NewWriter(opts.Width)
		ww.KeepNewlines = true
		ww.Breakpoints = nil
		_, _ = ww.Write([]byte(text))
		_ = ww.Close()
		out = ww.String()
		if opts.Cut {
			out = reflowwrap.String(out, opts.Width)
		}
	}

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if opts.Trim {
			line = strings.TrimRight(line, " \t")
		}
		if opts.Indent != "" {
			line = opts.Indent + line
		}
		lines[i] = line
	}

	newline := opts.Newline
	if newline == "" {
		newline = "\n"
	}
	return strings.Join(lines, newline)
}
