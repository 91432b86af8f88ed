// Package console styles terminal output with ANSI escape codes.
package console

import (
	"fmt"
	"io"
	"strings"
)

// Segment is one styled run of text. Color and Styles are looked up in the
// code tables; unknown names are skipped, not rejected.
type Segment struct {
	Text   string
	Color  string
	Styles []string
}

const reset = "\033[0m"

var colorCodes = map[string]string{
	"black":   "\033[30m",
	"red":     "\033[31m",
	"green":   "\033[32m",
	"yellow":  "\033[33m",
	"blue":    "\033[34m",
	"magenta": "\033[35m",
	"cyan":    "\033[36m",
	"white":   "\033[37m",
	"gray":    "\033[90m",
}

var styleCodes = map[string]string{
	"bold":          "\033[1m",
	"dim":           "\033[2m",
	"italic":        "\033[3m",
	"underline":     "\033[4m",
	"inverse":       "\033[7m",
	"strikethrough": "\033[9m",
}

// Sprint renders the segments joined by single spaces. A segment that
// resolved any code is closed with a reset so styling never bleeds into the
// next segment.
func Sprint(segments ...Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		var b strings.Builder
		styled := false
		for _, s := range seg.Styles {
			if code, ok := styleCodes[s]; ok {
				b.WriteString(code)
				styled = true
			}
		}
		if code, ok := colorCodes[seg.Color]; ok {
			b.WriteString(code)
			styled = true
		}
		b.WriteString(seg.Text)
		if styled {
			b.WriteString(reset)
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}

// Print writes the styled segments and a trailing newline to w.
func Print(w io.Writer, segments ...Segment) {
	fmt.Fprintln(w, Sprint(segments...))
}
