package console

import "io"

// ErrorReport is the fixed layout the error printer renders: a header, the
// message, the originating path and an optional stack trace.
type ErrorReport struct {
	Header  string
	Message string
	Path    string
	Stack   string
}

// PrintError renders the report line by line: bold red header, yellow
// message label, cyan path label, dimmed stack. Empty path and stack lines
// are omitted.
func PrintError(w io.Writer, rep ErrorReport) {
	Print(w, Segment{Text: rep.Header, Color: "red", Styles: []string{"bold"}})
	Print(w, Segment{Text: "message:", Color: "yellow"}, Segment{Text: rep.Message})
	if rep.Path != "" {
		Print(w, Segment{Text: "path:", Color: "cyan"}, Segment{Text: rep.Path})
	}
	if rep.Stack != "" {
		Print(w, Segment{Text: rep.Stack, Color: "gray", Styles: []string{"dim"}})
	}
}
