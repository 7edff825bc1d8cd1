package report

import (
	"fmt"
	"io"
	"time"
)

// TextReporter implements Reporter for plain text output.
type TextReporter struct {
	Verbose   bool
	UseColour bool
}

const (
	colReset     = "\033[0m"
	colRed       = "\033[31m"
	colGreen     = "\033[32m"
	colGrey      = "\033[90m"
	colBoldRed   = "\033[1;31m"
	colBoldGreen = "\033[1;32m"
	colBoldWhite = "\033[1;37m"
)

// cs returns a string which will render with the given colour
// if colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

func (tr *TextReporter) Write(w io.Writer, r *FormatReport) error {
	var written, skipped int

	for _, res := range r.Results {
		switch {
		case res.Err != nil:
			fmt.Fprintf(w, "%s %s: %v\n", tr.cs(colBoldRed, "[FAIL]"), res.Path, res.Err)
		case res.Skipped:
			skipped++
			if tr.Verbose {
				fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "[SKIP]"), res.Path)
			}
		case r.Check && res.Changed:
			fmt.Fprintf(w, "%s %s\n", tr.cs(colRed, "[DIFF]"), res.Path)
		case r.Check:
			if tr.Verbose {
				fmt.Fprintf(w, "%s %s\n", tr.cs(colGreen, "[OK]"), res.Path)
			}
		case res.Written:
			written++
		}
	}

	duration := r.EndTime.Sub(r.StartTime).Round(time.Millisecond)
	if r.Check {
		if changed := r.Changed(); changed > 0 {
			fmt.Fprintf(w, "%s\n", tr.cs(colBoldRed,
				fmt.Sprintf("%d of %d files need formatting", changed, len(r.Results))))
		} else {
			fmt.Fprintf(w, "%s\n", tr.cs(colBoldGreen,
				fmt.Sprintf("%d files already formatted", len(r.Results))))
		}
		return nil
	}

	summary := fmt.Sprintf("Formatted %d files in %s", written, duration)
	if skipped > 0 {
		summary += fmt.Sprintf(" (%d skipped)", skipped)
	}
	fmt.Fprintf(w, "%s\n", tr.cs(colBoldWhite, summary))
	return nil
}
