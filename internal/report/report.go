// Package report renders per-file formatting outcomes.
package report

import (
	"io"
	"time"
)

// FileResult captures the outcome of processing a single file.
type FileResult struct {
	Path    string
	Changed bool // formatting altered the content
	Written bool // the file was rewritten on disk
	Skipped bool // the overwrite prompt was declined
	Err     error
}

// FormatReport covers one run over a set of files.
type FormatReport struct {
	StartTime time.Time
	EndTime   time.Time
	Check     bool
	Results   []FileResult
}

// Changed reports how many files were (or would be) modified.
func (r *FormatReport) Changed() int {
	n := 0
	for _, res := range r.Results {
		if res.Changed {
			n++
		}
	}
	return n
}

// Failed reports how many files could not be processed.
func (r *FormatReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Reporter writes a FormatReport in some output format.
type Reporter interface {
	Write(w io.Writer, r *FormatReport) error
}
