package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONReporter implements Reporter for machine-readable output.
type JSONReporter struct{}

type jsonResult struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
	Written bool   `json:"written"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}

type jsonReport struct {
	Started    string       `json:"started"`
	DurationMs int64        `json:"durationMs"`
	Check      bool         `json:"check"`
	Results    []jsonResult `json:"results"`
}

func (JSONReporter) Write(w io.Writer, r *FormatReport) error {
	payload := jsonReport{
		Started:    r.StartTime.Format(time.RFC3339),
		DurationMs: r.EndTime.Sub(r.StartTime).Milliseconds(),
		Check:      r.Check,
		Results:    make([]jsonResult, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		jr := jsonResult{
			Path:    res.Path,
			Changed: res.Changed,
			Written: res.Written,
			Skipped: res.Skipped,
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload.Results = append(payload.Results, jr)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
