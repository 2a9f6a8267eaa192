package orchestrator

import (
	"fmt"
	"strings"
)

// Summary represents the overall results of a Partiso run.
type Summary struct {
	TotalValues  int
	SuccessCount int
	ErrorCount   int
	Results      []Result
}

// HasErrors reports whether any value failed to parse.
func (s *Summary) HasErrors() bool {
	return s.ErrorCount > 0
}

// PrintSummary formats the run statistics for display.
func (s *Summary) PrintSummary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Parsed %d value(s): %d ok, %d failed", s.TotalValues, s.SuccessCount, s.ErrorCount)
	return b.String()
}

// PrintResults formats one line per value: the canonical bounds, the numeric
// range and the display rendering, or the parse error.
func (s *Summary) PrintResults() string {
	var b strings.Builder
	for _, r := range s.Results {
		if !r.Success() {
			fmt.Fprintf(&b, "%s: error: %v\n", r.Value, r.Err)
			continue
		}
		lower, upper := r.RangeBounds()
		fmt.Fprintf(&b, "%s: [%s .. %s] (%d .. %d) %q\n",
			r.Value, r.First.Canonical(), r.Last.Canonical(), lower, upper, r.Rendered)
	}
	return b.String()
}
