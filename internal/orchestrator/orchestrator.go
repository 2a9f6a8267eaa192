// Package orchestrator coordinates batch parsing runs for Partiso.
//
// A run takes a list of raw date/time values, parses each one under both
// fill policies to obtain the inclusive bounds of the range it covers, and
// renders a display string for the configured bound.
package orchestrator

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"partiso/internal/config"
	"partiso/internal/display"
	"partiso/internal/output"
	"partiso/internal/timestamp"
)

// Result represents the outcome of parsing a single value.
type Result struct {
	Value string
	// First and Last are the parses under the two fill policies; nil when
	// Err is set.
	First    *timestamp.ParsedInstant
	Last     *timestamp.ParsedInstant
	Rendered string
	Err      error
}

// Success reports whether the value parsed cleanly.
func (r *Result) Success() bool { return r.Err == nil }

// RangeBounds returns the inclusive [lower, upper] bounds, in Unix seconds,
// of the time range the value covers. A fully explicit value collapses to a
// single instant with lower == upper.
func (r *Result) RangeBounds() (lower, upper int64) {
	return r.First.Instant.Unix(), r.Last.Instant.Unix()
}

// Runner executes parsing runs against a shared parser and formatter.
type Runner struct {
	cfg       *config.Configuration
	parser    *timestamp.Parser
	formatter *display.Formatter
	out       *output.Output
}

// New creates a Runner. The locale engine may be nil, in which case every
// rendering uses the fixed English layout.
func New(cfg *config.Configuration, engine display.Engine, out *output.Output) *Runner {
	return &Runner{
		cfg:    cfg,
		parser: timestamp.NewParser(cfg.CacheSize),
		formatter: display.New(display.Config{
			Engine:        engine,
			DefaultLocale: cfg.DefaultLocale,
			KeepEra:       cfg.KeepEra,
		}),
		out: out,
	}
}

// Run parses each value under both fill policies and collects a summary.
// Locale overrides the configured default when non-empty.
func (r *Runner) Run(values []string, locale string) *Summary {
	summary := &Summary{
		TotalValues: len(values),
		Results:     make([]Result, 0, len(values)),
	}

	r.out.StartProgress(len(values))
	for i, value := range values {
		r.out.UpdateProgress(i + 1)
		result := r.parseValue(value, locale)
		if result.Success() {
			summary.SuccessCount++
			lower, upper := result.RangeBounds()
			r.out.Verbose("%s -> [%d, %d] %s", value, lower, upper, result.Rendered)
		} else {
			summary.ErrorCount++
		}
		summary.Results = append(summary.Results, result)
	}
	r.out.EndProgress()

	return summary
}

// RunFile reads one value per line from path (blank lines and #-comments are
// skipped) and runs them.
func (r *Runner) RunFile(path, locale string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open values file: %w", err)
	}
	defer f.Close()

	var values []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		values = append(values, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read values file: %w", err)
	}

	return r.Run(values, locale), nil
}

func (r *Runner) parseValue(value, locale string) Result {
	result := Result{Value: value}

	first, err := r.parser.Parse(value, timestamp.First)
	if err != nil {
		result.Err = err
		return result
	}
	last, err := r.parser.Parse(value, timestamp.Last)
	if err != nil {
		result.Err = err
		return result
	}

	result.First = first
	result.Last = last
	displayed := first
	if r.cfg.DisplayFillPolicy() == timestamp.Last {
		displayed = last
	}
	result.Rendered = r.formatter.Render(displayed, locale)
	return result
}
