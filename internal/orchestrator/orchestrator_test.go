package orchestrator

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"partiso/internal/config"
	"partiso/internal/output"
	"partiso/internal/timestamp"
)

func newTestRunner(cfg *config.Configuration) (*Runner, *bytes.Buffer) {
	if cfg == nil {
		cfg = config.Default()
	}
	var buf bytes.Buffer
	out := output.New(output.Config{Writer: &buf, ErrWriter: &buf})
	return New(cfg, nil, out), &buf
}

func TestRunCollectsBothBounds(t *testing.T) {
	runner, _ := newTestRunner(nil)

	summary := runner.Run([]string{"2023"}, "")
	if summary.TotalValues != 1 || summary.SuccessCount != 1 || summary.ErrorCount != 0 {
		t.Fatalf("summary counts = %d/%d/%d", summary.TotalValues, summary.SuccessCount, summary.ErrorCount)
	}

	r := summary.Results[0]
	lower, upper := r.RangeBounds()
	if lower >= upper {
		t.Errorf("range bounds [%d, %d] not a proper interval for a year value", lower, upper)
	}
	if r.First.Canonical() != "2023" || r.Last.Canonical() != "2023" {
		t.Errorf("canonical forms = %q/%q, want 2023", r.First.Canonical(), r.Last.Canonical())
	}
	if r.Rendered != "2023" {
		t.Errorf("Rendered = %q, want 2023", r.Rendered)
	}
}

func TestRunFullyExplicitValueCollapses(t *testing.T) {
	runner, _ := newTestRunner(nil)

	summary := runner.Run([]string{"2023-06-15T08:30:45Z"}, "")
	lower, upper := summary.Results[0].RangeBounds()
	if lower != upper {
		t.Errorf("fully explicit value has bounds [%d, %d], want a single instant", lower, upper)
	}
}

func TestRunReportsErrors(t *testing.T) {
	runner, _ := newTestRunner(nil)

	summary := runner.Run([]string{"2023", "2023-02-30", "garbage"}, "")
	if summary.SuccessCount != 1 || summary.ErrorCount != 2 {
		t.Fatalf("summary counts = %d ok / %d failed, want 1/2", summary.SuccessCount, summary.ErrorCount)
	}
	if !summary.HasErrors() {
		t.Error("HasErrors = false with failed values")
	}

	var perr *timestamp.ParseError
	if !errors.As(summary.Results[1].Err, &perr) || perr.Type != timestamp.OutOfRange {
		t.Errorf("result error = %v, want OutOfRange ParseError", summary.Results[1].Err)
	}
	if !errors.As(summary.Results[2].Err, &perr) || perr.Type != timestamp.InvalidFormat {
		t.Errorf("result error = %v, want InvalidFormat ParseError", summary.Results[2].Err)
	}
}

func TestRunDisplayPolicyLast(t *testing.T) {
	cfg := config.Default()
	cfg.DisplayPolicy = "last"
	runner, _ := newTestRunner(cfg)

	summary := runner.Run([]string{"2023"}, "")
	// The Last bound of a bare year renders with December fields.
	if got := summary.Results[0].Rendered; got != "2023" {
		t.Errorf("Rendered = %q, want year-only rendering regardless of bound", got)
	}

	summary = runner.Run([]string{"2023-02"}, "")
	if got := summary.Results[0].Rendered; got != "February 2023" {
		t.Errorf("Rendered = %q, want %q", got, "February 2023")
	}
}

func TestRunFile(t *testing.T) {
	runner, _ := newTestRunner(nil)

	path := filepath.Join(t.TempDir(), "values.txt")
	content := "2023\n\n# comment line\n2024-02-29\n  2025-06-15T08:30  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing values file: %v", err)
	}

	summary, err := runner.RunFile(path, "")
	if err != nil {
		t.Fatalf("RunFile returned error: %v", err)
	}
	if summary.TotalValues != 3 {
		t.Errorf("TotalValues = %d, want 3 (blanks and comments skipped)", summary.TotalValues)
	}
	if summary.HasErrors() {
		t.Errorf("unexpected errors: %s", summary.PrintResults())
	}
}

func TestRunFileMissing(t *testing.T) {
	runner, _ := newTestRunner(nil)
	if _, err := runner.RunFile(filepath.Join(t.TempDir(), "absent.txt"), ""); err == nil {
		t.Error("RunFile succeeded for a missing file")
	}
}

func TestPrintResults(t *testing.T) {
	runner, _ := newTestRunner(nil)

	summary := runner.Run([]string{"2023-06", "bad"}, "")
	got := summary.PrintResults()
	if !strings.Contains(got, "2023-06: [2023-06 .. 2023-06]") {
		t.Errorf("PrintResults missing canonical bounds:\n%s", got)
	}
	if !strings.Contains(got, `"June 2023"`) {
		t.Errorf("PrintResults missing rendering:\n%s", got)
	}
	if !strings.Contains(got, "bad: error:") {
		t.Errorf("PrintResults missing error line:\n%s", got)
	}
}

func TestPrintSummary(t *testing.T) {
	runner, _ := newTestRunner(nil)

	summary := runner.Run([]string{"2023", "nope"}, "")
	if got := summary.PrintSummary(); got != "Parsed 2 value(s): 1 ok, 1 failed" {
		t.Errorf("PrintSummary = %q", got)
	}
}
