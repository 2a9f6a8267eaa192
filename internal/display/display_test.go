package display

import (
	"errors"
	"testing"

	"partiso/internal/timestamp"
)

// recordingEngine records the calls it receives and returns a fixed string.
type recordingEngine struct {
	calls    int
	locale   string
	pattern  string
	instant  timestamp.Instant
	fail     bool
	rendered string
}

func (e *recordingEngine) Format(locale, pattern string, instant timestamp.Instant) (string, error) {
	e.calls++
	e.locale = locale
	e.pattern = pattern
	e.instant = instant
	if e.fail {
		return "", errors.New("engine failure")
	}
	return e.rendered, nil
}

func parse(t *testing.T, value string) *timestamp.ParsedInstant {
	t.Helper()
	p, err := timestamp.Parse(value, timestamp.First)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", value, err)
	}
	return p
}

func TestEnglishRendering(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"2023", "2023"},
		{"2023-01", "January 2023"},
		{"2023-01-02", "2 January 2023"},
		{"2023-01-02T09", "2 January 2023 09"},
		{"2023-01-02T09:05", "2 January 2023 09:05"},
		{"2023-01-02T09:05:07", "2 January 2023 09:05:07"},
		{"2023-01-02T09+05:30", "2 January 2023 09 +05:30"},
		{"2023-01-02T09:05+05:30", "2 January 2023 09:05 +05:30"},
		{"2023-01-02T09:05:07+05:30", "2 January 2023 09:05:07 +05:30"},
		{"-0450-03-15", "15 March -450"},
	}

	for _, tt := range tests {
		if got := English(parse(t, tt.value)); got != tt.want {
			t.Errorf("English(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestRenderWithoutEngineFallsBack(t *testing.T) {
	f := New(Config{})
	if got := f.Render(parse(t, "2023-01-02"), "de-DE"); got != "2 January 2023" {
		t.Errorf("Render without engine = %q, want English fallback", got)
	}
}

func TestRenderEnglishLocaleSkipsEngine(t *testing.T) {
	engine := &recordingEngine{rendered: "should not appear"}
	f := New(Config{Engine: engine, DefaultLocale: "en-US"})

	for _, locale := range []string{"", "en", "en-US", "en-GB"} {
		got := f.Render(parse(t, "2023-01-02"), locale)
		if got != "2 January 2023" {
			t.Errorf("Render(locale=%q) = %q, want English rendering", locale, got)
		}
	}
	if engine.calls != 0 {
		t.Errorf("engine called %d times for English locales, want 0", engine.calls)
	}
}

func TestRenderDelegatesToEngine(t *testing.T) {
	engine := &recordingEngine{rendered: "2. Januar 2023"}
	f := New(Config{Engine: engine})

	p := parse(t, "2023-01-02")
	got := f.Render(p, "de-DE")
	if got != "2. Januar 2023" {
		t.Errorf("Render = %q, want engine output", got)
	}
	if engine.locale != "de-DE" {
		t.Errorf("engine locale = %q, want de-DE", engine.locale)
	}
	if engine.pattern != "d MMMM y" {
		t.Errorf("engine pattern = %q, want %q", engine.pattern, "d MMMM y")
	}
	if engine.instant != p.Instant {
		t.Errorf("engine instant = %d, want %d", engine.instant, p.Instant)
	}
}

func TestRenderKeepsEraWhenConfigured(t *testing.T) {
	engine := &recordingEngine{rendered: "x"}
	f := New(Config{Engine: engine, KeepEra: true})

	f.Render(parse(t, "2023-01-02"), "fr-FR")
	if engine.pattern != "d MMMM y G" {
		t.Errorf("engine pattern = %q, want era marker retained", engine.pattern)
	}
}

func TestRenderNonPositiveYearBypassesEngine(t *testing.T) {
	engine := &recordingEngine{rendered: "should not appear"}
	f := New(Config{Engine: engine})

	for _, value := range []string{"0000-06-15", "-0044-03-15"} {
		got := f.Render(parse(t, value), "de-DE")
		if got == "should not appear" {
			t.Errorf("Render(%q) used the engine for a non-positive year", value)
		}
	}
	if engine.calls != 0 {
		t.Errorf("engine called %d times for non-positive years, want 0", engine.calls)
	}
}

func TestRenderEngineFailureFallsBack(t *testing.T) {
	engine := &recordingEngine{fail: true}
	f := New(Config{Engine: engine})

	if got := f.Render(parse(t, "2023-01-02"), "ja-JP"); got != "2 January 2023" {
		t.Errorf("Render after engine failure = %q, want English fallback", got)
	}
}

func TestRenderMalformedLocaleFallsBack(t *testing.T) {
	engine := &recordingEngine{rendered: "should not appear"}
	f := New(Config{Engine: engine})

	if got := f.Render(parse(t, "2023-01-02"), "!!not-a-tag"); got != "2 January 2023" {
		t.Errorf("Render with malformed locale = %q, want English fallback", got)
	}
	if engine.calls != 0 {
		t.Error("engine called for a malformed locale tag")
	}
}

func TestPattern(t *testing.T) {
	tests := []struct {
		format  timestamp.Format
		keepEra bool
		want    string
	}{
		{timestamp.FormatYear, false, "y"},
		{timestamp.FormatYear, true, "y G"},
		{timestamp.FormatYearMonth, false, "MMMM y"},
		{timestamp.FormatDateTimeOffset, false, "d MMMM y HH:mm:ss xxx"},
		{timestamp.FormatDateTimeOffset, true, "d MMMM y G HH:mm:ss xxx"},
	}

	for _, tt := range tests {
		if got := Pattern(tt.format, tt.keepEra); got != tt.want {
			t.Errorf("Pattern(%v, %v) = %q, want %q", tt.format, tt.keepEra, got, tt.want)
		}
	}
}
