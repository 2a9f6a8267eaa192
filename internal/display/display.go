// Package display renders parsed date/time values for humans.
//
// Rendering is polymorphic over an optional locale-aware formatting engine.
// English output (and any output for which no engine is available) is
// produced directly from the normalized calendar fields; other locales are
// delegated to the engine with a Unicode date pattern selected by the
// value's display format.
package display

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"partiso/internal/timestamp"
)

// Engine is an external locale-aware formatting capability. Format renders
// the instant according to a Unicode date pattern in the given locale.
type Engine interface {
	Format(locale, pattern string, instant timestamp.Instant) (string, error)
}

// Config holds formatter settings.
type Config struct {
	// Engine is the locale-aware capability. Nil means every locale falls
	// back to the fixed English rendering.
	Engine Engine
	// DefaultLocale is used when a render call supplies no locale tag.
	DefaultLocale string
	// KeepEra retains era markers (the pattern letter G) when delegating to
	// the engine.
	KeepEra bool
}

// Formatter renders ParsedInstants for display.
type Formatter struct {
	config Config
}

// New creates a Formatter with the given configuration.
func New(config Config) *Formatter {
	return &Formatter{config: config}
}

// enginePatterns maps a display format to the Unicode date pattern handed to
// the locale engine. Patterns carry an era marker, stripped by default.
var enginePatterns = map[timestamp.Format]string{
	timestamp.FormatYear:                 "y G",
	timestamp.FormatYearMonth:            "MMMM y G",
	timestamp.FormatYearMonthDay:         "d MMMM y G",
	timestamp.FormatDateHour:             "d MMMM y G HH",
	timestamp.FormatDateHourMinute:       "d MMMM y G HH:mm",
	timestamp.FormatDateTime:             "d MMMM y G HH:mm:ss",
	timestamp.FormatDateHourOffset:       "d MMMM y G HH xxx",
	timestamp.FormatDateHourMinuteOffset: "d MMMM y G HH:mm xxx",
	timestamp.FormatDateTimeOffset:       "d MMMM y G HH:mm:ss xxx",
}

// Pattern returns the engine pattern for a display format. Era markers are
// stripped unless keepEra is set.
func Pattern(format timestamp.Format, keepEra bool) string {
	pattern := enginePatterns[format]
	if !keepEra {
		pattern = strings.Replace(pattern, " G", "", 1)
	}
	return pattern
}

// Render returns the human-readable form of p in the given locale. An empty
// locale falls back to the configured default. English tags, malformed tags,
// a missing engine, and engine failures all use the fixed English rendering.
//
// Values with year <= 0 always use the English rendering: proleptic
// Gregorian non-positive years have no consistent era-aware representation
// in most locale libraries. This is a documented limitation.
func (f *Formatter) Render(p *timestamp.ParsedInstant, locale string) string {
	if locale == "" {
		locale = f.config.DefaultLocale
	}
	if p.Year <= 0 || f.config.Engine == nil || locale == "" {
		return English(p)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return English(p)
	}
	if base, _ := tag.Base(); base.String() == "en" {
		return English(p)
	}

	rendered, err := f.config.Engine.Format(locale, Pattern(p.DisplayFormat, f.config.KeepEra), p.Instant)
	if err != nil {
		return English(p)
	}
	return rendered
}

// English renders p with a fixed English-like layout keyed by its display
// format: day before month, month name spelled out. It needs no locale
// engine and works for the full year range.
func English(p *timestamp.ParsedInstant) string {
	year := strconv.FormatInt(p.Year, 10)
	month := time.Month(p.MonthNorm).String()

	switch p.DisplayFormat {
	case timestamp.FormatYearMonth:
		return fmt.Sprintf("%s %s", month, year)
	case timestamp.FormatYearMonthDay:
		return fmt.Sprintf("%d %s %s", p.DayNorm, month, year)
	case timestamp.FormatDateHour:
		return fmt.Sprintf("%d %s %s %02d", p.DayNorm, month, year, p.HourNorm)
	case timestamp.FormatDateHourMinute:
		return fmt.Sprintf("%d %s %s %02d:%02d", p.DayNorm, month, year, p.HourNorm, p.MinuteNorm)
	case timestamp.FormatDateTime:
		return fmt.Sprintf("%d %s %s %02d:%02d:%02d",
			p.DayNorm, month, year, p.HourNorm, p.MinuteNorm, p.SecondNorm)
	case timestamp.FormatDateHourOffset:
		return fmt.Sprintf("%d %s %s %02d %s", p.DayNorm, month, year, p.HourNorm, p.OffsetNorm)
	case timestamp.FormatDateHourMinuteOffset:
		return fmt.Sprintf("%d %s %s %02d:%02d %s",
			p.DayNorm, month, year, p.HourNorm, p.MinuteNorm, p.OffsetNorm)
	case timestamp.FormatDateTimeOffset:
		return fmt.Sprintf("%d %s %s %02d:%02d:%02d %s",
			p.DayNorm, month, year, p.HourNorm, p.MinuteNorm, p.SecondNorm, p.OffsetNorm)
	default:
		return year
	}
}
