// Package timestamp implements a partial-precision ISO 8601 date/time parser
// and normalizer for Partiso.
//
// A value may state anything from a bare year down to a full date/time with a
// numeric UTC offset. Parsing decomposes the value, fills the omitted fields
// under a FillPolicy (earliest or latest valid value), validates every field,
// and converts the normalized components into an absolute instant. Parsing a
// value under both policies yields the inclusive bounds of the time range the
// partial value covers.
//
// Only fixed numeric offsets are understood; there is no timezone-database
// resolution and no calendar other than the proleptic Gregorian.
package timestamp

import (
	"fmt"
	"strconv"
	"strings"

	"partiso/internal/cache"
	"partiso/internal/calendar"
)

// Year bounds imposed by a 64-bit second-resolution timestamp.
const (
	YearMin int64 = -292277022656
	YearMax int64 = 292277026595
)

// FillPolicy selects the value assigned to date/time fields omitted from the
// input: First picks the earliest valid value, Last the latest.
type FillPolicy int

const (
	// First fills omitted fields with their earliest valid value.
	First FillPolicy = iota
	// Last fills omitted fields with their latest valid value.
	Last
)

func (p FillPolicy) String() string {
	if p == Last {
		return "last"
	}
	return "first"
}

// ParsedInstant is the immutable result of parsing one date/time value under
// one fill policy. Raw fields hold values as written and are meaningful only
// when the corresponding Has method reports true; normalized fields are
// always populated after a successful parse.
type ParsedInstant struct {
	// Raw is the original input, kept for audit. Canonical() is the
	// semantically equivalent re-serialization.
	Raw           string
	DateSegment   string
	TimeSegment   string
	OffsetSegment string

	// Year is always explicit in the input.
	Year int64

	// Raw fields, as written.
	Month, Day, Hour, Minute, Second int
	OffsetHour, OffsetMinute         int

	// Normalized fields.
	MonthNorm, DayNorm, HourNorm, MinuteNorm, SecondNorm int
	OffsetHourNorm, OffsetMinuteNorm                     int
	// OffsetNorm is the textual ±HH:MM offset; +00:00 when absent or Z.
	OffsetNorm string

	CanonicalFormat Format
	DisplayFormat   Format

	// Instant is the absolute point in time of the normalized components in
	// the stated offset.
	Instant Instant

	Policy  FillPolicy
	present field
}

// HasMonth reports whether the month was explicit in the input.
func (p *ParsedInstant) HasMonth() bool { return p.present&fieldMonth != 0 }

// HasDay reports whether the day was explicit in the input.
func (p *ParsedInstant) HasDay() bool { return p.present&fieldDay != 0 }

// HasHour reports whether the hour was explicit in the input.
func (p *ParsedInstant) HasHour() bool { return p.present&fieldHour != 0 }

// HasMinute reports whether the minute was explicit in the input.
func (p *ParsedInstant) HasMinute() bool { return p.present&fieldMinute != 0 }

// HasSecond reports whether the second was explicit in the input.
func (p *ParsedInstant) HasSecond() bool { return p.present&fieldSecond != 0 }

// HasOffset reports whether an offset (numeric or Z) was explicit in the input.
func (p *ParsedInstant) HasOffset() bool { return p.present&fieldOffset != 0 }

// Parse parses value under the given fill policy without caching. Most
// callers want Parser.Parse, which memoizes successful results.
func Parse(value string, policy FillPolicy) (*ParsedInstant, error) {
	caps, ok := match(value)
	if !ok {
		return nil, invalidFormatErr(value)
	}

	// Structural dependency rules run before any range validation.
	if caps.hour != "" && caps.day == "" {
		return nil, structuralErr("hour", caps.hour, "an explicit hour requires an explicit day")
	}
	if caps.offset != "" && caps.time == "" {
		return nil, structuralErr("offset", caps.offset, "an explicit offset requires an explicit time")
	}

	year, err := strconv.ParseInt(caps.year, 10, 64)
	if err != nil {
		// The grammar guarantees digits, so the only failure is overflow.
		return nil, rangeErr("year", caps.year, "does not fit a 64-bit second-resolution timestamp")
	}

	p := &ParsedInstant{
		Raw:           value,
		DateSegment:   caps.date,
		TimeSegment:   caps.time,
		OffsetSegment: caps.offset,
		Year:          year,
		Policy:        policy,
	}

	setField := func(raw string, bit field, dst *int) {
		if raw == "" {
			return
		}
		v, _ := strconv.Atoi(raw) // one or two digits, cannot fail
		*dst = v
		p.present |= bit
	}
	setField(caps.month, fieldMonth, &p.Month)
	setField(caps.day, fieldDay, &p.Day)
	setField(caps.hour, fieldHour, &p.Hour)
	setField(caps.minute, fieldMinute, &p.Minute)
	setField(caps.second, fieldSecond, &p.Second)
	if caps.offset != "" {
		p.present |= fieldOffset
	}
	if caps.offsetHour != "" {
		p.OffsetHour, _ = strconv.Atoi(caps.offsetHour)
		p.OffsetMinute, _ = strconv.Atoi(caps.offsetMinute)
	}

	p.normalize(caps)
	if err := p.validate(caps); err != nil {
		return nil, err
	}
	p.CanonicalFormat, p.DisplayFormat = selectFormats(p.present)

	instant, err := buildInstant(p.Year, p.MonthNorm, p.DayNorm,
		p.HourNorm, p.MinuteNorm, p.SecondNorm, offsetSeconds(caps, p))
	if err != nil {
		return nil, err
	}
	p.Instant = instant

	return p, nil
}

// normalize fills omitted fields according to the fill policy. The offset
// always defaults to zero: there is no "last possible offset".
func (p *ParsedInstant) normalize(caps captures) {
	last := p.Policy == Last

	p.MonthNorm = p.Month
	if !p.HasMonth() {
		if last {
			p.MonthNorm = 12
		} else {
			p.MonthNorm = 1
		}
	}
	p.DayNorm = p.Day
	if !p.HasDay() {
		if last {
			p.DayNorm = calendar.LastDay(p.Year, p.MonthNorm)
		} else {
			p.DayNorm = 1
		}
	}
	p.HourNorm = p.Hour
	if !p.HasHour() {
		if last {
			p.HourNorm = 23
		}
	}
	p.MinuteNorm = p.Minute
	if !p.HasMinute() {
		if last {
			p.MinuteNorm = 59
		}
	}
	p.SecondNorm = p.Second
	if !p.HasSecond() {
		if last {
			p.SecondNorm = 59
		}
	}
	p.OffsetHourNorm = p.OffsetHour
	p.OffsetMinuteNorm = p.OffsetMinute

	if caps.offset == "" || caps.offset == "Z" {
		p.OffsetNorm = "+00:00"
	} else {
		p.OffsetNorm = caps.offset
	}
}

// validate checks every normalized field against its numeric range, in a
// fixed order. Defaulted fields are always in range, so the offending value
// is reported as written in the input.
func (p *ParsedInstant) validate(caps captures) error {
	if p.Year < YearMin || p.Year > YearMax {
		return rangeErr("year", caps.year,
			fmt.Sprintf("must be between %d and %d", YearMin, YearMax))
	}
	if p.MonthNorm < 1 || p.MonthNorm > 12 {
		return rangeErr("month", caps.month, "must be between 1 and 12")
	}
	lastDay := calendar.LastDay(p.Year, p.MonthNorm)
	if p.DayNorm < 1 || p.DayNorm > lastDay {
		return rangeErr("day", caps.day,
			fmt.Sprintf("must be between 1 and %d for month %d", lastDay, p.MonthNorm))
	}
	if p.HourNorm < 0 || p.HourNorm > 23 {
		return rangeErr("hour", caps.hour, "must be between 0 and 23")
	}
	if p.MinuteNorm < 0 || p.MinuteNorm > 59 {
		return rangeErr("minute", caps.minute, "must be between 0 and 59")
	}
	if p.SecondNorm < 0 || p.SecondNorm > 59 {
		return rangeErr("second", caps.second, "must be between 0 and 59")
	}
	if p.OffsetHourNorm < -23 || p.OffsetHourNorm > 23 {
		return rangeErr("offset hour", caps.offsetHour, "must be between -23 and 23")
	}
	if p.OffsetMinuteNorm < 0 || p.OffsetMinuteNorm > 59 {
		return rangeErr("offset minute", caps.offsetMinute, "must be between 0 and 59")
	}
	return nil
}

// offsetSeconds returns the normalized offset in seconds east of UTC. The
// sign is taken from the offset segment so that -00:30 keeps its direction.
func offsetSeconds(caps captures, p *ParsedInstant) int64 {
	secs := int64(p.OffsetHourNorm) * 3600
	minutes := int64(p.OffsetMinuteNorm) * 60
	if strings.HasPrefix(caps.offsetHour, "-") {
		return secs - minutes
	}
	return secs + minutes
}

// parseKey identifies one memoized parse result.
type parseKey struct {
	value  string
	policy FillPolicy
}

// Parser parses date/time values and memoizes successful results per
// (value, policy) pair. It is safe for concurrent use.
type Parser struct {
	cache cache.Cache[parseKey, *ParsedInstant]
}

// NewParser returns a Parser whose cache holds at most maxEntries results.
// Zero selects the default bound.
func NewParser(maxEntries int) *Parser {
	p := &Parser{}
	p.cache.MaxSize = maxEntries
	return p
}

// Parse returns the ParsedInstant for value under policy. Repeated calls with
// the same arguments are served from the cache; failed parses are never
// cached and re-validate on every call.
func (p *Parser) Parse(value string, policy FillPolicy) (*ParsedInstant, error) {
	return p.cache.Get(parseKey{value: value, policy: policy}, func(k parseKey) (*ParsedInstant, error) {
		return Parse(k.value, k.policy)
	})
}
