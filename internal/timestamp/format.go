package timestamp

import (
	"strconv"
	"strings"
)

// Format identifies which subset of fields was explicitly present in the
// original input. It selects both the canonical re-serialization and the
// display rendering of a parsed value.
type Format int

const (
	// FormatYear is a bare year.
	FormatYear Format = iota
	// FormatYearMonth is year and month.
	FormatYearMonth
	// FormatYearMonthDay is a full calendar date.
	FormatYearMonthDay
	// FormatDateHour is a date with an hour.
	FormatDateHour
	// FormatDateHourMinute is a date with hour and minute.
	FormatDateHourMinute
	// FormatDateTime is a date with a full time.
	FormatDateTime
	// FormatDateHourOffset is a date with hour and offset.
	FormatDateHourOffset
	// FormatDateHourMinuteOffset is a date with hour, minute and offset.
	FormatDateHourMinuteOffset
	// FormatDateTimeOffset is a full date/time with offset.
	FormatDateTimeOffset
)

// field is a bitmask of explicitly supplied fields. The year is always
// explicit and carries no bit.
type field uint8

const (
	fieldMonth field = 1 << iota
	fieldDay
	fieldHour
	fieldMinute
	fieldSecond
	fieldOffset
)

// formatLevels orders field-presence levels from most to least specific.
// Both format columns are keyed on the same presence mask; selection walks
// the list top-down and takes the first level whose fields are all present.
var formatLevels = []struct {
	required  field
	canonical Format
	display   Format
}{
	{fieldMonth | fieldDay | fieldHour | fieldMinute | fieldSecond | fieldOffset, FormatDateTimeOffset, FormatDateTimeOffset},
	{fieldMonth | fieldDay | fieldHour | fieldMinute | fieldOffset, FormatDateHourMinuteOffset, FormatDateHourMinuteOffset},
	{fieldMonth | fieldDay | fieldHour | fieldOffset, FormatDateHourOffset, FormatDateHourOffset},
	{fieldMonth | fieldDay | fieldHour | fieldMinute | fieldSecond, FormatDateTime, FormatDateTime},
	{fieldMonth | fieldDay | fieldHour | fieldMinute, FormatDateHourMinute, FormatDateHourMinute},
	{fieldMonth | fieldDay | fieldHour, FormatDateHour, FormatDateHour},
	{fieldMonth | fieldDay, FormatYearMonthDay, FormatYearMonthDay},
	{fieldMonth, FormatYearMonth, FormatYearMonth},
	{0, FormatYear, FormatYear},
}

// selectFormats returns the canonical and display format for the given set
// of explicitly present fields.
func selectFormats(present field) (canonical, display Format) {
	for _, level := range formatLevels {
		if present&level.required == level.required {
			return level.canonical, level.display
		}
	}
	// The zero-mask level always matches.
	return FormatYear, FormatYear
}

// Canonical re-serializes the parsed value in its canonical machine-oriented
// form. Re-parsing the result yields the same set of explicit fields.
func (p *ParsedInstant) Canonical() string {
	var b strings.Builder
	writeYear(&b, p.Year)

	writeDate := func() {
		b.WriteByte('-')
		writePadded(&b, p.MonthNorm)
		b.WriteByte('-')
		writePadded(&b, p.DayNorm)
	}
	writeTime := func(minute, second bool) {
		b.WriteByte('T')
		writePadded(&b, p.HourNorm)
		if minute {
			b.WriteByte(':')
			writePadded(&b, p.MinuteNorm)
		}
		if second {
			b.WriteByte(':')
			writePadded(&b, p.SecondNorm)
		}
	}

	switch p.CanonicalFormat {
	case FormatYear:
	case FormatYearMonth:
		b.WriteByte('-')
		writePadded(&b, p.MonthNorm)
	case FormatYearMonthDay:
		writeDate()
	case FormatDateHour:
		writeDate()
		writeTime(false, false)
	case FormatDateHourMinute:
		writeDate()
		writeTime(true, false)
	case FormatDateTime:
		writeDate()
		writeTime(true, true)
	case FormatDateHourOffset:
		writeDate()
		writeTime(false, false)
		b.WriteString(p.OffsetNorm)
	case FormatDateHourMinuteOffset:
		writeDate()
		writeTime(true, false)
		b.WriteString(p.OffsetNorm)
	case FormatDateTimeOffset:
		writeDate()
		writeTime(true, true)
		b.WriteString(p.OffsetNorm)
	}
	return b.String()
}

// writeYear writes a signed year zero-padded to at least four digits.
func writeYear(b *strings.Builder, year int64) {
	if year < 0 {
		b.WriteByte('-')
		year = -year
	}
	s := strconv.FormatInt(year, 10)
	for pad := 4 - len(s); pad > 0; pad-- {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

// writePadded writes a non-negative value zero-padded to two digits.
func writePadded(b *strings.Builder, v int) {
	if v < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(v))
}
