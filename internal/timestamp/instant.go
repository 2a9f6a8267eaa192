package timestamp

import (
	"math"

	"partiso/internal/calendar"
)

// Instant is an absolute point in time, counted in whole seconds since the
// Unix epoch on the proleptic Gregorian calendar.
type Instant int64

// Unix returns the instant as seconds since the Unix epoch.
func (i Instant) Unix() int64 { return int64(i) }

const secondsPerDay = 86400

// buildInstant converts normalized components plus a UTC offset (in seconds
// east of UTC) into an Instant. The construction never consults the process
// timezone. Overflow is reported as a ConstructionError; it cannot occur for
// years that passed range validation, the check is defensive.
func buildInstant(year int64, month, day, hour, minute, second int, offsetSeconds int64) (Instant, error) {
	days := calendar.DaysFromEpoch(year, month, day)
	if days > math.MaxInt64/secondsPerDay || days < math.MinInt64/secondsPerDay {
		return 0, &ParseError{Type: ConstructionError, Reason: "date is outside the representable instant range"}
	}
	secs := days * secondsPerDay
	clock := int64(hour)*3600 + int64(minute)*60 + int64(second) - offsetSeconds
	sum := secs + clock
	if (clock > 0 && sum < secs) || (clock < 0 && sum > secs) {
		return 0, &ParseError{Type: ConstructionError, Reason: "instant overflows a 64-bit second count"}
	}
	return Instant(sum), nil
}
