// Package calendar provides proleptic Gregorian calendar arithmetic for Partiso.
//
// All functions are pure and operate on int64 years so they stay exact over
// the full range of years representable by a 64-bit second-resolution
// timestamp (roughly ±2.9e11 years). They deliberately avoid time.Time, whose
// behavior is not defined that far out.
package calendar

// IsLeap reports whether year is a leap year under the proleptic Gregorian
// rule: divisible by 4, except centuries not divisible by 400.
func IsLeap(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// lastDays[m] is the day count of month m in a non-leap year.
var lastDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// LastDay returns the number of days in the given month of the given year.
// Month must be in [1,12]; LastDay returns 0 for anything else.
func LastDay(year int64, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return lastDays[month]
}

// daysPer400Years is the length of the full repeating Gregorian cycle.
const daysPer400Years = 146097

// floorDiv returns the quotient of a/b rounded toward negative infinity.
// Go's integer division truncates toward zero, which is wrong for the
// negative years this package must handle.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// DaysFromEpoch returns the number of days from 1970-01-01 to the given
// calendar date. The date may precede the epoch, in which case the result is
// negative. Month must be in [1,12] and day in [1,LastDay(year,month)];
// results for other inputs are unspecified.
//
// The year is decomposed into 400-year Gregorian cycles counted from March 1
// so that the leap day falls at the end of the cycle-relative year. Floor
// division keeps the decomposition exact for negative years.
func DaysFromEpoch(year int64, month, day int) int64 {
	y := year
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yearOfEra := y - era*400 // [0, 399]

	var monthFromMarch int // March = 0, ..., February = 11
	if month > 2 {
		monthFromMarch = month - 3
	} else {
		monthFromMarch = month + 9
	}
	dayOfYear := int64((153*monthFromMarch+2)/5 + day - 1) // [0, 365]
	dayOfEra := yearOfEra*365 + yearOfEra/4 - yearOfEra/100 + dayOfYear

	// 719468 days lie between 0000-03-01 and 1970-01-01.
	const epochDays = 719468
	return era*daysPer400Years + dayOfEra - epochDays
}
