package timestamp

import "regexp"

// isoPattern matches extended ISO 8601 date/time values with partial
// precision: a hyphen-separated date, an optional T-prefixed colon-separated
// time, and an optional numeric offset or Z. The year requires at least four
// digits (zero-padded below 1000) and may carry a sign; years beyond ±9999
// simply use more digits. Basic (separator-free) notation does not match.
var isoPattern = regexp.MustCompile(
	`^(?P<date>(?P<year>[+-]?\d{4,})` +
		`(?:-(?P<month>\d{1,2})` +
		`(?:-(?P<day>\d{1,2}))?)?)` +
		`(?P<time>T(?P<hour>\d{1,2})` +
		`(?::(?P<minute>\d{1,2})` +
		`(?::(?P<second>\d{1,2}))?)?)?` +
		`(?P<offset>Z|(?P<offset_hour>[+-]\d{1,2}):(?P<offset_minute>\d{1,2}))?$`)

// captures holds the raw substrings extracted from a matched value. An empty
// string means the group was absent from the input.
type captures struct {
	date         string
	year         string
	month        string
	day          string
	time         string
	hour         string
	minute       string
	second       string
	offset       string
	offsetHour   string
	offsetMinute string
}

// match decomposes value against the ISO 8601 grammar. It reports false when
// the value is not syntactically ISO 8601.
func match(value string) (captures, bool) {
	groups := isoPattern.FindStringSubmatch(value)
	if groups == nil {
		return captures{}, false
	}

	var c captures
	for i, name := range isoPattern.SubexpNames() {
		switch name {
		case "date":
			c.date = groups[i]
		case "year":
			c.year = groups[i]
		case "month":
			c.month = groups[i]
		case "day":
			c.day = groups[i]
		case "time":
			c.time = groups[i]
		case "hour":
			c.hour = groups[i]
		case "minute":
			c.minute = groups[i]
		case "second":
			c.second = groups[i]
		case "offset":
			c.offset = groups[i]
		case "offset_hour":
			c.offsetHour = groups[i]
		case "offset_minute":
			c.offsetMinute = groups[i]
		}
	}
	return c, true
}
