package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/spiffcs/punchcard/internal/biduration"
)

var timeOfDayRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// Now returns the current local time with seconds precision.
func Now() time.Time {
	return time.Now().Truncate(time.Second)
}

// ParseTimeOfDay parses a time string in HH:MM format.
func ParseTimeOfDay(value string) (hour, minute int, err error) {
	matches := timeOfDayRe.FindStringSubmatch(value)
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid time format: %s", value)
	}

	hour, _ = strconv.Atoi(matches[1])
	minute, _ = strconv.Atoi(matches[2])
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time value: %s", value)
	}

	return hour, minute, nil
}

// ParseWhen parses a timestamp given as RFC 3339, as an ISO 8601 datetime
// without zone (interpreted in fallback's location), or as HH:MM on
// fallback's day. An empty value returns fallback.
func ParseWhen(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", value, fallback.Location()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", value, fallback.Location()); err == nil {
		return t, nil
	}

	hour, minute, err := ParseTimeOfDay(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse time: %s", value)
	}

	return time.Date(fallback.Year(), fallback.Month(), fallback.Day(), hour, minute, 0, 0, fallback.Location()), nil
}

// Elapsed returns the signed span from since to now. It is backward when
// since lies in the future.
func Elapsed(since, now time.Time) biduration.BiDuration {
	return biduration.New(now.Sub(since))
}
