package biduration

import (
	"fmt"
	"strings"
)

// String renders the magnitude with the largest units first, e.g. "1h 30m"
// or "2days 4h". The output parses back to the same magnitude.
func (m Magnitude) String() string {
	if m == 0 {
		return "0s"
	}

	secs := m.Seconds()
	nanos := uint64(m) % nanosPerSecond

	years := secs / secondsPerYear
	rem := secs % secondsPerYear
	months := rem / secondsPerMon
	rem %= secondsPerMon
	days := rem / secondsPerDay
	rem %= secondsPerDay

	var parts []string
	parts = appendWord(parts, years, "year")
	parts = appendWord(parts, months, "month")
	parts = appendWord(parts, days, "day")
	parts = appendAbbrev(parts, rem/3600, "h")
	parts = appendAbbrev(parts, rem%3600/60, "m")
	parts = appendAbbrev(parts, rem%60, "s")
	parts = appendAbbrev(parts, nanos/1_000_000, "ms")
	parts = appendAbbrev(parts, nanos/1_000%1_000, "us")
	parts = appendAbbrev(parts, nanos%1_000, "ns")

	return strings.Join(parts, " ")
}

func appendWord(parts []string, n uint64, name string) []string {
	if n == 0 {
		return parts
	}
	if n > 1 {
		name += "s"
	}
	return append(parts, fmt.Sprintf("%d%s", n, name))
}

func appendAbbrev(parts []string, n uint64, name string) []string {
	if n == 0 {
		return parts
	}
	return append(parts, fmt.Sprintf("%d%s", n, name))
}

// String implements fmt.Stringer.
func (b BiDuration) String() string {
	return b.FriendlyString()
}

// FriendlyString renders the duration with its direction: "in 1h 30m" for
// forward durations and "1h 30m ago" for backward ones.
func (b BiDuration) FriendlyString() string {
	m, dir := b.Magnitude()
	if dir == Backward {
		return m.String() + " ago"
	}
	return "in " + m.String()
}

// FriendlyHoursString renders the magnitude rounded to the nearest minute as
// hours and minutes, e.g. "1 hour 5 minutes". It is meant for status
// displays: a 30 second remainder rounds up, and 59m40s shows as "1 hour".
func (b BiDuration) FriendlyHoursString() string {
	m, _ := b.Magnitude()
	secs := m.Seconds()
	if secs == 0 {
		return "0 minutes"
	}

	var rounded uint64
	if secs%60 >= 30 {
		rounded = 1
	}
	minutes := secs/60 + rounded
	hours := minutes / 60
	minutes %= 60

	var parts []string
	parts = appendCount(parts, hours, "hour")
	parts = appendCount(parts, minutes, "minute")
	if len(parts) == 0 {
		return "0 minutes"
	}
	return strings.Join(parts, " ")
}

func appendCount(parts []string, n uint64, name string) []string {
	if n == 0 {
		return parts
	}
	if n > 1 {
		name += "s"
	}
	return append(parts, fmt.Sprintf("%d %s", n, name))
}
