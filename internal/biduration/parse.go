package biduration

import (
	"math/bits"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Nominal calendar lengths. Months and years are fixed, not calendar-aware.
const (
	nanosPerSecond = uint64(1_000_000_000)
	secondsPerDay  = uint64(86_400)
	secondsPerYear = uint64(31_557_600) // 365.25 days
	secondsPerMon  = uint64(2_630_016)  // 30.44 days
)

// units maps every accepted unit spelling to its length in nanoseconds.
// Lookup is an exact match on the whole unit word, so "m", "ms", "mo" and
// "month" never shadow each other.
var units = map[string]uint64{
	"ns": 1, "nsec": 1, "nsecs": 1, "nanosecond": 1, "nanoseconds": 1,

	"us": 1_000, "µs": 1_000, "usec": 1_000, "usecs": 1_000,
	"microsecond": 1_000, "microseconds": 1_000,

	"ms": 1_000_000, "msec": 1_000_000, "msecs": 1_000_000,
	"millisecond": 1_000_000, "milliseconds": 1_000_000,

	"s": nanosPerSecond, "sec": nanosPerSecond, "secs": nanosPerSecond,
	"second": nanosPerSecond, "seconds": nanosPerSecond,

	"m": 60 * nanosPerSecond, "min": 60 * nanosPerSecond, "mins": 60 * nanosPerSecond,
	"minute": 60 * nanosPerSecond, "minutes": 60 * nanosPerSecond,

	"h": 3_600 * nanosPerSecond, "hr": 3_600 * nanosPerSecond, "hrs": 3_600 * nanosPerSecond,
	"hour": 3_600 * nanosPerSecond, "hours": 3_600 * nanosPerSecond,

	"d": secondsPerDay * nanosPerSecond, "day": secondsPerDay * nanosPerSecond,
	"days": secondsPerDay * nanosPerSecond,

	"w": 7 * secondsPerDay * nanosPerSecond, "wk": 7 * secondsPerDay * nanosPerSecond,
	"wks": 7 * secondsPerDay * nanosPerSecond, "week": 7 * secondsPerDay * nanosPerSecond,
	"weeks": 7 * secondsPerDay * nanosPerSecond,

	"M": secondsPerMon * nanosPerSecond, "mo": secondsPerMon * nanosPerSecond,
	"month": secondsPerMon * nanosPerSecond, "months": secondsPerMon * nanosPerSecond,

	"y": secondsPerYear * nanosPerSecond, "yr": secondsPerYear * nanosPerSecond,
	"yrs": secondsPerYear * nanosPerSecond, "year": secondsPerYear * nanosPerSecond,
	"years": secondsPerYear * nanosPerSecond,
}

// Parse parses a directed duration such as "in 1h 30m", "1h 30m" or "1h 30m ago".
// A leading "in" or no marker at all means Forward, a trailing "ago" means Backward.
func Parse(s string) (BiDuration, error) {
	dir, body, err := ParseDirection(s)
	if err != nil {
		return BiDuration{}, err
	}

	m, err := ParseMagnitude(body)
	if err != nil {
		return BiDuration{}, err
	}

	b, err := FromMagnitude(m, dir)
	if err != nil {
		return BiDuration{}, &ParseError{
			Err:    ErrOutOfRange,
			Input:  body,
			Reason: "duration is too large",
		}
	}
	return b, nil
}

// ParseDirection detects the "in" prefix or the "ago" suffix and returns the
// direction together with the remaining words joined by single spaces.
func ParseDirection(s string) (Direction, string, error) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return Forward, "", &ParseError{Err: ErrInvalidDirection, Input: s}
	}

	explicitForward := words[0] == "in"
	backward := words[len(words)-1] == "ago"

	dir := Forward
	switch {
	case explicitForward && backward:
		return Forward, "", &ParseError{Err: ErrBothDirections, Input: s}
	case explicitForward:
		words = words[1:]
	case backward:
		dir = Backward
		words = words[:len(words)-1]
	}

	return dir, strings.Join(words, " "), nil
}

// ParseMagnitude parses an undirected duration made of "count unit" tokens
// such as "1h 30m", "2 days" or "1h30m". Tokens are summed, so repeated units
// add up: "1h 2h" is three hours.
func ParseMagnitude(s string) (Magnitude, error) {
	body := strings.TrimSpace(s)
	if body == "" {
		return 0, invalidDuration(s, "empty duration")
	}

	var total uint64
	pos := 0
	for pos < len(body) {
		pos = skipSpace(body, pos)
		if pos >= len(body) {
			break
		}

		start := pos
		for pos < len(body) && body[pos] >= '0' && body[pos] <= '9' {
			pos++
		}
		if pos == start {
			return 0, invalidDuration(body, "expected a number at %q", body[start:])
		}
		digits := body[start:pos]

		pos = skipSpace(body, pos)
		unitStart := pos
		for pos < len(body) {
			r, size := utf8.DecodeRuneInString(body[pos:])
			if !unicode.IsLetter(r) {
				break
			}
			pos += size
		}
		name := body[unitStart:pos]
		if name == "" {
			return 0, invalidDuration(body, "missing unit after %q", digits)
		}

		perUnit, ok := units[name]
		if !ok {
			return 0, invalidDuration(body, "unknown unit %q", name)
		}

		count, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return 0, invalidDuration(body, "number %q is too large", digits)
		}

		hi, lo := bits.Mul64(count, perUnit)
		if hi != 0 {
			return 0, invalidDuration(body, "%s%s overflows", digits, name)
		}
		sum, carry := bits.Add64(total, lo, 0)
		if carry != 0 {
			return 0, invalidDuration(body, "total duration overflows")
		}
		total = sum
	}

	return Magnitude(total), nil
}

func skipSpace(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}
