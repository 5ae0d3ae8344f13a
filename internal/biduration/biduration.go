// Package biduration provides a signed duration that can point into the future
// or into the past, parsed from and rendered to human-readable text.
package biduration

import (
	"math"
	"time"
)

// Direction tells whether a duration points into the future or into the past.
type Direction int

const (
	// Forward durations are added to now to get a future time.
	Forward Direction = iota
	// Backward durations are subtracted from now to get a past time.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Magnitude is the unsigned size of a duration in nanoseconds.
type Magnitude uint64

// Seconds returns the number of whole seconds in the magnitude.
func (m Magnitude) Seconds() uint64 {
	return uint64(m) / uint64(time.Second)
}

// BiDuration is a duration directed either forward or backward in time.
// The sign of the wrapped duration is the only carrier of direction;
// zero is treated as Forward.
type BiDuration struct {
	d time.Duration
}

// New wraps an already signed duration.
func New(d time.Duration) BiDuration {
	return BiDuration{d: d}
}

// FromMagnitude combines an unsigned magnitude with a direction.
// It fails with ErrOutOfRange when the directed magnitude does not fit in a
// signed duration. A backward magnitude of 1<<63 is math.MinInt64.
func FromMagnitude(m Magnitude, dir Direction) (BiDuration, error) {
	if uint64(m) > math.MaxInt64 {
		if dir == Backward && uint64(m) == 1<<63 {
			return BiDuration{d: math.MinInt64}, nil
		}
		return BiDuration{}, &ParseError{
			Err:    ErrOutOfRange,
			Input:  m.String(),
			Reason: "magnitude exceeds the largest representable duration",
		}
	}
	d := time.Duration(m)
	if dir == Backward {
		d = -d
	}
	return BiDuration{d: d}, nil
}

// Duration returns the signed duration.
func (b BiDuration) Duration() time.Duration {
	return b.d
}

// Direction returns Backward for strictly negative durations and Forward otherwise.
func (b BiDuration) Direction() Direction {
	if b.d < 0 {
		return Backward
	}
	return Forward
}

// IsZero reports whether the duration is empty.
func (b BiDuration) IsZero() bool {
	return b.d == 0
}

// Magnitude splits the duration into its unsigned size and direction.
// It never fails: the most negative duration has a magnitude of exactly 1<<63.
func (b BiDuration) Magnitude() (Magnitude, Direction) {
	if b.d < 0 {
		// -(d+1) cannot overflow, even for math.MinInt64.
		return Magnitude(uint64(-(b.d + 1)) + 1), Backward
	}
	return Magnitude(b.d), Forward
}

// StdDuration returns the magnitude as a non-negative time.Duration along with
// the direction. Only math.MinInt64 has a magnitude too large for that.
func (b BiDuration) StdDuration() (time.Duration, Direction, error) {
	m, dir := b.Magnitude()
	if uint64(m) > math.MaxInt64 {
		return 0, dir, &ParseError{
			Err:    ErrOutOfRange,
			Input:  m.String(),
			Reason: "magnitude does not fit in an unsigned conversion of the signed range",
		}
	}
	return time.Duration(m), dir, nil
}

// Negate flips the direction of the duration.
func (b BiDuration) Negate() (BiDuration, error) {
	if b.d == math.MinInt64 {
		return BiDuration{}, &ParseError{
			Err:    ErrOutOfRange,
			Input:  b.FriendlyString(),
			Reason: "cannot negate the most negative duration",
		}
	}
	return BiDuration{d: -b.d}, nil
}

// AddTo shifts t by the signed duration.
func (b BiDuration) AddTo(t time.Time) time.Time {
	return t.Add(b.d)
}
