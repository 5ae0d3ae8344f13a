package biduration

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"in 1h 30m", 90 * time.Minute},
		{"1h 30m ago", -90 * time.Minute},
		{"1h 30m", 90 * time.Minute},
		{"1h30m", 90 * time.Minute},
		{"1 h", time.Hour},
		{"  in   2d  ", 48 * time.Hour},
		{"5 minutes 3 seconds ago", -(5*time.Minute + 3*time.Second)},
		{"1w", 7 * 24 * time.Hour},
		{"2 weeks ago", -14 * 24 * time.Hour},
		{"1m", time.Minute},
		{"1ms", time.Millisecond},
		{"1mo", 2_630_016 * time.Second},
		{"1M", 2_630_016 * time.Second},
		{"1 month", 2_630_016 * time.Second},
		{"1y", 31_557_600 * time.Second},
		{"3us 4ns", 3*time.Microsecond + 4*time.Nanosecond},
		{"7µs", 7 * time.Microsecond},
		{"0s", 0},
		{"in 292y", 292 * 31_557_600 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Duration())
		})
	}
}

func TestParseDirections(t *testing.T) {
	tests := []struct {
		input string
		dir   Direction
	}{
		{"in 1h 30m", Forward},
		{"1h 30m ago", Backward},
		{"1h 30m", Forward},
		{"in 0s", Forward},
		{"0s ago", Forward}, // zero has no direction
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)

			m, dir := got.Magnitude()
			assert.Equal(t, tt.dir, dir)
			if tt.input != "in 0s" && tt.input != "0s ago" {
				assert.Equal(t, Magnitude(90*time.Minute), m)
			}
		})
	}
}

func TestParseDuplicateUnitsAreSummed(t *testing.T) {
	got, err := Parse("1h 2h")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Hour, got.Duration())

	got, err = Parse("30m 1h 30m ago")
	require.NoError(t, err)
	assert.Equal(t, -2*time.Hour, got.Duration())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrInvalidDirection},
		{"whitespace", "   ", ErrInvalidDirection},
		{"both markers", "in 1h ago", ErrBothDirections},
		{"only markers", "in ago", ErrBothDirections},
		{"unknown unit", "1x", ErrInvalidDuration},
		{"missing digits", "h", ErrInvalidDuration},
		{"missing unit", "1", ErrInvalidDuration},
		{"fraction", "1.5h", ErrInvalidDuration},
		{"bare in", "in", ErrInvalidDuration},
		{"bare ago", "ago", ErrInvalidDuration},
		{"wrong case unit", "1H", ErrInvalidDuration},
		{"huge count", "99999999999999999999s", ErrInvalidDuration},
		{"unit overflow", "999999999999y", ErrInvalidDuration},
		{"sum overflow", "10000000000s 10000000000s", ErrInvalidDuration},
		{"beyond signed range", "300y", ErrOutOfRange},
		{"beyond signed range backward", "300y ago", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "expected a *ParseError, got %T", err)
		})
	}
}

func TestParseErrorCarriesOffendingInput(t *testing.T) {
	_, err := Parse("in 1h 5x")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "1h 5x", parseErr.Input)
	assert.Contains(t, parseErr.Reason, `"x"`)
	assert.Contains(t, err.Error(), "invalid duration")

	_, err = Parse("   ")
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "   ", parseErr.Input)
}

func TestParseDirection(t *testing.T) {
	dir, body, err := ParseDirection("  in  1h   30m ")
	require.NoError(t, err)
	assert.Equal(t, Forward, dir)
	assert.Equal(t, "1h 30m", body)

	dir, body, err = ParseDirection("1h 30m ago")
	require.NoError(t, err)
	assert.Equal(t, Backward, dir)
	assert.Equal(t, "1h 30m", body)

	// markers only count at the edges
	dir, body, err = ParseDirection("1h in 30m")
	require.NoError(t, err)
	assert.Equal(t, Forward, dir)
	assert.Equal(t, "1h in 30m", body)
}

func TestParseMagnitude(t *testing.T) {
	m, err := ParseMagnitude("1h 30m")
	require.NoError(t, err)
	assert.Equal(t, Magnitude(90*time.Minute), m)

	_, err = ParseMagnitude("")
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ParseMagnitude("1h ago")
	assert.ErrorIs(t, err, ErrInvalidDuration, "markers are not part of the grammar")
}

func TestParseIsSafeForConcurrentUse(t *testing.T) {
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(8)

	for i := 0; i < 200; i++ {
		i := i
		g.Go(func() error {
			input := fmt.Sprintf("%dm ago", i)
			got, err := Parse(input)
			if err != nil {
				return err
			}
			if got.Duration() != -time.Duration(i)*time.Minute {
				return fmt.Errorf("parse %q: got %v", input, got.Duration())
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
