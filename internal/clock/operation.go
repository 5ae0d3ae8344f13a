// Package clock describes clock in and clock out requests and the timestamps
// they resolve to.
package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spiffcs/punchcard/internal/biduration"
)

// Type is the kind of clock operation.
type Type int

const (
	// Toggle clocks out when clocked in, and in otherwise.
	Toggle Type = iota
	In
	Out
)

func (t Type) String() string {
	switch t {
	case In:
		return "Clock in"
	case Out:
		return "Clock out"
	default:
		return "Toggle clock"
	}
}

// ParseType parses "in", "out" or "toggle".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in":
		return In, nil
	case "out":
		return Out, nil
	case "toggle", "":
		return Toggle, nil
	default:
		return Toggle, fmt.Errorf("unknown clock type %q (use in, out or toggle)", s)
	}
}

// ErrNoProject is returned when an operation names no project.
var ErrNoProject = errors.New("a project is required")

// Operation is a single clock request for a project, optionally shifted
// away from the current time by an offset.
type Operation struct {
	Type    Type
	Project string
	Offset  *biduration.BiDuration
}

// Validate checks that the operation can be applied.
func (o Operation) Validate() error {
	if strings.TrimSpace(o.Project) == "" {
		return ErrNoProject
	}
	return nil
}

// Effective returns the timestamp the operation applies to.
func (o Operation) Effective(now time.Time) time.Time {
	if o.Offset == nil {
		return now
	}
	return o.Offset.AddTo(now)
}
