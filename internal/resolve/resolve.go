// Package resolve turns offset expressions into target timestamps.
package resolve

import (
	"context"
	"time"

	"github.com/spiffcs/punchcard/internal/biduration"
	"github.com/spiffcs/punchcard/internal/log"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of resolving one expression against a base time.
type Result struct {
	Input     string     `json:"input" yaml:"input"`
	Direction string     `json:"direction,omitempty" yaml:"direction,omitempty"`
	Magnitude string     `json:"magnitude,omitempty" yaml:"magnitude,omitempty"`
	Offset    string     `json:"offset,omitempty" yaml:"offset,omitempty"`
	Hours     string     `json:"hours,omitempty" yaml:"hours,omitempty"`
	Target    *time.Time `json:"target,omitempty" yaml:"target,omitempty"`
	Error     string     `json:"error,omitempty" yaml:"error,omitempty"`

	Err error `json:"-" yaml:"-"`
}

// Failed reports whether the expression could not be parsed.
func (r Result) Failed() bool {
	return r.Err != nil
}

// One parses input and shifts base by it.
func One(input string, base time.Time) Result {
	b, err := biduration.Parse(input)
	if err != nil {
		log.Debug("could not parse offset", "input", input, "error", err)
		return Result{Input: input, Err: err, Error: err.Error()}
	}

	m, dir := b.Magnitude()
	target := b.AddTo(base)
	log.Trace("resolved offset", "input", input, "offset", b.Duration(), "target", target)

	return Result{
		Input:     input,
		Direction: dir.String(),
		Magnitude: m.String(),
		Offset:    b.FriendlyString(),
		Hours:     b.FriendlyHoursString(),
		Target:    &target,
	}
}

// All resolves every input against base using up to workers goroutines.
// Results keep the order of inputs; parse failures are reported per result
// and only context cancellation fails the whole call.
func All(ctx context.Context, inputs []string, base time.Time, workers int) ([]Result, error) {
	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = One(input, base)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CountFailed returns how many results failed to parse.
func CountFailed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}
