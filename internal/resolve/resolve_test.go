package resolve

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spiffcs/punchcard/internal/biduration"
)

func TestOne(t *testing.T) {
	base := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	r := One("1h 30m ago", base)
	if r.Failed() {
		t.Fatalf("unexpected error: %v", r.Err)
	}
	if r.Direction != "backward" {
		t.Errorf("expected backward, got %q", r.Direction)
	}
	if r.Offset != "1h 30m ago" {
		t.Errorf("expected offset %q, got %q", "1h 30m ago", r.Offset)
	}
	if r.Hours != "1 hour 30 minutes" {
		t.Errorf("expected hours %q, got %q", "1 hour 30 minutes", r.Hours)
	}
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	if r.Target == nil || !r.Target.Equal(want) {
		t.Errorf("expected target %v, got %v", want, r.Target)
	}
}

func TestOneFailure(t *testing.T) {
	r := One("in 1h ago", time.Now())
	if !r.Failed() {
		t.Fatal("expected failure")
	}
	if !errors.Is(r.Err, biduration.ErrBothDirections) {
		t.Errorf("expected ErrBothDirections, got %v", r.Err)
	}
	if r.Error == "" || r.Target != nil {
		t.Errorf("expected error text and no target, got %+v", r)
	}
}

func TestAllKeepsOrder(t *testing.T) {
	base := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	inputs := []string{"in 1h", "1x", "2h ago", "", "in 1d"}

	results, err := All(context.Background(), inputs, base, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(inputs) {
		t.Fatalf("expected %d results, got %d", len(inputs), len(results))
	}
	for i, r := range results {
		if r.Input != inputs[i] {
			t.Errorf("result %d: expected input %q, got %q", i, inputs[i], r.Input)
		}
	}
	if got := CountFailed(results); got != 2 {
		t.Errorf("expected 2 failures, got %d", got)
	}
	if !results[4].Target.Equal(base.Add(24 * time.Hour)) {
		t.Errorf("unexpected target for %q: %v", inputs[4], results[4].Target)
	}
}

func TestAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := All(ctx, []string{"1h"}, time.Now(), 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
