package logging

import (
	"context"
	"testing"
)

func TestWithLoggerAndFromContext(t *testing.T) {
	tl := NewTestLogger(t)

	ctx := WithLogger(context.Background(), tl.Logger)
	got := FromContext(ctx)
	if got != tl.Logger {
		t.Error("Expected logger from context to match the one stored")
	}

	got.Info().Msg("hello from context")
	if !tl.Contains("hello from context") {
		t.Errorf("Expected captured output to contain message, got %q", tl.Output())
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) != Default() {
		t.Error("Expected default logger for empty context")
	}
	if FromContext(nil) != Default() { //nolint:staticcheck // nil context is part of the contract
		t.Error("Expected default logger for nil context")
	}
}

func TestWithCycleID(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithCycleID(ctx, "cycle-42")

	if got := CycleID(ctx); got != "cycle-42" {
		t.Errorf("Expected cycle ID cycle-42, got %q", got)
	}

	FromContext(ctx).Info().Msg("during cycle")
	if !tl.Contains("cycle-42") {
		t.Errorf("Expected log output to carry cycle_id field, got %q", tl.Output())
	}
}

func TestCycleIDMissing(t *testing.T) {
	if got := CycleID(context.Background()); got != "" {
		t.Errorf("Expected empty cycle ID, got %q", got)
	}
}
