package logging

import (
	"context"
	"testing"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := WithRunID(context.Background(), "abc-123")
	if got := GetRunID(ctx); got != "abc-123" {
		t.Errorf("GetRunID() = %q, want %q", got, "abc-123")
	}
}

func TestGetRunIDMissing(t *testing.T) {
	if got := GetRunID(context.Background()); got != "" {
		t.Errorf("GetRunID() = %q, want empty for bare context", got)
	}
}

func TestWithRunIDArgs(t *testing.T) {
	ctx := WithRunID(context.Background(), "abc-123")
	args := withRunID(ctx, []any{"path", "main.c"})
	if len(args) != 4 || args[0] != "runID" || args[1] != "abc-123" {
		t.Errorf("withRunID() = %v, want runID prepended", args)
	}
}
