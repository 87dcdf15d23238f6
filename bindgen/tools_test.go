package bindgen

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunTools(t *testing.T) {
	tools := []Tool{
		{Name: "ok", Args: []string{"true"}},
		{Name: "quiet", Args: []string{"true"}, FailOnOutput: true},
	}
	if err := runTools(context.Background(), discardLogger(), tools); err != nil {
		t.Fatalf("runTools failed: %v", err)
	}
}

func TestRunToolsNonZeroExit(t *testing.T) {
	tools := []Tool{
		{Name: "ok", Args: []string{"true"}},
		{Name: "boom", Args: []string{"false"}},
	}
	err := runTools(context.Background(), discardLogger(), tools)
	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("runTools = %v, want *ToolError", err)
	}
	if toolErr.Tool != "boom" {
		t.Errorf("Tool = %q, want boom", toolErr.Tool)
	}
}

func TestRunToolsFailOnOutput(t *testing.T) {
	tools := []Tool{
		{Name: "lint", Args: []string{"echo", "unformatted.go"}, FailOnOutput: true},
	}
	err := runTools(context.Background(), discardLogger(), tools)
	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("runTools = %v, want *ToolError", err)
	}
	if !strings.Contains(err.Error(), "unformatted.go") {
		t.Errorf("captured output missing from error: %v", err)
	}
}
