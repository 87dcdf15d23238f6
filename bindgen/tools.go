package bindgen

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
)

// Tool is one external check run over the destination after emission.
// Tools run sequentially with fixed arguments; a non-zero exit aborts the
// run with the captured output attached. FailOnOutput additionally treats
// any output as failure, matching the gofmt -l convention.
type Tool struct {
	Name         string
	Args         []string
	Dir          string
	FailOnOutput bool
}

// defaultTools formats, type-checks, and lints the destination directory.
func defaultTools(dir string) []Tool {
	return []Tool{
		{Name: "format", Args: []string{"gofmt", "-l", "-w", "."}, Dir: dir},
		{Name: "typecheck", Args: []string{"go", "vet", "./..."}, Dir: dir},
		{Name: "lint", Args: []string{"gofmt", "-l", "."}, Dir: dir, FailOnOutput: true},
	}
}

// runTools executes each tool in order, failing fast on the first error.
func runTools(ctx context.Context, logger *slog.Logger, tools []Tool) error {
	for _, tool := range tools {
		logger.Debug("running tool", "tool", tool.Name, "args", tool.Args)
		cmd := exec.CommandContext(ctx, tool.Args[0], tool.Args[1:]...)
		cmd.Dir = tool.Dir
		out, err := cmd.CombinedOutput()
		if err != nil {
			return &ToolError{Tool: tool.Name, Args: tool.Args, Output: out, Err: err}
		}
		if tool.FailOnOutput && len(bytes.TrimSpace(out)) > 0 {
			return &ToolError{Tool: tool.Name, Args: tool.Args, Output: out, Err: errors.New("unexpected output")}
		}
	}
	return nil
}
