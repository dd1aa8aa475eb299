package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Compiler runs solc in standard-JSON mode
type Compiler struct {
	// Solc is the compiler binary, looked up in PATH when not absolute.
	Solc string
	// BasePath is the root used to resolve source imports.
	BasePath string
	// IncludePaths are extra import roots, e.g. node_modules.
	IncludePaths []string
}

// Compile compiles the source file at path and returns the parsed output together with the raw JSON.
// Diagnostics of severity "error" are returned as an error.
func (c *Compiler) Compile(ctx context.Context, path string) (*CompilerOutput, []byte, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read source %s: %w", path, err)
	}

	input, err := json.Marshal(NewCompilerInput(filepath.Base(path), string(source)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode compiler input: %w", err)
	}

	args := []string{"--standard-json"}
	if c.BasePath != "" {
		args = append(args, "--base-path", c.BasePath)
	}
	for _, p := range c.IncludePaths {
		args = append(args, "--include-path", p)
	}

	solc := c.Solc
	if solc == "" {
		solc = "solc"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, solc, args...)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, nil, fmt.Errorf("failed to run %s: %w: %s", solc, err, strings.TrimSpace(stderr.String()))
	}

	var out CompilerOutput
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return nil, nil, fmt.Errorf("failed to decode compiler output: %w", err)
	}
	if err := out.Err(); err != nil {
		return &out, stdout.Bytes(), err
	}

	return &out, stdout.Bytes(), nil
}
