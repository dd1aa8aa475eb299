package ethereum

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSolc writes an executable that records its arguments and stdin and prints output
func fakeSolc(t *testing.T, output string) (string, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script compiler stub requires a POSIX shell")
	}

	dir := t.TempDir()
	record := filepath.Join(dir, "record")
	outFile := filepath.Join(dir, "output.json")
	require.NoError(t, os.WriteFile(outFile, []byte(output), 0o600))

	script := "#!/bin/sh\necho \"$@\" > " + record + ".args\ncat > " + record + ".stdin\ncat " + outFile + "\n"
	solc := filepath.Join(dir, "solc")
	require.NoError(t, os.WriteFile(solc, []byte(script), 0o700))
	return solc, record
}

func writeSource(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), TestTokenFile)
	require.NoError(t, os.WriteFile(path, []byte("contract Token {}"), 0o600))
	return path
}

func TestCompiler_Compile(t *testing.T) {
	solc, record := fakeSolc(t, artifactJSON)
	source := writeSource(t)

	c := &Compiler{Solc: solc, BasePath: "contracts", IncludePaths: []string{"node_modules"}}
	out, raw, err := c.Compile(context.Background(), source)
	require.NoError(t, err)
	assert.JSONEq(t, artifactJSON, string(raw))

	artifact, err := out.Artifact(TestTokenFile, TestTokenContract)
	require.NoError(t, err)
	assert.NotEmpty(t, artifact.Bytecode)

	args, err := os.ReadFile(record + ".args")
	require.NoError(t, err)
	assert.Equal(t, "--standard-json --base-path contracts --include-path node_modules\n", string(args))

	stdin, err := os.ReadFile(record + ".stdin")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"language": "Solidity",
		"sources": {"Token.sol": {"content": "contract Token {}"}},
		"settings": {"outputSelection": {"*": {"*": ["*"]}}}
	}`, string(stdin))
}

func TestCompiler_CompileReportsErrors(t *testing.T) {
	solc, _ := fakeSolc(t, `{"errors":[{"severity":"error","type":"ParserError","formattedMessage":"ParserError: boom"}]}`)

	c := &Compiler{Solc: solc}
	out, _, err := c.Compile(context.Background(), writeSource(t))
	require.ErrorContains(t, err, "ParserError: boom")
	require.NotNil(t, out)
}

func TestCompiler_MissingSource(t *testing.T) {
	c := &Compiler{Solc: "solc"}
	_, _, err := c.Compile(context.Background(), filepath.Join(t.TempDir(), "missing.sol"))
	require.ErrorContains(t, err, "failed to read source")
}
