package ethereum

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const artifactJSON = `{
  "errors": [
    {"severity": "warning", "type": "Warning", "formattedMessage": "SPDX license identifier not provided"}
  ],
  "contracts": {
    "Token.sol": {
      "Token": {
        "abi": [
          {"type": "constructor", "stateMutability": "nonpayable", "inputs": [{"name": "supply", "type": "uint256"}]},
          {"type": "function", "name": "decimals", "stateMutability": "view", "inputs": [], "outputs": [{"name": "", "type": "uint8"}]}
        ],
        "evm": {"bytecode": {"object": "60806040"}}
      },
      "Empty": {
        "abi": [],
        "evm": {"bytecode": {"object": ""}}
      }
    }
  }
}`

func TestParseArtifact(t *testing.T) {
	artifact, err := ParseArtifact([]byte(artifactJSON), TestTokenFile, TestTokenContract)
	require.NoError(t, err)

	assert.Equal(t, []byte{0x60, 0x80, 0x60, 0x40}, artifact.Bytecode)
	assert.Len(t, artifact.ABI.Constructor.Inputs, 1)
	assert.Contains(t, artifact.ABI.Methods, "decimals")
}

func TestParseArtifact_Errors(t *testing.T) {
	_, err := ParseArtifact([]byte(artifactJSON), TestTokenFile, "Missing")
	require.ErrorIs(t, err, ErrContractNotFound)

	_, err = ParseArtifact([]byte(artifactJSON), "Other.sol", TestTokenContract)
	require.ErrorIs(t, err, ErrContractNotFound)

	_, err = ParseArtifact([]byte(artifactJSON), TestTokenFile, "Empty")
	require.ErrorIs(t, err, ErrEmptyBytecode)

	_, err = ParseArtifact([]byte("{"), TestTokenFile, TestTokenContract)
	require.ErrorContains(t, err, "failed to decode artifact")
}

func TestLoadArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifact.json")
	require.NoError(t, os.WriteFile(path, []byte(artifactJSON), 0o600))

	artifact, err := LoadArtifact(path, TestTokenFile, TestTokenContract)
	require.NoError(t, err)
	assert.NotEmpty(t, artifact.Bytecode)

	_, err = LoadArtifact(filepath.Join(t.TempDir(), "missing.json"), TestTokenFile, TestTokenContract)
	require.ErrorContains(t, err, "failed to read artifact")
}

func TestNewCompilerInput(t *testing.T) {
	input := NewCompilerInput(TestTokenFile, "contract Token {}")

	raw, err := json.Marshal(input)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"language": "Solidity",
		"sources": {"Token.sol": {"content": "contract Token {}"}},
		"settings": {"outputSelection": {"*": {"*": ["*"]}}}
	}`, string(raw))
}

func TestCompilerOutput_Err(t *testing.T) {
	var out CompilerOutput
	require.NoError(t, json.Unmarshal([]byte(artifactJSON), &out))
	assert.NoError(t, out.Err())

	out.Errors = append(out.Errors,
		CompilerMessage{Severity: "error", Type: "ParserError", FormattedMessage: "ParserError: Expected ';'\n"},
		CompilerMessage{Severity: "error", Type: "TypeError", Message: "Undeclared identifier"},
	)
	err := out.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 error(s)")
	assert.Contains(t, err.Error(), "ParserError: Expected ';'")
	assert.Contains(t, err.Error(), "Undeclared identifier")
}

func TestWriteArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	require.NoError(t, WriteArtifact(path, []byte(`{"contracts":{}}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"contracts\": {}\n}\n", string(data))

	require.Error(t, WriteArtifact(path, []byte("{")))
}
