package ethereum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Test token location inside the compiled artifact
const (
	TestTokenFile     = "Token.sol"
	TestTokenContract = "Token"
)

var (
	ErrContractNotFound = errors.New("contract not found in artifact")
	ErrEmptyBytecode    = errors.New("artifact has no bytecode")
)

// Artifact is a compiled contract ready for deployment
type Artifact struct {
	ABI      abi.ABI
	Bytecode []byte
}

// CompilerInput is the solc standard-JSON input document
type CompilerInput struct {
	Language string                `json:"language"`
	Sources  map[string]SourceUnit `json:"sources"`
	Settings CompilerSettings      `json:"settings"`
}

// SourceUnit holds the inline content of one source file
type SourceUnit struct {
	Content string `json:"content"`
}

// CompilerSettings selects the compiler outputs
type CompilerSettings struct {
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

// CompilerOutput is the subset of the solc standard-JSON output used for deployment
type CompilerOutput struct {
	Errors    []CompilerMessage                      `json:"errors,omitempty"`
	Contracts map[string]map[string]CompiledContract `json:"contracts"`
}

// CompilerMessage is a solc diagnostic
type CompilerMessage struct {
	Severity         string `json:"severity"`
	Type             string `json:"type"`
	FormattedMessage string `json:"formattedMessage"`
	Message          string `json:"message"`
}

// CompiledContract is one entry of contracts[file][name]
type CompiledContract struct {
	ABI json.RawMessage `json:"abi"`
	EVM struct {
		Bytecode struct {
			Object string `json:"object"`
		} `json:"bytecode"`
	} `json:"evm"`
}

// NewCompilerInput builds a standard-JSON input for a single source file with every output selected
func NewCompilerInput(file, source string) *CompilerInput {
	return &CompilerInput{
		Language: "Solidity",
		Sources:  map[string]SourceUnit{file: {Content: source}},
		Settings: CompilerSettings{
			OutputSelection: map[string]map[string][]string{
				"*": {"*": {"*"}},
			},
		},
	}
}

// Err returns the compiler diagnostics of severity "error", if any
func (o *CompilerOutput) Err() error {
	var msgs []string
	for _, m := range o.Errors {
		if m.Severity != "error" {
			continue
		}
		msg := m.FormattedMessage
		if msg == "" {
			msg = m.Message
		}
		msgs = append(msgs, strings.TrimSpace(msg))
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("solc reported %d error(s):\n%s", len(msgs), strings.Join(msgs, "\n"))
}

// Artifact extracts contracts[file][name] as a deployable artifact
func (o *CompilerOutput) Artifact(file, name string) (*Artifact, error) {
	contract, ok := o.Contracts[file][name]
	if !ok {
		return nil, fmt.Errorf("%w: %s:%s", ErrContractNotFound, file, name)
	}

	parsed, err := abi.JSON(strings.NewReader(string(contract.ABI)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s:%s: %w", file, name, err)
	}

	object := strings.TrimSpace(contract.EVM.Bytecode.Object)
	if object == "" {
		return nil, fmt.Errorf("%w: %s:%s", ErrEmptyBytecode, file, name)
	}

	return &Artifact{
		ABI:      parsed,
		Bytecode: common.FromHex(object),
	}, nil
}

// ParseArtifact decodes a solc standard-JSON output and extracts contracts[file][name]
func ParseArtifact(data []byte, file, name string) (*Artifact, error) {
	var out CompilerOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}
	return out.Artifact(file, name)
}

// LoadArtifact reads a solc standard-JSON output file and extracts contracts[file][name]
func LoadArtifact(path, file, name string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	return ParseArtifact(data, file, name)
}

// WriteArtifact writes a compiler output as indented JSON, creating parent directories
func WriteArtifact(path string, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to indent artifact: %w", err)
	}
	buf.WriteByte('\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", path, err)
	}
	return nil
}
