// Package contracts holds the Solidity sources and their compiled artifact.
// cmd/compile-token regenerates eip-3009-token.json from Token.sol.
package contracts

import _ "embed"

// TestTokenArtifact is the solc standard-JSON output for Token.sol.
//
//go:embed eip-3009-token.json
var TestTokenArtifact []byte
