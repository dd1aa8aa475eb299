package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/evm-transfers/pkg/ethereum"
	tokenbinding "github.com/chainsafe/evm-transfers/pkg/ethereum/contracts"
)

func TestTestTokenArtifact(t *testing.T) {
	artifact, err := ethereum.ParseArtifact(TestTokenArtifact, ethereum.TestTokenFile, ethereum.TestTokenContract)
	require.NoError(t, err)
	assert.NotEmpty(t, artifact.Bytecode)

	inputs := artifact.ABI.Constructor.Inputs
	require.Len(t, inputs, 5)
	for i, typ := range []string{"string", "string", "string", "uint8", "uint256"} {
		assert.Equal(t, typ, inputs[i].Type.String())
	}

	// every call the service binding makes must exist with the same selector
	binding, err := tokenbinding.EIP3009TokenMetaData.GetAbi()
	require.NoError(t, err)
	for name, method := range binding.Methods {
		got, ok := artifact.ABI.Methods[name]
		if assert.True(t, ok, name) {
			assert.Equal(t, method.ID, got.ID, name)
		}
	}
	assert.Equal(t, binding.Events["Transfer"].ID, artifact.ABI.Events["Transfer"].ID)
}
