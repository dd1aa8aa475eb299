package ethereum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/evm-transfers/pkg/app/errors"
	"github.com/chainsafe/evm-transfers/pkg/config"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

// newRPCServer answers JSON-RPC calls from a fixed method table
func newRPCServer(t *testing.T, results map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if result, ok := results[req.Method]; ok {
			resp["result"] = result
		} else {
			resp["error"] = map[string]any{"code": -32601, "message": "the method " + req.Method + " does not exist"}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), &config.EthereumConfig{RPCURL: url}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestClient_Calls(t *testing.T) {
	srv := newRPCServer(t, map[string]any{
		"eth_chainId":               "0x539",
		"eth_blockNumber":           "0x10",
		"eth_syncing":               false,
		"eth_getBalance":            "0xde0b6b3a7640000",
		"eth_gasPrice":              "0x3b9aca00",
		"eth_getTransactionCount":   "0x2",
		"eth_estimateGas":           "0x5208",
		"eth_getTransactionReceipt": nil,
	})
	client := newTestClient(t, srv.URL)
	ctx := context.Background()

	chainID, err := client.ChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1337), chainID.Int64())

	head, err := client.BlockNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), head)

	progress, err := client.SyncProgress(ctx)
	require.NoError(t, err)
	assert.Nil(t, progress)

	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	balance, err := client.BalanceAt(ctx, addr, nil)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", balance.String())

	price, err := client.SuggestGasPrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000_000), price.Int64())

	nonce, err := client.PendingNonceAt(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), nonce)

	gas, err := client.EstimateGas(ctx, geth.CallMsg{From: addr, To: &addr})
	require.NoError(t, err)
	assert.Equal(t, uint64(21_000), gas)

	_, err = client.TransactionReceipt(ctx, common.HexToHash("0x01"))
	require.ErrorIs(t, err, geth.NotFound)
}

func TestClient_EstimateGasFailureIsClassified(t *testing.T) {
	srv := newRPCServer(t, map[string]any{})
	client := newTestClient(t, srv.URL)

	_, err := client.EstimateGas(context.Background(), geth.CallMsg{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryEstimationFailed))
}

func TestClient_NodeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := newTestClient(t, url)

	_, err := client.ChainID(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryRPCUnavailable))
}
