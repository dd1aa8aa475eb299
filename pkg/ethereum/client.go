package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/evm-transfers/internal/metrics"
	"github.com/chainsafe/evm-transfers/pkg/config"
)

// Client is an instrumented Ethereum JSON-RPC client.
// Every call is counted in metrics and failures are mapped onto service error categories.
type Client struct {
	rpc    *ethclient.Client
	logger *zap.Logger
}

// NewClient connects to the node at cfg.RPCURL
func NewClient(ctx context.Context, cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	rpc, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, ClassifyError("dial", fmt.Errorf("failed to connect to Ethereum RPC: %w", err))
	}

	logger.Info("Connected to Ethereum", zap.String("rpc_url", cfg.RPCURL))

	return &Client{
		rpc:    rpc,
		logger: logger,
	}, nil
}

// Close closes the underlying RPC connection
func (c *Client) Close() {
	if c.rpc != nil {
		c.rpc.Close()
	}
}

// observe records the outcome of a single RPC call and classifies its error
func (c *Client) observe(method string, start time.Time, err error) error {
	metrics.RPCDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RPCCalls.WithLabelValues(method, "error").Inc()
		c.logger.Debug("RPC call failed", zap.String("method", method), zap.Error(err))
		return ClassifyError(method, err)
	}
	metrics.RPCCalls.WithLabelValues(method, "ok").Inc()
	return nil
}

// ChainID returns the chain id reported by the node
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	start := time.Now()
	id, err := c.rpc.ChainID(ctx)
	return id, c.observe("eth_chainId", start, err)
}

// BlockNumber returns the most recent block number
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	start := time.Now()
	n, err := c.rpc.BlockNumber(ctx)
	return n, c.observe("eth_blockNumber", start, err)
}

// SyncProgress returns nil when the node is not syncing
func (c *Client) SyncProgress(ctx context.Context) (*ethereum.SyncProgress, error) {
	start := time.Now()
	p, err := c.rpc.SyncProgress(ctx)
	return p, c.observe("eth_syncing", start, err)
}

// BlockByNumber returns a block with full transactions
func (c *Client) BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error) {
	start := time.Now()
	b, err := c.rpc.BlockByNumber(ctx, number)
	return b, c.observe("eth_getBlockByNumber", start, err)
}

// HeaderByNumber returns a block header; nil number means latest
func (c *Client) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	start := time.Now()
	h, err := c.rpc.HeaderByNumber(ctx, number)
	return h, c.observe("eth_getHeaderByNumber", start, err)
}

// BalanceAt returns the wei balance of account
func (c *Client) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	start := time.Now()
	b, err := c.rpc.BalanceAt(ctx, account, blockNumber)
	return b, c.observe("eth_getBalance", start, err)
}

// CodeAt returns the contract code of the given account
func (c *Client) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	start := time.Now()
	code, err := c.rpc.CodeAt(ctx, contract, blockNumber)
	return code, c.observe("eth_getCode", start, err)
}

// CallContract executes a message call without creating a transaction
func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	start := time.Now()
	out, err := c.rpc.CallContract(ctx, msg, blockNumber)
	return out, c.observe("eth_call", start, err)
}

// PendingCodeAt returns the contract code in the pending state
func (c *Client) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	start := time.Now()
	code, err := c.rpc.PendingCodeAt(ctx, account)
	return code, c.observe("eth_getCode", start, err)
}

// PendingNonceAt returns the next nonce for account
func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	start := time.Now()
	n, err := c.rpc.PendingNonceAt(ctx, account)
	return n, c.observe("eth_getTransactionCount", start, err)
}

// SuggestGasPrice returns the node's legacy gas price
func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	start := time.Now()
	p, err := c.rpc.SuggestGasPrice(ctx)
	return p, c.observe("eth_gasPrice", start, err)
}

// SuggestGasTipCap returns the node's priority fee suggestion
func (c *Client) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	start := time.Now()
	p, err := c.rpc.SuggestGasTipCap(ctx)
	return p, c.observe("eth_maxPriorityFeePerGas", start, err)
}

// EstimateGas estimates the gas needed to execute msg
func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	start := time.Now()
	gas, err := c.rpc.EstimateGas(ctx, msg)
	return gas, c.observe("eth_estimateGas", start, err)
}

// SendTransaction submits a signed transaction
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	start := time.Now()
	err := c.rpc.SendTransaction(ctx, tx)
	return c.observe("eth_sendRawTransaction", start, err)
}

// TransactionReceipt returns ethereum.NotFound while tx is pending
func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	start := time.Now()
	r, err := c.rpc.TransactionReceipt(ctx, txHash)
	if errors.Is(err, ethereum.NotFound) {
		// pending, not a failure
		metrics.RPCCalls.WithLabelValues("eth_getTransactionReceipt", "pending").Inc()
		return nil, err
	}
	return r, c.observe("eth_getTransactionReceipt", start, err)
}

// FilterLogs executes a log filter query
func (c *Client) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	start := time.Now()
	logs, err := c.rpc.FilterLogs(ctx, q)
	return logs, c.observe("eth_getLogs", start, err)
}

// SubscribeFilterLogs subscribes to log events; requires a websocket endpoint
func (c *Client) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	start := time.Now()
	sub, err := c.rpc.SubscribeFilterLogs(ctx, q, ch)
	return sub, c.observe("eth_subscribe", start, err)
}
