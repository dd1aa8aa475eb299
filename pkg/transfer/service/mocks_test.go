package service

import (
	"context"
	"math/big"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// MockChainClient is a mock implementation of ChainClient
type MockChainClient struct {
	ChainIDFunc             func(ctx context.Context) (*big.Int, error)
	BlockNumberFunc         func(ctx context.Context) (uint64, error)
	SyncProgressFunc        func(ctx context.Context) (*geth.SyncProgress, error)
	BlockByNumberFunc       func(ctx context.Context, number *big.Int) (*types.Block, error)
	HeaderByNumberFunc      func(ctx context.Context, number *big.Int) (*types.Header, error)
	BalanceAtFunc           func(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CodeAtFunc              func(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
	CallContractFunc        func(ctx context.Context, msg geth.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingCodeAtFunc       func(ctx context.Context, account common.Address) ([]byte, error)
	PendingNonceAtFunc      func(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPriceFunc     func(ctx context.Context) (*big.Int, error)
	SuggestGasTipCapFunc    func(ctx context.Context) (*big.Int, error)
	EstimateGasFunc         func(ctx context.Context, msg geth.CallMsg) (uint64, error)
	SendTransactionFunc     func(ctx context.Context, tx *types.Transaction) error
	TransactionReceiptFunc  func(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	FilterLogsFunc          func(ctx context.Context, q geth.FilterQuery) ([]types.Log, error)
	SubscribeFilterLogsFunc func(ctx context.Context, q geth.FilterQuery, ch chan<- types.Log) (geth.Subscription, error)
}

func (m *MockChainClient) ChainID(ctx context.Context) (*big.Int, error) {
	if m.ChainIDFunc != nil {
		return m.ChainIDFunc(ctx)
	}
	return big.NewInt(1337), nil
}

func (m *MockChainClient) BlockNumber(ctx context.Context) (uint64, error) {
	if m.BlockNumberFunc != nil {
		return m.BlockNumberFunc(ctx)
	}
	return 0, nil
}

func (m *MockChainClient) SyncProgress(ctx context.Context) (*geth.SyncProgress, error) {
	if m.SyncProgressFunc != nil {
		return m.SyncProgressFunc(ctx)
	}
	return nil, nil
}

func (m *MockChainClient) BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error) {
	if m.BlockByNumberFunc != nil {
		return m.BlockByNumberFunc(ctx, number)
	}
	return nil, geth.NotFound
}

func (m *MockChainClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	if m.HeaderByNumberFunc != nil {
		return m.HeaderByNumberFunc(ctx, number)
	}
	return &types.Header{Number: number}, nil
}

func (m *MockChainClient) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	if m.BalanceAtFunc != nil {
		return m.BalanceAtFunc(ctx, account, blockNumber)
	}
	return new(big.Int), nil
}

func (m *MockChainClient) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	if m.CodeAtFunc != nil {
		return m.CodeAtFunc(ctx, contract, blockNumber)
	}
	return []byte{0x01}, nil
}

func (m *MockChainClient) CallContract(ctx context.Context, msg geth.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if m.CallContractFunc != nil {
		return m.CallContractFunc(ctx, msg, blockNumber)
	}
	return nil, nil
}

func (m *MockChainClient) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	if m.PendingCodeAtFunc != nil {
		return m.PendingCodeAtFunc(ctx, account)
	}
	return []byte{0x01}, nil
}

func (m *MockChainClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	if m.PendingNonceAtFunc != nil {
		return m.PendingNonceAtFunc(ctx, account)
	}
	return 0, nil
}

func (m *MockChainClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if m.SuggestGasPriceFunc != nil {
		return m.SuggestGasPriceFunc(ctx)
	}
	return big.NewInt(1_000_000_000), nil
}

func (m *MockChainClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	if m.SuggestGasTipCapFunc != nil {
		return m.SuggestGasTipCapFunc(ctx)
	}
	return big.NewInt(1), nil
}

func (m *MockChainClient) EstimateGas(ctx context.Context, msg geth.CallMsg) (uint64, error) {
	if m.EstimateGasFunc != nil {
		return m.EstimateGasFunc(ctx, msg)
	}
	return 21_000, nil
}

func (m *MockChainClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if m.SendTransactionFunc != nil {
		return m.SendTransactionFunc(ctx, tx)
	}
	return nil
}

func (m *MockChainClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if m.TransactionReceiptFunc != nil {
		return m.TransactionReceiptFunc(ctx, txHash)
	}
	return &types.Receipt{TxHash: txHash, Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(1)}, nil
}

func (m *MockChainClient) FilterLogs(ctx context.Context, q geth.FilterQuery) ([]types.Log, error) {
	if m.FilterLogsFunc != nil {
		return m.FilterLogsFunc(ctx, q)
	}
	return nil, nil
}

func (m *MockChainClient) SubscribeFilterLogs(
	ctx context.Context,
	q geth.FilterQuery,
	ch chan<- types.Log,
) (geth.Subscription, error) {
	if m.SubscribeFilterLogsFunc != nil {
		return m.SubscribeFilterLogsFunc(ctx, q, ch)
	}
	return nil, geth.NotFound
}
