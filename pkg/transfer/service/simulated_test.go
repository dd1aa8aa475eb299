package service

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/evm-transfers/pkg/app/errors"
	"github.com/chainsafe/evm-transfers/pkg/ethereum"
	"github.com/chainsafe/evm-transfers/pkg/transfer"
)

// simClient mines a block after every submitted transaction
type simClient struct {
	simulated.Client
	backend *simulated.Backend
}

func (c *simClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.backend.Commit()
	return nil
}

func (c *simClient) SyncProgress(context.Context) (*geth.SyncProgress, error) {
	return nil, nil
}

func newSimulatedService(t *testing.T, funded ...common.Address) (*transferService, *simClient) {
	t.Helper()

	balance := new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))
	alloc := types.GenesisAlloc{}
	for _, addr := range funded {
		alloc[addr] = types.Account{Balance: balance}
	}

	backend := simulated.NewBackend(alloc)
	t.Cleanup(func() { _ = backend.Close() })

	client := &simClient{Client: backend.Client(), backend: backend}
	return newTestService(t, client, Options{}), client
}

func TestSimulated_NativeTransferAndHistory(t *testing.T) {
	funder := newTestAccount(t)
	svc, _ := newSimulatedService(t, funder.Address)
	ctx := context.Background()

	ready, err := svc.IsNodeReady(ctx)
	require.NoError(t, err)
	assert.True(t, ready)

	accounts, err := svc.CreateAddresses(ctx, 2)
	require.NoError(t, err)
	recipient := accounts[0].Address

	estimate, err := svc.Transfer(ctx, funder.PrivateKeyHex(), transfer.Native(), recipient, big.NewInt(1000),
		transfer.SendOptions{OnlyEstimate: true})
	require.NoError(t, err)
	assert.True(t, estimate.Estimated)
	assert.Equal(t, uint64(21_000), estimate.Gas)

	balance, err := svc.GetBalance(ctx, transfer.Native(), recipient)
	require.NoError(t, err)
	assert.Equal(t, 0, balance.Sign())

	res, err := svc.Transfer(ctx, funder.PrivateKeyHex(), transfer.Native(), recipient, big.NewInt(1000),
		transfer.SendOptions{})
	require.NoError(t, err)
	assert.Equal(t, uint64(42_000), res.Gas)
	assert.Equal(t, types.ReceiptStatusSuccessful, res.Receipt.Status)

	balances, err := svc.GetBalances(ctx, transfer.Native(), []common.Address{recipient, accounts[1].Address})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balances[0].Int64())
	assert.Equal(t, 0, balances[1].Sign())

	// the head block holds the transfer, so the default range finds it
	hist, err := svc.GetHistory(ctx, transfer.Native(), transfer.HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, hist.Transfers, 1)
	rec := hist.Transfers[0]
	assert.Equal(t, funder.Address, rec.From)
	assert.Equal(t, recipient, rec.To)
	assert.Equal(t, int64(1000), rec.Amount.Int64())
	assert.Equal(t, res.TxHash, rec.TxHash)
	assert.Equal(t, res.Receipt.BlockNumber.Uint64(), rec.BlockNumber)
	assert.Equal(t, rec.BlockNumber+1, hist.NextBlock)

	from := uint64(0)
	unrelated, err := svc.GetHistory(ctx, transfer.Native(), transfer.HistoryQuery{
		Addresses: []common.Address{accounts[1].Address},
		FromBlock: &from,
	})
	require.NoError(t, err)
	assert.Empty(t, unrelated.Transfers)
}

func TestSimulated_InsufficientFunds(t *testing.T) {
	svc, _ := newSimulatedService(t)
	empty := newTestAccount(t)

	_, err := svc.Transfer(context.Background(), empty.PrivateKeyHex(), transfer.Native(), common.Address{1},
		big.NewInt(1_000_000), transfer.SendOptions{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryInsufficientFunds))
}

func TestSimulated_DeployContract(t *testing.T) {
	deployer := newTestAccount(t)
	svc, client := newSimulatedService(t, deployer.Address)
	ctx := context.Background()

	// init code copying a runtime that returns 42
	artifact := &ethereum.Artifact{
		Bytecode: common.FromHex("600a600c600039600a6000f3602a60005260206000f3"),
	}

	estimate, err := svc.DeployContract(ctx, deployer.PrivateKeyHex(), artifact, transfer.SendOptions{OnlyEstimate: true})
	require.NoError(t, err)
	assert.True(t, estimate.Estimated)
	assert.Greater(t, estimate.Gas, uint64(53_000))

	res, err := svc.DeployContract(ctx, deployer.PrivateKeyHex(), artifact, transfer.SendOptions{})
	require.NoError(t, err)
	assert.NotEqual(t, common.Address{}, res.ContractAddress)
	assert.LessOrEqual(t, res.Gas, uint64(7_000_000))

	code, err := client.CodeAt(ctx, res.ContractAddress, nil)
	require.NoError(t, err)
	assert.Equal(t, common.FromHex("602a60005260206000f3"), code)
}

func TestSimulated_TestTokenDelegatedTransferAndHistory(t *testing.T) {
	deployer := newTestAccount(t)
	svc, client := newSimulatedService(t, deployer.Address)
	svc.opts.TokenArtifact = filepath.Join(t.TempDir(), "missing.json")
	ctx := context.Background()

	supply := new(big.Int).Mul(big.NewInt(1_000_000), big.NewInt(1e18))
	deployed, err := svc.DeployTestToken(ctx, deployer.PrivateKeyHex(), "Test Token", "TST", supply, 18)
	require.NoError(t, err)
	token := transfer.Token(deployed.ContractAddress)

	balance, err := svc.GetBalance(ctx, token, deployer.Address)
	require.NoError(t, err)
	assert.Equal(t, supply, balance)

	decimals, err := svc.Decimals(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint8(18), decimals)

	accounts, err := svc.CreateAddresses(ctx, 3)
	require.NoError(t, err)
	owner, recipient, payer := accounts[0], accounts[1], accounts[2]

	gasMoney := big.NewInt(1e18)
	_, err = svc.Transfer(ctx, deployer.PrivateKeyHex(), transfer.Native(), payer.Address, gasMoney, transfer.SendOptions{})
	require.NoError(t, err)
	funded, err := svc.Transfer(ctx, deployer.PrivateKeyHex(), token, owner.Address, big.NewInt(1000), transfer.SendOptions{})
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, funded.Receipt.Status)

	estimate, err := svc.TransferDelegated(ctx, payer.PrivateKeyHex(), deployed.ContractAddress, owner.PrivateKeyHex(),
		recipient.Address, big.NewInt(300), transfer.SendOptions{OnlyEstimate: true})
	require.NoError(t, err)
	assert.True(t, estimate.Estimated)
	assert.Greater(t, estimate.Gas, uint64(21_000))

	res, err := svc.TransferDelegated(ctx, payer.PrivateKeyHex(), deployed.ContractAddress, owner.PrivateKeyHex(),
		recipient.Address, big.NewInt(300), transfer.SendOptions{})
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, res.Receipt.Status)

	tx, _, err := client.TransactionByHash(ctx, res.TxHash)
	require.NoError(t, err)
	assert.Equal(t, payer.Address, txSender(t, tx))

	balances, err := svc.GetBalances(ctx, token, []common.Address{owner.Address, recipient.Address, payer.Address})
	require.NoError(t, err)
	assert.Equal(t, int64(700), balances[0].Int64())
	assert.Equal(t, int64(300), balances[1].Int64())
	assert.Equal(t, 0, balances[2].Sign())

	// the payer covered gas, the owner holds no ether at all
	payerNative, err := svc.GetBalance(ctx, transfer.Native(), payer.Address)
	require.NoError(t, err)
	assert.Equal(t, -1, payerNative.Cmp(gasMoney))
	ownerNative, err := svc.GetBalance(ctx, transfer.Native(), owner.Address)
	require.NoError(t, err)
	assert.Equal(t, 0, ownerNative.Sign())

	from := uint64(0)
	all, err := svc.GetHistory(ctx, token, transfer.HistoryQuery{FromBlock: &from})
	require.NoError(t, err)
	require.Len(t, all.Transfers, 3)
	assert.Equal(t, common.Address{}, all.Transfers[0].From)
	assert.Equal(t, deployer.Address, all.Transfers[0].To)
	assert.Equal(t, supply, all.Transfers[0].Amount)

	owned, err := svc.GetHistory(ctx, token, transfer.HistoryQuery{
		Addresses: []common.Address{owner.Address},
		FromBlock: &from,
	})
	require.NoError(t, err)
	require.Len(t, owned.Transfers, 2)

	received := owned.Transfers[0]
	assert.Equal(t, deployer.Address, received.From)
	assert.Equal(t, owner.Address, received.To)
	assert.Equal(t, int64(1000), received.Amount.Int64())
	assert.Equal(t, funded.TxHash, received.TxHash)

	delegated := owned.Transfers[1]
	assert.Equal(t, owner.Address, delegated.From)
	assert.Equal(t, recipient.Address, delegated.To)
	assert.Equal(t, int64(300), delegated.Amount.Int64())
	assert.Equal(t, res.TxHash, delegated.TxHash)
	assert.Equal(t, res.Receipt.BlockNumber.Uint64(), delegated.BlockNumber)
	assert.NotZero(t, delegated.Timestamp)
}
