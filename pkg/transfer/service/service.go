package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/creasty/defaults"
	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	soltoken "github.com/chainsafe/evm-transfers/contracts"
	"github.com/chainsafe/evm-transfers/internal/metrics"
	apperrors "github.com/chainsafe/evm-transfers/pkg/app/errors"
	"github.com/chainsafe/evm-transfers/pkg/ethereum"
	"github.com/chainsafe/evm-transfers/pkg/ethereum/contracts"
	"github.com/chainsafe/evm-transfers/pkg/transfer"
)

// Transaction kinds used as metric labels
const (
	kindNative    = "native_transfer"
	kindToken     = "token_transfer"
	kindDelegated = "delegated_transfer"
	kindCall      = "contract_call"
	kindDeploy    = "deploy"
)

// testTokenVersion is the EIP-712 domain version passed to the test token constructor
const testTokenVersion = "1"

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrMissingAmount  = errors.New("amount is required")
	ErrNilArtifact    = errors.New("contract artifact is required")
)

// ChainClient is the node surface used by the transfer service.
// It is satisfied by *ethereum.Client, *ethclient.Client and the simulated backend client.
type ChainClient interface {
	bind.ContractBackend

	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	SyncProgress(ctx context.Context) (*geth.SyncProgress, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Service creates accounts, reads balances, sends plain and delegated transfers,
// scans transfer history and deploys contracts.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	IsNodeReady(ctx context.Context) (bool, error)
	CreateAddresses(ctx context.Context, count int) ([]transfer.Account, error)
	Decimals(ctx context.Context, asset transfer.Asset) (uint8, error)
	DecimalFactor(ctx context.Context, asset transfer.Asset) (float64, error)
	GetBalance(ctx context.Context, asset transfer.Asset, address common.Address) (*big.Int, error)
	GetBalances(ctx context.Context, asset transfer.Asset, addresses []common.Address) ([]*big.Int, error)
	GetHumanBalance(ctx context.Context, asset transfer.Asset, address common.Address) (float64, error)
	GetHumanBalances(ctx context.Context, asset transfer.Asset, addresses []common.Address) ([]float64, error)
	Transfer(
		ctx context.Context,
		privateKey string,
		asset transfer.Asset,
		to common.Address,
		amount *big.Int,
		opts transfer.SendOptions,
	) (*transfer.Result, error)
	TransferDelegated(
		ctx context.Context,
		payerPrivateKey string,
		token common.Address,
		ownerPrivateKey string,
		to common.Address,
		amount *big.Int,
		opts transfer.SendOptions,
	) (*transfer.Result, error)
	SendSignedCall(
		ctx context.Context,
		payerPrivateKey string,
		call transfer.CallData,
		opts transfer.SendOptions,
	) (*transfer.Result, error)
	GetHistory(ctx context.Context, asset transfer.Asset, query transfer.HistoryQuery) (*transfer.History, error)
	DeployContract(
		ctx context.Context,
		privateKey string,
		artifact *ethereum.Artifact,
		opts transfer.SendOptions,
		args ...any,
	) (*transfer.Result, error)
	DeployTestToken(
		ctx context.Context,
		privateKey string,
		name string,
		symbol string,
		initialSupply *big.Int,
		decimals uint8,
	) (*transfer.Result, error)
}

// Options tunes the transfer service
type Options struct {
	// GasCeiling caps the doubled estimate of contract calls and deployments.
	GasCeiling uint64 `default:"7000000"`
	// AuthorizationWindow is added to the current time to form validBefore.
	AuthorizationWindow time.Duration `default:"1h"`
	// ReceiptPollInterval is the delay between receipt lookups while a transaction is pending.
	ReceiptPollInterval time.Duration `default:"1s"`
	// TokenArtifact is the solc standard-JSON output holding the test token.
	TokenArtifact string `default:"contracts/eip-3009-token.json"`
}

type transferService struct {
	client ChainClient
	opts   Options
	logger *zap.Logger
	now    func() time.Time

	tokenABI *abi.ABI

	accountsMu sync.Mutex
	accounts   map[string]transfer.Account

	tokensMu sync.Mutex
	tokens   map[common.Address]*contracts.EIP3009Token
}

// NewService creates a new transfer service. Zero fields of opts take their defaults.
func NewService(client ChainClient, opts Options, logger *zap.Logger) (Service, error) {
	if err := defaults.Set(&opts); err != nil {
		return nil, fmt.Errorf("failed to apply service defaults: %w", err)
	}

	tokenABI, err := contracts.EIP3009TokenMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse token ABI: %w", err)
	}

	return &transferService{
		client:   client,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
		tokenABI: tokenABI,
		accounts: make(map[string]transfer.Account),
		tokens:   make(map[common.Address]*contracts.EIP3009Token),
	}, nil
}

// IsNodeReady reports whether the node has finished syncing
func (s *transferService) IsNodeReady(ctx context.Context) (bool, error) {
	progress, err := s.client.SyncProgress(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get sync status: %w", ethereum.ClassifyError("eth_syncing", err))
	}
	return progress == nil, nil
}

// CreateAddresses generates count fresh accounts and caches them by private key.
// A non-positive count yields an empty slice.
func (s *transferService) CreateAddresses(_ context.Context, count int) ([]transfer.Account, error) {
	accounts := make([]transfer.Account, 0, max(count, 0))
	for i := 0; i < count; i++ {
		key, err := crypto.GenerateKey()
		if err != nil {
			return nil, fmt.Errorf("failed to generate key: %w", err)
		}
		account := transfer.NewAccount(key)

		s.accountsMu.Lock()
		s.accounts[cacheKey(account.PrivateKeyHex())] = account
		s.accountsMu.Unlock()

		accounts = append(accounts, account)
	}
	return accounts, nil
}

// resolveAccount returns the cached account for privateKey, deriving it on first use
func (s *transferService) resolveAccount(privateKey string) (transfer.Account, error) {
	key := cacheKey(privateKey)

	s.accountsMu.Lock()
	defer s.accountsMu.Unlock()

	if account, ok := s.accounts[key]; ok {
		return account, nil
	}

	account, err := transfer.ParseAccount(key)
	if err != nil {
		return transfer.Account{}, err
	}
	s.accounts[key] = account
	return account, nil
}

func cacheKey(privateKey string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(privateKey), "0x"))
}

// token returns the cached binding for the token at addr
func (s *transferService) token(addr common.Address) (*contracts.EIP3009Token, error) {
	s.tokensMu.Lock()
	defer s.tokensMu.Unlock()

	if binding, ok := s.tokens[addr]; ok {
		return binding, nil
	}

	binding, err := contracts.NewEIP3009Token(addr, s.client)
	if err != nil {
		return nil, fmt.Errorf("failed to bind token %s: %w", addr.Hex(), err)
	}
	s.tokens[addr] = binding
	return binding, nil
}

// Decimals returns the token's decimals() or 18 for the native currency
func (s *transferService) Decimals(ctx context.Context, asset transfer.Asset) (uint8, error) {
	addr, ok := asset.TokenAddress()
	if !ok {
		return transfer.NativeDecimals, nil
	}

	binding, err := s.token(addr)
	if err != nil {
		return 0, err
	}
	decimals, err := binding.Decimals(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, fmt.Errorf("failed to get decimals of %s: %w", addr.Hex(), ethereum.ClassifyError("eth_call", err))
	}
	return decimals, nil
}

// DecimalFactor returns 10^-decimals of the asset
func (s *transferService) DecimalFactor(ctx context.Context, asset transfer.Asset) (float64, error) {
	decimals, err := s.Decimals(ctx, asset)
	if err != nil {
		return 0, err
	}
	return transfer.DecimalFactor(decimals), nil
}

// GetBalance returns the raw balance of address
func (s *transferService) GetBalance(ctx context.Context, asset transfer.Asset, address common.Address) (*big.Int, error) {
	addr, ok := asset.TokenAddress()
	if !ok {
		balance, err := s.client.BalanceAt(ctx, address, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get balance of %s: %w",
				address.Hex(), ethereum.ClassifyError("eth_getBalance", err))
		}
		return balance, nil
	}

	binding, err := s.token(addr)
	if err != nil {
		return nil, err
	}
	balance, err := binding.BalanceOf(&bind.CallOpts{Context: ctx}, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get token balance of %s: %w",
			address.Hex(), ethereum.ClassifyError("eth_call", err))
	}
	return balance, nil
}

// GetBalances returns raw balances in the order of addresses
func (s *transferService) GetBalances(ctx context.Context, asset transfer.Asset, addresses []common.Address) ([]*big.Int, error) {
	balances := make([]*big.Int, 0, len(addresses))
	for _, address := range addresses {
		balance, err := s.GetBalance(ctx, asset, address)
		if err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}
	return balances, nil
}

// GetHumanBalance returns the balance scaled by the decimal factor in floating point
func (s *transferService) GetHumanBalance(ctx context.Context, asset transfer.Asset, address common.Address) (float64, error) {
	balances, err := s.GetHumanBalances(ctx, asset, []common.Address{address})
	if err != nil {
		return 0, err
	}
	return balances[0], nil
}

// GetHumanBalances returns balances scaled by the decimal factor in floating point, in input order
func (s *transferService) GetHumanBalances(ctx context.Context, asset transfer.Asset, addresses []common.Address) ([]float64, error) {
	factor, err := s.DecimalFactor(ctx, asset)
	if err != nil {
		return nil, err
	}

	raw, err := s.GetBalances(ctx, asset, addresses)
	if err != nil {
		return nil, err
	}

	balances := make([]float64, len(raw))
	for i, balance := range raw {
		balances[i] = transfer.Scale(balance, factor)
	}
	return balances, nil
}

// Transfer sends amount of asset from the account of privateKey to to
func (s *transferService) Transfer(
	ctx context.Context,
	privateKey string,
	asset transfer.Asset,
	to common.Address,
	amount *big.Int,
	opts transfer.SendOptions,
) (*transfer.Result, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}

	if addr, ok := asset.TokenAddress(); ok {
		data, err := s.tokenABI.Pack("transfer", to, amount)
		if err != nil {
			return nil, fmt.Errorf("failed to pack transfer call: %w", err)
		}
		return s.sendSigned(ctx, kindToken, privateKey, transfer.CallData{To: &addr, Data: data}, opts)
	}

	account, err := s.resolveAccount(privateKey)
	if err != nil {
		return nil, err
	}

	gas, err := s.estimate(ctx, kindNative, geth.CallMsg{From: account.Address, To: &to, Value: amount})
	if err != nil {
		return nil, err
	}
	if opts.OnlyEstimate {
		return &transfer.Result{Gas: gas, Estimated: true}, nil
	}

	return s.signAndSend(ctx, kindNative, account, &to, amount, nil, gas*2, opts.GasPrice)
}

// TransferDelegated moves amount of token from the owner to to using an EIP-3009 authorization
// signed by the owner; the payer submits the transaction and pays its gas.
func (s *transferService) TransferDelegated(
	ctx context.Context,
	payerPrivateKey string,
	token common.Address,
	ownerPrivateKey string,
	to common.Address,
	amount *big.Int,
	opts transfer.SendOptions,
) (*transfer.Result, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}

	owner, err := s.resolveAccount(ownerPrivateKey)
	if err != nil {
		return nil, err
	}

	domain, err := s.domain(ctx, token)
	if err != nil {
		return nil, err
	}

	auth, err := transfer.NewAuthorization(owner.Address, to, amount, s.now(), s.opts.AuthorizationWindow)
	if err != nil {
		return nil, err
	}

	sig, err := auth.Sign(domain, owner.PrivateKey)
	if err != nil {
		return nil, err
	}
	v, r, sv, err := transfer.SplitSignature(sig)
	if err != nil {
		return nil, err
	}

	data, err := s.tokenABI.Pack("transferWithAuthorization",
		auth.From, auth.To, auth.Value, auth.ValidAfter, auth.ValidBefore, auth.Nonce, v, r, sv)
	if err != nil {
		return nil, fmt.Errorf("failed to pack transferWithAuthorization call: %w", err)
	}

	return s.sendSigned(ctx, kindDelegated, payerPrivateKey, transfer.CallData{To: &token, Data: data}, opts)
}

// domain reads the EIP-712 domain of token from the chain
func (s *transferService) domain(ctx context.Context, token common.Address) (transfer.Domain, error) {
	binding, err := s.token(token)
	if err != nil {
		return transfer.Domain{}, err
	}

	callOpts := &bind.CallOpts{Context: ctx}
	name, err := binding.Name(callOpts)
	if err != nil {
		return transfer.Domain{}, fmt.Errorf("failed to get token name: %w", ethereum.ClassifyError("eth_call", err))
	}
	version, err := binding.Version(callOpts)
	if err != nil {
		return transfer.Domain{}, fmt.Errorf("failed to get token version: %w", ethereum.ClassifyError("eth_call", err))
	}
	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return transfer.Domain{}, fmt.Errorf("failed to get chain id: %w", ethereum.ClassifyError("eth_chainId", err))
	}

	return transfer.Domain{
		Name:              name,
		Version:           version,
		ChainID:           chainID,
		VerifyingContract: token,
	}, nil
}

// SendSignedCall estimates, signs and submits call from the payer account
func (s *transferService) SendSignedCall(
	ctx context.Context,
	payerPrivateKey string,
	call transfer.CallData,
	opts transfer.SendOptions,
) (*transfer.Result, error) {
	kind := kindCall
	if call.To == nil {
		kind = kindDeploy
	}
	return s.sendSigned(ctx, kind, payerPrivateKey, call, opts)
}

func (s *transferService) sendSigned(
	ctx context.Context,
	kind string,
	payerPrivateKey string,
	call transfer.CallData,
	opts transfer.SendOptions,
) (*transfer.Result, error) {
	payer, err := s.resolveAccount(payerPrivateKey)
	if err != nil {
		return nil, err
	}

	gas, err := s.estimate(ctx, kind, geth.CallMsg{From: payer.Address, To: call.To, Data: call.Data})
	if err != nil {
		return nil, err
	}
	if opts.OnlyEstimate {
		return &transfer.Result{Gas: gas, Estimated: true}, nil
	}

	gas *= 2
	if gas > s.opts.GasCeiling {
		gas = s.opts.GasCeiling
	}

	return s.signAndSend(ctx, kind, payer, call.To, new(big.Int), call.Data, gas, opts.GasPrice)
}

func (s *transferService) estimate(ctx context.Context, kind string, msg geth.CallMsg) (uint64, error) {
	gas, err := s.client.EstimateGas(ctx, msg)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues(kind, "estimate").Inc()
		return 0, fmt.Errorf("failed to estimate gas: %w", ethereum.ClassifyError("eth_estimateGas", err))
	}
	metrics.GasEstimated.WithLabelValues(kind).Observe(float64(gas))
	return gas, nil
}

// signAndSend builds a legacy transaction, signs it, submits it and waits for its receipt
func (s *transferService) signAndSend(
	ctx context.Context,
	kind string,
	from transfer.Account,
	to *common.Address,
	value *big.Int,
	data []byte,
	gas uint64,
	gasPrice *big.Int,
) (*transfer.Result, error) {
	nonce, err := s.client.PendingNonceAt(ctx, from.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", ethereum.ClassifyError("eth_getTransactionCount", err))
	}

	if gasPrice == nil {
		gasPrice, err = s.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", ethereum.ClassifyError("eth_gasPrice", err))
		}
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", ethereum.ClassifyError("eth_chainId", err))
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       to,
		Value:    value,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), from.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		metrics.TransactionsSent.WithLabelValues(kind, "rejected").Inc()
		return nil, fmt.Errorf("failed to send transaction: %w", ethereum.ClassifyError("eth_sendRawTransaction", err))
	}

	s.logger.Debug("Transaction submitted",
		zap.String("kind", kind),
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.String("from", from.Address.Hex()),
		zap.Uint64("nonce", nonce),
		zap.Uint64("gas", gas),
	)

	receipt, err := s.waitMined(ctx, signed.Hash())
	if err != nil {
		return nil, err
	}
	metrics.GasUsed.WithLabelValues(kind).Observe(float64(receipt.GasUsed))

	if receipt.Status != types.ReceiptStatusSuccessful {
		metrics.TransactionsSent.WithLabelValues(kind, "reverted").Inc()
		return nil, apperrors.TransactionRevertedError(
			fmt.Errorf("transaction %s reverted in block %s", signed.Hash().Hex(), receipt.BlockNumber),
			"transaction reverted",
		)
	}
	metrics.TransactionsSent.WithLabelValues(kind, "success").Inc()

	return &transfer.Result{
		Gas:             gas,
		TxHash:          signed.Hash(),
		Receipt:         receipt,
		ContractAddress: receipt.ContractAddress,
	}, nil
}

// waitMined polls for the receipt of hash until it is mined or ctx is done
func (s *transferService) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(s.opts.ReceiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, geth.NotFound) {
			return nil, fmt.Errorf("failed to get receipt of %s: %w",
				hash.Hex(), ethereum.ClassifyError("eth_getTransactionReceipt", err))
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for receipt of %s: %w", hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// GetHistory scans blocks from query.FromBlock up to the head captured at call time
func (s *transferService) GetHistory(ctx context.Context, asset transfer.Asset, query transfer.HistoryQuery) (*transfer.History, error) {
	var factor float64
	if query.HumanReadable {
		f, err := s.DecimalFactor(ctx, asset)
		if err != nil {
			return nil, err
		}
		factor = f
	}

	head, err := s.client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block number: %w", ethereum.ClassifyError("eth_blockNumber", err))
	}

	from := head
	if query.FromBlock != nil {
		from = *query.FromBlock
	}

	var records []transfer.TransferRecord
	if addr, ok := asset.TokenAddress(); ok {
		records, err = s.tokenHistory(ctx, addr, query, from, head)
	} else {
		records, err = s.nativeHistory(ctx, query, from, head)
	}
	if err != nil {
		return nil, err
	}

	if query.HumanReadable {
		for i := range records {
			records[i].HumanAmount = transfer.Scale(records[i].Amount, factor)
		}
	}
	metrics.TransfersFound.WithLabelValues(assetLabel(asset)).Add(float64(len(records)))

	return &transfer.History{
		NextBlock: head + 1,
		Transfers: records,
	}, nil
}

// tokenHistory reads Transfer events one block at a time to keep each response small
func (s *transferService) tokenHistory(
	ctx context.Context,
	token common.Address,
	query transfer.HistoryQuery,
	from, head uint64,
) ([]transfer.TransferRecord, error) {
	binding, err := s.token(token)
	if err != nil {
		return nil, err
	}

	records := []transfer.TransferRecord{}
	for block := from; block <= head; block++ {
		end := block
		iter, err := binding.FilterTransfer(&bind.FilterOpts{Start: block, End: &end, Context: ctx}, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to filter transfers in block %d: %w",
				block, ethereum.ClassifyError("eth_getLogs", err))
		}

		for iter.Next() {
			event := iter.Event
			if event.Raw.Address != token || !query.Matches(event.From, event.To) {
				continue
			}

			header, err := s.client.HeaderByNumber(ctx, new(big.Int).SetUint64(event.Raw.BlockNumber))
			if err != nil {
				iter.Close()
				return nil, fmt.Errorf("failed to get block %d: %w",
					event.Raw.BlockNumber, ethereum.ClassifyError("eth_getHeaderByNumber", err))
			}

			records = append(records, transfer.TransferRecord{
				TxHash:      event.Raw.TxHash,
				BlockNumber: event.Raw.BlockNumber,
				From:        event.From,
				To:          event.To,
				Amount:      event.Value,
				Timestamp:   header.Time,
			})
		}
		if err := iter.Error(); err != nil {
			iter.Close()
			return nil, fmt.Errorf("failed to decode transfers in block %d: %w", block, err)
		}
		iter.Close()

		metrics.BlocksScanned.WithLabelValues("token").Inc()
	}
	return records, nil
}

// nativeHistory reads full blocks and keeps value-bearing transactions
func (s *transferService) nativeHistory(
	ctx context.Context,
	query transfer.HistoryQuery,
	from, head uint64,
) ([]transfer.TransferRecord, error) {
	records := []transfer.TransferRecord{}
	if from > head {
		return records, nil
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", ethereum.ClassifyError("eth_chainId", err))
	}
	signer := types.LatestSignerForChainID(chainID)

	for number := from; number <= head; number++ {
		block, err := s.client.BlockByNumber(ctx, new(big.Int).SetUint64(number))
		if err != nil {
			return nil, fmt.Errorf("failed to get block %d: %w",
				number, ethereum.ClassifyError("eth_getBlockByNumber", err))
		}

		for _, tx := range block.Transactions() {
			if tx.Value().Sign() <= 0 {
				continue
			}

			sender, err := types.Sender(signer, tx)
			if err != nil {
				return nil, fmt.Errorf("failed to recover sender of %s: %w", tx.Hash().Hex(), err)
			}
			var recipient common.Address
			if tx.To() != nil {
				recipient = *tx.To()
			}
			if !query.Matches(sender, recipient) {
				continue
			}

			records = append(records, transfer.TransferRecord{
				TxHash:      tx.Hash(),
				BlockNumber: number,
				From:        sender,
				To:          recipient,
				Amount:      new(big.Int).Set(tx.Value()),
				Timestamp:   block.Time(),
			})
		}

		metrics.BlocksScanned.WithLabelValues("native").Inc()
	}
	return records, nil
}

// DeployContract deploys artifact with the given constructor arguments
func (s *transferService) DeployContract(
	ctx context.Context,
	privateKey string,
	artifact *ethereum.Artifact,
	opts transfer.SendOptions,
	args ...any,
) (*transfer.Result, error) {
	if artifact == nil {
		return nil, apperrors.BadRequestError(ErrNilArtifact, "contract artifact is required")
	}

	input, err := artifact.ABI.Pack("", args...)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid constructor arguments")
	}

	data := make([]byte, 0, len(artifact.Bytecode)+len(input))
	data = append(data, artifact.Bytecode...)
	data = append(data, input...)

	return s.sendSigned(ctx, kindDeploy, privateKey, transfer.CallData{Data: data}, opts)
}

// DeployTestToken deploys the bundled EIP-3009 token with version "1"
func (s *transferService) DeployTestToken(
	ctx context.Context,
	privateKey string,
	name string,
	symbol string,
	initialSupply *big.Int,
	decimals uint8,
) (*transfer.Result, error) {
	if err := checkAmount(initialSupply); err != nil {
		return nil, err
	}

	artifact, err := s.testTokenArtifact()
	if err != nil {
		return nil, fmt.Errorf("failed to load test token artifact: %w", err)
	}

	return s.DeployContract(ctx, privateKey, artifact, transfer.SendOptions{},
		name, testTokenVersion, symbol, decimals, initialSupply)
}

// testTokenArtifact reads the configured artifact, falling back to the
// embedded build when the file does not exist
func (s *transferService) testTokenArtifact() (*ethereum.Artifact, error) {
	artifact, err := ethereum.LoadArtifact(s.opts.TokenArtifact, ethereum.TestTokenFile, ethereum.TestTokenContract)
	if err == nil {
		return artifact, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	s.logger.Info("Token artifact not found, using embedded build", zap.String("path", s.opts.TokenArtifact))
	return ethereum.ParseArtifact(soltoken.TestTokenArtifact, ethereum.TestTokenFile, ethereum.TestTokenContract)
}

func checkAmount(amount *big.Int) error {
	if amount == nil {
		return apperrors.BadRequestError(ErrMissingAmount, "amount is required")
	}
	if amount.Sign() < 0 {
		return apperrors.BadRequestError(ErrNegativeAmount, "amount must not be negative")
	}
	return nil
}

func assetLabel(asset transfer.Asset) string {
	if asset.IsNative() {
		return "native"
	}
	return "token"
}
