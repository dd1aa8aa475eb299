package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/evm-transfers/pkg/ethereum"
	"github.com/chainsafe/evm-transfers/pkg/transfer"
)

const serviceName = "TransferService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the transfer Service.
// It logs method entry/exit, duration and errors. Private keys are never logged.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// call logs the start of method and returns a function logging its outcome
func (ls *logService) call(method string, fields ...zap.Field) func(err error, result ...zap.Field) {
	start := time.Now()
	base := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("op_id", uuid.NewString()),
	}

	ls.logger.Debug(method+" started", append(base, fields...)...)

	return func(err error, result ...zap.Field) {
		base = append(base, zap.Duration("duration", time.Since(start)))
		if err != nil {
			ls.logger.Error(method+" failed", append(base, zap.Error(err))...)
			return
		}
		ls.logger.Info(method+" completed", append(base, result...)...)
	}
}

func (ls *logService) IsNodeReady(ctx context.Context) (ready bool, err error) {
	done := ls.call("IsNodeReady")
	defer func() { done(err, zap.Bool("ready", ready)) }()

	return ls.svc.IsNodeReady(ctx)
}

func (ls *logService) CreateAddresses(ctx context.Context, count int) (accounts []transfer.Account, err error) {
	done := ls.call("CreateAddresses", zap.Int("count", count))
	defer func() {
		addrs := make([]string, len(accounts))
		for i, a := range accounts {
			addrs[i] = a.Address.Hex()
		}
		done(err, zap.Strings("addresses", addrs))
	}()

	return ls.svc.CreateAddresses(ctx, count)
}

func (ls *logService) Decimals(ctx context.Context, asset transfer.Asset) (decimals uint8, err error) {
	done := ls.call("Decimals", zap.Stringer("asset", asset))
	defer func() { done(err, zap.Uint8("decimals", decimals)) }()

	return ls.svc.Decimals(ctx, asset)
}

func (ls *logService) DecimalFactor(ctx context.Context, asset transfer.Asset) (factor float64, err error) {
	done := ls.call("DecimalFactor", zap.Stringer("asset", asset))
	defer func() { done(err, zap.Float64("factor", factor)) }()

	return ls.svc.DecimalFactor(ctx, asset)
}

func (ls *logService) GetBalance(
	ctx context.Context,
	asset transfer.Asset,
	address common.Address,
) (balance *big.Int, err error) {
	done := ls.call("GetBalance", zap.Stringer("asset", asset), zap.Stringer("address", address))
	defer func() { done(err, zap.Stringer("balance", balance)) }()

	return ls.svc.GetBalance(ctx, asset, address)
}

func (ls *logService) GetBalances(
	ctx context.Context,
	asset transfer.Asset,
	addresses []common.Address,
) (balances []*big.Int, err error) {
	done := ls.call("GetBalances", zap.Stringer("asset", asset), zap.Int("addresses", len(addresses)))
	defer func() { done(err) }()

	return ls.svc.GetBalances(ctx, asset, addresses)
}

func (ls *logService) GetHumanBalance(
	ctx context.Context,
	asset transfer.Asset,
	address common.Address,
) (balance float64, err error) {
	done := ls.call("GetHumanBalance", zap.Stringer("asset", asset), zap.Stringer("address", address))
	defer func() { done(err, zap.Float64("balance", balance)) }()

	return ls.svc.GetHumanBalance(ctx, asset, address)
}

func (ls *logService) GetHumanBalances(
	ctx context.Context,
	asset transfer.Asset,
	addresses []common.Address,
) (balances []float64, err error) {
	done := ls.call("GetHumanBalances", zap.Stringer("asset", asset), zap.Int("addresses", len(addresses)))
	defer func() { done(err) }()

	return ls.svc.GetHumanBalances(ctx, asset, addresses)
}

func (ls *logService) Transfer(
	ctx context.Context,
	privateKey string,
	asset transfer.Asset,
	to common.Address,
	amount *big.Int,
	opts transfer.SendOptions,
) (res *transfer.Result, err error) {
	done := ls.call("Transfer",
		zap.String("private_key", redactKey(privateKey)),
		zap.Stringer("asset", asset),
		zap.Stringer("to", to),
		zap.Stringer("amount", amount),
		zap.Bool("only_estimate", opts.OnlyEstimate),
	)
	defer func() { done(err, resultFields(res)...) }()

	return ls.svc.Transfer(ctx, privateKey, asset, to, amount, opts)
}

func (ls *logService) TransferDelegated(
	ctx context.Context,
	payerPrivateKey string,
	token common.Address,
	ownerPrivateKey string,
	to common.Address,
	amount *big.Int,
	opts transfer.SendOptions,
) (res *transfer.Result, err error) {
	done := ls.call("TransferDelegated",
		zap.String("payer_key", redactKey(payerPrivateKey)),
		zap.String("owner_key", redactKey(ownerPrivateKey)),
		zap.Stringer("token", token),
		zap.Stringer("to", to),
		zap.Stringer("amount", amount),
		zap.Bool("only_estimate", opts.OnlyEstimate),
	)
	defer func() { done(err, resultFields(res)...) }()

	return ls.svc.TransferDelegated(ctx, payerPrivateKey, token, ownerPrivateKey, to, amount, opts)
}

func (ls *logService) SendSignedCall(
	ctx context.Context,
	payerPrivateKey string,
	call transfer.CallData,
	opts transfer.SendOptions,
) (res *transfer.Result, err error) {
	target := "<create>"
	if call.To != nil {
		target = call.To.Hex()
	}
	done := ls.call("SendSignedCall",
		zap.String("payer_key", redactKey(payerPrivateKey)),
		zap.String("to", target),
		zap.Int("data_len", len(call.Data)),
		zap.Bool("only_estimate", opts.OnlyEstimate),
	)
	defer func() { done(err, resultFields(res)...) }()

	return ls.svc.SendSignedCall(ctx, payerPrivateKey, call, opts)
}

func (ls *logService) GetHistory(
	ctx context.Context,
	asset transfer.Asset,
	query transfer.HistoryQuery,
) (history *transfer.History, err error) {
	fields := []zap.Field{
		zap.Stringer("asset", asset),
		zap.Int("addresses", len(query.Addresses)),
		zap.Bool("human", query.HumanReadable),
	}
	if query.FromBlock != nil {
		fields = append(fields, zap.Uint64("from_block", *query.FromBlock))
	}
	done := ls.call("GetHistory", fields...)
	defer func() {
		if history == nil {
			done(err)
			return
		}
		done(err,
			zap.Uint64("next_block", history.NextBlock),
			zap.Int("transfers", len(history.Transfers)),
		)
	}()

	return ls.svc.GetHistory(ctx, asset, query)
}

func (ls *logService) DeployContract(
	ctx context.Context,
	privateKey string,
	artifact *ethereum.Artifact,
	opts transfer.SendOptions,
	args ...any,
) (res *transfer.Result, err error) {
	bytecodeLen := 0
	if artifact != nil {
		bytecodeLen = len(artifact.Bytecode)
	}
	done := ls.call("DeployContract",
		zap.String("private_key", redactKey(privateKey)),
		zap.Int("bytecode_len", bytecodeLen),
		zap.Int("args", len(args)),
		zap.Bool("only_estimate", opts.OnlyEstimate),
	)
	defer func() { done(err, resultFields(res)...) }()

	return ls.svc.DeployContract(ctx, privateKey, artifact, opts, args...)
}

func (ls *logService) DeployTestToken(
	ctx context.Context,
	privateKey string,
	name string,
	symbol string,
	initialSupply *big.Int,
	decimals uint8,
) (res *transfer.Result, err error) {
	done := ls.call("DeployTestToken",
		zap.String("private_key", redactKey(privateKey)),
		zap.String("name", name),
		zap.String("symbol", symbol),
		zap.Stringer("initial_supply", initialSupply),
		zap.Uint8("decimals", decimals),
	)
	defer func() { done(err, resultFields(res)...) }()

	return ls.svc.DeployTestToken(ctx, privateKey, name, symbol, initialSupply, decimals)
}

func resultFields(res *transfer.Result) []zap.Field {
	if res == nil {
		return nil
	}
	if res.Estimated {
		return []zap.Field{zap.Uint64("gas_estimate", res.Gas)}
	}
	fields := []zap.Field{
		zap.Uint64("gas_limit", res.Gas),
		zap.String("tx_hash", res.TxHash.Hex()),
	}
	if res.ContractAddress != (common.Address{}) {
		fields = append(fields, zap.String("contract_address", res.ContractAddress.Hex()))
	}
	return fields
}

// redactKey hides private key material, keeping only its length
func redactKey(key string) string {
	if key == "" {
		return "<empty>"
	}
	return fmt.Sprintf("<redacted %d chars>", len(key))
}
