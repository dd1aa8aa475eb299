// Package demo implements app.Runner for the end-to-end transfer walkthrough.
//
// The walkthrough deploys the test token when none is configured, creates four
// accounts, funds the first one and then exercises a native transfer, a token
// transfer and a delegated token transfer, recording balances after every step
// and the resulting history as a YAML report.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/chainsafe/evm-transfers/pkg/app/api"
	"github.com/chainsafe/evm-transfers/pkg/config"
	"github.com/chainsafe/evm-transfers/pkg/ethereum"
	"github.com/chainsafe/evm-transfers/pkg/transfer"
	transferservice "github.com/chainsafe/evm-transfers/pkg/transfer/service"
)

const demoAccounts = 4

// transferAmount is the raw amount moved by every demo transfer
var transferAmount = big.NewInt(100)

var (
	ErrNodeNotReady   = errors.New("ethereum node is still syncing")
	ErrMissingFunder  = errors.New("demo.funder_private_key is required")
	ErrInvalidAmount  = errors.New("invalid integer amount")
	ErrNoTokenAddress = errors.New("token deployment returned no contract address")
)

// Chain is the node surface the walkthrough needs beyond the transfer service
type Chain interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// Runner executes the walkthrough and writes its report.
type Runner struct {
	cfg *config.Config
	out io.Writer
}

// NewRunner creates a walkthrough writing its YAML report to out.
func NewRunner(cfg *config.Config, out io.Writer) *Runner {
	return &Runner{cfg: cfg, out: out}
}

// Run connects to the configured node and executes the walkthrough.
func (r *Runner) Run() error {
	if r.cfg == nil {
		return fmt.Errorf("demo config is nil")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(r.cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	client, err := ethereum.NewClient(ctx, &r.cfg.Ethereum, logger)
	if err != nil {
		return fmt.Errorf("connect ethereum: %w", err)
	}
	defer client.Close()

	svc, err := api.NewTransferService(client, &r.cfg.Ethereum, logger)
	if err != nil {
		return err
	}

	report, err := Walk(ctx, svc, client, r.cfg, logger)
	if report != nil {
		if encErr := WriteReport(r.out, report); encErr != nil && err == nil {
			err = encErr
		}
	}
	return err
}

// Report is the YAML document produced by the walkthrough
type Report struct {
	Token    string         `yaml:"token"`
	Deployed bool           `yaml:"deployed"`
	Funder   string         `yaml:"funder"`
	Accounts []string       `yaml:"accounts"`
	Estimate EstimateReport `yaml:"estimates"`
	Steps    []Step         `yaml:"steps"`
	History  HistoryReport  `yaml:"history"`
	Failure  string         `yaml:"failure,omitempty"`
}

// EstimateReport holds the gas estimates taken before any transfer
type EstimateReport struct {
	Native    uint64 `yaml:"native"`
	Token     uint64 `yaml:"token"`
	Delegated uint64 `yaml:"delegated"`
}

// Step records one state-changing operation and the balances after it
type Step struct {
	Name     string    `yaml:"name"`
	TxHash   string    `yaml:"tx_hash,omitempty"`
	Gas      uint64    `yaml:"gas,omitempty"`
	Balances []Balance `yaml:"balances"`
}

// Balance is an exact human-readable balance line
type Balance struct {
	Address string `yaml:"address"`
	Native  string `yaml:"native"`
	Token   string `yaml:"token"`
}

// HistoryReport lists the transfers observed since the walkthrough started
type HistoryReport struct {
	FromBlock uint64        `yaml:"from_block"`
	NextBlock uint64        `yaml:"next_block"`
	Native    []HistoryLine `yaml:"native"`
	Token     []HistoryLine `yaml:"token"`
}

// HistoryLine is one transfer in the report
type HistoryLine struct {
	Block  uint64 `yaml:"block"`
	TxHash string `yaml:"tx_hash"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Amount string `yaml:"amount"`
}

// WriteReport encodes report as YAML
func WriteReport(w io.Writer, report *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

type walk struct {
	svc      transferservice.Service
	logger   *zap.Logger
	token    transfer.Asset
	decimals uint8
	parties  []common.Address
	report   *Report
}

// Walk runs the walkthrough against svc. The partial report is returned alongside any error.
func Walk(
	ctx context.Context,
	svc transferservice.Service,
	chain Chain,
	cfg *config.Config,
	logger *zap.Logger,
) (*Report, error) {
	report := &Report{}
	w := &walk{svc: svc, logger: logger, report: report}

	if err := w.run(ctx, chain, cfg); err != nil {
		report.Failure = err.Error()
		return report, err
	}
	return report, nil
}

func (w *walk) run(ctx context.Context, chain Chain, cfg *config.Config) error {
	ready, err := w.svc.IsNodeReady(ctx)
	if err != nil {
		return err
	}
	if !ready {
		return ErrNodeNotReady
	}

	if cfg.Demo.FunderPrivateKey == "" {
		return ErrMissingFunder
	}
	funderKey := cfg.Demo.FunderPrivateKey
	funder, err := transfer.ParseAccount(funderKey)
	if err != nil {
		return err
	}
	w.report.Funder = funder.Address.Hex()

	if err := w.resolveToken(ctx, funderKey, cfg); err != nil {
		return err
	}

	start, err := chain.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to get block number: %w", err)
	}

	accounts, err := w.svc.CreateAddresses(ctx, demoAccounts)
	if err != nil {
		return err
	}
	w.parties = []common.Address{funder.Address}
	for _, a := range accounts {
		w.parties = append(w.parties, a.Address)
		w.report.Accounts = append(w.report.Accounts, a.Address.Hex())
	}
	tokenAddr, _ := w.token.TokenAddress()

	if err := w.record(ctx, "initial", nil); err != nil {
		return err
	}

	estimate := transfer.SendOptions{OnlyEstimate: true}
	native, err := w.svc.Transfer(ctx, funderKey, transfer.Native(), accounts[0].Address, transferAmount, estimate)
	if err != nil {
		return err
	}
	w.report.Estimate.Native = native.Gas

	token, err := w.svc.Transfer(ctx, funderKey, w.token, accounts[0].Address, transferAmount, estimate)
	if err != nil {
		return err
	}
	w.report.Estimate.Token = token.Gas

	fundWei, err := parseAmount(cfg.Demo.FundAmountWei)
	if err != nil {
		return err
	}
	fundToken, err := parseAmount(cfg.Demo.FundTokenAmount)
	if err != nil {
		return err
	}

	steps := []struct {
		name string
		send func() (*transfer.Result, error)
	}{
		{"fund account 0 (native)", func() (*transfer.Result, error) {
			return w.svc.Transfer(ctx, funderKey, transfer.Native(), accounts[0].Address, fundWei, transfer.SendOptions{})
		}},
		{"fund account 0 (token)", func() (*transfer.Result, error) {
			return w.svc.Transfer(ctx, funderKey, w.token, accounts[0].Address, fundToken, transfer.SendOptions{})
		}},
		{"account 0 -> account 1 (native)", func() (*transfer.Result, error) {
			return w.svc.Transfer(ctx, accounts[0].PrivateKeyHex(), transfer.Native(), accounts[1].Address,
				transferAmount, transfer.SendOptions{})
		}},
		{"account 0 -> account 2 (token)", func() (*transfer.Result, error) {
			return w.svc.Transfer(ctx, accounts[0].PrivateKeyHex(), w.token, accounts[2].Address,
				transferAmount, transfer.SendOptions{})
		}},
		{"account 2 -> account 3 (delegated, paid by account 0)", func() (*transfer.Result, error) {
			est, err := w.svc.TransferDelegated(ctx, accounts[0].PrivateKeyHex(), tokenAddr,
				accounts[2].PrivateKeyHex(), accounts[3].Address, transferAmount, estimate)
			if err != nil {
				return nil, err
			}
			w.report.Estimate.Delegated = est.Gas
			return w.svc.TransferDelegated(ctx, accounts[0].PrivateKeyHex(), tokenAddr,
				accounts[2].PrivateKeyHex(), accounts[3].Address, transferAmount, transfer.SendOptions{})
		}},
	}

	for _, step := range steps {
		res, err := step.send()
		if err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
		if err := w.record(ctx, step.name, res); err != nil {
			return err
		}
	}

	return w.history(ctx, start+1)
}

// resolveToken uses the configured token or deploys a fresh test token
func (w *walk) resolveToken(ctx context.Context, funderKey string, cfg *config.Config) error {
	if cfg.Ethereum.TokenAddress != "" {
		asset, err := transfer.ParseAsset(cfg.Ethereum.TokenAddress)
		if err != nil {
			return err
		}
		w.token = asset
	} else {
		supply, err := parseAmount(cfg.Demo.TokenSupply)
		if err != nil {
			return err
		}
		res, err := w.svc.DeployTestToken(ctx, funderKey,
			cfg.Demo.TokenName, cfg.Demo.TokenSymbol, supply, cfg.Demo.TokenDecimals)
		if err != nil {
			return fmt.Errorf("deploy test token: %w", err)
		}
		if res.ContractAddress == (common.Address{}) {
			return ErrNoTokenAddress
		}
		w.token = transfer.Token(res.ContractAddress)
		w.report.Deployed = true
		w.logger.Info("Deployed test token", zap.String("address", res.ContractAddress.Hex()))
	}
	w.report.Token = w.token.String()

	decimals, err := w.svc.Decimals(ctx, w.token)
	if err != nil {
		return err
	}
	w.decimals = decimals
	return nil
}

// record appends a step with the balances of every party
func (w *walk) record(ctx context.Context, name string, res *transfer.Result) error {
	native, err := w.svc.GetBalances(ctx, transfer.Native(), w.parties)
	if err != nil {
		return err
	}
	token, err := w.svc.GetBalances(ctx, w.token, w.parties)
	if err != nil {
		return err
	}

	step := Step{Name: name, Balances: make([]Balance, len(w.parties))}
	if res != nil {
		step.TxHash = res.TxHash.Hex()
		step.Gas = res.Gas
	}
	for i, addr := range w.parties {
		step.Balances[i] = Balance{
			Address: addr.Hex(),
			Native:  transfer.ScaleExact(native[i], transfer.NativeDecimals).String(),
			Token:   transfer.ScaleExact(token[i], w.decimals).String(),
		}
	}
	w.report.Steps = append(w.report.Steps, step)
	return nil
}

func (w *walk) history(ctx context.Context, from uint64) error {
	query := transfer.HistoryQuery{Addresses: w.parties, FromBlock: &from}

	native, err := w.svc.GetHistory(ctx, transfer.Native(), query)
	if err != nil {
		return err
	}
	token, err := w.svc.GetHistory(ctx, w.token, query)
	if err != nil {
		return err
	}

	w.report.History = HistoryReport{
		FromBlock: from,
		NextBlock: token.NextBlock,
		Native:    historyLines(native.Transfers, transfer.NativeDecimals),
		Token:     historyLines(token.Transfers, w.decimals),
	}
	return nil
}

func historyLines(records []transfer.TransferRecord, decimals uint8) []HistoryLine {
	lines := make([]HistoryLine, len(records))
	for i, rec := range records {
		lines[i] = HistoryLine{
			Block:  rec.BlockNumber,
			TxHash: rec.TxHash.Hex(),
			From:   rec.From.Hex(),
			To:     rec.To.Hex(),
			Amount: transfer.ScaleExact(rec.Amount, decimals).String(),
		}
	}
	return lines
}

func parseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok || amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return amount, nil
}
