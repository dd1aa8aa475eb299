// Package transfer holds the domain types shared by the transfer service, its HTTP surface
// and the command line tools.
package transfer

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"

	apperrors "github.com/chainsafe/evm-transfers/pkg/app/errors"
)

// NativeDecimals is the decimal convention of the chain's native currency.
const NativeDecimals = 18

// Asset selects between the native currency and an ERC20 token.
// The zero value is the native currency.
type Asset struct {
	token *common.Address
}

// Native returns the native-currency asset.
func Native() Asset {
	return Asset{}
}

// Token returns the ERC20 asset deployed at addr.
func Token(addr common.Address) Asset {
	return Asset{token: &addr}
}

// ParseAsset returns Native for an empty string, otherwise the token at the given hex address.
func ParseAsset(s string) (Asset, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Native(), nil
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return Asset{}, err
	}
	return Token(addr), nil
}

// IsNative reports whether the asset is the chain's native currency.
func (a Asset) IsNative() bool {
	return a.token == nil
}

// TokenAddress returns the token contract address and false for the native currency.
func (a Asset) TokenAddress() (common.Address, bool) {
	if a.token == nil {
		return common.Address{}, false
	}
	return *a.token, true
}

func (a Asset) String() string {
	if a.token == nil {
		return "native"
	}
	return a.token.Hex()
}

// Account is a keypair owned by the caller.
type Account struct {
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
}

// NewAccount derives the account of key.
func NewAccount(key *ecdsa.PrivateKey) Account {
	return Account{
		Address:    crypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
	}
}

// ParseAccount derives an account from a hex private key; the 0x prefix is optional.
func ParseAccount(keyHex string) (Account, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(keyHex), "0x"))
	if err != nil {
		return Account{}, apperrors.InvalidAddressError(err, "invalid private key")
	}
	return NewAccount(key), nil
}

// PrivateKeyHex renders the private key as 0x-prefixed hex.
func (a Account) PrivateKeyHex() string {
	return "0x" + hex.EncodeToString(crypto.FromECDSA(a.PrivateKey))
}

// ParseAddress validates a 0x-prefixed hex address.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, apperrors.InvalidAddressError(
			fmt.Errorf("invalid address %q", s), "invalid address: "+s)
	}
	return common.HexToAddress(s), nil
}

// CallData is a prepared contract call, or a contract creation when To is nil.
type CallData struct {
	To   *common.Address
	Data []byte
}

// SendOptions tunes a state-changing operation.
type SendOptions struct {
	// GasPrice in wei; nil asks the node for a suggestion.
	GasPrice *big.Int
	// OnlyEstimate returns the raw gas estimate without signing or submitting.
	OnlyEstimate bool
}

// Result describes the outcome of a state-changing operation.
type Result struct {
	// Gas is the raw estimate when Estimated is set, otherwise the gas limit of the sent transaction.
	Gas       uint64
	Estimated bool
	TxHash    common.Hash
	Receipt   *types.Receipt
	// ContractAddress is set by deployments.
	ContractAddress common.Address
}

// TransferRecord is one transfer found by a history scan.
type TransferRecord struct {
	TxHash      common.Hash    `json:"transaction"`
	BlockNumber uint64         `json:"block_number"`
	From        common.Address `json:"from"`
	To          common.Address `json:"to"`
	Amount      *big.Int       `json:"amount"`
	// HumanAmount is Amount times the decimal factor; set only when requested.
	HumanAmount float64 `json:"human_amount,omitzero"`
	Timestamp   uint64  `json:"timestamp"`
}

// History is the result of a history scan.
type History struct {
	// NextBlock is the head captured at scan start plus one.
	NextBlock uint64           `json:"next_block"`
	Transfers []TransferRecord `json:"transfers"`
}

// HistoryQuery selects the block range and parties of a history scan.
type HistoryQuery struct {
	// Addresses matches transfers whose sender or recipient is listed; nil matches everything.
	Addresses []common.Address
	// FromBlock defaults to the current head.
	FromBlock     *uint64
	HumanReadable bool
}

// Matches reports whether a transfer between from and to passes the address filter.
func (q HistoryQuery) Matches(from, to common.Address) bool {
	if q.Addresses == nil {
		return true
	}
	for _, a := range q.Addresses {
		if a == from || a == to {
			return true
		}
	}
	return false
}

// DecimalFactor returns 10^-decimals as a float.
func DecimalFactor(decimals uint8) float64 {
	f, _ := decimal.New(1, -int32(decimals)).Float64()
	return f
}

// Scale multiplies raw by factor in floating point.
// The result is a lossy convenience value for display; use ScaleExact for accounting.
func Scale(raw *big.Int, factor float64) float64 {
	f, _ := new(big.Float).SetInt(raw).Float64()
	return f * factor
}

// ScaleExact converts a raw integer amount to an exact decimal with the given number of decimals.
func ScaleExact(raw *big.Int, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(raw, -int32(decimals))
}
