package transfer

import (
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// AuthorizationPrimaryType is the EIP-712 primary type signed for delegated transfers.
const AuthorizationPrimaryType = "TransferWithAuthorization"

// DefaultAuthorizationWindow is how long a signed authorization stays valid.
const DefaultAuthorizationWindow = time.Hour

// SignatureLength is the length of an r || s || v signature.
const SignatureLength = 65

var ErrInvalidSignatureLength = errors.New("invalid signature length")

var eip712DomainType = []apitypes.Type{
	{Name: "name", Type: "string"},
	{Name: "version", Type: "string"},
	{Name: "chainId", Type: "uint256"},
	{Name: "verifyingContract", Type: "address"},
}

var transferWithAuthorizationType = []apitypes.Type{
	{Name: "from", Type: "address"},
	{Name: "to", Type: "address"},
	{Name: "value", Type: "uint256"},
	{Name: "validAfter", Type: "uint256"},
	{Name: "validBefore", Type: "uint256"},
	{Name: "nonce", Type: "bytes32"},
}

// Domain is the EIP-712 domain of a token.
type Domain struct {
	Name              string
	Version           string
	ChainID           *big.Int
	VerifyingContract common.Address
}

// Authorization is an EIP-3009 TransferWithAuthorization message.
type Authorization struct {
	From        common.Address
	To          common.Address
	Value       *big.Int
	ValidAfter  *big.Int
	ValidBefore *big.Int
	Nonce       [32]byte
}

// NewAuthorization builds a message valid from 0 until now+window with a fresh random nonce.
func NewAuthorization(from, to common.Address, value *big.Int, now time.Time, window time.Duration) (*Authorization, error) {
	nonce, err := NewNonce()
	if err != nil {
		return nil, err
	}
	return &Authorization{
		From:        from,
		To:          to,
		Value:       new(big.Int).Set(value),
		ValidAfter:  big.NewInt(0),
		ValidBefore: big.NewInt(now.Unix() + int64(window/time.Second)),
		Nonce:       nonce,
	}, nil
}

// NewNonce returns 32 random bytes.
func NewNonce() ([32]byte, error) {
	var nonce [32]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nonce, fmt.Errorf("failed to generate authorization nonce: %w", err)
	}
	return nonce, nil
}

// TypedData assembles the EIP-712 payload for auth under domain.
func (auth *Authorization) TypedData(domain Domain) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain":           eip712DomainType,
			AuthorizationPrimaryType: transferWithAuthorizationType,
		},
		PrimaryType: AuthorizationPrimaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              domain.Name,
			Version:           domain.Version,
			ChainId:           (*math.HexOrDecimal256)(new(big.Int).Set(domain.ChainID)),
			VerifyingContract: domain.VerifyingContract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"from":        auth.From.Hex(),
			"to":          auth.To.Hex(),
			"value":       auth.Value.String(),
			"validAfter":  auth.ValidAfter.String(),
			"validBefore": auth.ValidBefore.String(),
			"nonce":       hexutil.Encode(auth.Nonce[:]),
		},
	}
}

// Hash returns the EIP-712 digest of auth under domain.
func (auth *Authorization) Hash(domain Domain) ([]byte, error) {
	hash, _, err := apitypes.TypedDataAndHash(auth.TypedData(domain))
	if err != nil {
		return nil, fmt.Errorf("failed to hash typed data: %w", err)
	}
	return hash, nil
}

// Sign signs auth under domain, returning r || s || v with v in {27, 28}.
func (auth *Authorization) Sign(domain Domain, key *ecdsa.PrivateKey) ([]byte, error) {
	hash, err := auth.Hash(domain)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(hash, key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign typed data: %w", err)
	}
	sig[64] += 27
	return sig, nil
}

// Signer recovers the address that produced sig over auth under domain.
func (auth *Authorization) Signer(domain Domain, sig []byte) (common.Address, error) {
	if len(sig) != SignatureLength {
		return common.Address{}, ErrInvalidSignatureLength
	}
	hash, err := auth.Hash(domain)
	if err != nil {
		return common.Address{}, err
	}

	normalized := make([]byte, SignatureLength)
	copy(normalized, sig)
	if normalized[64] >= 27 {
		normalized[64] -= 27
	}

	pub, err := crypto.SigToPub(hash, normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover signer: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// SplitSignature splits r || s || v into its components.
func SplitSignature(sig []byte) (v uint8, r, s [32]byte, err error) {
	if len(sig) != SignatureLength {
		return 0, r, s, fmt.Errorf("%w: got %d bytes", ErrInvalidSignatureLength, len(sig))
	}
	copy(r[:], sig[0:32])
	copy(s[:], sig[32:64])
	return sig[64], r, s, nil
}
