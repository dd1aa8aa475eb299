package service

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/evm-transfers/pkg/app/errors"
	"github.com/chainsafe/evm-transfers/pkg/transfer"
	"github.com/chainsafe/evm-transfers/pkg/transfer/service/mocks"
)

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func newTransferTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func serve(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestReadyHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().IsNodeReady(mock.Anything).Return(true, nil).Once()
	svc.EXPECT().IsNodeReady(mock.Anything).Return(false, nil).Once()
	handler := newTransferTestServer(svc)

	rec := serve(t, handler, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ready":true}`, rec.Body.String())

	rec = serve(t, handler, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"ready":false}`, rec.Body.String())
}

func TestReadyHTTP_NodeUnavailable(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().IsNodeReady(mock.Anything).
		Return(false, apperrors.RPCUnavailableError(errors.New("connection refused")))
	handler := newTransferTestServer(svc)

	rec := serve(t, handler, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Ethereum node unavailable", decodeError(t, rec).Error)
}

func TestBalancesHTTP_Native(t *testing.T) {
	a := common.HexToAddress("0x1111111111111111111111111111111111111111")
	b := common.HexToAddress("0x2222222222222222222222222222222222222222")
	oneAndHalf, _ := new(big.Int).SetString("1500000000000000000", 10)

	svc := mocks.NewService(t)
	svc.EXPECT().Decimals(mock.Anything, transfer.Native()).Return(uint8(18), nil)
	svc.EXPECT().GetBalances(mock.Anything, transfer.Native(), []common.Address{a, b}).
		Return([]*big.Int{oneAndHalf, big.NewInt(0)}, nil)
	handler := newTransferTestServer(svc)

	rec := serve(t, handler, "/api/v1/balances?address="+a.Hex()+"&address="+b.Hex()+"&human=true")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Asset    string `json:"asset"`
		Decimals uint8  `json:"decimals"`
		Balances []struct {
			Address common.Address `json:"address"`
			Amount  *big.Int      `json:"amount"`
			Value   string        `json:"value"`
		} `json:"balances"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, "native", got.Asset)
	assert.Equal(t, uint8(18), got.Decimals)
	require.Len(t, got.Balances, 2)
	assert.Equal(t, a, got.Balances[0].Address)
	assert.Equal(t, oneAndHalf, got.Balances[0].Amount)
	assert.Equal(t, "1.5", got.Balances[0].Value)
	assert.Equal(t, b, got.Balances[1].Address)
	assert.Equal(t, "0", got.Balances[1].Value)
}

func TestBalancesHTTP_TokenWithoutHuman(t *testing.T) {
	token := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	holder := common.HexToAddress("0x1111111111111111111111111111111111111111")

	svc := mocks.NewService(t)
	svc.EXPECT().Decimals(mock.Anything, transfer.Token(token)).Return(uint8(6), nil)
	svc.EXPECT().GetBalances(mock.Anything, transfer.Token(token), []common.Address{holder}).
		Return([]*big.Int{big.NewInt(42)}, nil)
	handler := newTransferTestServer(svc)

	rec := serve(t, handler, "/api/v1/balances?token="+token.Hex()+"&address="+holder.Hex())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"asset": "`+token.Hex()+`",
		"decimals": 6,
		"balances": [{"address": "`+holder.Hex()+`", "amount": 42}]
	}`, rec.Body.String())
}

func TestBalancesHTTP_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		status  int
		message string
	}{
		{
			name:    "missing address",
			target:  "/api/v1/balances",
			status:  http.StatusBadRequest,
			message: "address is required",
		},
		{
			name:    "malformed address",
			target:  "/api/v1/balances?address=0x1234",
			status:  http.StatusBadRequest,
			message: "invalid address: 0x1234",
		},
		{
			name:    "malformed token",
			target:  "/api/v1/balances?token=nope&address=0x1111111111111111111111111111111111111111",
			status:  http.StatusBadRequest,
			message: "invalid address: nope",
		},
		{
			name:    "malformed human flag",
			target:  "/api/v1/balances?address=0x1111111111111111111111111111111111111111&human=maybe",
			status:  http.StatusBadRequest,
			message: "invalid human",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewService(t)
			handler := newTransferTestServer(svc)

			rec := serve(t, handler, tt.target)
			assert.Equal(t, tt.status, rec.Code)
			got := decodeError(t, rec)
			assert.Equal(t, tt.message, got.Error)
			assert.Equal(t, tt.status, got.Code)
		})
	}
}

func TestHistoryHTTP(t *testing.T) {
	token := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	x := common.HexToAddress("0x1111111111111111111111111111111111111111")
	y := common.HexToAddress("0x2222222222222222222222222222222222222222")
	from := uint64(7)

	svc := mocks.NewService(t)
	svc.EXPECT().Decimals(mock.Anything, transfer.Token(token)).Return(uint8(6), nil)
	svc.EXPECT().GetHistory(mock.Anything, transfer.Token(token), transfer.HistoryQuery{
		Addresses: []common.Address{x},
		FromBlock: &from,
	}).Return(&transfer.History{
		NextBlock: 10,
		Transfers: []transfer.TransferRecord{{
			TxHash:      common.HexToHash("0xabc"),
			BlockNumber: 8,
			From:        x,
			To:          y,
			Amount:      big.NewInt(1_250_000),
			HumanAmount: 1.25,
			Timestamp:   1_700_000_000,
		}},
	}, nil)
	handler := newTransferTestServer(svc)

	rec := serve(t, handler, "/api/v1/history?token="+token.Hex()+"&address="+x.Hex()+"&from_block=7&human=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Asset     string `json:"asset"`
		NextBlock uint64 `json:"next_block"`
		Transfers []struct {
			TxHash      common.Hash    `json:"transaction"`
			BlockNumber uint64         `json:"block_number"`
			From        common.Address `json:"from"`
			To          common.Address `json:"to"`
			Amount      *big.Int       `json:"amount"`
			HumanAmount *float64       `json:"human_amount"`
			Value       string         `json:"value"`
			Timestamp   uint64         `json:"timestamp"`
		} `json:"transfers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, uint64(10), got.NextBlock)
	require.Len(t, got.Transfers, 1)
	tr := got.Transfers[0]
	assert.Equal(t, common.HexToHash("0xabc"), tr.TxHash)
	assert.Equal(t, uint64(8), tr.BlockNumber)
	assert.Equal(t, x, tr.From)
	assert.Equal(t, y, tr.To)
	assert.Equal(t, int64(1_250_000), tr.Amount.Int64())
	assert.Nil(t, tr.HumanAmount)
	assert.Equal(t, "1.25", tr.Value)
	assert.Equal(t, uint64(1_700_000_000), tr.Timestamp)
}

func TestHistoryHTTP_AllParties(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetHistory(mock.Anything, transfer.Native(), transfer.HistoryQuery{}).
		Return(&transfer.History{NextBlock: 3, Transfers: []transfer.TransferRecord{}}, nil)
	handler := newTransferTestServer(svc)

	rec := serve(t, handler, "/api/v1/history")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"asset":"native","next_block":3,"transfers":[]}`, rec.Body.String())
}

func TestHistoryHTTP_InvalidFromBlock(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newTransferTestServer(svc)

	rec := serve(t, handler, "/api/v1/history?from_block=-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid from_block", decodeError(t, rec).Error)
}

func TestHistoryHTTP_UnexpectedError(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetHistory(mock.Anything, transfer.Native(), mock.Anything).
		Return(nil, errors.New("boom"))
	handler := newTransferTestServer(svc)

	rec := serve(t, handler, "/api/v1/history")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Unexpected Service Error", decodeError(t, rec).Error)
}
