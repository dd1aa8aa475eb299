package service

import (
	"errors"
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/evm-transfers/pkg/app/errors"
	apphttp "github.com/chainsafe/evm-transfers/pkg/app/http"
	"github.com/chainsafe/evm-transfers/pkg/transfer"
)

var errMissingAddress = errors.New("at least one address is required")

// HTTP wraps the Service to provide read-only HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type readyResponse struct {
	Ready bool `json:"ready"`
}

type balanceEntry struct {
	Address common.Address   `json:"address"`
	Amount  *big.Int         `json:"amount"`
	Value   *decimal.Decimal `json:"value,omitempty"`
}

type balancesResponse struct {
	Asset    string         `json:"asset"`
	Decimals uint8          `json:"decimals"`
	Balances []balanceEntry `json:"balances"`
}

type historyEntry struct {
	transfer.TransferRecord
	Value *decimal.Decimal `json:"value,omitempty"`
}

type historyResponse struct {
	Asset     string         `json:"asset"`
	NextBlock uint64         `json:"next_block"`
	Transfers []historyEntry `json:"transfers"`
}

// RegisterRoutes registers HTTP endpoints for the transfer service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/ready", apphttp.HandleError(h.ready, logger))
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/balances", apphttp.HandleError(h.balances, logger))
		r.Get("/history", apphttp.HandleError(h.history, logger))
	})
}

// ready reports 200 once the node has finished syncing, 503 otherwise
func (h *HTTP) ready(w http.ResponseWriter, r *http.Request) error {
	ready, err := h.service.IsNodeReady(r.Context())
	if err != nil {
		return err
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, readyResponse{Ready: ready})
	return nil
}

// balances handles GET /api/v1/balances?token=&address=...&human=
func (h *HTTP) balances(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	asset, err := transfer.ParseAsset(query.Get("token"))
	if err != nil {
		return err
	}
	addresses, err := parseAddresses(query["address"])
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		return apperrors.BadRequestError(errMissingAddress, "address is required")
	}
	human, err := parseBool(query.Get("human"), "human")
	if err != nil {
		return err
	}

	decimals, err := h.service.Decimals(r.Context(), asset)
	if err != nil {
		return err
	}
	raw, err := h.service.GetBalances(r.Context(), asset, addresses)
	if err != nil {
		return err
	}

	resp := balancesResponse{
		Asset:    asset.String(),
		Decimals: decimals,
		Balances: make([]balanceEntry, len(raw)),
	}
	for i, amount := range raw {
		entry := balanceEntry{Address: addresses[i], Amount: amount}
		if human {
			value := transfer.ScaleExact(amount, decimals)
			entry.Value = &value
		}
		resp.Balances[i] = entry
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

// history handles GET /api/v1/history?token=&address=...&from_block=&human=
func (h *HTTP) history(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	asset, err := transfer.ParseAsset(query.Get("token"))
	if err != nil {
		return err
	}
	addresses, err := parseAddresses(query["address"])
	if err != nil {
		return err
	}
	human, err := parseBool(query.Get("human"), "human")
	if err != nil {
		return err
	}

	// HumanAmount stays unset; human values are computed with ScaleExact below
	hq := transfer.HistoryQuery{Addresses: addresses}
	if s := query.Get("from_block"); s != "" {
		from, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return apperrors.BadRequestError(err, "invalid from_block")
		}
		hq.FromBlock = &from
	}

	var decimals uint8
	if human {
		decimals, err = h.service.Decimals(r.Context(), asset)
		if err != nil {
			return err
		}
	}

	hist, err := h.service.GetHistory(r.Context(), asset, hq)
	if err != nil {
		return err
	}

	resp := historyResponse{
		Asset:     asset.String(),
		NextBlock: hist.NextBlock,
		Transfers: make([]historyEntry, len(hist.Transfers)),
	}
	for i, rec := range hist.Transfers {
		entry := historyEntry{TransferRecord: rec}
		if human {
			value := transfer.ScaleExact(rec.Amount, decimals)
			entry.Value = &value
		}
		resp.Transfers[i] = entry
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

// parseAddresses returns nil for no input so that history matches every party
func parseAddresses(values []string) ([]common.Address, error) {
	if len(values) == 0 {
		return nil, nil
	}
	addresses := make([]common.Address, 0, len(values))
	for _, v := range values {
		addr, err := transfer.ParseAddress(v)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}

func parseBool(s, name string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, apperrors.BadRequestError(err, "invalid "+name)
	}
	return b, nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	if err := apphttp.WriteJSON(w, status, data); err != nil {
		h.logger.Warn("Failed to encode response", zap.Error(err))
	}
}
