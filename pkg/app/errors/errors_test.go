package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceError_StatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", BadRequestError(nil, "bad"), http.StatusBadRequest},
		{"invalid address", InvalidAddressError(nil, "bad address"), http.StatusBadRequest},
		{"not found", ResourceNotFoundError(nil, "missing"), http.StatusNotFound},
		{"insufficient funds", InsufficientFundsError(nil, "no funds"), http.StatusUnprocessableEntity},
		{"estimation failed", EstimationFailedError(nil, "estimate"), http.StatusUnprocessableEntity},
		{"reverted", TransactionRevertedError(nil, "reverted"), http.StatusUnprocessableEntity},
		{"rpc unavailable", RPCUnavailableError(nil), http.StatusServiceUnavailable},
		{"general", GeneralError(nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svcErr *ServiceError
			require.True(t, errors.As(tt.err, &svcErr))
			assert.Equal(t, tt.want, svcErr.StatusCode())
		})
	}
}

func TestIs_MatchesCategoryThroughWrapping(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:8545: connect: connection refused")
	err := fmt.Errorf("failed to get balance: %w", RPCUnavailableError(cause))

	assert.True(t, Is(err, CategoryRPCUnavailable))
	assert.False(t, Is(err, CategoryDataError))
	assert.True(t, errors.Is(err, cause))
}

func TestIsInternalError(t *testing.T) {
	assert.False(t, IsInternalError(InvalidAddressError(nil, "bad")))
	assert.False(t, IsInternalError(TransactionRevertedError(nil, "reverted")))
	assert.True(t, IsInternalError(RPCUnavailableError(nil)))
	assert.True(t, IsInternalError(errors.New("plain")))
}

func TestServiceError_ErrorPrefersCause(t *testing.T) {
	err := InvalidAddressError(errors.New("encoding/hex: invalid byte"), "invalid private key")
	assert.Equal(t, "encoding/hex: invalid byte", err.Error())

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "invalid private key", svcErr.Message)
	assert.Equal(t, "CategoryInvalidAddress", svcErr.Category.String())
}
