package ethereum

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"

	apperrors "github.com/chainsafe/evm-transfers/pkg/app/errors"
)

// ClassifyError maps a node error onto a service error category.
// Errors that already carry a category are returned unchanged.
func ClassifyError(method string, err error) error {
	if err == nil {
		return nil
	}

	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}

	if errors.Is(err, context.Canceled) {
		return err
	}

	if isUnreachable(err) {
		return apperrors.RPCUnavailableError(err)
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "insufficient funds") {
		return apperrors.InsufficientFundsError(err, "insufficient funds for gas * price + value")
	}

	if method == "eth_estimateGas" {
		return apperrors.EstimationFailedError(err, "gas estimation failed")
	}

	return err
}

func isUnreachable(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "no route to host")
}
