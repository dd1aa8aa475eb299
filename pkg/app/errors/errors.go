// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is used when a call completed without error.
	CategoryNoError Category = iota
	// CategoryDataError The client sends some invalid data in the request,
	// for example, missing or incorrect content in the payload or parameters.
	// Could also represent a generic client error.
	CategoryDataError
	// CategoryUnauthorized The client is not authorized to access the requested resource
	CategoryUnauthorized
	// CategoryForbidden The client is not authenticated to access the requested resource
	CategoryForbidden
	// CategoryResourceNotFound The client is attempting to access a resource that does not exist
	CategoryResourceNotFound
	// CategoryNotSupported The requested functionality is not supported
	CategoryNotSupported
	// CategoryDataConflict The client send some data that can create conflict with existing data
	CategoryDataConflict
	// CategoryLocked The client is not able to access the requested resource due to its locked state
	CategoryLocked
	// CategoryInvalidAddress The client supplied a malformed address or private key
	CategoryInvalidAddress
	// CategoryInsufficientFunds The sending account cannot cover value plus gas
	CategoryInsufficientFunds
	// CategoryEstimationFailed The node refused to estimate gas, usually because the call would revert
	CategoryEstimationFailed
	// CategoryTransactionReverted The transaction was mined with a failed status
	CategoryTransactionReverted
	// CategoryDependencyFailure A dependent service is throwing errors
	CategoryDependencyFailure
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
	// CategoryRecovering The service is failing but is expected to recover
	CategoryRecovering
	// CategoryConnectionTimeout Connection to a dependent service timing out
	CategoryConnectionTimeout
	// CategoryRPCUnavailable The Ethereum node could not be reached
	CategoryRPCUnavailable
)

func (c Category) String() string {
	switch c {
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryForbidden:
		return "CategoryForbidden"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryNotSupported:
		return "CategoryNotSupported"
	case CategoryDataConflict:
		return "CategoryDataConflict"
	case CategoryLocked:
		return "CategoryLocked"
	case CategoryInvalidAddress:
		return "CategoryInvalidAddress"
	case CategoryInsufficientFunds:
		return "CategoryInsufficientFunds"
	case CategoryEstimationFailed:
		return "CategoryEstimationFailed"
	case CategoryTransactionReverted:
		return "CategoryTransactionReverted"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	case CategoryRecovering:
		return "CategoryRecovering"
	case CategoryConnectionTimeout:
		return "CategoryConnectionTimeout"
	case CategoryRPCUnavailable:
		return "CategoryRPCUnavailable"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError represents service specific type that
// is used all over the services.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is implements the custom condition to check an error is equal to a service error
func (err ServiceError) Is(target error) bool {
	return err.Message == target.Error()
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category == cat {
		return true
	}
	return false
}

// IsInternalError checks that provided error is a Internal system error
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && (svcErr.Category < CategoryDependencyFailure) {
		return false
	}
	return true
}

// GeneralError returns a general service error
// this error mesage sent to the user is "Internal Server Error"
// the error passed is logged in the logger
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "Internal Server Error",
		Err:      err,
	}
}

// ResourceNotFoundError returns an error with category ResourceNotFound
// the error message provided is returned to the user
// the err object provided is logged in logger
func ResourceNotFoundError(err error, message string) error {
	if err == nil {
		err = errors.New("resource not found:" + message)
	}
	return &ServiceError{
		Category: CategoryResourceNotFound,
		Message:  message,
		Err:      err,
	}
}

// BadRequestError returns  an error with category DataError
// the error message provided is returned to the user
// the error object provided is logged in logger
func BadRequestError(err error, message string) error {
	if err == nil {
		err = errors.New("bad request:" + message)
	}
	return &ServiceError{
		Category: CategoryDataError,
		Message:  message,
		Err:      err,
	}
}

// InvalidAddressError returns an error with category InvalidAddress
// the error message provided is returned to the user
// the error object provided is logged in logger
func InvalidAddressError(err error, message string) error {
	if err == nil {
		err = errors.New("invalid address:" + message)
	}
	return &ServiceError{
		Category: CategoryInvalidAddress,
		Message:  message,
		Err:      err,
	}
}

// InsufficientFundsError returns an error with category InsufficientFunds
func InsufficientFundsError(err error, message string) error {
	if err == nil {
		err = errors.New("insufficient funds")
	}
	return &ServiceError{
		Category: CategoryInsufficientFunds,
		Message:  message,
		Err:      err,
	}
}

// EstimationFailedError returns an error with category EstimationFailed
func EstimationFailedError(err error, message string) error {
	if err == nil {
		err = errors.New("gas estimation failed")
	}
	return &ServiceError{
		Category: CategoryEstimationFailed,
		Message:  message,
		Err:      err,
	}
}

// TransactionRevertedError returns an error with category TransactionReverted
// the err object provided is logged in logger
func TransactionRevertedError(err error, message string) error {
	if err == nil {
		err = errors.New("transaction reverted:" + message)
	}
	return &ServiceError{
		Category: CategoryTransactionReverted,
		Message:  message,
		Err:      err,
	}
}

// RPCUnavailableError returns an error with category RPCUnavailable
// the error message sent to the user is "Ethereum node unavailable"
func RPCUnavailableError(err error) error {
	if err == nil {
		err = errors.New("rpc unavailable")
	}
	return &ServiceError{
		Category: CategoryRPCUnavailable,
		Message:  "Ethereum node unavailable",
		Err:      err,
	}
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryNotSupported:
		return http.StatusMethodNotAllowed
	case CategoryDataConflict:
		return http.StatusConflict
	case CategoryLocked:
		return http.StatusLocked
	case CategoryInvalidAddress:
		return http.StatusBadRequest
	case CategoryInsufficientFunds, CategoryEstimationFailed, CategoryTransactionReverted:
		return http.StatusUnprocessableEntity
	case CategoryDependencyFailure:
		return http.StatusBadGateway
	case CategoryGeneralError:
		return http.StatusInternalServerError
	case CategoryRecovering:
		return http.StatusServiceUnavailable
	case CategoryConnectionTimeout:
		return http.StatusGatewayTimeout
	case CategoryRPCUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
