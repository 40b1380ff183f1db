// Package apperrors holds the error types returned when calling the ERP backend
// and the helpers used to classify and render them.
//
// There are two error kinds:
//
//   - TransportError: the request did not complete with a 2xx response (network failure,
//     timeout, cancellation, non-2xx status, unreadable response).
//   - BusinessError: the backend processed the request but answered success:false.
//
// Use errors.As to match on the kind, or the Is* predicates in classify.go.
package apperrors

import (
	"fmt"
	"net/http"
)

// TransportKind tags the cause of a TransportError.
type TransportKind int

const (
	// KindNetwork - the backend could not be reached.
	KindNetwork TransportKind = iota
	// KindTimeout - the request deadline expired before a response arrived.
	KindTimeout
	// KindCancelled - the caller cancelled the request.
	KindCancelled
	// KindHTTP - the backend answered with a non-2xx status.
	KindHTTP
	// KindMalformed - a 2xx response body could not be decoded as an envelope.
	KindMalformed
	// KindInternal - the request could not be built (e.g. the body could not be encoded).
	KindInternal
)

func (k TransportKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindCancelled:
		return "cancelled"
	case KindHTTP:
		return "http"
	case KindMalformed:
		return "malformed_response"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

const (
	networkErrorMessage   = "Network Error: Unable to connect to server"
	timeoutErrorMessage   = "Request timeout"
	cancelledErrorMessage = "Request cancelled"
)

// TransportError is returned when a request to the backend fails before a usable envelope is received.
// StatusCode 0 = no HTTP response was received.
type TransportError struct {
	Kind       TransportKind
	Message    string
	StatusCode int
	StatusText string
	Code       ErrorCode
	Err        error
}

func (e *TransportError) Error() string {
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a TransportError for connection failures
func NewNetworkError(err error) *TransportError {
	return &TransportError{
		Kind:    KindNetwork,
		Message: networkErrorMessage,
		Err:     err,
	}
}

// NewTimeoutError creates a TransportError for a request that exceeded its deadline
func NewTimeoutError(err error) *TransportError {
	return &TransportError{
		Kind:    KindTimeout,
		Message: timeoutErrorMessage,
		Err:     err,
	}
}

// NewCancelledError creates a TransportError for a request aborted by the caller
func NewCancelledError(err error) *TransportError {
	return &TransportError{
		Kind:    KindCancelled,
		Message: cancelledErrorMessage,
		Err:     err,
	}
}

// NewHTTPError creates a TransportError from a non-2xx response.
// message and code are the values parsed from the error body; pass empty strings when the body had none.
func NewHTTPError(statusCode int, statusText, message string, code ErrorCode) *TransportError {
	if statusText == "" {
		statusText = http.StatusText(statusCode)
	}
	if message == "" {
		message = fmt.Sprintf("HTTP Error: %d %s", statusCode, statusText)
	}
	return &TransportError{
		Kind:       KindHTTP,
		Message:    message,
		StatusCode: statusCode,
		StatusText: statusText,
		Code:       code,
	}
}

// NewMalformedResponseError creates a TransportError for a 2xx response that could not be decoded
func NewMalformedResponseError(err error) *TransportError {
	return &TransportError{
		Kind:    KindMalformed,
		Message: fmt.Sprintf("invalid response from server: %v", err),
		Err:     err,
	}
}

// NewInternalError creates a TransportError for a request that could not be sent, supply the error and an explanation of what was being done when the error occurred
func NewInternalError(err error, while string) *TransportError {
	return &TransportError{
		Kind:    KindInternal,
		Message: fmt.Sprintf("internal error: %v while %v", err, while),
		Err:     err,
	}
}

// BusinessError is a request the backend received and declined (success:false).
type BusinessError struct {
	Message string
	Code    ErrorCode
}

func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError creates a BusinessError from the message and errorCode of a failed envelope
func NewBusinessError(message string, code ErrorCode) *BusinessError {
	return &BusinessError{
		Message: message,
		Code:    code,
	}
}
