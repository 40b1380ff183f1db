package apperrors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

const unknownErrorMessage = "Unknown error occurred"

// FormatMessage renders an error for display.
//
// Business errors get the error code appended, transport errors get the HTTP status and error code appended (when present).
// Any other error is rendered with its own message.
func FormatMessage(err error) string {
	if err == nil {
		return unknownErrorMessage
	}

	var be *BusinessError
	if errors.As(err, &be) {
		if be.Code != "" {
			return fmt.Sprintf("%s (error code: %s)", be.Message, be.Code)
		}
		return be.Message
	}

	var te *TransportError
	if errors.As(err, &te) {
		msg := te.Message
		if te.StatusCode != 0 {
			msg += fmt.Sprintf(" (HTTP %d)", te.StatusCode)
		}
		if te.Code != "" {
			msg += fmt.Sprintf(" (error code: %s)", te.Code)
		}
		return msg
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return unknownErrorMessage
}

// IsNetworkError reports whether err is a connectivity, timeout or cancellation failure
func IsNetworkError(err error) bool {
	var te *TransportError
	if !errors.As(err, &te) {
		return false
	}
	switch te.Kind {
	case KindNetwork, KindTimeout, KindCancelled:
		return true
	}
	return false
}

// IsHTTPError reports whether err is a transport error with an HTTP status
func IsHTTPError(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.StatusCode != 0
}

// IsBusinessError reports whether err is a success:false response from the backend
func IsBusinessError(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}

// IsAbortError reports whether the request was aborted by a timeout or by the caller rather than answered by the server
func IsAbortError(err error) bool {
	var te *TransportError
	if !errors.As(err, &te) {
		return false
	}
	return te.Kind == KindTimeout || te.Kind == KindCancelled
}

// HasErrorCode reports whether err carries a backend error code
func HasErrorCode(err error) bool {
	return ErrorCodeOf(err) != ""
}

// ErrorCodeOf returns the backend error code carried by err, or "" when there is none
func ErrorCodeOf(err error) ErrorCode {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

// StatusOf returns the HTTP status of a transport error, or 0 when there is none
func StatusOf(err error) int {
	var te *TransportError
	if errors.As(err, &te) {
		return te.StatusCode
	}
	return 0
}

// UserMessage returns a short message suitable for showing to the end user.
// Use FormatMessage for logs.
func UserMessage(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		if be.Message != "" {
			return be.Message
		}
		return "The request could not be completed."
	}

	var te *TransportError
	if !errors.As(err, &te) {
		return "An error occurred. Please try again."
	}

	switch te.Kind {
	case KindNetwork:
		return "Unable to connect. Please check your connection and try again."
	case KindTimeout:
		return "The server took too long to respond. Please try again."
	case KindCancelled:
		return "The request was cancelled."
	case KindHTTP:
		switch te.StatusCode {
		case http.StatusUnauthorized:
			return "Your session is not authorised. Please sign in again."
		case http.StatusForbidden:
			return "You don't have permission to access this resource."
		case http.StatusNotFound:
			return "The requested resource was not found."
		case http.StatusBadRequest:
			// server message is the most useful thing for validation errors
			if te.Message != "" {
				return te.Message
			}
			return "Invalid request. Please check your input and try again."
		case http.StatusTooManyRequests:
			return "Too many requests. Please try again in a few moments."
		case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return "The service is temporarily unavailable. Please try again later."
		}
	}
	return "An error occurred. Please try again."
}

// LogErrorCode writes a diagnostic describing how a backend error code should be handled
func LogErrorCode(ctx context.Context, logger *slog.Logger, code ErrorCode) {
	if code == "" {
		logger.WarnContext(ctx, "no error code provided")
		return
	}

	attr := slog.String("error_code", code.String())

	switch code {
	case ErrCodeUnauthorized:
		logger.WarnContext(ctx, "user unauthorized, login required", attr)
	case ErrCodeForbidden:
		logger.WarnContext(ctx, "access forbidden", attr)
	case ErrCodeNotFound, ErrCodeCustomerNotFound, ErrCodeStockNotFound, ErrCodeItemNotFound:
		logger.WarnContext(ctx, "resource not found", attr)
	case ErrCodeValidationError, ErrCodeInvalidArgument, ErrCodeInvalidPhoneFormat, ErrCodeInvalidAddressFormat:
		logger.WarnContext(ctx, "validation error occurred", attr)
	case ErrCodeDuplicateEmail, ErrCodeDuplicatePhone, ErrCodeEmailAlreadyExists, ErrCodePhoneAlreadyExists, ErrCodeCustomerAlreadyExists:
		logger.WarnContext(ctx, "resource already exists", attr)
	case ErrCodeInsufficientStock:
		logger.WarnContext(ctx, "insufficient stock", attr)
	case ErrCodeUnsupportedAction:
		logger.WarnContext(ctx, "unsupported action", attr)
	case ErrCodeTimeout:
		logger.WarnContext(ctx, "request timeout", attr)
	case ErrCodeInternalError, ErrCodeUnexpectedError, ErrCodeSearchError:
		logger.WarnContext(ctx, "server error", attr)
	default:
		logger.WarnContext(ctx, "unknown error code", attr)
	}
}
