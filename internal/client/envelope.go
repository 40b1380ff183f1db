package client

import "github.com/alex005489465/MeowManager/internal/apperrors"

// Envelope is the response shape returned by every ERP backend endpoint.
// ErrorCode is normally only set when Success is false (the server does not enforce this).
type Envelope[T any] struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	Data      T       `json:"data"`
	ErrorCode *string `json:"errorCode"`
}

func (e *Envelope[T]) IsSuccess() bool {
	return e != nil && e.Success
}

// ErrorMessage returns the envelope message, or a generic message when the server did not supply one
func (e *Envelope[T]) ErrorMessage() string {
	if e == nil || e.Message == "" {
		return "Unknown error"
	}
	return e.Message
}

// Code returns the error code, or "" when it is null
func (e *Envelope[T]) Code() apperrors.ErrorCode {
	if e == nil || e.ErrorCode == nil {
		return ""
	}
	return apperrors.ErrorCode(*e.ErrorCode)
}

func (e *Envelope[T]) HasErrorCode() bool {
	return e != nil && e.ErrorCode != nil
}

// BusinessError converts a success:false envelope into an error carrying the server message and code
func (e *Envelope[T]) BusinessError() *apperrors.BusinessError {
	return apperrors.NewBusinessError(e.Message, e.Code())
}
