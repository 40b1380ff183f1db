package apitest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alex005489465/MeowManager/internal/apperrors"
	"github.com/alex005489465/MeowManager/internal/logger"
)

// envelope is the wire form written by the stub; errorCode is null unless set
type envelope struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	Data      any     `json:"data"`
	ErrorCode *string `json:"errorCode"`
}

// Success responds 200 with {success:true, data}
func Success(data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, envelope{
			Success: true,
			Message: "",
			Data:    data,
		})
	}
}

// Failure responds 200 with {success:false, message, errorCode}. An empty code is sent as null.
func Failure(message string, code apperrors.ErrorCode) http.HandlerFunc {
	return FailureWithData(message, code, nil)
}

// FailureWithData is Failure with a data payload, as the backend sends for field validation errors
func FailureWithData(message string, code apperrors.ErrorCode, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var errorCode *string
		if code != "" {
			c := string(code)
			errorCode = &c
		}

		logger.ContextWithLogAttrs(r.Context(),
			slog.String("error_code", string(code)),
		)

		respondWithJSON(w, http.StatusOK, envelope{
			Success:   false,
			Message:   message,
			Data:      data,
			ErrorCode: errorCode,
		})
	}
}

// HTTPError responds with a non-2xx status and a {message, errorCode} body
func HTTPError(status int, message string, code apperrors.ErrorCode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{"message": message, "errorCode": nil}
		if code != "" {
			body["errorCode"] = string(code)
		}
		respondWithJSON(w, status, body)
	}
}

// Raw responds with the given status and body unchanged (use for malformed or non-JSON responses)
func Raw(status int, contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"Internal Server Error","data":null,"errorCode":"INTERNAL_ERROR"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
