package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alex005489465/MeowManager/internal/apperrors"
	"github.com/google/uuid"
)

// RequestOptions adjust a single call.
//
// Cancellation is controlled by the context passed to Post: cancelling it aborts the request.
// The timeout is applied on top of that context, so a request is bounded even when the caller's context never ends.
type RequestOptions struct {
	Timeout time.Duration     // default: the client timeout (10s)
	Headers map[string]string // override the default and client-wide headers
}

// Post sends body as JSON to the endpoint at path and decodes the response envelope.
//
// A nil body sends an empty request body.
// The returned envelope may have Success == false: business failures are logged but not returned as errors,
// and their data is left as the zero value.
// All other failures are returned as *apperrors.TransportError.
func Post[T any](ctx context.Context, c *Client, path string, body any, opts *RequestOptions) (*Envelope[T], error) {
	timeout := c.timeout
	var headers map[string]string
	if opts != nil {
		if opts.Timeout > 0 {
			timeout = opts.Timeout
		}
		headers = opts.Headers
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, limiterFailure(ctx, err)
		}
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.NewInternalError(err, "marshaling request body")
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, apperrors.NewInternalError(err, "creating request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	reqLogger := c.logger.With(
		slog.String("path", path),
		slog.String("request_id", req.Header.Get(RequestIDHeader)),
	)
	reqLogger.DebugContext(ctx, "api request", slog.String("method", http.MethodPost))

	start := time.Now()

	res, err := c.httpClient.Do(req)
	if err != nil {
		te := requestFailure(ctx, err)
		reqLogger.DebugContext(ctx, "api request failed",
			slog.String("kind", te.Kind.String()),
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)),
		)
		return nil, te
	}
	defer res.Body.Close()

	reqLogger.DebugContext(ctx, "api response",
		slog.Int("status", res.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, httpFailure(res)
	}

	var raw rawEnvelope
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		// the deadline can fire while the body is still being read
		if ctx.Err() != nil {
			return nil, requestFailure(ctx, err)
		}
		return nil, apperrors.NewMalformedResponseError(err)
	}

	envelope := &Envelope[T]{
		Success:   raw.Success,
		Message:   raw.Message,
		ErrorCode: raw.ErrorCode,
	}

	// failure envelopes may carry unrelated data (e.g. field errors), so data is only decoded on success
	if !raw.Success {
		reqLogger.WarnContext(ctx, "api business logic error",
			slog.String("message", envelope.Message),
			slog.String("error_code", envelope.Code().String()),
		)
		return envelope, nil
	}

	if len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, &envelope.Data); err != nil {
			return nil, apperrors.NewMalformedResponseError(err)
		}
	}

	return envelope, nil
}

// rawEnvelope holds a decoded envelope whose data has not been bound to a type yet
type rawEnvelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	ErrorCode *string         `json:"errorCode"`
}

// requestFailure classifies an error returned before a response was available
func requestFailure(ctx context.Context, err error) *apperrors.TransportError {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewTimeoutError(err)
	case errors.Is(ctx.Err(), context.Canceled), errors.Is(err, context.Canceled):
		return apperrors.NewCancelledError(err)
	}

	// a custom http.Client with its own Timeout reports expiry as a net.Error
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.NewTimeoutError(err)
	}

	return apperrors.NewNetworkError(err)
}

// limiterFailure classifies an error from the rate limiter. The limiter fails early when the wait would exceed the deadline.
func limiterFailure(ctx context.Context, err error) *apperrors.TransportError {
	if ctx.Err() != nil {
		return requestFailure(ctx, err)
	}
	return apperrors.NewTimeoutError(err)
}

// httpFailure creates a TransportError from a non-2xx response, using the message and errorCode from the body when available
func httpFailure(res *http.Response) *apperrors.TransportError {
	var serverErr struct {
		Message   string  `json:"message"`
		ErrorCode *string `json:"errorCode"`
	}

	var (
		message string
		code    apperrors.ErrorCode
	)

	body, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
	if err == nil && json.Unmarshal(body, &serverErr) == nil {
		message = serverErr.Message
		if serverErr.ErrorCode != nil {
			code = apperrors.ErrorCode(*serverErr.ErrorCode)
		}
	}

	// res.Status is "404 Not Found"
	statusText := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode)))

	return apperrors.NewHTTPError(res.StatusCode, statusText, message, code)
}
