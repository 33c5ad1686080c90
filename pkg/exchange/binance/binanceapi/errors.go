package binanceapi

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

// Binance error codes we classify, see
// https://developers.binance.com/docs/binance-spot-api-docs/errors
const (
	ErrCodeTimestampOutOfRecvWindow = -1021
	ErrCodeInvalidSignature         = -1022
	ErrCodeBadSymbol                = -1121
	ErrCodeBadAPIKeyFormat          = -2014
	ErrCodeRejectedMBXKey           = -2015
	ErrCodeAssetNotSupported        = -4018
	ErrCodeAssetNotFound            = -5003
)

// APIError is the error body returned by the binance api:
//
//	{"code":-1121,"msg":"Invalid symbol."}
type APIError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"code"`
	Message    string `json:"msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("binance api error: status=%d code=%d msg=%q", e.StatusCode, e.Code, e.Message)
}

// AuthError is returned when the request can not be signed or the exchange
// rejects the credentials or the signature.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return "auth error: " + e.Err.Error() }

func (e *AuthError) Unwrap() error { return e.Err }

// TransportError is returned for network failures and transient http statuses.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("transport error: status=%d: %s", e.StatusCode, e.Err.Error())
	}

	return "transport error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is returned when the response body does not match the declared schema.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string { return "decode error: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// NotFoundError is returned when the request is valid but the resource does not exist.
type NotFoundError struct {
	Err error
}

func (e *NotFoundError) Error() string { return "not found: " + e.Err.Error() }

func (e *NotFoundError) Unwrap() error { return e.Err }

func IsAuthError(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func newDecodeError(body []byte, err error) error {
	return &DecodeError{Body: body, Err: err}
}

// parseAPIError extracts the binance error body, it returns nil if the body is
// not in the binance error format.
func parseAPIError(statusCode int, body []byte) *APIError {
	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil
	}

	if v.Type() != fastjson.TypeObject || !v.Exists("code") {
		return nil
	}

	return &APIError{
		StatusCode: statusCode,
		Code:       v.GetInt("code"),
		Message:    string(v.GetStringBytes("msg")),
	}
}

// classifyResponseError maps a non-2xx response into the error taxonomy.
func classifyResponseError(statusCode int, body []byte) error {
	var cause error
	apiErr := parseAPIError(statusCode, body)
	if apiErr != nil {
		cause = apiErr
	} else {
		cause = errors.Errorf("unexpected http status %d: %s", statusCode, truncateBody(body))
	}

	switch statusCode {
	case http.StatusTooManyRequests, 418:
		return &TransportError{StatusCode: statusCode, Err: cause}

	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{Err: cause}

	case http.StatusNotFound:
		return &NotFoundError{Err: cause}
	}

	if statusCode >= 500 {
		return &TransportError{StatusCode: statusCode, Err: cause}
	}

	if apiErr != nil {
		switch apiErr.Code {
		case ErrCodeTimestampOutOfRecvWindow, ErrCodeInvalidSignature, ErrCodeBadAPIKeyFormat, ErrCodeRejectedMBXKey:
			return &AuthError{Err: apiErr}

		case ErrCodeBadSymbol, ErrCodeAssetNotSupported, ErrCodeAssetNotFound:
			return &NotFoundError{Err: apiErr}
		}

		return apiErr
	}

	return cause
}

func truncateBody(body []byte) string {
	const maxLen = 256
	if len(body) > maxLen {
		return string(body[:maxLen]) + "..."
	}

	return string(body)
}
