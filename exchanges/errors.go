package exchange

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Root error kinds. Every failed call surfaces exactly one *Error whose Kind
// wraps into this set, so callers discriminate with errors.Is against any
// level of the hierarchy.
var (
	// ErrNetwork covers transport level failures before a response arrived
	ErrNetwork = errors.New("network error")
	// ErrConnection reports dial, reset and refusal failures
	ErrConnection = fmt.Errorf("connection error: %w", ErrNetwork)
	// ErrTimeout reports an exceeded deadline while dialing or awaiting a
	// response
	ErrTimeout = fmt.Errorf("timeout error: %w", ErrNetwork)

	// ErrResponse covers malformed venue responses
	ErrResponse = errors.New("response error")
	// ErrParseJSON reports an undecodable response body; the raw payload is
	// retained on the Error record
	ErrParseJSON = fmt.Errorf("parse json error: %w", ErrResponse)

	// ErrExchange is the generic venue reported failure
	ErrExchange = errors.New("exchange error")
	// ErrMaintenance reports a venue shut for maintenance
	ErrMaintenance = fmt.Errorf("exchange in maintenance: %w", ErrExchange)
	// ErrAuthentication reports rejected credentials or signatures
	ErrAuthentication = fmt.Errorf("authentication error: %w", ErrExchange)
	// ErrPermissionDenied reports valid credentials lacking rights for the
	// requested operation
	ErrPermissionDenied = fmt.Errorf("permission denied: %w", ErrAuthentication)
	// ErrRateLimitWarning reports a venue signalling the caller is close to
	// its request ceiling
	ErrRateLimitWarning = fmt.Errorf("rate limit warning: %w", ErrExchange)
	// ErrRateLimit reports an exceeded request ceiling
	ErrRateLimit = fmt.Errorf("rate limit exceeded: %w", ErrExchange)
	// ErrArguments reports venue rejected request parameters
	ErrArguments = fmt.Errorf("arguments error: %w", ErrExchange)
	// ErrArgumentsRequired reports missing mandatory request parameters
	ErrArgumentsRequired = fmt.Errorf("arguments required: %w", ErrArguments)
	// ErrServiceTimeout reports a venue backend timing out internally while
	// the HTTP conversation itself succeeded
	ErrServiceTimeout = fmt.Errorf("service timeout: %w", ErrExchange)

	// ErrInvalidMethod reports an HTTP verb the venue does not accept
	ErrInvalidMethod = errors.New("invalid HTTP method")
)

// UnknownCode is recorded when a venue failure carries no native error code
const UnknownCode = "-1"

// unsetStatusCode is recorded when no HTTP conversation took place
const unsetStatusCode = -1

// Error is the uniform record for any failed call. Kind places it in the
// error hierarchy, Code carries the venue native error code verbatim and
// Payload retains the raw response body untouched.
type Error struct {
	Kind       error
	Code       string
	Message    string
	StatusCode int
	Payload    json.RawMessage
}

// NewError returns an Error of the supplied kind recorded against an HTTP
// status. An empty code is normalised to UnknownCode.
func NewError(kind error, code, message string, statusCode int, payload []byte) *Error {
	if kind == nil {
		kind = ErrExchange
	}
	if code == "" {
		code = UnknownCode
	}
	return &Error{
		Kind:       kind,
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Payload:    payload,
	}
}

// newLocalError returns an Error raised before any HTTP conversation
func newLocalError(kind error, message string) *Error {
	return NewError(kind, "", message, unsetStatusCode, nil)
}

// Error implements error
func (e *Error) Error() string {
	return fmt.Sprintf("%s. status code:%d. error code:%s", e.Message, e.StatusCode, e.Code)
}

// Unwrap exposes the kind for errors.Is discrimination
func (e *Error) Unwrap() error {
	return e.Kind
}

// AsError extracts the uniform error record from an error chain
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
