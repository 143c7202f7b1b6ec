package request

import (
	"errors"
	"net/http"
	"time"
)

// Defaults for the requester
const (
	// DefaultTimeout is the deadline applied to a dispatched call when the
	// caller's context does not carry one
	DefaultTimeout = 10 * time.Second

	userAgent = "User-Agent"
)

var (
	// ErrRequestSystemIsNil defines a nil requester
	ErrRequestSystemIsNil = errors.New("request system is nil")
	// ErrUnsignedAuthRequest alerts when an authenticated request reaches
	// dispatch without an applied signature
	ErrUnsignedAuthRequest = errors.New("authenticated request dispatched without signature")

	errRequestFunctionIsNil = errors.New("request function is nil")
	errRequestItemNil       = errors.New("request item is nil")
	errInvalidPath          = errors.New("invalid path")
	errServiceNameUnset     = errors.New("service name unset")
	errHTTPClientIsNil      = errors.New("http client is nil")
)

// Requester struct for the request client
type Requester struct {
	name      string
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Item is a temp item for requests
type Item struct {
	Method        string
	Path          string
	Headers       map[string]string
	Body          []byte
	AuthRequest   bool
	Signed        bool
	Verbose       bool
	HTTPDebugging bool
}

// Response holds the raw outcome of a dispatched call for classification
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Generate defines a closure for functionality outside of the requester to
// generate a new request item when needed
type Generate func() (*Item, error)

// RequesterOption is a function option that can be applied to configure a
// Requester when creating it
type RequesterOption func(*Requester)

// WithTimeout overrides the default per call timeout
func WithTimeout(d time.Duration) RequesterOption {
	return func(r *Requester) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithUserAgent sets the user agent stamped on every outbound request
func WithUserAgent(ua string) RequesterOption {
	return func(r *Requester) {
		r.userAgent = ua
	}
}
