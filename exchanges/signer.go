package exchange

import (
	"net/url"
	"time"

	"github.com/takerfee/cclib/exchanges/account"
)

// SignContext carries every request component a signing strategy may draw on.
// Params is a private copy; strategies inject credential and timestamp values
// into it freely without affecting the caller.
type SignContext struct {
	Method string
	Host   string
	Path   string
	Params url.Values
	Body   []byte
	Now    time.Time
}

// Signature is the outcome of a signing strategy. RawQuery is the exact wire
// query string, preserving any ordering the canonical form depends on. A nil
// Body leaves the request body untouched; a non-nil one replaces it.
type Signature struct {
	RawQuery string
	Headers  map[string]string
	Body     []byte
}

// Signer is a venue specific signing strategy. Implementations must be pure
// with respect to the supplied context so identical inputs always produce
// identical signatures.
type Signer interface {
	SignRequest(creds *account.Credentials, sc *SignContext) (*Signature, error)
}
