// Package bitmake implements a client for the Bitmake public REST API.
// The venue's authenticated surface is not wired; authenticated calls
// report ErrAuthenticatedRequestNotSupported.
package bitmake

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	exchange "github.com/takerfee/cclib/exchanges"
	"github.com/takerfee/cclib/exchanges/request"
)

const (
	bitmakeAPIURL = "https://api.bitmake.com"

	// Public endpoints
	bitmakeInfo    = "/t/v1/info"
	bitmakeSymbols = "/u/v1/base/symbols"
	bitmakeIndex   = "/t/v1/quote/index"
	bitmakeKlines  = "/t/v1/quote/klines"

	defaultCandleLimit = 100
)

// Bitmake is the client for the Bitmake public REST API.
type Bitmake struct {
	*exchange.Base
}

// New returns a Bitmake client. No signer is installed.
func New(opts *exchange.Options) (*Bitmake, error) {
	b, err := exchange.NewBase("bitmake", bitmakeAPIURL, nil, &classifier{}, opts)
	if err != nil {
		return nil, err
	}
	return &Bitmake{Base: b}, nil
}

// classifier trusts the status line, with 429 mapped to the rate limit
// kind.
type classifier struct{}

func (c *classifier) Classify(resp *request.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	code := exchange.FirstString(resp.Body, "code")
	if code == "" {
		code = exchange.UnknownCode
	}
	msg := exchange.FirstString(resp.Body, "msg")
	if msg == "" {
		msg = "unknown error"
	}
	kind := exchange.ErrExchange
	if resp.StatusCode == http.StatusTooManyRequests {
		kind = exchange.ErrRateLimit
	}
	return exchange.NewError(kind, code, msg, resp.StatusCode, resp.Body)
}

// GetBaseInfo returns venue time and timezone.
func (b *Bitmake) GetBaseInfo(ctx context.Context) (*BaseInfo, error) {
	var resp BaseInfo
	return &resp, b.SendHTTPRequest(ctx, http.MethodGet, bitmakeInfo, nil, &resp)
}

// GetSymbols returns all instrument definitions.
func (b *Bitmake) GetSymbols(ctx context.Context) ([]Symbol, error) {
	var resp []Symbol
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, bitmakeSymbols, nil, &resp)
}

// GetIndex returns index and estimated delivery prices, optionally for one
// symbol.
func (b *Bitmake) GetIndex(ctx context.Context, symbol string) (*Index, error) {
	var params url.Values
	if symbol != "" {
		params = url.Values{}
		params.Set("symbol", symbol)
	}
	var resp Index
	return &resp, b.SendHTTPRequest(ctx, http.MethodGet, bitmakeIndex, params, &resp)
}

// GetCandles returns klines ending at end. Interval defaults to one minute
// and limit to 100.
func (b *Bitmake) GetCandles(ctx context.Context, symbol, interval string, end time.Time, limit int64) ([]Candle, error) {
	if interval == "" {
		interval = "1m"
	}
	if limit <= 0 {
		limit = defaultCandleLimit
	}
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("interval", interval)
	if !end.IsZero() {
		params.Set("to", strconv.FormatInt(end.UnixMilli(), 10))
	}
	params.Set("limit", strconv.FormatInt(limit, 10))
	var resp []Candle
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, bitmakeKlines, params, &resp)
}
