// Package backpack implements a client for the Backpack exchange REST API.
package backpack

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/takerfee/cclib/common/crypto"
	exchange "github.com/takerfee/cclib/exchanges"
	"github.com/takerfee/cclib/exchanges/account"
	"github.com/takerfee/cclib/exchanges/request"
)

const (
	backpackAPIURL = "https://api.backpack.exchange"

	// Public endpoints
	backpackMarkets = "/api/v1/markets"
	backpackTicker  = "/api/v1/ticker"
	backpackKlines  = "/api/v1/klines"
	backpackDepth   = "/api/v1/depth"

	// Authenticated endpoints
	backpackAssets = "/api/v1/assets"
)

// Backpack is the client for the Backpack REST API. The venue only serves
// GET and POST.
type Backpack struct {
	*exchange.Base
}

// New returns a Backpack client.
func New(opts *exchange.Options) (*Backpack, error) {
	b, err := exchange.NewBase("backpack", backpackAPIURL, &signer{}, &classifier{}, opts)
	if err != nil {
		return nil, err
	}
	b.AllowedMethods = []string{http.MethodGet, http.MethodPost}
	return &Backpack{Base: b}, nil
}

// signer injects api_key and a second precision timestamp into the query,
// signs the sorted encoding with HMAC-SHA256 and appends the hex digest as
// sign. Caller supplied values for the injected keys are kept.
type signer struct{}

func (s *signer) SignRequest(creds *account.Credentials, sc *exchange.SignContext) (*exchange.Signature, error) {
	p := sc.Params
	if p.Get("api_key") == "" {
		p.Set("api_key", creds.Key)
	}
	if p.Get("timestamp") == "" {
		p.Set("timestamp", strconv.FormatInt(sc.Now.Unix(), 10))
	}
	hmac := crypto.GetHMAC(crypto.HashSHA256, []byte(p.Encode()), []byte(creds.Secret))
	p.Set("sign", crypto.HexEncodeToString(hmac))
	return &exchange.Signature{RawQuery: p.Encode()}, nil
}

// classifier accepts any 2xx. Failures carry the venue's symbolic code and
// message when the body has them.
type classifier struct{}

func (c *classifier) Classify(resp *request.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	code := exchange.FirstString(resp.Body, "code")
	if code == "" {
		code = exchange.UnknownCode
	}
	msg := exchange.FirstString(resp.Body, "message")
	if msg == "" {
		msg = "unknown error"
	}
	return exchange.NewError(exchange.ErrExchange, code, msg, resp.StatusCode, resp.Body)
}

// GetAssets returns supported assets and their chain level transfer rules.
func (b *Backpack) GetAssets(ctx context.Context) ([]Asset, error) {
	var resp []Asset
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, backpackAssets, nil, nil, &resp)
}

// GetMarkets returns all supported markets.
func (b *Backpack) GetMarkets(ctx context.Context) ([]Market, error) {
	var resp []Market
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, backpackMarkets, nil, &resp)
}

// GetTicker returns the 24h ticker for a symbol.
func (b *Backpack) GetTicker(ctx context.Context, symbol string) (*Ticker, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	var resp Ticker
	return &resp, b.SendHTTPRequest(ctx, http.MethodGet, backpackTicker, params, &resp)
}

// GetCandles returns klines for a symbol. The window travels in seconds.
func (b *Backpack) GetCandles(ctx context.Context, symbol, interval string, start, end time.Time) ([]Candle, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("interval", interval)
	if !start.IsZero() {
		params.Set("startTime", strconv.FormatInt(start.Unix(), 10))
	}
	if !end.IsZero() {
		params.Set("endTime", strconv.FormatInt(end.Unix(), 10))
	}
	var resp []Candle
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, backpackKlines, params, &resp)
}

// GetDepth returns the full order book depth for a symbol.
func (b *Backpack) GetDepth(ctx context.Context, symbol string) (*Depth, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	var resp Depth
	return &resp, b.SendHTTPRequest(ctx, http.MethodGet, backpackDepth, params, &resp)
}
