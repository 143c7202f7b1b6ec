// Package okx implements clients for the OKX REST APIs. The unified v5
// surface carries almost everything; a small v3 futures client survives for
// accounts still on the legacy surface. Both generations share one signing
// scheme but disagree on how failures are reported, so each gets its own
// client type.
package okx

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
	okxAPIURL = "https://www.okx.com"

	// Public endpoints
	okxSystemStatus       = "/api/v5/system/status"
	okxInstruments        = "/api/v5/public/instruments"
	okxTickers            = "/api/v5/market/tickers"
	okxCandles            = "/api/v5/market/candles"
	okxHistoryCandles     = "/api/v5/market/history-candles"
	okxIndexCandles       = "/api/v5/market/index-candles"
	okxFundingRateHistory = "/api/v5/public/funding-rate-history"
)

// Okx is the client for the unified v5 API.
type Okx struct {
	*exchange.Base
}

// New returns a unified v5 API client.
func New(opts *exchange.Options) (*Okx, error) {
	b, err := exchange.NewBase("okx", okxAPIURL, &signer{}, &classifier{}, opts)
	if err != nil {
		return nil, err
	}
	return &Okx{Base: b}, nil
}

// signer implements the OK-ACCESS scheme shared by v5 and v3. The
// HMAC-SHA256 input concatenates a second precision UTC timestamp, the
// method, the path with its encoded query and the raw body; key, base64
// signature, timestamp and passphrase travel as OK-ACCESS headers. The
// signed query is the exact encoded string sent on the wire.
type signer struct{}

func (s *signer) SignRequest(creds *account.Credentials, sc *exchange.SignContext) (*exchange.Signature, error) {
	ts := sc.Now.UTC().Format("2006-01-02T15:04:05Z")
	encoded := sc.Params.Encode()
	requestPath := sc.Path
	if encoded != "" {
		requestPath += "?" + encoded
	}
	hmac := crypto.GetHMAC(crypto.HashSHA256,
		[]byte(ts+sc.Method+requestPath+string(sc.Body)),
		[]byte(creds.Secret))
	return &exchange.Signature{
		RawQuery: encoded,
		Headers: map[string]string{
			"Content-Type":         "application/json",
			"OK-ACCESS-KEY":        creds.Key,
			"OK-ACCESS-SIGN":       crypto.Base64Encode(hmac),
			"OK-ACCESS-TIMESTAMP":  ts,
			"OK-ACCESS-PASSPHRASE": creds.Passphrase,
		},
	}, nil
}

// classifier is code driven. The v5 surface reports failures with HTTP 200
// and a non zero code, so a zero code is the only success marker.
type classifier struct{}

func (c *classifier) Classify(resp *request.Response) error {
	if !exchange.IsJSONObject(resp.Body) {
		return exchange.NewError(exchange.ErrExchange, "", "response is not a json object", resp.StatusCode, resp.Body)
	}
	if code, ok := exchange.FieldInt(resp.Body, "code"); ok {
		if code == 0 {
			return nil
		}
		msg := exchange.FirstString(resp.Body, "msg")
		if msg == "" {
			msg = "unknown error"
		}
		return exchange.NewError(v5Kind(code), strconv.FormatInt(code, 10), msg, resp.StatusCode, resp.Body)
	}
	if msg, ok := exchange.FieldString(resp.Body, "msg"); ok {
		return exchange.NewError(exchange.ErrExchange, strconv.Itoa(resp.StatusCode), msg, resp.StatusCode, resp.Body)
	}
	return exchange.NewError(exchange.ErrExchange, "", "unknown message format", resp.StatusCode, resp.Body)
}

func v5Kind(code int64) error {
	switch code {
	case 50001:
		return exchange.ErrMaintenance
	case 50002:
		return exchange.ErrServiceTimeout
	case 50011:
		return exchange.ErrRateLimit
	}
	return exchange.ErrExchange
}

// candleWindow widens the half open kline window by one millisecond each
// side so both boundary buckets are included.
func candleWindow(params url.Values, start, end time.Time) {
	if !start.IsZero() {
		params.Set("before", strconv.FormatInt(start.UnixMilli()-1, 10))
	}
	if !end.IsZero() {
		params.Set("after", strconv.FormatInt(end.UnixMilli()+1, 10))
	}
}

// SystemStatus returns current and scheduled maintenance windows.
func (o *Okx) SystemStatus(ctx context.Context) ([]SystemStatus, error) {
	var resp SystemStatusResponse
	return resp.Data, o.SendHTTPRequest(ctx, http.MethodGet, okxSystemStatus, nil, &resp)
}

// GetInstruments returns instrument definitions for a product type,
// optionally narrowed by underlying or instrument id.
func (o *Okx) GetInstruments(ctx context.Context, instType, underlying, instID string) ([]Instrument, error) {
	params := url.Values{}
	params.Set("instType", instType)
	if underlying != "" {
		params.Set("uly", underlying)
	}
	if instID != "" {
		params.Set("instId", instID)
	}
	var resp InstrumentsResponse
	return resp.Data, o.SendHTTPRequest(ctx, http.MethodGet, okxInstruments, params, &resp)
}

// GetTickers returns ticker snapshots for a product type, optionally
// narrowed by underlying or instrument id.
func (o *Okx) GetTickers(ctx context.Context, instType, underlying, instID string) ([]Ticker, error) {
	params := url.Values{}
	params.Set("instType", instType)
	if underlying != "" {
		params.Set("uly", underlying)
	}
	if instID != "" {
		params.Set("instId", instID)
	}
	var resp TickersResponse
	return resp.Data, o.SendHTTPRequest(ctx, http.MethodGet, okxTickers, params, &resp)
}

// GetCandles returns klines. Bar defaults to one minute and limit to the
// venue default of 100.
func (o *Okx) GetCandles(ctx context.Context, instID, bar string, start, end time.Time, limit int64) ([]Candle, error) {
	return o.candles(ctx, okxCandles, instID, bar, start, end, limit)
}

// GetRecentCandles returns the most recent limit klines.
func (o *Okx) GetRecentCandles(ctx context.Context, instID, bar string, limit int64) ([]Candle, error) {
	return o.candles(ctx, okxCandles, instID, bar, time.Time{}, time.Time{}, limit)
}

// GetHistoryCandles returns older klines no longer served by GetCandles.
func (o *Okx) GetHistoryCandles(ctx context.Context, instID, bar string, start, end time.Time, limit int64) ([]Candle, error) {
	return o.candles(ctx, okxHistoryCandles, instID, bar, start, end, limit)
}

func (o *Okx) candles(ctx context.Context, path, instID, bar string, start, end time.Time, limit int64) ([]Candle, error) {
	params := url.Values{}
	params.Set("instId", instID)
	if bar == "" {
		bar = "1m"
	}
	params.Set("bar", bar)
	candleWindow(params, start, end)
	if limit > 0 {
		params.Set("limit", strconv.FormatInt(limit, 10))
	}
	var resp CandlesResponse
	return resp.Data, o.SendHTTPRequest(ctx, http.MethodGet, path, params, &resp)
}

// GetIndexCandles returns index klines, a five field variant without
// volumes.
func (o *Okx) GetIndexCandles(ctx context.Context, instID, bar string, start, end time.Time) ([]IndexCandle, error) {
	params := url.Values{}
	params.Set("instId", instID)
	if bar == "" {
		bar = "1m"
	}
	params.Set("bar", bar)
	candleWindow(params, start, end)
	var resp IndexCandlesResponse
	return resp.Data, o.SendHTTPRequest(ctx, http.MethodGet, okxIndexCandles, params, &resp)
}

// GetFundingRateHistory returns settled funding rates for a swap.
func (o *Okx) GetFundingRateHistory(ctx context.Context, instID string, start, end time.Time) ([]FundingRate, error) {
	params := url.Values{}
	params.Set("instId", instID)
	candleWindow(params, start, end)
	var resp FundingRatesResponse
	return resp.Data, o.SendHTTPRequest(ctx, http.MethodGet, okxFundingRateHistory, params, &resp)
}
