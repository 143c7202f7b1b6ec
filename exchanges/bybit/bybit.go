// Package bybit implements clients for the Bybit REST APIs. Bybit runs two
// API generations side by side: the legacy v2/spot-v1 surface signed with
// query-string HMAC parameters, and the unified v5 surface signed with
// X-BAPI headers. Each generation gets its own client type because the two
// use incompatible signing and response conventions.
package bybit

import (
	"context"
	"encoding/json"
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
	bybitAPIURL = "https://api.bybit.com"

	// Public endpoints
	bybitSpotSymbols = "/spot/v1/symbols"
	bybitSpotCandles = "/spot/quote/v1/kline"
	bybitSymbols     = "/v2/public/symbols"
	bybitTickers     = "/v2/public/tickers"
	bybitCandles     = "/v2/public/kline/list"

	// Authenticated endpoints
	bybitWalletBalance = "/v2/private/wallet/balance"
	bybitPositions     = "/v2/private/position/list"
)

// Bybit is the client for the legacy v2 and spot v1 APIs.
type Bybit struct {
	*exchange.Base
}

// New returns a v2 API client.
func New(opts *exchange.Options) (*Bybit, error) {
	b, err := exchange.NewBase("bybit", bybitAPIURL, &signerV2{}, &classifierV2{}, opts)
	if err != nil {
		return nil, err
	}
	return &Bybit{Base: b}, nil
}

// signerV2 implements the legacy signature scheme. The timestamp and api_key
// become ordinary request parameters, the signature is an HMAC-SHA256 over
// the sorted url-encoded parameter set and travels as the sign parameter.
// Requests other than GET carry the whole signed parameter set as a JSON
// object body instead of a query string.
type signerV2 struct{}

func (s *signerV2) SignRequest(creds *account.Credentials, sc *exchange.SignContext) (*exchange.Signature, error) {
	p := sc.Params
	if p.Get("timestamp") == "" {
		p.Set("timestamp", strconv.FormatInt(sc.Now.UnixMilli(), 10))
	}
	if p.Get("api_key") == "" {
		p.Set("api_key", creds.Key)
	}
	hmac := crypto.GetHMAC(crypto.HashSHA256, []byte(p.Encode()), []byte(creds.Secret))
	p.Set("sign", crypto.HexEncodeToString(hmac))
	if sc.Method == http.MethodGet {
		return &exchange.Signature{RawQuery: p.Encode()}, nil
	}
	flat := make(map[string]string, len(p))
	for k := range p {
		flat[k] = p.Get(k)
	}
	body, err := json.Marshal(flat)
	if err != nil {
		return nil, err
	}
	return &exchange.Signature{
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	}, nil
}

// classifierV2 mirrors the quirks of the legacy surface. Any HTTP 200 counts
// as success before ret_code is consulted, and a zero ret_code rescues error
// statuses that still deliver a well formed envelope.
type classifierV2 struct{}

func (c *classifierV2) Classify(resp *request.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	code, ok := exchange.FieldInt(resp.Body, "ret_code")
	if ok && code == 0 {
		return nil
	}
	msg := exchange.FirstString(resp.Body, "ret_msg")
	if msg == "" {
		msg = "unknown error"
	}
	codeStr := exchange.UnknownCode
	if ok {
		codeStr = strconv.FormatInt(code, 10)
	}
	return exchange.NewError(v2Kind(resp.StatusCode, code), codeStr, msg, resp.StatusCode, resp.Body)
}

func v2Kind(status int, code int64) error {
	if status == http.StatusForbidden {
		return exchange.ErrRateLimit
	}
	switch code {
	case 10003, 10018:
		return exchange.ErrRateLimit
	}
	return exchange.ErrExchange
}

// GetSpotSymbols returns the spot instrument list.
func (b *Bybit) GetSpotSymbols(ctx context.Context) ([]SpotSymbol, error) {
	var resp SpotSymbolsResponse
	return resp.Result, b.SendHTTPRequest(ctx, http.MethodGet, bybitSpotSymbols, nil, &resp)
}

// GetSpotCandles returns spot klines. Start and end are optional and
// truncated to milliseconds, interval defaults to one minute.
func (b *Bybit) GetSpotCandles(ctx context.Context, symbol, interval string, start, end time.Time, limit int64) ([]SpotCandle, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	if interval == "" {
		interval = "1m"
	}
	params.Set("interval", interval)
	if !start.IsZero() {
		params.Set("startTime", strconv.FormatInt(start.UnixMilli(), 10))
	}
	if !end.IsZero() {
		params.Set("endTime", strconv.FormatInt(end.UnixMilli(), 10))
	}
	if limit > 0 {
		params.Set("limit", strconv.FormatInt(limit, 10))
	}
	var resp SpotCandlesResponse
	return resp.Result, b.SendHTTPRequest(ctx, http.MethodGet, bybitSpotCandles, params, &resp)
}

// GetSymbols returns the derivative instrument list.
func (b *Bybit) GetSymbols(ctx context.Context) ([]Symbol, error) {
	var resp SymbolsResponse
	return resp.Result, b.SendHTTPRequest(ctx, http.MethodGet, bybitSymbols, nil, &resp)
}

// GetTickers returns derivative ticker snapshots, optionally for one symbol.
func (b *Bybit) GetTickers(ctx context.Context, symbol string) ([]Ticker, error) {
	params := url.Values{}
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	var resp TickersResponse
	return resp.Result, b.SendHTTPRequest(ctx, http.MethodGet, bybitTickers, params, &resp)
}

// GetCandles returns derivative klines. The from time is mandatory and sent
// in seconds, interval defaults to one minute and limit to 200.
func (b *Bybit) GetCandles(ctx context.Context, symbol, interval string, from time.Time, limit int64) ([]Candle, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	if interval == "" {
		interval = "1"
	}
	params.Set("interval", interval)
	params.Set("from", strconv.FormatInt(from.Unix(), 10))
	if limit <= 0 {
		limit = 200
	}
	params.Set("limit", strconv.FormatInt(limit, 10))
	var resp CandlesResponse
	return resp.Result, b.SendHTTPRequest(ctx, http.MethodGet, bybitCandles, params, &resp)
}

// GetWalletBalance returns wallet balances keyed by coin. Coin is optional.
func (b *Bybit) GetWalletBalance(ctx context.Context, coin string) (map[string]WalletBalance, error) {
	params := url.Values{}
	if coin != "" {
		params.Set("coin", coin)
	}
	var resp WalletBalanceResponse
	return resp.Result, b.SendAuthHTTPRequest(ctx, http.MethodGet, bybitWalletBalance, params, nil, &resp)
}

// GetPositions returns derivative positions. Coin is optional.
func (b *Bybit) GetPositions(ctx context.Context, coin string) ([]PositionEntry, error) {
	params := url.Values{}
	if coin != "" {
		params.Set("coin", coin)
	}
	var resp PositionsResponse
	return resp.Result, b.SendAuthHTTPRequest(ctx, http.MethodGet, bybitPositions, params, nil, &resp)
}
