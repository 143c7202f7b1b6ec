package bybit

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
	defaultRecvWindow = "5000"

	// Public endpoints
	bybitV5ServerTime = "/v5/market/time"
	bybitV5Tickers    = "/v5/market/tickers"
	bybitV5Candles    = "/v5/market/kline"

	// Authenticated endpoints
	bybitV5WalletBalance = "/v5/account/wallet-balance"
	bybitV5Positions     = "/v5/position/list"
)

// BybitV5 is the client for the unified v5 API.
type BybitV5 struct {
	*exchange.Base
}

// NewV5 returns a unified v5 API client.
func NewV5(opts *exchange.Options) (*BybitV5, error) {
	b, err := exchange.NewBase("bybitv5", bybitAPIURL, &signerV5{}, &classifierV5{}, opts)
	if err != nil {
		return nil, err
	}
	return &BybitV5{Base: b}, nil
}

// signerV5 implements the unified signature scheme. The HMAC-SHA256 input is
// the millisecond timestamp, the API key, the recv window and the payload
// concatenated, where the payload is the encoded query string for GET and
// the raw body otherwise. The signature travels in X-BAPI headers and the
// request line stays untouched.
type signerV5 struct{}

func (s *signerV5) SignRequest(creds *account.Credentials, sc *exchange.SignContext) (*exchange.Signature, error) {
	ts := strconv.FormatInt(sc.Now.UnixMilli(), 10)
	encoded := sc.Params.Encode()
	payload := encoded
	if sc.Method != http.MethodGet {
		payload = string(sc.Body)
	}
	hmac := crypto.GetHMAC(crypto.HashSHA256,
		[]byte(ts+creds.Key+defaultRecvWindow+payload),
		[]byte(creds.Secret))
	return &exchange.Signature{
		RawQuery: encoded,
		Headers: map[string]string{
			"Content-Type":       "application/json",
			"X-BAPI-API-KEY":     creds.Key,
			"X-BAPI-SIGN":        crypto.HexEncodeToString(hmac),
			"X-BAPI-SIGN-TYPE":   "2",
			"X-BAPI-TIMESTAMP":   ts,
			"X-BAPI-RECV-WINDOW": defaultRecvWindow,
		},
	}, nil
}

// classifierV5 is retCode driven. The v5 surface reports most failures with
// HTTP 200 and a non zero retCode, so the envelope outranks the status line
// in both directions.
type classifierV5 struct{}

func (c *classifierV5) Classify(resp *request.Response) error {
	code, ok := exchange.FieldInt(resp.Body, "retCode")
	if ok && code == 0 {
		return nil
	}
	if !ok && resp.StatusCode == http.StatusOK {
		return nil
	}
	msg := exchange.FirstString(resp.Body, "retMsg")
	if msg == "" {
		msg = "unknown error"
	}
	codeStr := exchange.UnknownCode
	if ok {
		codeStr = strconv.FormatInt(code, 10)
	}
	return exchange.NewError(v5Kind(resp.StatusCode, code), codeStr, msg, resp.StatusCode, resp.Body)
}

func v5Kind(status int, code int64) error {
	if status == http.StatusForbidden {
		return exchange.ErrRateLimit
	}
	switch code {
	case 10006, 10018:
		return exchange.ErrRateLimit
	case 10003, 10004:
		return exchange.ErrAuthentication
	case 10005:
		return exchange.ErrPermissionDenied
	case 10016:
		return exchange.ErrMaintenance
	case 10001:
		return exchange.ErrArguments
	}
	return exchange.ErrExchange
}

// GetServerTime returns the venue clock.
func (b *BybitV5) GetServerTime(ctx context.Context) (time.Time, error) {
	var resp V5TimeResponse
	err := b.SendHTTPRequest(ctx, http.MethodGet, bybitV5ServerTime, nil, &resp)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(resp.Result.TimeSecond.Int64(), 0), nil
}

// GetTickers returns ticker snapshots for a product category, optionally
// narrowed to one symbol.
func (b *BybitV5) GetTickers(ctx context.Context, category, symbol string) ([]V5Ticker, error) {
	params := url.Values{}
	params.Set("category", category)
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	var resp V5TickersResponse
	return resp.Result.List, b.SendHTTPRequest(ctx, http.MethodGet, bybitV5Tickers, params, &resp)
}

// GetCandles returns klines for a product category. Start and end are
// optional and truncated to milliseconds, interval defaults to one minute.
func (b *BybitV5) GetCandles(ctx context.Context, category, symbol, interval string, start, end time.Time, limit int64) ([]V5Candle, error) {
	params := url.Values{}
	params.Set("category", category)
	params.Set("symbol", symbol)
	if interval == "" {
		interval = "1"
	}
	params.Set("interval", interval)
	if !start.IsZero() {
		params.Set("start", strconv.FormatInt(start.UnixMilli(), 10))
	}
	if !end.IsZero() {
		params.Set("end", strconv.FormatInt(end.UnixMilli(), 10))
	}
	if limit > 0 {
		params.Set("limit", strconv.FormatInt(limit, 10))
	}
	var resp V5CandlesResponse
	return resp.Result.List, b.SendHTTPRequest(ctx, http.MethodGet, bybitV5Candles, params, &resp)
}

// GetWalletBalance returns balances for an account type, optionally narrowed
// to one coin.
func (b *BybitV5) GetWalletBalance(ctx context.Context, accountType, coin string) ([]V5WalletAccount, error) {
	params := url.Values{}
	params.Set("accountType", accountType)
	if coin != "" {
		params.Set("coin", coin)
	}
	var resp V5WalletBalanceResponse
	return resp.Result.List, b.SendAuthHTTPRequest(ctx, http.MethodGet, bybitV5WalletBalance, params, nil, &resp)
}

// GetPositions returns open positions for a product category, optionally
// narrowed to one symbol.
func (b *BybitV5) GetPositions(ctx context.Context, category, symbol string) ([]V5Position, error) {
	params := url.Values{}
	params.Set("category", category)
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	var resp V5PositionsResponse
	return resp.Result.List, b.SendAuthHTTPRequest(ctx, http.MethodGet, bybitV5Positions, params, nil, &resp)
}
