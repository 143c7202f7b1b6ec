// Package ftx implements a client for the FTX REST API.
package ftx

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
	ftxAPIURL = "https://ftx.com"

	// Public endpoints
	ftxMarkets = "/api/markets"

	// Authenticated endpoints
	ftxAccount   = "/api/account"
	ftxBalances  = "/api/wallet/balances"
	ftxPositions = "/api/positions"

	defaultOrderbookDepth = 20
	defaultResolution     = 60
)

// FTX is the client for the FTX REST API.
type FTX struct {
	*exchange.Base
}

// New returns an FTX client.
func New(opts *exchange.Options) (*FTX, error) {
	b, err := exchange.NewBase("ftx", ftxAPIURL, &signer{}, &classifier{}, opts)
	if err != nil {
		return nil, err
	}
	return &FTX{Base: b}, nil
}

// signer implements the FTX header scheme. The HMAC-SHA256 input
// concatenates a millisecond timestamp, the method, the path with its
// encoded query and the raw body; the hex digest travels in FTX-SIGN. A
// sub account credential adds FTX-SUBACCOUNT so the venue scopes the call.
type signer struct{}

func (s *signer) SignRequest(creds *account.Credentials, sc *exchange.SignContext) (*exchange.Signature, error) {
	ts := strconv.FormatInt(sc.Now.UnixMilli(), 10)
	encoded := sc.Params.Encode()
	requestPath := sc.Path
	if encoded != "" {
		requestPath += "?" + encoded
	}
	hmac := crypto.GetHMAC(crypto.HashSHA256,
		[]byte(ts+sc.Method+requestPath+string(sc.Body)),
		[]byte(creds.Secret))
	headers := map[string]string{
		"FTX-KEY":  creds.Key,
		"FTX-SIGN": crypto.HexEncodeToString(hmac),
		"FTX-TS":   ts,
	}
	if creds.SubAccount != "" {
		headers["FTX-SUBACCOUNT"] = creds.SubAccount
	}
	return &exchange.Signature{RawQuery: encoded, Headers: headers}, nil
}

// classifier accepts HTTP 200, and a body success marker rescues any other
// status. Failures carry the body error message.
type classifier struct{}

func (c *classifier) Classify(resp *request.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	if ok, found := exchange.FieldBool(resp.Body, "success"); found && ok {
		return nil
	}
	msg := exchange.FirstString(resp.Body, "error")
	if msg == "" {
		msg = "unknown error"
	}
	kind := exchange.ErrExchange
	if resp.StatusCode == http.StatusTooManyRequests {
		kind = exchange.ErrRateLimit
	}
	return exchange.NewError(kind, exchange.UnknownCode, msg, resp.StatusCode, resp.Body)
}

// GetMarkets returns all markets.
func (f *FTX) GetMarkets(ctx context.Context) ([]Market, error) {
	var resp MarketsResponse
	return resp.Result, f.SendHTTPRequest(ctx, http.MethodGet, ftxMarkets, nil, &resp)
}

// GetMarket returns one market by name.
func (f *FTX) GetMarket(ctx context.Context, marketName string) (*Market, error) {
	var resp MarketResponse
	return &resp.Result, f.SendHTTPRequest(ctx, http.MethodGet, ftxMarkets+"/"+marketName, nil, &resp)
}

// GetOrderbook returns the order book for a market. Depth defaults to 20.
func (f *FTX) GetOrderbook(ctx context.Context, marketName string, depth int64) (*Orderbook, error) {
	if depth <= 0 {
		depth = defaultOrderbookDepth
	}
	params := url.Values{}
	params.Set("depth", strconv.FormatInt(depth, 10))
	var resp OrderbookResponse
	return &resp.Result, f.SendHTTPRequest(ctx, http.MethodGet, ftxMarkets+"/"+marketName+"/orderbook", params, &resp)
}

// GetCandles returns klines for a market. Resolution is the window length
// in seconds and defaults to one minute; start and end travel in seconds.
func (f *FTX) GetCandles(ctx context.Context, marketName string, resolution int64, start, end time.Time) ([]Candle, error) {
	if resolution <= 0 {
		resolution = defaultResolution
	}
	params := url.Values{}
	params.Set("resolution", strconv.FormatInt(resolution, 10))
	if !start.IsZero() {
		params.Set("start_time", strconv.FormatInt(start.Unix(), 10))
	}
	if !end.IsZero() {
		params.Set("end_time", strconv.FormatInt(end.Unix(), 10))
	}
	var resp CandlesResponse
	return resp.Result, f.SendHTTPRequest(ctx, http.MethodGet, ftxMarkets+"/"+marketName+"/candles", params, &resp)
}

// GetAccount returns account information including margin state and open
// positions.
func (f *FTX) GetAccount(ctx context.Context) (*Account, error) {
	var resp AccountResponse
	return &resp.Result, f.SendAuthHTTPRequest(ctx, http.MethodGet, ftxAccount, nil, nil, &resp)
}

// GetBalances returns wallet balances per coin.
func (f *FTX) GetBalances(ctx context.Context) ([]Balance, error) {
	var resp BalancesResponse
	return resp.Result, f.SendAuthHTTPRequest(ctx, http.MethodGet, ftxBalances, nil, nil, &resp)
}

// GetPositions returns open futures positions.
func (f *FTX) GetPositions(ctx context.Context) ([]Position, error) {
	var resp PositionsResponse
	return resp.Result, f.SendAuthHTTPRequest(ctx, http.MethodGet, ftxPositions, nil, nil, &resp)
}
