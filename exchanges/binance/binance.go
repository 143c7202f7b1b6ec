// Package binance wraps the Binance spot, USDT margined futures, coin
// margined futures and portfolio margin REST APIs behind one client.
package binance

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gofrs/uuid"

	"github.com/takerfee/cclib/common/crypto"
	exchange "github.com/takerfee/cclib/exchanges"
	"github.com/takerfee/cclib/exchanges/account"
	"github.com/takerfee/cclib/exchanges/request"
)

// Binance is the overarching type across this package. The futures and
// portfolio margin API hosts are fields so deployments fronting them
// elsewhere can redirect each independently.
type Binance struct {
	*exchange.Base
	UFuturesAPIURL string
	CFuturesAPIURL string
	PMarginAPIURL  string
}

const (
	spotAPIURL     = "https://api.binance.com"
	ufuturesAPIURL = "https://fapi.binance.com"
	cfuturesAPIURL = "https://dapi.binance.com"
	pmarginAPIURL  = "https://papi.binance.com"

	defaultRecvWindow = "5000"

	// Spot / wallet endpoints
	spotSystemStatus      = "/sapi/v1/system/status"
	spotExchangeInfo      = "/api/v3/exchangeInfo"
	spotTickerPrice       = "/api/v3/ticker/price"
	spotCandles           = "/api/v3/klines"
	spotCoinsConfig       = "/sapi/v1/capital/config/getall"
	spotAccountInfo       = "/api/v3/account"
	spotAPITradingStatus  = "/sapi/v1/account/apiTradingStatus"
	spotAssetTransfer     = "/sapi/v1/asset/transfer"
	spotFuturesTransfer   = "/sapi/v1/futures/transfer"
	spotOpenOrders        = "/api/v3/openOrders"
	spotNewOrder          = "/api/v3/order"
	spotMarginPairs       = "/sapi/v1/margin/allPairs"
	spotBrokerIfNewUser   = "/sapi/v1/apiReferral/ifNewUser"
	spotBrokerRebate      = "/sapi/v1/apiReferral/rebate/recentRecord"
	spotSubumTransferHist = "/sapi/v1/sub-account/transfer/subUserHistory"
	spotIncome            = "/sapi/v1/income"
	spotDustAssets        = "/sapi/v1/asset/dust-btc"
	spotDustTransfer      = "/sapi/v1/asset/dust"
)

// New returns a Binance client. The BaseURL option overrides the spot API
// address; futures and portfolio margin calls always address their fixed
// hosts.
func New(opts *exchange.Options) (*Binance, error) {
	b, err := exchange.NewBase("binance", spotAPIURL, &signer{}, &classifier{}, opts)
	if err != nil {
		return nil, err
	}
	return &Binance{
		Base:           b,
		UFuturesAPIURL: ufuturesAPIURL,
		CFuturesAPIURL: cfuturesAPIURL,
		PMarginAPIURL:  pmarginAPIURL,
	}, nil
}

// signer implements the form encoded HMAC-SHA256 scheme shared by every
// Binance API generation. recvWindow and timestamp are injected when the
// caller has not set them; the hex digest rides as a trailing signature
// query value so it never sorts into the signed string.
type signer struct{}

func (s *signer) SignRequest(creds *account.Credentials, sc *exchange.SignContext) (*exchange.Signature, error) {
	p := sc.Params
	if p.Get("recvWindow") == "" {
		p.Set("recvWindow", defaultRecvWindow)
	}
	if p.Get("timestamp") == "" {
		p.Set("timestamp", strconv.FormatInt(sc.Now.UnixMilli(), 10))
	}
	encoded := p.Encode()
	payload := encoded + string(sc.Body)
	hmac := crypto.GetHMAC(crypto.HashSHA256, []byte(payload), []byte(creds.Secret))
	return &exchange.Signature{
		RawQuery: encoded + "&signature=" + crypto.HexEncodeToString(hmac),
		Headers: map[string]string{
			"X-MBX-APIKEY": creds.Key,
			"Content-Type": "application/json",
		},
	}, nil
}

// classifier maps Binance failures onto the taxonomy. Success requires HTTP
// 200; the body code is a negative integer grouped into documented ranges.
type classifier struct{}

func (c *classifier) Classify(resp *request.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	code := exchange.UnknownCode
	msg := "unknown"
	if exchange.IsJSONObject(resp.Body) {
		if v, ok := exchange.FieldString(resp.Body, "code"); ok {
			code = v
		}
		if v, ok := exchange.FieldString(resp.Body, "msg"); ok {
			msg = v
		}
	} else {
		msg = "response is not a json object"
	}
	return exchange.NewError(binanceKind(resp.StatusCode, code), code, msg, resp.StatusCode, resp.Body)
}

func binanceKind(status int, code string) error {
	switch status {
	case http.StatusTooManyRequests:
		return exchange.ErrRateLimitWarning
	case http.StatusTeapot:
		return exchange.ErrRateLimit
	}
	n, err := strconv.ParseInt(code, 10, 64)
	if err != nil {
		return exchange.ErrExchange
	}
	switch {
	case n >= -1099 && n <= -1000:
		switch n {
		case -1003:
			return exchange.ErrRateLimit
		case -1007:
			return exchange.ErrServiceTimeout
		case -1016:
			return exchange.ErrMaintenance
		case -1022:
			return exchange.ErrAuthentication
		}
	case n >= -1199 && n <= -1100:
		return exchange.ErrArguments
	case n == -2014, n == -2015:
		return exchange.ErrAuthentication
	}
	return exchange.ErrExchange
}

// GetSystemStatus returns whether the venue is operating normally or under
// maintenance
func (b *Binance) GetSystemStatus(ctx context.Context) (SystemStatus, error) {
	var resp SystemStatus
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, spotSystemStatus, nil, &resp)
}

// GetExchangeInfo returns spot trading rules and symbol information
func (b *Binance) GetExchangeInfo(ctx context.Context) (ExchangeInfo, error) {
	var resp ExchangeInfo
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, spotExchangeInfo, nil, &resp)
}

// GetTickerPrice returns the latest price for a symbol
func (b *Binance) GetTickerPrice(ctx context.Context, symbol string) (TickerPrice, error) {
	var resp TickerPrice
	params := url.Values{}
	params.Set("symbol", symbol)
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, spotTickerPrice, params, &resp)
}

// GetTickerPrices returns the latest price for every listed symbol
func (b *Binance) GetTickerPrices(ctx context.Context) ([]TickerPrice, error) {
	var resp []TickerPrice
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, spotTickerPrice, nil, &resp)
}

// GetCandles returns spot klines covering [start, end]. A zero limit with
// both bounds set is inferred from the window at one minute per candle.
func (b *Binance) GetCandles(ctx context.Context, symbol, interval string, start, end time.Time, limit int64) ([]Candle, error) {
	var resp []Candle
	params := candleParams(symbol, interval, start, end, limit)
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, spotCandles, params, &resp)
}

func candleParams(symbol, interval string, start, end time.Time, limit int64) url.Values {
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
	if limit == 0 && !start.IsZero() && !end.IsZero() {
		limit = int64(end.Sub(start).Seconds())/60 + 1
	}
	if limit > 0 {
		params.Set("limit", strconv.FormatInt(limit, 10))
	}
	return params
}

// GetAccountCoinsConfig returns deposit and withdrawal configuration for
// every coin the account can hold
func (b *Binance) GetAccountCoinsConfig(ctx context.Context) ([]CoinConfig, error) {
	var resp []CoinConfig
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, spotCoinsConfig, nil, nil, &resp)
}

// GetAccountInfo returns spot account balances and permissions
func (b *Binance) GetAccountInfo(ctx context.Context) (AccountInfo, error) {
	var resp AccountInfo
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, spotAccountInfo, nil, nil, &resp)
}

// GetAPITradingStatus returns the account's API trading status indicators
func (b *Binance) GetAPITradingStatus(ctx context.Context) (APITradingStatus, error) {
	var resp APITradingStatus
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, spotAPITradingStatus, nil, nil, &resp)
}

// AssetTransfer executes a universal transfer between account wallets.
// transferType follows the venue's MAIN_UMFUTURE style identifiers.
func (b *Binance) AssetTransfer(ctx context.Context, transferType, asset string, amount float64) (TransactionResponse, error) {
	var resp TransactionResponse
	params := url.Values{}
	params.Set("type", transferType)
	params.Set("asset", asset)
	params.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodPost, spotAssetTransfer, params, nil, &resp)
}

// GetAssetTransferHistory returns universal transfer records of the
// supplied type
func (b *Binance) GetAssetTransferHistory(ctx context.Context, transferType string) (AssetTransferHistory, error) {
	var resp AssetTransferHistory
	params := url.Values{}
	params.Set("type", transferType)
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, spotAssetTransfer, params, nil, &resp)
}

// FuturesTransfer moves funds between the spot account and a futures
// account. transferType: 1 spot to USDT futures, 2 USDT futures to spot,
// 3 spot to coin futures, 4 coin futures to spot.
func (b *Binance) FuturesTransfer(ctx context.Context, asset string, amount float64, transferType int64) (TransactionResponse, error) {
	var resp TransactionResponse
	params := url.Values{}
	params.Set("asset", asset)
	params.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	params.Set("type", strconv.FormatInt(transferType, 10))
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodPost, spotFuturesTransfer, params, nil, &resp)
}

// GetOpenOrders returns open spot orders, for one symbol when supplied
func (b *Binance) GetOpenOrders(ctx context.Context, symbol string) ([]Order, error) {
	var resp []Order
	params := url.Values{}
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, spotOpenOrders, params, nil, &resp)
}

// CreateOrder places a spot order. A client order ID is generated when the
// request does not carry one so fills remain attributable.
func (b *Binance) CreateOrder(ctx context.Context, o *OrderRequest) (OrderResponse, error) {
	var resp OrderResponse
	if o == nil {
		return resp, errNilOrderRequest
	}
	clientOrderID := o.NewClientOrderID
	if clientOrderID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return resp, err
		}
		clientOrderID = id.String()
	}

	params := url.Values{}
	params.Set("symbol", o.Symbol)
	params.Set("side", o.Side)
	params.Set("type", o.OrderType)
	params.Set("newClientOrderId", clientOrderID)
	if o.Quantity != 0 {
		params.Set("quantity", strconv.FormatFloat(o.Quantity, 'f', -1, 64))
	}
	if o.QuoteOrderQty != 0 {
		params.Set("quoteOrderQty", strconv.FormatFloat(o.QuoteOrderQty, 'f', -1, 64))
	}
	if o.Price != 0 {
		params.Set("price", strconv.FormatFloat(o.Price, 'f', -1, 64))
	}
	if o.TimeInForce != "" {
		params.Set("timeInForce", o.TimeInForce)
	}
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodPost, spotNewOrder, params, nil, &resp)
}

// GetMarginPairs returns all cross margin pairs
func (b *Binance) GetMarginPairs(ctx context.Context) ([]MarginPair, error) {
	var resp []MarginPair
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, spotMarginPairs, nil, nil, &resp)
}

// GetBrokerIfNewUser reports whether the account was referred by the
// supplied broker code
func (b *Binance) GetBrokerIfNewUser(ctx context.Context, brokerID string) (BrokerNewUser, error) {
	var resp BrokerNewUser
	params := url.Values{}
	params.Set("apiAgentCode", brokerID)
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, spotBrokerIfNewUser, params, nil, &resp)
}

// GetRecentRebate returns broker rebate records within [start, end]
func (b *Binance) GetRecentRebate(ctx context.Context, start, end time.Time, customerID string) (BrokerRebates, error) {
	var resp BrokerRebates
	params := url.Values{}
	params.Set("startTime", strconv.FormatInt(start.UnixMilli(), 10))
	params.Set("endTime", strconv.FormatInt(end.UnixMilli(), 10))
	if customerID != "" {
		params.Set("customerId", customerID)
	}
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, spotBrokerRebate, params, nil, &resp)
}

// GetSubAccountTransferHistory returns sub account to main transfers
func (b *Binance) GetSubAccountTransferHistory(ctx context.Context, asset string, transferType int64, start, end time.Time) ([]SubAccountTransfer, error) {
	var resp []SubAccountTransfer
	params := url.Values{}
	if asset != "" {
		params.Set("asset", asset)
	}
	if transferType != 0 {
		params.Set("type", strconv.FormatInt(transferType, 10))
	}
	if !start.IsZero() {
		params.Set("startTime", strconv.FormatInt(start.UnixMilli(), 10))
	}
	if !end.IsZero() {
		params.Set("endTime", strconv.FormatInt(end.UnixMilli(), 10))
	}
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, spotSubumTransferHist, params, nil, &resp)
}

// GetIncome returns wallet income records, filtered by type when supplied
func (b *Binance) GetIncome(ctx context.Context, incomeType string) ([]Income, error) {
	var resp []Income
	params := url.Values{}
	if incomeType != "" {
		params.Set("incomeType", incomeType)
	}
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, spotIncome, params, nil, &resp)
}

// GetDustAssets returns the small balances convertible to BNB
func (b *Binance) GetDustAssets(ctx context.Context) (DustAssets, error) {
	var resp DustAssets
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodPost, spotDustAssets, nil, nil, &resp)
}

// DustTransfer converts the supplied small balance asset to BNB
func (b *Binance) DustTransfer(ctx context.Context, asset string) (DustTransferResponse, error) {
	var resp DustTransferResponse
	params := url.Values{}
	params.Set("asset", asset)
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodPost, spotDustTransfer, params, nil, &resp)
}
