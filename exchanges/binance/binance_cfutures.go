package binance

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Coin margined futures endpoints, addressed absolutely against the dapi
// host.
const (
	cfuturesPing         = "/dapi/v1/ping"
	cfuturesServerTime   = "/dapi/v1/time"
	cfuturesExchangeInfo = "/dapi/v1/exchangeInfo"
	cfuturesTickerPrice  = "/dapi/v1/ticker/price"
	cfuturesCandles      = "/dapi/v1/klines"
	cfuturesFundingRate  = "/dapi/v1/fundingRate"
	cfuturesBalance      = "/dapi/v1/balance"
	cfuturesPositionRisk = "/dapi/v1/positionRisk"
	cfuturesAccountInfo  = "/dapi/v1/account"
	cfuturesLeverage     = "/dapi/v1/leverage"
	cfuturesUserTrades   = "/dapi/v1/userTrades"
	cfuturesIncome       = "/dapi/v1/income"
	cfuturesForceOrders  = "/dapi/v1/forceOrders"
)

// FuturesPing checks connectivity to the coin margined futures API
func (b *Binance) FuturesPing(ctx context.Context) error {
	return b.SendHTTPRequest(ctx, http.MethodGet, b.CFuturesAPIURL+cfuturesPing, nil, nil)
}

// FuturesServerTime returns the coin margined futures server time
func (b *Binance) FuturesServerTime(ctx context.Context) (time.Time, error) {
	var resp ServerTime
	err := b.SendHTTPRequest(ctx, http.MethodGet, b.CFuturesAPIURL+cfuturesServerTime, nil, &resp)
	if err != nil {
		return time.Time{}, err
	}
	return resp.ServerTime.Time(), nil
}

// FuturesExchangeInfo returns coin margined futures trading rules and
// symbols
func (b *Binance) FuturesExchangeInfo(ctx context.Context) (UExchangeInfo, error) {
	var resp UExchangeInfo
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, b.CFuturesAPIURL+cfuturesExchangeInfo, nil, &resp)
}

// FuturesTickerPrice returns the latest coin margined futures prices, for
// one symbol when supplied. The venue responds with a list either way.
func (b *Binance) FuturesTickerPrice(ctx context.Context, symbol string) ([]TickerPrice, error) {
	var resp []TickerPrice
	params := url.Values{}
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, b.CFuturesAPIURL+cfuturesTickerPrice, params, &resp)
}

// FuturesCandles returns coin margined futures klines covering [start, end]
func (b *Binance) FuturesCandles(ctx context.Context, symbol, interval string, start, end time.Time, limit int64) ([]Candle, error) {
	var resp []Candle
	params := candleParams(symbol, interval, start, end, limit)
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, b.CFuturesAPIURL+cfuturesCandles, params, &resp)
}

// FuturesFundingRateHistory returns funding rate records for coin margined
// futures
func (b *Binance) FuturesFundingRateHistory(ctx context.Context, symbol string, start, end time.Time, limit int64) ([]FundingRate, error) {
	var resp []FundingRate
	params := url.Values{}
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	if !start.IsZero() {
		params.Set("startTime", strconv.FormatInt(start.UnixMilli(), 10))
	}
	if !end.IsZero() {
		params.Set("endTime", strconv.FormatInt(end.UnixMilli(), 10))
	}
	if limit > 0 {
		params.Set("limit", strconv.FormatInt(limit, 10))
	}
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, b.CFuturesAPIURL+cfuturesFundingRate, params, &resp)
}

// FuturesBalance returns coin margined futures account balances
func (b *Binance) FuturesBalance(ctx context.Context) ([]FuturesBalance, error) {
	var resp []FuturesBalance
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.CFuturesAPIURL+cfuturesBalance, nil, nil, &resp)
}

// FuturesPositionRisk returns coin margined position risk filtered by
// margin asset or pair when supplied
func (b *Binance) FuturesPositionRisk(ctx context.Context, marginAsset, pair string) ([]PositionRisk, error) {
	var resp []PositionRisk
	params := url.Values{}
	if marginAsset != "" {
		params.Set("marginAsset", marginAsset)
	}
	if pair != "" {
		params.Set("pair", pair)
	}
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.CFuturesAPIURL+cfuturesPositionRisk, params, nil, &resp)
}

// FuturesAccountInfo returns coin margined futures account details
func (b *Binance) FuturesAccountInfo(ctx context.Context) (UAccountInfo, error) {
	var resp UAccountInfo
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.CFuturesAPIURL+cfuturesAccountInfo, nil, nil, &resp)
}

// FuturesSetLeverage changes the initial leverage for a coin margined
// futures symbol
func (b *Binance) FuturesSetLeverage(ctx context.Context, symbol string, leverage int64) (LeverageResponse, error) {
	var resp LeverageResponse
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("leverage", strconv.FormatInt(leverage, 10))
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodPost, b.CFuturesAPIURL+cfuturesLeverage, params, nil, &resp)
}

// FuturesUserTrades returns the account's coin margined futures trades for
// a symbol
func (b *Binance) FuturesUserTrades(ctx context.Context, symbol string, start, end time.Time) ([]FuturesUserTrade, error) {
	var resp []FuturesUserTrade
	params := url.Values{}
	params.Set("symbol", symbol)
	if !start.IsZero() {
		params.Set("startTime", strconv.FormatInt(start.UnixMilli(), 10))
	}
	if !end.IsZero() {
		params.Set("endTime", strconv.FormatInt(end.UnixMilli(), 10))
	}
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.CFuturesAPIURL+cfuturesUserTrades, params, nil, &resp)
}

// FuturesIncome returns coin margined futures income records, filtered by
// type when supplied
func (b *Binance) FuturesIncome(ctx context.Context, incomeType string) ([]Income, error) {
	var resp []Income
	params := url.Values{}
	if incomeType != "" {
		params.Set("incomeType", incomeType)
	}
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.CFuturesAPIURL+cfuturesIncome, params, nil, &resp)
}

// FuturesForceOrders returns the account's coin margined futures
// liquidation orders
func (b *Binance) FuturesForceOrders(ctx context.Context, symbol, autoCloseType string, start, end time.Time, limit int64) ([]ForceOrder, error) {
	var resp []ForceOrder
	params := forceOrderParams(symbol, autoCloseType, start, end, limit)
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.CFuturesAPIURL+cfuturesForceOrders, params, nil, &resp)
}
