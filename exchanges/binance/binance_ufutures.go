package binance

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// USDT margined futures endpoints, addressed absolutely against the fapi
// host.
const (
	ufuturesPing             = "/fapi/v1/ping"
	ufuturesServerTime       = "/fapi/v1/time"
	ufuturesExchangeInfo     = "/fapi/v1/exchangeInfo"
	ufuturesTickerPrice      = "/fapi/v2/ticker/price"
	ufuturesCandles          = "/fapi/v1/klines"
	ufuturesFundingRate      = "/fapi/v1/fundingRate"
	ufuturesOpenInterestHist = "/futures/data/openInterestHist"
	ufuturesBalance          = "/fapi/v2/balance"
	ufuturesPositionRisk     = "/fapi/v2/positionRisk"
	ufuturesAccountInfo      = "/fapi/v2/account"
	ufuturesLeverage         = "/fapi/v1/leverage"
	ufuturesPositionSide     = "/fapi/v1/positionSide/dual"
	ufuturesMultiAssets      = "/fapi/v1/multiAssetsMargin"
	ufuturesIncome           = "/fapi/v1/income"
	ufuturesForceOrders      = "/fapi/v1/forceOrders"
)

// UPing checks connectivity to the USDT margined futures API
func (b *Binance) UPing(ctx context.Context) error {
	return b.SendHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesPing, nil, nil)
}

// UServerTime returns the USDT margined futures server time
func (b *Binance) UServerTime(ctx context.Context) (time.Time, error) {
	var resp ServerTime
	err := b.SendHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesServerTime, nil, &resp)
	if err != nil {
		return time.Time{}, err
	}
	return resp.ServerTime.Time(), nil
}

// UExchangeInfo returns USDT margined futures trading rules and symbols
func (b *Binance) UExchangeInfo(ctx context.Context) (UExchangeInfo, error) {
	var resp UExchangeInfo
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesExchangeInfo, nil, &resp)
}

// UTickerPrice returns the latest USDT margined futures price for a symbol
func (b *Binance) UTickerPrice(ctx context.Context, symbol string) (TickerPrice, error) {
	var resp TickerPrice
	params := url.Values{}
	params.Set("symbol", symbol)
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesTickerPrice, params, &resp)
}

// UTickerPrices returns the latest USDT margined futures price for every
// symbol
func (b *Binance) UTickerPrices(ctx context.Context) ([]TickerPrice, error) {
	var resp []TickerPrice
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesTickerPrice, nil, &resp)
}

// UCandles returns USDT margined futures klines covering [start, end]
func (b *Binance) UCandles(ctx context.Context, symbol, interval string, start, end time.Time, limit int64) ([]Candle, error) {
	var resp []Candle
	params := candleParams(symbol, interval, start, end, limit)
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesCandles, params, &resp)
}

// UFundingRateHistory returns funding rate records for USDT margined
// futures
func (b *Binance) UFundingRateHistory(ctx context.Context, symbol string, start, end time.Time, limit int64) ([]FundingRate, error) {
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
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesFundingRate, params, &resp)
}

// UOpenInterestHist returns historical open interest statistics
func (b *Binance) UOpenInterestHist(ctx context.Context, symbol, period string, limit int64, start, end time.Time) ([]OpenInterest, error) {
	var resp []OpenInterest
	params := url.Values{}
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	if period != "" {
		params.Set("period", period)
	}
	if limit > 0 {
		params.Set("limit", strconv.FormatInt(limit, 10))
	}
	if !start.IsZero() {
		params.Set("startTime", strconv.FormatInt(start.UnixMilli(), 10))
	}
	if !end.IsZero() {
		params.Set("endTime", strconv.FormatInt(end.UnixMilli(), 10))
	}
	return resp, b.SendHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesOpenInterestHist, params, &resp)
}

// UBalance returns USDT margined futures account balances
func (b *Binance) UBalance(ctx context.Context) ([]UBalance, error) {
	var resp []UBalance
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesBalance, nil, nil, &resp)
}

// UPositionRisk returns position risk for USDT margined futures, for one
// symbol when supplied
func (b *Binance) UPositionRisk(ctx context.Context, symbol string) ([]PositionRisk, error) {
	var resp []PositionRisk
	params := url.Values{}
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesPositionRisk, params, nil, &resp)
}

// UAccountInfo returns USDT margined futures account details
func (b *Binance) UAccountInfo(ctx context.Context) (UAccountInfo, error) {
	var resp UAccountInfo
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesAccountInfo, nil, nil, &resp)
}

// USetLeverage changes the initial leverage for a USDT margined futures
// symbol
func (b *Binance) USetLeverage(ctx context.Context, symbol string, leverage int64) (LeverageResponse, error) {
	var resp LeverageResponse
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("leverage", strconv.FormatInt(leverage, 10))
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodPost, b.UFuturesAPIURL+ufuturesLeverage, params, nil, &resp)
}

// UGetPositionSideDual reports whether hedge mode is enabled
func (b *Binance) UGetPositionSideDual(ctx context.Context) (PositionSideDual, error) {
	var resp PositionSideDual
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesPositionSide, nil, nil, &resp)
}

// USetPositionSideDual toggles hedge mode for the whole account
func (b *Binance) USetPositionSideDual(ctx context.Context, dual bool) (CodeMessage, error) {
	var resp CodeMessage
	params := url.Values{}
	params.Set("dualSidePosition", strconv.FormatBool(dual))
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodPost, b.UFuturesAPIURL+ufuturesPositionSide, params, nil, &resp)
}

// UGetMultiAssetsMargin reports whether multi assets mode is enabled
func (b *Binance) UGetMultiAssetsMargin(ctx context.Context) (MultiAssetsMargin, error) {
	var resp MultiAssetsMargin
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesMultiAssets, nil, nil, &resp)
}

// USetMultiAssetsMargin toggles multi assets mode for the whole account
func (b *Binance) USetMultiAssetsMargin(ctx context.Context, enabled bool) (CodeMessage, error) {
	var resp CodeMessage
	params := url.Values{}
	params.Set("multiAssetsMargin", strconv.FormatBool(enabled))
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodPost, b.UFuturesAPIURL+ufuturesMultiAssets, params, nil, &resp)
}

// UIncome returns USDT margined futures income records, filtered by type
// when supplied
func (b *Binance) UIncome(ctx context.Context, incomeType string) ([]Income, error) {
	var resp []Income
	params := url.Values{}
	if incomeType != "" {
		params.Set("incomeType", incomeType)
	}
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesIncome, params, nil, &resp)
}

// UForceOrders returns the account's USDT margined futures liquidation
// orders
func (b *Binance) UForceOrders(ctx context.Context, symbol, autoCloseType string, start, end time.Time, limit int64) ([]ForceOrder, error) {
	var resp []ForceOrder
	params := forceOrderParams(symbol, autoCloseType, start, end, limit)
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.UFuturesAPIURL+ufuturesForceOrders, params, nil, &resp)
}

func forceOrderParams(symbol, autoCloseType string, start, end time.Time, limit int64) url.Values {
	params := url.Values{}
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	if autoCloseType != "" {
		params.Set("autoCloseType", autoCloseType)
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
	return params
}
