package huobi

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// Coin-margined swap endpoints
const (
	huobiSwapContractInfo    = "/swap-api/v1/swap_contract_info"
	huobiSwapCandles         = "/swap-ex/market/history/kline"
	huobiSwapMarkPriceKline  = "/index/market/history/swap_mark_price_kline"
	huobiSwapAccountInfo     = "/swap-api/v1/swap_account_info"
	huobiSwapPositions       = "/swap-api/v1/swap_position_info"
	defaultMarkPriceKlineLen = 150
)

// SwapGetContractInfo returns coin-margined swap contract definitions.
func (h *Huobi) SwapGetContractInfo(ctx context.Context) ([]ContractInfo, error) {
	var resp ContractInfoResponse
	return resp.Data, h.SendHTTPRequest(ctx, http.MethodGet, huobiSwapContractInfo, nil, &resp)
}

// SwapGetCandles returns coin-margined swap klines between two times, sent
// in unix seconds. Period defaults to one minute.
func (h *Huobi) SwapGetCandles(ctx context.Context, symbol, period string, start, end time.Time) ([]Candle, error) {
	params := candleParams("symbol", symbol, period)
	params.Set("from", strconv.FormatInt(start.Unix(), 10))
	params.Set("to", strconv.FormatInt(end.Unix(), 10))
	var resp CandlesResponse
	return resp.Data, h.SendHTTPRequest(ctx, http.MethodGet, huobiSwapCandles, params, &resp)
}

// SwapGetRecentCandles returns the most recent size coin-margined swap
// klines.
func (h *Huobi) SwapGetRecentCandles(ctx context.Context, symbol, period string, size int64) ([]Candle, error) {
	params := candleParams("symbol", symbol, period)
	params.Set("size", strconv.FormatInt(size, 10))
	var resp CandlesResponse
	return resp.Data, h.SendHTTPRequest(ctx, http.MethodGet, huobiSwapCandles, params, &resp)
}

// SwapGetMarkPriceCandles returns coin-margined swap mark price klines.
// Period defaults to one minute and size to 150.
func (h *Huobi) SwapGetMarkPriceCandles(ctx context.Context, contractCode, period string, size int64) ([]MarkPriceCandle, error) {
	params := candleParams("contract_code", contractCode, period)
	if size <= 0 {
		size = defaultMarkPriceKlineLen
	}
	params.Set("size", strconv.FormatInt(size, 10))
	var resp MarkPriceCandlesResponse
	return resp.Data, h.SendHTTPRequest(ctx, http.MethodGet, huobiSwapMarkPriceKline, params, &resp)
}

// SwapGetAccountInfo returns coin-margined swap account equity, optionally
// narrowed to one contract.
func (h *Huobi) SwapGetAccountInfo(ctx context.Context, contractCode string) ([]IsolatedAccount, error) {
	body, err := contractBody("contract_code", contractCode)
	if err != nil {
		return nil, err
	}
	var resp IsolatedAccountsResponse
	return resp.Data, h.SendAuthHTTPRequest(ctx, http.MethodPost, huobiSwapAccountInfo, nil, body, &resp)
}

// SwapGetPositions returns coin-margined swap positions, optionally narrowed
// to one contract.
func (h *Huobi) SwapGetPositions(ctx context.Context, contractCode string) ([]Position, error) {
	body, err := contractBody("contract_code", contractCode)
	if err != nil {
		return nil, err
	}
	var resp PositionsResponse
	return resp.Data, h.SendAuthHTTPRequest(ctx, http.MethodPost, huobiSwapPositions, nil, body, &resp)
}
