package huobi

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// Coin-margined futures endpoints
const (
	huobiFContractInfo = "/api/v1/contract_contract_info"
	huobiFCandles      = "/market/history/kline"
	huobiFAccountInfo  = "/api/v1/contract_account_info"
	huobiFPositions    = "/api/v1/contract_position_info"
)

// FGetContractInfo returns coin-margined futures contract definitions.
func (h *Huobi) FGetContractInfo(ctx context.Context) ([]ContractInfo, error) {
	var resp ContractInfoResponse
	return resp.Data, h.SendHTTPRequest(ctx, http.MethodGet, huobiFContractInfo, nil, &resp)
}

// FGetCandles returns coin-margined futures klines between two times, sent
// in unix seconds. Period defaults to one minute.
func (h *Huobi) FGetCandles(ctx context.Context, symbol, period string, start, end time.Time) ([]Candle, error) {
	params := candleParams("symbol", symbol, period)
	params.Set("from", strconv.FormatInt(start.Unix(), 10))
	params.Set("to", strconv.FormatInt(end.Unix(), 10))
	var resp CandlesResponse
	return resp.Data, h.SendHTTPRequest(ctx, http.MethodGet, huobiFCandles, params, &resp)
}

// FGetRecentCandles returns the most recent size coin-margined futures
// klines.
func (h *Huobi) FGetRecentCandles(ctx context.Context, symbol, period string, size int64) ([]Candle, error) {
	params := candleParams("symbol", symbol, period)
	params.Set("size", strconv.FormatInt(size, 10))
	var resp CandlesResponse
	return resp.Data, h.SendHTTPRequest(ctx, http.MethodGet, huobiFCandles, params, &resp)
}

// FGetAccountInfo returns futures account equity, optionally narrowed to one
// underlying symbol.
func (h *Huobi) FGetAccountInfo(ctx context.Context, symbol string) ([]IsolatedAccount, error) {
	body, err := contractBody("symbol", symbol)
	if err != nil {
		return nil, err
	}
	var resp IsolatedAccountsResponse
	return resp.Data, h.SendAuthHTTPRequest(ctx, http.MethodPost, huobiFAccountInfo, nil, body, &resp)
}

// FGetPositions returns open futures positions.
func (h *Huobi) FGetPositions(ctx context.Context) ([]Position, error) {
	var resp PositionsResponse
	return resp.Data, h.SendAuthHTTPRequest(ctx, http.MethodPost, huobiFPositions, nil, nil, &resp)
}
