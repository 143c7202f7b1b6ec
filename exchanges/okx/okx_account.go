package okx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// Authenticated endpoints
	okxBalance                      = "/api/v5/account/balance"
	okxTradeFee                     = "/api/v5/account/trade-fee"
	okxPositions                    = "/api/v5/account/positions"
	okxBills                        = "/api/v5/account/bills"
	okxAccountConfig                = "/api/v5/account/config"
	okxLeverageInfo                 = "/api/v5/account/leverage-info"
	okxSetLeverage                  = "/api/v5/account/set-leverage"
	okxFixedLoanBorrowingOrders     = "/api/v5/account/fixed-loan/borrowing-orders-list"
	okxFixedLoanManualReborrow      = "/api/v5/account/fixed-loan/manual-reborrow"
	okxFixedLoanRepayBorrowingOrder = "/api/v5/account/fixed-loan/repay-borrowing-order"
	okxFixedLoanConvertToMarketLoan = "/api/v5/account/fixed-loan/convert-to-market-loan"
)

// GetBalance returns the unified account balance, optionally narrowed to a
// comma separated currency list.
func (o *Okx) GetBalance(ctx context.Context, ccy string) ([]Balance, error) {
	params := url.Values{}
	if ccy != "" {
		params.Set("ccy", ccy)
	}
	var resp BalancesResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxBalance, params, nil, &resp)
}

// GetTradeFee returns the fee schedule applied to the account.
func (o *Okx) GetTradeFee(ctx context.Context, instType, instID, underlying string) ([]TradeFee, error) {
	params := url.Values{}
	params.Set("instType", instType)
	if instID != "" {
		params.Set("instId", instID)
	}
	if underlying != "" {
		params.Set("uly", underlying)
	}
	var resp TradeFeesResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxTradeFee, params, nil, &resp)
}

// GetPositions returns open positions. All filters are optional; posID may
// be a comma separated list.
func (o *Okx) GetPositions(ctx context.Context, instType, instID, posID string) ([]Position, error) {
	params := url.Values{}
	if instType != "" {
		params.Set("instType", instType)
	}
	if instID != "" {
		params.Set("instId", instID)
	}
	if posID != "" {
		params.Set("posId", posID)
	}
	var resp PositionsResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxPositions, params, nil, &resp)
}

// GetAccountBills returns balance changes over the last seven days.
func (o *Okx) GetAccountBills(ctx context.Context, instType, ccy, billType, subType string) ([]Bill, error) {
	params := url.Values{}
	if instType != "" {
		params.Set("instType", instType)
	}
	if ccy != "" {
		params.Set("ccy", ccy)
	}
	if billType != "" {
		params.Set("type", billType)
	}
	if subType != "" {
		params.Set("subType", subType)
	}
	var resp BillsResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxBills, params, nil, &resp)
}

// GetAccountConfig returns account level configuration.
func (o *Okx) GetAccountConfig(ctx context.Context) ([]AccountConfig, error) {
	var resp AccountConfigResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxAccountConfig, nil, nil, &resp)
}

// GetLeverage returns leverage settings for an instrument. Margin mode
// defaults to cross.
func (o *Okx) GetLeverage(ctx context.Context, instID, mgnMode string) ([]Leverage, error) {
	if mgnMode == "" {
		mgnMode = "cross"
	}
	params := url.Values{}
	params.Set("instId", instID)
	params.Set("mgnMode", mgnMode)
	var resp LeverageResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxLeverageInfo, params, nil, &resp)
}

// SetLeverage updates leverage for an instrument. Margin mode defaults to
// cross. The venue wants every numeric as a string.
func (o *Okx) SetLeverage(ctx context.Context, instID string, lever int64, mgnMode string) ([]Leverage, error) {
	if mgnMode == "" {
		mgnMode = "cross"
	}
	body, err := json.Marshal(map[string]string{
		"instId":  instID,
		"lever":   strconv.FormatInt(lever, 10),
		"mgnMode": mgnMode,
	})
	if err != nil {
		return nil, err
	}
	var resp LeverageResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodPost, okxSetLeverage, nil, body, &resp)
}

// GetFixedLoanBorrowingOrders lists fixed loan borrowing orders. All
// filters are optional.
func (o *Okx) GetFixedLoanBorrowingOrders(ctx context.Context, ordID, ccy, state string, limit int64) ([]FixedLoanOrder, error) {
	params := url.Values{}
	if ordID != "" {
		params.Set("ordId", ordID)
	}
	if ccy != "" {
		params.Set("ccy", ccy)
	}
	if state != "" {
		params.Set("state", state)
	}
	if limit > 0 {
		params.Set("limit", strconv.FormatInt(limit, 10))
	}
	var resp FixedLoanOrdersResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxFixedLoanBorrowingOrders, params, nil, &resp)
}

// FixedLoanManualReborrow reborrows an expired fixed loan order.
func (o *Okx) FixedLoanManualReborrow(ctx context.Context, ordID string) ([]FixedLoanState, error) {
	return o.fixedLoanOp(ctx, okxFixedLoanManualReborrow, ordID)
}

// FixedLoanRepayBorrowingOrder repays a fixed loan borrowing order.
func (o *Okx) FixedLoanRepayBorrowingOrder(ctx context.Context, ordID string) ([]FixedLoanState, error) {
	return o.fixedLoanOp(ctx, okxFixedLoanRepayBorrowingOrder, ordID)
}

// FixedLoanConvertToMarketLoan converts a fixed loan order into a market
// loan.
func (o *Okx) FixedLoanConvertToMarketLoan(ctx context.Context, ordID string) ([]FixedLoanState, error) {
	return o.fixedLoanOp(ctx, okxFixedLoanConvertToMarketLoan, ordID)
}

func (o *Okx) fixedLoanOp(ctx context.Context, path, ordID string) ([]FixedLoanState, error) {
	body, err := json.Marshal(map[string]string{"ordId": ordID})
	if err != nil {
		return nil, err
	}
	var resp FixedLoanStatesResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodPost, path, nil, body, &resp)
}
