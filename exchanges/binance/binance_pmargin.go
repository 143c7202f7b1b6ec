package binance

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Portfolio margin endpoints, addressed absolutely against the papi host.
const (
	pmUMOrder        = "/papi/v1/um/order"
	pmCMOrder        = "/papi/v1/cm/order"
	pmUMPositionSide = "/papi/v1/um/positionSide/dual"
	pmUMLeverage     = "/papi/v1/um/leverage"
	pmCMLeverage     = "/papi/v1/cm/leverage"
	pmUMPositionRisk = "/papi/v1/um/positionRisk"
	pmCMPositionRisk = "/papi/v1/cm/positionRisk"
	pmUMAccount      = "/papi/v1/um/account"
	pmCMAccount      = "/papi/v1/cm/account"
	pmUMForceOrders  = "/papi/v1/um/forceOrders"
	pmCMForceOrders  = "/papi/v1/cm/forceOrders"
)

// PMNewUMOrder places a USDT margined order in the portfolio margin
// account
func (b *Binance) PMNewUMOrder(ctx context.Context, o *PMOrderRequest) (PMOrderResponse, error) {
	return b.pmNewOrder(ctx, pmUMOrder, o)
}

// PMNewCMOrder places a coin margined order in the portfolio margin
// account
func (b *Binance) PMNewCMOrder(ctx context.Context, o *PMOrderRequest) (PMOrderResponse, error) {
	return b.pmNewOrder(ctx, pmCMOrder, o)
}

func (b *Binance) pmNewOrder(ctx context.Context, path string, o *PMOrderRequest) (PMOrderResponse, error) {
	var resp PMOrderResponse
	if o == nil {
		return resp, errNilOrderRequest
	}
	params := url.Values{}
	params.Set("symbol", o.Symbol)
	params.Set("side", o.Side)
	params.Set("type", o.OrderType)
	if o.Quantity != 0 {
		params.Set("quantity", strconv.FormatFloat(o.Quantity, 'f', -1, 64))
	}
	if o.Price != 0 {
		params.Set("price", strconv.FormatFloat(o.Price, 'f', -1, 64))
	}
	if o.PositionSide != "" {
		params.Set("positionSide", o.PositionSide)
	}
	if o.ReduceOnly {
		params.Set("reduceOnly", "true")
	}
	if o.TimeInForce != "" {
		params.Set("timeInForce", o.TimeInForce)
	}
	if o.NewClientOrderID != "" {
		params.Set("newClientOrderId", o.NewClientOrderID)
	}
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodPost, b.PMarginAPIURL+path, params, nil, &resp)
}

// PMCancelUMOrder cancels a USDT margined portfolio margin order by order
// ID or original client order ID
func (b *Binance) PMCancelUMOrder(ctx context.Context, symbol string, orderID int64, origClientOrderID string) (PMOrderResponse, error) {
	var resp PMOrderResponse
	params := url.Values{}
	params.Set("symbol", symbol)
	if orderID != 0 {
		params.Set("orderId", strconv.FormatInt(orderID, 10))
	}
	if origClientOrderID != "" {
		params.Set("origClientOrderId", origClientOrderID)
	}
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodDelete, b.PMarginAPIURL+pmUMOrder, params, nil, &resp)
}

// PMSetUMPositionMode toggles hedge mode for the portfolio margin USDT
// margined account
func (b *Binance) PMSetUMPositionMode(ctx context.Context, dual bool) (CodeMessage, error) {
	var resp CodeMessage
	params := url.Values{}
	params.Set("dualSidePosition", strconv.FormatBool(dual))
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodPost, b.PMarginAPIURL+pmUMPositionSide, params, nil, &resp)
}

// PMSetUMLeverage changes USDT margined leverage within portfolio margin
func (b *Binance) PMSetUMLeverage(ctx context.Context, symbol string, leverage int64) (LeverageResponse, error) {
	return b.pmSetLeverage(ctx, pmUMLeverage, symbol, leverage)
}

// PMSetCMLeverage changes coin margined leverage within portfolio margin
func (b *Binance) PMSetCMLeverage(ctx context.Context, symbol string, leverage int64) (LeverageResponse, error) {
	return b.pmSetLeverage(ctx, pmCMLeverage, symbol, leverage)
}

func (b *Binance) pmSetLeverage(ctx context.Context, path, symbol string, leverage int64) (LeverageResponse, error) {
	var resp LeverageResponse
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("leverage", strconv.FormatInt(leverage, 10))
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodPost, b.PMarginAPIURL+path, params, nil, &resp)
}

// PMUMPositionRisk returns USDT margined position risk within portfolio
// margin
func (b *Binance) PMUMPositionRisk(ctx context.Context, symbol string) ([]PositionRisk, error) {
	return b.pmPositionRisk(ctx, pmUMPositionRisk, symbol)
}

// PMCMPositionRisk returns coin margined position risk within portfolio
// margin
func (b *Binance) PMCMPositionRisk(ctx context.Context, symbol string) ([]PositionRisk, error) {
	return b.pmPositionRisk(ctx, pmCMPositionRisk, symbol)
}

func (b *Binance) pmPositionRisk(ctx context.Context, path, symbol string) ([]PositionRisk, error) {
	var resp []PositionRisk
	params := url.Values{}
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.PMarginAPIURL+path, params, nil, &resp)
}

// PMUMAccount returns USDT margined account details within portfolio
// margin
func (b *Binance) PMUMAccount(ctx context.Context) (UAccountInfo, error) {
	var resp UAccountInfo
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.PMarginAPIURL+pmUMAccount, nil, nil, &resp)
}

// PMCMAccount returns coin margined account details within portfolio
// margin
func (b *Binance) PMCMAccount(ctx context.Context) (UAccountInfo, error) {
	var resp UAccountInfo
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.PMarginAPIURL+pmCMAccount, nil, nil, &resp)
}

// PMUMForceOrders returns USDT margined liquidation orders within
// portfolio margin
func (b *Binance) PMUMForceOrders(ctx context.Context, symbol, autoCloseType string, start, end time.Time, limit int64) ([]ForceOrder, error) {
	params := forceOrderParams(symbol, autoCloseType, start, end, limit)
	var resp []ForceOrder
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.PMarginAPIURL+pmUMForceOrders, params, nil, &resp)
}

// PMCMForceOrders returns coin margined liquidation orders within
// portfolio margin
func (b *Binance) PMCMForceOrders(ctx context.Context, symbol, autoCloseType string, start, end time.Time, limit int64) ([]ForceOrder, error) {
	params := forceOrderParams(symbol, autoCloseType, start, end, limit)
	var resp []ForceOrder
	return resp, b.SendAuthHTTPRequest(ctx, http.MethodGet, b.PMarginAPIURL+pmCMForceOrders, params, nil, &resp)
}
