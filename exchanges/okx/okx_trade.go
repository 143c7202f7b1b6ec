package okx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid"
)

const (
	// Authenticated endpoints
	okxOrdersHistory           = "/api/v5/trade/orders-history"
	okxFills                   = "/api/v5/trade/fills"
	okxPlaceOrder              = "/api/v5/trade/order"
	okxAmendOrder              = "/api/v5/trade/amend-order"
	okxEasyConvertCurrencyList = "/api/v5/trade/easy-convert-currency-list"
	okxEasyConvert             = "/api/v5/trade/easy-convert"
	okxBrokerRebate            = "/api/v5/broker/fd/if-rebate"
	okxBrokerRebatePerOrders   = "/api/v5/broker/fd/rebate-per-orders"
)

var errNilOrderRequest = errors.New("okx: nil order request")

// OrderRequest describes a new order. Numeric fields travel as strings per
// the venue contract.
type OrderRequest struct {
	InstID     string `json:"instId"`
	TradeMode  string `json:"tdMode"`
	Side       string `json:"side"`
	OrderType  string `json:"ordType"`
	Size       string `json:"sz"`
	Currency   string `json:"ccy,omitempty"`
	ClientID   string `json:"clOrdId,omitempty"`
	Tag        string `json:"tag,omitempty"`
	Price      string `json:"px,omitempty"`
	ReduceOnly bool   `json:"reduceOnly,omitempty"`
	TargetCcy  string `json:"tgtCcy,omitempty"`
	PosSide    string `json:"posSide,omitempty"`
}

// GetOrdersHistory returns completed orders for a product type over the
// last seven days.
func (o *Okx) GetOrdersHistory(ctx context.Context, instType string) ([]Order, error) {
	params := url.Values{}
	params.Set("instType", instType)
	var resp OrdersResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxOrdersHistory, params, nil, &resp)
}

// GetFills returns recent transaction details.
func (o *Okx) GetFills(ctx context.Context, instType string) ([]Fill, error) {
	params := url.Values{}
	if instType != "" {
		params.Set("instType", instType)
	}
	var resp FillsResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxFills, params, nil, &resp)
}

// PlaceOrder submits a new order. Per order acceptance is reported through
// the result sCode, not the envelope code. When the caller leaves ClientID
// empty one is assigned, so every fill can be correlated later; the venue
// echoes it back as clOrdId.
func (o *Okx) PlaceOrder(ctx context.Context, order *OrderRequest) ([]OrderResult, error) {
	if order == nil {
		return nil, errNilOrderRequest
	}
	req := *order
	if req.ClientID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, err
		}
		// clOrdId allows up to 32 alphanumerics, which a dash free UUID
		// fits exactly
		req.ClientID = strings.ReplaceAll(id.String(), "-", "")
	}
	body, err := json.Marshal(&req)
	if err != nil {
		return nil, err
	}
	var resp OrderResultsResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodPost, okxPlaceOrder, nil, body, &resp)
}

// AmendOrder revises the size or price of a resting order.
func (o *Okx) AmendOrder(ctx context.Context, instID, ordID, newSize, newPrice string) ([]OrderResult, error) {
	req := map[string]string{
		"instId": instID,
		"ordId":  ordID,
	}
	if newSize != "" {
		req["newSz"] = newSize
	}
	if newPrice != "" {
		req["newPx"] = newPrice
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	var resp OrderResultsResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodPost, okxAmendOrder, nil, body, &resp)
}

// GetEasyConvertCurrencyList returns small balances eligible for easy
// convert and the currencies they can convert into.
func (o *Okx) GetEasyConvertCurrencyList(ctx context.Context) ([]EasyConvertCurrencyList, error) {
	var resp EasyConvertCurrencyListResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxEasyConvertCurrencyList, nil, nil, &resp)
}

// EasyConvert converts one or more small balances into the target currency.
func (o *Okx) EasyConvert(ctx context.Context, fromCcy []string, toCcy string) ([]EasyConvertResult, error) {
	body, err := json.Marshal(map[string]interface{}{
		"fromCcy": fromCcy,
		"toCcy":   toCcy,
	})
	if err != nil {
		return nil, err
	}
	var resp EasyConvertResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodPost, okxEasyConvert, nil, body, &resp)
}

// GetBrokerRebate returns the rebate rate for a broker sub account key.
func (o *Okx) GetBrokerRebate(ctx context.Context, apiKey, brokerType string) ([]Rebate, error) {
	params := url.Values{}
	params.Set("apiKey", apiKey)
	params.Set("brokerType", brokerType)
	var resp RebatesResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxBrokerRebate, params, nil, &resp)
}

// GenerateRebatePerOrders asks the venue to build a per order rebate file
// for the window.
func (o *Okx) GenerateRebatePerOrders(ctx context.Context, begin, end time.Time, brokerType string) ([]RebatePerOrder, error) {
	req := map[string]string{"brokerType": brokerType}
	if !begin.IsZero() {
		req["begin"] = strconv.FormatInt(begin.UnixMilli(), 10)
	}
	if !end.IsZero() {
		req["end"] = strconv.FormatInt(end.UnixMilli(), 10)
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	var resp RebatePerOrdersResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodPost, okxBrokerRebatePerOrders, nil, body, &resp)
}

// GetRebatePerOrders fetches the download link for a previously generated
// per order rebate file.
func (o *Okx) GetRebatePerOrders(ctx context.Context, brokerType string) ([]RebatePerOrder, error) {
	params := url.Values{}
	params.Set("brokerType", brokerType)
	var resp RebatePerOrdersResponse
	return resp.Data, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxBrokerRebatePerOrders, params, nil, &resp)
}
