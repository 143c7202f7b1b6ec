// Package huobi implements a client for the Huobi derivative REST APIs on
// api.hbdm.com: USDT-margined swaps, coin-margined futures and coin-margined
// swaps. Signing follows the venue's v2 scheme, an HMAC-SHA256 over
// method, host, path and the sorted encoded parameters.
package huobi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/takerfee/cclib/common"
	"github.com/takerfee/cclib/common/crypto"
	exchange "github.com/takerfee/cclib/exchanges"
	"github.com/takerfee/cclib/exchanges/account"
	"github.com/takerfee/cclib/exchanges/request"
)

const (
	huobiAPIURL = "https://api.hbdm.com"

	// Public endpoints
	huobiHeartbeat          = "/heartbeat/"
	huobiLinearContractInfo = "/linear-swap-api/v1/swap_contract_info"
	huobiLinearCandles      = "/linear-swap-ex/market/history/kline"
	huobiLinearIndex        = "/linear-swap-api/v1/swap_index"

	// Authenticated endpoints
	huobiLinearCrossAccountInfo = "/linear-swap-api/v1/swap_cross_account_info"
	huobiLinearCrossPositions   = "/linear-swap-api/v1/swap_cross_position_info"
)

// Huobi is the client for the derivative APIs.
type Huobi struct {
	*exchange.Base
}

// New returns a Huobi derivative client.
func New(opts *exchange.Options) (*Huobi, error) {
	b, err := exchange.NewBase("huobi", huobiAPIURL, &signer{}, &classifier{}, opts)
	if err != nil {
		return nil, err
	}
	return &Huobi{Base: b}, nil
}

// signer implements signature version 2. AccessKeyId, SignatureMethod,
// SignatureVersion and a second precision UTC Timestamp join the request
// parameters, the HMAC-SHA256 input is method, lowercased hostname, path and
// the sorted encoded parameter set on separate lines, and the base64 digest
// travels as the Signature parameter. POST bodies stay outside the signature.
// Only GET and POST are accepted.
type signer struct{}

func (s *signer) SignRequest(creds *account.Credentials, sc *exchange.SignContext) (*exchange.Signature, error) {
	headers := make(map[string]string)
	switch sc.Method {
	case http.MethodGet:
		headers["Content-Type"] = "application/x-www-form-urlencoded"
	case http.MethodPost:
		headers["Accept"] = "application/json"
		headers["Content-Type"] = "application/json"
	default:
		return nil, exchange.ErrInvalidMethod
	}

	p := sc.Params
	p.Set("AccessKeyId", creds.Key)
	p.Set("SignatureMethod", "HmacSHA256")
	p.Set("SignatureVersion", "2")
	p.Set("Timestamp", sc.Now.UTC().Format("2006-01-02T15:04:05"))

	host := strings.ToLower(common.ExtractHost(sc.Host))
	payload := sc.Method + "\n" + host + "\n" + sc.Path + "\n" + p.Encode()
	hmac := crypto.GetHMAC(crypto.HashSHA256, []byte(payload), []byte(creds.Secret))
	p.Set("Signature", crypto.Base64Encode(hmac))
	return &exchange.Signature{RawQuery: p.Encode(), Headers: headers}, nil
}

// classifier keys off the body status marker. A status of ok is success on
// any HTTP status, maintain maps to the maintenance kind and any other value
// is a venue failure carrying the status string as its code. Objects without
// a status marker fail only when they carry an error field.
type classifier struct{}

func (c *classifier) Classify(resp *request.Response) error {
	if status, ok := exchange.FieldString(resp.Body, "status"); ok {
		switch status {
		case "ok":
			return nil
		case "maintain":
			msg := exchange.FirstString(resp.Body, "error")
			if msg == "" {
				msg = "exchange in maintain"
			}
			return exchange.NewError(exchange.ErrMaintenance, "maintain", msg, resp.StatusCode, resp.Body)
		}
		msg := exchange.FirstString(resp.Body, "err-msg", "err_msg")
		if msg == "" {
			msg = "unknown error"
		}
		return exchange.NewError(exchange.ErrExchange, status, msg, resp.StatusCode, resp.Body)
	}
	if !exchange.IsJSONObject(resp.Body) {
		return exchange.NewError(exchange.ErrExchange, "", "response is not a json object", resp.StatusCode, resp.Body)
	}
	if msg, ok := exchange.FieldString(resp.Body, "error"); ok {
		return exchange.NewError(exchange.ErrExchange, strconv.Itoa(resp.StatusCode), msg, resp.StatusCode, resp.Body)
	}
	return nil
}

// candleParams assembles the shared kline parameter set. The instrument key
// differs per product line.
func candleParams(key, instrument, period string) url.Values {
	params := url.Values{}
	params.Set(key, instrument)
	if period == "" {
		period = "1min"
	}
	params.Set("period", period)
	return params
}

// contractBody renders the optional JSON body authenticated POSTs carry.
func contractBody(key, value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	return json.Marshal(map[string]string{key: value})
}

// Heartbeat reports per product line availability.
func (h *Huobi) Heartbeat(ctx context.Context) (*Heartbeat, error) {
	var resp HeartbeatResponse
	err := h.SendHTTPRequest(ctx, http.MethodGet, huobiHeartbeat, nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// LinearGetContractInfo returns USDT-margined swap contract definitions.
func (h *Huobi) LinearGetContractInfo(ctx context.Context) ([]ContractInfo, error) {
	var resp ContractInfoResponse
	return resp.Data, h.SendHTTPRequest(ctx, http.MethodGet, huobiLinearContractInfo, nil, &resp)
}

// LinearGetCandles returns USDT-margined swap klines between two times,
// sent in unix seconds. Period defaults to one minute.
func (h *Huobi) LinearGetCandles(ctx context.Context, contractCode, period string, start, end time.Time) ([]Candle, error) {
	params := candleParams("contract_code", contractCode, period)
	params.Set("from", strconv.FormatInt(start.Unix(), 10))
	params.Set("to", strconv.FormatInt(end.Unix(), 10))
	var resp CandlesResponse
	return resp.Data, h.SendHTTPRequest(ctx, http.MethodGet, huobiLinearCandles, params, &resp)
}

// LinearGetRecentCandles returns the most recent size USDT-margined swap
// klines.
func (h *Huobi) LinearGetRecentCandles(ctx context.Context, contractCode, period string, size int64) ([]Candle, error) {
	params := candleParams("contract_code", contractCode, period)
	params.Set("size", strconv.FormatInt(size, 10))
	var resp CandlesResponse
	return resp.Data, h.SendHTTPRequest(ctx, http.MethodGet, huobiLinearCandles, params, &resp)
}

// LinearGetIndex returns the USDT-margined swap index price.
func (h *Huobi) LinearGetIndex(ctx context.Context, contractCode string) ([]Index, error) {
	params := url.Values{}
	params.Set("contract_code", contractCode)
	var resp IndexResponse
	return resp.Data, h.SendHTTPRequest(ctx, http.MethodGet, huobiLinearIndex, params, &resp)
}

// LinearGetCrossAccountInfo returns cross margin account equity, optionally
// narrowed to one contract.
func (h *Huobi) LinearGetCrossAccountInfo(ctx context.Context, contractCode string) ([]MarginAccount, error) {
	body, err := contractBody("contract_code", contractCode)
	if err != nil {
		return nil, err
	}
	var resp MarginAccountsResponse
	return resp.Data, h.SendAuthHTTPRequest(ctx, http.MethodPost, huobiLinearCrossAccountInfo, nil, body, &resp)
}

// LinearGetCrossPositions returns cross margin positions, optionally
// narrowed to one contract.
func (h *Huobi) LinearGetCrossPositions(ctx context.Context, contractCode string) ([]Position, error) {
	body, err := contractBody("contract_code", contractCode)
	if err != nil {
		return nil, err
	}
	var resp PositionsResponse
	return resp.Data, h.SendAuthHTTPRequest(ctx, http.MethodPost, huobiLinearCrossPositions, nil, body, &resp)
}
