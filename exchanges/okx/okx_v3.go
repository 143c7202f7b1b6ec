package okx

import (
	"context"
	"net/http"

	exchange "github.com/takerfee/cclib/exchanges"
	"github.com/takerfee/cclib/exchanges/request"
)

const (
	// Authenticated endpoints
	okxV3Position = "/api/futures/v3/position"
	okxV3Accounts = "/api/futures/v3/accounts"
)

// OkxV3 is the client for the legacy v3 futures API. Signing matches v5;
// only failure reporting differs.
type OkxV3 struct {
	*exchange.Base
}

// NewV3 returns a legacy v3 futures API client.
func NewV3(opts *exchange.Options) (*OkxV3, error) {
	b, err := exchange.NewBase("okxv3", okxAPIURL, &signer{}, &classifierV3{}, opts)
	if err != nil {
		return nil, err
	}
	return &OkxV3{Base: b}, nil
}

// classifierV3 trusts the status line. The v3 surface never hides failures
// behind HTTP 200.
type classifierV3 struct{}

func (c *classifierV3) Classify(resp *request.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	code, ok := exchange.FieldString(resp.Body, "code")
	if !ok {
		code = exchange.UnknownCode
	}
	msg := exchange.FirstString(resp.Body, "error_message")
	if msg == "" {
		msg = "unknown error"
	}
	return exchange.NewError(exchange.ErrExchange, code, msg, resp.StatusCode, resp.Body)
}

// V3GetPositions returns futures positions, one inner slice per contract.
func (o *OkxV3) V3GetPositions(ctx context.Context) ([][]V3Position, error) {
	var resp V3PositionsResponse
	return resp.Holding, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxV3Position, nil, nil, &resp)
}

// V3GetAccounts returns futures account equity keyed by currency.
func (o *OkxV3) V3GetAccounts(ctx context.Context) (map[string]V3Account, error) {
	var resp V3AccountsResponse
	return resp.Info, o.SendAuthHTTPRequest(ctx, http.MethodGet, okxV3Accounts, nil, nil, &resp)
}
