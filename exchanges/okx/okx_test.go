package okx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exchange "github.com/takerfee/cclib/exchanges"
	"github.com/takerfee/cclib/exchanges/account"
	"github.com/takerfee/cclib/exchanges/request"
	"github.com/takerfee/cclib/exchanges/transport"
)

var signTime = time.Unix(1700000000, 0)

func testClient(t *testing.T, srvURL string) *Okx {
	t.Helper()
	o, err := New(&exchange.Options{
		BaseURL:     srvURL,
		Pool:        transport.NewPool(),
		Credentials: &account.Credentials{Key: "oKey", Secret: "oSecret", Passphrase: "oPass"},
	})
	require.NoError(t, err)
	return o
}

func testClientV3(t *testing.T, srvURL string) *OkxV3 {
	t.Helper()
	o, err := NewV3(&exchange.Options{
		BaseURL:     srvURL,
		Pool:        transport.NewPool(),
		Credentials: &account.Credentials{Key: "oKey", Secret: "oSecret", Passphrase: "oPass"},
	})
	require.NoError(t, err)
	return o
}

func TestSignRequest(t *testing.T) {
	t.Parallel()
	creds := &account.Credentials{Key: "oKey", Secret: "oSecret", Passphrase: "oPass"}
	s := &signer{}

	params := url.Values{}
	params.Set("ccy", "BTC")
	sig, err := s.SignRequest(creds, &exchange.SignContext{
		Method: http.MethodGet,
		Path:   okxBalance,
		Params: params,
		Now:    signTime,
	})
	require.NoError(t, err)
	assert.Equal(t, "ccy=BTC", sig.RawQuery)
	assert.Equal(t, "application/json", sig.Headers["Content-Type"])
	assert.Equal(t, "oKey", sig.Headers["OK-ACCESS-KEY"])
	assert.Equal(t, "2023-11-14T22:13:20Z", sig.Headers["OK-ACCESS-TIMESTAMP"])
	assert.Equal(t, "oPass", sig.Headers["OK-ACCESS-PASSPHRASE"])
	assert.Equal(t,
		"vulJmvMMh0BHHGpT4bxM/AyTY1JVn/dOc2sFbl+VBn0=",
		sig.Headers["OK-ACCESS-SIGN"], "query must be signed in encoded form")

	body := []byte(`{"instId":"BTC-USDT","ordType":"market","sz":"1","tdMode":"cash"}`)
	sig, err = s.SignRequest(creds, &exchange.SignContext{
		Method: http.MethodPost,
		Path:   okxPlaceOrder,
		Params: url.Values{},
		Body:   body,
		Now:    signTime,
	})
	require.NoError(t, err)
	assert.Empty(t, sig.RawQuery)
	assert.Equal(t,
		"RVLuPnWLEDWNFgM1wZlU3auo/davxkEqJ9YTBy/W6hg=",
		sig.Headers["OK-ACCESS-SIGN"], "body bytes join the signed payload")
	assert.Nil(t, sig.Body)
}

func TestClassify(t *testing.T) {
	t.Parallel()
	c := &classifier{}
	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"success", 200, `{"code":"0","msg":"","data":[]}`, nil},
		{"code zero rescues", 400, `{"code":"0","msg":""}`, nil},
		{"code outranks 200", 200, `{"code":"51000","msg":"Parameter instId error"}`, exchange.ErrExchange},
		{"maintenance", 200, `{"code":"50001","msg":"service temporarily unavailable"}`, exchange.ErrMaintenance},
		{"service timeout", 200, `{"code":"50002","msg":"json data format error"}`, exchange.ErrServiceTimeout},
		{"rate limit", 429, `{"code":"50011","msg":"Too Many Requests"}`, exchange.ErrRateLimit},
		{"msg only", 404, `{"msg":"Not Found"}`, exchange.ErrExchange},
		{"unknown format", 500, `{"foo":1}`, exchange.ErrExchange},
		{"array body", 200, `[1,2]`, exchange.ErrExchange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := c.Classify(&request.Response{StatusCode: tc.status, Body: []byte(tc.body)})
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}

	var e *exchange.Error
	err := c.Classify(&request.Response{StatusCode: 429, Body: []byte(`{"code":"50011","msg":"Too Many Requests"}`)})
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "50011", e.Code)
	assert.Equal(t, "Too Many Requests", e.Message)

	err = c.Classify(&request.Response{StatusCode: 404, Body: []byte(`{"msg":"Not Found"}`)})
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "404", e.Code, "http status backfills the code when the envelope has none")
}

func TestClassifyV3(t *testing.T) {
	t.Parallel()
	c := &classifierV3{}

	assert.NoError(t, c.Classify(&request.Response{StatusCode: 200, Body: []byte(`{"result":true}`)}))

	err := c.Classify(&request.Response{StatusCode: 400, Body: []byte(`{"code":32008,"error_message":"order size too big"}`)})
	assert.ErrorIs(t, err, exchange.ErrExchange)
	var e *exchange.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "32008", e.Code)
	assert.Equal(t, "order size too big", e.Message)

	err = c.Classify(&request.Response{StatusCode: 500, Body: []byte(`{}`)})
	require.ErrorAs(t, err, &e)
	assert.Equal(t, exchange.UnknownCode, e.Code)
	assert.Equal(t, "unknown error", e.Message)
}

func TestGetCandles(t *testing.T) {
	t.Parallel()
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/market/candles", r.URL.Path)
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"code":"0","msg":"","data":[["1700000000000","37000.1","37050","36980.5","37021","8422410","22698348.04828491"]]}`)
	}))
	defer srv.Close()

	o := testClient(t, srv.URL)
	start := time.Unix(1700000000, 0)
	candles, err := o.GetCandles(context.Background(), "BTC-USDT", "", start, start.Add(time.Hour), 100)
	require.NoError(t, err)

	assert.Equal(t, "BTC-USDT", gotQuery.Get("instId"))
	assert.Equal(t, "1m", gotQuery.Get("bar"))
	assert.Equal(t, "1699999999999", gotQuery.Get("before"), "window widens one ms to keep the start bucket")
	assert.Equal(t, "1700003600001", gotQuery.Get("after"), "window widens one ms to keep the end bucket")
	assert.Equal(t, "100", gotQuery.Get("limit"))

	require.Len(t, candles, 1)
	assert.Equal(t, int64(1700000000000), candles[0].Ts.Time().UnixMilli())
	assert.Equal(t, 37021.0, candles[0].Close.Float64())
	assert.Equal(t, 22698348.04828491, candles[0].VolumeCcy.Float64())
}

func TestGetIndexCandles(t *testing.T) {
	t.Parallel()
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/market/index-candles", r.URL.Path)
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"code":"0","msg":"","data":[["1700000000000","37000.1","37050","36980.5","37021"]]}`)
	}))
	defer srv.Close()

	o := testClient(t, srv.URL)
	candles, err := o.GetIndexCandles(context.Background(), "BTC-USD", "", time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, "1m", gotQuery.Get("bar"))
	assert.Empty(t, gotQuery.Get("before"))
	assert.Empty(t, gotQuery.Get("after"))

	require.Len(t, candles, 1)
	assert.Equal(t, 37021.0, candles[0].Close.Float64())
}

func TestGetBalance(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v5/account/balance", r.URL.Path)
		assert.Equal(t, "BTC", r.URL.Query().Get("ccy"))
		assert.Equal(t, "oKey", r.Header.Get("OK-ACCESS-KEY"))
		assert.Equal(t, "oPass", r.Header.Get("OK-ACCESS-PASSPHRASE"))
		assert.NotEmpty(t, r.Header.Get("OK-ACCESS-SIGN"))
		_, perr := time.Parse("2006-01-02T15:04:05Z", r.Header.Get("OK-ACCESS-TIMESTAMP"))
		assert.NoError(t, perr, "timestamp header must be second precision UTC")
		fmt.Fprint(w, `{"code":"0","msg":"","data":[{"totalEq":"91.234","adjEq":"","isoEq":"0","uTime":"1700000000000","details":[{"ccy":"BTC","eq":"2.5","cashBal":"2.5","availBal":"2.1","frozenBal":"0.4","ordFrozen":"0.4","upl":"0","uTime":"1700000000000"}]}]}`)
	}))
	defer srv.Close()

	o := testClient(t, srv.URL)
	balances, err := o.GetBalance(context.Background(), "BTC")
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, 91.234, balances[0].TotalEq.Float64())
	require.Len(t, balances[0].Details, 1)
	assert.Equal(t, "BTC", balances[0].Details[0].Ccy)
	assert.Equal(t, 2.1, balances[0].Details[0].AvailBal.Float64())
}

func TestPlaceOrder(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v5/trade/order", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "BTC-USDT", got["instId"])
		assert.Equal(t, "cash", got["tdMode"])
		assert.Equal(t, "buy", got["side"])
		assert.Equal(t, "market", got["ordType"])
		assert.Equal(t, "1", got["sz"])
		cl, ok := got["clOrdId"].(string)
		require.True(t, ok, "a client order id should be assigned when none is supplied")
		assert.Len(t, cl, 32)
		fmt.Fprint(w, `{"code":"0","msg":"","data":[{"clOrdId":"","ordId":"312269865356374016","tag":"","sCode":"0","sMsg":""}]}`)
	}))
	defer srv.Close()

	o := testClient(t, srv.URL)
	req := &OrderRequest{
		InstID:    "BTC-USDT",
		TradeMode: "cash",
		Side:      "buy",
		OrderType: "market",
		Size:      "1",
	}
	results, err := o.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "312269865356374016", results[0].OrdID)
	assert.Equal(t, "0", results[0].SCode)
	assert.Empty(t, req.ClientID, "the caller request must not be mutated")
}

func TestPlaceOrderKeepsClientID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "mine123", got["clOrdId"])
		fmt.Fprint(w, `{"code":"0","msg":"","data":[{"clOrdId":"mine123","ordId":"1","sCode":"0","sMsg":""}]}`)
	}))
	defer srv.Close()

	o := testClient(t, srv.URL)
	results, err := o.PlaceOrder(context.Background(), &OrderRequest{
		InstID:    "BTC-USDT",
		TradeMode: "cash",
		Side:      "sell",
		OrderType: "limit",
		Size:      "2",
		Price:     "40000",
		ClientID:  "mine123",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "mine123", results[0].ClOrdID)
}

func TestPlaceOrderNil(t *testing.T) {
	t.Parallel()
	o := testClient(t, "https://example.invalid")
	_, err := o.PlaceOrder(context.Background(), nil)
	assert.ErrorIs(t, err, errNilOrderRequest)
}

func TestSetLeverage(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v5/account/set-leverage", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"instId":"BTC-USDT-SWAP","lever":"5","mgnMode":"isolated"}`, string(body))
		fmt.Fprint(w, `{"code":"0","msg":"","data":[{"instId":"BTC-USDT-SWAP","lever":"5","mgnMode":"isolated","posSide":"net"}]}`)
	}))
	defer srv.Close()

	o := testClient(t, srv.URL)
	levers, err := o.SetLeverage(context.Background(), "BTC-USDT-SWAP", 5, "isolated")
	require.NoError(t, err)
	require.Len(t, levers, 1)
	assert.Equal(t, int64(5), levers[0].Lever.Int64())
}

func TestErrorSurfacesThroughRequest(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":"51000","msg":"Parameter instId error"}`)
	}))
	defer srv.Close()

	o := testClient(t, srv.URL)
	_, err := o.GetTickers(context.Background(), "SPOT", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, exchange.ErrExchange)
	assert.Equal(t, "Parameter instId error. status code:200. error code:51000", err.Error())
}

func TestV3GetPositions(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/futures/v3/position", r.URL.Path)
		assert.Equal(t, "oKey", r.Header.Get("OK-ACCESS-KEY"))
		assert.NotEmpty(t, r.Header.Get("OK-ACCESS-SIGN"))
		fmt.Fprint(w, `{"result":true,"holding":[[{"instrument_id":"BTC-USD-210326","margin_mode":"crossed","long_qty":"3","long_avail_qty":"3","long_avg_cost":"57000.5","short_qty":"0","liquidation_price":"43120.7","leverage":"10","realised_pnl":"0.0001"}]]}`)
	}))
	defer srv.Close()

	o := testClientV3(t, srv.URL)
	holding, err := o.V3GetPositions(context.Background())
	require.NoError(t, err)
	require.Len(t, holding, 1)
	require.Len(t, holding[0], 1)
	assert.Equal(t, "BTC-USD-210326", holding[0][0].InstrumentID)
	assert.Equal(t, 3.0, holding[0][0].LongQty.Float64())
	assert.Equal(t, 43120.7, holding[0][0].LiquidationPrice.Float64())
}

func TestV3GetAccounts(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/futures/v3/accounts", r.URL.Path)
		fmt.Fprint(w, `{"info":{"btc":{"equity":"102.38162222","margin_mode":"crossed","margin":"3.773884998","total_avail_balance":"102.38172222","can_withdraw":"98.6077"}}}`)
	}))
	defer srv.Close()

	o := testClientV3(t, srv.URL)
	accounts, err := o.V3GetAccounts(context.Background())
	require.NoError(t, err)
	require.Contains(t, accounts, "btc")
	assert.Equal(t, 102.38162222, accounts["btc"].Equity.Float64())
	assert.Equal(t, "crossed", accounts["btc"].MarginMode)
}
