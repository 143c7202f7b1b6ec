package binance

import (
	"context"
	"errors"
	"fmt"
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

func testClient(t *testing.T, srvURL string) *Binance {
	t.Helper()
	b, err := New(&exchange.Options{
		BaseURL:     srvURL,
		Pool:        transport.NewPool(),
		Credentials: &account.Credentials{Key: "bKey", Secret: "bSecret"},
	})
	require.NoError(t, err)
	b.UFuturesAPIURL = srvURL
	b.CFuturesAPIURL = srvURL
	b.PMarginAPIURL = srvURL
	return b
}

func TestSignRequest(t *testing.T) {
	t.Parallel()
	creds := &account.Credentials{Key: "bKey", Secret: "bSecret"}
	s := &signer{}

	params := url.Values{}
	params.Set("symbol", "LTCBTC")
	params.Set("side", "BUY")
	sig, err := s.SignRequest(creds, &exchange.SignContext{
		Method: http.MethodPost,
		Path:   "/api/v3/order",
		Params: params,
		Now:    signTime,
	})
	require.NoError(t, err)
	assert.Equal(t,
		"recvWindow=5000&side=BUY&symbol=LTCBTC&timestamp=1700000000000"+
			"&signature=c9e29d495c938c2111d5ac82d4699a3cc00b0eee89d9930996dfc951a23a1c93",
		sig.RawQuery)
	assert.Equal(t, "bKey", sig.Headers["X-MBX-APIKEY"])

	params = url.Values{}
	params.Set("symbol", "LTCBTC")
	params.Set("side", "BUY")
	sig, err = s.SignRequest(creds, &exchange.SignContext{
		Method: http.MethodPost,
		Path:   "/fapi/v1/leverage",
		Params: params,
		Body:   []byte(`{"leverage":10}`),
		Now:    signTime,
	})
	require.NoError(t, err)
	assert.Equal(t,
		"recvWindow=5000&side=BUY&symbol=LTCBTC&timestamp=1700000000000"+
			"&signature=eafc5d3997a223049e472af4122aa356b52ebfef2f1a9cead3bce4065b4ae101",
		sig.RawQuery, "body bytes must extend the signed payload")
}

func TestSignRequestCallerOverrides(t *testing.T) {
	t.Parallel()
	s := &signer{}
	params := url.Values{}
	params.Set("recvWindow", "9000")
	params.Set("timestamp", "1690000000000")
	sig, err := s.SignRequest(&account.Credentials{Key: "k", Secret: "s"}, &exchange.SignContext{
		Method: http.MethodGet,
		Path:   "/api/v3/account",
		Params: params,
		Now:    signTime,
	})
	require.NoError(t, err)
	q, err := url.ParseQuery(sig.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "9000", q.Get("recvWindow"))
	assert.Equal(t, "1690000000000", q.Get("timestamp"))
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
		{"success", 200, `{"code":0}`, nil},
		{"near limit", 429, `{"code":-1003,"msg":"slow down"}`, exchange.ErrRateLimitWarning},
		{"banned", 418, `{"code":-1003,"msg":"banned"}`, exchange.ErrRateLimit},
		{"weight exceeded", 400, `{"code":-1003,"msg":"too many requests"}`, exchange.ErrRateLimit},
		{"backend timeout", 400, `{"code":-1007,"msg":"timeout"}`, exchange.ErrServiceTimeout},
		{"maintenance", 503, `{"code":-1016,"msg":"service shutting down"}`, exchange.ErrMaintenance},
		{"bad signature", 400, `{"code":-1022,"msg":"Signature for this request is not valid."}`, exchange.ErrAuthentication},
		{"bad argument", 400, `{"code":-1100,"msg":"Illegal characters"}`, exchange.ErrArguments},
		{"rejected key", 401, `{"code":-2014,"msg":"API-key format invalid."}`, exchange.ErrAuthentication},
		{"no such order", 400, `{"code":-2013,"msg":"Order does not exist."}`, exchange.ErrExchange},
		{"array body", 500, `[1,2,3]`, exchange.ErrExchange},
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

	err := c.Classify(&request.Response{StatusCode: 400, Body: []byte(`{"code":-2013,"msg":"Order does not exist."}`)})
	assert.NotErrorIs(t, err, exchange.ErrAuthentication)
	var e *exchange.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "-2013", e.Code)
	assert.Equal(t, 400, e.StatusCode)
	assert.Equal(t, "Order does not exist.", e.Message)
}

func TestGetTickerPrice(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/ticker/price", r.URL.Path)
		assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
		fmt.Fprint(w, `{"symbol":"BTCUSDT","price":"42000.5"}`)
	}))
	defer srv.Close()

	b := testClient(t, srv.URL)
	tp, err := b.GetTickerPrice(context.Background(), "BTCUSDT")
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", tp.Symbol)
	assert.Equal(t, 42000.5, tp.Price.Float64())
}

func TestGetCandles(t *testing.T) {
	t.Parallel()
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[[1700000000000,"1","2","0.5","1.5","100",1700000059999,"150",10,"60","90","0"]]`)
	}))
	defer srv.Close()

	b := testClient(t, srv.URL)
	start := time.Unix(1700000000, 0)
	end := start.Add(time.Hour)
	candles, err := b.GetCandles(context.Background(), "BTCUSDT", "", start, end, 0)
	require.NoError(t, err)

	assert.Equal(t, "1m", gotQuery.Get("interval"))
	assert.Equal(t, "1700000000000", gotQuery.Get("startTime"))
	assert.Equal(t, "61", gotQuery.Get("limit"), "limit should be inferred from the window")

	require.Len(t, candles, 1)
	c := candles[0]
	assert.Equal(t, int64(1700000000000), c.OpenTime.Time().UnixMilli())
	assert.Equal(t, 1.0, c.Open.Float64())
	assert.Equal(t, 2.0, c.High.Float64())
	assert.Equal(t, 100.0, c.Volume.Float64())
	assert.Equal(t, int64(10), c.TradeCount)
	assert.Equal(t, 90.0, c.TakerBuyQuoteVolume.Float64())
}

func TestCreateOrder(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v3/order", r.URL.Path)
		assert.Equal(t, "bKey", r.Header.Get("X-MBX-APIKEY"))
		q := r.URL.Query()
		assert.NotEmpty(t, q.Get("signature"))
		assert.NotEmpty(t, q.Get("newClientOrderId"), "client order id should be generated when absent")
		assert.Equal(t, "MARKET", q.Get("type"))
		fmt.Fprint(w, `{"symbol":"LTCBTC","orderId":28,"clientOrderId":"abc","transactTime":1700000000000,"status":"FILLED"}`)
	}))
	defer srv.Close()

	b := testClient(t, srv.URL)
	resp, err := b.CreateOrder(context.Background(), &OrderRequest{
		Symbol:    "LTCBTC",
		Side:      "BUY",
		OrderType: "MARKET",
		Quantity:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(28), resp.OrderID)
	assert.Equal(t, "FILLED", resp.Status)

	_, err = b.CreateOrder(context.Background(), nil)
	assert.ErrorIs(t, err, errNilOrderRequest)
}

func TestUServerTime(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fapi/v1/time", r.URL.Path)
		fmt.Fprint(w, `{"serverTime":1700000000000}`)
	}))
	defer srv.Close()

	b := testClient(t, srv.URL)
	tm, err := b.UServerTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), tm.UnixMilli())
}

func TestUSetLeverage(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/fapi/v1/leverage", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "BTCUSDT", q.Get("symbol"))
		assert.Equal(t, "10", q.Get("leverage"))
		assert.NotEmpty(t, q.Get("signature"))
		fmt.Fprint(w, `{"leverage":10,"maxNotionalValue":"1000000","symbol":"BTCUSDT"}`)
	}))
	defer srv.Close()

	b := testClient(t, srv.URL)
	resp, err := b.USetLeverage(context.Background(), "BTCUSDT", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.Leverage)
	assert.Equal(t, 1000000.0, resp.MaxNotionalValue.Float64())
}

func TestFuturesPositionRisk(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dapi/v1/positionRisk", r.URL.Path)
		assert.Equal(t, "BTC", r.URL.Query().Get("marginAsset"))
		fmt.Fprint(w, `[{"symbol":"BTCUSD_PERP","positionAmt":"5","entryPrice":"40000","markPrice":"41000.0","unRealizedProfit":"1.25","leverage":"20","marginType":"cross","positionSide":"BOTH","updateTime":1700000000000}]`)
	}))
	defer srv.Close()

	b := testClient(t, srv.URL)
	positions, err := b.FuturesPositionRisk(context.Background(), "BTC", "")
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "BTCUSD_PERP", positions[0].Symbol)
	assert.Equal(t, 5.0, positions[0].PositionAmt.Float64())
	assert.Equal(t, 20.0, positions[0].Leverage.Float64())
}

func TestPMCancelUMOrder(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/papi/v1/um/order", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "BTCUSDT", q.Get("symbol"))
		assert.Equal(t, "42", q.Get("orderId"))
		fmt.Fprint(w, `{"orderId":42,"symbol":"BTCUSDT","status":"CANCELED"}`)
	}))
	defer srv.Close()

	b := testClient(t, srv.URL)
	resp, err := b.PMCancelUMOrder(context.Background(), "BTCUSDT", 42, "")
	require.NoError(t, err)
	assert.Equal(t, "CANCELED", resp.Status)
}

func TestClassifiedErrorSurfacesThroughRequest(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"code":-1022,"msg":"Signature for this request is not valid."}`)
	}))
	defer srv.Close()

	b := testClient(t, srv.URL)
	_, err := b.GetAccountInfo(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, exchange.ErrAuthentication)
	assert.ErrorIs(t, err, exchange.ErrExchange)

	var e *exchange.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "-1022", e.Code)
	assert.Equal(t, "Signature for this request is not valid. status code:400. error code:-1022", e.Error())
}
