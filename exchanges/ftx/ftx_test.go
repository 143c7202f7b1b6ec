package ftx

import (
	"context"
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

func testClient(t *testing.T, srvURL string) *FTX {
	t.Helper()
	f, err := New(&exchange.Options{
		BaseURL:     srvURL,
		Pool:        transport.NewPool(),
		Credentials: &account.Credentials{Key: "fKey", Secret: "fSecret"},
	})
	require.NoError(t, err)
	return f
}

func TestSignRequest(t *testing.T) {
	t.Parallel()
	creds := &account.Credentials{Key: "fKey", Secret: "fSecret"}
	s := &signer{}

	sig, err := s.SignRequest(creds, &exchange.SignContext{
		Method: http.MethodGet,
		Path:   ftxMarkets,
		Params: url.Values{},
		Now:    signTime,
	})
	require.NoError(t, err)
	assert.Empty(t, sig.RawQuery)
	assert.Equal(t, "fKey", sig.Headers["FTX-KEY"])
	assert.Equal(t, "1700000000000", sig.Headers["FTX-TS"])
	assert.Equal(t,
		"32943e98c9d49fa7e3f40e2133c0cbc518a7b1120524ceaa5026f92319f26125",
		sig.Headers["FTX-SIGN"])
	_, ok := sig.Headers["FTX-SUBACCOUNT"]
	assert.False(t, ok, "no sub account header without a sub account credential")

	params := url.Values{}
	params.Set("resolution", "60")
	sig, err = s.SignRequest(creds, &exchange.SignContext{
		Method: http.MethodGet,
		Path:   "/api/markets/BTC-PERP/candles",
		Params: params,
		Now:    signTime,
	})
	require.NoError(t, err)
	assert.Equal(t, "resolution=60", sig.RawQuery)
	assert.Equal(t,
		"f8fefd5363a486ecc0f4fa1e6878b27c3f3cd9fe5a28d3804f88f18db2ba5015",
		sig.Headers["FTX-SIGN"], "encoded query joins the signed path")

	sig, err = s.SignRequest(creds, &exchange.SignContext{
		Method: http.MethodPost,
		Path:   "/api/orders",
		Params: url.Values{},
		Body:   []byte(`{"market":"BTC-PERP","side":"buy"}`),
		Now:    signTime,
	})
	require.NoError(t, err)
	assert.Equal(t,
		"29aa697bc30f84ee23077b75ef259ba5762bbe52937705a65d30b0f8922a3ad6",
		sig.Headers["FTX-SIGN"], "body bytes join the signed payload")
}

func TestSignRequestSubAccount(t *testing.T) {
	t.Parallel()
	s := &signer{}
	sig, err := s.SignRequest(
		&account.Credentials{Key: "fKey", Secret: "fSecret", SubAccount: "sub1"},
		&exchange.SignContext{
			Method: http.MethodGet,
			Path:   ftxAccount,
			Params: url.Values{},
			Now:    signTime,
		})
	require.NoError(t, err)
	assert.Equal(t, "sub1", sig.Headers["FTX-SUBACCOUNT"])
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
		{"http 200", 200, `{"success":true,"result":[]}`, nil},
		{"200 ignores success flag", 200, `{"success":false,"error":"ignored"}`, nil},
		{"success true rescues", 400, `{"success":true,"result":[]}`, nil},
		{"rate limited", 429, `{"success":false,"error":"Do not send more than 2 requests per 200ms"}`, exchange.ErrRateLimit},
		{"venue error", 400, `{"success":false,"error":"No such market"}`, exchange.ErrExchange},
		{"array body", 500, `[1,2]`, exchange.ErrExchange},
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
	err := c.Classify(&request.Response{StatusCode: 400, Body: []byte(`{"success":false,"error":"No such market"}`)})
	require.ErrorAs(t, err, &e)
	assert.Equal(t, exchange.UnknownCode, e.Code)
	assert.Equal(t, "No such market", e.Message)
	assert.Equal(t, 400, e.StatusCode)
}

func TestGetMarkets(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/markets", r.URL.Path)
		fmt.Fprint(w, `{"success":true,"result":[{"name":"BTC-PERP","baseCurrency":null,"quoteCurrency":null,"underlying":"BTC","type":"future","enabled":true,"ask":3949.25,"bid":3949,"last":3949,"priceIncrement":0.25,"sizeIncrement":0.0001,"volumeUsd24h":28914.76}]}`)
	}))
	defer srv.Close()

	f := testClient(t, srv.URL)
	markets, err := f.GetMarkets(context.Background())
	require.NoError(t, err)
	require.Len(t, markets, 1)
	assert.Equal(t, "BTC-PERP", markets[0].Name)
	assert.Empty(t, markets[0].BaseCurrency, "null decodes to the empty string")
	assert.Equal(t, 3949.25, markets[0].Ask)
}

func TestGetOrderbook(t *testing.T) {
	t.Parallel()
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/markets/BTC-PERP/orderbook", r.URL.Path)
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"success":true,"result":{"asks":[[4114.25,6.263]],"bids":[[4112.25,49.29]]}}`)
	}))
	defer srv.Close()

	f := testClient(t, srv.URL)
	book, err := f.GetOrderbook(context.Background(), "BTC-PERP", 0)
	require.NoError(t, err)

	assert.Equal(t, "20", gotQuery.Get("depth"))
	require.Len(t, book.Asks, 1)
	assert.Equal(t, 4114.25, book.Asks[0][0])
	assert.Equal(t, 6.263, book.Asks[0][1])
	require.Len(t, book.Bids, 1)
	assert.Equal(t, 4112.25, book.Bids[0][0])
}

func TestGetCandles(t *testing.T) {
	t.Parallel()
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/markets/BTC-PERP/candles", r.URL.Path)
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"success":true,"result":[{"startTime":"2023-11-14T22:13:20+00:00","time":1700000000000.0,"open":37000.25,"high":37050,"low":36980.5,"close":37021,"volume":464193.95725}]}`)
	}))
	defer srv.Close()

	f := testClient(t, srv.URL)
	start := time.Unix(1700000000, 0)
	candles, err := f.GetCandles(context.Background(), "BTC-PERP", 0, start, start.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, "60", gotQuery.Get("resolution"))
	assert.Equal(t, "1700000000", gotQuery.Get("start_time"), "window travels in seconds")
	assert.Equal(t, "1700003600", gotQuery.Get("end_time"))

	require.Len(t, candles, 1)
	assert.Equal(t, int64(1700000000000), candles[0].Time.Time().UnixMilli())
	assert.Equal(t, 37021.0, candles[0].Close)
}

func TestGetBalances(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wallet/balances", r.URL.Path)
		assert.Equal(t, "fKey", r.Header.Get("FTX-KEY"))
		assert.NotEmpty(t, r.Header.Get("FTX-SIGN"))
		assert.NotEmpty(t, r.Header.Get("FTX-TS"))
		assert.Empty(t, r.Header.Get("FTX-SUBACCOUNT"))
		fmt.Fprint(w, `{"success":true,"result":[{"coin":"USDT","free":2320.2,"total":2340.2,"spotBorrow":0,"availableWithoutBorrow":2320.2,"usdValue":2340.2}]}`)
	}))
	defer srv.Close()

	f := testClient(t, srv.URL)
	balances, err := f.GetBalances(context.Background())
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "USDT", balances[0].Coin)
	assert.Equal(t, 2320.2, balances[0].Free)
}

func TestGetAccountSubAccountHeader(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "main", r.Header.Get("FTX-SUBACCOUNT"))
		fmt.Fprint(w, `{"success":true,"result":{"username":"user@example.com","collateral":3568181.02,"freeCollateral":1786071.45,"leverage":10,"liquidating":false,"positions":[{"future":"ETH-PERP","side":"sell","size":0.23,"netSize":-0.23,"entryPrice":138.22}]}}`)
	}))
	defer srv.Close()

	f := testClient(t, srv.URL)
	ctx := account.DeploySubAccountOverrideToContext(context.Background(), "main")
	acct, err := f.GetAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", acct.Username)
	assert.Equal(t, 10.0, acct.Leverage)
	require.Len(t, acct.Positions, 1)
	assert.Equal(t, "ETH-PERP", acct.Positions[0].Future)
}

func TestErrorSurfacesThroughRequest(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"success":false,"error":"No such market: FOO-PERP"}`)
	}))
	defer srv.Close()

	f := testClient(t, srv.URL)
	_, err := f.GetMarket(context.Background(), "FOO-PERP")
	require.Error(t, err)
	assert.ErrorIs(t, err, exchange.ErrExchange)
	assert.Equal(t, "No such market: FOO-PERP. status code:400. error code:-1", err.Error())
}
