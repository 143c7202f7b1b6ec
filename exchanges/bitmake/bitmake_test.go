package bitmake

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
	"github.com/takerfee/cclib/exchanges/request"
	"github.com/takerfee/cclib/exchanges/transport"
)

func testClient(t *testing.T, srvURL string) *Bitmake {
	t.Helper()
	b, err := New(&exchange.Options{
		BaseURL: srvURL,
		Pool:    transport.NewPool(),
	})
	require.NoError(t, err)
	return b
}

func TestClassify(t *testing.T) {
	t.Parallel()
	c := &classifier{}

	assert.NoError(t, c.Classify(&request.Response{StatusCode: 200, Body: []byte(`[]`)}))

	err := c.Classify(&request.Response{StatusCode: 429, Body: []byte(`{"code":-1,"msg":"too many requests"}`)})
	assert.ErrorIs(t, err, exchange.ErrRateLimit)

	err = c.Classify(&request.Response{StatusCode: 500, Body: []byte(`{"code":10001,"msg":"internal error"}`)})
	assert.ErrorIs(t, err, exchange.ErrExchange)
	var e *exchange.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "10001", e.Code)
	assert.Equal(t, "internal error", e.Message)

	err = c.Classify(&request.Response{StatusCode: 502, Body: []byte(`{}`)})
	require.ErrorAs(t, err, &e)
	assert.Equal(t, exchange.UnknownCode, e.Code)
	assert.Equal(t, "unknown error", e.Message)
}

func TestAuthenticatedNotSupported(t *testing.T) {
	t.Parallel()
	b := testClient(t, "https://example.invalid")
	err := b.SendAuthHTTPRequest(context.Background(), http.MethodGet, "/t/v1/private", nil, nil, nil)
	assert.ErrorIs(t, err, exchange.ErrAuthenticatedRequestNotSupported)
}

func TestGetBaseInfo(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/t/v1/info", r.URL.Path)
		fmt.Fprint(w, `{"timezone":"UTC","serverTime":1700000000000}`)
	}))
	defer srv.Close()

	b := testClient(t, srv.URL)
	info, err := b.GetBaseInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "UTC", info.Timezone)
	assert.Equal(t, int64(1700000000), info.ServerTime.Time().Unix())
}

func TestGetSymbols(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/u/v1/base/symbols", r.URL.Path)
		fmt.Fprint(w, `[{"symbol":"BTCUSDT","symbolName":"BTCUSDT","baseToken":"BTC","quoteToken":"USDT","basePrecision":"0.000001","quotePrecision":"0.01","minTradeQuantity":"0.0001","minTradeAmount":"1"}]`)
	}))
	defer srv.Close()

	b := testClient(t, srv.URL)
	symbols, err := b.GetSymbols(context.Background())
	require.NoError(t, err)
	require.Len(t, symbols, 1)
	assert.Equal(t, "BTCUSDT", symbols[0].Symbol)
	assert.Equal(t, 0.01, symbols[0].QuotePrecision.Float64())
}

func TestGetIndex(t *testing.T) {
	t.Parallel()
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/t/v1/quote/index", r.URL.Path)
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"index":{"BTCUSDT":37000.5},"edp":{"BTCUSDT":36999.8}}`)
	}))
	defer srv.Close()

	b := testClient(t, srv.URL)
	index, err := b.GetIndex(context.Background(), "BTCUSDT")
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", gotQuery.Get("symbol"))
	assert.Equal(t, 37000.5, index.Index["BTCUSDT"].Float64())
	assert.Equal(t, 36999.8, index.EDP["BTCUSDT"].Float64())

	_, err = b.GetIndex(context.Background(), "")
	require.NoError(t, err)
	_, ok := gotQuery["symbol"]
	assert.False(t, ok, "symbol filter stays off the wire when empty")
}

func TestGetCandles(t *testing.T) {
	t.Parallel()
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/t/v1/quote/klines", r.URL.Path)
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[[1700000000000,"37000.1","37050","36980.5","37021","148976.11427785"]]`)
	}))
	defer srv.Close()

	b := testClient(t, srv.URL)
	candles, err := b.GetCandles(context.Background(), "BTCUSDT", "", time.Unix(1700003600, 0), 0)
	require.NoError(t, err)

	assert.Equal(t, "BTCUSDT", gotQuery.Get("symbol"))
	assert.Equal(t, "1m", gotQuery.Get("interval"))
	assert.Equal(t, "1700003600000", gotQuery.Get("to"), "end travels in milliseconds")
	assert.Equal(t, "100", gotQuery.Get("limit"))

	require.Len(t, candles, 1)
	assert.Equal(t, int64(1700000000000), candles[0].OpenTime.Time().UnixMilli())
	assert.Equal(t, 37021.0, candles[0].Close.Float64())
	assert.Equal(t, 148976.11427785, candles[0].Volume.Float64())
}
