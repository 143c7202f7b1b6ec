package transport

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClient(t *testing.T) {
	t.Parallel()
	p := NewPool()

	_, err := p.GetClient("")
	assert.ErrorIs(t, err, errEmptyBaseURL)

	a, err := p.GetClient("https://api.test.com")
	require.NoError(t, err)
	b, err := p.GetClient("https://api.test.com/")
	require.NoError(t, err)
	assert.Same(t, a, b, "trailing slash should hit the same cache entry")

	c, err := p.GetClient("https://api.other.com")
	require.NoError(t, err)
	assert.NotSame(t, a, c)
}

func TestSetProxy(t *testing.T) {
	t.Parallel()
	p := NewPool()

	existing, err := p.GetClient("https://api.test.com")
	require.NoError(t, err)

	assert.ErrorIs(t, p.SetProxy(&url.URL{}), errEmptyProxyURL)

	proxy, err := url.Parse("http://127.0.0.1:8888")
	require.NoError(t, err)
	require.NoError(t, p.SetProxy(proxy))
	assert.Equal(t, proxy, p.Proxy())

	// already cached client picks up the proxy
	tr, ok := existing.Transport.(*http.Transport)
	require.True(t, ok)
	got, err := tr.Proxy(&http.Request{URL: &url.URL{Scheme: "https", Host: "api.test.com"}})
	require.NoError(t, err)
	assert.Equal(t, proxy, got)

	// clients created afterwards pick it up as well
	created, err := p.GetClient("https://api.late.com")
	require.NoError(t, err)
	tr, ok = created.Transport.(*http.Transport)
	require.True(t, ok)
	got, err = tr.Proxy(&http.Request{URL: &url.URL{Scheme: "https", Host: "api.late.com"}})
	require.NoError(t, err)
	assert.Equal(t, proxy, got)

	// nil reverts to environment resolution
	require.NoError(t, p.SetProxy(nil))
	assert.Nil(t, p.Proxy())
}

func TestDefaultPool(t *testing.T) {
	t.Parallel()
	assert.Same(t, Default(), Default())
}
