// Package transport maintains a process wide cache of HTTP clients keyed by
// exchange base URL, so connections are reused across every client pointed at
// the same venue and proxy administration applies to all of them at once.
package transport

import (
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	defaultDialTimeout     = 30 * time.Second
	defaultKeepAlive       = 30 * time.Second
	defaultIdleConnTimeout = 90 * time.Second
	defaultTLSTimeout      = 10 * time.Second
	defaultMaxIdleConns    = 100
)

var (
	errEmptyProxyURL    = errors.New("no proxy URL supplied")
	errEmptyBaseURL     = errors.New("base URL unset")
	errInvalidTransport = errors.New("client transport not a *http.Transport")

	defaultPool     *Pool
	defaultPoolOnce sync.Once
)

// Pool is a concurrency safe cache of HTTP clients keyed by base URL
type Pool struct {
	clients map[string]*http.Client
	proxy   *url.URL
	mu      sync.RWMutex
}

// NewPool returns an empty client pool
func NewPool() *Pool {
	return &Pool{clients: make(map[string]*http.Client)}
}

// Default returns the process wide pool
func Default() *Pool {
	defaultPoolOnce.Do(func() { defaultPool = NewPool() })
	return defaultPool
}

// GetClient returns the cached client for the supplied base URL, creating it
// with the pool's current proxy on first use
func (p *Pool) GetClient(baseURL string) (*http.Client, error) {
	key := normalizeKey(baseURL)
	if key == "" {
		return nil, errEmptyBaseURL
	}

	p.mu.RLock()
	c, ok := p.clients[key]
	p.mu.RUnlock()
	if ok {
		return c, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok = p.clients[key]; ok {
		return c, nil
	}
	c = &http.Client{Transport: newHTTPTransport(p.proxy)}
	p.clients[key] = c
	return c, nil
}

// SetProxy points every cached client, and any created afterwards, at the
// supplied proxy. A nil URL reverts to environment proxy resolution.
func (p *Pool) SetProxy(proxy *url.URL) error {
	if proxy != nil && proxy.String() == "" {
		return errEmptyProxyURL
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.clients {
		t, ok := c.Transport.(*http.Transport)
		if !ok {
			return errInvalidTransport
		}
		t.Proxy = proxyFunc(proxy)
	}
	p.proxy = proxy
	return nil
}

// Proxy returns the proxy currently applied to the pool
func (p *Pool) Proxy() *url.URL {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.proxy
}

func proxyFunc(proxy *url.URL) func(*http.Request) (*url.URL, error) {
	if proxy == nil {
		return http.ProxyFromEnvironment
	}
	return http.ProxyURL(proxy)
}

func newHTTPTransport(proxy *url.URL) *http.Transport {
	return &http.Transport{
		Proxy: proxyFunc(proxy),
		DialContext: (&net.Dialer{
			Timeout:   defaultDialTimeout,
			KeepAlive: defaultKeepAlive,
		}).DialContext,
		MaxIdleConns:        defaultMaxIdleConns,
		IdleConnTimeout:     defaultIdleConnTimeout,
		TLSHandshakeTimeout: defaultTLSTimeout,
	}
}

func normalizeKey(baseURL string) string {
	return strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
}
