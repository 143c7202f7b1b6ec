// Package exchange provides the shared client core every venue package
// composes: a request builder, a signing seam, response classification and a
// single error taxonomy.
package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/buger/jsonparser"

	"github.com/takerfee/cclib/exchanges/account"
	"github.com/takerfee/cclib/exchanges/request"
	"github.com/takerfee/cclib/exchanges/transport"
	"github.com/takerfee/cclib/log"
)

// DefaultUserAgent is stamped on outbound requests unless overridden
const DefaultUserAgent = "cclib/1.0"

var (
	// ErrAuthenticatedRequestNotSupported alerts when a venue client without
	// a signing strategy receives an authenticated call
	ErrAuthenticatedRequestNotSupported = errors.New("authenticated requests not supported by this venue")

	errNameUnset       = errors.New("exchange name unset")
	errClassifierUnset = errors.New("response classifier unset")
	errBaseURLUnset    = errors.New("base URL unset")
)

var defaultAllowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// Options adjusts construction of a venue client
type Options struct {
	BaseURL       string
	Credentials   *account.Credentials
	Verbose       bool
	HTTPDebugging bool
	Pool          *transport.Pool
	Timeout       time.Duration
	UserAgent     string
}

// Base is the shared client every venue embeds. One signing strategy and one
// classification strategy are composed per instance.
type Base struct {
	Name           string
	Verbose        bool
	HTTPDebugging  bool
	BaseURL        string
	Requester      *request.Requester
	Signer         Signer
	Classifier     Classifier
	AllowedMethods []string

	credsMu sync.RWMutex
	creds   account.Credentials
}

// NewBase assembles the shared client for a venue. The transport pool hands
// out the HTTP client so venues sharing a base URL share connections and
// proxy administration.
func NewBase(name, defaultBaseURL string, signer Signer, classifier Classifier, opts *Options) (*Base, error) {
	if name == "" {
		return nil, errNameUnset
	}
	if classifier == nil {
		return nil, fmt.Errorf("%w for %s", errClassifierUnset, name)
	}
	if opts == nil {
		opts = &Options{}
	}

	baseURL := defaultBaseURL
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}
	if baseURL == "" {
		return nil, fmt.Errorf("%w for %s", errBaseURLUnset, name)
	}

	pool := opts.Pool
	if pool == nil {
		pool = transport.Default()
	}
	client, err := pool.GetClient(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	reqOpts := []request.RequesterOption{request.WithUserAgent(ua)}
	if opts.Timeout > 0 {
		reqOpts = append(reqOpts, request.WithTimeout(opts.Timeout))
	}
	requester, err := request.New(name, client, reqOpts...)
	if err != nil {
		return nil, err
	}

	b := &Base{
		Name:          name,
		Verbose:       opts.Verbose,
		HTTPDebugging: opts.HTTPDebugging,
		BaseURL:       strings.TrimSuffix(baseURL, "/"),
		Requester:     requester,
		Signer:        signer,
		Classifier:    classifier,
	}
	if opts.Credentials != nil {
		b.SetCredentials(opts.Credentials)
	}
	return b, nil
}

// SetCredentials stores a copy of the supplied credentials on the client
func (b *Base) SetCredentials(c *account.Credentials) {
	b.credsMu.Lock()
	if c != nil {
		b.creds = *c
	} else {
		b.creds = account.Credentials{}
	}
	b.credsMu.Unlock()
}

// GetCredentials returns credentials for signing. Context deployed
// credentials take precedence over the client's own; a context sub account
// override rewrites the sub account either way.
func (b *Base) GetCredentials(ctx context.Context) (*account.Credentials, error) {
	creds, ok := account.CredentialsFromContext(ctx)
	if !ok {
		b.credsMu.RLock()
		cpy := b.creds
		b.credsMu.RUnlock()
		creds = &cpy
	}
	if sub, ok := account.SubAccountOverrideFromContext(ctx); ok {
		creds.SubAccount = sub
	}
	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name, err)
	}
	return creds, nil
}

// SendHTTPRequest dispatches a public call and decodes the response into
// result when non-nil
func (b *Base) SendHTTPRequest(ctx context.Context, method, path string, params url.Values, result interface{}) error {
	return b.sendRequest(ctx, method, path, params, nil, result, false)
}

// SendAuthHTTPRequest signs and dispatches an authenticated call and decodes
// the response into result when non-nil
func (b *Base) SendAuthHTTPRequest(ctx context.Context, method, path string, params url.Values, body []byte, result interface{}) error {
	return b.sendRequest(ctx, method, path, params, body, result, true)
}

func (b *Base) sendRequest(ctx context.Context, method, path string, params url.Values, body []byte, result interface{}, auth bool) error {
	method = strings.ToUpper(method)
	if !b.methodAllowed(method) {
		return newLocalError(ErrInvalidMethod, "unsupported HTTP method: "+method)
	}

	endpoint, err := b.resolvePath(path)
	if err != nil {
		return fmt.Errorf("%s: %w", b.Name, err)
	}

	verbose := request.IsVerbose(ctx, b.Verbose)

	generate := func() (*request.Item, error) {
		item := &request.Item{
			Method:        method,
			Headers:       make(map[string]string),
			Body:          body,
			AuthRequest:   auth,
			Verbose:       verbose,
			HTTPDebugging: b.HTTPDebugging,
		}

		p := copyValues(params)
		rawQuery := p.Encode()

		if auth {
			if b.Signer == nil {
				return nil, fmt.Errorf("%s: %w", b.Name, ErrAuthenticatedRequestNotSupported)
			}
			creds, err := b.GetCredentials(ctx)
			if err != nil {
				return nil, err
			}
			sig, err := b.Signer.SignRequest(creds, &SignContext{
				Method: method,
				Host:   endpoint.Host,
				Path:   endpoint.Path,
				Params: p,
				Body:   body,
				Now:    time.Now(),
			})
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name, err)
			}
			rawQuery = sig.RawQuery
			for k, v := range sig.Headers {
				item.Headers[k] = v
			}
			if sig.Body != nil {
				item.Body = sig.Body
			}
			item.Signed = true
		}

		fullPath := endpoint.Scheme + "://" + endpoint.Host + endpoint.Path
		if rawQuery != "" {
			fullPath += "?" + rawQuery
		}
		item.Path = fullPath
		return item, nil
	}

	resp, err := b.Requester.SendPayload(ctx, generate)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			terr := classifyTransportError(err)
			if verbose {
				log.Errorf(log.ExchangeSys, "%s transport failure: %v", b.Name, terr)
			}
			return terr
		}
		return err
	}

	// Bodies that do not decode as JSON uniformly surface the parse error
	// kind regardless of HTTP status, retaining the raw payload.
	if _, _, _, jerr := jsonparser.Get(resp.Body); jerr != nil {
		return NewError(ErrParseJSON, "", jerr.Error(), resp.StatusCode, resp.Body)
	}

	if cerr := b.Classifier.Classify(resp); cerr != nil {
		if verbose {
			log.Errorf(log.ExchangeSys, "%s classified failure: %v", b.Name, cerr)
		}
		return cerr
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, result); err != nil {
		return NewError(ErrParseJSON, "", err.Error(), resp.StatusCode, resp.Body)
	}
	return nil
}

func (b *Base) methodAllowed(method string) bool {
	allowed := b.AllowedMethods
	if len(allowed) == 0 {
		allowed = defaultAllowedMethods
	}
	for i := range allowed {
		if allowed[i] == method {
			return true
		}
	}
	return false
}

func (b *Base) resolvePath(path string) (*url.URL, error) {
	full := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		if b.BaseURL == "" {
			return nil, errBaseURLUnset
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		full = b.BaseURL + path
	}
	return url.Parse(full)
}

// classifyTransportError maps dial, deadline and reset failures onto the
// network branch of the taxonomy
func classifyTransportError(err error) *Error {
	var kind error
	var netErr net.Error
	var opErr *net.OpError
	var dnsErr *net.DNSError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = ErrTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = ErrTimeout
	case errors.As(err, &opErr), errors.As(err, &dnsErr):
		kind = ErrConnection
	default:
		kind = ErrNetwork
	}
	return newLocalError(kind, err.Error())
}

func copyValues(params url.Values) url.Values {
	cpy := make(url.Values, len(params))
	for k, vs := range params {
		for i := range vs {
			cpy.Add(k, vs[i])
		}
	}
	return cpy
}
