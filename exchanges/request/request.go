package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"

	"github.com/takerfee/cclib/log"
)

// New returns a new Requester
func New(name string, httpRequester *http.Client, opts ...RequesterOption) (*Requester, error) {
	if name == "" {
		return nil, errServiceNameUnset
	}
	if httpRequester == nil {
		return nil, errHTTPClientIsNil
	}
	r := &Requester{
		name:    name,
		client:  httpRequester,
		timeout: DefaultTimeout,
	}

	for _, o := range opts {
		o(r)
	}

	return r, nil
}

// SendPayload handles sending HTTP/HTTPS requests and returns the raw
// response for classification. Success or failure of the call at the venue
// level is for the caller to determine; only transport level problems error
// here.
func (r *Requester) SendPayload(ctx context.Context, newRequest Generate) (*Response, error) {
	if r == nil {
		return nil, ErrRequestSystemIsNil
	}

	if newRequest == nil {
		return nil, errRequestFunctionIsNil
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	p, err := newRequest()
	if err != nil {
		return nil, err
	}

	req, err := p.validateRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	if p.Verbose {
		log.Debugf(log.RequestSys, "%s request path: %s", r.name, p.Path)
		log.Debugf(log.RequestSys, "%s request type: %s", r.name, p.Method)
		if len(p.Body) != 0 {
			log.Debugf(log.RequestSys, "%s request body length: %d", r.name, len(p.Body))
		}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", r.name, err)
	}

	contents, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("%s failed to read response body: %w", r.name, err)
	}

	if p.HTTPDebugging {
		dump, dumpErr := httputil.DumpResponse(resp, false)
		if dumpErr != nil {
			log.Errorf(log.RequestSys, "DumpResponse invalid response: %v:", dumpErr)
		}
		log.Debugf(log.RequestSys, "DumpResponse Headers (%v):\n%s", p.Path, dump)
		log.Debugf(log.RequestSys, "DumpResponse Body (%v):\n%s", p.Path, string(contents))
	}

	if p.Verbose {
		log.Debugf(log.RequestSys, "HTTP status: %s, Code: %v", resp.Status, resp.StatusCode)
		if !p.HTTPDebugging {
			log.Debugf(log.RequestSys, "%s raw response: %s", r.name, string(contents))
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       contents,
		Headers:    resp.Header,
	}, nil
}

// validateRequest validates the requester item fields
func (i *Item) validateRequest(ctx context.Context, r *Requester) (*http.Request, error) {
	if i == nil {
		return nil, errRequestItemNil
	}

	if i.Path == "" {
		return nil, errInvalidPath
	}

	if i.AuthRequest && !i.Signed {
		return nil, ErrUnsignedAuthRequest
	}

	var body io.Reader
	if len(i.Body) != 0 {
		body = bytes.NewReader(i.Body)
	}

	req, err := http.NewRequestWithContext(ctx, i.Method, i.Path, body)
	if err != nil {
		return nil, err
	}

	if i.HTTPDebugging {
		// Headers are attached below so the dump stays free of credentials
		dump, _ := httputil.DumpRequestOut(req, true)
		log.Debugf(log.RequestSys, "DumpRequest:\n%s", dump)
	}

	for k, v := range i.Headers {
		req.Header.Add(k, v)
	}

	if r.userAgent != "" && req.Header.Get(userAgent) == "" {
		req.Header.Add(userAgent, r.userAgent)
	}

	return req, nil
}
