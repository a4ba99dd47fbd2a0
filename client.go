package domaincheck

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/optimode/domaincheck/internal/parse"
	"github.com/optimode/domaincheck/internal/wire"
)

// Client performs domain reputation lookups. Create one with New.
// A Client holds no mutable state and is safe for concurrent use.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	err        error // configuration error, returned on every call
}

// New creates a Client that authenticates with apiKey. The key is sent
// verbatim in the Authorization header, so any scheme prefix the service
// expects must already be part of it. Optionally overrides the default
// Options. No network activity happens here.
func New(apiKey string, opts ...Options) *Client {
	o := defaultOptions()
	if len(opts) > 0 {
		if opts[0].Endpoint != "" {
			o.Endpoint = opts[0].Endpoint
		}
		if opts[0].HTTPClient != nil {
			o.HTTPClient = opts[0].HTTPClient
		}
	}

	c := &Client{
		apiKey:     apiKey,
		endpoint:   o.Endpoint,
		httpClient: o.HTTPClient,
	}
	if !validEndpoint(o.Endpoint) {
		c.err = ErrInvalidEndpoint
	}
	return c
}

// CheckDomain looks up the reputation of domain with exactly one POST
// request. The domain is sent as given, without trimming or validation.
//
// On success every field of the Result is populated from the response.
// Otherwise the Result is zero and the error is an *Error whose Kind tells
// transport, status and decode failures apart. Nothing is retried.
func (c *Client) CheckDomain(ctx context.Context, domain string) (Result, error) {
	if c.err != nil {
		return Result{}, c.err
	}

	payload, err := wire.EncodeRequest(domain)
	if err != nil {
		return Result{}, &Error{Kind: KindTransport, Domain: domain, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{}, &Error{Kind: KindTransport, Domain: domain, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, &Error{Kind: KindTransport, Domain: domain, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &Error{Kind: KindTransport, Domain: domain, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, &Error{Kind: KindStatus, Domain: domain, StatusCode: resp.StatusCode, Body: string(body)}
	}

	res, err := wire.DecodeResponse(body)
	if err != nil {
		return Result{}, &Error{Kind: KindDecode, Domain: domain, Err: err}
	}
	return res, nil
}

// CheckEmail extracts the domain of email and looks it up with CheckDomain.
// Internationalized domains are sent in lowercased Punycode form.
// An address without a usable domain returns ErrInvalidEmail and makes no request.
func (c *Client) CheckEmail(ctx context.Context, email string) (Result, error) {
	if c.err != nil {
		return Result{}, c.err
	}
	addr, err := parse.Email(email)
	if err != nil {
		return Result{}, fmt.Errorf("%w %q: %w", ErrInvalidEmail, email, err)
	}
	return c.CheckDomain(ctx, addr.Domain)
}
