// Package http implements the HTTP transport for the Trello API client:
// request execution, retries, credential injection, and debug logging.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fourleaf-io/trello-client/internal/auth"
	"github.com/fourleaf-io/trello-client/internal/constants"
	"github.com/fourleaf-io/trello-client/pkg/trello"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client is the HTTP transport. It owns retries, timeouts, credential
// injection, and the conversion of error responses into *trello.APIError.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	credentials  auth.Source
	interceptors *trello.InterceptorChain
	logger       Logger
	userAgent    string
	debug        bool
	fatalErrors  bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each underlying HTTP attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig tunes retry behavior for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithFatalErrors controls whether 4xx/5xx responses are converted into
// *trello.APIError. When disabled the raw response passes through unchanged.
func WithFatalErrors(fatal bool) Option {
	return func(c *Client) {
		c.fatalErrors = fatal
	}
}

// WithInterceptors installs additional request/response interceptors.
func WithInterceptors(chain *trello.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithHTTPClient replaces the underlying net/http client.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// NewClient creates a new HTTP transport for baseURL. Credentials may be nil,
// in which case no query parameters are injected.
func NewClient(baseURL string, credentials auth.Source, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	retryClient.CheckRetry = checkRetry

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		credentials:  credentials,
		interceptors: trello.NewInterceptorChain(),
		userAgent:    constants.DefaultIdentifier,
		fatalErrors:  true,
	}

	for _, opt := range opts {
		opt(client)
	}

	// Every request carries a JSON content type, even when callers supply
	// their own chain.
	client.interceptors.AddRequestInterceptor(trello.ContentTypeInterceptor())

	return client
}

// checkRetry retries on connection errors and 5xx like the default policy,
// and additionally on 429 so rate-limited requests back off and resume.
func checkRetry(ctx context.Context, resp *nethttp.Response, err error) (bool, error) {
	if resp != nil && resp.StatusCode == nethttp.StatusTooManyRequests {
		return true, nil
	}

	//nolint:wrapcheck // retry policy errors are surfaced by retryablehttp
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// Do executes a request and returns the response. When fatal errors are
// enabled, a 4xx/5xx status returns both the response and a *trello.APIError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	intercepted, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	requestURL := c.baseURL + intercepted.Path
	if encoded := intercepted.Query.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	var rawBody interface{}
	if intercepted.Body != nil {
		rawBody = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, intercepted.Method, requestURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, values := range intercepted.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": intercepted.Method,
			"url":    requestURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      intercepted.Method,
			"url":         requestURL,
			"status_code": response.StatusCode,
		})
	}

	var apiErr error
	if c.fatalErrors && response.StatusCode >= nethttp.StatusBadRequest {
		apiErr = trello.ParseAPIError(response.StatusCode, body, requestURL)
	}

	err = c.runResponseInterceptors(ctx, intercepted, response, apiErr)
	if err != nil {
		return response, err
	}

	return response, apiErr
}

// buildRequest assembles the interceptable request: default headers,
// credential query parameters, JSON body, and the interceptor chain.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*trello.Request, error) {
	var (
		body []byte
		err  error
	)

	if req.Body != nil {
		body, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	intercepted := &trello.Request{
		Method:  strings.ToUpper(req.Method),
		Path:    req.Path,
		Headers: make(nethttp.Header),
		Query:   cloneValues(req.Query),
		Body:    body,
	}

	intercepted.Headers.Set("Accept", "application/json")
	intercepted.Headers.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	// Reserved credential parameters are injected last and never overwrite
	// caller-supplied values.
	if c.credentials != nil {
		for key, values := range c.credentials.Values() {
			if !intercepted.Query.Has(key) {
				intercepted.Query[key] = values
			}
		}
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	return intercepted, nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, req *trello.Request, resp *Response, apiErr error) error {
	intercepted := &trello.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      apiErr,
	}

	return c.interceptors.ExecuteResponseInterceptors(ctx, req, intercepted)
}

func cloneValues(values url.Values) url.Values {
	cloned := make(url.Values, len(values))
	for key, vs := range values {
		cloned[key] = append([]string(nil), vs...)
	}

	return cloned
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}

// Head performs a HEAD request.
func (c *Client) Head(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodHead, Path: path, Query: query})
}

// Options performs an OPTIONS request.
func (c *Client) Options(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodOptions, Path: path})
}
