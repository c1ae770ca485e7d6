package http

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/jamendo/internal/constants"
	"github.com/fivetwenty-io/jamendo/pkg/jamendo"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// Logger is the logging interface used by the HTTP client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the HTTP transport shared by all endpoint clients.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
	interceptors *jamendo.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// Request is a single API call relative to the base URL.
type Request struct {
	Method  string
	Path    string
	Params  url.Values
	Headers map[string]string
}

// Response is a received HTTP response. URL is the final URL after redirects.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	URL        string
	Attempts   int
}

type attemptsKey struct{}

// NewClient creates a new HTTP client for baseURL. Retries are disabled
// unless WithRetry(true) is passed.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = cleanhttp.DefaultPooledClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 0
	retryClient.Backoff = func(_, _ time.Duration, _ int, _ *http.Response) time.Duration {
		return 0
	}
	retryClient.CheckRetry = transportOnlyRetryPolicy
	retryClient.ErrorHandler = transportErrorHandler

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	retryClient.RequestLogHook = client.requestLogHook

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetry enables exactly one extra attempt after a transport failure.
func WithRetry(retry bool) Option {
	return func(c *Client) {
		if retry {
			c.httpClient.RetryMax = constants.TransportRetryMax
		} else {
			c.httpClient.RetryMax = 0
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the overall timeout of one attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithSkipTLSVerify disables certificate verification.
func WithSkipTLSVerify(skip bool) Option {
	return func(c *Client) {
		if !skip {
			return
		}

		transport, ok := c.httpClient.HTTPClient.Transport.(*http.Transport)
		if !ok {
			return
		}

		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{} //nolint:gosec // MinVersion left to the Go default
		}

		transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec // explicitly requested by the caller
	}
}

// WithTransport replaces the round tripper.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Transport = transport
	}
}

// WithInterceptors sets the interceptor chain run around every request.
func WithInterceptors(chain *jamendo.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs the request. A response of any status is returned without
// error; only transport failures produce a *jamendo.TransportError.
//
//nolint:funlen
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	interceptReq := &jamendo.Request{
		Method:  req.Method,
		Path:    req.Path,
		Params:  req.Params,
		Headers: make(http.Header),
	}

	for key, value := range req.Headers {
		interceptReq.Headers.Set(key, value)
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
	if err != nil {
		return nil, err
	}

	fullURL := c.baseURL + interceptReq.Path

	var body []byte

	encoded := interceptReq.Params.Encode()

	switch interceptReq.Method {
	case http.MethodGet, http.MethodHead:
		if encoded != "" {
			fullURL += "?" + encoded
		}
	default:
		body = []byte(encoded)

		interceptReq.Headers.Set("Content-Type", constants.ContentTypeForm)
	}

	attempts := 0
	ctx = context.WithValue(ctx, attemptsKey{}, &attempts)

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, interceptReq.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", constants.ContentTypeJSON)

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, values := range interceptReq.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": interceptReq.Method,
			"path":   interceptReq.Path,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		transportErr := c.transportError(interceptReq.Method, fullURL, attempts, err)

		_ = c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, &jamendo.Response{
			Attempts: transportErr.Attempts,
			Error:    transportErr,
		})

		return nil, transportErr
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body from %s (status %d): %w", fullURL, httpResp.StatusCode, err)
	}

	finalURL := fullURL
	if httpResp.Request != nil && httpResp.Request.URL != nil {
		finalURL = httpResp.Request.URL.String()
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
		URL:        finalURL,
		Attempts:   attempts,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status_code": resp.StatusCode,
			"duration":    time.Since(start).String(),
			"attempts":    resp.Attempts,
		})
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, &jamendo.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Attempts:   resp.Attempts,
	})
	if err != nil {
		return resp, err
	}

	return resp, nil
}

// Get performs a GET request with params in the query string.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params,
	})
}

// PostForm performs a POST request with params form encoded in the body.
func (c *Client) PostForm(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Params: params,
	})
}

func (c *Client) transportError(method, fullURL string, attempts int, err error) *jamendo.TransportError {
	var transportErr *jamendo.TransportError
	if errors.As(err, &transportErr) {
		transportErr.Method = method
		transportErr.URL = redactURL(fullURL)

		return transportErr
	}

	if attempts == 0 {
		attempts = 1
	}

	return &jamendo.TransportError{
		Method:   method,
		URL:      redactURL(fullURL),
		Attempts: attempts,
		Err:      err,
	}
}

func (c *Client) requestLogHook(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if counter, ok := req.Context().Value(attemptsKey{}).(*int); ok {
		*counter = attempt + 1
	}

	if attempt > 0 && c.logger != nil {
		c.logger.Warn("network error, retry", map[string]interface{}{
			"method":  req.Method,
			"path":    req.URL.Path,
			"attempt": attempt + 1,
		})
	}
}

// transportOnlyRetryPolicy retries only when no response was received.
func transportOnlyRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return err != nil && resp == nil, nil
}

func transportErrorHandler(resp *http.Response, err error, numTries int) (*http.Response, error) {
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	return nil, &jamendo.TransportError{Attempts: numTries, Err: err}
}

// redactURL drops the query string, which carries the client credentials.
func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.RawQuery = ""

	return parsed.String()
}
