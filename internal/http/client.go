// Package http implements the request pipeline every Jira API call
// flows through: endpoint resolution across the API path families,
// authentication, status classification into the typed error taxonomy,
// and bounded retry with exponential backoff for transient failures.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fulcrumops/jira-mcp/internal/constants"
	"github.com/fulcrumops/jira-mcp/pkg/jira"
)

// Logger is the pipeline's logging dependency. jira.Logger satisfies it.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Sleeper pauses between retries. The default honors context
// cancellation; tests inject a recording fake.
type Sleeper func(ctx context.Context, d time.Duration) error

// FilePayload is a multipart file upload. Content is buffered so the
// identical request can be rebuilt on retry.
type FilePayload struct {
	Field    string
	Filename string
	Content  []byte
}

// Request describes one API call. Endpoint may be an absolute URL, a
// /rest/-prefixed path (agile API, next-gen search), or a short path
// that gets the default REST root prepended.
type Request struct {
	Method   string
	Endpoint string
	Query    url.Values
	Body     any
	File     *FilePayload

	// Headers are merged over the client's auth headers. For file
	// uploads they are merged over the reduced multipart header set
	// instead.
	Headers map[string]string
}

// Response is a successfully classified API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// JSON parses the response body into a generic map. An empty body
// yields an empty map, never an error.
func (r *Response) JSON() (map[string]any, error) {
	if len(r.Body) == 0 {
		return map[string]any{}, nil
	}

	var out map[string]any

	err := json.Unmarshal(r.Body, &out)
	if err != nil {
		return nil, fmt.Errorf("parsing response body: %w", err)
	}

	return out, nil
}

// JSONList parses the response body into a list. Some Jira endpoints
// (projects, versions, fields, user search) return bare arrays.
func (r *Response) JSONList() ([]any, error) {
	if len(r.Body) == 0 {
		return nil, nil
	}

	var out []any

	err := json.Unmarshal(r.Body, &out)
	if err != nil {
		return nil, fmt.Errorf("parsing response body: %w", err)
	}

	return out, nil
}

// Client is the shared request pipeline. One instance owns the pooled
// HTTP transport and the immutable auth headers for its whole lifetime;
// concurrent calls are safe because nothing mutable is shared between
// them.
type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
	retryMax   int
	userAgent  string
	logger     Logger
	sleep      Sleeper
	closeOnce  sync.Once
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSleeper replaces the backoff sleep. Used by tests to observe
// delays without waiting.
func WithSleeper(s Sleeper) Option {
	return func(c *Client) {
		c.sleep = s
	}
}

// NewClient builds the pipeline from a resolved configuration. The auth
// header set is derived here, exactly once.
func NewClient(cfg *jira.Config, opts ...Option) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
	}

	if !cfg.VerifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // explicit opt-out via config
	}

	client := &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		headers: jira.AuthHeaders(cfg),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		retryMax: cfg.MaxRetries,
		logger:   jira.NoopLogger{},
		sleep:    sleepContext,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Close releases the pooled connections. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
}

// resolveURL maps an endpoint onto its path family.
func (c *Client) resolveURL(endpoint string) string {
	switch {
	case strings.HasPrefix(endpoint, "http://"), strings.HasPrefix(endpoint, "https://"):
		return endpoint
	case strings.HasPrefix(endpoint, "/rest/"):
		return c.baseURL + endpoint
	default:
		return c.baseURL + constants.APIBasePath + endpoint
	}
}

// Do executes the request, transparently retrying transient failures
// (429, 5xx, timeouts, network errors) up to the configured budget with
// exponential backoff. Terminal failures surface as *jira.APIError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	resolvedURL := c.resolveURL(req.Endpoint)

	for attempt := 0; ; attempt++ {
		resp, err := c.execute(ctx, req, resolvedURL, attempt)
		if err == nil {
			return resp, nil
		}

		if !isRetryable(err) || attempt >= c.retryMax {
			return nil, unwrapRetryable(err)
		}

		delay := backoffDelay(attempt)
		c.logger.Warn("request failed, backing off", map[string]interface{}{
			"method":  req.Method,
			"url":     resolvedURL,
			"attempt": attempt + 1,
			"backoff": delay.String(),
			"error":   err.Error(),
		})

		if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
			return nil, fmt.Errorf("request aborted during backoff: %w", sleepErr)
		}
	}
}

// retryableError marks a classified failure the retry loop may absorb.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

func isRetryable(err error) bool {
	_, ok := err.(*retryableError)

	return ok
}

// unwrapRetryable strips the retry marker so callers always see the
// underlying *jira.APIError.
func unwrapRetryable(err error) error {
	if re, ok := err.(*retryableError); ok {
		return re.err
	}

	return err
}

// execute performs one attempt: build the outgoing request, send it,
// classify the response. Retryable conditions are wrapped so the loop
// in Do can tell them apart from terminal errors.
func (c *Client) execute(ctx context.Context, req *Request, resolvedURL string, attempt int) (*Response, error) {
	httpReq, err := c.buildHTTPRequest(ctx, req, resolvedURL)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     resolvedURL,
		"attempt": attempt + 1,
	})

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Caller cancellation is terminal, everything else transport
		// level is a retry candidate.
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request canceled: %w", ctx.Err())
		}

		return nil, &retryableError{
			err: jira.NewAPIError(
				fmt.Sprintf("request failed after %d attempt(s): %v", attempt+1, err), 0, nil),
		}
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request canceled: %w", ctx.Err())
		}

		return nil, &retryableError{
			err: jira.NewAPIError(
				fmt.Sprintf("reading response failed after %d attempt(s): %v", attempt+1, err), 0, nil),
		}
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status": httpResp.StatusCode,
		"url":    resolvedURL,
	})

	return classify(httpResp.StatusCode, httpResp.Header, body, resolvedURL)
}

// classify maps a status code onto either a Response or an APIError.
func classify(status int, headers http.Header, body []byte, resolvedURL string) (*Response, error) {
	switch {
	case status == http.StatusOK || status == http.StatusCreated:
		return &Response{StatusCode: status, Headers: headers, Body: body}, nil

	case status == http.StatusNoContent:
		// Empty result no matter what the server sent along.
		return &Response{StatusCode: status, Headers: headers}, nil

	case status == http.StatusBadRequest:
		data := safeJSON(body)

		return nil, jira.NewValidationError(jira.ExtractErrorMessage(data), data)

	case status == http.StatusUnauthorized:
		return nil, jira.NewAuthenticationError(safeJSON(body))

	case status == http.StatusForbidden:
		return nil, jira.NewPermissionError(safeJSON(body))

	case status == http.StatusNotFound:
		return nil, jira.NewNotFoundError(resolvedURL, safeJSON(body))

	case status == http.StatusTooManyRequests:
		return nil, &retryableError{err: jira.NewRateLimitError(safeJSON(body))}

	case status >= 500:
		return nil, &retryableError{
			err: jira.NewAPIError(fmt.Sprintf("server error: %d", status), status, safeJSON(body)),
		}

	default:
		return nil, jira.NewAPIError(
			fmt.Sprintf("unexpected status code: %d", status), status, safeJSON(body))
	}
}

// buildHTTPRequest assembles the outgoing request with a fresh header
// set. The client's own header map is never mutated.
func (c *Client) buildHTTPRequest(ctx context.Context, req *Request, resolvedURL string) (*http.Request, error) {
	fullURL := resolvedURL
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		bodyReader  io.Reader
		contentType string
	)

	switch {
	case req.File != nil:
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)

		part, err := writer.CreateFormFile(req.File.Field, req.File.Filename)
		if err != nil {
			return nil, fmt.Errorf("building multipart body: %w", err)
		}

		if _, err := part.Write(req.File.Content); err != nil {
			return nil, fmt.Errorf("writing multipart body: %w", err)
		}

		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("closing multipart body: %w", err)
		}

		bodyReader = buf
		contentType = writer.FormDataContentType()

	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	for k, v := range c.requestHeaders(req) {
		httpReq.Header.Set(k, v)
	}

	if contentType != "" {
		// The multipart boundary must come from the writer, never from
		// the shared JSON header set.
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	return httpReq, nil
}

// requestHeaders derives the per-request header set. File uploads get a
// reduced set: only the Authorization header survives from the shared
// auth headers, and Content-Type is left to the multipart writer.
func (c *Client) requestHeaders(req *Request) map[string]string {
	headers := make(map[string]string, len(c.headers)+len(req.Headers))

	if req.File != nil {
		if auth, ok := c.headers["Authorization"]; ok {
			headers["Authorization"] = auth
		}

		headers["Accept"] = "application/json"
	} else {
		for k, v := range c.headers {
			headers[k] = v
		}
	}

	for k, v := range req.Headers {
		headers[k] = v
	}

	return headers
}

// backoffDelay is min(2^attempt, 30) seconds. No jitter: the remote
// enforces its own rate limits and the retry budget is small.
func backoffDelay(attempt int) time.Duration {
	if attempt >= 5 {
		return constants.MaxBackoff
	}

	delay := time.Duration(1<<uint(attempt)) * time.Second
	if delay > constants.MaxBackoff {
		return constants.MaxBackoff
	}

	return delay
}

// sleepContext sleeps for d or until ctx is done, whichever comes
// first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func safeJSON(body []byte) map[string]any {
	if len(body) == 0 {
		return nil
	}

	var data map[string]any

	if err := json.Unmarshal(body, &data); err != nil {
		return nil
	}

	return data
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Endpoint: endpoint, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Endpoint: endpoint, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Endpoint: endpoint, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Endpoint: endpoint})
}
