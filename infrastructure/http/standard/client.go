// ABOUTME: Standard HTTP client implementation with retry logic and rate limiting
// ABOUTME: Applies the wiki request headers and maps 404 responses to NotFoundError

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	coreerrors "runebot-api/core/errors"

	"runebot-api/core/interfaces"
)

const maxRetries = 3

// StandardHTTPClient implements the HTTPClient interface using the
// standard library, with a shared rate limiter across all requests.
type StandardHTTPClient struct {
	client  *http.Client
	limiter *rate.Limiter
	headers map[string]string
}

// Options configures a StandardHTTPClient.
type Options struct {
	// Timeout is the per-request ceiling.
	Timeout time.Duration

	// RequestsPerSecond caps the outbound request rate. Zero disables
	// rate limiting.
	RequestsPerSecond float64

	// UserAgent is sent on every request.
	UserAgent string

	// Headers are additional fixed headers sent on every request.
	Headers map[string]string
}

// NewStandardHTTPClient creates a new HTTP client with the given options.
func NewStandardHTTPClient(opts Options) *StandardHTTPClient {
	headers := make(map[string]string, len(opts.Headers)+1)
	for k, v := range opts.Headers {
		headers[k] = v
	}
	if opts.UserAgent != "" {
		headers["User-Agent"] = opts.UserAgent
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	return &StandardHTTPClient{
		client:  &http.Client{Timeout: opts.Timeout},
		limiter: limiter,
		headers: headers,
	}
}

// Get performs an HTTP GET request. 404 responses are returned as
// *errors.NotFoundError; 5xx responses are retried with backoff.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			lastErr = err
			resp = nil
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, &coreerrors.NotFoundError{Slug: url}
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
