// pkg/backend/client.go
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrUnavailable covers every way a backend fetch can fail: transport
// errors, timeouts, non-2xx statuses and bodies that are not JSON.
var ErrUnavailable = errors.New("backend unavailable")

// maxPayloadBytes caps how much of a backend response is buffered.
const maxPayloadBytes = 10 << 20

// Client fetches data from the backend service.
type Client struct {
	dataURL string
	http    *http.Client
}

// NewClient returns a client for dataURL. Every call is bounded by timeout.
func NewClient(dataURL string, timeout time.Duration) *Client {
	return &Client{
		dataURL: dataURL,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
				TLSHandshakeTimeout:   5 * time.Second,
				ResponseHeaderTimeout: timeout,
				IdleConnTimeout:       90 * time.Second,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
			},
		},
	}
}

// FetchData issues one GET against the backend and returns the JSON body
// untouched. The request id stored in ctx, if any, is forwarded.
func (c *Client) FetchData(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.dataURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if id := middleware.GetReqID(ctx); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxPayloadBytes))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUnavailable, err)
	}
	if len(body) > maxPayloadBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrUnavailable, maxPayloadBytes)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid JSON", ErrUnavailable)
	}

	return json.RawMessage(body), nil
}
