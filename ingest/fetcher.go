package ingest

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"blog-backend/utils"
)

// DefaultMaxBodyBytes bounds the upstream payload
const DefaultMaxBodyBytes = 10 << 20

// Fetcher returns the raw upstream payload.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

type HTTPFetcher struct {
	Client       *http.Client
	SourceURL    string
	MaxBodyBytes int64
}

func NewHTTPFetcher(sourceURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		SourceURL:    sourceURL,
		MaxBodyBytes: DefaultMaxBodyBytes,
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 5 * time.Second,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Fetch performs the GET. Every failure is a fetch error.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.SourceURL, nil)
	if err != nil {
		return nil, utils.NewFetchError("Error creating upstream request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, utils.NewFetchError("Error calling upstream source", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, utils.NewFetchError("Upstream source returned an error",
			fmt.Errorf("status=%d, body=%s", resp.StatusCode, string(body)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.MaxBodyBytes+1))
	if err != nil {
		return nil, utils.NewFetchError("Error reading upstream response", err)
	}
	if int64(len(body)) > f.MaxBodyBytes {
		return nil, utils.NewFetchError("Upstream response too large",
			fmt.Errorf("body exceeds %d bytes", f.MaxBodyBytes))
	}
	return body, nil
}
