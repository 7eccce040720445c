// Package download provides the fetch-bytes-for-a-URL-into-a-cache-path
// capability used by the manifest fetcher.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
)

// Failure wraps an error from the download capability. The resolution
// pipeline propagates it unchanged; retries happen below this boundary.
type Failure struct {
	URL string
	Err error
}

func (e *Failure) Error() string {
	return fmt.Sprintf("downloading %s: %v", e.URL, e.Err)
}

func (e *Failure) Unwrap() error { return e.Err }

// Client fetches URLs into cache paths over HTTP, retrying transient
// failures.
type Client struct {
	http *retryablehttp.Client
}

// NewClient returns a Client with retry defaults suitable for fetching
// small published documents.
func NewClient() *Client {
	c := retryablehttp.NewClient()
	c.RetryMax = 3
	c.RetryWaitMin = 500 * time.Millisecond
	c.RetryWaitMax = 5 * time.Second
	c.Logger = nil
	return &Client{http: c}
}

// FetchToCache downloads url and writes the response body to dest. The
// write goes through a temp file and rename so a concurrent reader never
// observes a partial document.
func (c *Client) FetchToCache(ctx context.Context, url, dest string) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Failure{URL: url, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Failure{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Failure{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return &Failure{URL: url, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".tmp-")
	if err != nil {
		return &Failure{URL: url, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return &Failure{URL: url, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &Failure{URL: url, Err: err}
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return &Failure{URL: url, Err: err}
	}

	log.Debug().Str("url", url).Str("dest", dest).Msg("fetched document into cache")
	return nil
}
