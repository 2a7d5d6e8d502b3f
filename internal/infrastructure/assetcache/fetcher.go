package assetcache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrBadOrigin = errors.New("asset origin must be an absolute http(s) url")

// Fetcher downloads one asset by path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (Asset, error)
}

// HTTPFetcher downloads assets from an upstream origin.
type HTTPFetcher struct {
	origin string
	client *http.Client
}

func NewHTTPFetcher(origin string, timeout time.Duration) (*HTTPFetcher, error) {
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrBadOrigin
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPFetcher{
		origin: strings.TrimRight(origin, "/"),
		client: &http.Client{Timeout: timeout},
	}, nil
}

// Fetch fails on any status other than 200, so a broken asset aborts an
// install.
func (f *HTTPFetcher) Fetch(ctx context.Context, path string) (Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.origin+path, nil)
	if err != nil {
		return Asset{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return Asset{}, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Asset{}, fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Asset{}, fmt.Errorf("read %s: %w", path, err)
	}

	header := http.Header{}
	for _, k := range []string{"Content-Type", "Cache-Control", "ETag", "Last-Modified"} {
		if v := resp.Header.Get(k); v != "" {
			header.Set(k, v)
		}
	}

	return Asset{Path: path, Status: resp.StatusCode, Header: header, Body: body}, nil
}
