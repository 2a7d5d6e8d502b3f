package ipecho

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"noteshare/internal/domain/accesslog"
)

const defaultTimeout = 5 * time.Second

// DefaultURLs are tried in order.
var DefaultURLs = []string{
	"https://api.ipify.org?format=json",
	"https://api64.ipify.org?format=json",
}

// Resolver asks public echo services for the client's address.
type Resolver struct {
	client *http.Client
	urls   []string
	log    *slog.Logger
}

func New(urls []string, timeout time.Duration, log *slog.Logger) *Resolver {
	if len(urls) == 0 {
		urls = DefaultURLs
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Resolver{
		client: &http.Client{Timeout: timeout},
		urls:   urls,
		log:    log.With("component", "ip_resolver"),
	}
}

// PublicIP returns the first address reported by any endpoint, or
// accesslog.UnknownIP when none answers.
func (r *Resolver) PublicIP(ctx context.Context) string {
	for _, url := range r.urls {
		ip, err := r.fetch(ctx, url)
		if err == nil {
			return ip
		}
		r.log.Debug("ip lookup failed", "url", url, "error", err)
	}
	return accesslog.UnknownIP
}

func (r *Resolver) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<10)).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	ip := strings.TrimSpace(body.IP)
	if ip == "" {
		return "", fmt.Errorf("empty ip in response")
	}
	return ip, nil
}
