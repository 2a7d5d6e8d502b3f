package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

const (
	restPrefix     = "/rest/v1/"
	defaultTimeout = 30 * time.Second
)

var (
	ErrEmptyBaseURL = errors.New("backend url is empty")
	ErrEmptyAPIKey  = errors.New("api key is empty")
)

type Config struct {
	BaseURL string
	APIKey  string
	// AccessToken is sent as the bearer token. Defaults to APIKey.
	AccessToken string
	Timeout     time.Duration
}

// StatusError is returned for every response with status >= 400.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// Client talks to a PostgREST-style backend.
type Client struct {
	http    *http.Client
	log     *slog.Logger
	baseURL string
	apiKey  string
	token   string
}

func New(cfg Config, log *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrEmptyBaseURL
	}
	if cfg.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	token := cfg.AccessToken
	if token == "" {
		token = cfg.APIKey
	}

	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		log:     log.With("component", "rest_client"),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		token:   token,
	}, nil
}

// Select fetches rows of collection matching q into dst, which must be a
// pointer to a slice.
func (c *Client) Select(ctx context.Context, collection string, q *Query, dst any) error {
	resp, err := c.doRequest(ctx, http.MethodGet, collection, q, nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, dst)
}

// Insert posts body to collection. The inserted rows are decoded into dst
// when it is not nil.
func (c *Client) Insert(ctx context.Context, collection string, body, dst any) error {
	resp, err := c.doRequest(ctx, http.MethodPost, collection, nil, body)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, dst)
}

// Update patches every row of collection matching q.
func (c *Client) Update(ctx context.Context, collection string, q *Query, body, dst any) error {
	resp, err := c.doRequest(ctx, http.MethodPatch, collection, q, body)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, dst)
}

// Delete removes every row of collection matching q.
func (c *Client) Delete(ctx context.Context, collection string, q *Query) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, collection, q, nil)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, nil)
}

// Count returns the number of rows of collection matching q. Only ids are
// transferred.
func (c *Client) Count(ctx context.Context, collection string, q *Query) (int, error) {
	if q == nil {
		q = NewQuery()
	}
	var rows []struct {
		ID string `json:"id"`
	}
	if err := c.Select(ctx, collection, q.Clone().Select("id"), &rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (c *Client) doRequest(ctx context.Context, method, collection string, q *Query, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.baseURL + restPrefix + collection
	if q != nil {
		if encoded := q.Encode(); encoded != "" {
			url += "?" + encoded
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	c.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, collection, err)
	}

	return resp, nil
}

func (c *Client) parseResponse(resp *http.Response, dst any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("received response", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return &StatusError{StatusCode: resp.StatusCode, Message: errResp.Message}
		}
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if dst == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
