package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// Query holds query parameters for a list request. Empty values are not
// appended to the URL, so an absent filter simply means "unfiltered" to the
// backend.
type Query map[string]string

func (q Query) encode() string {
	vals := url.Values{}
	for k, v := range q {
		if v == "" {
			continue
		}
		vals.Set(k, v)
	}
	return vals.Encode()
}

// Client is a thin JSON client for the hospital API. List GETs go through a
// retrying transport; mutations are sent once, since they are not assumed
// idempotent.
type Client struct {
	baseURL string
	token   string
	reads   *http.Client
	writes  *http.Client
	logger  zerolog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL  string
	Token    string
	Timeout  time.Duration
	RetryMax int
	Logger   zerolog.Logger
}

// NewClient builds a Client from opts. Timeout defaults to 30s and RetryMax
// to 3 when unset.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	retryMax := opts.RetryMax
	if retryMax <= 0 {
		retryMax = 3
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	rc.Logger = nil
	rc.HTTPClient = &http.Client{Timeout: timeout}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.Token,
		reads:   rc.StandardClient(),
		writes:  &http.Client{Timeout: timeout},
		logger:  opts.Logger,
	}
}

// Get issues a GET and decodes the JSON response into out (out may be nil).
func (c *Client) Get(ctx context.Context, path string, q Query, out any) error {
	return c.do(ctx, c.reads, http.MethodGet, path, q, nil, out)
}

// GetRaw issues a GET and returns the raw response body.
func (c *Client) GetRaw(ctx context.Context, path string, q Query) ([]byte, error) {
	var raw json.RawMessage
	if err := c.do(ctx, c.reads, http.MethodGet, path, q, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, c.writes, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, c.writes, http.MethodPut, path, nil, body, out)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, c.writes, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, c.writes, http.MethodDelete, path, nil, nil, nil)
}

// GetCollection fetches a list endpoint and normalizes the response shape.
// key names the collection field of object-shaped envelopes
// ("appointments", "reports", ...).
func (c *Client) GetCollection(ctx context.Context, path string, q Query, key string) (Collection, error) {
	raw, err := c.GetRaw(ctx, path, q)
	if err != nil {
		return Collection{}, err
	}
	col, err := DecodeCollection(raw, key)
	if err != nil {
		return Collection{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return col, nil
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, q Query, body, out any) error {
	u := c.baseURL + path
	if enc := q.encode(); enc != "" {
		u += "?" + enc
	}

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("url", u).Msg("request failed")
		return &NetworkError{Op: method, URL: u, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("url", u).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("request")

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: method, URL: u, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{StatusCode: resp.StatusCode, Message: serverMessage(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// serverMessage pulls the human-readable error text out of an error body.
// Both {"error": "..."} and {"message": "..."} spellings occur.
func serverMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}
