// Package transport is the single chokepoint between the gateway and the
// network. Every domain operation goes through Client.Do, which attaches the
// session token, decodes whatever the backend returns and classifies it into
// a uniform Envelope. Nothing escapes as a panic or a raw *http.Response.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"pestlinkgw/internal/shared/normalization"
)

const apiPrefix = "/api"

// TokenSource supplies the current bearer token, if any.
type TokenSource interface {
	Token() string
}

// Client wraps http.Client with base URL handling and response classification.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
	timeout time.Duration
	log     *slog.Logger
}

// NewClient builds a transport client against the given backend origin. The
// /api prefix is appended when the origin does not already carry it.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, httpClient *http.Client, log *slog.Logger) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = "http://localhost:3000"
	}
	if !strings.HasSuffix(trimmed, apiPrefix) {
		trimmed += apiPrefix
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeoutOrDefault(timeout)}
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: trimmed,
		client:  httpClient,
		tokens:  tokens,
		timeout: timeoutOrDefault(timeout),
		log:     log,
	}
}

// BaseURL returns the resolved backend URL including the /api prefix.
func (c *Client) BaseURL() string { return c.baseURL }

// Do issues a request and classifies the response. It never returns an error;
// transport-level failures are folded into the envelope so callers have a
// single result shape to inspect.
func (c *Client) Do(ctx context.Context, method, path string, body any) Envelope {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Envelope{Error: fmt.Sprintf("encode request body: %v", err)}
		}
		reader = bytes.NewReader(encoded)
	}

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return Envelope{Error: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("request", slog.String("method", method), slog.String("url", url))

	res, err := c.client.Do(req)
	if err != nil {
		c.log.Error("request network failure", slog.String("method", method), slog.String("url", url), slog.Any("error", err))
		return Envelope{NetworkError: true, Error: err.Error()}
	}
	defer res.Body.Close()

	// Read as raw text first; the backend has returned HTML error pages and
	// empty bodies where JSON was expected.
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return Envelope{NetworkError: true, Error: fmt.Sprintf("read response: %v", err), Status: res.StatusCode}
	}

	var parsed any
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			c.log.Debug("response body not json", slog.String("url", url), slog.Int("status", res.StatusCode))
			parsed = nil
		}
	}

	c.log.Debug("response", slog.String("url", url), slog.Int("status", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return Envelope{
			Status: res.StatusCode,
			Error:  failureMessage(parsed, res.StatusCode),
			Data:   parsed,
		}
	}

	return successEnvelope(parsed, res.StatusCode)
}

func (c *Client) currentToken() string {
	if c.tokens == nil {
		return ""
	}
	return strings.TrimSpace(c.tokens.Token())
}

func successEnvelope(parsed any, status int) Envelope {
	container := normalization.AsMap(parsed)
	if container == nil {
		// Bare arrays, scalars and empty bodies on 2xx all count as success.
		return Envelope{Success: true, Status: status, Data: parsed}
	}
	env := Envelope{Success: true, Status: status, Data: parsed}
	if flag, ok := container["success"]; ok {
		env.Success = normalization.AsBool(flag)
	}
	if msg := normalization.FirstString(container, "error", "message"); msg != "" && !env.Success {
		env.Error = msg
	}
	return env
}

func failureMessage(parsed any, status int) string {
	if container := normalization.AsMap(parsed); container != nil {
		if msg := normalization.FirstString(container, "error", "message"); msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}

func timeoutOrDefault(value time.Duration) time.Duration {
	if value <= 0 {
		return 15 * time.Second
	}
	return value
}
