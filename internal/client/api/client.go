// Package api is the HTTP adapter for the vacancy board REST API.
//
// Every request carries the static API key and a JSON content type, plus
// the bearer credential when one is stored. A 401 response deletes the
// stored credential before the error is returned; nothing is retried.
package api

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

	"github.com/dmitrijs2005/jobboard/internal/client/credentials"
	"github.com/dmitrijs2005/jobboard/internal/common"
	"github.com/dmitrijs2005/jobboard/internal/logging"
	"github.com/google/uuid"
)

// Requester performs one API call and returns the undecoded envelope.
type Requester interface {
	Do(ctx context.Context, method, path string, body any) (*Raw, error)
}

type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	credentials credentials.Store
	log         logging.Logger
	requestID   func() string
}

var _ Requester = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRequestIDFunc overrides X-Request-ID generation.
func WithRequestIDFunc(fn func() string) Option {
	return func(c *Client) { c.requestID = fn }
}

func NewClient(baseURL, apiKey string, store credentials.Store, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		httpClient:  &http.Client{},
		credentials: store,
		log:         log,
		requestID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends a single request. body, when not nil, is encoded as JSON.
//
// Errors:
//   - transport failures wrap common.ErrUnavailable;
//   - non-2xx statuses return *APIError (401 wraps common.ErrUnauthorized and
//     deletes the stored credential first).
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Raw, error) {
	reqID := c.requestID()
	log := c.log.With("request_id", reqID, "method", method, "path", path)

	req, err := c.newRequest(ctx, method, path, body, reqID)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", common.ErrUnavailable, err)
	}
	log.Debug(ctx, "response received", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.credentials.Delete(ctx); err != nil {
			log.Error(ctx, "failed to delete credential after 401", "error", err)
		} else {
			log.Info(ctx, "credential rejected by server, removed")
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: extractMessage(payload),
			Body:    payload,
			Err:     statusError(resp.StatusCode),
		}
	}

	if len(bytes.TrimSpace(payload)) == 0 {
		return &Raw{Success: true}, nil
	}

	var env Raw
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return &env, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any, reqID string) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(common.ContentTypeHeaderName, "application/json")
	req.Header.Set(common.APIKeyHeaderName, c.apiKey)
	req.Header.Set(common.RequestIDHeaderName, reqID)

	credential, err := c.credentials.Load(ctx)
	if err != nil {
		return nil, err
	}
	if credential != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+credential)
	}
	return req, nil
}

func call[T any](ctx context.Context, r Requester, method, path string, body any) (*Envelope[T], error) {
	raw, err := r.Do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	env, err := decodeRaw[T](raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s %s data: %w", method, path, err)
	}
	return env, nil
}

func Get[T any](ctx context.Context, r Requester, path string) (*Envelope[T], error) {
	return call[T](ctx, r, http.MethodGet, path, nil)
}

func Post[T any](ctx context.Context, r Requester, path string, body any) (*Envelope[T], error) {
	return call[T](ctx, r, http.MethodPost, path, body)
}

func Put[T any](ctx context.Context, r Requester, path string, body any) (*Envelope[T], error) {
	return call[T](ctx, r, http.MethodPut, path, body)
}

func Delete[T any](ctx context.Context, r Requester, path string) (*Envelope[T], error) {
	return call[T](ctx, r, http.MethodDelete, path, nil)
}

// IsUnauthorized reports whether err came from a 401 response.
func IsUnauthorized(err error) bool {
	return errors.Is(err, common.ErrUnauthorized)
}
