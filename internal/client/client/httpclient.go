package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
	"github.com/dmitrijs2005/scankeeper/internal/common"
)

// HTTPClient talks to the list endpoint over plain HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

type successResponse struct {
	Success bool `json:"success"`
}

// NewHTTPClient returns a client for the server at baseURL, e.g.
// "http://127.0.0.1:8080". A scheme-less address is treated as http.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Load(ctx context.Context) ([]barcodes.Record, error) {
	body, err := c.do(ctx, http.MethodGet, common.ListPath, nil)
	if err != nil {
		return nil, err
	}
	return barcodes.DecodeList(body)
}

func (c *HTTPClient) Save(ctx context.Context, records []barcodes.Record) error {
	payload, err := barcodes.EncodeList(records)
	if err != nil {
		return err
	}
	body, err := c.do(ctx, http.MethodPost, common.ListPath, payload)
	if err != nil {
		return err
	}
	return expectSuccess(body)
}

func (c *HTTPClient) Clear(ctx context.Context) error {
	body, err := c.do(ctx, http.MethodDelete, common.ListPath, nil)
	if err != nil {
		return err
	}
	return expectSuccess(body)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/healthz", nil)
	return err
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if err := mapStatus(resp.StatusCode, body); err != nil {
		return nil, err
	}
	return body, nil
}

func mapStatus(code int, body []byte) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", common.ErrInvalidPayload, strings.TrimSpace(string(body)))
	case code >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, code)
	default:
		return fmt.Errorf("unexpected status %d: %s", code, strings.TrimSpace(string(body)))
	}
}

func expectSuccess(body []byte) error {
	var r successResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !r.Success {
		return fmt.Errorf("server did not confirm the write")
	}
	return nil
}
