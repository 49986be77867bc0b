package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/buildstock/batchgo/internal/models"
)

// envelope is the backend response wrapper. Every payload arrives under
// "data"; an absent or null "data" means an empty result, not an error.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// HTTPGateway talks to the batch REST backend over JSON.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates an HTTP client with sane connection limits and a
// hard request timeout so a dead backend cannot hang a fetch forever.
func NewHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext:     dialer.DialContext,
			MaxIdleConns:    100,
			IdleConnTimeout: 90 * time.Second,
		},
	}
}

// NewHTTPGateway creates a gateway against baseURL (e.g. "http://localhost:3000").
func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  NewHTTPClient(timeout),
	}
}

// Code returns the gateway code for registry lookup.
func (g *HTTPGateway) Code() string { return "http" }

func (g *HTTPGateway) ListBatches(ctx context.Context) ([]models.Batch, error) {
	var batches []models.Batch
	if err := g.do(ctx, http.MethodGet, "/batches/", nil, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

func (g *HTTPGateway) GetBatch(ctx context.Context, id string) (*models.Batch, error) {
	var batch models.Batch
	if err := g.do(ctx, http.MethodGet, "/batches/"+url.PathEscape(id), nil, &batch); err != nil {
		return nil, err
	}
	if batch.ID == "" {
		return nil, ErrNotFound
	}
	return &batch, nil
}

func (g *HTTPGateway) CreateBatch(ctx context.Context, payload models.BatchPayload) (*models.Batch, error) {
	var batch models.Batch
	if err := g.do(ctx, http.MethodPost, "/batches/", payload, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

func (g *HTTPGateway) UpdateBatch(ctx context.Context, id string, payload models.BatchPayload) (*models.Batch, error) {
	var batch models.Batch
	if err := g.do(ctx, http.MethodPut, "/batches/"+url.PathEscape(id), payload, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

func (g *HTTPGateway) DeleteBatch(ctx context.Context, id string) error {
	return g.do(ctx, http.MethodDelete, "/batches/"+url.PathEscape(id), nil, nil)
}

func (g *HTTPGateway) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := g.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	if product.ID == "" {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (g *HTTPGateway) GetWarehouse(ctx context.Context, id string) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	if err := g.do(ctx, http.MethodGet, "/warehouses/"+url.PathEscape(id), nil, &warehouse); err != nil {
		return nil, err
	}
	if warehouse.ID == "" {
		return nil, ErrNotFound
	}
	return &warehouse, nil
}

// do performs one request and decodes the enveloped response into result.
// A missing or null "data" field leaves result at its zero value.
func (g *HTTPGateway) do(ctx context.Context, method, path string, body, result interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if result == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, result); err != nil {
		return fmt.Errorf("failed to unmarshal data payload: %w", err)
	}
	return nil
}
