package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPGatewayListBatches(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/batches/" {
			t.Errorf("path = %s, want /batches/", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"b-1","product_ref":"p-1","warehouse_ref":"w-1","batch_number":"BN-1","quantity":10,"available_quantity":8,"created_at":"2025-06-01T12:00:00Z"}]}`))
	}))
	defer backend.Close()

	gw := NewHTTPGateway(backend.URL, time.Second)
	batches, err := gw.ListBatches(context.Background())
	if err != nil {
		t.Fatalf("ListBatches: %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("len = %d, want 1", len(batches))
	}
	if batches[0].ID != "b-1" || batches[0].AvailableQuantity != 8 {
		t.Errorf("decoded batch = %+v", batches[0])
	}
}

func TestHTTPGatewayMissingDataIsEmpty(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	gw := NewHTTPGateway(backend.URL, time.Second)
	batches, err := gw.ListBatches(context.Background())
	if err != nil {
		t.Fatalf("missing data must not be an error, got %v", err)
	}
	if len(batches) != 0 {
		t.Errorf("len = %d, want 0", len(batches))
	}
}

func TestHTTPGatewayNullDataIsEmpty(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":null}`))
	}))
	defer backend.Close()

	gw := NewHTTPGateway(backend.URL, time.Second)
	batches, err := gw.ListBatches(context.Background())
	if err != nil {
		t.Fatalf("null data must not be an error, got %v", err)
	}
	if len(batches) != 0 {
		t.Errorf("len = %d, want 0", len(batches))
	}
}

func TestHTTPGatewayStatusError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer backend.Close()

	gw := NewHTTPGateway(backend.URL, time.Second)
	_, err := gw.ListBatches(context.Background())
	if err == nil {
		t.Fatal("expected error on 500")
	}
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error type = %T, want *HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", httpErr.StatusCode)
	}
}

func TestHTTPGatewayGetProductNotFound(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Product not found"}`, http.StatusNotFound)
	}))
	defer backend.Close()

	gw := NewHTTPGateway(backend.URL, time.Second)
	if _, err := gw.GetProduct(context.Background(), "nope"); err == nil {
		t.Fatal("expected error on 404")
	}
}

func TestHTTPGatewayUnreachable(t *testing.T) {
	// Port 1 is never listening.
	gw := NewHTTPGateway("http://127.0.0.1:1", 200*time.Millisecond)
	if _, err := gw.ListBatches(context.Background()); err == nil {
		t.Fatal("expected network error")
	}
}
