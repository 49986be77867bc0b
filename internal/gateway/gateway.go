package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/buildstock/batchgo/internal/models"
)

// ErrNotFound is returned when a record does not exist on the backend.
var ErrNotFound = errors.New("record not found")

// Gateway is the remote collaborator the reconciliation layer talks to.
// Implementations perform the actual transport (HTTP, in-memory, ...);
// callers treat every method as a suspension point and pass a context.
type Gateway interface {
	ListBatches(ctx context.Context) ([]models.Batch, error)
	GetBatch(ctx context.Context, id string) (*models.Batch, error)
	CreateBatch(ctx context.Context, payload models.BatchPayload) (*models.Batch, error)
	UpdateBatch(ctx context.Context, id string, payload models.BatchPayload) (*models.Batch, error)
	DeleteBatch(ctx context.Context, id string) error

	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetWarehouse(ctx context.Context, id string) (*models.Warehouse, error)
}

// HTTPError carries the status code of a non-2xx backend response.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned %s", e.Status)
}
