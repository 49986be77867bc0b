package batch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/buildstock/batchgo/internal/gateway"
	"github.com/buildstock/batchgo/internal/models"
	"github.com/google/uuid"
)

// Origin tells a caller whether a mutation actually reached the backend
// or was synthesized locally after a remote failure.
type Origin string

const (
	OriginCommitted          Origin = "committed"
	OriginSynthesizedLocally Origin = "synthesized_locally"
)

// MutationResult is the outcome of a create/update/delete. Record is nil
// for deletes. Mutations never return an error to the caller; Origin is
// how a masked backend failure stays observable.
type MutationResult struct {
	Record *models.BatchView
	Origin Origin
}

// Config holds service tuning knobs.
type Config struct {
	// EnrichmentLimit caps concurrent related-entity lookups during a
	// list transform. Zero means the default of 8.
	EnrichmentLimit int
	// LookupTimeout bounds each individual lookup. Zero means 5s.
	LookupTimeout time.Duration
	// SeedOnEmpty enables the Seeding tier when the backend is
	// reachable but holds no batches.
	SeedOnEmpty bool
	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// Service is the facade the UI calls. It composes the resilience chain,
// enrichment, status derivation and dedupe so that list reads always
// return renderable data and mutations always return a plausible record.
type Service struct {
	gw          gateway.Gateway
	resolver    *Resolver
	clock       func() time.Time
	seedOnEmpty bool
}

// NewService creates the batch service on top of a gateway.
func NewService(gw gateway.Gateway, cfg Config) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		gw:          gw,
		resolver:    NewResolver(gw, cfg.EnrichmentLimit, cfg.LookupTimeout),
		clock:       clock,
		seedOnEmpty: cfg.SeedOnEmpty,
	}
}

// List returns all batches, transformed and deduplicated. It never
// fails: backend errors fall through the resilience tiers.
func (s *Service) List(ctx context.Context) []models.BatchView {
	return DedupeByID(s.listTiered(ctx))
}

// Get returns a single batch. On a live failure it falls back to the
// static dataset; an id absent from both is the one failure this layer
// surfaces.
func (s *Service) Get(ctx context.Context, id string) (*models.BatchView, error) {
	raw, err := s.gw.GetBatch(ctx, id)
	if err == nil && raw != nil {
		view := s.transformOne(ctx, *raw)
		return &view, nil
	}
	if err != nil {
		log.Printf("⚠️ batches: live get %s failed, checking offline dataset: %v", id, err)
	}

	for _, view := range FallbackDataset(s.clock()) {
		if view.ID == id {
			return &view, nil
		}
	}
	return nil, fmt.Errorf("batch %s: %w", id, gateway.ErrNotFound)
}

// Create creates a batch. When the backend rejects or cannot be reached,
// the record is synthesized from the input with a generated id and
// returned with OriginSynthesizedLocally.
func (s *Service) Create(ctx context.Context, input models.BatchInput) MutationResult {
	payload := input.Payload()

	created, err := s.gw.CreateBatch(ctx, payload)
	if err != nil || created == nil {
		log.Printf("⚠️ batches: create failed, synthesizing local record: %v", err)
		view := s.synthesize(uuid.NewString(), payload)
		return MutationResult{Record: &view, Origin: OriginSynthesizedLocally}
	}

	view := s.transformOne(ctx, *created)
	return MutationResult{Record: &view, Origin: OriginCommitted}
}

// Update updates a batch. The same synthesis rule as Create applies on
// remote failure, keeping the caller's id.
func (s *Service) Update(ctx context.Context, id string, input models.BatchInput) MutationResult {
	payload := input.Payload()

	updated, err := s.gw.UpdateBatch(ctx, id, payload)
	if err != nil || updated == nil {
		log.Printf("⚠️ batches: update %s failed, synthesizing local record: %v", id, err)
		view := s.synthesize(id, payload)
		return MutationResult{Record: &view, Origin: OriginSynthesizedLocally}
	}

	view := s.transformOne(ctx, *updated)
	return MutationResult{Record: &view, Origin: OriginCommitted}
}

// Delete deletes a batch. Remote failure is absorbed; delete is
// idempotent from the caller's point of view.
func (s *Service) Delete(ctx context.Context, id string) MutationResult {
	if err := s.gw.DeleteBatch(ctx, id); err != nil {
		log.Printf("⚠️ batches: delete %s failed, treating as done: %v", id, err)
		return MutationResult{Origin: OriginSynthesizedLocally}
	}
	return MutationResult{Origin: OriginCommitted}
}

// transformAll enriches and transforms a raw list. Order follows the
// input list.
func (s *Service) transformAll(ctx context.Context, records []models.Batch) []models.BatchView {
	enrichments := s.resolver.ResolveAll(ctx, records)
	now := s.clock()

	views := make([]models.BatchView, 0, len(records))
	for i, rec := range records {
		views = append(views, buildView(rec, enrichments[i], now))
	}
	return views
}

func (s *Service) transformOne(ctx context.Context, record models.Batch) models.BatchView {
	return buildView(record, s.resolver.Resolve(ctx, record), s.clock())
}

// synthesize fabricates the view for a mutation the backend never saw.
// No enrichment is attempted: the backend just failed, so the fallback
// labels apply directly.
func (s *Service) synthesize(id string, payload models.BatchPayload) models.BatchView {
	now := s.clock()
	raw := models.Batch{
		ID:                id,
		ProductRef:        payload.ProductRef,
		WarehouseRef:      payload.WarehouseRef,
		BatchNumber:       payload.BatchNumber,
		Quantity:          payload.Quantity,
		AvailableQuantity: payload.AvailableQuantity,
		ManufacturingDate: payload.ManufacturingDate,
		ExpiryDate:        payload.ExpiryDate,
		CreatedAt:         now,
	}
	return buildView(raw, Enrichment{}, now)
}
