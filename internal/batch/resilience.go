package batch

import (
	"context"
	"log"

	"github.com/buildstock/batchgo/internal/models"
)

// tier names one stage of the list-read fallback chain. The transitions
// are deliberate: a reachable-but-empty backend seeds sample data, while
// an unreachable backend must not attempt writes and serves the static
// dataset instead.
type tier int

const (
	tierLive tier = iota
	tierSeeding
	tierOffline
)

func (t tier) String() string {
	switch t {
	case tierLive:
		return "live"
	case tierSeeding:
		return "seeding"
	case tierOffline:
		return "offline"
	}
	return "unknown"
}

// listTiered runs the Live -> Seeding -> Offline chain for one list read.
// It never fails; every outcome is a renderable list.
func (s *Service) listTiered(ctx context.Context) []models.BatchView {
	raw, err := s.gw.ListBatches(ctx)

	state := tierLive
	switch {
	case err != nil:
		state = tierOffline
	case len(raw) == 0 && s.seedOnEmpty:
		state = tierSeeding
	}

	switch state {
	case tierOffline:
		log.Printf("⚠️ batches: live fetch failed, serving offline dataset: %v", err)
		return FallbackDataset(s.clock())
	case tierSeeding:
		raw = s.seedSamples(ctx)
	}

	return s.transformAll(ctx, raw)
}

// seedSamples creates the canonical sample records one at a time. A
// failed create is logged and skipped; the remaining samples are still
// attempted. Returns whichever subset the backend accepted.
func (s *Service) seedSamples(ctx context.Context) []models.Batch {
	log.Println("🌱 batches: backend reachable but empty, seeding sample data")

	payloads := seedPayloads(s.clock())
	created := make([]models.Batch, 0, len(payloads))
	for _, payload := range payloads {
		rec, err := s.gw.CreateBatch(ctx, payload)
		if err != nil {
			log.Printf("⚠️ batches: seed create %s failed, skipping: %v", payload.BatchNumber, err)
			continue
		}
		if rec != nil {
			created = append(created, *rec)
		}
	}

	log.Printf("✅ batches: seeded %d of %d sample records", len(created), len(payloads))
	return created
}
