package batch

import (
	"github.com/buildstock/batchgo/internal/models"
)

// DedupeByID removes duplicate ids from a transformed list. The output
// preserves first-occurrence order; when an id repeats, the last value
// wins. Guards against upstream duplication, e.g. a record appearing
// twice across pagination.
func DedupeByID(views []models.BatchView) []models.BatchView {
	index := make(map[string]int, len(views))
	out := make([]models.BatchView, 0, len(views))
	for _, v := range views {
		if i, seen := index[v.ID]; seen {
			out[i] = v
			continue
		}
		index[v.ID] = len(out)
		out = append(out, v)
	}
	return out
}
