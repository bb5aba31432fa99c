package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ViewCounter applies viewCount increments off the request path. Events are
// routed to a fixed set of workers by consistent hashing on the artwork id,
// so increments for one artwork are applied in order.
type ViewCounter struct {
	workers  []chan string
	artworks ports.ArtworkRepository
	log      zerolog.Logger
}

// NewViewCounter creates a ViewCounter with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewViewCounter(numWorkers int, artworks ports.ArtworkRepository, log zerolog.Logger) *ViewCounter {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	v := &ViewCounter{
		workers:  make([]chan string, numWorkers),
		artworks: artworks,
		log:      log,
	}
	for i := range v.workers {
		v.workers[i] = make(chan string, channelBuffer)
	}
	return v
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// events still buffered at that point are dropped (documented counter drift).
func (v *ViewCounter) Start(ctx context.Context) {
	for i, ch := range v.workers {
		go v.runWorker(ctx, i, ch)
	}
}

// Record enqueues one view for the artwork. Blocks only when the worker's
// buffer is full.
func (v *ViewCounter) Record(artworkID string) {
	v.workers[v.shardIndex(artworkID)] <- artworkID
}

// shardIndex maps an artwork id deterministically to a worker index.
func (v *ViewCounter) shardIndex(artworkID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(artworkID))
	return int(h.Sum32()) % len(v.workers)
}

func (v *ViewCounter) runWorker(ctx context.Context, id int, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case artworkID, ok := <-ch:
			if !ok {
				return
			}
			if err := v.artworks.IncrementViews(ctx, artworkID, 1); err != nil {
				v.log.Warn().Err(err).
					Str("artwork", artworkID).
					Int("worker_id", id).
					Msg("viewCount update failed")
			}
		}
	}
}
