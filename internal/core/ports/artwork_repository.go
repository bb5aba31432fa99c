package ports

import (
	"context"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

// ListArtworksFilter carries the query parameters for the artwork listing.
// Results are always sorted newest-first.
type ListArtworksFilter struct {
	Category string // optional; "all" and "" mean no filter
	Limit    int    // defaults to 20 when <= 0
	Offset   int
}

// ArtworkRepository defines persistence operations for artworks, including
// the denormalized like/view counters and the availability transition.
type ArtworkRepository interface {
	Create(ctx context.Context, a *domain.Artwork) error
	FindByID(ctx context.Context, id string) (*domain.Artwork, error)
	List(ctx context.Context, filter ListArtworksFilter) ([]*domain.Artwork, error)
	ListByArtist(ctx context.Context, artistID string) ([]*domain.Artwork, error)
	// MarkSold flips isAvailable from 1 to 0. The update filter requires
	// isAvailable=1, so a lost race returns domain.ErrArtworkUnavailable
	// instead of double-selling.
	MarkSold(ctx context.Context, id string) error
	// IncrementLikes adds delta to the artwork's likeCount.
	IncrementLikes(ctx context.Context, id string, delta int) error
	// IncrementViews adds delta to the artwork's viewCount.
	IncrementViews(ctx context.Context, id string, delta int) error
}
