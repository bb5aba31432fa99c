package ports

import (
	"context"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

// CreateArtworkInput carries the caller-supplied listing fields. Counters and
// availability are server-assigned.
type CreateArtworkInput struct {
	Title       string
	Description string
	ImageURL    string
	Price       float64
	Category    string
	ArtistID    string
}

// ArtworkWithArtist is the detail/list view joining the artist summary.
// Artist is nil when the referenced user no longer exists (weak reference).
type ArtworkWithArtist struct {
	domain.Artwork
	Artist *domain.User `json:"artist,omitempty"`
}

// ArtworkService defines use-case operations for artworks. GetArtwork records
// a view as a side effect of the read.
type ArtworkService interface {
	CreateArtwork(ctx context.Context, input CreateArtworkInput) (*domain.Artwork, error)
	GetArtwork(ctx context.Context, id string) (*ArtworkWithArtist, error)
	ListArtworks(ctx context.Context, filter ListArtworksFilter) ([]ArtworkWithArtist, error)
	ListByArtist(ctx context.Context, artistID string) ([]*domain.Artwork, error)
}
