package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

// ViewRecorder accepts view events for asynchronous counter maintenance.
type ViewRecorder interface {
	Record(artworkID string)
}

type artworkService struct {
	artworks ports.ArtworkRepository
	users    ports.UserRepository
	views    ViewRecorder
	log      zerolog.Logger
}

// NewArtworkService returns an ArtworkService implementation.
func NewArtworkService(
	artworks ports.ArtworkRepository,
	users ports.UserRepository,
	views ViewRecorder,
	log zerolog.Logger,
) ports.ArtworkService {
	return &artworkService{artworks: artworks, users: users, views: views, log: log}
}

func (s *artworkService) CreateArtwork(ctx context.Context, input ports.CreateArtworkInput) (*domain.Artwork, error) {
	now := time.Now().UTC()
	artwork := &domain.Artwork{
		ID:          newID(),
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Price:       input.Price,
		Category:    input.Category,
		ArtistID:    input.ArtistID,
		LikeCount:   0,
		ViewCount:   0,
		IsAvailable: domain.ArtworkAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.artworks.Create(ctx, artwork); err != nil {
		return nil, fmt.Errorf("create artwork: %w", err)
	}

	s.log.Info().Str("artwork", artwork.ID).Str("artist", input.ArtistID).Msg("artwork created")
	return artwork, nil
}

// GetArtwork returns the artwork joined with its artist and records a view.
// The view is counted regardless of whether the artist record still exists.
func (s *artworkService) GetArtwork(ctx context.Context, id string) (*ports.ArtworkWithArtist, error) {
	artwork, err := s.artworks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get artwork: %w", err)
	}

	s.views.Record(id)

	return &ports.ArtworkWithArtist{
		Artwork: *artwork,
		Artist:  s.lookupArtist(ctx, artwork.ArtistID),
	}, nil
}

func (s *artworkService) ListArtworks(ctx context.Context, filter ports.ListArtworksFilter) ([]ports.ArtworkWithArtist, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	artworks, err := s.artworks.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}

	out := make([]ports.ArtworkWithArtist, 0, len(artworks))
	for _, a := range artworks {
		out = append(out, ports.ArtworkWithArtist{
			Artwork: *a,
			Artist:  s.lookupArtist(ctx, a.ArtistID),
		})
	}
	return out, nil
}

func (s *artworkService) ListByArtist(ctx context.Context, artistID string) ([]*domain.Artwork, error) {
	artworks, err := s.artworks.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("list artist artworks: %w", err)
	}
	return artworks, nil
}

// lookupArtist resolves the weak artist reference; a missing or failed lookup
// yields nil rather than an error so reads degrade instead of failing.
func (s *artworkService) lookupArtist(ctx context.Context, artistID string) *domain.User {
	artist, err := s.users.FindByID(ctx, artistID)
	if err != nil {
		s.log.Debug().Err(err).Str("artist", artistID).Msg("artist join skipped")
		return nil
	}
	return artist
}
