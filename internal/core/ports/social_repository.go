package ports

import (
	"context"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

// LikeRepository stores like edges. Lookups are by (user, artwork) pair.
type LikeRepository interface {
	// Find returns (nil, nil) when no edge exists for the pair.
	Find(ctx context.Context, userID, artworkID string) (*domain.Like, error)
	Create(ctx context.Context, l *domain.Like) error
	Delete(ctx context.Context, id string) error
}

// FollowRepository stores follow edges. Lookups are by ordered
// (follower, followee) pair.
type FollowRepository interface {
	// Find returns (nil, nil) when no edge exists for the pair.
	Find(ctx context.Context, followerID, followeeID string) (*domain.Follow, error)
	Create(ctx context.Context, f *domain.Follow) error
	Delete(ctx context.Context, id string) error
}

// CommentRepository stores immutable comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	// ListByArtwork returns the artwork's comments, newest first.
	ListByArtwork(ctx context.Context, artworkID string) ([]*domain.Comment, error)
}
