package ports

import (
	"context"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

// SocialService implements the like/follow toggles. The returned bool is the
// resulting state: true when the relation now exists, false when it was
// removed.
type SocialService interface {
	ToggleLike(ctx context.Context, userID, artworkID string) (bool, error)
	ToggleFollow(ctx context.Context, followerID, followeeID string) (bool, error)
}

// CommentWithUser is the list view joining the commenting user. User is nil
// when the referenced account no longer exists.
type CommentWithUser struct {
	domain.Comment
	User *domain.User `json:"user,omitempty"`
}

// CommentService defines comment operations on artworks.
type CommentService interface {
	AddComment(ctx context.Context, userID, artworkID, content string) (*domain.Comment, error)
	ListComments(ctx context.Context, artworkID string) ([]CommentWithUser, error)
}
