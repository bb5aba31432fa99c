package ports

import (
	"context"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

// UserPatch carries the updatable profile fields. Nil means "leave as is",
// matching the PATCH semantics of the API.
type UserPatch struct {
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
	Bio             *string
	Specialization  *string
	IsArtist        *int
}

// UserRepository defines persistence operations for user accounts, including
// the denormalized follow counters and RB balance movements.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListArtists returns all users with isArtist=1.
	ListArtists(ctx context.Context) ([]*domain.User, error)
	// Update applies a partial update and returns the updated document.
	// Returns domain.ErrUserNotFound when no document matched.
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	// AdjustBalance adds delta (may be negative) to the user's rbBalance.
	AdjustBalance(ctx context.Context, id string, delta float64) error
	// IncrementFollowerCount adds delta to the user's followerCount.
	IncrementFollowerCount(ctx context.Context, id string, delta int) error
	// IncrementFollowingCount adds delta to the user's followingCount.
	IncrementFollowingCount(ctx context.Context, id string, delta int) error
}
