package ports

import (
	"context"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

// CreateUserInput carries the caller-supplied profile fields. Balance, role
// flags, and counters are server-assigned.
type CreateUserInput struct {
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
	Bio             string
	Specialization  string
	IsArtist        int
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListArtists(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
}
