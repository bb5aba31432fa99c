package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

type userService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

// NewUserService returns a UserService implementation.
func NewUserService(users ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{users: users, log: log}
}

// CreateUser creates an account with the server-assigned defaults: the RB
// balance grant, zeroed counters, and no admin flag.
func (s *userService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	now := time.Now().UTC()
	user := &domain.User{
		ID:              newID(),
		Email:           input.Email,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		ProfileImageURL: input.ProfileImageURL,
		RBBalance:       domain.DefaultBalance,
		Bio:             input.Bio,
		Specialization:  input.Specialization,
		IsArtist:        input.IsArtist,
		IsAdmin:         0,
		FollowerCount:   0,
		FollowingCount:  0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("user", user.ID).Int("is_artist", user.IsArtist).Msg("user created")
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) ListArtists(ctx context.Context) ([]*domain.User, error) {
	artists, err := s.users.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
