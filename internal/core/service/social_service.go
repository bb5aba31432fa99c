package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

// KeyLocker abstracts the per-key mutual exclusion scope (Redis). Acquire
// returns domain.ErrConflict when the key is already held; release is safe to
// call once the critical section is done.
type KeyLocker interface {
	Acquire(ctx context.Context, key string) (release func(ctx context.Context), err error)
}

type socialService struct {
	likes    ports.LikeRepository
	follows  ports.FollowRepository
	users    ports.UserRepository
	artworks ports.ArtworkRepository
	locks    KeyLocker
	log      zerolog.Logger
}

// NewSocialService returns a SocialService implementation.
func NewSocialService(
	likes ports.LikeRepository,
	follows ports.FollowRepository,
	users ports.UserRepository,
	artworks ports.ArtworkRepository,
	locks KeyLocker,
	log zerolog.Logger,
) ports.SocialService {
	return &socialService{
		likes:    likes,
		follows:  follows,
		users:    users,
		artworks: artworks,
		locks:    locks,
		log:      log,
	}
}

// ToggleLike flips the like edge for (userID, artworkID) and keeps
// Artwork.likeCount in step with the edge mutation.
func (s *socialService) ToggleLike(ctx context.Context, userID, artworkID string) (bool, error) {
	// 1. Serialize per pair so two concurrent toggles cannot both see "absent".
	release, err := s.locks.Acquire(ctx, "like:"+userID+":"+artworkID)
	if err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}
	defer release(ctx)

	existing, err := s.likes.Find(ctx, userID, artworkID)
	if err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}

	// 2. Present → remove the edge and decrement the counter.
	if existing != nil {
		if err := s.likes.Delete(ctx, existing.ID); err != nil {
			return false, fmt.Errorf("toggle like: %w", err)
		}
		s.bumpLikeCount(ctx, artworkID, -1)
		s.log.Debug().Str("user", userID).Str("artwork", artworkID).Msg("like removed")
		return false, nil
	}

	// 3. Absent → create the edge and increment the counter.
	like := &domain.Like{
		ID:        newID(),
		UserID:    userID,
		ArtworkID: artworkID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.likes.Create(ctx, like); err != nil {
		return false, fmt.Errorf("toggle like: %w", err)
	}
	s.bumpLikeCount(ctx, artworkID, 1)
	s.log.Debug().Str("user", userID).Str("artwork", artworkID).Msg("like created")
	return true, nil
}

// ToggleFollow flips the follow edge for (followerID, followeeID) and keeps
// both users' follow counters in step with the edge mutation.
func (s *socialService) ToggleFollow(ctx context.Context, followerID, followeeID string) (bool, error) {
	// Rejected before any lookup.
	if followerID == followeeID {
		return false, domain.ErrSelfFollow
	}

	release, err := s.locks.Acquire(ctx, "follow:"+followerID+":"+followeeID)
	if err != nil {
		return false, fmt.Errorf("toggle follow: %w", err)
	}
	defer release(ctx)

	existing, err := s.follows.Find(ctx, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("toggle follow: %w", err)
	}

	if existing != nil {
		if err := s.follows.Delete(ctx, existing.ID); err != nil {
			return false, fmt.Errorf("toggle follow: %w", err)
		}
		s.bumpFollowCounts(ctx, followerID, followeeID, -1)
		s.log.Debug().Str("follower", followerID).Str("followee", followeeID).Msg("follow removed")
		return false, nil
	}

	follow := &domain.Follow{
		ID:         newID(),
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.follows.Create(ctx, follow); err != nil {
		return false, fmt.Errorf("toggle follow: %w", err)
	}
	s.bumpFollowCounts(ctx, followerID, followeeID, 1)
	s.log.Debug().Str("follower", followerID).Str("followee", followeeID).Msg("follow created")
	return true, nil
}

// bumpLikeCount adjusts the denormalized counter after the edge mutation has
// committed. A failed counter write leaves documented drift, not a failed
// toggle.
func (s *socialService) bumpLikeCount(ctx context.Context, artworkID string, delta int) {
	if err := s.artworks.IncrementLikes(ctx, artworkID, delta); err != nil {
		s.log.Warn().Err(err).Str("artwork", artworkID).Int("delta", delta).Msg("likeCount update failed")
	}
}

// bumpFollowCounts adjusts followerCount on the followee and followingCount
// on the follower. Same drift contract as bumpLikeCount.
func (s *socialService) bumpFollowCounts(ctx context.Context, followerID, followeeID string, delta int) {
	if err := s.users.IncrementFollowerCount(ctx, followeeID, delta); err != nil {
		s.log.Warn().Err(err).Str("user", followeeID).Int("delta", delta).Msg("followerCount update failed")
	}
	if err := s.users.IncrementFollowingCount(ctx, followerID, delta); err != nil {
		s.log.Warn().Err(err).Str("user", followerID).Int("delta", delta).Msg("followingCount update failed")
	}
}
