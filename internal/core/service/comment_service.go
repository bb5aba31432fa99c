package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

type commentService struct {
	comments ports.CommentRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

// NewCommentService returns a CommentService implementation.
func NewCommentService(comments ports.CommentRepository, users ports.UserRepository, log zerolog.Logger) ports.CommentService {
	return &commentService{comments: comments, users: users, log: log}
}

func (s *commentService) AddComment(ctx context.Context, userID, artworkID, content string) (*domain.Comment, error) {
	comment := &domain.Comment{
		ID:        newID(),
		Content:   content,
		UserID:    userID,
		ArtworkID: artworkID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.log.Debug().Str("comment", comment.ID).Str("artwork", artworkID).Msg("comment created")
	return comment, nil
}

// ListComments returns the artwork's comments newest-first, each joined with
// its author. A missing author leaves the user field empty.
func (s *commentService) ListComments(ctx context.Context, artworkID string) ([]ports.CommentWithUser, error) {
	comments, err := s.comments.ListByArtwork(ctx, artworkID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	out := make([]ports.CommentWithUser, 0, len(comments))
	for _, c := range comments {
		item := ports.CommentWithUser{Comment: *c}
		if user, err := s.users.FindByID(ctx, c.UserID); err == nil {
			item.User = user
		}
		out = append(out, item)
	}
	return out, nil
}
