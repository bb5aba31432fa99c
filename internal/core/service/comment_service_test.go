package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

func TestCommentService_Add_SetsFields(t *testing.T) {
	comments := &stubCommentRepo{}
	svc := NewCommentService(comments, newStubUserRepo(), discardLogger)

	comment, err := svc.AddComment(context.Background(), "user-1", "art-1", "Qué belleza")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if comment.ID == "" {
		t.Error("expected a generated id")
	}
	if comment.UserID != "user-1" || comment.ArtworkID != "art-1" {
		t.Errorf("unexpected references: %+v", comment)
	}
	if comment.Content != "Qué belleza" {
		t.Errorf("unexpected content: %q", comment.Content)
	}
	if comment.CreatedAt.IsZero() {
		t.Error("CreatedAt must be set")
	}
	if len(comments.comments) != 1 {
		t.Errorf("expected 1 stored comment, got %d", len(comments.comments))
	}
}

func TestCommentService_Add_RepoError(t *testing.T) {
	comments := &stubCommentRepo{createErr: errors.New("db unavailable")}
	svc := NewCommentService(comments, newStubUserRepo(), discardLogger)

	_, err := svc.AddComment(context.Background(), "user-1", "art-1", "hola")
	if err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

func TestCommentService_List_JoinsUsersNewestFirst(t *testing.T) {
	comments := &stubCommentRepo{}
	users := newStubUserRepo()
	svc := NewCommentService(comments, users, discardLogger)

	seedUser(users, "user-1", 100)
	now := time.Now().UTC()
	comments.comments = []*domain.Comment{
		{ID: "c-old", UserID: "user-1", ArtworkID: "art-1", Content: "first", CreatedAt: now.Add(-time.Hour)},
		{ID: "c-new", UserID: "user-1", ArtworkID: "art-1", Content: "second", CreatedAt: now},
		{ID: "c-other", UserID: "user-1", ArtworkID: "art-2", Content: "elsewhere", CreatedAt: now},
	}

	list, err := svc.ListComments(context.Background(), "art-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 comments for art-1, got %d", len(list))
	}
	if list[0].ID != "c-new" {
		t.Errorf("expected newest first, got %s", list[0].ID)
	}
	if list[0].User == nil || list[0].User.ID != "user-1" {
		t.Errorf("expected joined author, got %+v", list[0].User)
	}
}

func TestCommentService_List_MissingAuthorDegradesToNil(t *testing.T) {
	comments := &stubCommentRepo{}
	svc := NewCommentService(comments, newStubUserRepo(), discardLogger)

	comments.comments = []*domain.Comment{
		{ID: "c-1", UserID: "deleted-user", ArtworkID: "art-1", Content: "hola", CreatedAt: time.Now().UTC()},
	}

	list, err := svc.ListComments(context.Background(), "art-1")
	if err != nil {
		t.Fatalf("a dangling author reference must not fail the read: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(list))
	}
	if list[0].User != nil {
		t.Errorf("expected nil author, got %+v", list[0].User)
	}
}
