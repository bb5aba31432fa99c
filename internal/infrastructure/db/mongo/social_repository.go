package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

const (
	collectionLikes    = "likes"
	collectionFollows  = "follows"
	collectionComments = "comments"
)

// LikeRepository stores like edges in the likes collection. Pair uniqueness
// is an application-level invariant enforced by the toggle's lock, not a
// stored constraint.
type LikeRepository struct {
	col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{col: db.Collection(collectionLikes)}
}

func (r *LikeRepository) Find(ctx context.Context, userID, artworkID string) (*domain.Like, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var l domain.Like
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "artworkId": artworkID}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *LikeRepository) Create(ctx context.Context, l *domain.Like) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, l)
	return err
}

func (r *LikeRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (r *LikeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "artworkId", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// FollowRepository stores follow edges in the follows collection.
type FollowRepository struct {
	col *mongo.Collection
}

func NewFollowRepository(db *mongo.Database) *FollowRepository {
	return &FollowRepository{col: db.Collection(collectionFollows)}
}

func (r *FollowRepository) Find(ctx context.Context, followerID, followeeID string) (*domain.Follow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.Follow
	err := r.col.FindOne(ctx, bson.M{"followerId": followerID, "followeeId": followeeID}).Decode(&f)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *FollowRepository) Create(ctx context.Context, f *domain.Follow) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, f)
	return err
}

func (r *FollowRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (r *FollowRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "followerId", Value: 1}, {Key: "followeeId", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// CommentRepository stores immutable comments.
type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(collectionComments)}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *CommentRepository) ListByArtwork(ctx context.Context, artworkID string) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"artworkId": artworkID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []*domain.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "artworkId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
