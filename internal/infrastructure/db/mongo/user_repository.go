package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ListArtists(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"isArtist": domain.RoleArtist})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var artists []*domain.User
	if err := cursor.All(ctx, &artists); err != nil {
		return nil, err
	}
	return artists, nil
}

// Update applies the non-nil patch fields with $set and returns the updated
// document. ErrUserNotFound when nothing matched.
func (r *UserRepository) Update(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.FirstName != nil {
		set["firstName"] = *patch.FirstName
	}
	if patch.LastName != nil {
		set["lastName"] = *patch.LastName
	}
	if patch.ProfileImageURL != nil {
		set["profileImageUrl"] = *patch.ProfileImageURL
	}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}
	if patch.Specialization != nil {
		set["specialization"] = *patch.Specialization
	}
	if patch.IsArtist != nil {
		set["isArtist"] = *patch.IsArtist
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) AdjustBalance(ctx context.Context, id string, delta float64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$inc": bson.M{"rbBalance": delta},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) IncrementFollowerCount(ctx context.Context, id string, delta int) error {
	return r.incrementCounter(ctx, id, "followerCount", delta)
}

func (r *UserRepository) IncrementFollowingCount(ctx context.Context, id string, delta int) error {
	return r.incrementCounter(ctx, id, "followingCount", delta)
}

// incrementCounter matches zero documents silently: counter maintenance on a
// missing user is a no-op, not an error.
func (r *UserRepository) incrementCounter(ctx context.Context, id, field string, delta int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$inc": bson.M{field: delta},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
	return err
}

// EnsureIndexes creates the lookup indexes on the users collection. The id
// index is unique; role lookups scan isArtist.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "isArtist", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
