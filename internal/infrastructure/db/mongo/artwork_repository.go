package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

const collectionArtworks = "artworks"

type ArtworkRepository struct {
	col *mongo.Collection
}

func NewArtworkRepository(db *mongo.Database) *ArtworkRepository {
	return &ArtworkRepository{col: db.Collection(collectionArtworks)}
}

func (r *ArtworkRepository) Create(ctx context.Context, a *domain.Artwork) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *ArtworkRepository) FindByID(ctx context.Context, id string) (*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Artwork
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtworkNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List returns artworks newest-first, optionally filtered by category.
func (r *ArtworkRepository) List(ctx context.Context, filter ports.ListArtworksFilter) ([]*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" && filter.Category != "all" {
		query["category"] = filter.Category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var artworks []*domain.Artwork
	if err := cursor.All(ctx, &artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

func (r *ArtworkRepository) ListByArtist(ctx context.Context, artistID string) ([]*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"artistId": artistID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var artworks []*domain.Artwork
	if err := cursor.All(ctx, &artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

// MarkSold flips availability with a compare-and-swap filter: the update only
// matches while the artwork is still available, so a lost race surfaces as
// ErrArtworkUnavailable instead of a second sale.
func (r *ArtworkRepository) MarkSold(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"id": id, "isAvailable": domain.ArtworkAvailable},
		bson.M{"$set": bson.M{
			"isAvailable": domain.ArtworkSold,
			"updatedAt":   time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrArtworkUnavailable
	}
	return nil
}

func (r *ArtworkRepository) IncrementLikes(ctx context.Context, id string, delta int) error {
	return r.incrementCounter(ctx, id, "likeCount", delta)
}

func (r *ArtworkRepository) IncrementViews(ctx context.Context, id string, delta int) error {
	return r.incrementCounter(ctx, id, "viewCount", delta)
}

// incrementCounter matches zero documents silently: counter maintenance on a
// missing artwork is a no-op, not an error.
func (r *ArtworkRepository) incrementCounter(ctx context.Context, id, field string, delta int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$inc": bson.M{field: delta},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
	return err
}

// EnsureIndexes creates the lookup indexes on the artworks collection.
func (r *ArtworkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "artistId", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
