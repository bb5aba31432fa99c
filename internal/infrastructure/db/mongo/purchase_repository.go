package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

const collectionPurchases = "purchases"

// PurchaseRepository stores the append-only purchase ledger. There is no
// update or delete path.
type PurchaseRepository struct {
	col *mongo.Collection
}

func NewPurchaseRepository(db *mongo.Database) *PurchaseRepository {
	return &PurchaseRepository{col: db.Collection(collectionPurchases)}
}

func (r *PurchaseRepository) Create(ctx context.Context, p *domain.Purchase) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PurchaseRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*domain.Purchase, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"buyerId": buyerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var purchases []*domain.Purchase
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *PurchaseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "buyerId", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
