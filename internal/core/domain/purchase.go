package domain

import "time"

// Purchase is an append-only ledger entry. Price is a snapshot of the artwork
// price at transaction time, not a live reference.
type Purchase struct {
	ID        string    `json:"id" bson:"id"`
	BuyerID   string    `json:"buyerId" bson:"buyerId"`
	ArtworkID string    `json:"artworkId" bson:"artworkId"`
	Price     float64   `json:"price" bson:"price"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
