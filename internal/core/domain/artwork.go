package domain

import "time"

// Artwork availability states. An artwork transitions available→sold exactly
// once, via a purchase, and never reverts.
const (
	ArtworkSold      = 0
	ArtworkAvailable = 1
)

// Artwork is a listed piece. ArtistID is a weak reference to the creating
// user. LikeCount and ViewCount are denormalized counters maintained
// alongside the likes collection and detail fetches respectively.
type Artwork struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string    `json:"imageUrl" bson:"imageUrl"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	ArtistID    string    `json:"artistId" bson:"artistId"`
	LikeCount   int       `json:"likeCount" bson:"likeCount"`
	ViewCount   int       `json:"viewCount" bson:"viewCount"`
	IsAvailable int       `json:"isAvailable" bson:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
