package domain

import "time"

// Like is a directed edge from a user to an artwork. At most one exists per
// (user, artwork) pair, enforced at the application level rather than by the
// store.
type Like struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"userId" bson:"userId"`
	ArtworkID string    `json:"artworkId" bson:"artworkId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Follow is a directed edge between two users. At most one exists per ordered
// (follower, followee) pair; self-follow is rejected before lookup.
type Follow struct {
	ID         string    `json:"id" bson:"id"`
	FollowerID string    `json:"followerId" bson:"followerId"`
	FolloweeID string    `json:"followeeId" bson:"followeeId"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// Comment is immutable once created; there is no update or delete path.
type Comment struct {
	ID        string    `json:"id" bson:"id"`
	Content   string    `json:"content" bson:"content"`
	UserID    string    `json:"userId" bson:"userId"`
	ArtworkID string    `json:"artworkId" bson:"artworkId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
