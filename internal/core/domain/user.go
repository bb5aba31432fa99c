package domain

import "time"

// Role flags are stored as 0/1 integers, mirroring the marketplace documents.
const (
	RoleBuyer  = 0
	RoleArtist = 1
)

// DefaultBalance is the RB balance granted to every new account.
const DefaultBalance = 1250.00

// User is a marketplace account. Artists and buyers share the same shape;
// IsArtist distinguishes them. FollowerCount and FollowingCount are
// denormalized aggregates over the follows collection.
type User struct {
	ID              string    `json:"id" bson:"id"`
	Email           string    `json:"email,omitempty" bson:"email,omitempty"`
	FirstName       string    `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty" bson:"lastName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty" bson:"profileImageUrl,omitempty"`
	RBBalance       float64   `json:"rbBalance" bson:"rbBalance"`
	Bio             string    `json:"bio,omitempty" bson:"bio,omitempty"`
	Specialization  string    `json:"specialization,omitempty" bson:"specialization,omitempty"`
	IsArtist        int       `json:"isArtist" bson:"isArtist"`
	IsAdmin         int       `json:"isAdmin" bson:"isAdmin"`
	FollowerCount   int       `json:"followerCount" bson:"followerCount"`
	FollowingCount  int       `json:"followingCount" bson:"followingCount"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}
