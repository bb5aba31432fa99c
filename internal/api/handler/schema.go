package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createUserRequest struct {
	Email           string `json:"email" validate:"omitempty,email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
	Bio             string `json:"bio"`
	Specialization  string `json:"specialization"`
	IsArtist        int    `json:"isArtist" validate:"oneof=0 1"`
}

// updateUserRequest uses pointers so absent fields are left untouched
// (PATCH semantics).
type updateUserRequest struct {
	Email           *string `json:"email" validate:"omitempty,email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
	Bio             *string `json:"bio"`
	Specialization  *string `json:"specialization"`
	IsArtist        *int    `json:"isArtist" validate:"omitempty,oneof=0 1"`
}

type createArtworkRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// --- Response types ---

type toggleLikeResponse struct {
	IsLiked bool `json:"isLiked"`
}

type toggleFollowResponse struct {
	IsFollowing bool `json:"isFollowing"`
}
