package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User
	createErr error
	adjustErr error
	// follower/following bumps recorded per user id, net of deltas
	followerBumps  map[string]int
	followingBumps map[string]int
	followerErr    error
	followingErr   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:          make(map[string]*domain.User),
		followerBumps:  make(map[string]int),
		followingBumps: make(map[string]int),
	}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) ListArtists(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.IsArtist == domain.RoleArtist {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.ProfileImageURL != nil {
		u.ProfileImageURL = *patch.ProfileImageURL
	}
	if patch.Bio != nil {
		u.Bio = *patch.Bio
	}
	if patch.Specialization != nil {
		u.Specialization = *patch.Specialization
	}
	if patch.IsArtist != nil {
		u.IsArtist = *patch.IsArtist
	}
	u.UpdatedAt = time.Now().UTC()
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) AdjustBalance(_ context.Context, id string, delta float64) error {
	if r.adjustErr != nil {
		return r.adjustErr
	}
	if u, ok := r.users[id]; ok {
		u.RBBalance += delta
	}
	return nil
}

func (r *stubUserRepo) IncrementFollowerCount(_ context.Context, id string, delta int) error {
	if r.followerErr != nil {
		return r.followerErr
	}
	r.followerBumps[id] += delta
	return nil
}

func (r *stubUserRepo) IncrementFollowingCount(_ context.Context, id string, delta int) error {
	if r.followingErr != nil {
		return r.followingErr
	}
	r.followingBumps[id] += delta
	return nil
}

type stubArtworkRepo struct {
	artworks    map[string]*domain.Artwork
	createErr   error
	likeErr     error
	markSoldErr error
	likeDeltas  map[string]int
	viewDeltas  map[string]int
}

func newStubArtworkRepo() *stubArtworkRepo {
	return &stubArtworkRepo{
		artworks:   make(map[string]*domain.Artwork),
		likeDeltas: make(map[string]int),
		viewDeltas: make(map[string]int),
	}
}

func (r *stubArtworkRepo) Create(_ context.Context, a *domain.Artwork) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *a
	r.artworks[a.ID] = &clone
	return nil
}

func (r *stubArtworkRepo) FindByID(_ context.Context, id string) (*domain.Artwork, error) {
	a, ok := r.artworks[id]
	if !ok {
		return nil, domain.ErrArtworkNotFound
	}
	clone := *a
	return &clone, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubArtworkRepo) List(_ context.Context, f ports.ListArtworksFilter) ([]*domain.Artwork, error) {
	var matched []*domain.Artwork
	for _, a := range r.artworks {
		if f.Category != "" && f.Category != "all" && a.Category != f.Category {
			continue
		}
		clone := *a
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if f.Offset > len(matched) {
		return nil, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func (r *stubArtworkRepo) ListByArtist(_ context.Context, artistID string) ([]*domain.Artwork, error) {
	var out []*domain.Artwork
	for _, a := range r.artworks {
		if a.ArtistID == artistID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubArtworkRepo) MarkSold(_ context.Context, id string) error {
	if r.markSoldErr != nil {
		return r.markSoldErr
	}
	a, ok := r.artworks[id]
	if !ok || a.IsAvailable != domain.ArtworkAvailable {
		return domain.ErrArtworkUnavailable
	}
	a.IsAvailable = domain.ArtworkSold
	return nil
}

func (r *stubArtworkRepo) IncrementLikes(_ context.Context, id string, delta int) error {
	if r.likeErr != nil {
		return r.likeErr
	}
	r.likeDeltas[id] += delta
	if a, ok := r.artworks[id]; ok {
		a.LikeCount += delta
	}
	return nil
}

func (r *stubArtworkRepo) IncrementViews(_ context.Context, id string, delta int) error {
	r.viewDeltas[id] += delta
	if a, ok := r.artworks[id]; ok {
		a.ViewCount += delta
	}
	return nil
}

type stubLikeRepo struct {
	likes     map[string]*domain.Like // keyed by userID+"/"+artworkID
	createErr error
	deleteErr error
}

func newStubLikeRepo() *stubLikeRepo {
	return &stubLikeRepo{likes: make(map[string]*domain.Like)}
}

func (r *stubLikeRepo) Find(_ context.Context, userID, artworkID string) (*domain.Like, error) {
	l, ok := r.likes[userID+"/"+artworkID]
	if !ok {
		return nil, nil
	}
	clone := *l
	return &clone, nil
}

func (r *stubLikeRepo) Create(_ context.Context, l *domain.Like) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *l
	r.likes[l.UserID+"/"+l.ArtworkID] = &clone
	return nil
}

func (r *stubLikeRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for key, l := range r.likes {
		if l.ID == id {
			delete(r.likes, key)
			return nil
		}
	}
	return nil
}

type stubFollowRepo struct {
	follows   map[string]*domain.Follow // keyed by followerID+"/"+followeeID
	createErr error
}

func newStubFollowRepo() *stubFollowRepo {
	return &stubFollowRepo{follows: make(map[string]*domain.Follow)}
}

func (r *stubFollowRepo) Find(_ context.Context, followerID, followeeID string) (*domain.Follow, error) {
	f, ok := r.follows[followerID+"/"+followeeID]
	if !ok {
		return nil, nil
	}
	clone := *f
	return &clone, nil
}

func (r *stubFollowRepo) Create(_ context.Context, f *domain.Follow) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *f
	r.follows[f.FollowerID+"/"+f.FolloweeID] = &clone
	return nil
}

func (r *stubFollowRepo) Delete(_ context.Context, id string) error {
	for key, f := range r.follows {
		if f.ID == id {
			delete(r.follows, key)
			return nil
		}
	}
	return nil
}

type stubCommentRepo struct {
	comments  []*domain.Comment
	createErr error
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *c
	r.comments = append(r.comments, &clone)
	return nil
}

func (r *stubCommentRepo) ListByArtwork(_ context.Context, artworkID string) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.ArtworkID == artworkID {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type stubPurchaseRepo struct {
	purchases []*domain.Purchase
	createErr error
}

func (r *stubPurchaseRepo) Create(_ context.Context, p *domain.Purchase) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *p
	r.purchases = append(r.purchases, &clone)
	return nil
}

func (r *stubPurchaseRepo) ListByBuyer(_ context.Context, buyerID string) ([]*domain.Purchase, error) {
	var out []*domain.Purchase
	for _, p := range r.purchases {
		if p.BuyerID == buyerID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Lock, transaction, and view-recorder stubs
// ---------------------------------------------------------------------------

// stubLocker records acquired keys. Keys in held yield domain.ErrConflict,
// mirroring the behavior of the Redis-backed mutex.
type stubLocker struct {
	held     map[string]bool
	acquired []string
	released int
}

func newStubLocker() *stubLocker {
	return &stubLocker{held: make(map[string]bool)}
}

func (l *stubLocker) Acquire(_ context.Context, key string) (func(ctx context.Context), error) {
	if l.held[key] {
		return nil, domain.ErrConflict
	}
	l.acquired = append(l.acquired, key)
	return func(context.Context) { l.released++ }, nil
}

// stubTxRunner runs fn directly. The stub repos do not roll back, so failure
// tests assert on the returned error rather than on store contents.
type stubTxRunner struct {
	calls int
	err   error
}

func (t *stubTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if t.err != nil {
		return t.err
	}
	t.calls++
	return fn(ctx)
}

type stubViewRecorder struct {
	recorded []string
}

func (v *stubViewRecorder) Record(artworkID string) {
	v.recorded = append(v.recorded, artworkID)
}

// ---------------------------------------------------------------------------
// Seed helpers
// ---------------------------------------------------------------------------

func seedUser(repo *stubUserRepo, id string, balance float64) *domain.User {
	u := &domain.User{
		ID:        id,
		Email:     id + "@example.com",
		FirstName: "Frida",
		RBBalance: balance,
		IsArtist:  domain.RoleArtist,
		CreatedAt: time.Now().UTC(),
	}
	repo.users[id] = u
	return u
}

func seedArtwork(repo *stubArtworkRepo, id, artistID string, price float64) *domain.Artwork {
	a := &domain.Artwork{
		ID:          id,
		Title:       "Atardecer en El Paso",
		ImageURL:    "https://cdn.example.com/" + id + ".jpg",
		Price:       price,
		Category:    "painting",
		ArtistID:    artistID,
		IsAvailable: domain.ArtworkAvailable,
		CreatedAt:   time.Now().UTC(),
	}
	repo.artworks[id] = a
	return a
}
