package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

type purchaseService struct {
	purchases ports.PurchaseRepository
	artworks  ports.ArtworkRepository
	users     ports.UserRepository
	tx        ports.TxRunner
	locks     KeyLocker
	log       zerolog.Logger
}

// NewPurchaseService returns a PurchaseService implementation.
func NewPurchaseService(
	purchases ports.PurchaseRepository,
	artworks ports.ArtworkRepository,
	users ports.UserRepository,
	tx ports.TxRunner,
	locks KeyLocker,
	log zerolog.Logger,
) ports.PurchaseService {
	return &purchaseService{
		purchases: purchases,
		artworks:  artworks,
		users:     users,
		tx:        tx,
		locks:     locks,
		log:       log,
	}
}

// Purchase transfers ownership of an artwork to the buyer: it records the
// ledger entry, marks the artwork sold, debits the buyer, and credits the
// artist. Preconditions fail fast in order; the mutation phase is one atomic
// unit and a failed sub-step rolls everything back.
func (s *purchaseService) Purchase(ctx context.Context, buyerID, artworkID string) (*domain.Purchase, error) {
	// 1. One purchase at a time per artwork.
	release, err := s.locks.Acquire(ctx, "purchase:"+artworkID)
	if err != nil {
		return nil, fmt.Errorf("purchase: %w", err)
	}
	defer release(ctx)

	// 2. Preconditions, in order, fail-fast.
	artwork, err := s.artworks.FindByID(ctx, artworkID)
	if err != nil {
		return nil, fmt.Errorf("purchase: %w", err)
	}
	if artwork.IsAvailable == domain.ArtworkSold {
		return nil, domain.ErrArtworkUnavailable
	}
	if artwork.ArtistID == buyerID {
		return nil, domain.ErrSelfPurchase
	}

	buyer, err := s.users.FindByID(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("purchase: buyer: %w", err)
	}
	if buyer.RBBalance < artwork.Price {
		return nil, domain.ErrInsufficientBalance
	}

	purchase := &domain.Purchase{
		ID:        newID(),
		BuyerID:   buyerID,
		ArtworkID: artworkID,
		Price:     artwork.Price, // snapshot, not a live reference
		CreatedAt: time.Now().UTC(),
	}

	// 3. Ledger entry, availability flip, and balance movement commit or roll
	// back together.
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.purchases.Create(txCtx, purchase); err != nil {
			return fmt.Errorf("create purchase: %w", err)
		}
		if err := s.artworks.MarkSold(txCtx, artworkID); err != nil {
			return fmt.Errorf("mark sold: %w", err)
		}
		if err := s.users.AdjustBalance(txCtx, buyerID, -artwork.Price); err != nil {
			return fmt.Errorf("debit buyer: %w", err)
		}

		// The artist is a weak reference. When the record is gone the credit
		// is dropped; the buyer's debit stands.
		artist, err := s.users.FindByID(txCtx, artwork.ArtistID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				s.log.Warn().Str("artist", artwork.ArtistID).Str("artwork", artworkID).
					Msg("artist record missing, credit dropped")
				return nil
			}
			return fmt.Errorf("find artist: %w", err)
		}
		if err := s.users.AdjustBalance(txCtx, artist.ID, artwork.Price); err != nil {
			return fmt.Errorf("credit artist: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("purchase: %w", err)
	}

	s.log.Info().
		Str("purchase", purchase.ID).
		Str("buyer", buyerID).
		Str("artwork", artworkID).
		Float64("price", purchase.Price).
		Msg("purchase completed")

	return purchase, nil
}

func (s *purchaseService) ListByBuyer(ctx context.Context, buyerID string) ([]*domain.Purchase, error) {
	purchases, err := s.purchases.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return purchases, nil
}
