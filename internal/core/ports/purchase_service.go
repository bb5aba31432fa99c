package ports

import (
	"context"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

// PurchaseService executes the ownership-transfer workflow: precondition
// checks, ledger entry, availability flip, and balance movement between buyer
// and artist.
type PurchaseService interface {
	Purchase(ctx context.Context, buyerID, artworkID string) (*domain.Purchase, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*domain.Purchase, error)
}
