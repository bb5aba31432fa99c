package ports

import (
	"context"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

// PurchaseRepository stores the append-only purchase ledger.
type PurchaseRepository interface {
	Create(ctx context.Context, p *domain.Purchase) error
	ListByBuyer(ctx context.Context, buyerID string) ([]*domain.Purchase, error)
}

// TxRunner executes fn inside a single atomic unit of work. Every repository
// call made with the ctx passed to fn joins the same transaction; any error
// returned by fn rolls the whole unit back.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
