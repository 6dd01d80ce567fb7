package ports

import (
	"context"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
)

// OfferStore persists offers and their claims. An offer and its claims live
// in one logical partition: Load reads them in a single transaction, and
// every mutating method applies all of its row changes in one transaction,
// guarded by the offer version read earlier. A stale expectedVersion yields
// domain.ErrVersionConflict and no partial write.
type OfferStore interface {
	CreateOffer(ctx context.Context, o *domain.Offer) error
	Load(ctx context.Context, hangoutID, offerID string) (*domain.OfferSnapshot, error)
	ListByHangout(ctx context.Context, hangoutID string, kind domain.OfferKind) ([]domain.OfferSnapshot, error)

	// InsertClaim writes the new claim and the offer's recomputed claim
	// count in one transaction.
	InsertClaim(ctx context.Context, expectedVersion int64, o *domain.Offer, c *domain.Claim) error

	// RemoveClaim deletes userID's claim and writes the recomputed claim
	// count in one transaction.
	RemoveClaim(ctx context.Context, expectedVersion int64, o *domain.Offer, userID string) error

	// UpdateOffer persists owner edits (capacity, notes).
	UpdateOffer(ctx context.Context, expectedVersion int64, o *domain.Offer) error

	// CompleteOffer marks the offer terminal and stores per-claim shares.
	CompleteOffer(ctx context.Context, expectedVersion int64, o *domain.Offer, shares []domain.Claim) error

	// CancelOffer marks the offer cancelled. Claim rows stay as history.
	CancelOffer(ctx context.Context, expectedVersion int64, o *domain.Offer) error

	// CancelStale cancels collecting offers whose hangout start time has
	// passed and returns them.
	CancelStale(ctx context.Context) ([]domain.Offer, error)
}
