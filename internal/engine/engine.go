package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
	"github.com/bbthechange/hangoutsBackend-sub008/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// maxAttempts bounds the read-modify-write cycle of every mutating
// operation. Each attempt starts with a fresh snapshot read, so there is no
// delay between attempts: on a single hot offer row waiting buys nothing.
const maxAttempts = 3

// Engine executes claim-ledger operations against an OfferStore. Correctness
// under concurrent writers comes entirely from the store's version-guarded
// writes: the engine decides in memory from a snapshot, writes conditionally
// on the version it read, and reloads on conflict. It holds no locks.
type Engine struct {
	store ports.OfferStore
	log   logger.Logger
}

func New(store ports.OfferStore, log logger.Logger) *Engine {
	return &Engine{store: store, log: log}
}

// Finalizer computes an offer's terminal state from its last collecting
// snapshot. It returns the completed offer and the claims to persist with
// their settled payload (price shares). It must not touch storage.
type Finalizer interface {
	Finalize(snap *domain.OfferSnapshot) (domain.Offer, []domain.Claim, error)
}

// Claim reserves one unit of the offer's capacity for userID. A user who
// already holds a claim gets it back unchanged.
func (e *Engine) Claim(ctx context.Context, hangoutID, offerID, userID, seatLabel string) (*domain.Claim, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		snap, err := e.store.Load(ctx, hangoutID, offerID)
		if err != nil {
			return nil, fmt.Errorf("load offer: %w", err)
		}
		if snap.Offer.Status != domain.OfferStatusCollecting {
			return nil, domain.ErrOfferNotCollecting
		}
		if existing := snap.ClaimFor(userID); existing != nil {
			c := *existing
			return &c, nil
		}

		pool, err := snap.Offer.Pool().TryReserve(1)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		offer := snap.Offer
		offer.ClaimedCount = pool.Claimed
		offer.UpdatedAt = now

		claim := &domain.Claim{
			HangoutID: hangoutID,
			OfferID:   offerID,
			UserID:    userID,
			SeatLabel: seatLabel,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err = e.store.InsertClaim(ctx, snap.Offer.Version, &offer, claim)
		if err == nil {
			return claim, nil
		}
		if !retryable(err) {
			return nil, fmt.Errorf("insert claim: %w", err)
		}

		lastErr = err
		e.log.Debug("claim write conflicted, retrying",
			logger.String("offer_id", offerID),
			logger.String("user_id", userID),
			logger.Int("attempt", attempt),
		)
	}

	return nil, exhausted("claim", lastErr)
}

// Unclaim releases userID's claim. Releasing a claim that does not exist is
// a no-op success, so clients can retry freely after a timeout.
func (e *Engine) Unclaim(ctx context.Context, hangoutID, offerID, userID string) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		snap, err := e.store.Load(ctx, hangoutID, offerID)
		if err != nil {
			return fmt.Errorf("load offer: %w", err)
		}
		if snap.Offer.Status != domain.OfferStatusCollecting {
			return domain.ErrOfferNotCollecting
		}
		if snap.ClaimFor(userID) == nil {
			return nil
		}

		pool := snap.Offer.Pool().Release(1)

		offer := snap.Offer
		offer.ClaimedCount = pool.Claimed
		offer.UpdatedAt = time.Now().UTC()

		err = e.store.RemoveClaim(ctx, snap.Offer.Version, &offer, userID)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return fmt.Errorf("remove claim: %w", err)
		}

		lastErr = err
		e.log.Debug("unclaim write conflicted, retrying",
			logger.String("offer_id", offerID),
			logger.String("user_id", userID),
			logger.Int("attempt", attempt),
		)
	}

	return exhausted("unclaim", lastErr)
}

// Update applies owner edits to a collecting offer. Shrinking capacity below
// the current claim count is rejected, never truncated.
func (e *Engine) Update(ctx context.Context, hangoutID, offerID, ownerID string, in domain.UpdateOfferInput) (*domain.Offer, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		snap, err := e.store.Load(ctx, hangoutID, offerID)
		if err != nil {
			return nil, fmt.Errorf("load offer: %w", err)
		}
		if snap.Offer.OwnerID != ownerID {
			return nil, domain.ErrNotOwner
		}
		if snap.Offer.Status != domain.OfferStatusCollecting {
			return nil, domain.ErrOfferNotCollecting
		}

		offer := snap.Offer
		if in.Capacity != nil {
			pool, err := offer.Pool().Resize(*in.Capacity)
			if err != nil {
				return nil, err
			}
			offer.Capacity = pool.Capacity
		}
		if in.Notes != nil {
			offer.Notes = *in.Notes
		}
		offer.UpdatedAt = time.Now().UTC()

		err = e.store.UpdateOffer(ctx, snap.Offer.Version, &offer)
		if err == nil {
			offer.Version = snap.Offer.Version + 1
			return &offer, nil
		}
		if !retryable(err) {
			return nil, fmt.Errorf("update offer: %w", err)
		}

		lastErr = err
		e.log.Debug("offer update conflicted, retrying",
			logger.String("offer_id", offerID),
			logger.Int("attempt", attempt),
		)
	}

	return nil, exhausted("update offer", lastErr)
}

// Complete moves the offer to its terminal completed state using the
// façade-supplied finalizer. Completing an already completed offer with an
// equivalent result is a success; any other attempt against a terminal offer
// fails. Claim rows survive completion as the historical slot holders.
func (e *Engine) Complete(ctx context.Context, hangoutID, offerID, ownerID string, fin Finalizer) (*domain.OfferSnapshot, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		snap, err := e.store.Load(ctx, hangoutID, offerID)
		if err != nil {
			return nil, fmt.Errorf("load offer: %w", err)
		}
		if snap.Offer.OwnerID != ownerID {
			return nil, domain.ErrNotOwner
		}

		final, shares, err := fin.Finalize(snap)
		if err != nil {
			return nil, err
		}

		if snap.Offer.Status == domain.OfferStatusCompleted {
			if equalTerminal(&snap.Offer, &final) {
				return snap, nil
			}
			return nil, domain.ErrOfferNotCollecting
		}
		if snap.Offer.Status == domain.OfferStatusCancelled {
			return nil, domain.ErrOfferNotCollecting
		}

		final.Status = domain.OfferStatusCompleted
		final.UpdatedAt = time.Now().UTC()

		err = e.store.CompleteOffer(ctx, snap.Offer.Version, &final, shares)
		if err == nil {
			final.Version = snap.Offer.Version + 1
			return &domain.OfferSnapshot{Offer: final, Claims: mergeShares(snap.Claims, shares)}, nil
		}
		if !retryable(err) {
			return nil, fmt.Errorf("complete offer: %w", err)
		}

		lastErr = err
		e.log.Debug("offer completion conflicted, retrying",
			logger.String("offer_id", offerID),
			logger.Int("attempt", attempt),
		)
	}

	return nil, exhausted("complete offer", lastErr)
}

// Cancel moves the offer to cancelled. Cancelling an offer that is already
// terminal is a no-op success.
func (e *Engine) Cancel(ctx context.Context, hangoutID, offerID, ownerID string) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		snap, err := e.store.Load(ctx, hangoutID, offerID)
		if err != nil {
			return fmt.Errorf("load offer: %w", err)
		}
		if snap.Offer.OwnerID != ownerID {
			return domain.ErrNotOwner
		}
		if snap.Offer.Status.Terminal() {
			return nil
		}

		offer := snap.Offer
		offer.Status = domain.OfferStatusCancelled
		offer.UpdatedAt = time.Now().UTC()

		err = e.store.CancelOffer(ctx, snap.Offer.Version, &offer)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return fmt.Errorf("cancel offer: %w", err)
		}

		lastErr = err
		e.log.Debug("offer cancel conflicted, retrying",
			logger.String("offer_id", offerID),
			logger.Int("attempt", attempt),
		)
	}

	return exhausted("cancel offer", lastErr)
}

// retryable separates "reload and try again" failures from business-rule
// rejections. Unknown storage errors are treated as transient; that is safe
// because every engine write is idempotent on replay.
func retryable(err error) bool {
	switch {
	case errors.Is(err, domain.ErrVersionConflict),
		errors.Is(err, domain.ErrAlreadyClaimed):
		return true
	case errors.Is(err, domain.ErrOfferNotFound),
		errors.Is(err, domain.ErrHangoutNotFound),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrOfferNotCollecting),
		errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrValidation):
		return false
	default:
		return true
	}
}

func exhausted(op string, lastErr error) error {
	if errors.Is(lastErr, domain.ErrVersionConflict) {
		return fmt.Errorf("%s: retry budget exhausted: %w", op, lastErr)
	}
	return fmt.Errorf("%s: retry budget exhausted: %w", op, errors.Join(domain.ErrVersionConflict, lastErr))
}

func equalTerminal(stored, computed *domain.Offer) bool {
	return stored.ClaimedCount == computed.ClaimedCount &&
		equalIntPtr(stored.FinalTicketCount, computed.FinalTicketCount) &&
		equalInt64Ptr(stored.FinalTotalCents, computed.FinalTotalCents)
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalInt64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func mergeShares(claims, shares []domain.Claim) []domain.Claim {
	if len(shares) == 0 {
		return claims
	}
	byUser := make(map[string]*domain.Claim, len(shares))
	for i := range shares {
		byUser[shares[i].UserID] = &shares[i]
	}
	merged := make([]domain.Claim, len(claims))
	for i, c := range claims {
		if s, ok := byUser[c.UserID]; ok {
			c.ShareCents = s.ShareCents
			c.UpdatedAt = s.UpdatedAt
		}
		merged[i] = c
	}
	return merged
}
