package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestEngine(t *testing.T) (*Engine, *memStore) {
	t.Helper()
	store := newMemStore()
	return New(store, newTestLogger(t)), store
}

func seedOffer(t *testing.T, store *memStore, capacity int) domain.Offer {
	t.Helper()
	o := domain.Offer{
		ID:        "o1",
		HangoutID: "h1",
		OwnerID:   "owner",
		Kind:      domain.OfferKindReservation,
		Status:    domain.OfferStatusCollecting,
		Capacity:  capacity,
		Version:   1,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.CreateOffer(context.Background(), &o))
	return o
}

// testFinalizer locks in a ticket count and total price and splits the total
// evenly across claims.
type testFinalizer struct {
	ticketCount int
	totalCents  int64
}

func (f testFinalizer) Finalize(snap *domain.OfferSnapshot) (domain.Offer, []domain.Claim, error) {
	o := snap.Offer
	tickets := f.ticketCount
	total := f.totalCents
	o.FinalTicketCount = &tickets
	o.FinalTotalCents = &total

	shares := make([]domain.Claim, len(snap.Claims))
	for i, c := range snap.Claims {
		share := total / int64(len(snap.Claims))
		c.ShareCents = &share
		shares[i] = c
	}
	return o, shares, nil
}

func TestEngine_Claim_Success(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)

	claim, err := eng.Claim(context.Background(), "h1", "o1", "u1", "")

	require.NoError(t, err)
	assert.Equal(t, "u1", claim.UserID)
	assert.Equal(t, "o1", claim.OfferID)

	snap := store.snapshot("h1", "o1")
	assert.Equal(t, 1, snap.Offer.ClaimedCount)
	assert.Equal(t, int64(2), snap.Offer.Version)
	assert.Len(t, snap.Claims, 1)
}

func TestEngine_Claim_Idempotent(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)

	first, err := eng.Claim(context.Background(), "h1", "o1", "u1", "")
	require.NoError(t, err)

	second, err := eng.Claim(context.Background(), "h1", "o1", "u1", "")
	require.NoError(t, err)

	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	snap := store.snapshot("h1", "o1")
	assert.Equal(t, 1, snap.Offer.ClaimedCount)
	assert.Len(t, snap.Claims, 1)
}

func TestEngine_Claim_CapacityExceeded(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 1)

	_, err := eng.Claim(context.Background(), "h1", "o1", "u1", "")
	require.NoError(t, err)

	_, err = eng.Claim(context.Background(), "h1", "o1", "u2", "")
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	snap := store.snapshot("h1", "o1")
	assert.Equal(t, 1, snap.Offer.ClaimedCount)
}

func TestEngine_Claim_OfferNotFound(t *testing.T) {
	eng, _ := newTestEngine(t)

	_, err := eng.Claim(context.Background(), "h1", "missing", "u1", "")
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)
}

func TestEngine_Claim_NotCollecting(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)

	require.NoError(t, eng.Cancel(context.Background(), "h1", "o1", "owner"))

	_, err := eng.Claim(context.Background(), "h1", "o1", "u1", "")
	assert.ErrorIs(t, err, domain.ErrOfferNotCollecting)
}

func TestEngine_Claim_RetriesOnConflict(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)
	store.conflictNext = 1

	claim, err := eng.Claim(context.Background(), "h1", "o1", "u1", "")

	require.NoError(t, err)
	assert.Equal(t, "u1", claim.UserID)
	assert.Equal(t, 1, store.snapshot("h1", "o1").Offer.ClaimedCount)
}

func TestEngine_Claim_RetryBudgetExhausted(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)
	store.conflictNext = maxAttempts

	_, err := eng.Claim(context.Background(), "h1", "o1", "u1", "")

	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	assert.Equal(t, 0, store.snapshot("h1", "o1").Offer.ClaimedCount)
}

func TestEngine_Unclaim_ReturnsCapacity(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 1)

	_, err := eng.Claim(context.Background(), "h1", "o1", "u1", "")
	require.NoError(t, err)

	require.NoError(t, eng.Unclaim(context.Background(), "h1", "o1", "u1"))

	snap := store.snapshot("h1", "o1")
	assert.Equal(t, 0, snap.Offer.ClaimedCount)
	assert.Empty(t, snap.Claims)

	// the freed slot is claimable again
	_, err = eng.Claim(context.Background(), "h1", "o1", "u2", "")
	require.NoError(t, err)
}

func TestEngine_Unclaim_NoClaimIsNoop(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)

	err := eng.Unclaim(context.Background(), "h1", "o1", "u1")

	require.NoError(t, err)
	snap := store.snapshot("h1", "o1")
	assert.Equal(t, 0, snap.Offer.ClaimedCount)
	assert.Equal(t, int64(1), snap.Offer.Version)
}

func TestEngine_Unclaim_NotCollecting(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)

	_, err := eng.Claim(context.Background(), "h1", "o1", "u1", "")
	require.NoError(t, err)
	_, err = eng.Complete(context.Background(), "h1", "o1", "owner", testFinalizer{ticketCount: 1, totalCents: 100})
	require.NoError(t, err)

	err = eng.Unclaim(context.Background(), "h1", "o1", "u1")
	assert.ErrorIs(t, err, domain.ErrOfferNotCollecting)
}

func TestEngine_ClaimUnclaimScenario(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)
	ctx := context.Background()

	_, err := eng.Claim(ctx, "h1", "o1", "userA", "")
	require.NoError(t, err)
	assert.Equal(t, 1, store.snapshot("h1", "o1").Offer.ClaimedCount)

	_, err = eng.Claim(ctx, "h1", "o1", "userB", "")
	require.NoError(t, err)
	assert.Equal(t, 2, store.snapshot("h1", "o1").Offer.ClaimedCount)

	_, err = eng.Claim(ctx, "h1", "o1", "userC", "")
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	require.NoError(t, eng.Unclaim(ctx, "h1", "o1", "userA"))
	assert.Equal(t, 1, store.snapshot("h1", "o1").Offer.ClaimedCount)

	_, err = eng.Claim(ctx, "h1", "o1", "userC", "")
	require.NoError(t, err)
	assert.Equal(t, 2, store.snapshot("h1", "o1").Offer.ClaimedCount)
}

func TestEngine_ConcurrentClaims_NeverOversell(t *testing.T) {
	const capacity = 3
	const contenders = 6

	eng, store := newTestEngine(t)
	seedOffer(t, store, capacity)

	var wg sync.WaitGroup
	errs := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", i)
			// callers resubmit on a retryable conflict, as a client would
			for {
				_, err := eng.Claim(context.Background(), "h1", "o1", userID, "")
				if errors.Is(err, domain.ErrVersionConflict) {
					continue
				}
				errs[i] = err
				return
			}
		}(i)
	}
	wg.Wait()

	var succeeded, full int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrCapacityExceeded):
			full++
		default:
			t.Fatalf("unexpected claim error: %v", err)
		}
	}

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, contenders-capacity, full)

	snap := store.snapshot("h1", "o1")
	assert.Equal(t, capacity, snap.Offer.ClaimedCount)
	assert.Len(t, snap.Claims, capacity)
}

func TestEngine_Update_Resize(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)

	newCap := 5
	offer, err := eng.Update(context.Background(), "h1", "o1", "owner", domain.UpdateOfferInput{Capacity: &newCap})

	require.NoError(t, err)
	assert.Equal(t, 5, offer.Capacity)
	assert.Equal(t, 5, store.snapshot("h1", "o1").Offer.Capacity)
}

func TestEngine_Update_ResizeBelowClaims(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 3)
	ctx := context.Background()

	_, err := eng.Claim(ctx, "h1", "o1", "u1", "")
	require.NoError(t, err)
	_, err = eng.Claim(ctx, "h1", "o1", "u2", "")
	require.NoError(t, err)

	newCap := 1
	_, err = eng.Update(ctx, "h1", "o1", "owner", domain.UpdateOfferInput{Capacity: &newCap})

	assert.ErrorIs(t, err, domain.ErrValidation)
	snap := store.snapshot("h1", "o1")
	assert.Equal(t, 3, snap.Offer.Capacity)
	assert.Equal(t, 2, snap.Offer.ClaimedCount)
}

func TestEngine_Update_NotOwner(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)

	notes := "new notes"
	_, err := eng.Update(context.Background(), "h1", "o1", "stranger", domain.UpdateOfferInput{Notes: &notes})

	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestEngine_Complete_SplitsTotal(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)
	ctx := context.Background()

	_, err := eng.Claim(ctx, "h1", "o1", "u1", "")
	require.NoError(t, err)
	_, err = eng.Claim(ctx, "h1", "o1", "u2", "")
	require.NoError(t, err)

	snap, err := eng.Complete(ctx, "h1", "o1", "owner", testFinalizer{ticketCount: 2, totalCents: 10000})

	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusCompleted, snap.Offer.Status)
	require.NotNil(t, snap.Offer.FinalTotalCents)
	assert.Equal(t, int64(10000), *snap.Offer.FinalTotalCents)
	require.Len(t, snap.Claims, 2)
	for _, c := range snap.Claims {
		require.NotNil(t, c.ShareCents)
		assert.Equal(t, int64(5000), *c.ShareCents)
	}
}

func TestEngine_Complete_Idempotent(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)
	ctx := context.Background()

	_, err := eng.Claim(ctx, "h1", "o1", "u1", "")
	require.NoError(t, err)

	fin := testFinalizer{ticketCount: 1, totalCents: 4200}
	first, err := eng.Complete(ctx, "h1", "o1", "owner", fin)
	require.NoError(t, err)

	second, err := eng.Complete(ctx, "h1", "o1", "owner", fin)
	require.NoError(t, err)

	assert.Equal(t, first.Offer.Status, second.Offer.Status)
	assert.Equal(t, *first.Offer.FinalTotalCents, *second.Offer.FinalTotalCents)
	assert.Equal(t, first.Offer.Version, store.snapshot("h1", "o1").Offer.Version)
}

func TestEngine_Complete_DifferentResultAfterTerminal(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)
	ctx := context.Background()

	_, err := eng.Claim(ctx, "h1", "o1", "u1", "")
	require.NoError(t, err)

	_, err = eng.Complete(ctx, "h1", "o1", "owner", testFinalizer{ticketCount: 1, totalCents: 4200})
	require.NoError(t, err)

	_, err = eng.Complete(ctx, "h1", "o1", "owner", testFinalizer{ticketCount: 2, totalCents: 9900})
	assert.ErrorIs(t, err, domain.ErrOfferNotCollecting)
}

func TestEngine_Complete_NotOwner(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)

	_, err := eng.Complete(context.Background(), "h1", "o1", "stranger", testFinalizer{})
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestEngine_Complete_LocksLifecycle(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)
	ctx := context.Background()

	_, err := eng.Claim(ctx, "h1", "o1", "u1", "")
	require.NoError(t, err)
	_, err = eng.Complete(ctx, "h1", "o1", "owner", testFinalizer{ticketCount: 1, totalCents: 100})
	require.NoError(t, err)

	_, err = eng.Claim(ctx, "h1", "o1", "u2", "")
	assert.ErrorIs(t, err, domain.ErrOfferNotCollecting)

	err = eng.Unclaim(ctx, "h1", "o1", "u1")
	assert.ErrorIs(t, err, domain.ErrOfferNotCollecting)

	newCap := 10
	_, err = eng.Update(ctx, "h1", "o1", "owner", domain.UpdateOfferInput{Capacity: &newCap})
	assert.ErrorIs(t, err, domain.ErrOfferNotCollecting)
}

func TestEngine_Cancel_Idempotent(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)
	ctx := context.Background()

	require.NoError(t, eng.Cancel(ctx, "h1", "o1", "owner"))
	assert.Equal(t, domain.OfferStatusCancelled, store.snapshot("h1", "o1").Offer.Status)

	// cancelling a terminal offer is a no-op, not an error
	require.NoError(t, eng.Cancel(ctx, "h1", "o1", "owner"))
}

func TestEngine_Cancel_KeepsClaimHistory(t *testing.T) {
	eng, store := newTestEngine(t)
	seedOffer(t, store, 2)
	ctx := context.Background()

	_, err := eng.Claim(ctx, "h1", "o1", "u1", "")
	require.NoError(t, err)

	require.NoError(t, eng.Cancel(ctx, "h1", "o1", "owner"))

	snap := store.snapshot("h1", "o1")
	assert.Len(t, snap.Claims, 1)
}
