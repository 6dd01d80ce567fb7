package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
	"github.com/bbthechange/hangoutsBackend-sub008/internal/service/ports/mocks"
)

func newCarpoolService(t *testing.T) (*CarpoolService, reservationMocks) {
	t.Helper()
	m := reservationMocks{
		offers:    mocks.NewMockOfferStore(t),
		hangouts:  mocks.NewMockHangoutRepo(t),
		users:     mocks.NewMockUserRepo(t),
		notifier:  mocks.NewMockOfferNotifier(t),
		publisher: mocks.NewMockEventPublisher(t),
	}
	svc := NewCarpoolService(m.offers, m.hangouts, m.users, m.notifier, m.publisher, newTestLogger(t))
	return svc, m
}

func carSnapshot(seats int, claims ...domain.Claim) *domain.OfferSnapshot {
	snap := collectingSnapshot(seats, claims...)
	snap.Offer.Kind = domain.OfferKindCarpool
	snap.Offer.OwnerID = "driver"
	return snap
}

func TestCarpoolService_OfferSeats_Success(t *testing.T) {
	svc, m := newCarpoolService(t)

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.hangouts.EXPECT().IsMember(mock.Anything, "h1", "driver").Return(true, nil)
	m.offers.EXPECT().CreateOffer(mock.Anything, mock.Anything).Return(nil)

	offer, err := svc.OfferSeats(context.Background(), "h1", domain.CreateOfferInput{
		OwnerID:  "driver",
		Capacity: 3,
		Notes:    "leaving from downtown at 6",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OfferKindCarpool, offer.Kind)
	assert.Equal(t, domain.OfferStatusCollecting, offer.Status)
	assert.Equal(t, 3, offer.Capacity)
}

func TestCarpoolService_OfferSeats_RejectsZeroSeats(t *testing.T) {
	svc, _ := newCarpoolService(t)

	_, err := svc.OfferSeats(context.Background(), "h1", domain.CreateOfferInput{
		OwnerID:  "driver",
		Capacity: 0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCarpoolService_ClaimSeat_StoresSeatLabel(t *testing.T) {
	svc, m := newCarpoolService(t)

	rider := &domain.User{ID: "u1", Username: "alice"}

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(rider, nil)
	m.hangouts.EXPECT().IsMember(mock.Anything, "h1", "u1").Return(true, nil)
	m.offers.EXPECT().Load(mock.Anything, "h1", "o1").Return(carSnapshot(3), nil)
	m.offers.EXPECT().InsertClaim(mock.Anything, int64(1), mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyClaimCreated(mock.Anything, rider, mock.Anything).Return()
	m.publisher.EXPECT().PublishClaimCreated(mock.Anything, mock.Anything).Return(nil)

	details, err := svc.ClaimSeat(context.Background(), "h1", "o1", "u1", "front")

	require.NoError(t, err)
	assert.Equal(t, "u1", details.Claim.UserID)
	assert.Equal(t, "front", details.Claim.SeatLabel)
	assert.Equal(t, "alice", details.Username)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCarpoolService_ClaimSeat_CarFull(t *testing.T) {
	svc, m := newCarpoolService(t)

	snap := carSnapshot(1, domain.Claim{HangoutID: "h1", OfferID: "o1", UserID: "u1"})

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2", Username: "bob"}, nil)
	m.hangouts.EXPECT().IsMember(mock.Anything, "h1", "u2").Return(true, nil)
	m.offers.EXPECT().Load(mock.Anything, "h1", "o1").Return(snap, nil)

	_, err := svc.ClaimSeat(context.Background(), "h1", "o1", "u2", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestCarpoolService_ReleaseSeat_NoClaimIsNoOp(t *testing.T) {
	svc, m := newCarpoolService(t)

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.offers.EXPECT().Load(mock.Anything, "h1", "o1").Return(carSnapshot(3), nil)
	m.publisher.EXPECT().PublishClaimReleased(mock.Anything, mock.Anything).Return(nil)

	err := svc.ReleaseSeat(context.Background(), "h1", "o1", "u1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestCarpoolService_Complete_LocksRoster(t *testing.T) {
	svc, m := newCarpoolService(t)

	snap := carSnapshot(3, domain.Claim{HangoutID: "h1", OfferID: "o1", UserID: "u1", SeatLabel: "front"})

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.offers.EXPECT().Load(mock.Anything, "h1", "o1").Return(snap, nil)
	m.offers.EXPECT().CompleteOffer(mock.Anything, int64(1), mock.Anything, mock.Anything).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice"}, nil)
	m.notifier.EXPECT().NotifyOfferCompleted(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	m.publisher.EXPECT().PublishOfferCompleted(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Complete(context.Background(), "h1", "o1", "driver")

	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusCompleted, result.Offer.Status)
	// seat claims carry no price share
	for _, c := range result.Claims {
		assert.Nil(t, c.ShareCents)
	}

	time.Sleep(50 * time.Millisecond)
}

func TestCarpoolService_Complete_NotDriver(t *testing.T) {
	svc, m := newCarpoolService(t)

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.offers.EXPECT().Load(mock.Anything, "h1", "o1").Return(carSnapshot(3), nil)

	_, err := svc.Complete(context.Background(), "h1", "o1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestCarpoolService_Cancel_NotifiesRiders(t *testing.T) {
	svc, m := newCarpoolService(t)

	snap := carSnapshot(3, domain.Claim{HangoutID: "h1", OfferID: "o1", UserID: "u1"})

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.offers.EXPECT().Load(mock.Anything, "h1", "o1").Return(snap, nil)
	m.offers.EXPECT().CancelOffer(mock.Anything, int64(1), mock.Anything).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice"}, nil)
	m.notifier.EXPECT().NotifyOfferCancelled(mock.Anything, mock.Anything, mock.Anything).Return()
	m.publisher.EXPECT().PublishOfferCancelled(mock.Anything, mock.Anything).Return(nil)

	err := svc.Cancel(context.Background(), "h1", "o1", "driver")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestCarpoolService_ListByHangout(t *testing.T) {
	svc, m := newCarpoolService(t)

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.offers.EXPECT().ListByHangout(mock.Anything, "h1", domain.OfferKindCarpool).
		Return([]domain.OfferSnapshot{*carSnapshot(3)}, nil)

	snaps, err := svc.ListByHangout(context.Background(), "h1")

	require.NoError(t, err)
	assert.Len(t, snaps, 1)
}
