package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
	"github.com/bbthechange/hangoutsBackend-sub008/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type reservationMocks struct {
	offers    *mocks.MockOfferStore
	hangouts  *mocks.MockHangoutRepo
	users     *mocks.MockUserRepo
	notifier  *mocks.MockOfferNotifier
	publisher *mocks.MockEventPublisher
}

func newReservationService(t *testing.T) (*ReservationService, reservationMocks) {
	t.Helper()
	m := reservationMocks{
		offers:    mocks.NewMockOfferStore(t),
		hangouts:  mocks.NewMockHangoutRepo(t),
		users:     mocks.NewMockUserRepo(t),
		notifier:  mocks.NewMockOfferNotifier(t),
		publisher: mocks.NewMockEventPublisher(t),
	}
	svc := NewReservationService(m.offers, m.hangouts, m.users, m.notifier, m.publisher, newTestLogger(t))
	return svc, m
}

func testHangout() *domain.Hangout {
	return &domain.Hangout{
		ID:        "h1",
		Title:     "Karaoke night",
		StartsAt:  time.Now().Add(48 * time.Hour),
		CreatedBy: "owner",
		CreatedAt: time.Now(),
	}
}

func collectingSnapshot(capacity int, claims ...domain.Claim) *domain.OfferSnapshot {
	return &domain.OfferSnapshot{
		Offer: domain.Offer{
			ID:           "o1",
			HangoutID:    "h1",
			OwnerID:      "owner",
			Kind:         domain.OfferKindReservation,
			Status:       domain.OfferStatusCollecting,
			Capacity:     capacity,
			ClaimedCount: len(claims),
			Version:      1,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
		Claims: claims,
	}
}

func TestReservationService_Create_Success(t *testing.T) {
	svc, m := newReservationService(t)

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.hangouts.EXPECT().IsMember(mock.Anything, "h1", "owner").Return(true, nil)
	m.offers.EXPECT().CreateOffer(mock.Anything, mock.Anything).Return(nil)

	offer, err := svc.Create(context.Background(), "h1", domain.CreateOfferInput{
		OwnerID:  "owner",
		Capacity: 4,
		Section:  "116",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, offer.ID)
	assert.Equal(t, domain.OfferKindReservation, offer.Kind)
	assert.Equal(t, domain.OfferStatusCollecting, offer.Status)
	assert.Equal(t, 4, offer.Capacity)
	assert.Equal(t, 0, offer.ClaimedCount)
	assert.Equal(t, int64(1), offer.Version)
}

func TestReservationService_Create_RejectsNonPositiveCapacity(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.Create(context.Background(), "h1", domain.CreateOfferInput{
		OwnerID:  "owner",
		Capacity: 0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_RequiresMembership(t *testing.T) {
	svc, m := newReservationService(t)

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.hangouts.EXPECT().IsMember(mock.Anything, "h1", "stranger").Return(false, nil)

	_, err := svc.Create(context.Background(), "h1", domain.CreateOfferInput{
		OwnerID:  "stranger",
		Capacity: 4,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotMember)
}

func TestReservationService_Create_HangoutNotFound(t *testing.T) {
	svc, m := newReservationService(t)

	m.hangouts.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrHangoutNotFound)

	_, err := svc.Create(context.Background(), "missing", domain.CreateOfferInput{
		OwnerID:  "owner",
		Capacity: 4,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHangoutNotFound)
}

func TestReservationService_Claim_Success(t *testing.T) {
	svc, m := newReservationService(t)

	user := &domain.User{ID: "u1", Username: "alice", AvatarURL: "https://cdn/a.png"}

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.hangouts.EXPECT().IsMember(mock.Anything, "h1", "u1").Return(true, nil)
	m.offers.EXPECT().Load(mock.Anything, "h1", "o1").Return(collectingSnapshot(2), nil)
	m.offers.EXPECT().InsertClaim(mock.Anything, int64(1), mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyClaimCreated(mock.Anything, user, mock.Anything).Return()
	m.publisher.EXPECT().PublishClaimCreated(mock.Anything, mock.Anything).Return(nil)

	details, err := svc.Claim(context.Background(), "h1", "o1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", details.Claim.UserID)
	assert.Equal(t, "alice", details.Username)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Claim_FullOffer(t *testing.T) {
	svc, m := newReservationService(t)

	snap := collectingSnapshot(1, domain.Claim{HangoutID: "h1", OfferID: "o1", UserID: "u1"})

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2", Username: "bob"}, nil)
	m.hangouts.EXPECT().IsMember(mock.Anything, "h1", "u2").Return(true, nil)
	m.offers.EXPECT().Load(mock.Anything, "h1", "o1").Return(snap, nil)

	_, err := svc.Claim(context.Background(), "h1", "o1", "u2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestReservationService_Claim_NotMember(t *testing.T) {
	svc, m := newReservationService(t)

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.users.EXPECT().GetByID(mock.Anything, "u9").Return(&domain.User{ID: "u9", Username: "mallory"}, nil)
	m.hangouts.EXPECT().IsMember(mock.Anything, "h1", "u9").Return(false, nil)

	_, err := svc.Claim(context.Background(), "h1", "o1", "u9")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotMember)
}

func TestReservationService_Unclaim_Success(t *testing.T) {
	svc, m := newReservationService(t)

	snap := collectingSnapshot(2, domain.Claim{HangoutID: "h1", OfferID: "o1", UserID: "u1"})

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.offers.EXPECT().Load(mock.Anything, "h1", "o1").Return(snap, nil)
	m.offers.EXPECT().RemoveClaim(mock.Anything, int64(1), mock.Anything, "u1").Return(nil)
	m.publisher.EXPECT().PublishClaimReleased(mock.Anything, mock.Anything).Return(nil)

	err := svc.Unclaim(context.Background(), "h1", "o1", "u1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Complete_SplitsPriceAcrossClaims(t *testing.T) {
	svc, m := newReservationService(t)

	base := time.Now().UTC()
	snap := collectingSnapshot(3,
		domain.Claim{HangoutID: "h1", OfferID: "o1", UserID: "u1", CreatedAt: base},
		domain.Claim{HangoutID: "h1", OfferID: "o1", UserID: "u2", CreatedAt: base.Add(time.Minute)},
		domain.Claim{HangoutID: "h1", OfferID: "o1", UserID: "u3", CreatedAt: base.Add(2 * time.Minute)},
	)

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.offers.EXPECT().Load(mock.Anything, "h1", "o1").Return(snap, nil)
	m.offers.EXPECT().CompleteOffer(mock.Anything, int64(1), mock.Anything, mock.Anything).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.User{ID: "u1", Username: "alice"}, nil)
	m.notifier.EXPECT().NotifyOfferCompleted(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	m.publisher.EXPECT().PublishOfferCompleted(mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Complete(context.Background(), "h1", "o1", "owner", domain.CompleteReservationInput{
		TicketCount: 3,
		TotalCents:  1000,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusCompleted, result.Offer.Status)
	require.NotNil(t, result.Offer.FinalTotalCents)
	assert.Equal(t, int64(1000), *result.Offer.FinalTotalCents)

	// 1000 over three claims: the earliest claim absorbs the odd cent
	shares := map[string]int64{}
	var sum int64
	for _, c := range result.Claims {
		require.NotNil(t, c.ShareCents)
		shares[c.UserID] = *c.ShareCents
		sum += *c.ShareCents
	}
	assert.Equal(t, int64(334), shares["u1"])
	assert.Equal(t, int64(333), shares["u2"])
	assert.Equal(t, int64(333), shares["u3"])
	assert.Equal(t, int64(1000), sum)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Complete_RejectsInvalidInput(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.Complete(context.Background(), "h1", "o1", "owner", domain.CompleteReservationInput{
		TicketCount: 0,
		TotalCents:  1000,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Complete(context.Background(), "h1", "o1", "owner", domain.CompleteReservationInput{
		TicketCount: 2,
		TotalCents:  -1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Complete_NotOwner(t *testing.T) {
	svc, m := newReservationService(t)

	snap := collectingSnapshot(2, domain.Claim{HangoutID: "h1", OfferID: "o1", UserID: "u1"})

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.offers.EXPECT().Load(mock.Anything, "h1", "o1").Return(snap, nil)

	_, err := svc.Complete(context.Background(), "h1", "o1", "u1", domain.CompleteReservationInput{
		TicketCount: 1,
		TotalCents:  500,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestReservationService_Cancel_NotifiesClaimHolders(t *testing.T) {
	svc, m := newReservationService(t)

	snap := collectingSnapshot(2, domain.Claim{HangoutID: "h1", OfferID: "o1", UserID: "u1"})

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.offers.EXPECT().Load(mock.Anything, "h1", "o1").Return(snap, nil)
	m.offers.EXPECT().CancelOffer(mock.Anything, int64(1), mock.Anything).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice"}, nil)
	m.notifier.EXPECT().NotifyOfferCancelled(mock.Anything, mock.Anything, mock.Anything).Return()
	m.publisher.EXPECT().PublishOfferCancelled(mock.Anything, mock.Anything).Return(nil)

	err := svc.Cancel(context.Background(), "h1", "o1", "owner")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_AlreadyTerminalSkipsNotifications(t *testing.T) {
	svc, m := newReservationService(t)

	snap := collectingSnapshot(2)
	snap.Offer.Status = domain.OfferStatusCancelled

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.offers.EXPECT().Load(mock.Anything, "h1", "o1").Return(snap, nil)

	err := svc.Cancel(context.Background(), "h1", "o1", "owner")

	require.NoError(t, err)
}

func TestReservationService_ListByHangout(t *testing.T) {
	svc, m := newReservationService(t)

	m.hangouts.EXPECT().GetByID(mock.Anything, "h1").Return(testHangout(), nil)
	m.offers.EXPECT().ListByHangout(mock.Anything, "h1", domain.OfferKindReservation).
		Return([]domain.OfferSnapshot{*collectingSnapshot(2)}, nil)

	snaps, err := svc.ListByHangout(context.Background(), "h1")

	require.NoError(t, err)
	assert.Len(t, snaps, 1)
}
