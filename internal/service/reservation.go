package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
	"github.com/bbthechange/hangoutsBackend-sub008/internal/engine"
	"github.com/bbthechange/hangoutsBackend-sub008/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// ReservationService is the ticket-offer façade over the claim engine: a host
// offers N ticket slots for a hangout, members claim them, and completion
// locks in the purchase with an even price split.
type ReservationService struct {
	engine    *engine.Engine
	offers    ports.OfferStore
	hangouts  ports.HangoutRepo
	users     ports.UserRepo
	notifier  ports.OfferNotifier
	publisher ports.EventPublisher
	logger    logger.Logger
}

func NewReservationService(
	offers ports.OfferStore,
	hangouts ports.HangoutRepo,
	users ports.UserRepo,
	notifier ports.OfferNotifier,
	publisher ports.EventPublisher,
	log logger.Logger,
) *ReservationService {
	return &ReservationService{
		engine:    engine.New(offers, log),
		offers:    offers,
		hangouts:  hangouts,
		users:     users,
		notifier:  notifier,
		publisher: publisher,
		logger:    log,
	}
}

func (s *ReservationService) Create(ctx context.Context, hangoutID string, in domain.CreateOfferInput) (*domain.Offer, error) {
	if in.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	if _, err := s.hangouts.GetByID(ctx, hangoutID); err != nil {
		return nil, fmt.Errorf("check hangout: %w", err)
	}
	if err := s.requireMember(ctx, hangoutID, in.OwnerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	offer := &domain.Offer{
		ID:        uuid.New().String(),
		HangoutID: hangoutID,
		OwnerID:   in.OwnerID,
		Kind:      domain.OfferKindReservation,
		Status:    domain.OfferStatusCollecting,
		Capacity:  in.Capacity,
		Section:   in.Section,
		Notes:     in.Notes,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.offers.CreateOffer(ctx, offer); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	s.logger.Info("reservation offer created",
		logger.String("offer_id", offer.ID),
		logger.String("hangout_id", hangoutID),
		logger.String("owner_id", in.OwnerID),
		logger.Int("capacity", in.Capacity),
	)

	return offer, nil
}

func (s *ReservationService) Claim(ctx context.Context, hangoutID, offerID, userID string) (*domain.ClaimDetails, error) {
	hangout, err := s.hangouts.GetByID(ctx, hangoutID)
	if err != nil {
		return nil, fmt.Errorf("check hangout: %w", err)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if err := s.requireMember(ctx, hangoutID, userID); err != nil {
		return nil, err
	}

	claim, err := s.engine.Claim(ctx, hangoutID, offerID, userID, "")
	if err != nil {
		return nil, err
	}

	s.logger.Info("slot claimed",
		logger.String("offer_id", offerID),
		logger.String("hangout_id", hangoutID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyClaimCreated(context.WithoutCancel(ctx), user, hangout)
	go s.publishClaimCreated(context.WithoutCancel(ctx), claim)

	return &domain.ClaimDetails{
		Claim:     *claim,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
	}, nil
}

func (s *ReservationService) Unclaim(ctx context.Context, hangoutID, offerID, userID string) error {
	if _, err := s.hangouts.GetByID(ctx, hangoutID); err != nil {
		return fmt.Errorf("check hangout: %w", err)
	}

	if err := s.engine.Unclaim(ctx, hangoutID, offerID, userID); err != nil {
		return err
	}

	s.logger.Info("slot released",
		logger.String("offer_id", offerID),
		logger.String("hangout_id", hangoutID),
		logger.String("user_id", userID),
	)

	go s.publishClaimReleased(context.WithoutCancel(ctx), &domain.Claim{
		HangoutID: hangoutID,
		OfferID:   offerID,
		UserID:    userID,
	})

	return nil
}

func (s *ReservationService) Update(ctx context.Context, hangoutID, offerID, ownerID string, in domain.UpdateOfferInput) (*domain.Offer, error) {
	if _, err := s.hangouts.GetByID(ctx, hangoutID); err != nil {
		return nil, fmt.Errorf("check hangout: %w", err)
	}
	return s.engine.Update(ctx, hangoutID, offerID, ownerID, in)
}

func (s *ReservationService) Complete(ctx context.Context, hangoutID, offerID, ownerID string, in domain.CompleteReservationInput) (*domain.OfferSnapshot, error) {
	if in.TicketCount <= 0 {
		return nil, fmt.Errorf("%w: ticket count must be positive", domain.ErrValidation)
	}
	if in.TotalCents < 0 {
		return nil, fmt.Errorf("%w: total price cannot be negative", domain.ErrValidation)
	}

	hangout, err := s.hangouts.GetByID(ctx, hangoutID)
	if err != nil {
		return nil, fmt.Errorf("check hangout: %w", err)
	}

	snap, err := s.engine.Complete(ctx, hangoutID, offerID, ownerID, reservationFinalizer{in: in})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation offer completed",
		logger.String("offer_id", offerID),
		logger.String("hangout_id", hangoutID),
		logger.Int("claims", len(snap.Claims)),
		logger.Int64("total_cents", in.TotalCents),
	)

	go s.notifyCompleted(context.WithoutCancel(ctx), snap, hangout)
	go s.publishOfferCompleted(context.WithoutCancel(ctx), &snap.Offer)

	return snap, nil
}

func (s *ReservationService) Cancel(ctx context.Context, hangoutID, offerID, ownerID string) error {
	hangout, err := s.hangouts.GetByID(ctx, hangoutID)
	if err != nil {
		return fmt.Errorf("check hangout: %w", err)
	}

	snap, err := s.offers.Load(ctx, hangoutID, offerID)
	if err != nil {
		return fmt.Errorf("load offer: %w", err)
	}
	wasTerminal := snap.Offer.Status.Terminal()

	if err := s.engine.Cancel(ctx, hangoutID, offerID, ownerID); err != nil {
		return err
	}
	if wasTerminal {
		return nil
	}

	s.logger.Info("reservation offer cancelled",
		logger.String("offer_id", offerID),
		logger.String("hangout_id", hangoutID),
	)

	go s.notifyCancelled(context.WithoutCancel(ctx), snap, hangout)
	go s.publishOfferCancelled(context.WithoutCancel(ctx), &snap.Offer)

	return nil
}

func (s *ReservationService) Get(ctx context.Context, hangoutID, offerID string) (*domain.OfferSnapshot, error) {
	return s.offers.Load(ctx, hangoutID, offerID)
}

func (s *ReservationService) ListByHangout(ctx context.Context, hangoutID string) ([]domain.OfferSnapshot, error) {
	if _, err := s.hangouts.GetByID(ctx, hangoutID); err != nil {
		return nil, fmt.Errorf("check hangout: %w", err)
	}
	return s.offers.ListByHangout(ctx, hangoutID, domain.OfferKindReservation)
}

func (s *ReservationService) requireMember(ctx context.Context, hangoutID, userID string) error {
	ok, err := s.hangouts.IsMember(ctx, hangoutID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !ok {
		return domain.ErrNotMember
	}
	return nil
}

func (s *ReservationService) notifyCompleted(ctx context.Context, snap *domain.OfferSnapshot, hangout *domain.Hangout) {
	for _, c := range snap.Claims {
		user, err := s.users.GetByID(ctx, c.UserID)
		if err != nil {
			s.logger.Error("failed to get user for completion notification",
				logger.String("user_id", c.UserID),
			)
			continue
		}
		s.notifier.NotifyOfferCompleted(ctx, user, &snap.Offer, hangout)
	}
}

func (s *ReservationService) notifyCancelled(ctx context.Context, snap *domain.OfferSnapshot, hangout *domain.Hangout) {
	for _, c := range snap.Claims {
		user, err := s.users.GetByID(ctx, c.UserID)
		if err != nil {
			s.logger.Error("failed to get user for cancel notification",
				logger.String("user_id", c.UserID),
			)
			continue
		}
		s.notifier.NotifyOfferCancelled(ctx, user, hangout)
	}
}

func (s *ReservationService) publishClaimCreated(ctx context.Context, c *domain.Claim) {
	if err := s.publisher.PublishClaimCreated(ctx, c); err != nil {
		s.logger.Error("failed to publish claim created event",
			logger.String("offer_id", c.OfferID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ReservationService) publishClaimReleased(ctx context.Context, c *domain.Claim) {
	if err := s.publisher.PublishClaimReleased(ctx, c); err != nil {
		s.logger.Error("failed to publish claim released event",
			logger.String("offer_id", c.OfferID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ReservationService) publishOfferCompleted(ctx context.Context, o *domain.Offer) {
	if err := s.publisher.PublishOfferCompleted(ctx, o); err != nil {
		s.logger.Error("failed to publish offer completed event",
			logger.String("offer_id", o.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ReservationService) publishOfferCancelled(ctx context.Context, o *domain.Offer) {
	if err := s.publisher.PublishOfferCancelled(ctx, o); err != nil {
		s.logger.Error("failed to publish offer cancelled event",
			logger.String("offer_id", o.ID),
			logger.String("error", err.Error()),
		)
	}
}

// reservationFinalizer settles a ticket offer: it records the purchased
// ticket count and total price, and splits the total evenly across the
// claims. Remainder cents go to the earliest claims so the shares always sum
// to the total.
type reservationFinalizer struct {
	in domain.CompleteReservationInput
}

func (f reservationFinalizer) Finalize(snap *domain.OfferSnapshot) (domain.Offer, []domain.Claim, error) {
	if len(snap.Claims) == 0 {
		return domain.Offer{}, nil, fmt.Errorf("%w: offer has no claims to settle", domain.ErrValidation)
	}

	offer := snap.Offer
	tickets := f.in.TicketCount
	total := f.in.TotalCents
	offer.FinalTicketCount = &tickets
	offer.FinalTotalCents = &total

	ordered := make([]domain.Claim, len(snap.Claims))
	copy(ordered, snap.Claims)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	n := int64(len(ordered))
	base := total / n
	remainder := total % n
	now := time.Now().UTC()

	shares := make([]domain.Claim, len(ordered))
	for i, c := range ordered {
		share := base
		if int64(i) < remainder {
			share++
		}
		c.ShareCents = &share
		c.UpdatedAt = now
		shares[i] = c
	}

	return offer, shares, nil
}
