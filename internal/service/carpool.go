package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
	"github.com/bbthechange/hangoutsBackend-sub008/internal/engine"
	"github.com/bbthechange/hangoutsBackend-sub008/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// CarpoolService is the seat-offer façade: a driver offers N seats for a
// hangout and riders claim or release them. Available seats are always
// derived from capacity minus claims, never stored, so the two cannot drift.
type CarpoolService struct {
	engine    *engine.Engine
	offers    ports.OfferStore
	hangouts  ports.HangoutRepo
	users     ports.UserRepo
	notifier  ports.OfferNotifier
	publisher ports.EventPublisher
	logger    logger.Logger
}

func NewCarpoolService(
	offers ports.OfferStore,
	hangouts ports.HangoutRepo,
	users ports.UserRepo,
	notifier ports.OfferNotifier,
	publisher ports.EventPublisher,
	log logger.Logger,
) *CarpoolService {
	return &CarpoolService{
		engine:    engine.New(offers, log),
		offers:    offers,
		hangouts:  hangouts,
		users:     users,
		notifier:  notifier,
		publisher: publisher,
		logger:    log,
	}
}

func (s *CarpoolService) OfferSeats(ctx context.Context, hangoutID string, in domain.CreateOfferInput) (*domain.Offer, error) {
	if in.Capacity <= 0 {
		return nil, fmt.Errorf("%w: seat count must be positive", domain.ErrValidation)
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
		Kind:      domain.OfferKindCarpool,
		Status:    domain.OfferStatusCollecting,
		Capacity:  in.Capacity,
		Notes:     in.Notes,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.offers.CreateOffer(ctx, offer); err != nil {
		return nil, fmt.Errorf("create car offer: %w", err)
	}

	s.logger.Info("car offered",
		logger.String("offer_id", offer.ID),
		logger.String("hangout_id", hangoutID),
		logger.String("driver_id", in.OwnerID),
		logger.Int("seats", in.Capacity),
	)

	return offer, nil
}

func (s *CarpoolService) ClaimSeat(ctx context.Context, hangoutID, offerID, riderID, seatLabel string) (*domain.ClaimDetails, error) {
	hangout, err := s.hangouts.GetByID(ctx, hangoutID)
	if err != nil {
		return nil, fmt.Errorf("check hangout: %w", err)
	}
	rider, err := s.users.GetByID(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("check rider: %w", err)
	}
	if err := s.requireMember(ctx, hangoutID, riderID); err != nil {
		return nil, err
	}

	claim, err := s.engine.Claim(ctx, hangoutID, offerID, riderID, seatLabel)
	if err != nil {
		return nil, err
	}

	s.logger.Info("seat claimed",
		logger.String("offer_id", offerID),
		logger.String("hangout_id", hangoutID),
		logger.String("rider_id", riderID),
	)

	go s.notifier.NotifyClaimCreated(context.WithoutCancel(ctx), rider, hangout)
	go s.publishClaimCreated(context.WithoutCancel(ctx), claim)

	return &domain.ClaimDetails{
		Claim:     *claim,
		Username:  rider.Username,
		AvatarURL: rider.AvatarURL,
	}, nil
}

func (s *CarpoolService) ReleaseSeat(ctx context.Context, hangoutID, offerID, riderID string) error {
	if _, err := s.hangouts.GetByID(ctx, hangoutID); err != nil {
		return fmt.Errorf("check hangout: %w", err)
	}

	if err := s.engine.Unclaim(ctx, hangoutID, offerID, riderID); err != nil {
		return err
	}

	s.logger.Info("seat released",
		logger.String("offer_id", offerID),
		logger.String("hangout_id", hangoutID),
		logger.String("rider_id", riderID),
	)

	go s.publishClaimReleased(context.WithoutCancel(ctx), &domain.Claim{
		HangoutID: hangoutID,
		OfferID:   offerID,
		UserID:    riderID,
	})

	return nil
}

func (s *CarpoolService) UpdateSeats(ctx context.Context, hangoutID, offerID, driverID string, in domain.UpdateOfferInput) (*domain.Offer, error) {
	if _, err := s.hangouts.GetByID(ctx, hangoutID); err != nil {
		return nil, fmt.Errorf("check hangout: %w", err)
	}
	return s.engine.Update(ctx, hangoutID, offerID, driverID, in)
}

// Complete locks in the passenger list. Unlike reservation offers there is
// no settlement payload; a car with empty seats can still depart.
func (s *CarpoolService) Complete(ctx context.Context, hangoutID, offerID, driverID string) (*domain.OfferSnapshot, error) {
	hangout, err := s.hangouts.GetByID(ctx, hangoutID)
	if err != nil {
		return nil, fmt.Errorf("check hangout: %w", err)
	}

	snap, err := s.engine.Complete(ctx, hangoutID, offerID, driverID, carpoolFinalizer{})
	if err != nil {
		return nil, err
	}

	s.logger.Info("carpool completed",
		logger.String("offer_id", offerID),
		logger.String("hangout_id", hangoutID),
		logger.Int("riders", len(snap.Claims)),
	)

	go s.notifyCompleted(context.WithoutCancel(ctx), snap, hangout)
	go s.publishOfferCompleted(context.WithoutCancel(ctx), &snap.Offer)

	return snap, nil
}

func (s *CarpoolService) Cancel(ctx context.Context, hangoutID, offerID, driverID string) error {
	hangout, err := s.hangouts.GetByID(ctx, hangoutID)
	if err != nil {
		return fmt.Errorf("check hangout: %w", err)
	}

	snap, err := s.offers.Load(ctx, hangoutID, offerID)
	if err != nil {
		return fmt.Errorf("load offer: %w", err)
	}
	wasTerminal := snap.Offer.Status.Terminal()

	if err := s.engine.Cancel(ctx, hangoutID, offerID, driverID); err != nil {
		return err
	}
	if wasTerminal {
		return nil
	}

	s.logger.Info("carpool cancelled",
		logger.String("offer_id", offerID),
		logger.String("hangout_id", hangoutID),
	)

	go s.notifyCancelled(context.WithoutCancel(ctx), snap, hangout)
	go s.publishOfferCancelled(context.WithoutCancel(ctx), &snap.Offer)

	return nil
}

func (s *CarpoolService) Get(ctx context.Context, hangoutID, offerID string) (*domain.OfferSnapshot, error) {
	return s.offers.Load(ctx, hangoutID, offerID)
}

func (s *CarpoolService) ListByHangout(ctx context.Context, hangoutID string) ([]domain.OfferSnapshot, error) {
	if _, err := s.hangouts.GetByID(ctx, hangoutID); err != nil {
		return nil, fmt.Errorf("check hangout: %w", err)
	}
	return s.offers.ListByHangout(ctx, hangoutID, domain.OfferKindCarpool)
}

func (s *CarpoolService) requireMember(ctx context.Context, hangoutID, userID string) error {
	ok, err := s.hangouts.IsMember(ctx, hangoutID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !ok {
		return domain.ErrNotMember
	}
	return nil
}

func (s *CarpoolService) notifyCompleted(ctx context.Context, snap *domain.OfferSnapshot, hangout *domain.Hangout) {
	for _, c := range snap.Claims {
		rider, err := s.users.GetByID(ctx, c.UserID)
		if err != nil {
			s.logger.Error("failed to get rider for completion notification",
				logger.String("user_id", c.UserID),
			)
			continue
		}
		s.notifier.NotifyOfferCompleted(ctx, rider, &snap.Offer, hangout)
	}
}

func (s *CarpoolService) notifyCancelled(ctx context.Context, snap *domain.OfferSnapshot, hangout *domain.Hangout) {
	for _, c := range snap.Claims {
		rider, err := s.users.GetByID(ctx, c.UserID)
		if err != nil {
			s.logger.Error("failed to get rider for cancel notification",
				logger.String("user_id", c.UserID),
			)
			continue
		}
		s.notifier.NotifyOfferCancelled(ctx, rider, hangout)
	}
}

func (s *CarpoolService) publishClaimCreated(ctx context.Context, c *domain.Claim) {
	if err := s.publisher.PublishClaimCreated(ctx, c); err != nil {
		s.logger.Error("failed to publish claim created event",
			logger.String("offer_id", c.OfferID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *CarpoolService) publishClaimReleased(ctx context.Context, c *domain.Claim) {
	if err := s.publisher.PublishClaimReleased(ctx, c); err != nil {
		s.logger.Error("failed to publish claim released event",
			logger.String("offer_id", c.OfferID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *CarpoolService) publishOfferCompleted(ctx context.Context, o *domain.Offer) {
	if err := s.publisher.PublishOfferCompleted(ctx, o); err != nil {
		s.logger.Error("failed to publish offer completed event",
			logger.String("offer_id", o.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *CarpoolService) publishOfferCancelled(ctx context.Context, o *domain.Offer) {
	if err := s.publisher.PublishOfferCancelled(ctx, o); err != nil {
		s.logger.Error("failed to publish offer cancelled event",
			logger.String("offer_id", o.ID),
			logger.String("error", err.Error()),
		)
	}
}

// carpoolFinalizer locks in the current passenger list as-is.
type carpoolFinalizer struct{}

func (carpoolFinalizer) Finalize(snap *domain.OfferSnapshot) (domain.Offer, []domain.Claim, error) {
	return snap.Offer, nil, nil
}
