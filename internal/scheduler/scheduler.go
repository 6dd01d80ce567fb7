package scheduler

import (
	"context"
	"time"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
	"github.com/bbthechange/hangoutsBackend-sub008/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type offerCloser interface {
	CancelStale(ctx context.Context) ([]domain.Offer, error)
}

// Scheduler periodically cancels collecting offers whose hangout has already
// started; with the hangout underway nobody can claim or settle them anymore.
type Scheduler struct {
	offers    offerCloser
	publisher ports.EventPublisher
	interval  time.Duration
	logger    logger.Logger
}

func New(
	offers offerCloser,
	publisher ports.EventPublisher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		offers:    offers,
		publisher: publisher,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.offers.CancelStale(ctx)
	if err != nil {
		s.logger.Error("failed to cancel stale offers",
			logger.String("error", err.Error()),
		)
		return
	}

	for i := range cancelled {
		o := cancelled[i]
		s.logger.Info("stale offer cancelled",
			logger.String("offer_id", o.ID),
			logger.String("hangout_id", o.HangoutID),
			logger.String("kind", string(o.Kind)),
		)

		if err := s.publisher.PublishOfferCancelled(ctx, &o); err != nil {
			s.logger.Error("failed to publish offer cancelled event",
				logger.String("offer_id", o.ID),
				logger.String("error", err.Error()),
			)
		}
	}
}
