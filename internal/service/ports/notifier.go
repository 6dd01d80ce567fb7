package ports

import (
	"context"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
)

type OfferNotifier interface {
	NotifyClaimCreated(ctx context.Context, user *domain.User, hangout *domain.Hangout)
	NotifyOfferCompleted(ctx context.Context, user *domain.User, offer *domain.Offer, hangout *domain.Hangout)
	NotifyOfferCancelled(ctx context.Context, user *domain.User, hangout *domain.Hangout)
}
