package ports

import (
	"context"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
)

// EventPublisher emits domain events for other services (feeds, analytics).
// Publishing is best-effort: failures are logged by the caller, never
// propagated into the claim path.
type EventPublisher interface {
	PublishClaimCreated(ctx context.Context, c *domain.Claim) error
	PublishClaimReleased(ctx context.Context, c *domain.Claim) error
	PublishOfferCompleted(ctx context.Context, o *domain.Offer) error
	PublishOfferCancelled(ctx context.Context, o *domain.Offer) error
}
