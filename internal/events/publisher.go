package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
)

const (
	ClaimCreatedQueue   = "offer.claim.created"
	ClaimReleasedQueue  = "offer.claim.released"
	OfferCompletedQueue = "offer.completed"
	OfferCancelledQueue = "offer.cancelled"
)

type ClaimEvent struct {
	EventType string    `json:"event_type"`
	HangoutID string    `json:"hangout_id"`
	OfferID   string    `json:"offer_id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

type OfferEvent struct {
	EventType    string    `json:"event_type"`
	HangoutID    string    `json:"hangout_id"`
	OfferID      string    `json:"offer_id"`
	OwnerID      string    `json:"owner_id"`
	Kind         string    `json:"kind"`
	ClaimedCount int       `json:"claimed_count"`
	TotalCents   *int64    `json:"total_cents,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Publisher emits offer lifecycle events onto RabbitMQ queues. A zero
// Publisher (no channel) is valid and drops events, so environments without
// a broker keep working.
type Publisher struct {
	ch *amqp.Channel
}

func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Declare queues so publish never fails due to missing infra
	for _, q := range []string{ClaimCreatedQueue, ClaimReleasedQueue, OfferCompletedQueue, OfferCancelledQueue} {
		if _, err = ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			return nil, fmt.Errorf("declare %s: %w", q, err)
		}
	}

	return &Publisher{ch: ch}, nil
}

// Disabled returns a publisher that silently drops every event.
func Disabled() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Close() error {
	if p.ch == nil {
		return nil
	}
	return p.ch.Close()
}

func (p *Publisher) PublishClaimCreated(ctx context.Context, c *domain.Claim) error {
	return p.publishClaim(ctx, ClaimCreatedQueue, "ClaimCreated", c)
}

func (p *Publisher) PublishClaimReleased(ctx context.Context, c *domain.Claim) error {
	return p.publishClaim(ctx, ClaimReleasedQueue, "ClaimReleased", c)
}

func (p *Publisher) PublishOfferCompleted(ctx context.Context, o *domain.Offer) error {
	return p.publishOffer(ctx, OfferCompletedQueue, "OfferCompleted", o)
}

func (p *Publisher) PublishOfferCancelled(ctx context.Context, o *domain.Offer) error {
	return p.publishOffer(ctx, OfferCancelledQueue, "OfferCancelled", o)
}

func (p *Publisher) publishClaim(ctx context.Context, queue, eventType string, c *domain.Claim) error {
	ev := ClaimEvent{
		EventType: eventType,
		HangoutID: c.HangoutID,
		OfferID:   c.OfferID,
		UserID:    c.UserID,
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", eventType, err)
	}

	return p.publishJSON(ctx, queue, body)
}

func (p *Publisher) publishOffer(ctx context.Context, queue, eventType string, o *domain.Offer) error {
	ev := OfferEvent{
		EventType:    eventType,
		HangoutID:    o.HangoutID,
		OfferID:      o.ID,
		OwnerID:      o.OwnerID,
		Kind:         string(o.Kind),
		ClaimedCount: o.ClaimedCount,
		TotalCents:   o.FinalTotalCents,
		Timestamp:    time.Now().UTC(),
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", eventType, err)
	}

	return p.publishJSON(ctx, queue, body)
}

func (p *Publisher) publishJSON(ctx context.Context, routingKey string, body []byte) error {
	if p.ch == nil {
		return nil
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		"",         // default exchange
		routingKey, // queue name as routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
