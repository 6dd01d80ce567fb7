package domain

import "time"

type OfferKind string

const (
	OfferKindReservation OfferKind = "reservation"
	OfferKindCarpool     OfferKind = "carpool"
)

type OfferStatus string

const (
	OfferStatusCollecting OfferStatus = "collecting"
	OfferStatusCompleted  OfferStatus = "completed"
	OfferStatusCancelled  OfferStatus = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s OfferStatus) Terminal() bool {
	return s == OfferStatusCompleted || s == OfferStatusCancelled
}

// Offer is a capacity-bounded pool of slots (ticket reservations or car
// seats) owned by one member of a hangout. ClaimedCount is denormalized for
// fast reads; the store recomputes it from claim rows inside every write
// transaction so it cannot drift. Version guards every conditional write.
type Offer struct {
	ID           string      `json:"id"`
	HangoutID    string      `json:"hangout_id"`
	OwnerID      string      `json:"owner_id"`
	Kind         OfferKind   `json:"kind"`
	Status       OfferStatus `json:"status"`
	Capacity     int         `json:"capacity"`
	ClaimedCount int         `json:"claimed_count"`
	Section      string      `json:"section,omitempty"`
	Notes        string      `json:"notes,omitempty"`

	// Set at completion time for reservation offers.
	FinalTicketCount *int   `json:"final_ticket_count,omitempty"`
	FinalTotalCents  *int64 `json:"final_total_cents,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Offer) Pool() Pool {
	return Pool{Capacity: o.Capacity, Claimed: o.ClaimedCount}
}

// Claim records one user holding one unit of an offer's capacity. The
// (HangoutID, OfferID, UserID) tuple is unique; that uniqueness is the
// double-claim guard.
type Claim struct {
	HangoutID  string    `json:"hangout_id"`
	OfferID    string    `json:"offer_id"`
	UserID     string    `json:"user_id"`
	SeatLabel  string    `json:"seat_label,omitempty"`
	ShareCents *int64    `json:"share_cents,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OfferSnapshot is one consistent read of an offer and all of its claims.
type OfferSnapshot struct {
	Offer  Offer   `json:"offer"`
	Claims []Claim `json:"claims"`
}

// ClaimFor returns the snapshot's claim held by userID, or nil.
func (s *OfferSnapshot) ClaimFor(userID string) *Claim {
	for i := range s.Claims {
		if s.Claims[i].UserID == userID {
			return &s.Claims[i]
		}
	}
	return nil
}

// ClaimDetails is a claim enriched with display identity resolved from the
// user store. The enrichment is a side read, never part of the atomic write.
type ClaimDetails struct {
	Claim     Claim  `json:"claim"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type CreateOfferInput struct {
	OwnerID  string
	Capacity int
	Section  string
	Notes    string
}

// UpdateOfferInput carries owner edits to a collecting offer. Nil fields are
// left unchanged.
type UpdateOfferInput struct {
	Capacity *int
	Notes    *string
}

type CompleteReservationInput struct {
	TicketCount int
	TotalCents  int64
}
