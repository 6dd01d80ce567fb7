package dto

import (
	"time"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
)

type OfferResponse struct {
	ID               string `json:"id"`
	HangoutID        string `json:"hangout_id"`
	OwnerID          string `json:"owner_id"`
	Kind             string `json:"kind"`
	Status           string `json:"status"`
	Capacity         int    `json:"capacity"`
	ClaimedCount     int    `json:"claimed_count"`
	AvailableSlots   int    `json:"available_slots"`
	Section          string `json:"section,omitempty"`
	Notes            string `json:"notes,omitempty"`
	FinalTicketCount *int   `json:"final_ticket_count,omitempty"`
	FinalTotalCents  *int64 `json:"final_total_cents,omitempty"`
	CreatedAt        string `json:"created_at"`
}

type ClaimResponse struct {
	OfferID    string `json:"offer_id"`
	UserID     string `json:"user_id"`
	SeatLabel  string `json:"seat_label,omitempty"`
	ShareCents *int64 `json:"share_cents,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type ClaimDetailsResponse struct {
	ClaimResponse
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type OfferDetailsResponse struct {
	Offer  OfferResponse   `json:"offer"`
	Claims []ClaimResponse `json:"claims"`
}

type HangoutResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartsAt    string `json:"starts_at"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}

type HangoutDetailsResponse struct {
	Hangout HangoutResponse        `json:"hangout"`
	Members []UserResponse         `json:"members"`
	Offers  []OfferDetailsResponse `json:"offers"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToOfferResponse(o *domain.Offer) OfferResponse {
	return OfferResponse{
		ID:               o.ID,
		HangoutID:        o.HangoutID,
		OwnerID:          o.OwnerID,
		Kind:             string(o.Kind),
		Status:           string(o.Status),
		Capacity:         o.Capacity,
		ClaimedCount:     o.ClaimedCount,
		AvailableSlots:   o.Pool().Available(),
		Section:          o.Section,
		Notes:            o.Notes,
		FinalTicketCount: o.FinalTicketCount,
		FinalTotalCents:  o.FinalTotalCents,
		CreatedAt:        o.CreatedAt.Format(time.RFC3339),
	}
}

func ToClaimResponse(c *domain.Claim) ClaimResponse {
	return ClaimResponse{
		OfferID:    c.OfferID,
		UserID:     c.UserID,
		SeatLabel:  c.SeatLabel,
		ShareCents: c.ShareCents,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
	}
}

func ToClaimDetailsResponse(d *domain.ClaimDetails) ClaimDetailsResponse {
	return ClaimDetailsResponse{
		ClaimResponse: ToClaimResponse(&d.Claim),
		Username:      d.Username,
		AvatarURL:     d.AvatarURL,
	}
}

func ToOfferDetailsResponse(snap *domain.OfferSnapshot) OfferDetailsResponse {
	claims := make([]ClaimResponse, 0, len(snap.Claims))
	for i := range snap.Claims {
		claims = append(claims, ToClaimResponse(&snap.Claims[i]))
	}

	return OfferDetailsResponse{
		Offer:  ToOfferResponse(&snap.Offer),
		Claims: claims,
	}
}

func ToHangoutResponse(h *domain.Hangout) HangoutResponse {
	return HangoutResponse{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Description,
		StartsAt:    h.StartsAt.Format(time.RFC3339),
		CreatedBy:   h.CreatedBy,
		CreatedAt:   h.CreatedAt.Format(time.RFC3339),
	}
}

func ToHangoutDetailsResponse(d *domain.HangoutDetails) HangoutDetailsResponse {
	members := make([]UserResponse, 0, len(d.Members))
	for i := range d.Members {
		members = append(members, ToUserResponse(&d.Members[i]))
	}

	offers := make([]OfferDetailsResponse, 0, len(d.Offers))
	for i := range d.Offers {
		offers = append(offers, ToOfferDetailsResponse(&d.Offers[i]))
	}

	return HangoutDetailsResponse{
		Hangout: ToHangoutResponse(&d.Hangout),
		Members: members,
		Offers:  offers,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		AvatarURL:      u.AvatarURL,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
