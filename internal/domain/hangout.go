package domain

import "time"

type Hangout struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HangoutDetails struct {
	Hangout Hangout         `json:"hangout"`
	Members []User          `json:"members"`
	Offers  []OfferSnapshot `json:"offers"`
}

type CreateHangoutInput struct {
	Title       string
	Description string
	StartsAt    time.Time
	CreatedBy   string
}
