package dto

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	AvatarURL      string `json:"avatar_url"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateHangoutRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartsAt    string `json:"starts_at" binding:"required"`
	CreatedBy   string `json:"created_by" binding:"required,uuid"`
}

type JoinHangoutRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CreateOfferRequest struct {
	OwnerID  string `json:"owner_id" binding:"required,uuid"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Section  string `json:"section"`
	Notes    string `json:"notes"`
}

type ClaimRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	SeatLabel string `json:"seat_label"`
}

type UnclaimRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type UpdateOfferRequest struct {
	OwnerID  string  `json:"owner_id" binding:"required,uuid"`
	Capacity *int    `json:"capacity"`
	Notes    *string `json:"notes"`
}

type CompleteReservationRequest struct {
	OwnerID     string `json:"owner_id" binding:"required,uuid"`
	TicketCount int    `json:"ticket_count" binding:"required,gt=0"`
	TotalCents  int64  `json:"total_cents" binding:"min=0"`
}

type CompleteCarpoolRequest struct {
	DriverID string `json:"driver_id" binding:"required,uuid"`
}

type CancelOfferRequest struct {
	OwnerID string `json:"owner_id" binding:"required,uuid"`
}
