package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
	"github.com/bbthechange/hangoutsBackend-sub008/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	Create(ctx context.Context, hangoutID string, in domain.CreateOfferInput) (*domain.Offer, error)
	Claim(ctx context.Context, hangoutID, offerID, userID string) (*domain.ClaimDetails, error)
	Unclaim(ctx context.Context, hangoutID, offerID, userID string) error
	Update(ctx context.Context, hangoutID, offerID, ownerID string, in domain.UpdateOfferInput) (*domain.Offer, error)
	Complete(ctx context.Context, hangoutID, offerID, ownerID string, in domain.CompleteReservationInput) (*domain.OfferSnapshot, error)
	Cancel(ctx context.Context, hangoutID, offerID, ownerID string) error
	Get(ctx context.Context, hangoutID, offerID string) (*domain.OfferSnapshot, error)
	ListByHangout(ctx context.Context, hangoutID string) ([]domain.OfferSnapshot, error)
}

type CarpoolSvc interface {
	OfferSeats(ctx context.Context, hangoutID string, in domain.CreateOfferInput) (*domain.Offer, error)
	ClaimSeat(ctx context.Context, hangoutID, offerID, riderID, seatLabel string) (*domain.ClaimDetails, error)
	ReleaseSeat(ctx context.Context, hangoutID, offerID, riderID string) error
	UpdateSeats(ctx context.Context, hangoutID, offerID, driverID string, in domain.UpdateOfferInput) (*domain.Offer, error)
	Complete(ctx context.Context, hangoutID, offerID, driverID string) (*domain.OfferSnapshot, error)
	Cancel(ctx context.Context, hangoutID, offerID, driverID string) error
	Get(ctx context.Context, hangoutID, offerID string) (*domain.OfferSnapshot, error)
	ListByHangout(ctx context.Context, hangoutID string) ([]domain.OfferSnapshot, error)
}

type HangoutSvc interface {
	Create(ctx context.Context, in domain.CreateHangoutInput) (*domain.Hangout, error)
	GetDetails(ctx context.Context, id string) (*domain.HangoutDetails, error)
	List(ctx context.Context) ([]*domain.Hangout, error)
	Join(ctx context.Context, hangoutID, userID string) error
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	reservations ReservationSvc
	carpools     CarpoolSvc
	hangouts     HangoutSvc
	users        UserSvc
}

func NewHandler(reservations ReservationSvc, carpools CarpoolSvc, hangouts HangoutSvc, users UserSvc) *Handler {
	return &Handler{
		reservations: reservations,
		carpools:     carpools,
		hangouts:     hangouts,
		users:        users,
	}
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.users.Create(c.Request.Context(), domain.CreateUserInput{
		Username:       req.Username,
		AvatarURL:      req.AvatarURL,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Hangouts

func (h *Handler) CreateHangout(c *ginext.Context) {
	var req dto.CreateHangoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
		})
		return
	}

	hangout, err := h.hangouts.Create(c.Request.Context(), domain.CreateHangoutInput{
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    startsAt,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHangoutResponse(hangout))
}

func (h *Handler) GetHangout(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hangout id"})
		return
	}

	details, err := h.hangouts.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHangoutDetailsResponse(details))
}

func (h *Handler) ListHangouts(c *ginext.Context) {
	hangouts, err := h.hangouts.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.HangoutResponse, 0, len(hangouts))
	for _, hg := range hangouts {
		resp = append(resp, dto.ToHangoutResponse(hg))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) JoinHangout(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hangout id"})
		return
	}

	var req dto.JoinHangoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.hangouts.Join(c.Request.Context(), id, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "joined"})
}

// Reservation offers

func (h *Handler) CreateReservationOffer(c *ginext.Context) {
	hangoutID, ok := h.pathID(c, "id", "invalid hangout id")
	if !ok {
		return
	}

	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	offer, err := h.reservations.Create(c.Request.Context(), hangoutID, domain.CreateOfferInput{
		OwnerID:  req.OwnerID,
		Capacity: req.Capacity,
		Section:  req.Section,
		Notes:    req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOfferResponse(offer))
}

func (h *Handler) ListReservationOffers(c *ginext.Context) {
	hangoutID, ok := h.pathID(c, "id", "invalid hangout id")
	if !ok {
		return
	}

	snaps, err := h.reservations.ListByHangout(c.Request.Context(), hangoutID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OfferDetailsResponse, 0, len(snaps))
	for i := range snaps {
		resp = append(resp, dto.ToOfferDetailsResponse(&snaps[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetReservationOffer(c *ginext.Context) {
	hangoutID, offerID, ok := h.offerPath(c)
	if !ok {
		return
	}

	snap, err := h.reservations.Get(c.Request.Context(), hangoutID, offerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferDetailsResponse(snap))
}

func (h *Handler) ClaimReservation(c *ginext.Context) {
	hangoutID, offerID, ok := h.offerPath(c)
	if !ok {
		return
	}

	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	details, err := h.reservations.Claim(c.Request.Context(), hangoutID, offerID, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClaimDetailsResponse(details))
}

func (h *Handler) UnclaimReservation(c *ginext.Context) {
	hangoutID, offerID, ok := h.offerPath(c)
	if !ok {
		return
	}

	var req dto.UnclaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.reservations.Unclaim(c.Request.Context(), hangoutID, offerID, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "released"})
}

func (h *Handler) UpdateReservationOffer(c *ginext.Context) {
	hangoutID, offerID, ok := h.offerPath(c)
	if !ok {
		return
	}

	var req dto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	offer, err := h.reservations.Update(c.Request.Context(), hangoutID, offerID, req.OwnerID, domain.UpdateOfferInput{
		Capacity: req.Capacity,
		Notes:    req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferResponse(offer))
}

func (h *Handler) CompleteReservationOffer(c *ginext.Context) {
	hangoutID, offerID, ok := h.offerPath(c)
	if !ok {
		return
	}

	var req dto.CompleteReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	snap, err := h.reservations.Complete(c.Request.Context(), hangoutID, offerID, req.OwnerID, domain.CompleteReservationInput{
		TicketCount: req.TicketCount,
		TotalCents:  req.TotalCents,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferDetailsResponse(snap))
}

func (h *Handler) CancelReservationOffer(c *ginext.Context) {
	hangoutID, offerID, ok := h.offerPath(c)
	if !ok {
		return
	}

	var req dto.CancelOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.reservations.Cancel(c.Request.Context(), hangoutID, offerID, req.OwnerID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Carpools

func (h *Handler) CreateCarOffer(c *ginext.Context) {
	hangoutID, ok := h.pathID(c, "id", "invalid hangout id")
	if !ok {
		return
	}

	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	offer, err := h.carpools.OfferSeats(c.Request.Context(), hangoutID, domain.CreateOfferInput{
		OwnerID:  req.OwnerID,
		Capacity: req.Capacity,
		Notes:    req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOfferResponse(offer))
}

func (h *Handler) ListCarOffers(c *ginext.Context) {
	hangoutID, ok := h.pathID(c, "id", "invalid hangout id")
	if !ok {
		return
	}

	snaps, err := h.carpools.ListByHangout(c.Request.Context(), hangoutID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OfferDetailsResponse, 0, len(snaps))
	for i := range snaps {
		resp = append(resp, dto.ToOfferDetailsResponse(&snaps[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCarOffer(c *ginext.Context) {
	hangoutID, offerID, ok := h.offerPath(c)
	if !ok {
		return
	}

	snap, err := h.carpools.Get(c.Request.Context(), hangoutID, offerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferDetailsResponse(snap))
}

func (h *Handler) ClaimSeat(c *ginext.Context) {
	hangoutID, offerID, ok := h.offerPath(c)
	if !ok {
		return
	}

	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	details, err := h.carpools.ClaimSeat(c.Request.Context(), hangoutID, offerID, req.UserID, req.SeatLabel)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClaimDetailsResponse(details))
}

func (h *Handler) ReleaseSeat(c *ginext.Context) {
	hangoutID, offerID, ok := h.offerPath(c)
	if !ok {
		return
	}

	var req dto.UnclaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.carpools.ReleaseSeat(c.Request.Context(), hangoutID, offerID, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "released"})
}

func (h *Handler) UpdateCarOffer(c *ginext.Context) {
	hangoutID, offerID, ok := h.offerPath(c)
	if !ok {
		return
	}

	var req dto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	offer, err := h.carpools.UpdateSeats(c.Request.Context(), hangoutID, offerID, req.OwnerID, domain.UpdateOfferInput{
		Capacity: req.Capacity,
		Notes:    req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferResponse(offer))
}

func (h *Handler) CompleteCarOffer(c *ginext.Context) {
	hangoutID, offerID, ok := h.offerPath(c)
	if !ok {
		return
	}

	var req dto.CompleteCarpoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	snap, err := h.carpools.Complete(c.Request.Context(), hangoutID, offerID, req.DriverID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferDetailsResponse(snap))
}

func (h *Handler) CancelCarOffer(c *ginext.Context) {
	hangoutID, offerID, ok := h.offerPath(c)
	if !ok {
		return
	}

	var req dto.CancelOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.carpools.Cancel(c.Request.Context(), hangoutID, offerID, req.OwnerID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) pathID(c *ginext.Context, name, msg string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func (h *Handler) offerPath(c *ginext.Context) (string, string, bool) {
	hangoutID, ok := h.pathID(c, "id", "invalid hangout id")
	if !ok {
		return "", "", false
	}
	offerID, ok := h.pathID(c, "offerID", "invalid offer id")
	if !ok {
		return "", "", false
	}
	return hangoutID, offerID, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrHangoutNotFound),
		errors.Is(err, domain.ErrOfferNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrNotMember):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrOfferNotCollecting),
		errors.Is(err, domain.ErrAlreadyClaimed),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrVersionConflict):
		// retry budget exhausted under contention; the client may try again
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
