package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
	"github.com/bbthechange/hangoutsBackend-sub008/internal/handler/dto"
	hmocks "github.com/bbthechange/hangoutsBackend-sub008/internal/handler/mocks"
)

type handlerMocks struct {
	reservations *hmocks.MockReservationSvc
	carpools     *hmocks.MockCarpoolSvc
	hangouts     *hmocks.MockHangoutSvc
	users        *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		reservations: hmocks.NewMockReservationSvc(t),
		carpools:     hmocks.NewMockCarpoolSvc(t),
		hangouts:     hmocks.NewMockHangoutSvc(t),
		users:        hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.reservations, m.carpools, m.hangouts, m.users)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.POST("/hangouts", h.CreateHangout)
		api.GET("/hangouts", h.ListHangouts)
		api.GET("/hangouts/:id", h.GetHangout)
		api.POST("/hangouts/:id/join", h.JoinHangout)

		api.POST("/hangouts/:id/reservations", h.CreateReservationOffer)
		api.GET("/hangouts/:id/reservations", h.ListReservationOffers)
		api.GET("/hangouts/:id/reservations/:offerID", h.GetReservationOffer)
		api.PATCH("/hangouts/:id/reservations/:offerID", h.UpdateReservationOffer)
		api.POST("/hangouts/:id/reservations/:offerID/claim", h.ClaimReservation)
		api.POST("/hangouts/:id/reservations/:offerID/unclaim", h.UnclaimReservation)
		api.POST("/hangouts/:id/reservations/:offerID/complete", h.CompleteReservationOffer)
		api.POST("/hangouts/:id/reservations/:offerID/cancel", h.CancelReservationOffer)

		api.POST("/hangouts/:id/carpools", h.CreateCarOffer)
		api.GET("/hangouts/:id/carpools", h.ListCarOffers)
		api.POST("/hangouts/:id/carpools/:offerID/claim", h.ClaimSeat)
		api.POST("/hangouts/:id/carpools/:offerID/unclaim", h.ReleaseSeat)
		api.POST("/hangouts/:id/carpools/:offerID/complete", h.CompleteCarOffer)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		CreatedAt: time.Now(),
	}
	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "alice"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "taken"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Hangouts ---

func TestHandler_CreateHangout_Success(t *testing.T) {
	m, r := setupRouter(t)

	starts := time.Now().Add(48 * time.Hour)
	hangout := &domain.Hangout{
		ID:        uuid.New().String(),
		Title:     "Karaoke night",
		StartsAt:  starts,
		CreatedBy: uuid.New().String(),
		CreatedAt: time.Now(),
	}
	m.hangouts.EXPECT().Create(mock.Anything, mock.Anything).Return(hangout, nil)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts", dto.CreateHangoutRequest{
		Title:     "Karaoke night",
		StartsAt:  starts.Format(time.RFC3339),
		CreatedBy: hangout.CreatedBy,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.HangoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Karaoke night", resp.Title)
}

func TestHandler_CreateHangout_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts", map[string]string{
		"title":      "X",
		"starts_at":  "not-a-date",
		"created_by": uuid.New().String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetHangout_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/hangouts/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetHangout_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.hangouts.EXPECT().GetDetails(mock.Anything, id).Return(nil, domain.ErrHangoutNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/hangouts/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetHangout_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	details := &domain.HangoutDetails{
		Hangout: domain.Hangout{ID: id, Title: "Karaoke night", StartsAt: time.Now(), CreatedAt: time.Now()},
		Members: []domain.User{{ID: "u1", Username: "alice", CreatedAt: time.Now()}},
		Offers:  []domain.OfferSnapshot{},
	}
	m.hangouts.EXPECT().GetDetails(mock.Anything, id).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/hangouts/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.HangoutDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Members, 1)
}

func TestHandler_JoinHangout_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	userID := uuid.New().String()
	m.hangouts.EXPECT().Join(mock.Anything, id, userID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts/"+id+"/join", dto.JoinHangoutRequest{UserID: userID})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Reservation offers ---

func TestHandler_CreateReservationOffer_Success(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	ownerID := uuid.New().String()
	offer := &domain.Offer{
		ID:        uuid.New().String(),
		HangoutID: hangoutID,
		OwnerID:   ownerID,
		Kind:      domain.OfferKindReservation,
		Status:    domain.OfferStatusCollecting,
		Capacity:  4,
		CreatedAt: time.Now(),
	}
	m.reservations.EXPECT().Create(mock.Anything, hangoutID, mock.Anything).Return(offer, nil)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts/"+hangoutID+"/reservations", dto.CreateOfferRequest{
		OwnerID:  ownerID,
		Capacity: 4,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OfferResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Capacity)
	assert.Equal(t, 4, resp.AvailableSlots)
}

func TestHandler_ClaimReservation_Success(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	offerID := uuid.New().String()
	userID := uuid.New().String()

	details := &domain.ClaimDetails{
		Claim: domain.Claim{
			HangoutID: hangoutID,
			OfferID:   offerID,
			UserID:    userID,
			CreatedAt: time.Now(),
		},
		Username: "alice",
	}
	m.reservations.EXPECT().Claim(mock.Anything, hangoutID, offerID, userID).Return(details, nil)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts/"+hangoutID+"/reservations/"+offerID+"/claim",
		dto.ClaimRequest{UserID: userID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ClaimDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_ClaimReservation_Full(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	offerID := uuid.New().String()
	userID := uuid.New().String()

	m.reservations.EXPECT().Claim(mock.Anything, hangoutID, offerID, userID).
		Return(nil, domain.ErrCapacityExceeded)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts/"+hangoutID+"/reservations/"+offerID+"/claim",
		dto.ClaimRequest{UserID: userID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ClaimReservation_NotMember(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	offerID := uuid.New().String()
	userID := uuid.New().String()

	m.reservations.EXPECT().Claim(mock.Anything, hangoutID, offerID, userID).
		Return(nil, domain.ErrNotMember)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts/"+hangoutID+"/reservations/"+offerID+"/claim",
		dto.ClaimRequest{UserID: userID})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ClaimReservation_RetryBudgetExhausted(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	offerID := uuid.New().String()
	userID := uuid.New().String()

	m.reservations.EXPECT().Claim(mock.Anything, hangoutID, offerID, userID).
		Return(nil, domain.ErrVersionConflict)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts/"+hangoutID+"/reservations/"+offerID+"/claim",
		dto.ClaimRequest{UserID: userID})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_UnclaimReservation_Success(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	offerID := uuid.New().String()
	userID := uuid.New().String()

	m.reservations.EXPECT().Unclaim(mock.Anything, hangoutID, offerID, userID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts/"+hangoutID+"/reservations/"+offerID+"/unclaim",
		dto.UnclaimRequest{UserID: userID})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateReservationOffer_NotOwner(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	offerID := uuid.New().String()
	ownerID := uuid.New().String()

	m.reservations.EXPECT().Update(mock.Anything, hangoutID, offerID, ownerID, mock.Anything).
		Return(nil, domain.ErrNotOwner)

	capacity := 6
	w := doJSON(t, r, http.MethodPatch, "/api/hangouts/"+hangoutID+"/reservations/"+offerID,
		dto.UpdateOfferRequest{OwnerID: ownerID, Capacity: &capacity})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CompleteReservationOffer_Success(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	offerID := uuid.New().String()
	ownerID := uuid.New().String()

	tickets := 2
	total := int64(5000)
	share := int64(2500)
	snap := &domain.OfferSnapshot{
		Offer: domain.Offer{
			ID:               offerID,
			HangoutID:        hangoutID,
			OwnerID:          ownerID,
			Kind:             domain.OfferKindReservation,
			Status:           domain.OfferStatusCompleted,
			Capacity:         2,
			ClaimedCount:     2,
			FinalTicketCount: &tickets,
			FinalTotalCents:  &total,
			CreatedAt:        time.Now(),
		},
		Claims: []domain.Claim{
			{OfferID: offerID, UserID: "u1", ShareCents: &share, CreatedAt: time.Now()},
			{OfferID: offerID, UserID: "u2", ShareCents: &share, CreatedAt: time.Now()},
		},
	}
	m.reservations.EXPECT().Complete(mock.Anything, hangoutID, offerID, ownerID, mock.Anything).
		Return(snap, nil)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts/"+hangoutID+"/reservations/"+offerID+"/complete",
		dto.CompleteReservationRequest{OwnerID: ownerID, TicketCount: 2, TotalCents: 5000})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OfferDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Offer.Status)
	require.Len(t, resp.Claims, 2)
	require.NotNil(t, resp.Claims[0].ShareCents)
	assert.Equal(t, int64(2500), *resp.Claims[0].ShareCents)
}

func TestHandler_CancelReservationOffer_Success(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	offerID := uuid.New().String()
	ownerID := uuid.New().String()

	m.reservations.EXPECT().Cancel(mock.Anything, hangoutID, offerID, ownerID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts/"+hangoutID+"/reservations/"+offerID+"/cancel",
		dto.CancelOfferRequest{OwnerID: ownerID})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListReservationOffers_Success(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	snaps := []domain.OfferSnapshot{
		{Offer: domain.Offer{ID: "o1", Kind: domain.OfferKindReservation, Capacity: 4, CreatedAt: time.Now()}},
	}
	m.reservations.EXPECT().ListByHangout(mock.Anything, hangoutID).Return(snaps, nil)

	w := doJSON(t, r, http.MethodGet, "/api/hangouts/"+hangoutID+"/reservations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.OfferDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Carpools ---

func TestHandler_CreateCarOffer_Success(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	driverID := uuid.New().String()
	offer := &domain.Offer{
		ID:        uuid.New().String(),
		HangoutID: hangoutID,
		OwnerID:   driverID,
		Kind:      domain.OfferKindCarpool,
		Status:    domain.OfferStatusCollecting,
		Capacity:  3,
		CreatedAt: time.Now(),
	}
	m.carpools.EXPECT().OfferSeats(mock.Anything, hangoutID, mock.Anything).Return(offer, nil)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts/"+hangoutID+"/carpools", dto.CreateOfferRequest{
		OwnerID:  driverID,
		Capacity: 3,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OfferResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "carpool", resp.Kind)
}

func TestHandler_ClaimSeat_Success(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	offerID := uuid.New().String()
	riderID := uuid.New().String()

	details := &domain.ClaimDetails{
		Claim: domain.Claim{
			HangoutID: hangoutID,
			OfferID:   offerID,
			UserID:    riderID,
			SeatLabel: "front",
			CreatedAt: time.Now(),
		},
		Username: "bob",
	}
	m.carpools.EXPECT().ClaimSeat(mock.Anything, hangoutID, offerID, riderID, "front").Return(details, nil)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts/"+hangoutID+"/carpools/"+offerID+"/claim",
		dto.ClaimRequest{UserID: riderID, SeatLabel: "front"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ClaimDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "front", resp.SeatLabel)
}

func TestHandler_ReleaseSeat_Success(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	offerID := uuid.New().String()
	riderID := uuid.New().String()

	m.carpools.EXPECT().ReleaseSeat(mock.Anything, hangoutID, offerID, riderID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts/"+hangoutID+"/carpools/"+offerID+"/unclaim",
		dto.UnclaimRequest{UserID: riderID})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CompleteCarOffer_AlreadyTerminal(t *testing.T) {
	m, r := setupRouter(t)

	hangoutID := uuid.New().String()
	offerID := uuid.New().String()
	driverID := uuid.New().String()

	m.carpools.EXPECT().Complete(mock.Anything, hangoutID, offerID, driverID).
		Return(nil, domain.ErrOfferNotCollecting)

	w := doJSON(t, r, http.MethodPost, "/api/hangouts/"+hangoutID+"/carpools/"+offerID+"/complete",
		dto.CompleteCarpoolRequest{DriverID: driverID})

	assert.Equal(t, http.StatusConflict, w.Code)
}
