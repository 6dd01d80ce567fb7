package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
	"github.com/bbthechange/hangoutsBackend-sub008/internal/service/ports"
	"github.com/google/uuid"
)

type HangoutService struct {
	repo   ports.HangoutRepo
	offers ports.OfferStore
	users  ports.UserRepo
}

func NewHangoutService(repo ports.HangoutRepo, offers ports.OfferStore, users ports.UserRepo) *HangoutService {
	return &HangoutService{
		repo:   repo,
		offers: offers,
		users:  users,
	}
}

func (s *HangoutService) Create(ctx context.Context, in domain.CreateHangoutInput) (*domain.Hangout, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.StartsAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}
	if _, err := s.users.GetByID(ctx, in.CreatedBy); err != nil {
		return nil, fmt.Errorf("check creator: %w", err)
	}

	now := time.Now().UTC()
	hangout := &domain.Hangout{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		StartsAt:    in.StartsAt,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, hangout); err != nil {
		return nil, fmt.Errorf("create hangout: %w", err)
	}

	// creator joins their own hangout
	if err := s.repo.AddMember(ctx, hangout.ID, in.CreatedBy); err != nil {
		return nil, fmt.Errorf("add creator as member: %w", err)
	}

	return hangout, nil
}

func (s *HangoutService) GetDetails(ctx context.Context, id string) (*domain.HangoutDetails, error) {
	hangout, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	reservations, err := s.offers.ListByHangout(ctx, id, domain.OfferKindReservation)
	if err != nil {
		return nil, fmt.Errorf("list reservation offers: %w", err)
	}
	carpools, err := s.offers.ListByHangout(ctx, id, domain.OfferKindCarpool)
	if err != nil {
		return nil, fmt.Errorf("list car offers: %w", err)
	}

	details := &domain.HangoutDetails{
		Hangout: *hangout,
		Members: make([]domain.User, len(members)),
		Offers:  append(reservations, carpools...),
	}
	for i, m := range members {
		details.Members[i] = *m
	}

	return details, nil
}

func (s *HangoutService) List(ctx context.Context) ([]*domain.Hangout, error) {
	return s.repo.List(ctx)
}

func (s *HangoutService) Join(ctx context.Context, hangoutID, userID string) error {
	if _, err := s.repo.GetByID(ctx, hangoutID); err != nil {
		return fmt.Errorf("check hangout: %w", err)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if err := s.repo.AddMember(ctx, hangoutID, userID); err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}
