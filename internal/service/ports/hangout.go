package ports

import (
	"context"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
)

type HangoutRepo interface {
	Create(ctx context.Context, h *domain.Hangout) error
	GetByID(ctx context.Context, id string) (*domain.Hangout, error)
	List(ctx context.Context) ([]*domain.Hangout, error)
	AddMember(ctx context.Context, hangoutID, userID string) error
	IsMember(ctx context.Context, hangoutID, userID string) (bool, error)
	ListMembers(ctx context.Context, hangoutID string) ([]*domain.User, error)
}
