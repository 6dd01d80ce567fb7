package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type HangoutRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHangoutRepo(db *dbpg.DB) *HangoutRepository {
	return &HangoutRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *HangoutRepository) Create(ctx context.Context, h *domain.Hangout) error {
	query := `INSERT INTO hangouts (id, title, description, starts_at, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		h.ID, h.Title, h.Description, h.StartsAt, h.CreatedBy, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert hangout: %w", err)
	}

	return nil
}

func (r *HangoutRepository) GetByID(ctx context.Context, id string) (*domain.Hangout, error) {
	query := `SELECT id, title, description, starts_at, created_by, created_at, updated_at
			  FROM hangouts
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get hangout: %w", err)
	}

	var h domain.Hangout
	if err = row.Scan(&h.ID, &h.Title, &h.Description, &h.StartsAt, &h.CreatedBy, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHangoutNotFound
		}
		return nil, fmt.Errorf("scan hangout: %w", err)
	}

	return &h, nil
}

func (r *HangoutRepository) List(ctx context.Context) ([]*domain.Hangout, error) {
	query := `SELECT id, title, description, starts_at, created_by, created_at, updated_at
			  FROM hangouts
			  ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list hangouts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Hangout
	for rows.Next() {
		var h domain.Hangout
		if err = rows.Scan(&h.ID, &h.Title, &h.Description, &h.StartsAt, &h.CreatedBy, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan hangout: %w", err)
		}
		res = append(res, &h)
	}

	return res, rows.Err()
}

func (r *HangoutRepository) AddMember(ctx context.Context, hangoutID, userID string) error {
	// joining twice is fine
	query := `INSERT INTO hangout_members (hangout_id, user_id, joined_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (hangout_id, user_id) DO NOTHING`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, hangoutID, userID, time.Now().UTC())
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrHangoutNotFound
		}
		return fmt.Errorf("insert member: %w", err)
	}

	return nil
}

func (r *HangoutRepository) IsMember(ctx context.Context, hangoutID, userID string) (bool, error) {
	query := `SELECT EXISTS(
				SELECT 1 FROM hangout_members
				WHERE hangout_id = $1 AND user_id = $2
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, hangoutID, userID)
	if err != nil {
		return false, fmt.Errorf("check member: %w", err)
	}

	var ok bool
	if err = row.Scan(&ok); err != nil {
		return false, fmt.Errorf("scan member check: %w", err)
	}

	return ok, nil
}

func (r *HangoutRepository) ListMembers(ctx context.Context, hangoutID string) ([]*domain.User, error) {
	query := `SELECT u.id, u.username, u.avatar_url, u.telegram_chat_id, u.created_at
			  FROM users u
			  JOIN hangout_members m ON m.user_id = u.id
			  WHERE m.hangout_id = $1
			  ORDER BY m.joined_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, hangoutID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Username, &u.AvatarURL, &u.TelegramChatID, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}
