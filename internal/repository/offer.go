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

// OfferRepository persists offers and claims. Every mutation is one
// transaction guarded by the offer version, so claim rows and the offer's
// claimed_count can never be applied partially, and claimed_count is always
// recomputed from the claim rows inside the transaction that persists it.
type OfferRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOfferRepo(db *dbpg.DB) *OfferRepository {
	return &OfferRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const offerColumns = `hangout_id, id, owner_id, kind, status, capacity, claimed_count,
		section, notes, final_ticket_count, final_total_cents, version, created_at, updated_at`

const claimColumns = `hangout_id, offer_id, user_id, seat_label, share_cents, created_at, updated_at`

func (r *OfferRepository) CreateOffer(ctx context.Context, o *domain.Offer) error {
	query := `INSERT INTO offers (` + offerColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		o.HangoutID, o.ID, o.OwnerID, o.Kind, o.Status, o.Capacity, o.ClaimedCount,
		o.Section, o.Notes, o.FinalTicketCount, o.FinalTotalCents, o.Version, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrHangoutNotFound
		}
		return fmt.Errorf("insert offer: %w", err)
	}

	return nil
}

// Load reads the offer and all of its claims in one repeatable-read
// transaction so the snapshot is internally consistent.
func (r *OfferRepository) Load(ctx context.Context, hangoutID, offerID string) (*domain.OfferSnapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	offerQuery := `SELECT ` + offerColumns + ` FROM offers WHERE hangout_id = $1 AND id = $2`
	var snap domain.OfferSnapshot
	if err = scanOffer(tx.QueryRowContext(ctx, offerQuery, hangoutID, offerID), &snap.Offer); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}

	claimQuery := `SELECT ` + claimColumns + `
				   FROM claims
				   WHERE hangout_id = $1 AND offer_id = $2
				   ORDER BY created_at`
	rows, err := tx.QueryContext(ctx, claimQuery, hangoutID, offerID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Claim
		if err = scanClaim(rows, &c); err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		snap.Claims = append(snap.Claims, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit snapshot read: %w", err)
	}

	return &snap, nil
}

func (r *OfferRepository) ListByHangout(ctx context.Context, hangoutID string, kind domain.OfferKind) ([]domain.OfferSnapshot, error) {
	offerQuery := `SELECT ` + offerColumns + `
				   FROM offers
				   WHERE hangout_id = $1 AND kind = $2
				   ORDER BY created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, offerQuery, hangoutID, kind)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var snaps []domain.OfferSnapshot
	index := make(map[string]int)
	for rows.Next() {
		var o domain.Offer
		if err = scanOffer(rows, &o); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		index[o.ID] = len(snaps)
		snaps = append(snaps, domain.OfferSnapshot{Offer: o})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, nil
	}

	claimQuery := `SELECT c.` + "hangout_id, c.offer_id, c.user_id, c.seat_label, c.share_cents, c.created_at, c.updated_at" + `
				   FROM claims c
				   JOIN offers o ON o.hangout_id = c.hangout_id AND o.id = c.offer_id
				   WHERE c.hangout_id = $1 AND o.kind = $2
				   ORDER BY c.created_at`
	claimRows, err := r.db.QueryWithRetry(ctx, r.strategy, claimQuery, hangoutID, kind)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer claimRows.Close()

	for claimRows.Next() {
		var c domain.Claim
		if err = scanClaim(claimRows, &c); err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		if i, ok := index[c.OfferID]; ok {
			snaps[i].Claims = append(snaps[i].Claims, c)
		}
	}

	return snaps, claimRows.Err()
}

func (r *OfferRepository) InsertClaim(ctx context.Context, expectedVersion int64, o *domain.Offer, c *domain.Claim) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	insert := `INSERT INTO claims (` + claimColumns + `)
			   VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(
		ctx, insert,
		c.HangoutID, c.OfferID, c.UserID, c.SeatLabel, c.ShareCents, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return domain.ErrAlreadyClaimed
			case "23503":
				return domain.ErrOfferNotFound
			}
		}
		return fmt.Errorf("insert claim: %w", err)
	}

	if err = r.reconcileOffer(ctx, tx, o, expectedVersion); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *OfferRepository) RemoveClaim(ctx context.Context, expectedVersion int64, o *domain.Offer, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	del := `DELETE FROM claims WHERE hangout_id = $1 AND offer_id = $2 AND user_id = $3`
	if _, err = tx.ExecContext(ctx, del, o.HangoutID, o.ID, userID); err != nil {
		return fmt.Errorf("delete claim: %w", err)
	}

	if err = r.reconcileOffer(ctx, tx, o, expectedVersion); err != nil {
		return err
	}

	return tx.Commit()
}

// reconcileOffer bumps the offer version and recomputes claimed_count from
// the claim rows visible inside the transaction. Zero rows affected means
// another writer won the race (or the offer is gone).
func (r *OfferRepository) reconcileOffer(ctx context.Context, tx *sql.Tx, o *domain.Offer, expectedVersion int64) error {
	update := `UPDATE offers
			   SET claimed_count = (SELECT COUNT(*) FROM claims WHERE hangout_id = $1 AND offer_id = $2),
			       version = version + 1,
			       updated_at = $3
			   WHERE hangout_id = $1 AND id = $2 AND version = $4`
	res, err := tx.ExecContext(ctx, update, o.HangoutID, o.ID, o.UpdatedAt, expectedVersion)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	return r.checkGuard(ctx, tx, res, o.HangoutID, o.ID)
}

func (r *OfferRepository) UpdateOffer(ctx context.Context, expectedVersion int64, o *domain.Offer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	update := `UPDATE offers
			   SET capacity = $3, notes = $4, version = version + 1, updated_at = $5
			   WHERE hangout_id = $1 AND id = $2 AND version = $6 AND status = $7`
	res, err := tx.ExecContext(
		ctx, update,
		o.HangoutID, o.ID, o.Capacity, o.Notes, o.UpdatedAt,
		expectedVersion, domain.OfferStatusCollecting,
	)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	if err = r.checkGuard(ctx, tx, res, o.HangoutID, o.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *OfferRepository) CompleteOffer(ctx context.Context, expectedVersion int64, o *domain.Offer, shares []domain.Claim) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	update := `UPDATE offers
			   SET status = $3, final_ticket_count = $4, final_total_cents = $5,
			       version = version + 1, updated_at = $6
			   WHERE hangout_id = $1 AND id = $2 AND version = $7`
	res, err := tx.ExecContext(
		ctx, update,
		o.HangoutID, o.ID, o.Status, o.FinalTicketCount, o.FinalTotalCents,
		o.UpdatedAt, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("complete offer: %w", err)
	}
	if err = r.checkGuard(ctx, tx, res, o.HangoutID, o.ID); err != nil {
		return err
	}

	// claims stay as the historical record of who held a slot; completion
	// only settles their share
	shareUpdate := `UPDATE claims SET share_cents = $4, updated_at = $5
				    WHERE hangout_id = $1 AND offer_id = $2 AND user_id = $3`
	for _, c := range shares {
		if _, err = tx.ExecContext(ctx, shareUpdate, c.HangoutID, c.OfferID, c.UserID, c.ShareCents, c.UpdatedAt); err != nil {
			return fmt.Errorf("settle claim share: %w", err)
		}
	}

	return tx.Commit()
}

func (r *OfferRepository) CancelOffer(ctx context.Context, expectedVersion int64, o *domain.Offer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	update := `UPDATE offers
			   SET status = $3, version = version + 1, updated_at = $4
			   WHERE hangout_id = $1 AND id = $2 AND version = $5`
	res, err := tx.ExecContext(
		ctx, update,
		o.HangoutID, o.ID, domain.OfferStatusCancelled, o.UpdatedAt, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("cancel offer: %w", err)
	}
	if err = r.checkGuard(ctx, tx, res, o.HangoutID, o.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *OfferRepository) CancelStale(ctx context.Context) ([]domain.Offer, error) {
	query := `
		UPDATE offers o
		SET status = $2, version = o.version + 1, updated_at = NOW()
		FROM hangouts h
		WHERE o.hangout_id = h.id
		  AND o.status = $1
		  AND h.starts_at < NOW()
		RETURNING o.hangout_id, o.id, o.owner_id, o.kind, o.status, o.capacity, o.claimed_count,
		          o.section, o.notes, o.final_ticket_count, o.final_total_cents, o.version,
		          o.created_at, o.updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.OfferStatusCollecting, domain.OfferStatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale offers: %w", err)
	}
	defer rows.Close()

	var res []domain.Offer
	for rows.Next() {
		var o domain.Offer
		if err = scanOffer(rows, &o); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		res = append(res, o)
	}

	return res, rows.Err()
}

// checkGuard resolves a zero-row conditional update into the right error:
// the offer vanished, or another writer bumped the version first.
func (r *OfferRepository) checkGuard(ctx context.Context, tx *sql.Tx, res sql.Result, hangoutID, offerID string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("offer rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	check := `SELECT EXISTS(SELECT 1 FROM offers WHERE hangout_id = $1 AND id = $2)`
	if err = tx.QueryRowContext(ctx, check, hangoutID, offerID).Scan(&exists); err != nil {
		return fmt.Errorf("check offer existence: %w", err)
	}
	if !exists {
		return domain.ErrOfferNotFound
	}
	return domain.ErrVersionConflict
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOffer(row rowScanner, o *domain.Offer) error {
	var ticketCount sql.NullInt64
	var totalCents sql.NullInt64
	err := row.Scan(
		&o.HangoutID, &o.ID, &o.OwnerID, &o.Kind, &o.Status, &o.Capacity, &o.ClaimedCount,
		&o.Section, &o.Notes, &ticketCount, &totalCents, &o.Version, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if ticketCount.Valid {
		v := int(ticketCount.Int64)
		o.FinalTicketCount = &v
	}
	if totalCents.Valid {
		v := totalCents.Int64
		o.FinalTotalCents = &v
	}
	return nil
}

func scanClaim(row rowScanner, c *domain.Claim) error {
	var share sql.NullInt64
	err := row.Scan(
		&c.HangoutID, &c.OfferID, &c.UserID, &c.SeatLabel, &share, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if share.Valid {
		v := share.Int64
		c.ShareCents = &v
	}
	return nil
}
