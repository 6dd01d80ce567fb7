package engine

import (
	"context"
	"sync"

	"github.com/bbthechange/hangoutsBackend-sub008/internal/domain"
)

// memStore is a compare-and-swap offer store used by engine tests. It keeps
// the version-guard semantics of the real Postgres store (stale version ->
// ErrVersionConflict, claimed count recomputed from claim rows) while letting
// goroutines interleave for the concurrency tests.
type memStore struct {
	mu     sync.Mutex
	offers map[string]domain.Offer
	claims map[string][]domain.Claim

	// conflictNext forces the next n mutating writes to fail with a
	// version conflict without changing state.
	conflictNext int
}

func newMemStore() *memStore {
	return &memStore{
		offers: make(map[string]domain.Offer),
		claims: make(map[string][]domain.Claim),
	}
}

func key(hangoutID, offerID string) string {
	return hangoutID + "/" + offerID
}

func (s *memStore) CreateOffer(_ context.Context, o *domain.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[key(o.HangoutID, o.ID)] = *o
	return nil
}

func (s *memStore) Load(_ context.Context, hangoutID, offerID string) (*domain.OfferSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.offers[key(hangoutID, offerID)]
	if !ok {
		return nil, domain.ErrOfferNotFound
	}
	claims := make([]domain.Claim, len(s.claims[key(hangoutID, offerID)]))
	copy(claims, s.claims[key(hangoutID, offerID)])

	return &domain.OfferSnapshot{Offer: o, Claims: claims}, nil
}

func (s *memStore) ListByHangout(_ context.Context, hangoutID string, kind domain.OfferKind) ([]domain.OfferSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []domain.OfferSnapshot
	for k, o := range s.offers {
		if o.HangoutID == hangoutID && o.Kind == kind {
			claims := make([]domain.Claim, len(s.claims[k]))
			copy(claims, s.claims[k])
			res = append(res, domain.OfferSnapshot{Offer: o, Claims: claims})
		}
	}
	return res, nil
}

func (s *memStore) guard(k string, expectedVersion int64) error {
	if s.conflictNext > 0 {
		s.conflictNext--
		return domain.ErrVersionConflict
	}
	cur, ok := s.offers[k]
	if !ok {
		return domain.ErrOfferNotFound
	}
	if cur.Version != expectedVersion {
		return domain.ErrVersionConflict
	}
	return nil
}

func (s *memStore) InsertClaim(_ context.Context, expectedVersion int64, o *domain.Offer, c *domain.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(o.HangoutID, o.ID)
	if err := s.guard(k, expectedVersion); err != nil {
		return err
	}
	for _, existing := range s.claims[k] {
		if existing.UserID == c.UserID {
			return domain.ErrAlreadyClaimed
		}
	}

	s.claims[k] = append(s.claims[k], *c)

	next := *o
	next.ClaimedCount = len(s.claims[k])
	next.Version = expectedVersion + 1
	s.offers[k] = next
	return nil
}

func (s *memStore) RemoveClaim(_ context.Context, expectedVersion int64, o *domain.Offer, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(o.HangoutID, o.ID)
	if err := s.guard(k, expectedVersion); err != nil {
		return err
	}

	claims := s.claims[k][:0]
	for _, c := range s.claims[k] {
		if c.UserID != userID {
			claims = append(claims, c)
		}
	}
	s.claims[k] = claims

	next := *o
	next.ClaimedCount = len(claims)
	next.Version = expectedVersion + 1
	s.offers[k] = next
	return nil
}

func (s *memStore) UpdateOffer(_ context.Context, expectedVersion int64, o *domain.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(o.HangoutID, o.ID)
	if err := s.guard(k, expectedVersion); err != nil {
		return err
	}

	next := *o
	next.Version = expectedVersion + 1
	s.offers[k] = next
	return nil
}

func (s *memStore) CompleteOffer(_ context.Context, expectedVersion int64, o *domain.Offer, shares []domain.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(o.HangoutID, o.ID)
	if err := s.guard(k, expectedVersion); err != nil {
		return err
	}

	for _, share := range shares {
		for i := range s.claims[k] {
			if s.claims[k][i].UserID == share.UserID {
				s.claims[k][i].ShareCents = share.ShareCents
				s.claims[k][i].UpdatedAt = share.UpdatedAt
			}
		}
	}

	next := *o
	next.Version = expectedVersion + 1
	s.offers[k] = next
	return nil
}

func (s *memStore) CancelOffer(_ context.Context, expectedVersion int64, o *domain.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(o.HangoutID, o.ID)
	if err := s.guard(k, expectedVersion); err != nil {
		return err
	}

	next := *o
	next.Version = expectedVersion + 1
	s.offers[k] = next
	return nil
}

func (s *memStore) CancelStale(_ context.Context) ([]domain.Offer, error) {
	return nil, nil
}

func (s *memStore) snapshot(hangoutID, offerID string) domain.OfferSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(hangoutID, offerID)
	claims := make([]domain.Claim, len(s.claims[k]))
	copy(claims, s.claims[k])
	return domain.OfferSnapshot{Offer: s.offers[k], Claims: claims}
}
