package domain

import "fmt"

// Pool is the capacity ledger of one offer. Values are immutable: every
// operation returns the next state and leaves the receiver untouched, so the
// engine can compute a decision in memory and only persist it through a
// conditional write.
type Pool struct {
	Capacity int `json:"capacity"`
	Claimed  int `json:"claimed"`
}

// TryReserve returns the pool with n more units claimed, or
// ErrCapacityExceeded if the pool cannot hold them.
func (p Pool) TryReserve(n int) (Pool, error) {
	if n <= 0 {
		return p, fmt.Errorf("%w: reserve count must be positive", ErrValidation)
	}
	if p.Claimed+n > p.Capacity {
		return p, ErrCapacityExceeded
	}
	p.Claimed += n
	return p, nil
}

// Release returns the pool with n units returned. Releasing more than is
// claimed floors at zero rather than failing.
func (p Pool) Release(n int) Pool {
	p.Claimed -= n
	if p.Claimed < 0 {
		p.Claimed = 0
	}
	return p
}

// Resize changes the pool capacity. Shrinking below the claimed count is
// rejected: existing claims are never truncated to fit.
func (p Pool) Resize(newCapacity int) (Pool, error) {
	if newCapacity <= 0 {
		return p, fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	if newCapacity < p.Claimed {
		return p, fmt.Errorf("%w: capacity %d is below the %d claims already held", ErrValidation, newCapacity, p.Claimed)
	}
	p.Capacity = newCapacity
	return p, nil
}

// Available is the number of unclaimed units. Derived, never stored.
func (p Pool) Available() int {
	return p.Capacity - p.Claimed
}
