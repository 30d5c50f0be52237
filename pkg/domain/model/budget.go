package model

import (
	"math"

	"github.com/pkg/errors"
)

// Epsilon is the additive tolerance applied to every monetary comparison in
// the procurement core. Amounts within Epsilon of a bound are accepted.
const Epsilon = 1e-9

// BudgetRecord tracks the funds of a single category across three buckets.
// Allocated is the fixed total, Committed covers approved but unspent
// requests, Spent covers approved orders. Available headroom is whatever the
// two moving buckets leave of the allocation.
type BudgetRecord struct {
	ID         string
	CategoryID string
	Allocated  float64
	Committed  float64
	Spent      float64
}

// Available returns the headroom left for new reservations.
func (b *BudgetRecord) Available() float64 {
	return b.Allocated - b.Committed - b.Spent
}

// Reserve moves amount from available headroom into the committed bucket.
func (b *BudgetRecord) Reserve(amount float64) error {
	if amount < 0 {
		return errors.Wrap(ErrInvalidInput, "amount to reserve must be positive")
	}
	if amount > b.Available()+Epsilon {
		return errors.Wrapf(ErrOverdraft, "insufficient available budget in %s to reserve %.2f", b.ID, amount)
	}
	b.Committed += amount
	return nil
}

// Release returns a previously reserved amount to available headroom.
func (b *BudgetRecord) Release(amount float64) error {
	if amount < 0 {
		return errors.Wrap(ErrInvalidInput, "amount to release must be positive")
	}
	if amount > b.Committed+Epsilon {
		return errors.Wrapf(ErrOverdraft, "cannot release %.2f from %s, only %.2f committed", amount, b.ID, b.Committed)
	}
	b.Committed -= amount
	return nil
}

// Spend books amount as spent. The committed bucket is drained first; any
// remainder comes out of uncommitted headroom, so spending more than was
// reserved still succeeds while the allocation covers it.
func (b *BudgetRecord) Spend(amount float64) error {
	if amount < 0 {
		return errors.Wrap(ErrInvalidInput, "amount to spend must be positive")
	}
	if amount > b.Committed+b.Available()+Epsilon {
		return errors.Wrapf(ErrOverdraft, "insufficient budget in %s to spend %.2f", b.ID, amount)
	}
	b.Committed -= math.Min(b.Committed, amount)
	b.Spent += amount
	return nil
}
