package comment

import (
	"context"
	"errors"
	"time"
)

var ErrNotEligible = errors.New("user is not eligible to comment on this item")

type EligibilityInput struct {
	ItemID   int64
	AuthorID int64
	Now      time.Time
}

// EligibilityChecker decides whether a user may leave feedback on an
// item. Eligibility is tied to booking history: the author must have a
// booking for the item whose rental period has elapsed, and an item's
// owner is never eligible on their own item.
type EligibilityChecker interface {
	CanComment(ctx context.Context, input EligibilityInput) error
}
