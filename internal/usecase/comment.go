package usecase

import (
	"context"
	"errors"

	"gearshare/internal/domain/comment"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/views"
)

type CommentUseCase interface {
	Add(ctx context.Context, itemID, authorID int64, text string) (*views.CommentView, error)
}

type commentUseCaseImpl struct {
	comments CommentStore
	bookings BookingStore
	items    ItemStore
	users    UserStore
	clock    clock.Clock
}

func NewCommentUseCase(comments CommentStore, bookings BookingStore, items ItemStore, users UserStore, clk clock.Clock) CommentUseCase {
	return &commentUseCaseImpl{
		comments: comments,
		bookings: bookings,
		items:    items,
		users:    users,
		clock:    clk,
	}
}

// Add persists a comment after the eligibility gate passes. Nothing
// stops the same author commenting on the same item more than once.
func (u *commentUseCaseImpl) Add(ctx context.Context, itemID, authorID int64, text string) (*views.CommentView, error) {
	textVO, err := comment.NewText(text)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	itm, err := u.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}

	author, err := u.users.FindByID(ctx, authorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find author")
	}

	input := comment.EligibilityInput{
		ItemID:   itm.ID,
		AuthorID: author.ID,
		Now:      u.clock.Now(),
	}
	if err := u.CanComment(ctx, input); err != nil {
		if errors.Is(err, comment.ErrNotEligible) {
			return nil, errs.ErrCommentNotAllowed
		}
		return nil, err
	}

	view, err := u.comments.Save(ctx, comment.NewComment(itm.ID, author.ID, textVO, u.clock.Now()))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// CanComment implements comment.EligibilityChecker. Preconditions in
// order: the author must not be the item's owner, must have a booking
// for the item, and that booking's end must already be in the past.
// The matching booking is whatever single row the store returns for the
// pair; its status is deliberately not inspected.
func (u *commentUseCaseImpl) CanComment(ctx context.Context, input comment.EligibilityInput) error {
	itm, err := u.items.FindByID(ctx, input.ItemID)
	if err != nil {
		return errs.Wrap(err, "failed to find item for eligibility check")
	}
	if itm.Owner.ID == input.AuthorID {
		return comment.ErrNotEligible
	}

	b, err := u.bookings.FindByItemAndBooker(ctx, input.ItemID, input.AuthorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return comment.ErrNotEligible
		}
		return errs.Wrap(err, "failed to find booking for eligibility check")
	}
	if !b.End.Before(input.Now) {
		return comment.ErrNotEligible
	}
	return nil
}
