package usecase

import (
	"context"
	"strings"

	"gearshare/internal/domain/item"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/pkg/patch"
	"gearshare/internal/usecase/views"
)

type CreateItemParams struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type UpdateItemParams struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemUseCase interface {
	Create(ctx context.Context, ownerID int64, params CreateItemParams) (*views.ItemView, error)
	Update(ctx context.Context, actorID, itemID int64, params UpdateItemParams) (*views.ItemView, error)
	GetByID(ctx context.Context, itemID int64) (*views.ItemView, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*views.ItemView, error)
	Search(ctx context.Context, text string) ([]*views.ItemView, error)
}

type itemUseCaseImpl struct {
	items    ItemStore
	users    UserStore
	requests RequestStore
}

func NewItemUseCase(items ItemStore, users UserStore, requests RequestStore) ItemUseCase {
	return &itemUseCaseImpl{
		items:    items,
		users:    users,
		requests: requests,
	}
}

func (u *itemUseCaseImpl) Create(ctx context.Context, ownerID int64, params CreateItemParams) (*views.ItemView, error) {
	owner, err := u.users.FindByID(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find owner")
	}

	if params.RequestID != nil {
		if _, err := u.requests.FindByID(ctx, *params.RequestID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrRequestNotFound
			}
			return nil, errs.Wrap(err, "failed to find originating request")
		}
	}

	ent, err := item.NewItem(params.Name, params.Description, params.Available, owner.ID, params.RequestID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	view, err := u.items.Save(ctx, ent)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Update applies a partial patch. Only the owner may mutate an item.
func (u *itemUseCaseImpl) Update(ctx context.Context, actorID, itemID int64, params UpdateItemParams) (*views.ItemView, error) {
	current, err := u.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}
	if current.Owner.ID != actorID {
		return nil, errs.ErrItemNotOwned
	}

	validated, err := item.NewItem(
		patch.Coalesce(params.Name, current.Name),
		patch.Coalesce(params.Description, current.Description),
		patch.Coalesce(params.Available, current.Available),
		current.Owner.ID,
		current.RequestID,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	ent := item.ReconstructItem(
		current.ID,
		validated.Name(), validated.Description(), validated.Available(),
		validated.OwnerID(), validated.RequestID(),
	)
	view, err := u.items.Update(ctx, ent)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *itemUseCaseImpl) GetByID(ctx context.Context, itemID int64) (*views.ItemView, error) {
	view, err := u.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}
	return view, nil
}

func (u *itemUseCaseImpl) ListByOwner(ctx context.Context, ownerID int64) ([]*views.ItemView, error) {
	if _, err := u.users.FindByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find owner")
	}

	list, err := u.items.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find items by owner")
	}
	return list, nil
}

// Search matches text against item names and descriptions. A blank
// query returns an empty list without hitting the store.
func (u *itemUseCaseImpl) Search(ctx context.Context, text string) ([]*views.ItemView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*views.ItemView{}, nil
	}

	list, err := u.items.Search(ctx, text)
	if err != nil {
		return nil, errs.Wrap(err, "failed to search items")
	}
	return list, nil
}
