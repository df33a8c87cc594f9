package usecase

import (
	"context"

	"gearshare/internal/domain/request"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/clock"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/views"
)

type RequestUseCase interface {
	Create(ctx context.Context, requestorID int64, description string) (*views.RequestView, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]*views.RequestWithAnswersView, error)
	ListAll(ctx context.Context) ([]*views.RequestView, error)
	GetByID(ctx context.Context, requestID int64) (*views.RequestWithAnswersView, error)
}

type requestUseCaseImpl struct {
	requests RequestStore
	items    ItemStore
	users    UserStore
	clock    clock.Clock
}

func NewRequestUseCase(requests RequestStore, items ItemStore, users UserStore, clk clock.Clock) RequestUseCase {
	return &requestUseCaseImpl{
		requests: requests,
		items:    items,
		users:    users,
		clock:    clk,
	}
}

func (u *requestUseCaseImpl) Create(ctx context.Context, requestorID int64, description string) (*views.RequestView, error) {
	requestor, err := u.users.FindByID(ctx, requestorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find requestor")
	}

	ent, err := request.NewItemRequest(description, requestor.ID, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	view, err := u.requests.Save(ctx, ent)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// ListByRequestor returns the caller's requests, each with the items
// listed in answer to it.
func (u *requestUseCaseImpl) ListByRequestor(ctx context.Context, requestorID int64) ([]*views.RequestWithAnswersView, error) {
	if _, err := u.users.FindByID(ctx, requestorID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find requestor")
	}

	list, err := u.requests.FindByRequestorID(ctx, requestorID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find requests by requestor")
	}

	result := make([]*views.RequestWithAnswersView, 0, len(list))
	for _, req := range list {
		withAnswers, err := u.attachAnswers(ctx, req)
		if err != nil {
			return nil, err
		}
		result = append(result, withAnswers)
	}
	return result, nil
}

func (u *requestUseCaseImpl) ListAll(ctx context.Context) ([]*views.RequestView, error) {
	list, err := u.requests.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list requests")
	}
	return list, nil
}

func (u *requestUseCaseImpl) GetByID(ctx context.Context, requestID int64) (*views.RequestWithAnswersView, error) {
	req, err := u.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Wrap(err, "failed to find request")
	}
	return u.attachAnswers(ctx, req)
}

func (u *requestUseCaseImpl) attachAnswers(ctx context.Context, req *views.RequestView) (*views.RequestWithAnswersView, error) {
	answers, err := u.items.FindByRequestID(ctx, req.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find answering items")
	}

	items := make([]views.ItemView, 0, len(answers))
	for _, a := range answers {
		items = append(items, *a)
	}
	return &views.RequestWithAnswersView{
		RequestView: *req,
		Items:       items,
	}, nil
}
