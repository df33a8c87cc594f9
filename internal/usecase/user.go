package usecase

import (
	"context"

	"gearshare/internal/domain/user"
	"gearshare/internal/infra"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/pkg/patch"
	"gearshare/internal/usecase/views"
)

type UpdateUserParams struct {
	Name  *string
	Email *string
}

type UserUseCase interface {
	Create(ctx context.Context, name, email string) (*views.UserView, error)
	Update(ctx context.Context, userID int64, params UpdateUserParams) (*views.UserView, error)
	GetByID(ctx context.Context, userID int64) (*views.UserView, error)
	GetAll(ctx context.Context) ([]*views.UserView, error)
	Delete(ctx context.Context, userID int64) error
}

type userUseCaseImpl struct {
	users UserStore
}

func NewUserUseCase(users UserStore) UserUseCase {
	return &userUseCaseImpl{users: users}
}

func (u *userUseCaseImpl) Create(ctx context.Context, name, email string) (*views.UserView, error) {
	ent, err := user.NewUser(name, email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.checkEmailFree(ctx, ent.Email(), 0); err != nil {
		return nil, err
	}

	view, err := u.users.Save(ctx, ent)
	if err != nil {
		// The unique index is the authority under concurrent creates.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *userUseCaseImpl) Update(ctx context.Context, userID int64, params UpdateUserParams) (*views.UserView, error) {
	current, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}

	validated, err := user.NewUser(
		patch.Coalesce(params.Name, current.Name),
		patch.Coalesce(params.Email, current.Email),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if validated.Email() != current.Email {
		if err := u.checkEmailFree(ctx, validated.Email(), userID); err != nil {
			return nil, err
		}
	}

	view, err := u.users.Update(ctx, user.ReconstructUser(current.ID, validated.Name(), validated.Email()))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *userUseCaseImpl) GetByID(ctx context.Context, userID int64) (*views.UserView, error) {
	view, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}
	return view, nil
}

func (u *userUseCaseImpl) GetAll(ctx context.Context) ([]*views.UserView, error) {
	list, err := u.users.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list users")
	}
	return list, nil
}

func (u *userUseCaseImpl) Delete(ctx context.Context, userID int64) error {
	if err := u.users.Delete(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *userUseCaseImpl) checkEmailFree(ctx context.Context, email string, selfID int64) error {
	existing, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Wrap(err, "failed to check email uniqueness")
	}
	if existing.ID != selfID {
		return errs.ErrEmailConflict
	}
	return nil
}
