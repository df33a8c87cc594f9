//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestUserCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an id and trims fields", func(t *testing.T) {
		e := newEnv(t)
		u, err := e.users.Create(ctx, "  Alice  ", " alice@example.com ")
		require.NoError(t, err)
		assert.Positive(t, u.ID)
		assert.Equal(t, "Alice", u.Name)
		assert.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		e := newEnv(t)
		mustUser(t, e, "Alice", "alice@example.com")

		_, err := e.users.Create(ctx, "Other Alice", "alice@example.com")
		assert.ErrorIs(t, err, errs.ErrEmailConflict)
	})

	t.Run("invalid fields", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.users.Create(ctx, "", "alice@example.com")
		assert.ErrorIs(t, err, errs.ErrDomainValidation)

		_, err = e.users.Create(ctx, "Alice", "not-an-email")
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestUserUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		e := newEnv(t)
		u := mustUser(t, e, "Alice", "alice@example.com")

		updated, err := e.users.Update(ctx, u.ID, usecase.UpdateUserParams{
			Name: ptr("Alicia"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", updated.Name)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("email change to a taken address", func(t *testing.T) {
		e := newEnv(t)
		mustUser(t, e, "Alice", "alice@example.com")
		bob := mustUser(t, e, "Bob", "bob@example.com")

		_, err := e.users.Update(ctx, bob.ID, usecase.UpdateUserParams{
			Email: ptr("alice@example.com"),
		})
		assert.ErrorIs(t, err, errs.ErrEmailConflict)
	})

	t.Run("resubmitting own email is allowed", func(t *testing.T) {
		e := newEnv(t)
		u := mustUser(t, e, "Alice", "alice@example.com")

		updated, err := e.users.Update(ctx, u.ID, usecase.UpdateUserParams{
			Name:  ptr("Alicia"),
			Email: ptr("alice@example.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.users.Update(ctx, 999, usecase.UpdateUserParams{Name: ptr("Ghost")})
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("invalid new email", func(t *testing.T) {
		e := newEnv(t)
		u := mustUser(t, e, "Alice", "alice@example.com")

		_, err := e.users.Update(ctx, u.ID, usecase.UpdateUserParams{Email: ptr("broken")})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestUserGetAndDelete(t *testing.T) {
	ctx := context.Background()

	e := newEnv(t)
	alice := mustUser(t, e, "Alice", "alice@example.com")
	bob := mustUser(t, e, "Bob", "bob@example.com")

	t.Run("get by id", func(t *testing.T) {
		got, err := e.users.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, alice, got)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := e.users.GetByID(ctx, 999)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("list keeps creation order", func(t *testing.T) {
		list, err := e.users.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, alice.ID, list[0].ID)
		assert.Equal(t, bob.ID, list[1].ID)
	})

	t.Run("delete removes the user", func(t *testing.T) {
		require.NoError(t, e.users.Delete(ctx, bob.ID))

		_, err := e.users.GetByID(ctx, bob.ID)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("delete unknown", func(t *testing.T) {
		err := e.users.Delete(ctx, 999)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
