package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCreateUser(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	t.Run("creates a user with timestamps and id", func(t *testing.T) {
		user := NewUser(42, "Alice")

		err := store.CreateUser(ctx, user)
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("duplicate user ids are rejected", func(t *testing.T) {
		err := store.CreateUser(ctx, NewUser(42, "Alice Again"))
		assert.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestInMemoryGetUser(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	require.NoError(t, store.CreateUser(ctx, NewUser(42, "Alice")))

	t.Run("existing user", func(t *testing.T) {
		user, err := store.GetUserByUserID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.EqualValues(t, 42, user.UserID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := store.GetUserByUserID(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returned user is a copy", func(t *testing.T) {
		user, err := store.GetUserByUserID(ctx, 42)
		require.NoError(t, err)

		user.Name = "mutated"

		fresh, err := store.GetUserByUserID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "Alice", fresh.Name)
	})
}

func TestInMemoryListUsers(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, store.CreateUser(ctx, NewUser(7, "Carol")))
	require.NoError(t, store.CreateUser(ctx, NewUser(3, "Bob")))

	users, err = store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	// Ordered by external id
	assert.EqualValues(t, 3, users[0].UserID)
	assert.EqualValues(t, 7, users[1].UserID)
}

func TestInMemoryUpdateUser(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	require.NoError(t, store.CreateUser(ctx, NewUser(42, "Alice")))

	t.Run("updates an existing user", func(t *testing.T) {
		user := NewUser(42, "Alice Cooper")
		require.NoError(t, store.UpdateUser(ctx, user))

		stored, err := store.GetUserByUserID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "Alice Cooper", stored.Name)
	})

	t.Run("missing user", func(t *testing.T) {
		err := store.UpdateUser(ctx, NewUser(99, "Nobody"))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInMemoryUpsertUser(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	t.Run("creates a missing user", func(t *testing.T) {
		user := NewUser(42, "Alice")
		require.NoError(t, store.UpsertUser(ctx, user))
		assert.NotZero(t, user.ID)
	})

	t.Run("updates an existing user", func(t *testing.T) {
		user := NewUser(42, "Alice Cooper")
		require.NoError(t, store.UpsertUser(ctx, user))

		stored, err := store.GetUserByUserID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "Alice Cooper", stored.Name)

		users, err := store.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestInMemoryDeleteUser(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	require.NoError(t, store.CreateUser(ctx, NewUser(42, "Alice")))

	t.Run("deletes an existing user", func(t *testing.T) {
		require.NoError(t, store.DeleteUser(ctx, 42))

		_, err := store.GetUserByUserID(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing user", func(t *testing.T) {
		err := store.DeleteUser(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMapper(t *testing.T) {
	entity := NewUser(42, "Alice")
	entity.ID = 7

	item := EntityToItem(entity)
	assert.Equal(t, uint(7), item.ID)
	assert.EqualValues(t, 42, item.UserID)
	assert.Equal(t, "Alice", item.Name)

	back := ItemToEntity(item)
	assert.Equal(t, entity.ID, back.ID)
	assert.Equal(t, entity.UserID, back.UserID)
	assert.Equal(t, entity.Name, back.Name)
}
