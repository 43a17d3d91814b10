package store_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/splitty/internal/roster"
	"github.com/MrJamesThe3rd/splitty/internal/roster/store"
)

func TestStore_CreateAndList_KeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	names := []string{"Clark", "Sarah", "Anthony"}
	for _, n := range names {
		require.NoError(t, s.CreateFriend(ctx, &roster.Friend{ID: uuid.New(), Name: n}))
	}

	got, err := s.ListFriends(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, f := range got {
		assert.Equal(t, names[i], f.Name)
	}
}

func TestStore_CreateFriend_DuplicateID(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	id := uuid.New()

	require.NoError(t, s.CreateFriend(ctx, &roster.Friend{ID: id, Name: "Clark"}))

	err := s.CreateFriend(ctx, &roster.Friend{ID: id, Name: "Other"})
	assert.ErrorIs(t, err, roster.ErrDuplicateID)

	got, err := s.ListFriends(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStore_GetFriend_NotFound(t *testing.T) {
	_, err := store.New().GetFriend(context.Background(), uuid.New())
	assert.ErrorIs(t, err, roster.ErrNotFound)
}

func TestStore_UpdateBalance(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	id := uuid.New()

	require.NoError(t, s.CreateFriend(ctx, &roster.Friend{ID: id, Name: "Sarah", Balance: 2000}))

	f, err := s.UpdateBalance(ctx, id, -4000)
	require.NoError(t, err)
	assert.Equal(t, int64(-2000), f.Balance)

	_, err = s.UpdateBalance(ctx, uuid.New(), 100)
	assert.ErrorIs(t, err, roster.ErrNotFound)
}

func TestStore_UpdateBalance_Overflow(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		delta   int64
		fits    int64
	}{
		{name: "AboveMax", balance: math.MaxInt64 - 10, delta: 11, fits: 10},
		{name: "BelowMin", balance: math.MinInt64 + 10, delta: -11, fits: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := store.New()
			id := uuid.New()

			require.NoError(t, s.CreateFriend(ctx, &roster.Friend{ID: id, Name: "Clark", Balance: tt.balance}))

			_, err := s.UpdateBalance(ctx, id, tt.delta)
			require.ErrorIs(t, err, roster.ErrOverflow)

			f, err := s.GetFriend(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tt.balance, f.Balance, "balance unchanged")

			f, err = s.UpdateBalance(ctx, id, tt.fits)
			require.NoError(t, err)
			assert.Equal(t, tt.balance+tt.fits, f.Balance)
		})
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	id := uuid.New()

	original := &roster.Friend{ID: id, Name: "Clark"}
	require.NoError(t, s.CreateFriend(ctx, original))
	original.Balance = 999

	got, err := s.GetFriend(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, got.Balance)

	got.Balance = 123

	again, err := s.GetFriend(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, again.Balance)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.New().ListFriends(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
