package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/Renal37/go-bank-account/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(t *testing.T, number int64, balance float64) *models.Account {
	t.Helper()

	account, err := models.NewAccount(number, balance)
	require.NoError(t, err)

	return account
}

func TestSaveAndFindAccount(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveAccount(ctx, newAccount(t, 1, 100)))

	view, err := store.FindAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.AccountView{Number: 1, Balance: 100}, view)
}

func TestSaveDuplicateAccount(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveAccount(ctx, newAccount(t, 1, 100)))

	err := store.SaveAccount(ctx, newAccount(t, 1, 200))
	assert.True(t, errors.Is(err, ErrAlreadyExists))

	// Состояние первого счета не должно измениться
	view, err := store.FindAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, view.Balance)
}

func TestFindUnknownAccount(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.FindAccount(context.Background(), 404)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateAccount(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveAccount(ctx, newAccount(t, 1, 100)))

	outcome, err := store.UpdateAccount(ctx, 1, func(account *models.Account) models.Outcome {
		return account.Deposit(50)
	})
	require.NoError(t, err)
	assert.True(t, outcome.OK)

	view, err := store.FindAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 150.0, view.Balance)
}

func TestUpdateUnknownAccount(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.UpdateAccount(context.Background(), 404, func(account *models.Account) models.Outcome {
		t.Fatal("closure must not be called for unknown account")
		return models.Outcome{}
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}
