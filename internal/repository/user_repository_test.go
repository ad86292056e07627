package repository

import (
	"testing"

	"github.com/cookbuddy/cookbuddy-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCredits(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := seedUser(t, db, 0)

	require.NoError(t, repo.AddCredits(user.ID, 10))
	require.NoError(t, repo.AddCredits(user.ID, 25))

	credits, err := repo.GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 35, credits)
}

func TestSpendCredit(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := seedUser(t, db, 2)

	for i := 0; i < 2; i++ {
		ok, err := repo.SpendCredit(user.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	// balance is now zero; further spends must refuse, never go negative
	ok, err := repo.SpendCredit(user.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	credits, err := repo.GetCredits(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, credits)
}

func TestGetCreditsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetCredits(4242)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
