package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-backend/internal/errs"
	"marketplace-backend/internal/model"
)

func newUser(email string) *model.User {
	return &model.User{
		Email:      email,
		Password:   "$2a$10$hash",
		Name:       "Test User",
		Reputation: 4.0,
		Location:   "Buenos Aires",
	}
}

func TestCreate_AssignsSequentialIDsAndRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewJSONRepository(t.TempDir())

	first, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "SELLER001", first.ID)
	assert.True(t, first.IsActive)

	second, err := repo.Create(ctx, newUser("b@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "SELLER002", second.ID)

	_, err = repo.Create(ctx, newUser("a@example.com"))
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestLookups_ExcludeInactiveUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewJSONRepository(t.TempDir())

	created, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)

	// soft delete directly through the collection
	_, err = repo.col.Update(ctx, created.ID, map[string]any{"isActive": false})
	require.NoError(t, err)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, byID)

	byEmail, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Nil(t, byEmail)

	active, err := repo.FindAllActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	ok, err := repo.IncrementSalesCount(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIncrementSalesCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewJSONRepository(t.TempDir())

	created, err := repo.Create(ctx, newUser("a@example.com"))
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		ok, err := repo.IncrementSalesCount(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	u, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, 3, u.SalesCount)

	ok, err := repo.IncrementSalesCount(ctx, "SELLER999")
	require.NoError(t, err)
	assert.False(t, ok)
}
