package repository

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-backend/internal/model"
)

var idShape = regexp.MustCompile(`^MLA\d{9}$`)

func newProduct(title, slugBase string) *model.Product {
	return &model.Product{
		Title:       title,
		Slug:        slugBase,
		Description: "desc",
		Price:       100,
		Images:      []string{"a.jpg"},
		MainImage:   "a.jpg",
		Stock:       1,
		Condition:   model.ConditionNew,
		Category:    "Electronics",
		Seller:      model.Seller{ID: "SELLER001", Name: "Tech"},
	}
}

func TestCreate_AssignsUniqueGeneratedIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewJSONRepository(t.TempDir())

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		created, err := repo.Create(ctx, newProduct("Phone", fmt.Sprintf("phone-%d", i)))
		require.NoError(t, err)
		assert.Regexp(t, idShape, created.ID)
		assert.False(t, seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}
}

func TestCreate_SlugCollisionsGetNumericSuffixesInOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewJSONRepository(t.TempDir())

	want := []string{"cafe-te", "cafe-te-1", "cafe-te-2", "cafe-te-3"}
	for _, expected := range want {
		created, err := repo.Create(ctx, newProduct("Café & Té!", "cafe-te"))
		require.NoError(t, err)
		assert.Equal(t, expected, created.Slug)
	}
}

func TestCreate_IgnoresSuppliedID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewJSONRepository(t.TempDir())

	p := newProduct("Phone", "phone")
	p.ID = "client-chosen"
	created, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.NotEqual(t, "client-chosen", created.ID)
	assert.Regexp(t, idShape, created.ID)
}

func TestFindByIDOrSlug(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewJSONRepository(t.TempDir())

	created, err := repo.Create(ctx, newProduct("Phone", "phone"))
	require.NoError(t, err)

	byID, err := repo.FindByIDOrSlug(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, created.ID, byID.ID)

	bySlug, err := repo.FindByIDOrSlug(ctx, "phone")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, created.ID, bySlug.ID)

	missing, err := repo.FindByIDOrSlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIsSlugUnique_ExcludesOwnID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewJSONRepository(t.TempDir())

	created, err := repo.Create(ctx, newProduct("Phone", "phone"))
	require.NoError(t, err)

	unique, err := repo.IsSlugUnique(ctx, "phone", "")
	require.NoError(t, err)
	assert.False(t, unique)

	unique, err = repo.IsSlugUnique(ctx, "phone", created.ID)
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestUpdate_RequestedSlugIsDisambiguatedNotRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewJSONRepository(t.TempDir())

	_, err := repo.Create(ctx, newProduct("Phone", "phone"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newProduct("Tablet", "tablet"))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, second.ID, map[string]any{"slug": "phone"})
	require.NoError(t, err)
	assert.Equal(t, "phone-1", updated.Slug)

	// updating to its own current slug keeps it unchanged
	updated, err = repo.Update(ctx, second.ID, map[string]any{"slug": "phone-1"})
	require.NoError(t, err)
	assert.Equal(t, "phone-1", updated.Slug)
}

func TestFindBySellerID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewJSONRepository(t.TempDir())

	mine := newProduct("Phone", "phone")
	mine.Seller.ID = "SELLER001"
	_, err := repo.Create(ctx, mine)
	require.NoError(t, err)

	theirs := newProduct("Tablet", "tablet")
	theirs.Seller.ID = "SELLER002"
	_, err = repo.Create(ctx, theirs)
	require.NoError(t, err)

	got, err := repo.FindBySellerID(ctx, "SELLER001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "phone", got[0].Slug)
}
