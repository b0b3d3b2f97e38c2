package userprofile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vander-supa3/academia-nutricional/domain/userprofile"
	"github.com/vander-supa3/academia-nutricional/internal/testutil"
)

func TestGetMissingProfile(t *testing.T) {
	repo := userprofile.NewRepository(testutil.NewDB(t), testutil.Logger())

	profile, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestUpsertAndGet(t *testing.T) {
	repo := userprofile.NewRepository(testutil.NewDB(t), testutil.Logger())
	ctx := context.Background()

	err := repo.Upsert(ctx, &userprofile.Profile{
		ID:   "user-1",
		Name: "Ana",
		Goal: userprofile.GoalLoseWeight,
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, userprofile.GoalLoseWeight, got.Goal)

	// Second upsert updates in place.
	err = repo.Upsert(ctx, &userprofile.Profile{
		ID:   "user-1",
		Name: "Ana",
		Goal: userprofile.GoalHypertrophy,
	})
	require.NoError(t, err)

	got, err = repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, userprofile.GoalHypertrophy, got.Goal)
}
