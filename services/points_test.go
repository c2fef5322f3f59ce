// services/points_test.go
package services

import (
	"testing"

	"tastybook/models"

	"github.com/stretchr/testify/require"
)

func TestAwardWritesLedgerAndTotal(t *testing.T) {
	db := newTestDB(t)
	points := NewPointsService(db)
	user := createUser(t, db, "alice")
	recipe := createRecipe(t, db, user.ID, "Pancakes")

	awarded, err := points.Award(user.ID, models.PointsRecipeApproved, models.ActionRecipeApproved, &recipe.ID, "")
	require.NoError(t, err)
	require.True(t, awarded)

	require.Equal(t, models.PointsRecipeApproved, userPoints(t, db, user.ID))

	sum, err := points.SumLedger(user.ID)
	require.NoError(t, err)
	require.Equal(t, userPoints(t, db, user.ID), sum)
}

func TestAwardDuplicateIsNoOp(t *testing.T) {
	db := newTestDB(t)
	points := NewPointsService(db)
	user := createUser(t, db, "alice")
	recipe := createRecipe(t, db, user.ID, "Pancakes")

	awarded, err := points.Award(user.ID, 10, models.ActionRecipeApproved, &recipe.ID, "")
	require.NoError(t, err)
	require.True(t, awarded)

	awarded, err = points.Award(user.ID, 10, models.ActionRecipeApproved, &recipe.ID, "")
	require.NoError(t, err)
	require.False(t, awarded)

	require.EqualValues(t, 1, ledgerCount(t, db, user.ID, models.ActionRecipeApproved))
	require.Equal(t, 10, userPoints(t, db, user.ID))
}

func TestAwardSameActionDifferentRecipes(t *testing.T) {
	db := newTestDB(t)
	points := NewPointsService(db)
	user := createUser(t, db, "alice")
	first := createRecipe(t, db, user.ID, "Pancakes")
	second := createRecipe(t, db, user.ID, "Waffles")

	_, err := points.Award(user.ID, 10, models.ActionRecipeApproved, &first.ID, "")
	require.NoError(t, err)
	_, err = points.Award(user.ID, 10, models.ActionRecipeApproved, &second.ID, "")
	require.NoError(t, err)

	require.EqualValues(t, 2, ledgerCount(t, db, user.ID, models.ActionRecipeApproved))
	require.Equal(t, 20, userPoints(t, db, user.ID))
}

func TestAwardUnknownUserRollsBack(t *testing.T) {
	db := newTestDB(t)
	points := NewPointsService(db)

	awarded, err := points.Award(9999, 10, models.ActionRecipeApproved, nil, "")
	require.ErrorIs(t, err, ErrNotFound)
	require.False(t, awarded)

	// The ledger insert must not survive the failed total update.
	require.EqualValues(t, 0, ledgerCount(t, db, 9999, models.ActionRecipeApproved))
}

func TestTotalMatchesLedgerAcrossActions(t *testing.T) {
	db := newTestDB(t)
	points := NewPointsService(db)
	user := createUser(t, db, "alice")
	recipe := createRecipe(t, db, user.ID, "Pancakes")

	_, err := points.Award(user.ID, models.PointsRecipeApproved, models.ActionRecipeApproved, &recipe.ID, "")
	require.NoError(t, err)
	_, err = points.Award(user.ID, models.PointsTopOfWeek, models.ActionTopOfWeek, &recipe.ID, "")
	require.NoError(t, err)
	_, err = points.Award(user.ID, models.PointsStreak5Days, models.ActionStreak5Days, nil, "streak5 2026-03-15")
	require.NoError(t, err)

	sum, err := points.SumLedger(user.ID)
	require.NoError(t, err)
	require.Equal(t, 75, sum)
	require.Equal(t, sum, userPoints(t, db, user.ID))
}

func TestLedgerNewestFirst(t *testing.T) {
	db := newTestDB(t)
	points := NewPointsService(db)
	user := createUser(t, db, "alice")
	recipe := createRecipe(t, db, user.ID, "Pancakes")

	_, err := points.Award(user.ID, 10, models.ActionRecipeApproved, &recipe.ID, "")
	require.NoError(t, err)
	_, err = points.Award(user.ID, 50, models.ActionTopOfWeek, &recipe.ID, "")
	require.NoError(t, err)

	entries, err := points.Ledger(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		require.Equal(t, user.ID, entry.UserID)
	}
}
