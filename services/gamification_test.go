// services/gamification_test.go
package services

import (
	"fmt"
	"testing"
	"time"

	"tastybook/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRuleFixture(t *testing.T) (*RuleEngine, *PointsService) {
	t.Helper()

	db := newTestDB(t)
	points := NewPointsService(db)
	return NewRuleEngine(db, points, time.UTC), points
}

var fanSeq int

func addFavorites(t *testing.T, e *RuleEngine, recipeID uint, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		fanSeq++
		fan := createUser(t, e.db, fmt.Sprintf("fan%d-%d", recipeID, fanSeq))
		require.NoError(t, e.db.Create(&models.Favorite{UserID: fan.ID, RecipeID: recipeID}).Error)
	}
}

func TestFavoriteBonusBelowThreshold(t *testing.T) {
	e, _ := newRuleFixture(t)
	owner := createUser(t, e.db, "alice")
	recipe := createRecipe(t, e.db, owner.ID, "Pancakes")

	addFavorites(t, e, recipe.ID, FavoriteBonusThreshold-1)
	require.NoError(t, e.FavoriteAdded(recipe.ID, owner.ID))

	require.Equal(t, 0, userPoints(t, e.db, owner.ID))
}

func TestFavoriteBonusAtThreshold(t *testing.T) {
	e, _ := newRuleFixture(t)
	owner := createUser(t, e.db, "alice")
	recipe := createRecipe(t, e.db, owner.ID, "Pancakes")

	addFavorites(t, e, recipe.ID, FavoriteBonusThreshold)
	require.NoError(t, e.FavoriteAdded(recipe.ID, owner.ID))

	require.Equal(t, models.PointsBonus10Favorites, userPoints(t, e.db, owner.ID))
	require.EqualValues(t, 1, ledgerCount(t, e.db, owner.ID, models.ActionBonus10Favorites))
}

func TestFavoriteBonusNotRepeatedPastThreshold(t *testing.T) {
	e, _ := newRuleFixture(t)
	owner := createUser(t, e.db, "alice")
	recipe := createRecipe(t, e.db, owner.ID, "Pancakes")

	addFavorites(t, e, recipe.ID, FavoriteBonusThreshold)
	require.NoError(t, e.FavoriteAdded(recipe.ID, owner.ID))

	addFavorites(t, e, recipe.ID, 3)
	require.NoError(t, e.FavoriteAdded(recipe.ID, owner.ID))

	require.EqualValues(t, 1, ledgerCount(t, e.db, owner.ID, models.ActionBonus10Favorites))
	require.Equal(t, models.PointsBonus10Favorites, userPoints(t, e.db, owner.ID))
}

func TestFavoriteBonusPerRecipe(t *testing.T) {
	e, _ := newRuleFixture(t)
	owner := createUser(t, e.db, "alice")
	first := createRecipe(t, e.db, owner.ID, "Pancakes")
	second := createRecipe(t, e.db, owner.ID, "Waffles")

	addFavorites(t, e, first.ID, FavoriteBonusThreshold)
	addFavorites(t, e, second.ID, FavoriteBonusThreshold)
	require.NoError(t, e.FavoriteAdded(first.ID, owner.ID))
	require.NoError(t, e.FavoriteAdded(second.ID, owner.ID))

	require.EqualValues(t, 2, ledgerCount(t, e.db, owner.ID, models.ActionBonus10Favorites))
	require.Equal(t, 2*models.PointsBonus10Favorites, userPoints(t, e.db, owner.ID))
}

// seedApprovalDays creates one approved recipe for each of the given day
// offsets relative to "now" (0 = today, 1 = yesterday, ...).
func seedApprovalDays(t *testing.T, e *RuleEngine, ownerID uint, now time.Time, offsets ...int) {
	t.Helper()

	for i, off := range offsets {
		createApprovedRecipe(t, e.db, ownerID, fmt.Sprintf("Recipe day-%d #%d", off, i),
			now.AddDate(0, 0, -off))
	}
}

func evaluateStreak(t *testing.T, e *RuleEngine, ownerID uint) {
	t.Helper()

	err := e.db.Transaction(func(tx *gorm.DB) error {
		return e.RecipeApprovedTx(tx, ownerID)
	})
	require.NoError(t, err)
}

func TestStreakAwardedAfterFiveConsecutiveDays(t *testing.T) {
	e, _ := newRuleFixture(t)
	owner := createUser(t, e.db, "alice")

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	seedApprovalDays(t, e, owner.ID, now, 0, 1, 2, 3, 4)
	evaluateStreak(t, e, owner.ID)

	require.EqualValues(t, 1, ledgerCount(t, e.db, owner.ID, models.ActionStreak5Days))
	require.Equal(t, models.PointsStreak5Days, userPoints(t, e.db, owner.ID))

	var achievements []models.UserAchievement
	require.NoError(t, e.db.Where("user_id = ?", owner.ID).Find(&achievements).Error)
	require.Len(t, achievements, 1)
	require.Equal(t, AchievementStreak5, achievements[0].Name)
	require.Equal(t, "2026-03-15", achievements[0].AchievedOn)
}

func TestStreakNotAwardedForFourDays(t *testing.T) {
	e, _ := newRuleFixture(t)
	owner := createUser(t, e.db, "alice")

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	seedApprovalDays(t, e, owner.ID, now, 0, 1, 2, 3)
	evaluateStreak(t, e, owner.ID)

	require.EqualValues(t, 0, ledgerCount(t, e.db, owner.ID, models.ActionStreak5Days))
}

func TestStreakBrokenByGapDay(t *testing.T) {
	e, _ := newRuleFixture(t)
	owner := createUser(t, e.db, "alice")

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	// five approval days, but day -2 is missing: the run ending today is 2
	seedApprovalDays(t, e, owner.ID, now, 0, 1, 3, 4, 5)
	evaluateStreak(t, e, owner.ID)

	require.EqualValues(t, 0, ledgerCount(t, e.db, owner.ID, models.ActionStreak5Days))
}

func TestStreakRequiresApprovalToday(t *testing.T) {
	e, _ := newRuleFixture(t)
	owner := createUser(t, e.db, "alice")

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	seedApprovalDays(t, e, owner.ID, now, 1, 2, 3, 4, 5)
	evaluateStreak(t, e, owner.ID)

	require.EqualValues(t, 0, ledgerCount(t, e.db, owner.ID, models.ActionStreak5Days))
}

func TestStreakAwardedOncePerDay(t *testing.T) {
	e, _ := newRuleFixture(t)
	owner := createUser(t, e.db, "alice")

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	seedApprovalDays(t, e, owner.ID, now, 0, 1, 2, 3, 4)
	evaluateStreak(t, e, owner.ID)

	// a second approval on the same day re-evaluates the streak
	seedApprovalDays(t, e, owner.ID, now, 0)
	evaluateStreak(t, e, owner.ID)

	require.EqualValues(t, 1, ledgerCount(t, e.db, owner.ID, models.ActionStreak5Days))
	require.Equal(t, models.PointsStreak5Days, userPoints(t, e.db, owner.ID))
}

func TestStreakAwardedAgainNextDay(t *testing.T) {
	e, _ := newRuleFixture(t)
	owner := createUser(t, e.db, "alice")

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	seedApprovalDays(t, e, owner.ID, now, 0, 1, 2, 3, 4)
	evaluateStreak(t, e, owner.ID)

	// the streak continues into the next day and pays out for that day too
	now = now.AddDate(0, 0, 1)
	seedApprovalDays(t, e, owner.ID, now, 0)
	evaluateStreak(t, e, owner.ID)

	require.EqualValues(t, 2, ledgerCount(t, e.db, owner.ID, models.ActionStreak5Days))
	require.Equal(t, 2*models.PointsStreak5Days, userPoints(t, e.db, owner.ID))
}

func TestStreakCountsDistinctDaysNotRecipes(t *testing.T) {
	e, _ := newRuleFixture(t)
	owner := createUser(t, e.db, "alice")

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	// five approvals all today do not make a five-day streak
	seedApprovalDays(t, e, owner.ID, now, 0, 0, 0, 0, 0)
	evaluateStreak(t, e, owner.ID)

	require.EqualValues(t, 0, ledgerCount(t, e.db, owner.ID, models.ActionStreak5Days))
}
