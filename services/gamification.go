// services/gamification.go - Bonus award rules
package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"tastybook/models"

	"gorm.io/gorm"
)

const (
	// FavoriteBonusThreshold is the favorite count at which a recipe's
	// owner earns the one-time favorites bonus.
	FavoriteBonusThreshold = 10

	// StreakDays is the number of consecutive approval days that earns the
	// streak bonus.
	StreakDays = 5

	// AchievementStreak5 keys the per-day streak achievement rows.
	AchievementStreak5 = "streak5"

	dateLayout = "2006-01-02"
)

// RuleEngine derives bonus awards from recipe and user state changes. Every
// rule tolerates firing more than once for the same event; the ledger's
// uniqueness contract and the date-keyed achievement rows keep awards from
// doubling.
type RuleEngine struct {
	db     *gorm.DB
	points *PointsService
	loc    *time.Location
	now    func() time.Time
}

// NewRuleEngine builds a rule engine evaluating calendar dates in loc, so
// the streak rule does not depend on the host timezone.
func NewRuleEngine(db *gorm.DB, points *PointsService, loc *time.Location) *RuleEngine {
	return &RuleEngine{
		db:     db,
		points: points,
		loc:    loc,
		now:    time.Now,
	}
}

// FavoriteAdded runs after a favorite is added to a recipe. Once the
// recipe's favorite count reaches the threshold, the owner earns the bonus
// exactly once; favorites beyond the threshold change nothing.
func (e *RuleEngine) FavoriteAdded(recipeID, ownerID uint) error {
	return e.db.Transaction(func(tx *gorm.DB) error {
		return e.FavoriteAddedTx(tx, recipeID, ownerID)
	})
}

// FavoriteAddedTx is FavoriteAdded inside a caller-owned transaction.
func (e *RuleEngine) FavoriteAddedTx(tx *gorm.DB, recipeID, ownerID uint) error {
	var count int64
	if err := tx.Model(&models.Favorite{}).Where("recipe_id = ?", recipeID).Count(&count).Error; err != nil {
		return err
	}
	if count < FavoriteBonusThreshold {
		return nil
	}

	rid := recipeID
	_, err := e.points.AwardTx(tx, ownerID, models.PointsBonus10Favorites, models.ActionBonus10Favorites,
		&rid, fmt.Sprintf("favorites=%d", count))
	return err
}

// RecipeApprovedTx evaluates the five-day approval streak for a user, inside
// the same transaction as the approval it follows. It looks at the distinct
// calendar dates with an approval in the trailing seven days, counts the
// consecutive run ending today, and awards the bonus at most once per day.
func (e *RuleEngine) RecipeApprovedTx(tx *gorm.DB, ownerID uint) error {
	today := e.today()
	since := today.AddDate(0, 0, -(StreakDays + 1))

	var approvedAt []time.Time
	err := tx.Model(&models.Recipe{}).
		Where("user_id = ? AND approval_status = ? AND approved_at >= ?",
			ownerID, models.ApprovalApproved, since).
		Pluck("approved_at", &approvedAt).Error
	if err != nil {
		return err
	}

	days := make(map[string]bool, len(approvedAt))
	for _, t := range approvedAt {
		days[t.In(e.loc).Format(dateLayout)] = true
	}

	run := 0
	for d := today; days[d.Format(dateLayout)]; d = d.AddDate(0, 0, -1) {
		run++
	}
	if run < StreakDays {
		return nil
	}

	achievedOn := today.Format(dateLayout)
	var existing int64
	err = tx.Model(&models.UserAchievement{}).
		Where("user_id = ? AND name = ? AND achieved_on = ?", ownerID, AchievementStreak5, achievedOn).
		Count(&existing).Error
	if err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	achievement := models.UserAchievement{
		UserID:     ownerID,
		Name:       AchievementStreak5,
		AchievedOn: achievedOn,
	}
	if err := tx.Create(&achievement).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	_, err = e.points.AwardTx(tx, ownerID, models.PointsStreak5Days, models.ActionStreak5Days,
		nil, AchievementStreak5+" "+achievedOn)
	return err
}

// AppTimezone returns the timezone calendar rules are evaluated in, from
// APP_TIMEZONE. Defaults to UTC so streaks never depend on the host clock's
// zone.
func AppTimezone() *time.Location {
	name := os.Getenv("APP_TIMEZONE")
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Invalid APP_TIMEZONE %q, falling back to UTC", name)
		return time.UTC
	}
	return loc
}

// today returns midnight of the current day in the configured timezone.
func (e *RuleEngine) today() time.Time {
	now := e.now().In(e.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, e.loc)
}
