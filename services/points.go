// services/points.go - Point ledger with cached per-user totals
package services

import (
	"errors"
	"tastybook/models"

	"gorm.io/gorm"
)

// PointsService appends point-earning events and keeps each user's cached
// total in step with the ledger. Both writes happen in one transaction, so a
// total increment without a ledger row (or the reverse) is never observable.
type PointsService struct {
	db *gorm.DB
}

func NewPointsService(db *gorm.DB) *PointsService {
	return &PointsService{db: db}
}

// Award records one point-earning event in its own transaction. It returns
// whether a new ledger row was written; false with a nil error means the
// event was already recorded and the call was a no-op.
func (s *PointsService) Award(userID uint, points int, action string, recipeID *uint, meta string) (bool, error) {
	var awarded bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		awarded, txErr = s.AwardTx(tx, userID, points, action, recipeID, meta)
		return txErr
	})
	return awarded, err
}

// AwardTx is Award running inside a caller-owned transaction, so a larger
// unit of work (an approval and its award) commits or rolls back as a whole.
//
// Idempotence is a designed branch, not an accident of error handling: the
// ledger is queried for the (user, recipe, action) key before inserting, and
// the unique index backs the check up if two transactions race past it.
// Events with no recipe (streak bonuses) recur over time and are deduplicated
// by their callers instead.
func (s *PointsService) AwardTx(tx *gorm.DB, userID uint, points int, action string, recipeID *uint, meta string) (bool, error) {
	if recipeID != nil {
		var count int64
		err := tx.Model(&models.PointsTransaction{}).
			Where("user_id = ? AND recipe_id = ? AND action = ?", userID, *recipeID, action).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		if count > 0 {
			return false, nil
		}
	}

	entry := models.PointsTransaction{
		UserID:   userID,
		RecipeID: recipeID,
		Action:   action,
		Points:   points,
		Meta:     meta,
	}
	if err := tx.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}

	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("points_total", gorm.Expr("points_total + ?", points))
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, ErrNotFound
	}

	return true, nil
}

// Ledger returns a user's point-earning events, newest first.
func (s *PointsService) Ledger(userID uint) ([]models.PointsTransaction, error) {
	var entries []models.PointsTransaction
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// SumLedger resums a user's ledger entries. The cached points_total column
// is the source of truth for reads; this exists to verify the invariant that
// the two never drift.
func (s *PointsService) SumLedger(userID uint) (int, error) {
	var total int64
	err := s.db.Model(&models.PointsTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	return int(total), err
}
