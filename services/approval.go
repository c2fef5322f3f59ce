// services/approval.go - Recipe approval lifecycle
package services

import (
	"errors"
	"time"

	"tastybook/models"

	"gorm.io/gorm"
)

// ApprovalService moves recipes through pending -> approved | rejected and
// owns the point side effects of those transitions. Every admin operation
// verifies the caller's role before touching any state, and runs the
// transition together with its award in a single transaction: if either
// fails the whole unit rolls back.
type ApprovalService struct {
	db     *gorm.DB
	points *PointsService
	rules  *RuleEngine
}

func NewApprovalService(db *gorm.DB, points *PointsService, rules *RuleEngine) *ApprovalService {
	return &ApprovalService{db: db, points: points, rules: rules}
}

// Submit creates a recipe in the pending, unpublished state. No points are
// awarded on submission.
func (s *ApprovalService) Submit(userID uint, recipe *models.Recipe) error {
	recipe.UserID = userID
	recipe.ApprovalStatus = models.ApprovalPending
	recipe.IsPublished = false
	recipe.ApprovedAt = nil
	recipe.ApprovedBy = nil
	return s.db.Create(recipe).Error
}

// Approve publishes a pending recipe and grants the owner the approval
// award, then evaluates the approval streak for that owner. Approving an
// already-approved recipe is a no-op (a retried request must not award
// twice); a rejected recipe stays rejected.
func (s *ApprovalService) Approve(recipeID, adminID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireAdmin(tx, adminID); err != nil {
			return err
		}

		recipe, err := findRecipe(tx, recipeID)
		if err != nil {
			return err
		}

		switch recipe.ApprovalStatus {
		case models.ApprovalApproved:
			return nil
		case models.ApprovalRejected:
			return ErrInvalidTransition
		}

		now := time.Now()
		err = tx.Model(recipe).Updates(map[string]interface{}{
			"approval_status": models.ApprovalApproved,
			"is_published":    true,
			"approved_at":     now,
			"approved_by":     adminID,
		}).Error
		if err != nil {
			return err
		}

		rid := recipe.ID
		if _, err := s.points.AwardTx(tx, recipe.UserID, models.PointsRecipeApproved,
			models.ActionRecipeApproved, &rid, ""); err != nil {
			return err
		}

		return s.rules.RecipeApprovedTx(tx, recipe.UserID)
	})
}

// Reject marks a pending recipe rejected and unpublished. No award.
func (s *ApprovalService) Reject(recipeID, adminID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireAdmin(tx, adminID); err != nil {
			return err
		}

		recipe, err := findRecipe(tx, recipeID)
		if err != nil {
			return err
		}

		switch recipe.ApprovalStatus {
		case models.ApprovalRejected:
			return nil
		case models.ApprovalApproved:
			return ErrInvalidTransition
		}

		return tx.Model(recipe).Updates(map[string]interface{}{
			"approval_status": models.ApprovalRejected,
			"is_published":    false,
		}).Error
	})
}

// MarkTopOfWeek flags a recipe as top of the week and grants the owner the
// top-of-week award. No published-state precondition; the award is
// idempotent per recipe, so marking twice pays out once.
func (s *ApprovalService) MarkTopOfWeek(recipeID, adminID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireAdmin(tx, adminID); err != nil {
			return err
		}

		recipe, err := findRecipe(tx, recipeID)
		if err != nil {
			return err
		}

		err = tx.Model(recipe).Updates(map[string]interface{}{
			"is_top_of_week": true,
			"top_of_week_at": time.Now(),
		}).Error
		if err != nil {
			return err
		}

		rid := recipe.ID
		_, err = s.points.AwardTx(tx, recipe.UserID, models.PointsTopOfWeek,
			models.ActionTopOfWeek, &rid, "")
		return err
	})
}

// MarkGood tags an approved recipe with the good quality label. No award.
func (s *ApprovalService) MarkGood(recipeID, adminID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireAdmin(tx, adminID); err != nil {
			return err
		}

		recipe, err := findRecipe(tx, recipeID)
		if err != nil {
			return err
		}

		if recipe.ApprovalStatus != models.ApprovalApproved {
			return ErrInvalidTransition
		}

		return tx.Model(recipe).Updates(map[string]interface{}{
			"quality": models.QualityGood,
			"is_good": true,
		}).Error
	})
}

func findRecipe(tx *gorm.DB, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := tx.First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// requireAdmin resolves the caller's capability once per operation, from the
// role column. A missing or inactive account is treated as not found.
func requireAdmin(tx *gorm.DB, adminID uint) error {
	var admin models.User
	if err := tx.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !admin.IsActive || !admin.IsAdmin() {
		return ErrNotAdmin
	}
	return nil
}
