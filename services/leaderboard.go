// services/leaderboard.go - Monthly top chefs
package services

import (
	"time"

	"gorm.io/gorm"
)

const DefaultLeaderboardSize = 5

// ChefEntry is one leaderboard row: the user's points earned this month and
// their all-time total with its badge tier.
type ChefEntry struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	ProfileImage string `json:"profile_image"`
	MonthPoints  int    `json:"month_points"`
	PointsTotal  int    `json:"points_total"`
	Badge        string `json:"badge" gorm:"-"`
}

// LeaderboardService ranks users by points earned inside the current
// calendar month, computed on demand straight from the ledger.
type LeaderboardService struct {
	db  *gorm.DB
	loc *time.Location
	now func() time.Time
}

func NewLeaderboardService(db *gorm.DB, loc *time.Location) *LeaderboardService {
	return &LeaderboardService{db: db, loc: loc, now: time.Now}
}

// TopChefsOfMonth sums ledger deltas per user over the current calendar
// month, left-joined against all users so zero-point users can appear, and
// returns the top limit rows ordered by monthly sum with the all-time total
// as tie-break.
func (s *LeaderboardService) TopChefsOfMonth(limit int) ([]ChefEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}

	monthStart, monthEnd := s.monthWindow()

	var entries []ChefEntry
	err := s.db.Raw(`
		SELECT
			u.id AS user_id,
			u.username,
			u.first_name,
			u.last_name,
			u.profile_image,
			COALESCE(SUM(pt.points), 0) AS month_points,
			u.points_total
		FROM users u
		LEFT JOIN points_transactions pt
			ON pt.user_id = u.id AND pt.created_at >= ? AND pt.created_at < ?
		WHERE u.is_active = ?
		GROUP BY u.id, u.username, u.first_name, u.last_name, u.profile_image, u.points_total
		ORDER BY month_points DESC, u.points_total DESC
		LIMIT ?
	`, monthStart, monthEnd, true, limit).Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Badge = BadgeForPoints(entries[i].PointsTotal)
	}

	return entries, nil
}

// monthWindow returns [start of this month, start of next month) in the
// configured timezone.
func (s *LeaderboardService) monthWindow() (time.Time, time.Time) {
	now := s.now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 1, 0)
}
