// services/leaderboard_test.go
package services

import (
	"testing"
	"time"

	"tastybook/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ledgerRow backdates a ledger entry and bumps the cached total, so monthly
// windows can be exercised without going through the award path.
func ledgerRow(t *testing.T, db *gorm.DB, userID uint, points int, at time.Time) {
	t.Helper()

	entry := models.PointsTransaction{
		UserID:    userID,
		Action:    "test_" + at.Format("20060102150405.000000000"),
		Points:    points,
		CreatedAt: at,
	}
	require.NoError(t, db.Create(&entry).Error)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("points_total", gorm.Expr("points_total + ?", points)).Error)
}

func newLeaderboardFixture(t *testing.T) (*gorm.DB, *LeaderboardService) {
	t.Helper()

	db := newTestDB(t)
	svc := NewLeaderboardService(db, time.UTC)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	return db, svc
}

func TestLeaderboardRanksByMonthPoints(t *testing.T) {
	db, svc := newLeaderboardFixture(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	inMonth := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	ledgerRow(t, db, alice.ID, 10, inMonth)
	ledgerRow(t, db, bob.ID, 30, inMonth)

	entries, err := svc.TopChefsOfMonth(DefaultLeaderboardSize)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "bob", entries[0].Username)
	require.Equal(t, 30, entries[0].MonthPoints)
	require.Equal(t, "alice", entries[1].Username)
	require.Equal(t, 10, entries[1].MonthPoints)
}

func TestLeaderboardIgnoresOtherMonths(t *testing.T) {
	db, svc := newLeaderboardFixture(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	ledgerRow(t, db, alice.ID, 10, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	// february and april rows must not count toward march
	ledgerRow(t, db, bob.ID, 100, time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC))
	ledgerRow(t, db, bob.ID, 100, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))

	entries, err := svc.TopChefsOfMonth(DefaultLeaderboardSize)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "alice", entries[0].Username)
	require.Equal(t, 10, entries[0].MonthPoints)
	require.Equal(t, "bob", entries[1].Username)
	require.Equal(t, 0, entries[1].MonthPoints)
	require.Equal(t, 200, entries[1].PointsTotal)
}

func TestLeaderboardTieBreaksOnAllTimeTotal(t *testing.T) {
	db, svc := newLeaderboardFixture(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	inMonth := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	ledgerRow(t, db, alice.ID, 20, inMonth)
	ledgerRow(t, db, bob.ID, 20, inMonth)
	// bob's older points break the tie in his favor
	ledgerRow(t, db, bob.ID, 500, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))

	entries, err := svc.TopChefsOfMonth(DefaultLeaderboardSize)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "bob", entries[0].Username)
	require.Equal(t, "alice", entries[1].Username)
}

func TestLeaderboardExcludesInactiveUsers(t *testing.T) {
	db, svc := newLeaderboardFixture(t)
	alice := createUser(t, db, "alice")
	ghost := createUser(t, db, "ghost")
	require.NoError(t, db.Model(ghost).Update("is_active", false).Error)

	inMonth := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	ledgerRow(t, db, alice.ID, 10, inMonth)
	ledgerRow(t, db, ghost.ID, 100, inMonth)

	entries, err := svc.TopChefsOfMonth(DefaultLeaderboardSize)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "alice", entries[0].Username)
}

func TestLeaderboardLimit(t *testing.T) {
	db, svc := newLeaderboardFixture(t)
	inMonth := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"a", "b", "c", "d"} {
		u := createUser(t, db, name)
		ledgerRow(t, db, u.ID, (i+1)*10, inMonth)
	}

	entries, err := svc.TopChefsOfMonth(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "d", entries[0].Username)
	require.Equal(t, "c", entries[1].Username)
}

func TestLeaderboardBadgesFromAllTimeTotal(t *testing.T) {
	db, svc := newLeaderboardFixture(t)
	alice := createUser(t, db, "alice")

	ledgerRow(t, db, alice.ID, 600, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	ledgerRow(t, db, alice.ID, 10, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	entries, err := svc.TopChefsOfMonth(DefaultLeaderboardSize)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 10, entries[0].MonthPoints)
	require.Equal(t, 610, entries[0].PointsTotal)
	require.Equal(t, BadgeSilverChef, entries[0].Badge)
}
