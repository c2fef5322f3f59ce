// services/badge_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBadgeForPoints(t *testing.T) {
	cases := []struct {
		points int
		want   string
	}{
		{0, BadgeNewbie},
		{49, BadgeNewbie},
		{50, BadgeBeginner},
		{199, BadgeBeginner},
		{200, BadgeBronzeChef},
		{499, BadgeBronzeChef},
		{500, BadgeSilverChef},
		{999, BadgeSilverChef},
		{1000, BadgeGoldChef},
		{5000, BadgeGoldChef},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, BadgeForPoints(tc.points), "points=%d", tc.points)
	}
}
