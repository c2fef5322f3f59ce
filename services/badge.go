// services/badge.go - Badge tiers derived from cumulative points
package services

// Badge tier names, highest first.
const (
	BadgeGoldChef   = "Gold Chef"
	BadgeSilverChef = "Silver Chef"
	BadgeBronzeChef = "Bronze Chef"
	BadgeBeginner   = "Beginner"
	BadgeNewbie     = "Newbie"
)

// BadgeForPoints maps a cumulative point total to a tier label. Thresholds
// are inclusive lower bounds; the highest matching tier wins.
func BadgeForPoints(total int) string {
	switch {
	case total >= 1000:
		return BadgeGoldChef
	case total >= 500:
		return BadgeSilverChef
	case total >= 200:
		return BadgeBronzeChef
	case total >= 50:
		return BadgeBeginner
	default:
		return BadgeNewbie
	}
}
