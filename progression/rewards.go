// progression/rewards.go - per-session reward math
package progression

// BaseSessionXP is the flat XP granted for finishing any mini-game round.
const BaseSessionXP = 15

// SessionXP computes the XP earned for a completed session. Scores are
// expected on a ~0-100 scale; out-of-range scores are clamped rather than
// rejected so a misbehaving game can't produce a negative gain.
func SessionXP(score int) int {
	if score < 0 {
		score = 0
	}
	return BaseSessionXP + score/50
}

// SessionCoins computes the coin reward for a completed session, tiered by
// score.
func SessionCoins(score int) int {
	switch {
	case score >= 95:
		return 8
	case score >= 80:
		return 5
	default:
		return 2
	}
}
