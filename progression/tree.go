// progression/tree.go - growth-tree staging
package progression

import (
	"neuroleaf/models"
)

// MaxGrowthStage is the terminal stage; contributions past it still
// accumulate in XPContributed but the stage stays put.
const MaxGrowthStage = 5

// stageThresholds[i] is the minimum contributed XP for stage i+2.
var stageThresholds = [4]int{50, 150, 300, 500}

// StageForXP maps contributed XP to a growth stage (1-5).
func StageForXP(xpContributed int) int {
	stage := 1
	for _, threshold := range stageThresholds {
		if xpContributed < threshold {
			break
		}
		stage++
	}
	return stage
}

// GrowTree returns a copy of the tree with the contribution added and the
// stage recomputed. The stage never moves backwards, even if thresholds
// change between releases.
func GrowTree(tree models.UserTree, xpToContribute int) (models.UserTree, error) {
	if xpToContribute < 0 {
		return tree, ErrNegativeXPGain
	}
	tree.XPContributed += xpToContribute
	if stage := StageForXP(tree.XPContributed); stage > tree.GrowthStage {
		tree.GrowthStage = stage
	}
	if tree.GrowthStage < 1 {
		tree.GrowthStage = 1
	}
	return tree, nil
}
