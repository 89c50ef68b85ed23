// Validates the seeded achievement and store catalogs before deploy:
// duplicate keys, unknown requirement types, missing game tags and
// non-positive values all fail the build.
package main

import (
	"fmt"
	"os"

	"neuroleaf/database"
	"neuroleaf/models"
)

var validRequirements = map[models.RequirementType]bool{
	models.RequirementXP:           true,
	models.RequirementStreak:       true,
	models.RequirementGameCount:    true,
	models.RequirementGamesPlayed:  true,
	models.RequirementJournalCount: true,
}

func main() {
	exitCode := 0

	seenKeys := make(map[string]bool)
	for _, a := range database.AchievementCatalog {
		if a.Key == "" {
			fmt.Printf("achievement %q: empty key\n", a.Name)
			exitCode = 1
			continue
		}
		if seenKeys[a.Key] {
			fmt.Printf("achievement %s: duplicate key\n", a.Key)
			exitCode = 1
		}
		seenKeys[a.Key] = true

		if !validRequirements[a.RequirementType] {
			fmt.Printf("achievement %s: unknown requirement type %q\n", a.Key, a.RequirementType)
			exitCode = 1
		}
		if a.RequirementValue <= 0 {
			fmt.Printf("achievement %s: requirement value must be positive\n", a.Key)
			exitCode = 1
		}
		if a.RequirementType == models.RequirementGameCount && a.RequirementGame == "" {
			fmt.Printf("achievement %s: game_count requirement needs a game\n", a.Key)
			exitCode = 1
		}
		if a.RequirementType != models.RequirementGameCount && a.RequirementGame != "" {
			fmt.Printf("achievement %s: requirement_game only valid for game_count\n", a.Key)
			exitCode = 1
		}
		if a.XPReward < 0 {
			fmt.Printf("achievement %s: negative xp reward\n", a.Key)
			exitCode = 1
		}
	}

	seenNames := make(map[string]bool)
	for _, item := range database.StoreCatalog {
		if item.Name == "" {
			fmt.Println("store item with empty name")
			exitCode = 1
			continue
		}
		if seenNames[item.Name] {
			fmt.Printf("store item %s: duplicate name\n", item.Name)
			exitCode = 1
		}
		seenNames[item.Name] = true

		if item.Price <= 0 {
			fmt.Printf("store item %s: price must be positive\n", item.Name)
			exitCode = 1
		}
		if item.Category == "" || item.ItemType == "" {
			fmt.Printf("store item %s: category and item type required\n", item.Name)
			exitCode = 1
		}
	}

	if exitCode == 0 {
		fmt.Printf("OK: %d achievements, %d store items\n",
			len(database.AchievementCatalog), len(database.StoreCatalog))
	}
	os.Exit(exitCode)
}
