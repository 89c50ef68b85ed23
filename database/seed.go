// database/seed.go - reference data (achievement and store catalogs)
package database

import (
	"log"

	"neuroleaf/models"
)

// AchievementCatalog is the static achievement set. Seeded once; existing
// rows (matched by key) are left alone so unlock history stays stable.
var AchievementCatalog = []models.Achievement{
	{Key: "first-session", Name: "First Steps", Description: "Complete your first training session", IconType: "star", RequirementType: models.RequirementGamesPlayed, RequirementValue: 1, XPReward: 10},
	{Key: "explorer", Name: "Explorer", Description: "Try 3 different games", IconType: "compass", RequirementType: models.RequirementGamesPlayed, RequirementValue: 3, XPReward: 25},
	{Key: "well-rounded", Name: "Well Rounded", Description: "Try 5 different games", IconType: "globe", RequirementType: models.RequirementGamesPlayed, RequirementValue: 5, XPReward: 50},

	{Key: "memory-novice", Name: "Memory Novice", Description: "Play Memory Matrix 10 times", IconType: "grid", RequirementType: models.RequirementGameCount, RequirementGame: "memory-matrix", RequirementValue: 10, XPReward: 30},
	{Key: "echo-adept", Name: "Echo Adept", Description: "Play Color Echo 10 times", IconType: "palette", RequirementType: models.RequirementGameCount, RequirementGame: "color-echo", RequirementValue: 10, XPReward: 30},
	{Key: "sequence-master", Name: "Sequence Master", Description: "Play Shape Sequence 25 times", IconType: "shapes", RequirementType: models.RequirementGameCount, RequirementGame: "shape-sequence", RequirementValue: 25, XPReward: 75},

	{Key: "xp-50", Name: "Getting Warmed Up", Description: "Earn 50 XP", IconType: "spark", RequirementType: models.RequirementXP, RequirementValue: 50, XPReward: 10},
	{Key: "xp-500", Name: "Sharp Mind", Description: "Earn 500 XP", IconType: "bolt", RequirementType: models.RequirementXP, RequirementValue: 500, XPReward: 50},
	{Key: "xp-2000", Name: "Mental Athlete", Description: "Earn 2000 XP", IconType: "trophy", RequirementType: models.RequirementXP, RequirementValue: 2000, XPReward: 100},

	{Key: "streak-3", Name: "Consistent", Description: "Train 3 days in a row", IconType: "flame", RequirementType: models.RequirementStreak, RequirementValue: 3, XPReward: 20},
	{Key: "streak-7", Name: "Dedicated", Description: "Train 7 days in a row", IconType: "flame", RequirementType: models.RequirementStreak, RequirementValue: 7, XPReward: 50},
	{Key: "streak-30", Name: "Unstoppable", Description: "Train 30 days in a row", IconType: "fire", RequirementType: models.RequirementStreak, RequirementValue: 30, XPReward: 200},

	{Key: "journal-1", Name: "Reflective", Description: "Write your first journal entry", IconType: "book", RequirementType: models.RequirementJournalCount, RequirementValue: 1, XPReward: 10},
	{Key: "journal-10", Name: "Self-Aware", Description: "Write 10 journal entries", IconType: "book", RequirementType: models.RequirementJournalCount, RequirementValue: 10, XPReward: 40},
}

// StoreCatalog is the static store inventory.
var StoreCatalog = []models.StoreItem{
	{Name: "Oak Sapling", Description: "A sturdy classic", Category: "tree", ItemType: "oak", Price: 30, IsAvailable: true},
	{Name: "Cherry Sapling", Description: "Blossoms in spring", Category: "tree", ItemType: "cherry", Price: 60, IsAvailable: true},
	{Name: "Rainbow Sapling", Description: "Rare and colorful", Category: "tree", ItemType: "rainbow", Price: 150, IsAvailable: true},

	{Name: "Fairy Lights", Description: "A warm glow for your tree", Category: "decoration", ItemType: "lights", Price: 20, IsAvailable: true},
	{Name: "Bird Nest", Description: "A small family moves in", Category: "decoration", ItemType: "nest", Price: 25, IsAvailable: true},
	{Name: "Wind Chimes", Description: "Gentle sounds in the breeze", Category: "decoration", ItemType: "chimes", Price: 35, IsAvailable: true},
	{Name: "Golden Star", Description: "For the top of a proud tree", Category: "decoration", ItemType: "star", Price: 80, IsAvailable: true},

	{Name: "Watering Can", Description: "Waters a tree twice as effectively", Category: "boost", ItemType: "watering-can", Price: 45, IsAvailable: true},
}

// SeedReferenceData inserts missing achievements and store items. Safe to
// run on every startup.
func SeedReferenceData() {
	db := GetDB()

	seeded := 0
	for _, achievement := range AchievementCatalog {
		var count int64
		db.Model(&models.Achievement{}).Where("key = ?", achievement.Key).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&achievement).Error; err != nil {
			log.Printf("⚠️ Failed to seed achievement %s: %v", achievement.Key, err)
			continue
		}
		seeded++
	}
	if seeded > 0 {
		log.Printf("✅ Seeded %d achievements", seeded)
	}

	seeded = 0
	for _, item := range StoreCatalog {
		var count int64
		db.Model(&models.StoreItem{}).Where("name = ?", item.Name).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&item).Error; err != nil {
			log.Printf("⚠️ Failed to seed store item %s: %v", item.Name, err)
			continue
		}
		seeded++
	}
	if seeded > 0 {
		log.Printf("✅ Seeded %d store items", seeded)
	}
}
