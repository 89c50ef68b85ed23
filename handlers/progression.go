// handlers/progression.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"neuroleaf/middleware"
	"neuroleaf/progression"
)

// GetProgression returns the user's level, XP, streak and coin totals.
func GetProgression(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := svc.User(userID)
	if err != nil {
		return fail(c, err)
	}

	xpForCurrent := progression.XPForLevel(user.Level)
	xpForNext := progression.XPForLevel(user.Level + 1)
	progress := 0.0
	if xpForNext > xpForCurrent {
		progress = float64(user.XP-xpForCurrent) / float64(xpForNext-xpForCurrent) * 100
	}

	return c.JSON(fiber.Map{
		"success":             true,
		"level":               user.Level,
		"xp":                  user.XP,
		"xp_for_next_level":   xpForNext,
		"progress_percent":    progress,
		"coins":               user.Coins,
		"streak":              user.Streak,
		"total_trees_planted": user.TotalTreesPlanted,
	})
}

// GetUserAchievements returns every achievement with its unlock status for
// the current user.
func GetUserAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	achievements, err := svc.AchievementsForUser(userID)
	if err != nil {
		return fail(c, err)
	}

	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
		}
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": achievements,
		"total":        len(achievements),
		"unlocked":     unlocked,
	})
}

// GetCoinHistory returns the user's most recent coin ledger entries.
func GetCoinHistory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	limit := c.QueryInt("limit", 50)
	transactions, err := svc.CoinHistory(userID, limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"transactions": transactions,
	})
}
