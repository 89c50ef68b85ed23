// handlers/users.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"neuroleaf/middleware"
)

// GetCurrentUser returns the authenticated user's profile.
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := svc.User(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "user": userInfo(*user)})
}

// GetLeaderboard returns the top users for a category.
// GET /api/leaderboard?category=xp&limit=50
func GetLeaderboard(c *fiber.Ctx) error {
	category := c.Query("category", "xp")
	limit := c.QueryInt("limit", 50)

	users, err := svc.Leaderboard(category, limit)
	if err != nil {
		return fail(c, err)
	}

	entries := make([]fiber.Map, 0, len(users))
	for i, user := range users {
		entries = append(entries, fiber.Map{
			"rank":                i + 1,
			"username":            user.Username,
			"level":               user.Level,
			"xp":                  user.XP,
			"streak":              user.Streak,
			"total_trees_planted": user.TotalTreesPlanted,
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"category": category,
		"entries":  entries,
	})
}
