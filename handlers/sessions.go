// handlers/sessions.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"neuroleaf/middleware"
)

type CompleteSessionRequest struct {
	GameType   string `json:"game_type"`
	Score      int    `json:"score"`
	TimeTaken  int    `json:"time_taken"`
	Difficulty string `json:"difficulty"`
}

// CompleteSession is the single entry point mini-games report into: it
// records the session and applies XP, coins and achievement unlocks in one
// shot.
func CompleteSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req CompleteSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	outcome, err := svc.IngestSession(userID, req.GameType, req.Score, req.TimeTaken, req.Difficulty)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"outcome": outcome,
	})
}

// GetSessionHistory returns the user's completed sessions, newest first.
func GetSessionHistory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	sessions, err := svc.SessionHistory(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"sessions": sessions,
		"total":    len(sessions),
	})
}
