// handlers/journal.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"neuroleaf/middleware"
)

type JournalEntryRequest struct {
	FocusLevel  int    `json:"focus_level"`
	EnergyLevel string `json:"energy_level"`
	Reflection  string `json:"reflection"`
}

// CreateJournalEntry records a daily check-in.
func CreateJournalEntry(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req JournalEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	entry, newAchievements, err := svc.AddJournalEntry(userID, req.FocusLevel, req.EnergyLevel, req.Reflection)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"entry":            entry,
		"new_achievements": newAchievements,
	})
}

// GetJournalEntries lists the user's check-ins, newest first.
func GetJournalEntries(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	entries, err := svc.JournalEntries(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "entries": entries, "total": len(entries)})
}
