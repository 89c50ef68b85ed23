// handlers/trees.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"neuroleaf/middleware"
	"neuroleaf/models"
)

type PlantTreeRequest struct {
	TreeType string `json:"tree_type"`
}

type GrowTreeRequest struct {
	XP int `json:"xp"`
}

type DecorateTreeRequest struct {
	Decoration string `json:"decoration"`
}

// treeView flattens a tree for JSON, expanding the decoration set.
func treeView(tree *models.UserTree) fiber.Map {
	return fiber.Map{
		"id":             tree.ID,
		"tree_type":      tree.TreeType,
		"growth_stage":   tree.GrowthStage,
		"xp_contributed": tree.XPContributed,
		"decorations":    tree.DecorationList(),
		"planted_at":     tree.PlantedAt,
		"last_watered":   tree.LastWatered,
	}
}

// PlantTree plants a new tree for the user.
func PlantTree(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req PlantTreeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	tree, err := svc.PlantTree(userID, req.TreeType)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "tree": treeView(tree)})
}

// GetTrees lists the user's trees.
func GetTrees(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	trees, err := svc.Trees(userID)
	if err != nil {
		return fail(c, err)
	}

	views := make([]fiber.Map, 0, len(trees))
	for i := range trees {
		views = append(views, treeView(&trees[i]))
	}

	return c.JSON(fiber.Map{"success": true, "trees": views, "total": len(views)})
}

// GrowTree contributes XP to a tree.
func GrowTree(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	treeID, err := c.ParamsInt("id")
	if err != nil || treeID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid tree id"})
	}

	var req GrowTreeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.XP < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "XP must be non-negative"})
	}

	tree, err := svc.GrowTree(userID, uint(treeID), req.XP)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "tree": treeView(tree)})
}

// WaterTree waters a tree, contributing a small fixed XP amount.
func WaterTree(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	treeID, err := c.ParamsInt("id")
	if err != nil || treeID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid tree id"})
	}

	tree, err := svc.WaterTree(userID, uint(treeID))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "tree": treeView(tree)})
}

// DecorateTree attaches a decoration to a tree.
func DecorateTree(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	treeID, err := c.ParamsInt("id")
	if err != nil || treeID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid tree id"})
	}

	var req DecorateTreeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	tree, err := svc.DecorateTree(userID, uint(treeID), req.Decoration)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "tree": treeView(tree)})
}
