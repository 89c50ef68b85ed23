// handlers/store.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"neuroleaf/middleware"
)

type PurchaseRequest struct {
	StoreItemID uint `json:"store_item_id"`
	Quantity    int  `json:"quantity"`
}

// GetStoreItems lists the available catalog.
func GetStoreItems(c *fiber.Ctx) error {
	items, err := svc.Catalog()
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "items": items, "total": len(items)})
}

// PurchaseItem buys quantity of a store item with coins.
func PurchaseItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	receipt, err := svc.Purchase(userID, req.StoreItemID, req.Quantity)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "receipt": receipt})
}

// GetInventory lists everything the user owns.
func GetInventory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	items, err := svc.Inventory(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "inventory": items, "total": len(items)})
}
