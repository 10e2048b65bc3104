package handlers

import (
	"log"

	"pelari/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PowerUpHandler handles HTTP requests for the power-up shop.
type PowerUpHandler struct {
	service *services.ShopService
}

// NewPowerUpHandler creates a new PowerUpHandler.
func NewPowerUpHandler(service *services.ShopService) *PowerUpHandler {
	return &PowerUpHandler{
		service: service,
	}
}

// RegisterRoutes registers the power-up routes with the Fiber app.
func (h *PowerUpHandler) RegisterRoutes(router fiber.Router) {
	powerUpRoutes := router.Group("/powerups")
	powerUpRoutes.Get("/list", h.HandleListCatalog)
	powerUpRoutes.Post("/buy/:userId/:powerUpId", h.HandleBuyPowerUp)
	powerUpRoutes.Get("/owned/:userId", h.HandleListOwned)
	powerUpRoutes.Post("/use/:userId/:powerUpId", h.HandleUsePowerUp)
}

// HandleListCatalog returns the full power-up catalog.
func (h *PowerUpHandler) HandleListCatalog(c *fiber.Ctx) error {
	powerUps, err := h.service.Catalog()
	if err != nil {
		log.Printf("Error listing power-up catalog: %v", err)
		return respondBusinessError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, "Power-ups fetched", powerUps)
}

// HandleBuyPowerUp purchases one power-up for a player.
func (h *PowerUpHandler) HandleBuyPowerUp(c *fiber.Ctx) error {
	userID := c.Params("userId")
	powerUpID := c.Params("powerUpId")

	user, err := h.service.BuyPowerUp(userID, powerUpID)
	if err != nil {
		log.Printf("Error buying power-up %s for user %s: %v", powerUpID, userID, err)
		return respondBusinessError(c, err)
	}

	user.Password = ""
	return respondSuccess(c, fiber.StatusOK, "Power-up purchased", user)
}

// HandleListOwned returns all power-ups a player currently owns.
func (h *PowerUpHandler) HandleListOwned(c *fiber.Ctx) error {
	userID := c.Params("userId")
	owned, err := h.service.ListOwned(userID)
	if err != nil {
		log.Printf("Error listing owned power-ups for user %s: %v", userID, err)
		return respondBusinessError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, "User power-ups fetched", owned)
}

// HandleUsePowerUp consumes one owned power-up. Using with nothing owned
// still reports success.
func (h *PowerUpHandler) HandleUsePowerUp(c *fiber.Ctx) error {
	userID := c.Params("userId")
	powerUpID := c.Params("powerUpId")

	if err := h.service.UsePowerUp(userID, powerUpID); err != nil {
		log.Printf("Error using power-up %s for user %s: %v", powerUpID, userID, err)
		return respondBusinessError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, "Power-up used", nil)
}
