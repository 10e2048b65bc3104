package handlers

import (
	"fmt"
	"log"

	"pelari/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// GameSessionHandler handles HTTP requests for game sessions.
type GameSessionHandler struct {
	service  *services.GameService
	validate *validator.Validate
}

// NewGameSessionHandler creates a new GameSessionHandler.
func NewGameSessionHandler(service *services.GameService) *GameSessionHandler {
	return &GameSessionHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the game session routes with the Fiber app.
func (h *GameSessionHandler) RegisterRoutes(router fiber.Router) {
	sessionRoutes := router.Group("/game-sessions")
	sessionRoutes.Post("/user/:userId", h.HandleSubmitSession)
	sessionRoutes.Get("/user/:userId", h.HandleListUserSessions)
	sessionRoutes.Get("/top", h.HandleTopSessions)
}

// HandleSubmitSession records a completed run and returns the player's
// updated profile.
func (h *GameSessionHandler) HandleSubmitSession(c *fiber.Ctx) error {
	var report services.SessionReport
	if err := c.BodyParser(&report); err != nil {
		log.Printf("Error parsing session report body: %v", err)
		return respondFailure(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validate.Struct(report); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		e := validationErrors[0]
		return respondFailure(c, fiber.StatusBadRequest,
			fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
	}

	userID := c.Params("userId")
	_, user, err := h.service.SubmitSession(userID, report)
	if err != nil {
		log.Printf("Error saving session for user %s: %v", userID, err)
		return respondBusinessError(c, err)
	}

	user.Password = ""
	return respondSuccess(c, fiber.StatusOK, "Game session saved successfully", user)
}

// HandleListUserSessions lists a player's sessions, score descending.
func (h *GameSessionHandler) HandleListUserSessions(c *fiber.Ctx) error {
	userID := c.Params("userId")
	sessions, err := h.service.ListUserSessions(userID)
	if err != nil {
		log.Printf("Error listing sessions for user %s: %v", userID, err)
		return respondBusinessError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, "Game sessions fetched successfully", sessions)
}

// HandleTopSessions lists the globally top-scoring sessions.
func (h *GameSessionHandler) HandleTopSessions(c *fiber.Ctx) error {
	sessions, err := h.service.TopSessions()
	if err != nil {
		log.Printf("Error listing top sessions: %v", err)
		return respondBusinessError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, "Top game sessions fetched successfully", sessions)
}
