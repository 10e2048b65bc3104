package handlers

import (
	"fmt"
	"log"

	"pelari/internal/models"
	"pelari/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for registration, profiles and the
// leaderboard.
type UserHandler struct {
	authService *services.AuthService
	userService *services.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, userService *services.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. Static paths
// are registered before the :id parameter so they are matched first.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/register", h.HandleRegister)
	userRoutes.Get("/leaderboard", h.HandleLeaderboard)
	userRoutes.Get("/username/:username", h.HandleGetUserByUsername)
	userRoutes.Get("/:id", h.HandleGetUserByID)
}

// HandleRegister handles new player registration.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return respondFailure(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validate.Struct(user); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		e := validationErrors[0]
		return respondFailure(c, fiber.StatusBadRequest,
			fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
	}

	if err := h.authService.RegisterUser(&user); err != nil {
		log.Printf("Error registering user: %v", err)
		return respondBusinessError(c, err)
	}

	// For security, do not return the password hash
	user.Password = ""
	return respondSuccess(c, fiber.StatusCreated, "User registered successfully", user)
}

// HandleGetUserByID fetches a player profile by ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting user by ID %s: %v", c.Params("id"), err)
		return respondBusinessError(c, err)
	}

	user.Password = ""
	return respondSuccess(c, fiber.StatusOK, "User fetched successfully", user)
}

// HandleGetUserByUsername fetches a player profile by username.
func (h *UserHandler) HandleGetUserByUsername(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByUsername(c.Params("username"))
	if err != nil {
		log.Printf("Error getting user by username %s: %v", c.Params("username"), err)
		return respondBusinessError(c, err)
	}

	user.Password = ""
	return respondSuccess(c, fiber.StatusOK, "User fetched successfully", user)
}

// HandleLeaderboard returns the top players ordered by highest score.
func (h *UserHandler) HandleLeaderboard(c *fiber.Ctx) error {
	entries, err := h.userService.Leaderboard()
	if err != nil {
		log.Printf("Error getting leaderboard: %v", err)
		return respondBusinessError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, "Leaderboard fetched successfully", entries)
}
