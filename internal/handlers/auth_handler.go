package handlers

import (
	"log"

	"galeria/internal/models"
	"galeria/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for wallet-user authentication.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// RegisterRoutes registers the auth routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// HandleRegister registers a new wallet user.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.WalletUser
	if err := c.BodyParser(&user); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if user.WalletAddress == "" || user.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Wallet address and password are required.",
		})
	}

	// Admin status is never client-assignable.
	user.IsAdmin = false

	if err := h.service.RegisterUser(&user); err != nil {
		log.Printf("Error registering user %s: %v", user.WalletAddress, err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Could not register user",
			"error":   err.Error(),
		})
	}

	user.Password = "" // Never echo the hash back
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin authenticates a wallet user and returns a JWT.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&creds); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	token, err := h.service.LoginUser(creds.Email, creds.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}
