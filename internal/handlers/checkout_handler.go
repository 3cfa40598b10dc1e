package handlers

import (
	"log"

	"galeria/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for crypto checkout.
type CheckoutHandler struct {
	service *services.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout/crypto", h.HandleCreateOrder)
}

// HandleCreateOrder creates a pending order and returns the payment
// instructions the buyer's wallet needs to build the transfer.
func (h *CheckoutHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req services.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"reason":  "invalid_request",
		})
	}

	instructions, err := h.service.CreateOrder(req)
	if err != nil {
		log.Printf("Error creating order for artwork %s: %v", req.ArtworkID, err)
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(instructions)
}
