package handlers

import (
	"log"

	"galeria/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ShippingHandler handles post-payment shipping-address capture.
type ShippingHandler struct {
	service *services.ShippingService
}

// NewShippingHandler creates a new ShippingHandler.
func NewShippingHandler(service *services.ShippingService) *ShippingHandler {
	return &ShippingHandler{
		service: service,
	}
}

// RegisterRoutes registers the shipping routes with the Fiber app.
func (h *ShippingHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/shipping", h.HandleAttachAddress)
}

// HandleAttachAddress stores a shipping address for a paid order.
func (h *ShippingHandler) HandleAttachAddress(c *fiber.Ctx) error {
	var req services.AttachAddressRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing shipping request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"reason":  "invalid_request",
		})
	}

	address, err := h.service.AttachAddress(req)
	if err != nil {
		log.Printf("Error attaching shipping address to order %s: %v", req.OrderID, err)
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":          true,
		"shipping_address": address,
	})
}
