package handlers

import (
	"log"

	"galeria/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the operator-facing reconciliation endpoints.
// The caller is expected to mount these behind the admin middleware.
type AdminHandler struct {
	service *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Get("/sales", h.HandleListSales)
	adminRoutes.Post("/sales/status", h.HandleSetStatus)
}

// HandleListSales returns orders filtered by status with a totals summary.
func (h *AdminHandler) HandleListSales(c *fiber.Ctx) error {
	status := c.Query("status")
	limit := c.QueryInt("limit")

	orders, summary, err := h.service.ListOrders(status, limit)
	if err != nil {
		log.Printf("Error listing sales (status=%q): %v", status, err)
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"summary": summary,
		"orders":  orders,
	})
}

// SetStatusRequest is an operator override for the post-payment
// transitions (shipped, delivered).
type SetStatusRequest struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// HandleSetStatus forces an order's status without chain verification.
func (h *AdminHandler) HandleSetStatus(c *fiber.Ctx) error {
	var req SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status override body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"reason":  "invalid_request",
		})
	}

	order, err := h.service.SetStatus(req.OrderID, req.Status)
	if err != nil {
		log.Printf("Error overriding status for order %s: %v", req.OrderID, err)
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}
