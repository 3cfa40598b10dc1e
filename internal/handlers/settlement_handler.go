package handlers

import (
	"log"

	"galeria/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SettlementHandler handles HTTP requests for transaction verification.
type SettlementHandler struct {
	service *services.SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(service *services.SettlementService) *SettlementHandler {
	return &SettlementHandler{
		service: service,
	}
}

// RegisterRoutes registers the settlement routes with the Fiber app.
func (h *SettlementHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/verify-tx", h.HandleVerifyTx)
}

// VerifyTxRequest is the buyer's claim that a transaction settles an order.
type VerifyTxRequest struct {
	OrderID string `json:"order_id"`
	TxHash  string `json:"tx_hash"`
	ChainID int64  `json:"chain_id"`
}

// HandleVerifyTx verifies a submitted transaction against chain state and,
// on success, returns the settled order.
func (h *SettlementHandler) HandleVerifyTx(c *fiber.Ctx) error {
	var req VerifyTxRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing verify request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"reason":  "invalid_request",
		})
	}

	order, err := h.service.Verify(c.Context(), req.OrderID, req.TxHash, req.ChainID)
	if err != nil {
		log.Printf("Verification failed for order %s (tx %s): %v", req.OrderID, req.TxHash, err)
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"order":       order,
		"explorer_tx": h.service.ExplorerTx(order),
	})
}
