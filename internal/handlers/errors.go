package handlers

import (
	"errors"

	"galeria/internal/chain"
	"galeria/internal/services"

	"github.com/gofiber/fiber/v2"
)

// failure is the wire shape of every error response: an HTTP class plus a
// machine-readable reason the client can branch on.
type failure struct {
	status  int
	reason  string
	message string
}

// classify maps the settlement error taxonomy onto HTTP classes.
// Client errors are fixable by the buyer; conflicts are business-rule
// rejections; server errors are retryable infrastructure or operator
// misconfiguration.
func classify(err error) failure {
	switch {
	case errors.Is(err, services.ErrInvalidRequest):
		return failure{fiber.StatusBadRequest, "invalid_request", "Missing or malformed fields"}
	case errors.Is(err, chain.ErrUnsupportedNetwork):
		return failure{fiber.StatusBadRequest, "unsupported_network", "Unsupported chain"}
	case errors.Is(err, services.ErrTransactionFailed):
		return failure{fiber.StatusBadRequest, "transaction_failed", "Transaction failed on chain"}
	case errors.Is(err, services.ErrWrongTokenContract):
		return failure{fiber.StatusBadRequest, "wrong_token_contract", "Invalid token contract"}
	case errors.Is(err, services.ErrPaymentMisdirected):
		return failure{fiber.StatusBadRequest, "payment_misdirected", "Payment not sent to correct address"}
	case errors.Is(err, services.ErrOrderNotFound):
		return failure{fiber.StatusNotFound, "order_not_found", "Order not found"}
	case errors.Is(err, services.ErrArtworkNotFound):
		return failure{fiber.StatusNotFound, "artwork_not_found", "Artwork not found"}
	case errors.Is(err, services.ErrArtworkUnavailable):
		return failure{fiber.StatusConflict, "artwork_unavailable", "Artwork is no longer available"}
	case errors.Is(err, services.ErrOrderNotPaid):
		return failure{fiber.StatusConflict, "order_not_paid", "Order has not been paid yet"}
	case errors.Is(err, services.ErrInvalidTransition):
		return failure{fiber.StatusConflict, "invalid_transition", "Order status cannot move backward"}
	case errors.Is(err, services.ErrChainQuery):
		return failure{fiber.StatusInternalServerError, "chain_query_failed", "Could not reach the network, please retry"}
	case errors.Is(err, services.ErrWalletNotConfigured):
		// Operator problem, never the buyer's. Keep the body generic.
		return failure{fiber.StatusInternalServerError, "server_error", "Something went wrong, please try again later"}
	default:
		return failure{fiber.StatusInternalServerError, "server_error", "Something went wrong, please try again later"}
	}
}

// fail writes the classified error response.
func fail(c *fiber.Ctx, err error) error {
	f := classify(err)
	return c.Status(f.status).JSON(fiber.Map{
		"message": f.message,
		"reason":  f.reason,
	})
}
