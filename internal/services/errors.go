package services

import "errors"

// Settlement failure taxonomy. Every failure is returned synchronously to
// the caller with a distinguishable reason; handlers translate these into
// HTTP classes with errors.Is.
var (
	// ErrInvalidRequest: malformed or missing input, client-fixable.
	ErrInvalidRequest = errors.New("invalid request")

	// Referential failures, client-fixable.
	ErrOrderNotFound   = errors.New("order not found")
	ErrArtworkNotFound = errors.New("artwork not found")

	// ErrArtworkUnavailable: business-rule conflict, the piece is sold or
	// withdrawn.
	ErrArtworkUnavailable = errors.New("artwork is no longer available")

	// ErrChainQuery: transient infrastructure failure talking to the node.
	// Retryable with the same transaction hash.
	ErrChainQuery = errors.New("chain query failed")

	// Non-retryable proof failures: the submitted transaction does not
	// satisfy the payment contract. The buyer must pay again or contact
	// support.
	ErrTransactionFailed  = errors.New("transaction failed on chain")
	ErrWrongTokenContract = errors.New("transaction is not to the expected token contract")
	ErrPaymentMisdirected = errors.New("payment not sent to correct address")

	// ErrWalletNotConfigured: the platform's receiving wallet is unset.
	// Operational misconfiguration, never the buyer's fault.
	ErrWalletNotConfigured = errors.New("platform wallet not configured")

	// ErrInvalidTransition: the requested status change would move an order
	// backward through its lifecycle.
	ErrInvalidTransition = errors.New("order status cannot move backward")

	// ErrOrderNotPaid: shipping capture attempted before settlement.
	ErrOrderNotPaid = errors.New("order is not paid yet")
)
