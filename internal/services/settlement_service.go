package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"galeria/internal/chain"
	"galeria/internal/models"
	"galeria/internal/repositories"

	"github.com/ethereum/go-ethereum/common"
)

// SettlementService reconciles a buyer-submitted transaction against the
// real chain state and, on success, commits the order's paid transition
// together with the artwork's availability flip.
//
// Verification is buyer-initiated and on-demand: the buyer's client calls
// Verify after broadcasting the transfer. There is no chain listener; a
// buyer who pays but never calls back leaves the order pending.
type SettlementService struct {
	orderRepo repositories.OrderRepository
	registry  *chain.Registry
	cfg       *Config
	events    SettlementEventPublisher
}

// NewSettlementService creates a new SettlementService. events may be nil;
// post-settlement publishing is skipped in that case.
func NewSettlementService(orderRepo repositories.OrderRepository, registry *chain.Registry, cfg *Config, events SettlementEventPublisher) *SettlementService {
	return &SettlementService{
		orderRepo: orderRepo,
		registry:  registry,
		cfg:       cfg,
		events:    events,
	}
}

// Verify checks the submitted transaction hash against the chain and
// settles the order when the payment is sound:
//
//  1. the transaction must have executed successfully,
//  2. it must be addressed to the order's recorded token contract,
//  3. one of its Transfer events must pay the gallery's wallet.
//
// An order that is already paid (or later) short-circuits without touching
// the chain, so duplicate and concurrent calls converge on the same result.
// No failure mutates the order; success commits the status and the artwork
// flag as one atomic unit.
func (s *SettlementService) Verify(ctx context.Context, orderID, txHash string, chainID int64) (*models.Order, error) {
	if orderID == "" || txHash == "" || chainID == 0 {
		return nil, fmt.Errorf("%w: orderID, txHash and chainID are required", ErrInvalidRequest)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}

	// Idempotent short-circuit: already settled, no chain re-query.
	if models.StatusRank(order.Status) >= models.StatusRank(models.StatusPaid) {
		return order, nil
	}

	client, err := s.registry.Client(chainID)
	if err != nil {
		return nil, err
	}

	// The one blocking external call in the whole flow. No internal retry;
	// the caller retries the whole Verify on transient failure.
	receipt, err := client.GetReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChainQuery, err)
	}

	if receipt.Status != chain.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("tx %s: %w", txHash, ErrTransactionFailed)
	}

	// The buyer must have paid with the exact asset the order was quoted
	// in. Address comparison is byte equality after hex parsing, so casing
	// differences never matter.
	if receipt.To != common.HexToAddress(order.TokenAddress) {
		return nil, fmt.Errorf("tx %s went to %s, expected %s: %w", txHash, receipt.To.Hex(), order.TokenAddress, ErrWrongTokenContract)
	}

	if s.cfg.RecipientWallet == "" {
		log.Printf("ERROR: platform wallet is not configured; cannot verify order %s", orderID)
		return nil, ErrWalletNotConfigured
	}
	recipient := common.HexToAddress(s.cfg.RecipientWallet)

	// Scan the emitted logs for a Transfer whose recipient is the gallery.
	// A successful transaction that paid someone else is still a failure.
	paid := false
	for _, lg := range receipt.Logs {
		transfer, ok := chain.DecodeTransfer(lg)
		if !ok {
			continue
		}
		if transfer.To == recipient {
			paid = true
			break
		}
	}
	if !paid {
		return nil, fmt.Errorf("tx %s: %w", txHash, ErrPaymentMisdirected)
	}

	// Commit: paid status + tx hash + artwork availability, atomically.
	updated, err := s.orderRepo.MarkPaid(order.ID, txHash, order.ArtworkID)
	if err != nil {
		return nil, fmt.Errorf("failed to settle order %s: %w", order.ID, err)
	}

	log.Printf("Order %s settled by tx %s on chain %d", updated.ID, txHash, chainID)
	s.publishOrderPaid(updated)

	return updated, nil
}

// ExplorerTx renders the block-explorer link for the order's settlement
// transaction, or "" while the order is unpaid.
func (s *SettlementService) ExplorerTx(order *models.Order) string {
	return s.registry.ExplorerTxLink(order.ChainID, order.TxHash)
}

// publishOrderPaid fires the post-settlement event that unlocks the
// fulfilment side (shipping capture, future certificate issuance). It is
// best-effort: the payment is already committed, so a broker failure is
// logged and swallowed.
func (s *SettlementService) publishOrderPaid(order *models.Order) {
	if s.events == nil {
		log.Println("Settlement event publisher is not initialized. Skipping order.paid event.")
		return
	}

	event := map[string]interface{}{
		"event":      "order.paid",
		"orderID":    order.ID,
		"artworkID":  order.ArtworkID,
		"buyerID":    order.BuyerID,
		"chainID":    order.ChainID,
		"txHash":     order.TxHash,
		"amountUSD":  order.AmountUSD,
		"explorerTx": s.registry.ExplorerTxLink(order.ChainID, order.TxHash),
	}
	if err := s.events.PublishOrderPaid(event); err != nil {
		log.Printf("Warning: Failed to publish order.paid event for order %s: %v", order.ID, err)
	} else {
		log.Printf("Successfully published order.paid event for order %s", order.ID)
	}
}
