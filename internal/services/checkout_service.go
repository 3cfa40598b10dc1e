package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"galeria/internal/models"
	"galeria/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// CheckoutService handles order creation: it validates the purchase
// request, confirms the artwork is still available, and freezes the
// payment terms into a pending order.
type CheckoutService struct {
	orderRepo   repositories.OrderRepository
	artworkRepo repositories.ArtworkRepository
	userRepo    repositories.WalletUserRepository
	cfg         *Config
	validate    *validator.Validate
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(orderRepo repositories.OrderRepository, artworkRepo repositories.ArtworkRepository, userRepo repositories.WalletUserRepository, cfg *Config) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		artworkRepo: artworkRepo,
		userRepo:    userRepo,
		cfg:         cfg,
		validate:    validator.New(),
	}
}

// CreateOrderRequest is a purchase request for a single artwork.
type CreateOrderRequest struct {
	ArtworkID    string  `json:"artwork_id" validate:"required"`
	ChainID      int64   `json:"chain_id" validate:"required"`
	TokenAddress string  `json:"token_address" validate:"required,eth_addr"`
	AmountUSD    float64 `json:"amount_usd" validate:"required,gt=0"`
	// Optional: orders may be created for wallets that never registered.
	BuyerAddress string `json:"buyer_address,omitempty" validate:"omitempty,eth_addr"`
}

// PaymentInstructions is returned to the buyer's client so it can build
// the on-chain transfer.
type PaymentInstructions struct {
	OrderID          string  `json:"order_id"`
	ArtworkID        string  `json:"artwork_id"`
	AmountUSD        float64 `json:"amount_usd"`
	ChainID          int64   `json:"chain_id"`
	TokenAddress     string  `json:"token_address"`
	RecipientAddress string  `json:"recipient_address"`
	Status           string  `json:"status"`
}

// CreateOrder validates the request, checks the artwork's availability,
// resolves the buyer best-effort, and inserts a pending order with the
// frozen network/token/amount snapshot. The artwork's availability is
// deliberately NOT touched here — it is only cleared at settlement, so two
// pending orders for one piece can coexist until one of them pays.
func (s *CheckoutService) CreateOrder(req CreateOrderRequest) (*PaymentInstructions, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	// The receiving wallet must be known before we promise payment terms.
	if s.cfg.RecipientWallet == "" {
		log.Printf("ERROR: platform wallet is not configured; refusing checkout for artwork %s", req.ArtworkID)
		return nil, ErrWalletNotConfigured
	}

	artwork, err := s.artworkRepo.GetByID(req.ArtworkID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("artwork %s: %w", req.ArtworkID, ErrArtworkNotFound)
		}
		return nil, fmt.Errorf("failed to look up artwork %s: %w", req.ArtworkID, err)
	}
	if !artwork.Available {
		return nil, fmt.Errorf("artwork %s: %w", req.ArtworkID, ErrArtworkUnavailable)
	}

	// Best-effort buyer resolution; an unknown wallet is not an error.
	var buyerID string
	if req.BuyerAddress != "" {
		if buyer, err := s.userRepo.GetByWalletAddress(req.BuyerAddress); err == nil {
			buyerID = buyer.ID
		}
	}

	// Stablecoins are pegged 1:1 to USD: the minor-unit amount and the USD
	// amount are numerically equal, stored independently.
	newOrder := &models.Order{
		ArtworkID:    req.ArtworkID,
		BuyerID:      buyerID,
		ChainID:      req.ChainID,
		TokenAddress: req.TokenAddress,
		Amount:       strconv.FormatFloat(req.AmountUSD, 'f', -1, 64),
		AmountUSD:    req.AmountUSD,
		Status:       models.StatusPending,
	}
	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	log.Printf("Created pending order %s for artwork %s (%.2f USD on chain %d)", newOrder.ID, req.ArtworkID, req.AmountUSD, req.ChainID)

	return &PaymentInstructions{
		OrderID:          newOrder.ID,
		ArtworkID:        artwork.ID,
		AmountUSD:        req.AmountUSD,
		ChainID:          req.ChainID,
		TokenAddress:     req.TokenAddress,
		RecipientAddress: s.cfg.RecipientWallet,
		Status:           newOrder.Status,
	}, nil
}
