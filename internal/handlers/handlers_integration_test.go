package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"galeria/internal/chain"
	"galeria/internal/handlers"
	"galeria/internal/middleware"
	"galeria/internal/models"
	"galeria/internal/repositories"
	"galeria/internal/services"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testChainID = int64(8453)
	testToken   = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
	testWallet  = "0x1111111111111111111111111111111111111111"
	testBuyer   = "0x2222222222222222222222222222222222222222"
	testTxHash  = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

// fakeReceiptClient serves one canned receipt and counts chain queries.
type fakeReceiptClient struct {
	receipt *chain.Receipt
	err     error
	calls   int
}

func (f *fakeReceiptClient) GetReceipt(ctx context.Context, txHash common.Hash) (*chain.Receipt, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.receipt, nil
}

// paymentReceipt builds a successful receipt paying `recipient` via a
// Transfer on `contract`.
func paymentReceipt(contract, recipient string) *chain.Receipt {
	return &chain.Receipt{
		Status: chain.ReceiptStatusSuccessful,
		To:     common.HexToAddress(contract),
		Logs: []chain.Log{{
			Address: common.HexToAddress(contract),
			Topics: []common.Hash{
				chain.TransferTopic,
				common.BytesToHash(common.HexToAddress(testBuyer).Bytes()),
				common.BytesToHash(common.HexToAddress(recipient).Bytes()),
			},
		}},
	}
}

type testEnv struct {
	app         *fiber.App
	authService *services.AuthService
	artworkRepo repositories.ArtworkRepository
	orderRepo   repositories.OrderRepository
	chainClient *fakeReceiptClient
}

// setupApp wires the full settlement surface over in-memory SQLite and a
// fake chain client.
func setupApp() (*testEnv, error) {
	// Configure Viper for testing
	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	// Initialize in-memory SQLite database
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to in-memory database: %w", err)
	}

	// Auto-migrate models
	err = db.AutoMigrate(&models.Order{}, &models.Artwork{}, &models.WalletUser{}, &models.ShippingAddress{})
	if err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	// Initialize Repositories
	orderRepo := repositories.NewGORMOrderRepository(db)
	artworkRepo := repositories.NewGORMArtworkRepository(db)
	userRepo := repositories.NewGORMWalletUserRepository(db)
	addressRepo := repositories.NewGORMShippingAddressRepository(db)

	// One fake-client network standing in for Base
	chainClient := &fakeReceiptClient{receipt: paymentReceipt(testToken, testWallet)}
	registry := chain.NewRegistry([]chain.Network{{
		ChainID:       testChainID,
		Name:          "Base",
		ExplorerTxURL: "https://basescan.org/tx/%s",
		Tokens:        map[string]common.Address{"USDC": common.HexToAddress(testToken)},
	}})
	if err := registry.RegisterClient(testChainID, chainClient); err != nil {
		return nil, err
	}

	cfg := &services.Config{RecipientWallet: testWallet}

	// Initialize Services
	checkoutService := services.NewCheckoutService(orderRepo, artworkRepo, userRepo, cfg)
	settlementService := services.NewSettlementService(orderRepo, registry, cfg, nil) // nil event publisher
	adminService := services.NewAdminService(orderRepo)
	shippingService := services.NewShippingService(orderRepo, addressRepo)
	authService := services.NewAuthService(userRepo, jwtSecret)

	// Initialize Handlers
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	settlementHandler := handlers.NewSettlementHandler(settlementService)
	adminHandler := handlers.NewAdminHandler(adminService)
	shippingHandler := handlers.NewShippingHandler(shippingService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()

	// API Routes
	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)
	checkoutHandler.RegisterRoutes(apiV1)
	settlementHandler.RegisterRoutes(apiV1)
	shippingHandler.RegisterRoutes(apiV1)
	adminHandler.RegisterRoutes(apiV1.Group("", middleware.AdminRequired(authService)))

	return &testEnv{
		app:         app,
		authService: authService,
		artworkRepo: artworkRepo,
		orderRepo:   orderRepo,
		chainClient: chainClient,
	}, nil
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func postJSON(app *fiber.App, path string, body interface{}, headers map[string]string) (*http.Response, map[string]interface{}, error) {
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1) // -1 for no timeout
	if err != nil {
		return nil, nil, err
	}
	var decoded map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &decoded)
	return resp, decoded, nil
}

func seedArtwork(t *testing.T, env *testEnv, id string) {
	t.Helper()
	err := env.artworkRepo.Create(&models.Artwork{ID: id, Title: "Test Piece " + id, PriceUSD: 50.00, Available: true})
	assert.NoError(t, err)
}

func checkoutBody(artworkID string) map[string]interface{} {
	return map[string]interface{}{
		"artwork_id":    artworkID,
		"chain_id":      testChainID,
		"token_address": testToken,
		"amount_usd":    50.00,
	}
}

func TestCheckoutAndVerifyFlow(t *testing.T) {
	env, err := setupApp()
	assert.NoError(t, err)
	seedArtwork(t, env, "art-flow")

	// Create the order
	resp, created, err := postJSON(env.app, "/api/v1/checkout/crypto", checkoutBody("art-flow"), nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, testWallet, created["recipient_address"])
	orderID := created["order_id"].(string)
	assert.NotEmpty(t, orderID)

	// Verify the payment
	resp, verified, err := postJSON(env.app, "/api/v1/verify-tx", map[string]interface{}{
		"order_id": orderID,
		"tx_hash":  testTxHash,
		"chain_id": testChainID,
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, verified["success"])
	order := verified["order"].(map[string]interface{})
	assert.Equal(t, "paid", order["status"])
	assert.Equal(t, testTxHash, order["tx_hash"])
	assert.Equal(t, "https://basescan.org/tx/"+testTxHash, verified["explorer_tx"])

	// The artwork was taken off the market in the same step.
	artwork, err := env.artworkRepo.GetByID("art-flow")
	assert.NoError(t, err)
	assert.False(t, artwork.Available)

	// Re-verifying is idempotent and does not touch the chain again.
	resp, verifiedAgain, err := postJSON(env.app, "/api/v1/verify-tx", map[string]interface{}{
		"order_id": orderID,
		"tx_hash":  testTxHash,
		"chain_id": testChainID,
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, verifiedAgain["success"])
	assert.Equal(t, 1, env.chainClient.calls)

	// A second buyer can no longer check out the sold piece.
	resp, conflict, err := postJSON(env.app, "/api/v1/checkout/crypto", checkoutBody("art-flow"), nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "artwork_unavailable", conflict["reason"])
}

func TestCheckoutValidation(t *testing.T) {
	env, err := setupApp()
	assert.NoError(t, err)

	// Missing fields
	resp, body, err := postJSON(env.app, "/api/v1/checkout/crypto", map[string]interface{}{
		"artwork_id": "art-x",
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_request", body["reason"])

	// Unknown artwork
	resp, body, err = postJSON(env.app, "/api/v1/checkout/crypto", checkoutBody("no-such-artwork"), nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "artwork_not_found", body["reason"])
}

func TestVerifyFailureResponses(t *testing.T) {
	env, err := setupApp()
	assert.NoError(t, err)
	seedArtwork(t, env, "art-fail")

	_, created, err := postJSON(env.app, "/api/v1/checkout/crypto", checkoutBody("art-fail"), nil)
	assert.NoError(t, err)
	orderID := created["order_id"].(string)

	verifyBody := func(orderID string, chainID int64) map[string]interface{} {
		return map[string]interface{}{"order_id": orderID, "tx_hash": testTxHash, "chain_id": chainID}
	}

	// Unknown order
	resp, body, err := postJSON(env.app, "/api/v1/verify-tx", verifyBody("no-such-order", testChainID), nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "order_not_found", body["reason"])

	// Unsupported chain
	resp, body, err = postJSON(env.app, "/api/v1/verify-tx", verifyBody(orderID, 999), nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "unsupported_network", body["reason"])

	// Reverted transaction
	env.chainClient.receipt = &chain.Receipt{Status: 0, To: common.HexToAddress(testToken)}
	resp, body, err = postJSON(env.app, "/api/v1/verify-tx", verifyBody(orderID, testChainID), nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "transaction_failed", body["reason"])

	// Wrong token contract
	env.chainClient.receipt = paymentReceipt(testBuyer, testWallet)
	resp, body, err = postJSON(env.app, "/api/v1/verify-tx", verifyBody(orderID, testChainID), nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "wrong_token_contract", body["reason"])

	// Payment to the wrong recipient
	env.chainClient.receipt = paymentReceipt(testToken, testBuyer)
	resp, body, err = postJSON(env.app, "/api/v1/verify-tx", verifyBody(orderID, testChainID), nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "payment_misdirected", body["reason"])

	// None of the failures settled the order or touched the artwork.
	order, err := env.orderRepo.GetByID(orderID)
	assert.NoError(t, err)
	assert.Equal(t, "pending", order.Status)
	assert.Empty(t, order.TxHash)
	artwork, err := env.artworkRepo.GetByID("art-fail")
	assert.NoError(t, err)
	assert.True(t, artwork.Available)
}

func TestShippingCaptureFlow(t *testing.T) {
	env, err := setupApp()
	assert.NoError(t, err)
	seedArtwork(t, env, "art-ship")

	_, created, err := postJSON(env.app, "/api/v1/checkout/crypto", checkoutBody("art-ship"), nil)
	assert.NoError(t, err)
	orderID := created["order_id"].(string)

	shippingBody := map[string]interface{}{
		"order_id":    orderID,
		"full_name":   "Jordan Rivera",
		"address":     "12 Calle Luna",
		"city":        "Oaxaca",
		"postal_code": "68000",
		"country":     "MX",
	}

	// Locked until the order is paid.
	resp, body, err := postJSON(env.app, "/api/v1/shipping", shippingBody, nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "order_not_paid", body["reason"])

	// Pay, then capture.
	env.chainClient.receipt = paymentReceipt(testToken, testWallet)
	resp, _, err = postJSON(env.app, "/api/v1/verify-tx", map[string]interface{}{
		"order_id": orderID, "tx_hash": testTxHash, "chain_id": testChainID,
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body, err = postJSON(env.app, "/api/v1/shipping", shippingBody, nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	order, err := env.orderRepo.GetByID(orderID)
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ShippingAddressID)
}

// registerAdmin creates an operator account directly through the service
// (the HTTP register endpoint never grants admin) and returns a login token.
func registerAdmin(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	err := env.authService.RegisterUser(&models.WalletUser{
		WalletAddress: testWallet,
		Email:         email,
		Password:      "operator-secret",
		IsAdmin:       true,
	})
	assert.NoError(t, err)

	token, err := env.authService.LoginUser(email, "operator-secret")
	assert.NoError(t, err)
	return token
}

func TestAdminEndpoints(t *testing.T) {
	env, err := setupApp()
	assert.NoError(t, err)
	seedArtwork(t, env, "art-admin")

	_, created, err := postJSON(env.app, "/api/v1/checkout/crypto", checkoutBody("art-admin"), nil)
	assert.NoError(t, err)
	orderID := created["order_id"].(string)

	// No token
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/sales", nil)
	resp, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Non-admin token
	err = env.authService.RegisterUser(&models.WalletUser{
		WalletAddress: testBuyer,
		Email:         "buyer-admin-test@example.com",
		Password:      "password123",
	})
	assert.NoError(t, err)
	buyerToken, err := env.authService.LoginUser("buyer-admin-test@example.com", "password123")
	assert.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/sales", nil)
	req.Header.Set("Authorization", "Bearer "+buyerToken)
	resp, err = env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin token
	adminToken := registerAdmin(t, env, "operator-admin-test@example.com")
	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/sales?status=pending&limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var listBody map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &listBody))
	assert.Contains(t, listBody, "summary")
	assert.Contains(t, listBody, "orders")

	// Status override: pending -> shipped is a forward skip, allowed.
	authHeader := map[string]string{"Authorization": "Bearer " + adminToken}
	resp, body, err := postJSON(env.app, "/api/v1/admin/sales/status", map[string]interface{}{
		"order_id": orderID,
		"status":   "shipped",
	}, authHeader)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	order := body["order"].(map[string]interface{})
	assert.Equal(t, "shipped", order["status"])

	// Backward transition rejected.
	resp, body, err = postJSON(env.app, "/api/v1/admin/sales/status", map[string]interface{}{
		"order_id": orderID,
		"status":   "pending",
	}, authHeader)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "invalid_transition", body["reason"])

	// Unknown order
	resp, body, err = postJSON(env.app, "/api/v1/admin/sales/status", map[string]interface{}{
		"order_id": "no-such-order",
		"status":   "shipped",
	}, authHeader)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "order_not_found", body["reason"])
}

func TestAuthRegisterAndLogin(t *testing.T) {
	env, err := setupApp()
	assert.NoError(t, err)

	// Registration
	resp, body, err := postJSON(env.app, "/api/v1/auth/register", map[string]interface{}{
		"wallet_address": "0x4444444444444444444444444444444444444444",
		"email":          "newbuyer@example.com",
		"password":       "password123",
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	// Admin is never client-assignable and the hash is never echoed.
	assert.Equal(t, false, body["is_admin"])
	assert.NotContains(t, body, "password")

	// Login
	resp, body, err = postJSON(env.app, "/api/v1/auth/login", map[string]interface{}{
		"email":    "newbuyer@example.com",
		"password": "password123",
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])

	// Wrong password
	resp, _, err = postJSON(env.app, "/api/v1/auth/login", map[string]interface{}{
		"email":    "newbuyer@example.com",
		"password": "wrong",
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
