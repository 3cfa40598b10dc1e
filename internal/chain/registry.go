package chain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrUnsupportedNetwork is returned when a chain id is not statically
// configured in the registry.
var ErrUnsupportedNetwork = errors.New("unsupported network")

// Network is the static description of one supported blockchain: where to
// query it, where to link to it, and which stablecoin contracts are
// accepted on it.
type Network struct {
	ChainID       int64
	Name          string
	RPCURL        string
	ExplorerTxURL string // format template, e.g. "https://basescan.org/tx/%s"
	Tokens        map[string]common.Address
}

// Registry is the process-wide static mapping from chain ids to networks
// and their query clients. It is built once at startup and never mutated
// afterwards; resolution is pure lookup with no network calls.
type Registry struct {
	networks map[int64]Network
	clients  map[int64]ReceiptClient
}

// NewRegistry creates a registry over the given networks. Clients are
// attached separately so tests can inject fakes per network.
func NewRegistry(networks []Network) *Registry {
	r := &Registry{
		networks: make(map[int64]Network, len(networks)),
		clients:  make(map[int64]ReceiptClient, len(networks)),
	}
	for _, n := range networks {
		r.networks[n.ChainID] = n
	}
	return r
}

// RegisterClient binds a query client to an already-configured network.
func (r *Registry) RegisterClient(chainID int64, client ReceiptClient) error {
	if _, ok := r.networks[chainID]; !ok {
		return fmt.Errorf("chain %d: %w", chainID, ErrUnsupportedNetwork)
	}
	r.clients[chainID] = client
	return nil
}

// Resolve returns the network configured for chainID.
func (r *Registry) Resolve(chainID int64) (*Network, error) {
	n, ok := r.networks[chainID]
	if !ok {
		return nil, fmt.Errorf("chain %d: %w", chainID, ErrUnsupportedNetwork)
	}
	return &n, nil
}

// Client returns the query client bound to chainID.
func (r *Registry) Client(chainID int64) (ReceiptClient, error) {
	c, ok := r.clients[chainID]
	if !ok {
		return nil, fmt.Errorf("chain %d: %w", chainID, ErrUnsupportedNetwork)
	}
	return c, nil
}

// TokenAddress returns the contract address of a supported stablecoin on
// the given network. The symbol lookup is case-insensitive.
func (r *Registry) TokenAddress(chainID int64, symbol string) (common.Address, bool) {
	n, ok := r.networks[chainID]
	if !ok {
		return common.Address{}, false
	}
	addr, ok := n.Tokens[strings.ToUpper(symbol)]
	return addr, ok
}

// ExplorerTxLink renders the block-explorer URL for a transaction on the
// given network, or "" if the network is unknown.
func (r *Registry) ExplorerTxLink(chainID int64, txHash string) string {
	n, ok := r.networks[chainID]
	if !ok || txHash == "" {
		return ""
	}
	return fmt.Sprintf(n.ExplorerTxURL, txHash)
}

// DefaultNetworks returns the networks the gallery accepts payment on,
// with the canonical USDC/USDT contract addresses for each.
func DefaultNetworks() []Network {
	return []Network{
		{
			ChainID:       1,
			Name:          "Ethereum",
			RPCURL:        "https://eth.llamarpc.com",
			ExplorerTxURL: "https://etherscan.io/tx/%s",
			Tokens: map[string]common.Address{
				"USDC": common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"),
				"USDT": common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7"),
			},
		},
		{
			ChainID:       8453,
			Name:          "Base",
			RPCURL:        "https://mainnet.base.org",
			ExplorerTxURL: "https://basescan.org/tx/%s",
			Tokens: map[string]common.Address{
				"USDC": common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"),
				"USDT": common.HexToAddress("0xfde4C96c8593536E31F229EA8f37b2ADa2699bb2"),
			},
		},
		{
			ChainID:       137,
			Name:          "Polygon",
			RPCURL:        "https://polygon-rpc.com",
			ExplorerTxURL: "https://polygonscan.com/tx/%s",
			Tokens: map[string]common.Address{
				"USDC": common.HexToAddress("0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359"),
				"USDT": common.HexToAddress("0xc2132D05D31c914a87C6611C10748AEb04B58e8F"),
			},
		},
		{
			ChainID:       42161,
			Name:          "Arbitrum",
			RPCURL:        "https://arb1.arbitrum.io/rpc",
			ExplorerTxURL: "https://arbiscan.io/tx/%s",
			Tokens: map[string]common.Address{
				"USDC": common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831"),
				"USDT": common.HexToAddress("0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9"),
			},
		},
		{
			ChainID:       84532,
			Name:          "Base Sepolia",
			RPCURL:        "https://sepolia.base.org",
			ExplorerTxURL: "https://sepolia.basescan.org/tx/%s",
			Tokens: map[string]common.Address{
				"USDC": common.HexToAddress("0x036CbD53842c5426634e7929541eC2318f3dCF7e"),
			},
		},
		{
			ChainID:       11155111,
			Name:          "Sepolia",
			RPCURL:        "https://rpc.sepolia.org",
			ExplorerTxURL: "https://sepolia.etherscan.io/tx/%s",
			Tokens: map[string]common.Address{
				"USDC": common.HexToAddress("0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"),
			},
		},
	}
}
