package chain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthReceiptClient is the production ReceiptClient, backed by a JSON-RPC
// connection to a network node via go-ethereum's ethclient.
type EthReceiptClient struct {
	client *ethclient.Client
}

// DialReceiptClient connects to a node's JSON-RPC endpoint.
func DialReceiptClient(rpcURL string) (*EthReceiptClient, error) {
	c, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", rpcURL, err)
	}
	return &EthReceiptClient{client: c}, nil
}

// GetReceipt fetches the receipt for a mined transaction. go-ethereum
// receipts do not carry the destination address, so the transaction is
// fetched alongside to fill in Receipt.To.
func (e *EthReceiptClient) GetReceipt(ctx context.Context, txHash common.Hash) (*Receipt, error) {
	rcpt, err := e.client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipt for %s: %w", txHash.Hex(), err)
	}

	tx, _, err := e.client.TransactionByHash(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction %s: %w", txHash.Hex(), err)
	}

	receipt := &Receipt{Status: rcpt.Status}
	if to := tx.To(); to != nil {
		receipt.To = *to
	}
	for _, lg := range rcpt.Logs {
		receipt.Logs = append(receipt.Logs, Log{
			Address: lg.Address,
			Topics:  lg.Topics,
		})
	}
	return receipt, nil
}

// Close releases the underlying RPC connection.
func (e *EthReceiptClient) Close() {
	e.client.Close()
}
