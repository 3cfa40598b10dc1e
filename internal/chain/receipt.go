package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// TransferTopic is the keccak256 hash of "Transfer(address,address,uint256)",
// the event every ERC-20 token emits on a value movement.
var TransferTopic = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

// ReceiptStatusSuccessful is the execution status of a mined transaction
// that did not revert.
const ReceiptStatusSuccessful = uint64(1)

// Log is a single event entry emitted during transaction execution.
// Topics[0] identifies the event; the remaining topics carry the indexed
// parameters as 32-byte values.
type Log struct {
	Address common.Address `json:"address"`
	Topics  []common.Hash  `json:"topics"`
}

// Receipt is the chain's record of a submitted transaction's outcome.
// To is the transaction's destination (for a token payment, the token
// contract), which go-ethereum keeps on the transaction rather than the
// receipt — adapters are expected to fill it in.
type Receipt struct {
	Status uint64         `json:"status"`
	To     common.Address `json:"to"`
	Logs   []Log          `json:"logs"`
}

// TransferEvent is a decoded ERC-20 Transfer log entry.
type TransferEvent struct {
	Token common.Address
	From  common.Address
	To    common.Address
}

// DecodeTransfer decodes an ERC-20 Transfer event from a raw log entry.
// It returns false for any log that is not a well-formed Transfer: wrong
// event signature or missing indexed from/to topics.
func DecodeTransfer(lg Log) (TransferEvent, bool) {
	if len(lg.Topics) != 3 || lg.Topics[0] != TransferTopic {
		return TransferEvent{}, false
	}
	return TransferEvent{
		Token: lg.Address,
		// Indexed addresses are left-padded to 32 bytes; BytesToAddress
		// keeps the trailing 20.
		From: common.BytesToAddress(lg.Topics[1].Bytes()),
		To:   common.BytesToAddress(lg.Topics[2].Bytes()),
	}, true
}

// ReceiptClient is a read-only query capability against one network.
// Implementations must not retry internally; callers retry the whole
// verification if the query fails transiently.
type ReceiptClient interface {
	GetReceipt(ctx context.Context, txHash common.Hash) (*Receipt, error)
}
