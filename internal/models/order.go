package models

import "gorm.io/gorm"

// Order statuses, in lifecycle order. Transitions only ever move forward:
// pending -> paid -> shipped -> delivered.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
)

// statusRanks maps each status to its position in the lifecycle.
var statusRanks = map[string]int{
	StatusPending:   0,
	StatusPaid:      1,
	StatusShipped:   2,
	StatusDelivered: 3,
}

// StatusRank returns the lifecycle position of a status, or -1 for an
// unknown status.
func StatusRank(status string) int {
	rank, ok := statusRanks[status]
	if !ok {
		return -1
	}
	return rank
}

// IsValidStatus reports whether status is one of the known order statuses.
func IsValidStatus(status string) bool {
	_, ok := statusRanks[status]
	return ok
}

// Order represents a crypto payment order for a single artwork.
// The network/token/amount fields are frozen at creation; TxHash is set
// exactly once, when verification succeeds. Orders are never deleted —
// they are the audit trail of every settlement attempt.
type Order struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ArtworkID    string `json:"artwork_id" gorm:"type:varchar(36);index" validate:"required"`
	BuyerID      string `json:"buyer_id,omitempty" gorm:"type:varchar(36)"`
	ChainID      int64  `json:"chain_id" validate:"required"`
	TokenAddress string `json:"token_address" gorm:"type:varchar(42)" validate:"required,eth_addr"`
	// Amount is the token amount in the stablecoin's minor unit; AmountUSD is
	// the USD-equivalent. Stablecoins are pegged 1:1 so the two are numerically
	// equal, but they are stored independently.
	Amount    string  `json:"amount" gorm:"type:varchar(78)"`
	AmountUSD float64 `json:"amount_usd" validate:"required,gt=0"`
	TxHash    string  `json:"tx_hash,omitempty" gorm:"type:varchar(66)"`
	Status    string  `json:"status" gorm:"type:varchar(20);index"`

	// Set after payment, once the buyer submits a shipping address.
	ShippingAddressID string `json:"shipping_address_id,omitempty" gorm:"type:varchar(36)"`

	// Reserved for a future certificate-of-authenticity issuance step.
	// Never populated by the settlement core.
	CertificateTokenID string `json:"certificate_token_id,omitempty" gorm:"type:varchar(78)"`
	CertificateTxHash  string `json:"certificate_tx_hash,omitempty" gorm:"type:varchar(66)"`

	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
