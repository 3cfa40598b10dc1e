package services

// Config carries the platform's static settlement configuration. It is
// built once at startup and passed by reference into the services — never
// read ambiently — so tests can inject their own.
type Config struct {
	// RecipientWallet is the gallery's receiving address. Payment on any
	// network must land here; checkout and verification both fail loudly
	// when it is unset.
	RecipientWallet string
}

// SettlementEventPublisher is the post-settlement side-effect sink.
// Publishing is best-effort: a broker outage must never fail a verified
// payment.
type SettlementEventPublisher interface {
	PublishOrderPaid(eventData map[string]interface{}) error
}
