package purchase

import "time"

// StatusPending is the initial status of every recorded purchase. Nothing in
// this service transitions it further; settlement happens out of band.
const StatusPending = "pending"

// Purchase is an immutable presale ledger entry owned by a user.
type Purchase struct {
	ID              string
	UserID          string
	CryptoType      string
	AmountCrypto    float64
	AmountUSD       float64
	TokensPurchased float64
	WalletAddress   string
	Status          string
	CreatedAt       time.Time
}

// SubmitInput is the caller-supplied part of a purchase record.
type SubmitInput struct {
	CryptoType      string
	AmountCrypto    float64
	AmountUSD       float64
	TokensPurchased float64
	WalletAddress   string
}
