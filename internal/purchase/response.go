package purchase

import "time"

// Response is the public shape of a purchase record.
type Response struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	CryptoType      string    `json:"crypto_type"`
	AmountCrypto    float64   `json:"amount_crypto"`
	AmountUSD       float64   `json:"amount_usd"`
	TokensPurchased float64   `json:"tokens_purchased"`
	WalletAddress   string    `json:"wallet_address"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewResponse shapes a purchase for API output.
func NewResponse(p Purchase) Response {
	return Response{
		ID:              p.ID,
		UserID:          p.UserID,
		CryptoType:      p.CryptoType,
		AmountCrypto:    p.AmountCrypto,
		AmountUSD:       p.AmountUSD,
		TokensPurchased: p.TokensPurchased,
		WalletAddress:   p.WalletAddress,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
	}
}
