package purchase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service records and lists purchases.
//
// Records are append-only: there is no update or cancel path, and no price or
// wallet-address validation happens here. Amounts are trusted as submitted.
type Service struct {
	repo Repository
}

// NewService creates a new purchase service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit appends a purchase record for the owning user.
func (s *Service) Submit(ctx context.Context, userID string, input SubmitInput) (Purchase, error) {
	p := Purchase{
		ID:              uuid.New().String(),
		UserID:          userID,
		CryptoType:      input.CryptoType,
		AmountCrypto:    input.AmountCrypto,
		AmountUSD:       input.AmountUSD,
		TokensPurchased: input.TokensPurchased,
		WalletAddress:   input.WalletAddress,
		Status:          StatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Purchase{}, err
	}

	return p, nil
}

// ListForUser returns the user's purchases, newest first. The listing is
// unpaginated; callers get the full materialized history.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Purchase, error) {
	return s.repo.ListByUser(ctx, userID)
}
