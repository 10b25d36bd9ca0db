// Package stats computes presale summary statistics. The summarize functions
// are pure; Dashboard layers store reads and enrichment on top of them.
package stats

import (
	"github.com/healthx-platform/healthx/internal/purchase"
)

// UserSummary aggregates one user's purchase history.
type UserSummary struct {
	TotalTokens   float64
	TotalInvested float64
	Count         int
}

// Summarize folds a purchase list into totals. An empty input yields the
// zero summary.
func Summarize(purchases []purchase.Purchase) UserSummary {
	var s UserSummary
	for _, p := range purchases {
		s.TotalTokens += p.TokensPurchased
		s.TotalInvested += p.AmountUSD
	}
	s.Count = len(purchases)
	return s
}

// PlatformSummary aggregates platform-wide presale activity.
//
// TotalUsers and TotalPurchases are exact counts. TotalFunds and TotalTokens
// are summed only over the capped sample the caller actually fetched; once
// the purchase table outgrows the cap the sums undercount while the counts
// stay exact. Callers must not paper over that asymmetry.
type PlatformSummary struct {
	TotalUsers     int64
	TotalPurchases int64
	TotalFunds     float64
	TotalTokens    float64
}

// SummarizePlatform combines exact counts with sums over the fetched sample.
func SummarizePlatform(sample []purchase.Purchase, userCount, purchaseCount int64) PlatformSummary {
	s := PlatformSummary{
		TotalUsers:     userCount,
		TotalPurchases: purchaseCount,
	}
	for _, p := range sample {
		s.TotalFunds += p.AmountUSD
		s.TotalTokens += p.TokensPurchased
	}
	return s
}
