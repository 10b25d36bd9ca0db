package stats

import (
	"context"
	"errors"

	"github.com/healthx-platform/healthx/internal/identity"
	"github.com/healthx-platform/healthx/internal/purchase"
)

// UnknownUserEmail annotates a purchase whose owner cannot be found. A
// dangling owner reference degrades that one row instead of failing the
// whole dashboard.
const UnknownUserEmail = "Unknown"

// EnrichedPurchase is a purchase annotated with its owner's email for the
// admin view.
type EnrichedPurchase struct {
	purchase.Purchase
	UserEmail string
}

// DashboardData is the full admin dashboard payload.
type DashboardData struct {
	Platform        PlatformSummary
	RecentUsers     []identity.User
	RecentPurchases []EnrichedPurchase
}

// Dashboard assembles platform statistics for the admin view.
type Dashboard struct {
	users     identity.Repository
	purchases purchase.Repository

	sampleLimit     int
	recentPurchases int
	recentUsers     int
}

// NewDashboard builds a dashboard service. sampleLimit caps the purchase
// fetch used for fund/token sums; recentPurchases and recentUsers cap the
// activity lists.
func NewDashboard(users identity.Repository, purchases purchase.Repository, sampleLimit, recentPurchases, recentUsers int) *Dashboard {
	return &Dashboard{
		users:           users,
		purchases:       purchases,
		sampleLimit:     sampleLimit,
		recentPurchases: recentPurchases,
		recentUsers:     recentUsers,
	}
}

// Build fetches counts, the capped purchase sample and recent activity, and
// enriches recent purchases with owner emails.
func (d *Dashboard) Build(ctx context.Context) (DashboardData, error) {
	userCount, err := d.users.Count(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	purchaseCount, err := d.purchases.Count(ctx)
	if err != nil {
		return DashboardData{}, err
	}

	sample, err := d.purchases.ListAll(ctx, d.sampleLimit)
	if err != nil {
		return DashboardData{}, err
	}

	recentUsers, err := d.users.ListRecent(ctx, d.recentUsers)
	if err != nil {
		return DashboardData{}, err
	}

	// Recents use their own capped fetch so the sample cap never shortens
	// the activity list.
	recent, err := d.purchases.ListAll(ctx, d.recentPurchases)
	if err != nil {
		return DashboardData{}, err
	}

	enriched := make([]EnrichedPurchase, 0, len(recent))
	for _, p := range recent {
		email := UnknownUserEmail
		owner, err := d.users.FindByID(ctx, p.UserID)
		switch {
		case err == nil:
			email = owner.Email
		case errors.Is(err, identity.ErrNotFound):
			// keep the sentinel
		default:
			return DashboardData{}, err
		}
		enriched = append(enriched, EnrichedPurchase{Purchase: p, UserEmail: email})
	}

	return DashboardData{
		Platform:        SummarizePlatform(sample, userCount, purchaseCount),
		RecentUsers:     recentUsers,
		RecentPurchases: enriched,
	}, nil
}
