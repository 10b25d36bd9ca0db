package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/healthx-platform/healthx/internal/auth"
	"github.com/healthx-platform/healthx/internal/purchase"
	"github.com/healthx-platform/healthx/internal/stats"
)

type enrichedPurchaseResponse struct {
	purchase.Response
	UserEmail string `json:"user_email"`
}

type dashboardResponse struct {
	TotalUsers      int64                      `json:"totalUsers"`
	TotalPurchases  int64                      `json:"totalPurchases"`
	TotalFunds      float64                    `json:"totalFunds"`
	TotalTokens     float64                    `json:"totalTokens"`
	RecentUsers     []auth.UserResponse        `json:"recentUsers"`
	RecentPurchases []enrichedPurchaseResponse `json:"recentPurchases"`
}

// RegisterAdminRoutes wires the admin dashboard behind the admin allowlist.
// The upstream design exposed this endpoint without any identity check; the
// gate here is an intentional hardening.
func RegisterAdminRoutes(r fiber.Router, requireUser, requireAdmin fiber.Handler, dashboard *stats.Dashboard) {
	group := r.Group("/admin", requireUser, requireAdmin)

	group.Get("/dashboard", func(c *fiber.Ctx) error {
		data, err := dashboard.Build(c.UserContext())
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, "dashboard aggregation failed")
		}

		users := make([]auth.UserResponse, 0, len(data.RecentUsers))
		for _, u := range data.RecentUsers {
			users = append(users, auth.NewUserResponse(u))
		}

		recent := make([]enrichedPurchaseResponse, 0, len(data.RecentPurchases))
		for _, p := range data.RecentPurchases {
			recent = append(recent, enrichedPurchaseResponse{
				Response:  purchase.NewResponse(p.Purchase),
				UserEmail: p.UserEmail,
			})
		}

		return c.Status(http.StatusOK).JSON(dashboardResponse{
			TotalUsers:      data.Platform.TotalUsers,
			TotalPurchases:  data.Platform.TotalPurchases,
			TotalFunds:      data.Platform.TotalFunds,
			TotalTokens:     data.Platform.TotalTokens,
			RecentUsers:     users,
			RecentPurchases: recent,
		})
	})
}
