package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/healthx-platform/healthx/internal/middleware"
	"github.com/healthx-platform/healthx/internal/purchase"
	"github.com/healthx-platform/healthx/internal/stats"
	"github.com/healthx-platform/healthx/pkg/validator"
)

type submitPurchaseRequest struct {
	CryptoType      string  `json:"crypto_type"`
	AmountCrypto    float64 `json:"amount_crypto"`
	AmountUSD       float64 `json:"amount_usd"`
	TokensPurchased float64 `json:"tokens_purchased"`
	WalletAddress   string  `json:"wallet_address"`
}

type purchaseStatsResponse struct {
	TotalTokens   float64 `json:"totalTokens"`
	TotalInvested float64 `json:"totalInvested"`
	PurchaseCount int     `json:"purchaseCount"`
}

// RegisterPresaleRoutes wires the authenticated purchase endpoints.
func RegisterPresaleRoutes(r fiber.Router, requireUser fiber.Handler, purchases *purchase.Service) {
	group := r.Group("/presale", requireUser)

	group.Post("/purchase", func(c *fiber.Ctx) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, "could not validate credentials")
		}

		var req submitPurchaseRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		if errs := validator.ValidatePurchase(req.CryptoType, req.WalletAddress); errs.HasErrors() {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"errors": errs})
		}

		p, err := purchases.Submit(c.UserContext(), user.ID, purchase.SubmitInput{
			CryptoType:      req.CryptoType,
			AmountCrypto:    req.AmountCrypto,
			AmountUSD:       req.AmountUSD,
			TokensPurchased: req.TokensPurchased,
			WalletAddress:   req.WalletAddress,
		})
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, "purchase submission failed")
		}

		return c.Status(http.StatusCreated).JSON(purchase.NewResponse(p))
	})

	group.Get("/purchases", func(c *fiber.Ctx) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, "could not validate credentials")
		}

		owned, err := purchases.ListForUser(c.UserContext(), user.ID)
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, "purchase listing failed")
		}

		summary := stats.Summarize(owned)
		out := make([]purchase.Response, 0, len(owned))
		for _, p := range owned {
			out = append(out, purchase.NewResponse(p))
		}

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"purchases": out,
			"stats": purchaseStatsResponse{
				TotalTokens:   summary.TotalTokens,
				TotalInvested: summary.TotalInvested,
				PurchaseCount: summary.Count,
			},
		})
	})
}
