package user

import (
	"qxmr/database"
	"qxmr/helpers"
	"qxmr/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BuyGamesRequest struct {
	WalletID string                `json:"walletid"`
	Games    int                   `json:"games"`
	Paid     models.FlexibleString `json:"paid"`
}

// BuyGames is the administrative top-up path: credits are added
// unconditionally and no transaction-log entry is written, unlike the
// payment-callback path.
func BuyGames(c *fiber.Ctx) error {
	var req BuyGamesRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.WalletID == "" {
		return helpers.JSONError(c, "WALLETID_REQUIRED")
	}

	games := req.Games
	if games == 0 {
		games = 1
	}
	if games < 0 {
		return helpers.JSONError(c, "INVALID_GAMES_COUNT")
	}

	pricePerGame := decimal.NewFromInt(helpers.DefaultBuyGamePrice)
	if req.Paid != "" {
		parsed, err := req.Paid.ToDecimal()
		if err != nil {
			return helpers.JSONError(c, "INVALID_PAID_AMOUNT")
		}
		pricePerGame = parsed
	}

	totalPaid := pricePerGame.Mul(decimal.NewFromInt(int64(games)))

	var user models.User

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if _, _, err := getOrCreateUser(tx, req.WalletID); err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("wallet_id = ?", req.WalletID).
			Updates(map[string]interface{}{
				"game_left": gorm.Expr("game_left + ?", games),
				"paid":      gorm.Expr("paid + ?", totalPaid),
			}).Error; err != nil {
			return err
		}

		return tx.Where("wallet_id = ?", req.WalletID).First(&user).Error
	})
	if err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_BUY_GAMES")
	}

	return helpers.JSONSuccess(c, "Games purchased", fiber.Map{
		"games_added":     games,
		"total_paid":      totalPaid,
		"games_remaining": user.GameLeft,
		"user":            user,
	})
}
