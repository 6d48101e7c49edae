package user

import (
	"time"

	"qxmr/database"
	"qxmr/helpers"
	"qxmr/models"

	"github.com/gofiber/fiber/v2"
)

type dailyWinnerRow struct {
	WalletID   string  `json:"walletid"`
	TotalScore float64 `json:"total_score"`
}

// DailyWinner returns the wallet with the best daily score for a date
// (default today) and the fixed prize amount. An empty day yields a null
// winner, not an error.
func DailyWinner(c *fiber.Ctx) error {
	targetDate := c.Query("date")
	if targetDate == "" {
		targetDate = time.Now().Format("2006-01-02")
	}

	var rows []dailyWinnerRow
	if err := database.DB.Model(&models.DailyScore{}).
		Select("wallet_id AS wallet_id, SUM(score) AS total_score").
		Where("score_date = ?", targetDate).
		Group("wallet_id").
		Order("total_score DESC").
		Limit(1).
		Scan(&rows).Error; err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_LOAD_DAILY_SCORES")
	}

	if len(rows) == 0 {
		return helpers.JSONSuccess(c, "No winner for date", fiber.Map{
			"winner":       nil,
			"date":         targetDate,
			"prize_amount": helpers.DailyPrizeAmount,
		})
	}

	winner := rows[0]

	var user models.User
	if err := database.DB.Where("wallet_id = ?", winner.WalletID).First(&user).Error; err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_RESOLVE_USER")
	}

	return helpers.JSONSuccess(c, "Daily winner found", fiber.Map{
		"winner": fiber.Map{
			"walletid": winner.WalletID,
			"score":    winner.TotalScore,
			"user":     user,
		},
		"date":         targetDate,
		"prize_amount": helpers.DailyPrizeAmount,
	})
}
