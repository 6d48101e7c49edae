package user

import (
	"errors"

	"qxmr/database"
	"qxmr/helpers"
	"qxmr/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Leaderboard returns the top access-holders by leaderboard score plus,
// when a wallet id is supplied and that wallet holds access, its rank.
// Rank is 1 + the number of strictly greater scores; equal scores land on
// whatever order the store returns.
func Leaderboard(c *fiber.Ctx) error {
	walletID := walletFromRequest(c)

	var totalUsers int64
	if err := database.DB.Model(&models.User{}).
		Where("leaderboard_access = ?", true).
		Count(&totalUsers).Error; err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_COUNT_USERS")
	}

	var topUsers []models.User
	if err := database.DB.
		Where("leaderboard_access = ?", true).
		Order("amount DESC").
		Limit(helpers.LeaderboardLimit).
		Find(&topUsers).Error; err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_LOAD_LEADERBOARD")
	}

	var userRanking fiber.Map
	if walletID != "" {
		var user models.User
		err := database.DB.Where("wallet_id = ?", walletID).First(&user).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONServerError(c, "FAILED_TO_RESOLVE_USER")
		}

		if err == nil && user.LeaderboardAccess {
			var greater int64
			if err := database.DB.Model(&models.User{}).
				Where("leaderboard_access = ? AND amount > ?", true, user.Amount).
				Count(&greater).Error; err != nil {
				return helpers.JSONServerError(c, "FAILED_TO_RANK_USER")
			}

			userRanking = fiber.Map{
				"rank": greater + 1,
				"user": user,
			}
		}
	}

	return helpers.JSONSuccess(c, "Leaderboard loaded", fiber.Map{
		"top_users":    topUsers,
		"total_users":  totalUsers,
		"user_ranking": userRanking,
	})
}
