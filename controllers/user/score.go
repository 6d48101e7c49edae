package user

import (
	"time"

	"qxmr/database"
	"qxmr/helpers"
	"qxmr/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UpdateGameScoreRequest struct {
	WalletID string                `json:"walletid"`
	Score    models.FlexibleString `json:"score"`
}

// UpdateGameScore records a finished game. The personal best always moves;
// the leaderboard score, game counter, and daily score only move while the
// wallet holds access and still has credits. The gating runs as a single
// conditional UPDATE so concurrent submissions cannot double-spend a credit.
func UpdateGameScore(c *fiber.Ctx) error {
	var req UpdateGameScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.WalletID == "" || req.Score == "" {
		return helpers.JSONError(c, "WALLETID_AND_SCORE_REQUIRED")
	}

	score, err := req.Score.ToFloat64()
	if err != nil {
		return helpers.JSONError(c, "INVALID_SCORE")
	}

	var (
		user      models.User
		hasAccess bool
	)

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		u, _, err := getOrCreateUser(tx, req.WalletID)
		if err != nil {
			return err
		}
		hasAccess = u.LeaderboardAccess

		if err := tx.Model(&models.User{}).
			Where("wallet_id = ?", req.WalletID).
			Update("highest", gorm.Expr(
				"CASE WHEN highest >= ? THEN highest ELSE ? END", score, score,
			)).Error; err != nil {
			return err
		}

		now := time.Now()
		res := tx.Model(&models.User{}).
			Where("wallet_id = ? AND leaderboard_access = ? AND game_left > 0", req.WalletID, true).
			Updates(map[string]interface{}{
				"last_played": now.Format(time.RFC3339),
				"amount":      gorm.Expr("CASE WHEN amount >= ? THEN amount ELSE ? END", score, score),
				"game_left":   gorm.Expr("game_left - 1"),
			})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			daily := models.DailyScore{
				WalletID:  req.WalletID,
				ScoreDate: now.Format("2006-01-02"),
				Score:     score,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "wallet_id"}, {Name: "score_date"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"score": gorm.Expr(
						"CASE WHEN excluded.score > daily_scores.score THEN excluded.score ELSE daily_scores.score END",
					),
				}),
			}).Create(&daily).Error; err != nil {
				return err
			}
		}

		return tx.Where("wallet_id = ?", req.WalletID).First(&user).Error
	})
	if err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_UPDATE_SCORE")
	}

	return helpers.JSONSuccess(c, "Score recorded", fiber.Map{
		"user":                user,
		"leaderboard_updated": hasAccess,
	})
}
