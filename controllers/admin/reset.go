package admin

import (
	"qxmr/database"
	"qxmr/helpers"
	"qxmr/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ResetBalances zeroes the leaderboard score of every wallet. Irreversible,
// no audit trail.
func ResetBalances(c *fiber.Ctx) error {
	res := database.DB.Model(&models.User{}).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Update("amount", 0)
	if res.Error != nil {
		return helpers.JSONServerError(c, "FAILED_TO_RESET_BALANCES")
	}

	return helpers.JSONSuccess(c, "Balances reset", fiber.Map{
		"affected_rows": res.RowsAffected,
	})
}
