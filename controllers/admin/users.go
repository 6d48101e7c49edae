package admin

import (
	"qxmr/database"
	"qxmr/helpers"
	"qxmr/models"

	"github.com/gofiber/fiber/v2"
)

// ListUsers returns every ledger row, best leaderboard score first.
func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("amount DESC").Find(&users).Error; err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_LOAD_USERS")
	}

	return helpers.JSONSuccess(c, "Users loaded", fiber.Map{
		"users": users,
		"total": len(users),
	})
}
