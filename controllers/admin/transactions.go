package admin

import (
	"qxmr/database"
	"qxmr/helpers"
	"qxmr/models"

	"github.com/gofiber/fiber/v2"
)

// ListTransactions returns the full payment log, newest first.
func ListTransactions(c *fiber.Ctx) error {
	var transactions []models.Transaction
	if err := database.DB.Order("id DESC").Find(&transactions).Error; err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_LOAD_TRANSACTIONS")
	}

	return helpers.JSONSuccess(c, "Transactions loaded", fiber.Map{
		"transactions": transactions,
		"total":        len(transactions),
	})
}
