package user

import (
	"qxmr/database"
	"qxmr/helpers"

	"github.com/gofiber/fiber/v2"
)

// GetUser returns the ledger row for a wallet, creating it with defaults on
// first contact, and replenishes free games when a new day has started.
func GetUser(c *fiber.Ctx) error {
	walletID := walletFromRequest(c)
	if walletID == "" {
		return helpers.JSONError(c, "WALLETID_REQUIRED")
	}

	user, created, err := getOrCreateUser(database.DB, walletID)
	if err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_RESOLVE_USER")
	}

	if !created {
		user, err = applyDailyReset(database.DB, user)
		if err != nil {
			return helpers.JSONServerError(c, "FAILED_TO_RESET_DAILY_GAMES")
		}
	}

	return helpers.JSONSuccess(c, "User resolved", fiber.Map{
		"user":    user,
		"created": created,
	})
}
