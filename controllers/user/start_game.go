package user

import (
	"qxmr/database"
	"qxmr/helpers"

	"github.com/gofiber/fiber/v2"
)

// StartGame is the free-play check. Play is always allowed; whether the
// resulting score counts toward the leaderboard is decided at submission
// time, not here.
func StartGame(c *fiber.Ctx) error {
	var req WalletRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.WalletID == "" {
		return helpers.JSONError(c, "WALLETID_REQUIRED")
	}

	user, _, err := getOrCreateUser(database.DB, req.WalletID)
	if err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_RESOLVE_USER")
	}

	return helpers.JSONSuccess(c, "Game start allowed", fiber.Map{
		"can_play": true,
		"user":     user,
	})
}
