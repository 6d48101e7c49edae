package user

import (
	"errors"

	"qxmr/database"
	"qxmr/helpers"
	"qxmr/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UpdateUserRequest lists every mutable field explicitly. Nil pointers mean
// "leave untouched"; the wallet id itself cannot be changed.
type UpdateUserRequest struct {
	WalletID          string           `json:"walletid"`
	Amount            *float64         `json:"amount"`
	GameLeft          *int             `json:"gameleft"`
	LastPlayed        *string          `json:"lastplayed"`
	Paid              *decimal.Decimal `json:"paid"`
	Highest           *float64         `json:"highest"`
	LeaderboardAccess *bool            `json:"leaderboard_access"`
	Col1              *string          `json:"col1"`
	Col2              *string          `json:"col2"`
	Col3              *string          `json:"col3"`
}

func (r UpdateUserRequest) changes() map[string]interface{} {
	updates := map[string]interface{}{}

	if r.Amount != nil {
		updates["amount"] = *r.Amount
	}
	if r.GameLeft != nil {
		updates["game_left"] = *r.GameLeft
	}
	if r.LastPlayed != nil {
		updates["last_played"] = *r.LastPlayed
	}
	if r.Paid != nil {
		updates["paid"] = *r.Paid
	}
	if r.Highest != nil {
		updates["highest"] = *r.Highest
	}
	if r.LeaderboardAccess != nil {
		updates["leaderboard_access"] = *r.LeaderboardAccess
	}
	if r.Col1 != nil {
		updates["col1"] = *r.Col1
	}
	if r.Col2 != nil {
		updates["col2"] = *r.Col2
	}
	if r.Col3 != nil {
		updates["col3"] = *r.Col3
	}

	return updates
}

// UpdateUser applies a partial update to an existing ledger row. Unknown
// wallets are a 404 here, creation is only implied on the lookup endpoints.
func UpdateUser(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.WalletID == "" {
		return helpers.JSONError(c, "WALLETID_REQUIRED")
	}

	var user models.User
	if err := database.DB.Where("wallet_id = ?", req.WalletID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONNotFound(c, "USER_NOT_FOUND")
		}
		return helpers.JSONServerError(c, "FAILED_TO_RESOLVE_USER")
	}

	updates := req.changes()
	if len(updates) > 0 {
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			return helpers.JSONServerError(c, "FAILED_TO_UPDATE_USER")
		}
		if err := database.DB.Where("wallet_id = ?", req.WalletID).First(&user).Error; err != nil {
			return helpers.JSONServerError(c, "FAILED_TO_RESOLVE_USER")
		}
	}

	return helpers.JSONSuccess(c, "User updated", fiber.Map{
		"user": user,
	})
}
