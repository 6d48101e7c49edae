package user

import (
	"errors"
	"time"

	"qxmr/helpers"
	"qxmr/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// getOrCreateUser resolves the ledger row for a wallet, inserting a default
// row on first contact. Two concurrent first-time requests can both miss the
// initial lookup; the unique index on wallet_id makes the insert race safe
// and the loser re-reads the winner's row.
func getOrCreateUser(db *gorm.DB, walletID string) (models.User, bool, error) {
	var user models.User

	err := db.Where("wallet_id = ?", walletID).First(&user).Error
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, false, err
	}

	user = models.User{WalletID: walletID}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user)
	if res.Error != nil {
		return user, false, res.Error
	}
	created := res.RowsAffected > 0

	if err := db.Where("wallet_id = ?", walletID).First(&user).Error; err != nil {
		return user, false, err
	}

	return user, created, nil
}

// applyDailyReset replenishes the free-game counter when the wallet last
// played on another calendar day (or never, or with a garbled timestamp).
func applyDailyReset(db *gorm.DB, user models.User) (models.User, error) {
	if !helpers.DailyResetDue(user.LastPlayed, time.Now()) {
		return user, nil
	}

	if err := db.Model(&models.User{}).
		Where("wallet_id = ?", user.WalletID).
		Update("game_left", helpers.FreeGamesPerDay).Error; err != nil {
		return user, err
	}

	user.GameLeft = helpers.FreeGamesPerDay
	return user, nil
}

// walletFromRequest reads the wallet id from the query string, letting a
// POST body override it. Several endpoints accept both forms.
func walletFromRequest(c *fiber.Ctx) string {
	walletID := c.Query("walletid")

	if c.Method() == fiber.MethodPost {
		var req WalletRequest
		if err := c.BodyParser(&req); err == nil && req.WalletID != "" {
			walletID = req.WalletID
		}
	}

	return walletID
}

// WalletRequest is the minimal body shared by wallet-keyed endpoints.
type WalletRequest struct {
	WalletID string `json:"walletid"`
}
