package user

import (
	"qxmr/database"
	"qxmr/helpers"
	"qxmr/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RecordTransactionRequest struct {
	WalletID string                `json:"walletid"`
	Hash     string                `json:"hash"`
	Paid     models.FlexibleString `json:"paid"`
	TrxType  string                `json:"trx_type"`
	Note     string                `json:"note"`
}

// RecordTransaction appends a payment to the log and applies its classified
// effect to the paying wallet. The log append and the balance update run in
// one database transaction so a failed update cannot leave an orphaned log
// entry.
func RecordTransaction(c *fiber.Ctx) error {
	var req RecordTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.WalletID == "" || req.Hash == "" || req.Paid == "" {
		return helpers.JSONError(c, "WALLETID_HASH_AND_PAID_REQUIRED")
	}

	paid, err := req.Paid.ToDecimal()
	if err != nil {
		return helpers.JSONError(c, "INVALID_PAID_AMOUNT")
	}

	refID := uuid.New().String()
	outcome := helpers.ClassifyPayment(req.TrxType, paid)

	var newPaid decimal.Decimal

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		trx := models.Transaction{
			WalletID: req.WalletID,
			Hash:     req.Hash,
			Paid:     paid,
			TrxType:  req.TrxType,
			Note:     req.Note,
			RefID:    refID,
			Payload:  datatypes.JSON(c.Body()),
		}
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}

		user, _, err := getOrCreateUser(tx, req.WalletID)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"paid": gorm.Expr("paid + ?", paid),
		}
		if outcome.GrantAccess {
			updates["leaderboard_access"] = true
		}
		if outcome.GamesAdded > 0 {
			updates["game_left"] = gorm.Expr("game_left + ?", outcome.GamesAdded)
		}

		if err := tx.Model(&models.User{}).
			Where("wallet_id = ?", req.WalletID).
			Updates(updates).Error; err != nil {
			return err
		}

		newPaid = user.Paid.Add(paid)
		return nil
	})
	if err != nil {
		return helpers.JSONServerError(c, "FAILED_TO_SAVE_TRANSACTION")
	}

	return helpers.JSONSuccess(c, "Transaction recorded", fiber.Map{
		"transaction_saved":          true,
		"leaderboard_access_granted": outcome.GrantAccess,
		"games_added":                outcome.GamesAdded,
		"paid_total":                 newPaid,
		"ref_id":                     refID,
	})
}
