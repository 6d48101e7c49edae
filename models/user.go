package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User is the per-wallet ledger row. Amount is the competitive leaderboard
// score and only moves while the wallet holds leaderboard access and has
// game credits left; Highest is the personal best and moves on every score
// submission.
type User struct {
	gorm.Model

	WalletID          string          `gorm:"uniqueIndex;size:64" json:"walletid"`
	Amount            float64         `json:"amount"`
	GameLeft          int             `json:"gameleft"`
	LastPlayed        string          `gorm:"size:64" json:"lastplayed"`
	Paid              decimal.Decimal `gorm:"type:decimal(30,8)" json:"paid"`
	Highest           float64         `json:"highest"`
	LeaderboardAccess bool            `gorm:"default:false" json:"leaderboard_access"`

	// Reserved columns carried over from the original schema.
	Col1 string `gorm:"size:255" json:"col1"`
	Col2 string `gorm:"size:255" json:"col2"`
	Col3 string `gorm:"size:255" json:"col3"`
}
