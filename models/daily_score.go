package models

import (
	"gorm.io/gorm"
)

// DailyScore holds the best single-game score a wallet reached on a calendar
// date. One row per (wallet, date); upserts keep the greater score.
type DailyScore struct {
	gorm.Model

	WalletID     string  `gorm:"size:64;uniqueIndex:idx_wallet_score_date" json:"walletid"`
	ScoreDate    string  `gorm:"size:10;uniqueIndex:idx_wallet_score_date;index" json:"score_date"`
	Score        float64 `json:"score"`
	PrizeClaimed bool    `gorm:"default:false" json:"prize_claimed"`
}
