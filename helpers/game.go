package helpers

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// FreeGamesPerDay is the daily free-play replenishment cap.
	FreeGamesPerDay = 3

	// LeaderboardPrice is the minimum payment granting leaderboard access.
	LeaderboardPrice = 100

	// GamePrice is the legacy per-game purchase price, kept for backward
	// compatibility with old payment callbacks.
	GamePrice = 500

	// DefaultBuyGamePrice is the per-game price assumed by the top-up
	// endpoint when the caller omits one.
	DefaultBuyGamePrice = 500000

	// DailyPrizeAmount is the fixed prize paid to the daily winner.
	DailyPrizeAmount = 1000000

	// LeaderboardLimit caps the number of rows a leaderboard query returns.
	LeaderboardLimit = 100
)

const (
	TrxTypeLeaderboardPayment = "leaderboard_payment"
	TrxTypeGamePurchase       = "game_purchase"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// DailyResetDue reports whether the free-game counter should be replenished.
// An empty or unparsable lastplayed value counts as a new day: resetting is
// fail-open so a corrupt timestamp never locks a player out.
func DailyResetDue(lastPlayed string, now time.Time) bool {
	if lastPlayed == "" {
		return true
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, lastPlayed)
		if err != nil {
			continue
		}
		return t.Format("2006-01-02") != now.Format("2006-01-02")
	}

	return true
}

// PaymentOutcome is the classified effect of a recorded payment on the
// paying wallet. Paid is always accumulated by the caller regardless of
// outcome.
type PaymentOutcome struct {
	GrantAccess bool
	GamesAdded  int
}

// ClassifyPayment maps a transaction type and amount onto its effect.
// Underfunded payments for a known type demote to the generic paid-only
// path, they are never rejected.
func ClassifyPayment(trxType string, paid decimal.Decimal) PaymentOutcome {
	switch trxType {
	case TrxTypeLeaderboardPayment:
		if paid.GreaterThanOrEqual(decimal.NewFromInt(LeaderboardPrice)) {
			return PaymentOutcome{GrantAccess: true}
		}
	case TrxTypeGamePurchase:
		if paid.GreaterThanOrEqual(decimal.NewFromInt(GamePrice)) {
			games := paid.Div(decimal.NewFromInt(GamePrice)).Floor().IntPart()
			return PaymentOutcome{GamesAdded: int(games)}
		}
	}
	return PaymentOutcome{}
}
