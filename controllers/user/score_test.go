package user_test

import (
	"net/http"
	"testing"
	"time"

	"qxmr/database"
	"qxmr/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitScore(t *testing.T, app *fiber.App, walletID string, score any) (int, map[string]any) {
	t.Helper()
	return doJSON(t, app, http.MethodPost, "/update_game_score", map[string]any{
		"walletid": walletID,
		"score":    score,
	})
}

func TestUpdateGameScore_FreePlayOnlyMovesHighest(t *testing.T) {
	app := setupApp(t)

	status, parsed := submitScore(t, app, "FREE_WALLET", 42)
	require.Equal(t, http.StatusOK, status)

	data := dataOf(t, parsed)
	assert.Equal(t, false, data["leaderboard_updated"])

	u := userOf(t, data)
	assert.Equal(t, float64(42), u["highest"])
	assert.Equal(t, float64(0), u["amount"])
	assert.Equal(t, "", u["lastplayed"])

	var count int64
	require.NoError(t, database.DB.Model(&models.DailyScore{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUpdateGameScore_HighestMonotonic(t *testing.T) {
	app := setupApp(t)

	submitScore(t, app, "MONO_WALLET", 50)
	_, parsed := submitScore(t, app, "MONO_WALLET", 20)

	u := userOf(t, dataOf(t, parsed))
	assert.Equal(t, float64(50), u["highest"])
}

func TestUpdateGameScore_LeaderboardPath(t *testing.T) {
	app := setupApp(t)

	require.NoError(t, database.DB.Create(&models.User{
		WalletID:          "PAID_WALLET",
		LeaderboardAccess: true,
		GameLeft:          2,
	}).Error)

	_, parsed := submitScore(t, app, "PAID_WALLET", 10)
	data := dataOf(t, parsed)
	assert.Equal(t, true, data["leaderboard_updated"])

	u := userOf(t, data)
	assert.Equal(t, float64(10), u["amount"])
	assert.Equal(t, float64(1), u["gameleft"])
	assert.NotEqual(t, "", u["lastplayed"])

	// A better score raises the leaderboard amount; a worse one later must not
	// lower it.
	_, parsed = submitScore(t, app, "PAID_WALLET", 15)
	u = userOf(t, dataOf(t, parsed))
	assert.Equal(t, float64(15), u["amount"])
	assert.Equal(t, float64(0), u["gameleft"])

	today := time.Now().Format("2006-01-02")
	var daily models.DailyScore
	require.NoError(t, database.DB.
		Where("wallet_id = ? AND score_date = ?", "PAID_WALLET", today).
		First(&daily).Error)
	assert.Equal(t, float64(15), daily.Score)
}

func TestUpdateGameScore_AccessWithoutGamesIsNotCounted(t *testing.T) {
	app := setupApp(t)

	require.NoError(t, database.DB.Create(&models.User{
		WalletID:          "DRAINED_WALLET",
		LeaderboardAccess: true,
		GameLeft:          0,
		Amount:            30,
	}).Error)

	_, parsed := submitScore(t, app, "DRAINED_WALLET", 99)
	data := dataOf(t, parsed)

	// The flag still reports access even though the score was not counted.
	assert.Equal(t, true, data["leaderboard_updated"])

	u := userOf(t, data)
	assert.Equal(t, float64(30), u["amount"])
	assert.Equal(t, float64(0), u["gameleft"])
	assert.Equal(t, float64(99), u["highest"])
}

func TestUpdateGameScore_DailyUpsertKeepsMax(t *testing.T) {
	app := setupApp(t)

	require.NoError(t, database.DB.Create(&models.User{
		WalletID:          "UPSERT_WALLET",
		LeaderboardAccess: true,
		GameLeft:          5,
	}).Error)

	submitScore(t, app, "UPSERT_WALLET", 10)
	submitScore(t, app, "UPSERT_WALLET", 15)
	submitScore(t, app, "UPSERT_WALLET", 12)

	today := time.Now().Format("2006-01-02")

	var rows []models.DailyScore
	require.NoError(t, database.DB.
		Where("wallet_id = ? AND score_date = ?", "UPSERT_WALLET", today).
		Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(15), rows[0].Score)
}

func TestUpdateGameScore_AcceptsStringScore(t *testing.T) {
	app := setupApp(t)

	_, parsed := submitScore(t, app, "STRING_WALLET", "33.5")
	u := userOf(t, dataOf(t, parsed))
	assert.Equal(t, 33.5, u["highest"])
}

func TestUpdateGameScore_Validation(t *testing.T) {
	app := setupApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/update_game_score", map[string]any{"walletid": "X"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodPost, "/update_game_score", map[string]any{"score": 5})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodPost, "/update_game_score", map[string]any{
		"walletid": "X",
		"score":    "not-a-number",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}
