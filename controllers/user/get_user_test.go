package user_test

import (
	"net/http"
	"testing"
	"time"

	"qxmr/database"
	"qxmr/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser_CreatesWithDefaults(t *testing.T) {
	app := setupApp(t)

	status, parsed := doJSON(t, app, http.MethodPost, "/get_user", map[string]any{
		"walletid": "WALLET_A",
	})
	require.Equal(t, http.StatusOK, status)

	data := dataOf(t, parsed)
	assert.Equal(t, true, data["created"])

	u := userOf(t, data)
	assert.Equal(t, "WALLET_A", u["walletid"])
	assert.Equal(t, float64(0), u["amount"])
	assert.Equal(t, float64(0), u["gameleft"])
	assert.Equal(t, "0", u["paid"])
	assert.Equal(t, false, u["leaderboard_access"])
	assert.Equal(t, "", u["lastplayed"])
}

func TestGetUser_Idempotent(t *testing.T) {
	app := setupApp(t)

	_, first := doJSON(t, app, http.MethodPost, "/get_user", map[string]any{"walletid": "WALLET_B"})
	assert.Equal(t, true, dataOf(t, first)["created"])

	_, second := doJSON(t, app, http.MethodPost, "/get_user", map[string]any{"walletid": "WALLET_B"})
	assert.Equal(t, false, dataOf(t, second)["created"])

	var count int64
	require.NoError(t, database.DB.Model(&models.User{}).Where("wallet_id = ?", "WALLET_B").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetUser_QueryParam(t *testing.T) {
	app := setupApp(t)

	status, parsed := doJSON(t, app, http.MethodGet, "/get_user?walletid=WALLET_Q", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "WALLET_Q", userOf(t, dataOf(t, parsed))["walletid"])
}

func TestGetUser_MissingWallet(t *testing.T) {
	app := setupApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/get_user", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetUser_DailyReset(t *testing.T) {
	app := setupApp(t)

	yesterday := time.Now().AddDate(0, 0, -1).Format(time.RFC3339)
	require.NoError(t, database.DB.Create(&models.User{
		WalletID:   "WALLET_R",
		GameLeft:   0,
		LastPlayed: yesterday,
	}).Error)

	_, parsed := doJSON(t, app, http.MethodPost, "/get_user", map[string]any{"walletid": "WALLET_R"})
	u := userOf(t, dataOf(t, parsed))
	assert.Equal(t, float64(3), u["gameleft"])
}

func TestGetUser_NoResetSameDay(t *testing.T) {
	app := setupApp(t)

	today := time.Now().Format(time.RFC3339)
	require.NoError(t, database.DB.Create(&models.User{
		WalletID:   "WALLET_S",
		GameLeft:   1,
		LastPlayed: today,
	}).Error)

	_, parsed := doJSON(t, app, http.MethodPost, "/get_user", map[string]any{"walletid": "WALLET_S"})
	u := userOf(t, dataOf(t, parsed))
	assert.Equal(t, float64(1), u["gameleft"])
}

func TestGetUser_GarbledLastPlayedResets(t *testing.T) {
	app := setupApp(t)

	require.NoError(t, database.DB.Create(&models.User{
		WalletID:   "WALLET_G",
		GameLeft:   0,
		LastPlayed: "definitely-not-a-date",
	}).Error)

	_, parsed := doJSON(t, app, http.MethodPost, "/get_user", map[string]any{"walletid": "WALLET_G"})
	u := userOf(t, dataOf(t, parsed))
	assert.Equal(t, float64(3), u["gameleft"])
}
